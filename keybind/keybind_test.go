package keybind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"q", "q"},
		{"G", "G"},
		{" Esc ", "esc"},
		{"Escape", "esc"},
		{"Ctrl+C", "ctrl+c"},
		{"ctrl-c", "ctrl+c"},
		{"PageDown", "pgdn"},
		{"Rune[?]", "?"},
		{"backtab", "shift+tab"},
		{"ctrl+", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeKey(tt.in))
		})
	}
}

func TestKeybind(t *testing.T) {
	kb := NewKeybind(WithKeys("q", "", "ctrl+c"), WithHelp("q", "quit"))

	assert.True(t, kb.Enabled())
	assert.Equal(t, []string{"q", "ctrl+c"}, kb.Keys())
	assert.Equal(t, Help{Key: "q", Desc: "quit"}, kb.Help())

	kb.SetKeys()
	assert.False(t, kb.Enabled())
	assert.False(t, Matches(nil, kb))
}

func TestKeybind_UnmarshalYAML(t *testing.T) {
	var keys struct {
		Quit   Keybind `yaml:"quit"`
		Help   Keybind `yaml:"help"`
		Cancel Keybind `yaml:"cancel"`
	}
	keys.Quit = NewKeybind(WithKeys("q"), WithHelp("q", "quit"))
	keys.Cancel = NewKeybind(WithKeys("esc"), WithHelp("esc", "cancel"))

	err := yaml.Unmarshal([]byte("quit: [x, Ctrl+Q]\nhelp: \"?\"\ncancel: []\n"), &keys)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "ctrl+q"}, keys.Quit.Keys())
	assert.Equal(t, Help{Key: "x/ctrl+q", Desc: "quit"}, keys.Quit.Help())
	assert.Equal(t, []string{"?"}, keys.Help.Keys())
	assert.False(t, keys.Cancel.Enabled())
}

func TestKeybind_UnmarshalYAMLRejectsMaps(t *testing.T) {
	var kb Keybind
	err := yaml.Unmarshal([]byte("a: b\n"), &kb)
	require.Error(t, err)
}

// Package keybind matches key events against configurable bindings.
//
// Keys are written the way they are shown in help: "q", "G", "esc",
// "pgdn", "ctrl+c", "alt+shift+up". Spelling variants such as "Escape",
// "PageDown" or "ctrl-c" are accepted and normalized.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys plus the text shown in help.
type Keybind struct {
	keys []string
	help Help
}

// Help is the key label and description shown in help views.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.SetHelp(key, desc)
	}
}

// Enabled reports whether any key is bound. Help views skip disabled
// bindings.
func (k Keybind) Enabled() bool {
	return len(k.keys) > 0
}

func (k Keybind) Keys() []string {
	return k.keys
}

// SetKeys replaces the bound keys. Keys that normalize to nothing are
// dropped.
func (k *Keybind) SetKeys(keys ...string) {
	k.keys = k.keys[:0:0]
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			k.keys = append(k.keys, key)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Matches reports whether event is bound by any of keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := eventKey(event)
	return slices.ContainsFunc(keybinds, func(k Keybind) bool {
		return slices.Contains(k.keys, key)
	})
}

// Modifiers in the order they are written.
var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"meta":    "meta",
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"del":      "delete",
}

// normalizeKey returns the canonical spelling of key, or "" if key names no
// key.
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if lower := strings.ToLower(key); strings.HasPrefix(lower, "ctrl-") && len(key) > len("ctrl-") {
		key = "ctrl+" + key[len("ctrl-"):]
	}

	mods := map[string]bool{}
	var primary string
	for part := range strings.SplitSeq(key, "+") {
		part = strings.TrimSpace(part)
		if mod, ok := modifierAliases[strings.ToLower(part)]; ok {
			mods[mod] = true
		} else if part != "" {
			primary = primaryKey(part)
		}
	}
	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		primary = "tab"
		mods["shift"] = true
	}
	// Letters are case sensitive on their own ("G") but not after a
	// modifier ("ctrl+c").
	if len(mods) > 0 && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return withModifiers(primary, mods)
}

func primaryKey(key string) string {
	if inner, ok := strings.CutPrefix(key, "Rune["); ok && len(inner) > 1 {
		if r, ok := strings.CutSuffix(inner, "]"); ok {
			return r
		}
	}
	if len([]rune(key)) == 1 {
		return key
	}
	key = strings.ToLower(key)
	if alias, ok := keyAliases[key]; ok {
		return alias
	}
	return key
}

func withModifiers(primary string, mods map[string]bool) string {
	var b strings.Builder
	for _, mod := range modifierOrder {
		if mods[mod] {
			b.WriteString(mod)
			b.WriteByte('+')
		}
	}
	b.WriteString(primary)
	return b.String()
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
}

// eventKey spells event the way normalizeKey spells bindings.
func eventKey(event *tcell.EventKey) string {
	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}
	if key == tcell.KeyBacktab {
		return "shift+tab"
	}

	primary, ok := keyNames[key]
	if !ok && key == tcell.KeyRune {
		primary = event.Str()
	}
	if primary == "" {
		return normalizeKey(event.Name())
	}

	mods := map[string]bool{}
	for mask, name := range map[tcell.ModMask]string{
		tcell.ModCtrl:  "ctrl",
		tcell.ModAlt:   "alt",
		tcell.ModShift: "shift",
		tcell.ModMeta:  "meta",
	} {
		if event.Modifiers()&mask != 0 {
			mods[name] = true
		}
	}
	return withModifiers(primary, mods)
}

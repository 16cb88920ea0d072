package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/xqrs/tview-reorder"
	"github.com/xqrs/tview-reorder/keybind"
	"github.com/xqrs/tview-reorder/reorder"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Reorder  ReorderConfig   `yaml:"reorder"`
	List     ListConfig      `yaml:"list"`
	Keys     KeysConfig      `yaml:"keys"`
	Log      LogConfig       `yaml:"log"`
	Sections []SectionConfig `yaml:"sections"`
}

// ReorderConfig configures dragging.
type ReorderConfig struct {
	MinimumPressDuration time.Duration `yaml:"minimum_press_duration"` // e.g., "300ms"
	LiftDuration         time.Duration `yaml:"lift_duration"`
	DropDuration         time.Duration `yaml:"drop_duration"`
	RestrictMovementAxis bool          `yaml:"restrict_movement_axis"`
	PopOutScale          string        `yaml:"pop_out_scale"`       // "none", "small", "medium", "big" or a factor
	RowHitTestMargin     float64       `yaml:"row_hit_test_margin"` // In cells
}

// ListConfig configures the list's appearance.
type ListConfig struct {
	HeaderHeight      int    `yaml:"header_height"`
	Border            string `yaml:"border"` // "none", "plain", "round", "thick", "double"
	ShowSecondaryText bool   `yaml:"show_secondary_text"`
	ScrollBar         bool   `yaml:"scroll_bar"`
}

// KeysConfig holds every key binding. Each binding takes a key or a list of
// keys; an empty list disables it.
type KeysConfig struct {
	App  AppKeys                 `yaml:"app"`
	List tview.SectionListKeyMap `yaml:"list"`
}

// AppKeys are the bindings handled by the demo itself.
type AppKeys struct {
	Quit   keybind.Keybind `yaml:"quit"`
	Help   keybind.Keybind `yaml:"help"`
	Redraw keybind.Keybind `yaml:"redraw"`
}

func (k AppKeys) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Help, k.Quit}
}

func (k AppKeys) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{{k.Help, k.Redraw, k.Quit}}
}

// LogConfig configures the debug log written with -log.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// SectionConfig is one section of the list.
type SectionConfig struct {
	Title string      `yaml:"title"`
	Rows  []RowConfig `yaml:"rows"`
}

// RowConfig is one row. Locked rows can neither be picked up nor displaced.
type RowConfig struct {
	Text   string `yaml:"text"`
	Detail string `yaml:"detail"`
	Locked bool   `yaml:"locked"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Reorder: ReorderConfig{
			MinimumPressDuration: 300 * time.Millisecond,
			LiftDuration:         250 * time.Millisecond,
			DropDuration:         300 * time.Millisecond,
			PopOutScale:          "medium",
			RowHitTestMargin:     tview.DefaultRowHitTestMargin,
		},
		List: ListConfig{
			HeaderHeight:      3,
			Border:            "round",
			ShowSecondaryText: true,
			ScrollBar:         true,
		},
		Keys: KeysConfig{
			App: AppKeys{
				Quit:   keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
				Help:   keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "help")),
				Redraw: keybind.NewKeybind(keybind.WithKeys("ctrl+l"), keybind.WithHelp("ctrl+l", "redraw")),
			},
			List: tview.DefaultSectionListKeyMap(),
		},
		Log: LogConfig{Level: "debug"},
		Sections: []SectionConfig{
			{Title: "Today", Rows: []RowConfig{
				{Text: "Review pull requests", Detail: "two waiting since Monday"},
				{Text: "Write release notes"},
				{Text: "Standup", Detail: "10:00", Locked: true},
				{Text: "Fix flaky scroll test"},
			}},
			{Title: "This week", Rows: []RowConfig{
				{Text: "Upgrade tcell"},
				{Text: "Profile redraws", Detail: "large lists only"},
				{Text: "Triage issues"},
			}},
			{Title: "Someday", Rows: []RowConfig{
				{Text: "Touch input"},
				{Text: "Horizontal lists"},
			}},
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig, so the file only
// needs the settings it changes.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if _, err := c.Reorder.Options(); err != nil {
		return err
	}
	if c.List.HeaderHeight < 1 {
		return fmt.Errorf("list.header_height must be at least 1, got %d", c.List.HeaderHeight)
	}
	if _, ok := borderSets[strings.ToLower(c.List.Border)]; !ok {
		return fmt.Errorf("list.border: unknown border %q", c.List.Border)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if len(c.Sections) == 0 {
		return errors.New("at least one section is required")
	}
	return nil
}

// Options converts the configuration to controller options.
func (c ReorderConfig) Options() ([]reorder.Option, error) {
	scale, err := reorder.ParsePopOutScale(c.PopOutScale)
	if err != nil {
		return nil, fmt.Errorf("reorder.pop_out_scale: %w", err)
	}
	opts := reorder.DefaultOptions()
	opts.MinimumPressDuration = c.MinimumPressDuration
	opts.LiftDuration = c.LiftDuration
	opts.DropDuration = c.DropDuration
	opts.RestrictMovementAxis = c.RestrictMovementAxis
	opts.PopOutScale = scale
	opts.RowHitTestMargin = c.RowHitTestMargin
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("reorder: %w", err)
	}
	return []reorder.Option{reorder.WithOptions(opts)}, nil
}

// SlogLevel parses the configured level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

var borderSets = map[string]func() tview.BorderSet{
	"none":   nil,
	"plain":  tview.BorderSetPlain,
	"round":  tview.BorderSetRound,
	"thick":  tview.BorderSetThick,
	"double": tview.BorderSetDouble,
}

// ListSections converts the configured sections for SectionList.SetSections.
func (c Config) ListSections() []tview.Section {
	sections := make([]tview.Section, len(c.Sections))
	for s, sec := range c.Sections {
		sections[s].Title = sec.Title
		for _, row := range sec.Rows {
			sections[s].Rows = append(sections[s].Rows, tview.SectionRow{MainText: row.Text, SecondaryText: row.Detail})
		}
	}
	return sections
}

// Locked returns the texts of locked rows.
func (c Config) Locked() map[string]bool {
	locked := map[string]bool{}
	for _, sec := range c.Sections {
		for _, row := range sec.Rows {
			if row.Locked {
				locked[row.Text] = true
			}
		}
	}
	return locked
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"remindme/internal/parser"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "remindme.db"
)

// TimePresets maps the five period names to "HH:MM" strings.
type TimePresets struct {
	Morning   string `toml:"morning"`
	Noon      string `toml:"noon"`
	Afternoon string `toml:"afternoon"`
	Evening   string `toml:"evening"`
	Night     string `toml:"night"`
}

// Config is the user-editable settings file. The parser observes it through
// ParserSettings on every parse, so edits apply on the next call.
type Config struct {
	DBPath            string      `toml:"db_path"`
	DateOrder         string      `toml:"date_order"`       // "month-first" or "day-first"
	DefaultMeridiem   string      `toml:"default_meridiem"` // "am" or "pm"
	ShortcutsEnabled  bool        `toml:"shortcuts_enabled"`
	TimePresets       TimePresets `toml:"time_presets"`
	VoiceTriggerWords []string    `toml:"voice_trigger_words"` // read by the voice layer, not the parser
}

// Dir returns the remindme home directory (~/.remindme).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".remindme"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFileName), nil
}

// LoadOrCreate reads the config file, writing one with defaults first if it
// does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	return cfg, nil
}

// Save writes the config back to path.
func Save(path string, cfg Config) error {
	return write(path, cfg)
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:           DefaultDBName,
		DateOrder:        "month-first",
		DefaultMeridiem:  "am",
		ShortcutsEnabled: true,
		TimePresets: TimePresets{
			Morning:   "08:00",
			Noon:      "12:00",
			Afternoon: "14:00",
			Evening:   "18:00",
			Night:     "21:00",
		},
		VoiceTriggerWords: []string{"send", "save it", "create reminder"},
	}
}

// ParserSettings converts the file representation into the parser's
// read-only snapshot. Config implements parser.SettingsSource with it.
func (c Config) ParserSettings() parser.Settings {
	order := parser.MonthFirst
	if strings.EqualFold(c.DateOrder, "day-first") {
		order = parser.DayFirst
	}
	meridiem := parser.AM
	if strings.EqualFold(c.DefaultMeridiem, "pm") {
		meridiem = parser.PM
	}

	presets := map[string]parser.TimeOfDay{}
	for name, raw := range map[string]string{
		"morning":   c.TimePresets.Morning,
		"noon":      c.TimePresets.Noon,
		"afternoon": c.TimePresets.Afternoon,
		"evening":   c.TimePresets.Evening,
		"night":     c.TimePresets.Night,
	} {
		if t, err := parseClock(raw); err == nil {
			presets[name] = t
		}
	}

	return parser.Settings{
		DateOrder:        order,
		DefaultMeridiem:  meridiem,
		TimePresets:      presets,
		ShortcutsEnabled: c.ShortcutsEnabled,
	}
}

// parseClock reads an "HH:MM" preset value.
func parseClock(s string) (parser.TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return parser.TimeOfDay{}, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return parser.TimeOfDay{}, fmt.Errorf("clock out of range: %s", s)
	}
	return parser.TimeOfDay{Hour: h, Minute: m}, nil
}

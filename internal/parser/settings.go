package parser

// DateOrder controls how ambiguous numeric dates like "10/26" are read.
type DateOrder int

const (
	MonthFirst DateOrder = iota // 10/26 -> October 26
	DayFirst                    // 10/26 -> day 10, month 26 (invalid)
)

// Meridiem is the AM/PM designator applied to ambiguous 12-hour times.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

// TimeOfDay is a clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Settings is the read-only configuration snapshot the parser consults.
// The parser never mutates it and never caches it across calls.
type Settings struct {
	DateOrder        DateOrder
	DefaultMeridiem  Meridiem
	TimePresets      map[string]TimeOfDay // morning, noon, afternoon, evening, night
	ShortcutsEnabled bool                 // tm/td/mon/... aliases
}

// SettingsSource hands the parser a fresh Settings snapshot on every parse,
// so settings changes take effect on the very next call.
type SettingsSource interface {
	ParserSettings() Settings
}

// StaticSettings wraps a fixed Settings value as a SettingsSource.
type StaticSettings Settings

func (s StaticSettings) ParserSettings() Settings { return Settings(s) }

// defaultPresets are the fallback period times used when a preset is missing
// from the configuration.
var defaultPresets = map[string]TimeOfDay{
	"morning":   {Hour: 8, Minute: 0},
	"noon":      {Hour: 12, Minute: 0},
	"afternoon": {Hour: 14, Minute: 0},
	"evening":   {Hour: 18, Minute: 0},
	"night":     {Hour: 21, Minute: 0},
}

// preset resolves a period name to its configured time, falling back to the
// built-in defaults for unset names.
func (s Settings) preset(name string) TimeOfDay {
	if t, ok := s.TimePresets[name]; ok {
		return t
	}
	return defaultPresets[name]
}

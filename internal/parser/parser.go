package parser

import (
	"strings"
	"time"
)

// Frequency is the unit of a repeating schedule. There is no sub-daily or
// yearly recurrence.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// ParsedReminder is the immutable result of one parse call. When IsValid is
// false, DueDate is always nil and ErrorMessage explains the rejection. When
// IsRecurring is true, RecurrenceInterval and RecurrenceFrequency are set.
type ParsedReminder struct {
	Title               string
	DueDate             *time.Time
	IsRecurring         bool
	RecurrenceInterval  int
	RecurrenceFrequency Frequency
	RecurrenceEndDate   *time.Time // never set by parsing today
	IsValid             bool
	ErrorMessage        string
}

// Parser turns free-form reminder text ("take out trash tuesday morning")
// into a ParsedReminder. It is a pure computation: no I/O, no shared state
// beyond the settings snapshot it reads fresh on every call, and it never
// returns a Go error — all failures come back as data.
type Parser struct {
	settings SettingsSource
	now      func() time.Time
}

// New creates a parser reading configuration from source on every call.
func New(source SettingsSource) *Parser {
	return &Parser{settings: source, now: time.Now}
}

// Parse runs the full pipeline: prevalidation, extraction (smart scan first,
// ordered pattern table as fallback), title extraction on the original-case
// text, then result validation.
func (p *Parser) Parse(text string) ParsedReminder {
	cfg := p.settings.ParserSettings()
	now := p.now()

	trimmed := strings.TrimSpace(text)
	normalized := normalizeText(strings.ToLower(trimmed), cfg)

	if msg := prevalidate(trimmed, normalized, cfg, now); msg != "" {
		return invalidReminder(msg)
	}

	var (
		sched schedule
		title string
	)
	det, smartOK := smartDetect(normalized, cfg, now)
	if smartOK {
		sched = det.compose(cfg, now)
		title = smartTitle(trimmed, det, cfg)
	} else {
		var matched bool
		sched, matched = orderedExtract(normalized, cfg, now)
		if matched {
			title = legacyTitle(trimmed, cfg)
		} else {
			// Nothing scheduling-shaped in the text: plain task, full
			// input becomes the title.
			title = trimmed
		}
	}

	if msg := validateResult(title, sched); msg != "" {
		return invalidReminder(msg)
	}

	return ParsedReminder{
		Title:               title,
		DueDate:             sched.due,
		IsRecurring:         sched.recurring,
		RecurrenceInterval:  sched.interval,
		RecurrenceFrequency: sched.frequency,
		IsValid:             true,
	}
}

func invalidReminder(msg string) ParsedReminder {
	return ParsedReminder{IsValid: false, ErrorMessage: msg}
}

// schedule is the internal extraction result shared by both strategies.
type schedule struct {
	due       *time.Time
	recurring bool
	interval  int
	frequency Frequency
}

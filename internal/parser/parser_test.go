package parser

import (
	"strings"
	"testing"
	"time"
)

// testNow is a Tuesday morning, so weekday arithmetic in the cases below is
// easy to check by hand.
var testNow = time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)

func testSettings() Settings {
	return Settings{
		DateOrder:       MonthFirst,
		DefaultMeridiem: AM,
		TimePresets: map[string]TimeOfDay{
			"morning":   {Hour: 8, Minute: 0},
			"noon":      {Hour: 12, Minute: 0},
			"afternoon": {Hour: 14, Minute: 0},
			"evening":   {Hour: 18, Minute: 30},
			"night":     {Hour: 21, Minute: 0},
		},
		ShortcutsEnabled: true,
	}
}

func newTestParser(t *testing.T, cfg Settings) *Parser {
	t.Helper()
	p := New(StaticSettings(cfg))
	p.now = func() time.Time { return testNow }
	return p
}

func date(t *testing.T, month time.Month, day, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2025, month, day, hour, minute, 0, 0, time.UTC)
}

func TestParseSchedules(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		title     string
		due       time.Time
		recurring bool
		interval  int
		frequency Frequency
	}{
		{
			name:  "weekday with period",
			input: "take out trash tuesday morning",
			title: "take out trash",
			due:   date(t, time.June, 17, 8, 0), // today is Tuesday, so next week
		},
		{
			name:  "tomorrow with clock",
			input: "Dentist appointment tomorrow at 3pm",
			title: "Dentist appointment",
			due:   date(t, time.June, 11, 15, 0),
		},
		{
			name:      "relative distance with recurrence",
			input:     "pay rent in 2 weeks every 1 month",
			title:     "pay rent",
			due:       date(t, time.June, 24, 9, 0),
			recurring: true,
			interval:  1,
			frequency: Monthly,
		},
		{
			name:      "bare every gains interval one",
			input:     "take vitamins every day",
			title:     "take vitamins",
			due:       date(t, time.June, 17, 9, 0), // no date signal, a week out
			recurring: true,
			interval:  1,
			frequency: Daily,
		},
		{
			name:      "recurrence anchored on weekday",
			input:     "standup every week monday",
			title:     "standup",
			due:       date(t, time.June, 16, 9, 0),
			recurring: true,
			interval:  1,
			frequency: Weekly,
		},
		{
			name:  "numeric date",
			input: "meeting 10/26",
			title: "meeting",
			due:   date(t, time.October, 26, 9, 0),
		},
		{
			name:  "numeric date already passed rolls a year",
			input: "renew passport 3/1",
			title: "renew passport",
			due:   time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "weekday plus week offset",
			input: "conference in 2 weeks friday",
			title: "conference",
			due:   date(t, time.June, 27, 9, 0), // roll inside the anchor week
		},
		{
			name:  "month name with day",
			input: "party december 15th",
			title: "party",
			due:   date(t, time.December, 15, 9, 0),
		},
		{
			name:  "repeated month word keeps the content mention",
			input: "book May trip may 20th",
			title: "book May trip",
			due:   time.Date(2026, time.May, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "time only stays on today",
			input: "ping ops at 5pm",
			title: "ping ops",
			due:   date(t, time.June, 10, 17, 0),
		},
		{
			name:  "evening preset applies",
			input: "dinner tomorrow evening",
			title: "dinner",
			due:   date(t, time.June, 11, 18, 30),
		},
		{
			name:  "midnight spelled 12am",
			input: "flight tomorrow at 12am",
			title: "flight",
			due:   date(t, time.June, 11, 0, 0),
		},
		{
			name:  "24 hour clock literal",
			input: "server restart tomorrow at 23",
			title: "server restart",
			due:   date(t, time.June, 11, 23, 0),
		},
		{
			name:  "shortcut expansion",
			input: "standup tm at 9:30",
			title: "standup",
			due:   date(t, time.June, 11, 9, 30),
		},
		{
			name:  "next week anchors seven days out",
			input: "planning next week",
			title: "planning",
			due:   date(t, time.June, 17, 9, 0),
		},
		{
			name:  "next week with weekday rolls inside that week",
			input: "call mom next week monday",
			title: "call mom",
			due:   date(t, time.June, 23, 9, 0), // not the coming monday
		},
		{
			name:  "next week with later weekday",
			input: "team sync next week thursday at 9:30",
			title: "team sync",
			due:   date(t, time.June, 19, 9, 30),
		},
		{
			name:  "weekday before next week",
			input: "errands friday next week",
			title: "errands",
			due:   date(t, time.June, 20, 9, 0),
		},
		{
			name:  "bare numeral falls back to the pattern table",
			input: "lunch 12",
			title: "lunch 12",
			due:   date(t, time.June, 10, 12, 0),
		},
		{
			name:  "tomorrow default time",
			input: "buy groceries tomorrow",
			title: "buy groceries",
			due:   date(t, time.June, 11, 9, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, testSettings())
			got := p.Parse(tt.input)
			if !got.IsValid {
				t.Fatalf("Parse(%q) invalid: %s", tt.input, got.ErrorMessage)
			}
			if got.Title != tt.title {
				t.Errorf("title = %q, want %q", got.Title, tt.title)
			}
			if got.DueDate == nil {
				t.Fatalf("DueDate = nil, want %v", tt.due)
			}
			if !got.DueDate.Equal(tt.due) {
				t.Errorf("DueDate = %v, want %v", got.DueDate, tt.due)
			}
			if got.IsRecurring != tt.recurring {
				t.Errorf("IsRecurring = %v, want %v", got.IsRecurring, tt.recurring)
			}
			if got.RecurrenceInterval != tt.interval {
				t.Errorf("RecurrenceInterval = %d, want %d", got.RecurrenceInterval, tt.interval)
			}
			if got.RecurrenceFrequency != tt.frequency {
				t.Errorf("RecurrenceFrequency = %q, want %q", got.RecurrenceFrequency, tt.frequency)
			}
		})
	}
}

func TestParsePlainTask(t *testing.T) {
	p := newTestParser(t, testSettings())
	got := p.Parse("refactor the billing service")
	if !got.IsValid {
		t.Fatalf("invalid: %s", got.ErrorMessage)
	}
	if got.Title != "refactor the billing service" {
		t.Errorf("title = %q, want full input", got.Title)
	}
	if got.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", got.DueDate)
	}
	if got.IsRecurring {
		t.Error("IsRecurring = true for plain task")
	}
}

func TestParseRejections(t *testing.T) {
	long := strings.Repeat("x", 201)

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "reminder text is empty"},
		{"too short", "hi", "reminder text is too short"},
		{"too long", long, "too long"},
		{"bad minute", "meet at 5:75", "invalid minute"},
		{"impossible hour", "call at 99", "99 is not a valid hour"},
		{"incomplete every", "gym every", `incomplete "every" clause`},
		{"incomplete in", "pay in 5", `incomplete "in" clause`},
		{"days plus weekday", "submit report in 3 days monday", "ambiguous schedule"},
		{"weeks plus tomorrow", "pay rent in 2 weeks tomorrow", "contradictory schedule"},
		{"weeks plus date", "pay rent in 2 weeks 10/26", "contradictory schedule"},
		{"month out of range", "review 13/40", "month 13 is out of range"},
		{"nonexistent day", "review 2/30", "that day does not exist"},
		{"nonexistent month-name day", "party february 30th", "that day does not exist"},
		{"nonexistent day-month day", "pay 31 june", "that day does not exist"},
		{"month-name day out of range", "party june 45", "day 45 is out of range"},
		{"zero interval", "water plants every 0 days", "must be a positive number"},
		{"daily cap", "water plants every 400 days", "every 400 days (max 365)"},
		{"weekly cap", "rotate logs every 60 weeks", "every 60 weeks (max 52)"},
		{"monthly cap", "audit access every 30 months", "every 30 months (max 24)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, testSettings())
			got := p.Parse(tt.input)
			if got.IsValid {
				t.Fatalf("Parse(%q) valid, want rejection", tt.input)
			}
			if got.DueDate != nil {
				t.Errorf("DueDate = %v on invalid result, want nil", got.DueDate)
			}
			if !strings.Contains(got.ErrorMessage, tt.wantMsg) {
				t.Errorf("ErrorMessage = %q, want substring %q", got.ErrorMessage, tt.wantMsg)
			}
		})
	}
}

func TestParseRecurrenceCapBoundaries(t *testing.T) {
	p := newTestParser(t, testSettings())
	for _, input := range []string{
		"backup every 365 days",
		"review every 52 weeks",
		"renew every 24 months",
	} {
		if got := p.Parse(input); !got.IsValid {
			t.Errorf("Parse(%q) invalid: %s", input, got.ErrorMessage)
		}
	}
}

func TestParseDefaultMeridiem(t *testing.T) {
	cfg := testSettings()
	p := newTestParser(t, cfg)
	got := p.Parse("call mom at 5:46")
	if !got.IsValid || got.DueDate == nil {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.DueDate.Hour() != 5 || got.DueDate.Minute() != 46 {
		t.Errorf("AM default: due %v, want 05:46", got.DueDate)
	}

	cfg.DefaultMeridiem = PM
	p = newTestParser(t, cfg)
	got = p.Parse("call mom at 5:46")
	if got.DueDate == nil || got.DueDate.Hour() != 17 {
		t.Errorf("PM default: due %v, want 17:46", got.DueDate)
	}
}

func TestParseDateOrder(t *testing.T) {
	cfg := testSettings()
	cfg.DateOrder = DayFirst

	p := newTestParser(t, cfg)
	got := p.Parse("meeting 26/10")
	if !got.IsValid {
		t.Fatalf("day-first 26/10 invalid: %s", got.ErrorMessage)
	}
	if want := date(t, time.October, 26, 9, 0); !got.DueDate.Equal(want) {
		t.Errorf("due = %v, want %v", got.DueDate, want)
	}

	got = p.Parse("meeting 10/26")
	if got.IsValid {
		t.Fatal("day-first 10/26 parsed, want month-out-of-range rejection")
	}
	if !strings.Contains(got.ErrorMessage, "month 26 is out of range") {
		t.Errorf("ErrorMessage = %q", got.ErrorMessage)
	}
}

func TestParseShortcutsDisabled(t *testing.T) {
	cfg := testSettings()
	cfg.ShortcutsEnabled = false

	p := newTestParser(t, cfg)
	got := p.Parse("standup tm at 9:30")
	if !got.IsValid {
		t.Fatalf("invalid: %s", got.ErrorMessage)
	}
	// "tm" is plain text now: only the clock is scheduling.
	if got.Title != "standup tm" {
		t.Errorf("title = %q, want %q", got.Title, "standup tm")
	}
	if want := date(t, time.June, 10, 9, 30); !got.DueDate.Equal(want) {
		t.Errorf("due = %v, want %v", got.DueDate, want)
	}
}

// mutableSource proves settings are re-read on every call, not cached at
// construction.
type mutableSource struct {
	cfg Settings
}

func (m *mutableSource) ParserSettings() Settings { return m.cfg }

func TestParseReadsSettingsFresh(t *testing.T) {
	src := &mutableSource{cfg: testSettings()}
	p := New(src)
	p.now = func() time.Time { return testNow }

	if got := p.Parse("call at 5:46"); got.DueDate == nil || got.DueDate.Hour() != 5 {
		t.Fatalf("before change: %+v", got)
	}
	src.cfg.DefaultMeridiem = PM
	if got := p.Parse("call at 5:46"); got.DueDate == nil || got.DueDate.Hour() != 17 {
		t.Fatalf("after change: %+v", got)
	}
}

func TestParseDeterministic(t *testing.T) {
	p := newTestParser(t, testSettings())
	first := p.Parse("pay rent in 2 weeks every 1 month")
	second := p.Parse("pay rent in 2 weeks every 1 month")

	if first.Title != second.Title || first.IsValid != second.IsValid ||
		first.IsRecurring != second.IsRecurring ||
		first.RecurrenceInterval != second.RecurrenceInterval ||
		first.RecurrenceFrequency != second.RecurrenceFrequency {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
	if !first.DueDate.Equal(*second.DueDate) {
		t.Fatalf("due dates differ: %v vs %v", first.DueDate, second.DueDate)
	}
}

package parser

import (
	"testing"
	"time"
)

func TestNextWeekday(t *testing.T) {
	// testNow is a Tuesday.
	tests := []struct {
		wd   time.Weekday
		want time.Time
	}{
		{time.Wednesday, date(t, time.June, 11, 10, 0)},
		{time.Friday, date(t, time.June, 13, 10, 0)},
		{time.Monday, date(t, time.June, 16, 10, 0)},
		{time.Tuesday, date(t, time.June, 17, 10, 0)}, // same day means next week
	}
	for _, tt := range tests {
		if got := nextWeekday(testNow, tt.wd); !got.Equal(tt.want) {
			t.Errorf("nextWeekday(%v) = %v, want %v", tt.wd, got, tt.want)
		}
	}
}

func TestWeekdayWithin(t *testing.T) {
	anchor := date(t, time.June, 24, 10, 0) // Tuesday

	if got := weekdayWithin(anchor, time.Tuesday); !got.Equal(anchor) {
		t.Errorf("same weekday: got %v, want the anchor itself", got)
	}
	if got, want := weekdayWithin(anchor, time.Friday), date(t, time.June, 27, 10, 0); !got.Equal(want) {
		t.Errorf("later weekday: got %v, want %v", got, want)
	}
	if got, want := weekdayWithin(anchor, time.Monday), date(t, time.June, 30, 10, 0); !got.Equal(want) {
		t.Errorf("earlier weekday rolls forward: got %v, want %v", got, want)
	}
}

func TestAdvance(t *testing.T) {
	if got, want := advance(testNow, 3, "days"), date(t, time.June, 13, 10, 0); !got.Equal(want) {
		t.Errorf("3 days: %v, want %v", got, want)
	}
	if got, want := advance(testNow, 2, "week"), date(t, time.June, 24, 10, 0); !got.Equal(want) {
		t.Errorf("2 weeks: %v, want %v", got, want)
	}
	if got, want := advance(testNow, 1, "months"), date(t, time.July, 10, 10, 0); !got.Equal(want) {
		t.Errorf("1 month: %v, want %v", got, want)
	}
}

func TestAbsoluteDate(t *testing.T) {
	cfg := testSettings()

	got, ok := absoluteDate("10", "26", "", cfg, testNow)
	if !ok || !got.Equal(date(t, time.October, 26, 0, 0)) {
		t.Errorf("10/26 = %v (%v), want Oct 26", got, ok)
	}

	// A passed date without a year rolls forward.
	got, ok = absoluteDate("3", "1", "", cfg, testNow)
	if !ok || !got.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("3/1 = %v (%v), want Mar 1 2026", got, ok)
	}

	// An explicit year sticks even in the past.
	got, ok = absoluteDate("3", "1", "2024", cfg, testNow)
	if !ok || !got.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("3/1/2024 = %v (%v), want Mar 1 2024", got, ok)
	}

	cfg.DateOrder = DayFirst
	got, ok = absoluteDate("26", "10", "", cfg, testNow)
	if !ok || !got.Equal(date(t, time.October, 26, 0, 0)) {
		t.Errorf("day-first 26/10 = %v (%v), want Oct 26", got, ok)
	}
	if _, ok = absoluteDate("10", "26", "", cfg, testNow); ok {
		t.Error("day-first 10/26 decoded, want failure")
	}
}

func TestResolveClock(t *testing.T) {
	am := testSettings()
	pm := testSettings()
	pm.DefaultMeridiem = PM

	tests := []struct {
		name     string
		hour     string
		minute   string
		meridiem string
		cfg      Settings
		want     TimeOfDay
	}{
		{"explicit am", "9", "30", "am", am, TimeOfDay{9, 30}},
		{"explicit pm", "9", "30", "pm", am, TimeOfDay{21, 30}},
		{"default am", "9", "", "", am, TimeOfDay{9, 0}},
		{"default pm", "9", "", "", pm, TimeOfDay{21, 0}},
		{"bare twelve is noon", "12", "", "", am, TimeOfDay{12, 0}},
		{"bare twelve is noon under pm default", "12", "", "", pm, TimeOfDay{12, 0}},
		{"twelve am is midnight", "12", "", "am", am, TimeOfDay{0, 0}},
		{"twelve pm is noon", "12", "", "pm", am, TimeOfDay{12, 0}},
		{"military hour", "23", "15", "", pm, TimeOfDay{23, 15}},
		{"twenty four wraps", "24", "", "", am, TimeOfDay{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveClock(tt.hour, tt.minute, tt.meridiem, tt.cfg); got != tt.want {
				t.Errorf("resolveClock(%s, %s, %s) = %+v, want %+v", tt.hour, tt.minute, tt.meridiem, got, tt.want)
			}
		})
	}
}

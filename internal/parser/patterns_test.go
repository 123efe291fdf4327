package parser

import "testing"

// The recurring flag on each row must agree with the expression actually
// capturing an interval, since decoding keys off the capture group.
func TestPatternTableRecurringFlags(t *testing.T) {
	for _, ps := range patternTable {
		hasInterval := false
		for _, name := range ps.re.SubexpNames() {
			if name == "interval" {
				hasInterval = true
			}
		}
		if hasInterval != ps.recurring {
			t.Errorf("row %q: recurring=%v but interval group present=%v", ps.name, ps.recurring, hasInterval)
		}
	}
}

func TestPatternTableNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, ps := range patternTable {
		if seen[ps.name] {
			t.Errorf("duplicate row name %q", ps.name)
		}
		seen[ps.name] = true
	}
}

// The speculative bare-hour row must stay last: anything below it would be
// unreachable for digit-bearing input.
func TestPatternTableBareHourLast(t *testing.T) {
	if len(patternTable) == 0 {
		t.Fatal("empty pattern table")
	}
	if last := patternTable[len(patternTable)-1]; last.kind != kindBareHour {
		t.Errorf("last row is %q, want the bare-hour fallback", last.name)
	}
}

func TestNormalizeText(t *testing.T) {
	cfg := testSettings()

	tests := []struct {
		input string
		want  string
	}{
		{"take vitamins every day", "take vitamins every 1 day"},
		{"sync every week", "sync every 1 week"},
		{"rent every month", "rent every 1 month"},
		{"rent every 2 months", "rent every 2 months"},
		{"standup tm", "standup tomorrow"},
		{"review td", "review today"},
		{"gym mon and wed", "gym monday and wednesday"},
		{"call tues", "call tuesday"},
		{"ship thurs", "ship thursday"},
		{"no shortcuts here", "no shortcuts here"},
	}
	for _, tt := range tests {
		if got := normalizeText(tt.input, cfg); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeTextShortcutsDisabled(t *testing.T) {
	cfg := testSettings()
	cfg.ShortcutsEnabled = false

	if got := normalizeText("standup tm", cfg); got != "standup tm" {
		t.Errorf("normalizeText = %q, want aliases untouched", got)
	}
	// The implicit-interval rewrite is not a shortcut and always applies.
	if got := normalizeText("sync every week", cfg); got != "sync every 1 week" {
		t.Errorf("normalizeText = %q, want interval inserted", got)
	}
}

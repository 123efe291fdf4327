package parser

import (
	"regexp"
	"strings"
)

// Title extraction works on the original-case text so the reminder keeps the
// user's capitalization. The legacy strategy truncates at the first
// scheduling clause; the smart strategy removes only the spans the smart
// detectors actually matched.

const (
	weekdayAlt      = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	weekdayAliasAlt = weekdayAlt + `|mon|tues|tue|wed|thurs|thur|thu|fri|sat|sun`
	periodAlt       = `morning|noon|afternoon|evening|night`
)

// legacyTitle drops everything from the first scheduling clause onward. This
// is intentionally destructive of trailing content; the smart strategy is
// preferred whenever its detection produced the schedule.
func legacyTitle(original string, cfg Settings) string {
	wd, rel := weekdayAlt, `today|tomorrow`
	if cfg.ShortcutsEnabled {
		wd, rel = weekdayAliasAlt, `today|tomorrow|td|tm`
	}

	clauses := []string{
		`(?:at|by)\s+\d{1,2}(?::\d{2})?\s*(?:am|pm)?\b`,
		`\d{1,2}[./]\d{1,2}`,
		`in\s+\d+\s+(?:days?|weeks?|months?)\b`,
		`every\s+(?:\d+\s+)?(?:days?|weeks?|months?)\b`,
		`next\s+week\b`,
		`(?:on\s+|this\s+|next\s+)?(?:` + wd + `)\b`,
		`(?:` + rel + `)\b`,
		`(?:` + periodAlt + `)\b`,
		`\d{1,2}:\d{2}\s*(?:am|pm)?\b`,
		`\d{1,2}\s*(?:am|pm)\b`,
	}

	cut := len(original)
	for _, clause := range clauses {
		re := regexp.MustCompile(`(?i)\b` + clause)
		if loc := re.FindStringIndex(original); loc != nil && loc[0] < cut {
			cut = loc[0]
		}
	}
	return cleanupTitle(original[:cut])
}

// smartTitle removes exactly the phrases the smart detectors matched, with
// the month-name and weekday heuristics: a month mention may well be real
// content, a weekday is only stripped when it reads as scheduling.
func smartTitle(original string, det detection, cfg Settings) string {
	wd, rel := weekdayAlt, `today|tomorrow`
	if cfg.ShortcutsEnabled {
		wd, rel = weekdayAliasAlt, `today|tomorrow|td|tm`
	}

	out := original
	if det.recurrence != nil {
		out = removePhrase(out, `every\s+(?:\d+\s+)?(?:days?|weeks?|months?)`)
	}
	if det.clock != nil {
		if det.clock.isPeriod {
			out = removePhrase(out, `(?:`+periodAlt+`)`)
		} else {
			out = removePhrase(out, `(?:at|by)\s+\d{1,2}(?::\d{2})?\s*(?:am|pm)?|\d{1,2}:\d{2}\s*(?:am|pm)?|\d{1,2}\s*(?:am|pm)`)
		}
	}
	if det.numericDate != nil {
		out = removePhrase(out, `\d{1,2}[./]\d{1,2}(?:[./]\d{4})?`)
	}
	if det.relative != nil {
		out = removePhrase(out, `in\s+\d+\s+(?:days?|weeks?|months?)`)
	}
	if det.relDay != nil {
		out = removePhrase(out, `(?:`+rel+`)`)
	}
	if det.nextWeek != nil {
		out = removePhrase(out, `next\s+week`)
	}
	if det.monthDate != nil {
		out = removeMonthPhrase(out, det)
	}
	if det.weekday != nil && (det.weekday.prepositioned || det.hasNonWeekdaySignal()) {
		out = removePhrase(out, `(?:on\s+|this\s+|next\s+)?(?:`+wd+`)`)
	}
	return cleanupTitle(out)
}

// hasNonWeekdaySignal reports whether any scheduling category besides the
// weekday fired.
func (det detection) hasNonWeekdaySignal() bool {
	return det.recurrence != nil || det.clock != nil || det.numericDate != nil ||
		det.monthDate != nil || det.nextWeek != nil || det.relative != nil ||
		det.relDay != nil
}

// hasNonMonthSignal reports whether any scheduling category besides the
// month mention fired.
func (det detection) hasNonMonthSignal() bool {
	return det.recurrence != nil || det.clock != nil || det.numericDate != nil ||
		det.weekday != nil || det.nextWeek != nil || det.relative != nil ||
		det.relDay != nil
}

// removeMonthPhrase applies the month disambiguation rules: remove outright
// when the month is the only scheduling phrase; with repeated month words,
// remove only the digit-bearing occurrence; otherwise the mention is likely
// real content and stays.
func removeMonthPhrase(text string, det detection) string {
	withDay := `(?:` + monthAlt + `)\s+\d{1,2}(?:st|nd|rd|th)?` +
		`|\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:` + monthAlt + `)` +
		`|\d{1,2}(?:st|nd|rd|th)\s+of\s+this\s+month`

	switch {
	case !det.hasNonMonthSignal():
		if det.monthDate.hasDay {
			return removePhrase(text, withDay)
		}
		return removePhrase(text, `(?:`+monthAlt+`)`)
	case det.monthDate.mentions > 1 && det.monthDate.hasDay:
		return removePhrase(text, withDay)
	default:
		return text
	}
}

// removePhrase strips one occurrence of the phrase together with an optional
// leading preposition and the surrounding whitespace, trying start-of-string,
// end-of-string and mid-string anchors in that order.
func removePhrase(text, phrase string) string {
	for _, pat := range []string{
		`^(?:(?:in|on|at|the)\s+)?` + phrase + `\s*`,
		`\s+(?:(?:in|on|at|the)\s+)?` + phrase + `\s*$`,
		`\s+(?:(?:in|on|at|the)\s+)?` + phrase + `\b`,
	} {
		re := regexp.MustCompile(`(?i)` + pat)
		if re.MatchString(text) {
			return re.ReplaceAllString(text, " ")
		}
	}
	return text
}

var danglingWords = map[string]bool{
	"in": true, "on": true, "at": true, "by": true,
	"the": true, "a": true, "an": true, "of": true,
	"this": true, "next": true,
}

// cleanupTitle collapses whitespace and strips dangling prepositions and
// articles left behind by phrase removal.
func cleanupTitle(s string) string {
	words := strings.Fields(s)
	for len(words) > 0 && danglingWords[strings.ToLower(words[0])] {
		words = words[1:]
	}
	for len(words) > 0 && danglingWords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

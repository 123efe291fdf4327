package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minInputLen = 3
	maxInputLen = 200
)

var (
	badMinuteRe = regexp.MustCompile(`\d{1,2}:[6-9]\d`)

	// A numeral right after a time or day keyword is meant as an hour. 13-24
	// pass as 24-hour clock; 25 and up cannot be an hour. A trailing
	// separator means the numeral starts a date or a h:mm time instead.
	suspectHourRe = regexp.MustCompile(`\b(?:at|on|today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\s+(\d{1,3})([:./]?)`)

	everyClauseRe     = regexp.MustCompile(`\bevery\b`)
	everyCompleteRe   = regexp.MustCompile(`^every\s+\d+\s+(?:days?|weeks?|months?)\b`)
	inClauseRe        = regexp.MustCompile(`\bin\s+\d+`)
	inCompleteRe      = regexp.MustCompile(`^in\s+\d+\s+(?:days?|weeks?|months?)\b`)
	inDaysRe          = regexp.MustCompile(`\bin\s+\d+\s+days?\b`)
	inWeeksMonthsRe   = regexp.MustCompile(`\bin\s+\d+\s+(?:weeks?|months?)\b`)
	anyWeekdayRe      = regexp.MustCompile(`\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	todayTomorrowRe   = regexp.MustCompile(`\b(?:today|tomorrow)\b`)
	numericDatePairRe = regexp.MustCompile(`(?:^|[^\d./:])(\d{1,2})[./](\d{1,2})`)

	monthNameDayRe   = regexp.MustCompile(`\b(` + monthAlt + `)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	dayMonthNameRe   = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlt + `)\b`)
	dayOfThisMonthRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)\s+of\s+this\s+month\b`)
)

// prevalidate rejects malformed or contradictory input before any date
// extraction is attempted. Rules run in order; the first failure wins. It is
// a pure function of the text, the settings snapshot and the clock.
//
// raw is the trimmed original-case input (length rules apply to what the
// user actually typed); normalized is the lowercased, shortcut-expanded copy
// the structural rules operate on.
func prevalidate(raw, normalized string, cfg Settings, now time.Time) string {
	if raw == "" {
		return "reminder text is empty"
	}
	if n := utf8.RuneCountInString(raw); n < minInputLen {
		return "reminder text is too short"
	} else if n > maxInputLen {
		return fmt.Sprintf("reminder text is too long (max %d characters)", maxInputLen)
	}

	if badMinuteRe.MatchString(normalized) {
		return "invalid minute: minutes must be between 00 and 59"
	}

	for _, m := range suspectHourRe.FindAllStringSubmatch(normalized, -1) {
		if m[2] != "" {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 25 {
			return fmt.Sprintf("invalid time format: %d is not a valid hour", n)
		}
	}

	for _, loc := range everyClauseRe.FindAllStringIndex(normalized, -1) {
		if !everyCompleteRe.MatchString(normalized[loc[0]:]) {
			return `incomplete "every" clause: use "every <number> <days|weeks|months>"`
		}
	}
	for _, loc := range inClauseRe.FindAllStringIndex(normalized, -1) {
		if !inCompleteRe.MatchString(normalized[loc[0]:]) {
			return `incomplete "in" clause: use "in <number> <days|weeks|months>"`
		}
	}

	if inDaysRe.MatchString(normalized) && anyWeekdayRe.MatchString(normalized) {
		return `ambiguous schedule: "in N days" cannot be combined with a weekday — use "in N weeks <weekday>" or "<weekday> in N weeks" instead`
	}
	if inWeeksMonthsRe.MatchString(normalized) {
		if todayTomorrowRe.MatchString(normalized) {
			return `contradictory schedule: "in N weeks/months" cannot be combined with "today" or "tomorrow"`
		}
		if numericDatePairRe.MatchString(normalized) {
			return `contradictory schedule: "in N weeks/months" cannot be combined with an explicit date`
		}
	}

	for _, m := range numericDatePairRe.FindAllStringSubmatch(normalized, -1) {
		if msg := checkDatePair(m[1], m[2], cfg, now); msg != "" {
			return msg
		}
	}

	for _, m := range monthNameDayRe.FindAllStringSubmatch(normalized, -1) {
		if msg := checkMonthDay(monthNumbers[m[1]], atoi(m[2]), now); msg != "" {
			return msg
		}
	}
	for _, m := range dayMonthNameRe.FindAllStringSubmatch(normalized, -1) {
		if msg := checkMonthDay(monthNumbers[m[2]], atoi(m[1]), now); msg != "" {
			return msg
		}
	}
	for _, m := range dayOfThisMonthRe.FindAllStringSubmatch(normalized, -1) {
		if msg := checkMonthDay(now.Month(), atoi(m[1]), now); msg != "" {
			return msg
		}
	}

	return ""
}

// checkMonthDay validates a month-name date ("february 30th") against the
// real calendar of the current year, the same round trip checkDatePair does
// for numeric pairs.
func checkMonthDay(month time.Month, day int, now time.Time) string {
	label := fmt.Sprintf("%s %d", strings.ToLower(month.String()), day)
	if day < 1 || day > 31 {
		return fmt.Sprintf("invalid date %q: day %d is out of range", label, day)
	}
	check := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if check.Month() != month || check.Day() != day {
		return fmt.Sprintf("invalid date %q: that day does not exist", label)
	}
	return ""
}

// checkDatePair validates one D/D or D.D pair under the configured
// date-component order against the real calendar of the current year.
func checkDatePair(first, second string, cfg Settings, now time.Time) string {
	a, _ := strconv.Atoi(first)
	b, _ := strconv.Atoi(second)

	month, day := a, b
	format := "month/day"
	if cfg.DateOrder == DayFirst {
		month, day = b, a
		format = "day/month"
	}

	pair := first + "/" + second
	if month < 1 || month > 12 {
		return fmt.Sprintf("invalid date %q for %s format: month %d is out of range", pair, format, month)
	}
	if day < 1 || day > 31 {
		return fmt.Sprintf("invalid date %q for %s format: day %d is out of range", pair, format, day)
	}
	check := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
	if check.Month() != time.Month(month) || check.Day() != day {
		return fmt.Sprintf("invalid date %q for %s format: that day does not exist", pair, format)
	}
	return ""
}

const (
	maxDailyInterval   = 365
	maxWeeklyInterval  = 52
	maxMonthlyInterval = 24
)

// validateResult checks the composed result after extraction. Recurrence
// bounds are errors, never silent clamps.
func validateResult(title string, s schedule) string {
	if title == "" {
		return "reminder title is empty after removing the schedule"
	}
	if !s.recurring {
		return ""
	}
	if s.interval <= 0 {
		return "recurrence interval must be a positive number"
	}
	switch s.frequency {
	case Daily:
		if s.interval > maxDailyInterval {
			return fmt.Sprintf("recurrence interval too large: every %d days (max %d)", s.interval, maxDailyInterval)
		}
	case Weekly:
		if s.interval > maxWeeklyInterval {
			return fmt.Sprintf("recurrence interval too large: every %d weeks (max %d)", s.interval, maxWeeklyInterval)
		}
	case Monthly:
		if s.interval > maxMonthlyInterval {
			return fmt.Sprintf("recurrence interval too large: every %d months (max %d)", s.interval, maxMonthlyInterval)
		}
	default:
		return "recurring reminder is missing a frequency"
	}
	return ""
}

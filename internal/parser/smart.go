package parser

import (
	"regexp"
	"time"
)

// The smart strategy scans the whole utterance for each semantic category
// independently, with no fixed phrase order, then composes the strongest
// signals into one schedule. Each detector records the literal substring it
// matched so the title extractor can remove exactly that span.

const monthAlt = `january|february|march|april|may|june|july|august|september|october|november|december`

var (
	smartRecurRe    = regexp.MustCompile(`\bevery\s+(\d+)\s+(days?|weeks?|months?)\b`)
	smartWeekdayRe  = regexp.MustCompile(`\b(?:(on|this|next)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	smartNextWeekRe = regexp.MustCompile(`\bnext\s+week\b`)

	// Clock detection deliberately skips standalone numerals: without an
	// "at", a minute part or a meridiem, a number is not read as a time
	// here (ordinals and unit counts would misparse).
	smartAtClockRe = regexp.MustCompile(`\b(?:at|by)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
	smartHMRe      = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	smartHourMerRe = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	smartPeriodRe  = regexp.MustCompile(`\b(morning|noon|afternoon|evening|night)\b`)

	smartDateRe = regexp.MustCompile(`\b(\d{1,2})[./](\d{1,2})(?:[./](\d{4}))?\b`)

	smartMonthDayRe     = regexp.MustCompile(`\b(` + monthAlt + `)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	smartDayMonthRe     = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlt + `)\b`)
	smartDayThisMonthRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)\s+of\s+this\s+month\b`)
	smartBareMonthRe    = regexp.MustCompile(`\b(` + monthAlt + `)\b`)

	smartRelRe    = regexp.MustCompile(`\bin\s+(\d+)\s+(days?|weeks?|months?)\b`)
	smartRelDayRe = regexp.MustCompile(`\b(today|tomorrow)\b`)
)

var monthNumbers = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

type recurrenceHit struct {
	interval  int
	frequency Frequency
	literal   string
}

type weekdayHit struct {
	weekday       time.Weekday
	literal       string
	prepositioned bool // "on monday", "this friday", "next tuesday"
}

type clockHit struct {
	tod      TimeOfDay
	literal  string
	isPeriod bool
}

type dateHit struct {
	date    time.Time
	literal string
}

type relativeHit struct {
	date    time.Time // anchor: now advanced by the stated distance
	unit    string    // day, week or month
	literal string
}

type monthHit struct {
	date     time.Time
	literal  string
	hasDay   bool // carries a day numeral ("october 15th")
	mentions int  // month-name word count in the whole text
}

type relDayHit struct {
	tomorrow bool
	literal  string
}

// nextWeekHit pairs with the weekday hit when one is present: "next week
// tuesday" anchors a week out and rolls to tuesday inside that week.
type nextWeekHit struct {
	literal string
}

// detection holds the first hit of each category, or nil.
type detection struct {
	recurrence  *recurrenceHit
	weekday     *weekdayHit
	clock       *clockHit
	numericDate *dateHit
	monthDate   *monthHit
	nextWeek    *nextWeekHit
	relative    *relativeHit
	relDay      *relDayHit
}

// smartDetect runs every category detector over the normalized text. The
// second return is false when no category matched at all.
func smartDetect(text string, cfg Settings, now time.Time) (detection, bool) {
	var det detection

	if m := smartRecurRe.FindStringSubmatch(text); m != nil {
		det.recurrence = &recurrenceHit{
			interval:  atoi(m[1]),
			frequency: unitFrequency(m[2]),
			literal:   m[0],
		}
	}
	if m := smartWeekdayRe.FindStringSubmatch(text); m != nil {
		det.weekday = &weekdayHit{
			weekday:       weekdayNumbers[m[2]],
			literal:       m[0],
			prepositioned: m[1] != "",
		}
	}
	det.clock = detectClock(text, cfg)
	if m := smartDateRe.FindStringSubmatch(text); m != nil {
		if d, ok := absoluteDate(m[1], m[2], m[3], cfg, now); ok {
			det.numericDate = &dateHit{date: d, literal: m[0]}
		}
	}
	det.monthDate = detectMonthDate(text, now)
	if m := smartNextWeekRe.FindStringSubmatch(text); m != nil {
		det.nextWeek = &nextWeekHit{literal: m[0]}
	}
	if m := smartRelRe.FindStringSubmatch(text); m != nil {
		det.relative = &relativeHit{
			date:    advance(now, atoi(m[1]), m[2]),
			unit:    normalizeUnit(m[2]),
			literal: m[0],
		}
	}
	if m := smartRelDayRe.FindStringSubmatch(text); m != nil {
		det.relDay = &relDayHit{tomorrow: m[1] == "tomorrow", literal: m[0]}
	}

	found := det.recurrence != nil || det.weekday != nil || det.clock != nil ||
		det.numericDate != nil || det.monthDate != nil || det.nextWeek != nil ||
		det.relative != nil || det.relDay != nil
	return det, found
}

func detectClock(text string, cfg Settings) *clockHit {
	for _, re := range []*regexp.Regexp{smartAtClockRe, smartHMRe, smartHourMerRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			hour, minute, mer := m[1], "", ""
			if len(m) > 3 {
				minute, mer = m[2], m[3]
			} else {
				mer = m[2]
			}
			return &clockHit{tod: resolveClock(hour, minute, mer, cfg), literal: m[0]}
		}
	}
	if m := smartPeriodRe.FindStringSubmatch(text); m != nil {
		return &clockHit{tod: cfg.preset(m[1]), literal: m[0], isPeriod: true}
	}
	return nil
}

func detectMonthDate(text string, now time.Time) *monthHit {
	mentions := len(smartBareMonthRe.FindAllString(text, -1))

	if m := smartMonthDayRe.FindStringSubmatch(text); m != nil {
		return &monthHit{
			date:     monthDayDate(monthNumbers[m[1]], atoi(m[2]), now),
			literal:  m[0],
			hasDay:   true,
			mentions: mentions,
		}
	}
	if m := smartDayThisMonthRe.FindStringSubmatch(text); m != nil {
		// "15th of this month" must win over the day-month scan below.
		return &monthHit{
			date:     monthDayDate(now.Month(), atoi(m[1]), now),
			literal:  m[0],
			hasDay:   true,
			mentions: mentions,
		}
	}
	if m := smartDayMonthRe.FindStringSubmatch(text); m != nil {
		return &monthHit{
			date:     monthDayDate(monthNumbers[m[2]], atoi(m[1]), now),
			literal:  m[0],
			hasDay:   true,
			mentions: mentions,
		}
	}
	if m := smartBareMonthRe.FindStringSubmatch(text); m != nil {
		return &monthHit{
			date:     monthDayDate(monthNumbers[m[1]], 1, now),
			literal:  m[0],
			mentions: mentions,
		}
	}
	return nil
}

// monthDayDate resolves a month+day to this year, rolling to next year once
// the date has passed.
func monthDayDate(month time.Month, day int, now time.Time) time.Time {
	d := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if d.Before(startOfDay(now)) {
		d = d.AddDate(1, 0, 0)
	}
	return d
}

// compose builds the final schedule from the collected detections. With a
// recurrence present, the best available date signal anchors the series
// (explicit date > next week > weekday > relative distance > today/tomorrow
// > a week out). Without one, the single best date-ish detection wins; a
// lone time
// detection only moves the clock on today's date.
func (det detection) compose(cfg Settings, now time.Time) schedule {
	var s schedule
	if det.recurrence != nil {
		s.recurring = true
		s.interval = det.recurrence.interval
		s.frequency = det.recurrence.frequency
	}

	var date time.Time
	var haveDate bool
	switch {
	case det.numericDate != nil:
		date, haveDate = det.numericDate.date, true
	case det.monthDate != nil:
		date, haveDate = det.monthDate.date, true
	case det.nextWeek != nil:
		anchor := now.AddDate(0, 0, 7)
		if det.weekday != nil {
			date = weekdayWithin(anchor, det.weekday.weekday)
		} else {
			date = anchor
		}
		haveDate = true
	case det.weekday != nil:
		// "in 2 weeks friday" rolls forward inside the anchor week, the
		// same arithmetic the ordered table uses for that phrasing.
		if det.relative != nil && det.relative.unit != "day" {
			date = weekdayWithin(det.relative.date, det.weekday.weekday)
		} else {
			date = nextWeekday(now, det.weekday.weekday)
		}
		haveDate = true
	case det.relative != nil:
		date, haveDate = det.relative.date, true
	case det.relDay != nil:
		date, haveDate = now, true
		if det.relDay.tomorrow {
			date = now.AddDate(0, 0, 1)
		}
	case s.recurring:
		date, haveDate = now.AddDate(0, 0, 7), true
	}

	tod := TimeOfDay{Hour: defaultHour, Minute: defaultMinute}
	if det.clock != nil {
		tod = det.clock.tod
	}

	switch {
	case haveDate:
		due := applyClock(date, tod)
		s.due = &due
	case det.clock != nil:
		due := applyClock(now, tod)
		s.due = &due
	}
	return s
}

package parser

import (
	"regexp"
	"strconv"
	"time"
)

// orderedExtract walks the fixed pattern table top to bottom and decodes the
// first row whose expression matches anywhere in the text. No later row is
// tried once one matches, and there is no backtracking to look for a
// "better" interpretation: the table order already is the preference.
func orderedExtract(text string, cfg Settings, now time.Time) (schedule, bool) {
	for _, ps := range patternTable {
		m := ps.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return decodePattern(ps, captures(ps.re, m), cfg, now), true
	}
	return schedule{}, false
}

// captures maps named groups of a match to their captured text.
func captures(re *regexp.Regexp, match []string) map[string]string {
	g := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(match) {
			g[name] = match[i]
		}
	}
	return g
}

// decodePattern turns one matched row into a schedule using the shared
// decoding helpers.
func decodePattern(ps patternSpec, g map[string]string, cfg Settings, now time.Time) schedule {
	var s schedule
	if g["interval"] != "" {
		s.recurring = true
		s.interval = atoi(g["interval"])
		s.frequency = unitFrequency(g["runit"])
	}

	var date time.Time
	switch ps.kind {
	case kindWeekOffsetWeekday:
		anchor := advance(now, atoi(g["n"]), g["unit"])
		date = weekdayWithin(anchor, weekdayNumbers[g["weekday"]])
	case kindNextWeek:
		anchor := now.AddDate(0, 0, 7)
		if wd, ok := weekdayNumbers[g["weekday"]]; ok && g["weekday"] != "" {
			date = weekdayWithin(anchor, wd)
		} else {
			date = anchor
		}
	case kindAbsoluteDate:
		d, ok := absoluteDate(g["d1"], g["d2"], g["year"], cfg, now)
		if !ok {
			// Prevalidation already rejects impossible dates; an
			// undecodable capture here means no schedule.
			return s
		}
		date = d
	case kindRelativeDistance:
		date = advance(now, atoi(g["n"]), g["unit"])
	case kindRelativeDay:
		date = now
		if g["rel"] == "tomorrow" {
			date = now.AddDate(0, 0, 1)
		}
	case kindWeekday:
		date = nextWeekday(now, weekdayNumbers[g["weekday"]])
	case kindRecurrenceOnly:
		// No date signal: anchor a week out, same default the smart
		// strategy uses.
		date = now.AddDate(0, 0, 7)
	case kindTimeOnly, kindBareHour:
		date = now
	}

	due := applyClock(date, clockFromGroups(g, cfg))
	s.due = &due
	return s
}

// clockFromGroups resolves the time-of-day for a match: an explicit clock
// capture wins, then a named period preset, then the 9:00 fallback.
func clockFromGroups(g map[string]string, cfg Settings) TimeOfDay {
	switch {
	case g["hour"] != "":
		return resolveClock(g["hour"], g["minute"], g["ampm"], cfg)
	case g["period"] != "":
		return cfg.preset(g["period"])
	default:
		return TimeOfDay{Hour: defaultHour, Minute: defaultMinute}
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

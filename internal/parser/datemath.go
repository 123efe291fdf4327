package parser

import (
	"strconv"
	"time"
)

var weekdayNumbers = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// nextWeekday returns the next occurrence of wd strictly after now: if today
// already is wd, the result is exactly seven days out, never the same day.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	offset := (int(wd)-int(now.Weekday())+6)%7 + 1
	return now.AddDate(0, 0, offset)
}

// weekdayWithin rolls forward from anchor to the same-or-next occurrence of
// wd, staying inside the week/month the anchor already landed in.
func weekdayWithin(anchor time.Time, wd time.Weekday) time.Time {
	offset := (int(wd) - int(anchor.Weekday()) + 7) % 7
	return anchor.AddDate(0, 0, offset)
}

// advance moves now forward by n units, where unit is a (possibly plural)
// day/week/month word.
func advance(now time.Time, n int, unit string) time.Time {
	switch normalizeUnit(unit) {
	case "day":
		return now.AddDate(0, 0, n)
	case "week":
		return now.AddDate(0, 0, n*7)
	default:
		return now.AddDate(0, n, 0)
	}
}

func normalizeUnit(unit string) string {
	switch unit {
	case "day", "days":
		return "day"
	case "week", "weeks":
		return "week"
	default:
		return "month"
	}
}

func unitFrequency(unit string) Frequency {
	switch normalizeUnit(unit) {
	case "day":
		return Daily
	case "week":
		return Weekly
	default:
		return Monthly
	}
}

// absoluteDate decodes a D[./]D[[./]YYYY] capture under the configured
// date-component order. With no year, the current year is assumed and a date
// already behind us rolls to next year. Range errors are the input
// validator's job; this returns false only for captures it cannot decode.
func absoluteDate(first, second, year string, cfg Settings, now time.Time) (time.Time, bool) {
	a, err1 := strconv.Atoi(first)
	b, err2 := strconv.Atoi(second)
	if err1 != nil || err2 != nil {
		return time.Time{}, false
	}

	month, day := a, b
	if cfg.DateOrder == DayFirst {
		month, day = b, a
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	y := now.Year()
	explicitYear := false
	if year != "" {
		if parsed, err := strconv.Atoi(year); err == nil {
			y = parsed
			explicitYear = true
		}
	}

	date := time.Date(y, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}
	if !explicitYear && date.Before(startOfDay(now)) {
		date = date.AddDate(1, 0, 0)
	}
	return date, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Default clock applied when the utterance carries no time information.
const (
	defaultHour   = 9
	defaultMinute = 0
)

// resolveClock turns hour/minute/meridiem captures into a 24-hour clock
// time. A missing meridiem falls back to the configured default, except hour
// 12 which always means noon bare, midnight with "am". Hours 13-24 are read
// as 24-hour clock (24 wraps to midnight).
func resolveClock(hourStr, minuteStr, meridiem string, cfg Settings) TimeOfDay {
	hour, _ := strconv.Atoi(hourStr)
	minute := 0
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}

	switch meridiem {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 12 {
			hour += 12
		}
	default:
		if hour == 24 {
			hour = 0
		} else if hour < 12 && cfg.DefaultMeridiem == PM {
			hour += 12
		}
	}
	return TimeOfDay{Hour: hour, Minute: minute}
}

// applyClock pins a resolved clock time onto a calendar date.
func applyClock(date time.Time, t TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

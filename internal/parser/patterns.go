package parser

import "regexp"

// patternKind selects the date-anchor arithmetic a matched pattern decodes
// with. The capture-group-to-field mapping itself is carried by the named
// groups inside each expression.
type patternKind int

const (
	kindWeekOffsetWeekday patternKind = iota // "in 2 weeks friday" / "friday in 2 weeks"
	kindNextWeek                             // "next week [tuesday]"
	kindAbsoluteDate                         // "15/12[/2026]", "15.12"
	kindRelativeDistance                     // "in 3 days/weeks/months"
	kindRelativeDay                          // "today" / "tomorrow"
	kindWeekday                              // bare weekday fallback
	kindRecurrenceOnly                       // "every 2 weeks" with no date
	kindTimeOnly                             // "at 5pm" with no date
	kindBareHour                             // speculative standalone numeral
)

// patternSpec is one row of the ordered pattern table. Row order encodes
// priority: the first expression that matches anywhere in the text wins and
// no later row is tried, so rows run from most specific to least.
type patternSpec struct {
	name      string
	kind      patternKind
	recurring bool // the expression contains a recurrence clause
	re        *regexp.Regexp
}

// Shared expression fragments. All matching happens on lowercased,
// shortcut-expanded text, so only canonical long forms appear here.
const (
	gWeekday = `(?P<weekday>monday|tuesday|wednesday|thursday|friday|saturday|sunday)`
	gClock   = `(?P<hour>\d{1,2})(?::(?P<minute>\d{2}))?\s*(?P<ampm>am|pm)?`
	gPeriod  = `(?P<period>morning|noon|afternoon|evening|night)`
	gRecur   = `every\s+(?P<interval>\d+)\s+(?P<runit>days?|weeks?|months?)`
	gDate    = `(?P<d1>\d{1,2})[./](?P<d2>\d{1,2})(?:[./](?P<year>\d{4}))?`
	gRel     = `(?P<rel>today|tomorrow)`
	gInWM    = `in\s+(?P<n>\d+)\s+(?P<unit>weeks?|months?)`
	gInAny   = `in\s+(?P<n>\d+)\s+(?P<unit>days?|weeks?|months?)`

	sep    = `\s+`
	atWord = `(?:at|by)\s+`
	onOpt  = `(?:on\s+|this\s+|next\s+)?`
)

func row(name string, kind patternKind, recurring bool, expr string) patternSpec {
	return patternSpec{name: name, kind: kind, recurring: recurring, re: regexp.MustCompile(`\b` + expr + `\b`)}
}

// patternTable is fixed at build time. Reordering rows changes which
// interpretation wins when several could match, so edits here are
// priority edits.
var patternTable = []patternSpec{
	// Week/month offset plus weekday, "in N weeks" first.
	row("in-wm-weekday-clock-recur", kindWeekOffsetWeekday, true, gInWM+sep+onOpt+gWeekday+sep+atWord+gClock+sep+gRecur),
	row("in-wm-weekday-period-recur", kindWeekOffsetWeekday, true, gInWM+sep+onOpt+gWeekday+sep+gPeriod+sep+gRecur),
	row("in-wm-weekday-clock", kindWeekOffsetWeekday, false, gInWM+sep+onOpt+gWeekday+sep+atWord+gClock),
	row("in-wm-weekday-period", kindWeekOffsetWeekday, false, gInWM+sep+onOpt+gWeekday+sep+gPeriod),
	row("in-wm-weekday-recur", kindWeekOffsetWeekday, true, gInWM+sep+onOpt+gWeekday+sep+gRecur),
	row("in-wm-weekday", kindWeekOffsetWeekday, false, gInWM+sep+onOpt+gWeekday),

	// Same meaning, weekday first.
	row("weekday-in-wm-clock-recur", kindWeekOffsetWeekday, true, gWeekday+sep+gInWM+sep+atWord+gClock+sep+gRecur),
	row("weekday-in-wm-period-recur", kindWeekOffsetWeekday, true, gWeekday+sep+gInWM+sep+gPeriod+sep+gRecur),
	row("weekday-in-wm-clock", kindWeekOffsetWeekday, false, gWeekday+sep+gInWM+sep+atWord+gClock),
	row("weekday-in-wm-period", kindWeekOffsetWeekday, false, gWeekday+sep+gInWM+sep+gPeriod),
	row("weekday-in-wm-recur", kindWeekOffsetWeekday, true, gWeekday+sep+gInWM+sep+gRecur),
	row("weekday-in-wm", kindWeekOffsetWeekday, false, gWeekday+sep+gInWM),

	// "next week", optionally pinned to a weekday.
	row("next-week-weekday-clock-recur", kindNextWeek, true, `next\s+week`+sep+gWeekday+sep+atWord+gClock+sep+gRecur),
	row("next-week-weekday-period-recur", kindNextWeek, true, `next\s+week`+sep+gWeekday+sep+gPeriod+sep+gRecur),
	row("next-week-weekday-clock", kindNextWeek, false, `next\s+week`+sep+gWeekday+sep+atWord+gClock),
	row("next-week-weekday-period", kindNextWeek, false, `next\s+week`+sep+gWeekday+sep+gPeriod),
	row("next-week-weekday-recur", kindNextWeek, true, `next\s+week`+sep+gWeekday+sep+gRecur),
	row("next-week-weekday", kindNextWeek, false, `next\s+week`+sep+gWeekday),
	row("weekday-next-week-clock", kindNextWeek, false, gWeekday+sep+`next\s+week`+sep+atWord+gClock),
	row("weekday-next-week-period", kindNextWeek, false, gWeekday+sep+`next\s+week`+sep+gPeriod),
	row("weekday-next-week", kindNextWeek, false, gWeekday+sep+`next\s+week`),
	row("next-week-clock-recur", kindNextWeek, true, `next\s+week`+sep+atWord+gClock+sep+gRecur),
	row("next-week-period-recur", kindNextWeek, true, `next\s+week`+sep+gPeriod+sep+gRecur),
	row("next-week-clock", kindNextWeek, false, `next\s+week`+sep+atWord+gClock),
	row("next-week-period", kindNextWeek, false, `next\s+week`+sep+gPeriod),
	row("next-week-recur", kindNextWeek, true, `next\s+week`+sep+gRecur),
	row("next-week", kindNextWeek, false, `next\s+week`),

	// Absolute numeric dates, with or without year.
	row("date-clock-recur", kindAbsoluteDate, true, gDate+sep+atWord+gClock+sep+gRecur),
	row("date-period-recur", kindAbsoluteDate, true, gDate+sep+gPeriod+sep+gRecur),
	row("clock-date-recur", kindAbsoluteDate, true, atWord+gClock+sep+onOpt+gDate+sep+gRecur),
	row("date-clock", kindAbsoluteDate, false, gDate+sep+atWord+gClock),
	row("date-period", kindAbsoluteDate, false, gDate+sep+gPeriod),
	row("clock-date", kindAbsoluteDate, false, atWord+gClock+sep+onOpt+gDate),
	row("date-recur", kindAbsoluteDate, true, gDate+sep+gRecur),
	row("date", kindAbsoluteDate, false, gDate),

	// Relative distances: "in 3 days", any unit.
	row("in-any-clock-recur", kindRelativeDistance, true, gInAny+sep+atWord+gClock+sep+gRecur),
	row("in-any-period-recur", kindRelativeDistance, true, gInAny+sep+gPeriod+sep+gRecur),
	row("in-any-clock", kindRelativeDistance, false, gInAny+sep+atWord+gClock),
	row("in-any-period", kindRelativeDistance, false, gInAny+sep+gPeriod),
	row("clock-in-any", kindRelativeDistance, false, atWord+gClock+sep+gInAny),
	row("in-any-recur", kindRelativeDistance, true, gInAny+sep+gRecur),
	row("in-any", kindRelativeDistance, false, gInAny),

	// Today / tomorrow.
	row("rel-clock-recur", kindRelativeDay, true, gRel+sep+atWord+gClock+sep+gRecur),
	row("rel-period-recur", kindRelativeDay, true, gRel+sep+gPeriod+sep+gRecur),
	row("rel-clock", kindRelativeDay, false, gRel+sep+atWord+gClock),
	row("rel-period", kindRelativeDay, false, gRel+sep+gPeriod),
	row("period-rel", kindRelativeDay, false, gPeriod+sep+gRel),
	row("clock-rel", kindRelativeDay, false, atWord+gClock+sep+gRel),
	row("rel-recur", kindRelativeDay, true, gRel+sep+gRecur),
	row("rel", kindRelativeDay, false, gRel),

	// Bare weekday fallback, least specific of the date anchors.
	row("weekday-clock-recur", kindWeekday, true, onOpt+gWeekday+sep+atWord+gClock+sep+gRecur),
	row("weekday-period-recur", kindWeekday, true, onOpt+gWeekday+sep+gPeriod+sep+gRecur),
	row("weekday-clock", kindWeekday, false, onOpt+gWeekday+sep+atWord+gClock),
	row("weekday-period", kindWeekday, false, onOpt+gWeekday+sep+gPeriod),
	row("period-weekday", kindWeekday, false, gPeriod+sep+onOpt+gWeekday),
	row("clock-weekday", kindWeekday, false, atWord+gClock+sep+onOpt+gWeekday),
	row("weekday-recur", kindWeekday, true, onOpt+gWeekday+sep+gRecur),
	row("weekday", kindWeekday, false, onOpt+gWeekday),

	// Recurrence with no date anchor at all.
	row("clock-recur", kindRecurrenceOnly, true, atWord+gClock+sep+gRecur),
	row("period-recur", kindRecurrenceOnly, true, gPeriod+sep+gRecur),
	row("recur-clock", kindRecurrenceOnly, true, gRecur+sep+atWord+gClock),
	row("recur-period", kindRecurrenceOnly, true, gRecur+sep+gPeriod),
	row("recur", kindRecurrenceOnly, true, gRecur),

	// Time only: the due date stays on today's calendar day.
	row("at-clock", kindTimeOnly, false, atWord+gClock),
	row("period", kindTimeOnly, false, gPeriod),

	// Last resort: a standalone numeral speculatively read as an hour.
	row("bare-hour", kindBareHour, false, `(?P<hour>\d{1,2})`),
}

package parser

import "regexp"

// Bare "every day/week/month" carries an implicit interval of 1. Rewriting it
// before matching keeps the pattern table down to a single every-clause shape.
var bareEveryRe = regexp.MustCompile(`\bevery\s+(day|week|month)\b`)

// Shortcut keywords, recognized only when enabled in settings. Expansion runs
// before validation and extraction so the pattern table only ever sees the
// canonical long forms.
var shortcutRes = []struct {
	re   *regexp.Regexp
	full string
}{
	{regexp.MustCompile(`\btm\b`), "tomorrow"},
	{regexp.MustCompile(`\btd\b`), "today"},
	{regexp.MustCompile(`\bmon\b`), "monday"},
	{regexp.MustCompile(`\btues?\b`), "tuesday"},
	{regexp.MustCompile(`\bwed\b`), "wednesday"},
	{regexp.MustCompile(`\bthu(?:rs?)?\b`), "thursday"},
	{regexp.MustCompile(`\bfri\b`), "friday"},
	{regexp.MustCompile(`\bsat\b`), "saturday"},
	{regexp.MustCompile(`\bsun\b`), "sunday"},
}

// normalizeText canonicalizes already-lowercased input: "every day" becomes
// "every 1 day", and shortcut aliases are expanded when the settings allow
// them.
func normalizeText(lower string, cfg Settings) string {
	out := bareEveryRe.ReplaceAllString(lower, "every 1 $1")
	if cfg.ShortcutsEnabled {
		for _, s := range shortcutRes {
			out = s.re.ReplaceAllString(out, s.full)
		}
	}
	return out
}

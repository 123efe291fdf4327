package commands

import (
	"fmt"
	"time"
)

// formatDue formats a due date for display, relative when close.
func formatDue(due *time.Time) string {
	if due == nil {
		return ""
	}

	now := time.Now()

	// Calculate calendar days difference
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	// Always show the actual date and time to avoid confusion
	dateStr := due.Format("02 Jan 15:04")

	if daysDiff < 0 {
		return fmt.Sprintf("⚠️ OVERDUE (%s)", dateStr)
	} else if daysDiff == 0 {
		return fmt.Sprintf("🔥 today at %s", due.Format("15:04"))
	} else if daysDiff == 1 {
		return fmt.Sprintf("📅 tomorrow at %s", due.Format("15:04"))
	} else if daysDiff <= 7 {
		return fmt.Sprintf("📅 %s (in %d days)", dateStr, daysDiff)
	}
	return fmt.Sprintf("📅 %s", dateStr)
}

// formatRecurrence renders an interval+frequency pair like "every 2 weeks".
func formatRecurrence(interval int, frequency string) string {
	unit := map[string]string{"daily": "day", "weekly": "week", "monthly": "month"}[frequency]
	if unit == "" {
		return ""
	}
	if interval == 1 {
		return "every " + unit
	}
	return fmt.Sprintf("every %d %ss", interval, unit)
}

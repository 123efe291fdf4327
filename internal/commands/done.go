package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"remindme/internal/db"
)

var doneCmd = &cobra.Command{
	Use:   "done [reminder-id]",
	Short: "Complete a reminder",
	Long:  "Complete a reminder. Recurring reminders roll forward to their next occurrence instead of closing.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid reminder ID '%s'\n", args[0])
			return
		}

		reminder, err := db.MarkReminderDone(uint(id))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if reminder.Status == "done" {
			fmt.Printf("✅ Completed reminder #%d: %s\n", reminder.ID, reminder.Title)
			return
		}
		fmt.Printf("🔁 Reminder #%d rolled forward: %s\n", reminder.ID, reminder.Title)
		if reminder.DueAt != nil {
			fmt.Printf("Next due: %s\n", formatDue(reminder.DueAt))
		}
	},
}

var removeCmd = &cobra.Command{
	Use:     "rm [reminder-id]",
	Aliases: []string{"remove"},
	Short:   "Delete a reminder",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid reminder ID '%s'\n", args[0])
			return
		}

		if err := db.DeleteReminder(uint(id)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted reminder #%d\n", id)
	},
}

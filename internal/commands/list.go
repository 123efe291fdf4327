package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"remindme/internal/db"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List reminders",
	Long:    "List pending reminders, soonest first. Use --all to include completed ones.",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		reminders, err := db.GetReminders()
		if err != nil {
			fmt.Printf("Error fetching reminders: %v\n", err)
			return
		}

		showAll, _ := cmd.Flags().GetBool("all")
		showDone, _ := cmd.Flags().GetBool("done")

		// Print table header
		fmt.Printf("%-4s %-40s %-28s %s\n", "ID", "TITLE", "DUE", "REPEATS")
		fmt.Println(strings.Repeat("-", 86))

		shown := 0
		for _, r := range reminders {
			if !showAll {
				if showDone && r.Status != "done" {
					continue
				}
				if !showDone && r.Status == "done" {
					continue
				}
			}
			shown++

			// Truncate title if too long
			title := r.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}

			due := ""
			if r.DueAt != nil {
				due = formatDue(r.DueAt)
			}
			repeats := ""
			if r.Recurring {
				repeats = formatRecurrence(r.RecurInterval, r.RecurFrequency)
			}

			fmt.Printf("%-4d %-40s %-28s %s\n", r.ID, title, due, repeats)
		}

		if shown == 0 {
			fmt.Println("No reminders found. Use 'remindme add \"pay rent tomorrow\"' to create one.")
		}
	},
}

func init() {
	listCmd.Flags().Bool("all", false, "Include completed reminders")
	listCmd.Flags().Bool("done", false, "Show only completed reminders")
}

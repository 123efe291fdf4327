package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"remindme/internal/db"
	"remindme/internal/parser"
	"remindme/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [reminder text]",
	Short: "Add a new reminder from natural language",
	Long: `Add a reminder by describing it in plain English.

Modes:
  Interactive: remindme add -i (or just 'remindme add' with no arguments)
  Quick: remindme add "pay rent in 2 weeks every 1 month"

Examples:
  remindme add "take out trash tuesday morning"
  remindme add "dentist appointment 12/15 at 3pm"
  remindme add "water plants every 3 days"
  remindme add "standup monday at 9:30"

The date order (15/12 vs 12/15), default AM/PM, period times
(morning, evening, ...) and shortcut words (tm, td, mon, ...) all come
from 'remindme settings'.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _, err := loadConfig()
		if err != nil {
			fmt.Printf("Error loading settings: %v\n", err)
			return
		}

		interactive, _ := cmd.Flags().GetBool("interactive")
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			initDB()
			prefill := strings.Join(args, " ")
			if err := tui.RunAddReminderTUI(cfg, prefill); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		text := strings.Join(args, " ")
		p := parser.New(cfg)
		parsed := p.Parse(text)

		if !parsed.IsValid {
			fmt.Printf("⚠️  %s\n", parsed.ErrorMessage)
			return
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		if dryRun {
			printParsed(parsed)
			return
		}

		initDB()
		source := "typed"
		if voice, _ := cmd.Flags().GetBool("voice"); voice {
			source = "voice"
		}
		reminder, err := db.CreateReminder(db.FromParsed(parsed, source))
		if err != nil {
			fmt.Printf("Error creating reminder: %v\n", err)
			return
		}

		fmt.Printf("Created reminder #%d: %s\n", reminder.ID, reminder.Title)
		if reminder.DueAt != nil {
			fmt.Printf("  Due: %s\n", formatDue(reminder.DueAt))
		}
		if reminder.Recurring {
			fmt.Printf("  Repeats: %s\n", formatRecurrence(reminder.RecurInterval, reminder.RecurFrequency))
		}
	},
}

// printParsed shows the parse result without storing anything.
func printParsed(parsed parser.ParsedReminder) {
	fmt.Printf("Title: %s\n", parsed.Title)
	if parsed.DueDate != nil {
		fmt.Printf("Due:   %s\n", parsed.DueDate.Format("Mon 02 Jan 2006 15:04"))
	} else {
		fmt.Println("Due:   (none — plain task)")
	}
	if parsed.IsRecurring {
		fmt.Printf("Repeats: %s\n", formatRecurrence(parsed.RecurrenceInterval, string(parsed.RecurrenceFrequency)))
	}
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().Bool("dry-run", false, "Parse and print the result without saving")
	addCmd.Flags().Bool("voice", false, "Mark the reminder as coming from voice input")
}

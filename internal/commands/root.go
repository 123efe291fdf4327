package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"remindme/internal/config"
	"remindme/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "remindme",
	Short: "A natural-language reminder CLI",
	Long: `remindme turns plain English into scheduled reminders.
Type what you would say out loud — "pay rent in 2 weeks every 1 month",
"take out trash tuesday morning" — and remindme works out the title,
the due date and the recurrence.`,
}

// loadConfig reads the settings file, creating it with defaults on first run.
func loadConfig() (config.Config, string, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.LoadOrCreate(path)
	return cfg, path, err
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(""); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("remindme %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"remindme/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change parsing settings",
	Long: `Show the formatting preferences the parser uses.

The parser re-reads settings on every parse, so changes apply to the
very next 'remindme add'.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, path, err := loadConfig()
		if err != nil {
			fmt.Printf("Error loading settings: %v\n", err)
			return
		}

		fmt.Printf("Settings file: %s\n\n", path)
		fmt.Printf("  date-order    %s\n", cfg.DateOrder)
		fmt.Printf("  meridiem      %s\n", cfg.DefaultMeridiem)
		fmt.Printf("  shortcuts     %t\n", cfg.ShortcutsEnabled)
		fmt.Printf("  morning       %s\n", cfg.TimePresets.Morning)
		fmt.Printf("  noon          %s\n", cfg.TimePresets.Noon)
		fmt.Printf("  afternoon     %s\n", cfg.TimePresets.Afternoon)
		fmt.Printf("  evening       %s\n", cfg.TimePresets.Evening)
		fmt.Printf("  night         %s\n", cfg.TimePresets.Night)
		fmt.Printf("  trigger-words %s\n", strings.Join(cfg.VoiceTriggerWords, ", "))
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and persist it.

Keys:
  date-order     month-first | day-first
  meridiem       am | pm
  shortcuts      true | false
  morning, noon, afternoon, evening, night   HH:MM
  trigger-words  comma-separated list`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, path, err := loadConfig()
		if err != nil {
			fmt.Printf("Error loading settings: %v\n", err)
			return
		}

		key, value := strings.ToLower(args[0]), args[1]
		if err := applySetting(&cfg, key, value); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := config.Save(path, cfg); err != nil {
			fmt.Printf("Error saving settings: %v\n", err)
			return
		}
		fmt.Printf("Set %s = %s\n", key, value)
	},
}

func applySetting(cfg *config.Config, key, value string) error {
	lower := strings.ToLower(value)
	switch key {
	case "date-order":
		if lower != "month-first" && lower != "day-first" {
			return fmt.Errorf("date-order must be month-first or day-first")
		}
		cfg.DateOrder = lower
	case "meridiem":
		if lower != "am" && lower != "pm" {
			return fmt.Errorf("meridiem must be am or pm")
		}
		cfg.DefaultMeridiem = lower
	case "shortcuts":
		switch lower {
		case "true", "on", "yes":
			cfg.ShortcutsEnabled = true
		case "false", "off", "no":
			cfg.ShortcutsEnabled = false
		default:
			return fmt.Errorf("shortcuts must be true or false")
		}
	case "morning":
		return setPreset(&cfg.TimePresets.Morning, value)
	case "noon":
		return setPreset(&cfg.TimePresets.Noon, value)
	case "afternoon":
		return setPreset(&cfg.TimePresets.Afternoon, value)
	case "evening":
		return setPreset(&cfg.TimePresets.Evening, value)
	case "night":
		return setPreset(&cfg.TimePresets.Night, value)
	case "trigger-words":
		var words []string
		for _, w := range strings.Split(value, ",") {
			if w = strings.TrimSpace(w); w != "" {
				words = append(words, w)
			}
		}
		cfg.VoiceTriggerWords = words
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func setPreset(target *string, value string) error {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(value), "%d:%d", &h, &m); err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return fmt.Errorf("period times must be HH:MM")
	}
	*target = fmt.Sprintf("%02d:%02d", h, m)
	return nil
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"remindme/internal/parser"
)

// RunAddReminderTUI starts the interactive add reminder TUI
func RunAddReminderTUI(source parser.SettingsSource, prefill string) error {
	model := NewAddReminderModel(source, prefill)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddReminderModel); ok {
		if m.cancelled {
			fmt.Println("❌ Reminder creation cancelled.")
		} else if m.completed && m.createdID > 0 {
			fmt.Printf("✅ New reminder \"%s\" added - ID: %d\n", m.createdTitle, m.createdID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

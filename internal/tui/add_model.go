package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"remindme/internal/db"
	"remindme/internal/parser"
)

// AddReminderModel is a single-input add screen with a live parse preview:
// every keystroke re-runs the parser so the user sees the title, due date
// and recurrence remindme understood before saving.
type AddReminderModel struct {
	input  textinput.Model
	parser *parser.Parser
	parsed parser.ParsedReminder
	width  int
	height int

	err          error
	completed    bool
	cancelled    bool
	createdID    uint
	createdTitle string
}

// NewAddReminderModel creates the add reminder TUI model.
func NewAddReminderModel(source parser.SettingsSource, prefill string) AddReminderModel {
	input := textinput.New()
	input.Placeholder = `Describe it: "pay rent in 2 weeks every 1 month"`
	input.CharLimit = 200
	input.Width = 60
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.Focus()

	m := AddReminderModel{
		input:  input,
		parser: parser.New(source),
	}
	if prefill != "" {
		m.input.SetValue(prefill)
		m.parsed = m.parser.Parse(prefill)
	}
	return m
}

// Init initializes the model
func (m AddReminderModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddReminderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		inputWidth := m.width - 12
		if inputWidth < 30 {
			inputWidth = 30
		}
		if inputWidth > 80 {
			inputWidth = 80
		}
		m.input.Width = inputWidth
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			parsed := m.parser.Parse(text)
			m.parsed = parsed
			if !parsed.IsValid {
				return m, nil
			}
			reminder, err := db.CreateReminder(db.FromParsed(parsed, "typed"))
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.completed = true
			m.createdID = reminder.ID
			m.createdTitle = reminder.Title
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.parsed = m.parser.Parse(m.input.Value())
	return m, cmd
}

// View renders the input and the live preview pane.
func (m AddReminderModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("New reminder"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if strings.TrimSpace(m.input.Value()) != "" {
		if m.parsed.IsValid {
			b.WriteString(labelStyle.Render("Title:   "))
			b.WriteString(valueStyle.Render(m.parsed.Title))
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Due:     "))
			if m.parsed.DueDate != nil {
				b.WriteString(valueStyle.Render(m.parsed.DueDate.Format("Mon 02 Jan 2006 15:04")))
			} else {
				b.WriteString(valueStyle.Render("(none — plain task)"))
			}
			b.WriteString("\n")
			if m.parsed.IsRecurring {
				b.WriteString(labelStyle.Render("Repeats: "))
				b.WriteString(valueStyle.Render(recurrenceLabel(m.parsed)))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(errStyle.Render("⚠ " + m.parsed.ErrorMessage))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter save • esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)
	return box.Render(b.String())
}

func recurrenceLabel(p parser.ParsedReminder) string {
	unit := map[parser.Frequency]string{
		parser.Daily:   "day",
		parser.Weekly:  "week",
		parser.Monthly: "month",
	}[p.RecurrenceFrequency]
	if p.RecurrenceInterval == 1 {
		return "every " + unit
	}
	return "every " + strconv.Itoa(p.RecurrenceInterval) + " " + unit + "s"
}

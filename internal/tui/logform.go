package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"stride/internal/service"
	"stride/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldSleep = iota
	fieldSoreness
	fieldEnergy
	fieldNotes
	fieldRest
	fieldSave
	fieldCount
)

// LogFormModel is the wellness log entry form
type LogFormModel struct {
	queryService *service.QueryService
	inputs       []textinput.Model
	focus        int
	restDay      bool
	date         string
	errMsg       string
	saving       bool
}

// NewLogFormModel creates a new log form for today's date
func NewLogFormModel(qs *service.QueryService) LogFormModel {
	inputs := make([]textinput.Model, 4)

	sleep := textinput.New()
	sleep.Placeholder = "7.5"
	sleep.CharLimit = 5
	sleep.Width = 8
	sleep.Focus()
	inputs[fieldSleep] = sleep

	soreness := textinput.New()
	soreness.Placeholder = "0-10"
	soreness.CharLimit = 4
	soreness.Width = 8
	inputs[fieldSoreness] = soreness

	energy := textinput.New()
	energy.Placeholder = "0-10"
	energy.CharLimit = 4
	energy.Width = 8
	inputs[fieldEnergy] = energy

	notes := textinput.New()
	notes.Placeholder = "how did it go?"
	notes.CharLimit = 120
	notes.Width = 40
	inputs[fieldNotes] = notes

	return LogFormModel{
		queryService: qs,
		inputs:       inputs,
		date:         time.Now().Format("2006-01-02"),
	}
}

// Init initializes the form
func (m LogFormModel) Init() tea.Cmd {
	return textinput.Blink
}

type logSaveFailedMsg struct {
	err error
}

// Update handles messages
func (m LogFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logSaveFailedMsg:
		m.saving = false
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil

		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil

		case " ":
			if m.focus == fieldRest {
				m.restDay = !m.restDay
				return m, nil
			}

		case "enter":
			switch m.focus {
			case fieldRest:
				m.restDay = !m.restDay
				return m, nil
			case fieldSave:
				return m.submit()
			default:
				m.setFocus(m.focus + 1)
				return m, nil
			}
		}
	}

	return m, m.updateInputs(msg)
}

func (m *LogFormModel) setFocus(focus int) {
	if focus < 0 {
		focus = fieldCount - 1
	}
	if focus >= fieldCount {
		focus = 0
	}
	m.focus = focus

	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m LogFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m LogFormModel) submit() (tea.Model, tea.Cmd) {
	entry := &store.DailyLog{
		Date:    m.date,
		RestDay: m.restDay,
		Notes:   strings.TrimSpace(m.inputs[fieldNotes].Value()),
	}

	var err error
	if entry.SleepHours, err = parseWellnessInput(m.inputs[fieldSleep].Value(), 0, 24, "sleep hours"); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if entry.Soreness, err = parseWellnessInput(m.inputs[fieldSoreness].Value(), 0, 10, "soreness"); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if entry.Energy, err = parseWellnessInput(m.inputs[fieldEnergy].Value(), 0, 10, "energy"); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.saving = true

	qs := m.queryService
	return m, func() tea.Msg {
		if _, err := qs.LogWellness(entry); err != nil {
			return logSaveFailedMsg{err: err}
		}
		return LogSavedMsg{}
	}
}

// parseWellnessInput parses an optional numeric field. Empty means
// the field was not logged.
func parseWellnessInput(raw string, min, max float64, name string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	if v < min || v > max {
		return nil, fmt.Errorf("%s must be between %g and %g", name, min, max)
	}

	return &v, nil
}

// View renders the form
func (m LogFormModel) View() string {
	title := cardTitleStyle.Render("Log Today's Wellness")
	subtitle := mutedTextStyle.Render(m.date)

	var lines []string
	lines = append(lines, m.renderField("Sleep hours", fieldSleep))
	lines = append(lines, m.renderField("Soreness (0-10)", fieldSoreness))
	lines = append(lines, m.renderField("Energy (0-10)", fieldEnergy))
	lines = append(lines, m.renderField("Notes", fieldNotes))
	lines = append(lines, m.renderRestToggle())
	lines = append(lines, "")
	lines = append(lines, m.renderSaveButton())

	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render("  "+m.errMsg))
	}
	if m.saving {
		lines = append(lines, "", mutedTextStyle.Render("  Saving..."))
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		title, subtitle, "",
		strings.Join(lines, "\n"),
	)

	help := statusStyle.Render("  tab/shift+tab: move  enter: next field/save  space: toggle rest  esc: cancel")

	return lipgloss.JoinVertical(lipgloss.Left, cardStyle.Width(64).Render(form), help)
}

func (m LogFormModel) renderField(label string, field int) string {
	style := metricLabelStyle
	if m.focus == field {
		style = style.Foreground(primaryColor)
	}
	return fmt.Sprintf("%s %s", style.Render(label), m.inputs[field].View())
}

func (m LogFormModel) renderRestToggle() string {
	box := "[ ]"
	if m.restDay {
		box = "[x]"
	}

	label := metricLabelStyle
	if m.focus == fieldRest {
		label = label.Foreground(primaryColor)
	}
	return fmt.Sprintf("%s %s Rest day", label.Render("Rest"), box)
}

func (m LogFormModel) renderSaveButton() string {
	if m.focus == fieldSave {
		return lipgloss.NewStyle().Foreground(textColor).Background(primaryColor).Bold(true).Render(" Save ")
	}
	return mutedTextStyle.Render("[ Save ]")
}

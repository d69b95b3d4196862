package tui

import (
	"fmt"
	"strings"

	"stride/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// RecoveryModel is the recovery screen model
type RecoveryModel struct {
	queryService *service.QueryService
	view         *service.RecoveryView
	loading      bool
	err          error
}

// NewRecoveryModel creates a new recovery model
func NewRecoveryModel(qs *service.QueryService) RecoveryModel {
	return RecoveryModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the recovery screen
func (m RecoveryModel) Init() tea.Cmd {
	return m.loadView
}

type recoveryViewMsg struct {
	view *service.RecoveryView
	err  error
}

func (m RecoveryModel) loadView() tea.Msg {
	view, err := m.queryService.GetRecoveryView()
	if err != nil {
		return recoveryViewMsg{err: err}
	}
	return recoveryViewMsg{view: view}
}

// Update handles messages
func (m RecoveryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recoveryViewMsg:
		m.loading = false
		m.err = msg.err
		m.view = msg.view

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadView
		case "l":
			return m, func() tea.Msg { return OpenLogFormMsg{} }
		}
	}

	return m, nil
}

// View renders the recovery screen
func (m RecoveryModel) View() string {
	if m.loading {
		return "\n  Loading recovery data..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.view == nil || m.view.Score == nil {
		return "\n  No recovery data yet. Press 'l' to log today's wellness."
	}

	var sections []string

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderScoreCard(),
		"  ",
		m.renderFactorsCard(),
	)
	sections = append(sections, topRow)

	sections = append(sections, m.renderAdviceCard())

	if len(m.view.History) > 2 {
		sections = append(sections, m.renderTrendChart())
	}

	if len(m.view.Logs) > 0 {
		sections = append(sections, m.renderLogsTable())
	}

	help := statusStyle.Render("  Press 'l' to log today's wellness, 'r' to refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m RecoveryModel) renderScoreCard() string {
	s := m.view.Score

	title := cardTitleStyle.Render("Today's Recovery")

	scoreText := scoreStyle(s.Score).Bold(true).Render(fmt.Sprintf("%d", s.Score))
	scoreLine := scoreText + lipgloss.NewStyle().Foreground(mutedColor).Render(" / 100")

	bar := RenderProgressBar(s.Score, 100, 24)

	rec := mutedTextStyle.Render(s.Recommendation)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", scoreLine, bar, "", rec)
	return cardStyle.Width(40).Render(content)
}

func (m RecoveryModel) renderFactorsCard() string {
	s := m.view.Score

	title := cardTitleStyle.Render("Factors")

	var lines []string
	lines = append(lines, RenderMetric("Sleep", fmt.Sprintf("%.1f h", s.SleepHours), ""))
	lines = append(lines, RenderMetric("Soreness", fmt.Sprintf("%.0f/10", s.Soreness), ""))
	lines = append(lines, RenderMetric("Energy", fmt.Sprintf("%.0f/10", s.Energy), ""))
	lines = append(lines, RenderMetric("Workouts (7d)", fmt.Sprintf("%d", s.WorkoutsThisWeek), ""))
	lines = append(lines, RenderMetric("Days since rest", fmt.Sprintf("%d", s.DaysSinceRest), ""))
	if s.RecentIntensity > 0 {
		lines = append(lines, RenderMetric("Avg intensity", fmt.Sprintf("%.0f cal", s.RecentIntensity), ""))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(lines, "\n"))
	return cardStyle.Width(38).Render(content)
}

func (m RecoveryModel) renderAdviceCard() string {
	advice := m.view.Advice

	var line string
	if advice.ShouldRest {
		line = severityStyle(string(advice.Severity)).Bold(true).Render("Rest suggested: " + advice.Reason)
	} else {
		line = successStyle.Render("Keep training: " + advice.Reason)
	}

	return cardStyle.Width(80).Render(line)
}

func (m RecoveryModel) renderTrendChart() string {
	data := make([]float64, len(m.view.History))
	for i, s := range m.view.History {
		data[i] = float64(s.Score)
	}

	title := sectionTitleStyle.Render("Recovery Trend - Last 14 Days")
	chart := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, chart, "")
}

func (m RecoveryModel) renderLogsTable() string {
	title := sectionTitleStyle.Render("Recent Logs")

	header := fmt.Sprintf("  %-12s  %6s  %5s  %6s  %-5s  %s",
		"Date", "Sleep", "Sore", "Energy", "Rest", "Notes")
	lines := []string{title, lipgloss.NewStyle().Foreground(primaryColor).Render(header)}

	// Logs arrive oldest first; show newest at the top.
	for i := len(m.view.Logs) - 1; i >= 0; i-- {
		log := m.view.Logs[i]

		rest := ""
		if log.RestDay {
			rest = "yes"
		}

		row := fmt.Sprintf("  %-12s  %6s  %5s  %6s  %-5s  %s",
			log.Date,
			formatWellnessValue(log.SleepHours),
			formatWellnessValue(log.Soreness),
			formatWellnessValue(log.Energy),
			rest,
			truncateName(log.Notes, 30),
		)
		lines = append(lines, tableRowStyle.Render(row))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func formatWellnessValue(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

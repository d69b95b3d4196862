package tui

import (
	"fmt"

	"stride/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService, units Units) DashboardModel {
	return DashboardModel{
		queryService: qs,
		units:        units,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData()
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  No data available. Press '5' to sync with your device."
	}

	var sections []string

	// Top row: recovery and this week side by side
	scoreCard := m.renderScoreCard()
	weekCard := m.renderWeekCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, scoreCard, "  ", weekCard)
	sections = append(sections, topRow)

	if len(m.data.ScoreHistory) > 2 {
		sections = append(sections, m.renderScoreChart())
	}

	if chart := m.renderDistanceChart(); chart != "" {
		sections = append(sections, chart)
	}

	sections = append(sections, m.renderRecentWorkouts())

	help := statusStyle.Render("Press 'r' to refresh, '4' to log wellness, '5' to sync")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderScoreCard() string {
	title := cardTitleStyle.Render("Recovery Today")

	var lines []string
	if s := m.data.Score; s != nil {
		value := scoreStyle(s.Score).Bold(true).Render(fmt.Sprintf("%d", s.Score))
		lines = append(lines, value+metricValueStyle.Render(" / 100"))
		lines = append(lines, "")
		lines = append(lines, mutedTextStyle.Render(s.Recommendation))
	} else {
		lines = append(lines, mutedTextStyle.Render("No score yet"))
	}

	lines = append(lines, "")
	advice := m.data.Advice
	if advice.ShouldRest {
		lines = append(lines, severityStyle(string(advice.Severity)).Render("Rest suggested: "+advice.Reason))
	} else {
		lines = append(lines, successStyle.Render(advice.Reason))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderWeekCard() string {
	title := cardTitleStyle.Render("This Week")

	lines := []string{
		RenderMetric("Workouts", fmt.Sprintf("%d", m.data.WeekWorkouts), ""),
		RenderMetric("Distance", m.units.FormatDistance(m.data.WeekDistance), ""),
		RenderMetric("Time", formatDuration(int(m.data.WeekSeconds)), ""),
		RenderMetric("Calories", fmt.Sprintf("%d", m.data.WeekCalories), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderScoreChart() string {
	title := cardTitleStyle.Render("Recovery Score - Last 14 Days")

	graph := asciigraph.Plot(m.data.ScoreHistory,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderDistanceChart() string {
	series := m.data.WeeklyDistance
	var total float64
	for _, v := range series {
		total += v
	}
	if total <= 0 {
		return ""
	}

	if m.units.IsMiles() {
		converted := make([]float64, len(series))
		for i, km := range series {
			converted[i] = km * metersPerKm / metersPerMile
		}
		series = converted
	}

	title := cardTitleStyle.Render(fmt.Sprintf("Weekly Distance (%s)", m.units.DistanceLabel()))

	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	var caption string
	if n := len(m.data.WeeklyLabels); n > 0 {
		caption = mutedTextStyle.Render(fmt.Sprintf("weeks of %s to %s",
			m.data.WeeklyLabels[0], m.data.WeeklyLabels[n-1]))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, caption))
}

func (m DashboardModel) renderRecentWorkouts() string {
	title := cardTitleStyle.Render("Recent Workouts")

	if len(m.data.RecentWorkouts) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No workouts yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-16s  %-20s  %-8s  %8s  %6s",
		"When", "Name", "Type", "Dist", "Pace"))

	rows := []string{header}
	for i, w := range m.data.RecentWorkouts {
		if i >= 5 {
			break
		}

		row := tableRowStyle.Render(fmt.Sprintf("%-16s  %-20s  %-8s  %8s  %6s",
			truncateName(humanize.Time(w.StartedAt), 16),
			truncateName(w.Name, 20),
			w.ActivityType,
			m.units.FormatDistanceValue(w.Distance),
			m.units.FormatPace(w.MovingSeconds, w.Distance),
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func formatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

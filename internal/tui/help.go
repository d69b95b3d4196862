package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	// Navigation section
	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Workouts list"},
		{"3", "Recovery"},
		{"4", "Log wellness"},
		{"5 or s", "Sync screen"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	// Workouts keys
	listSection := m.renderSection("Workouts List", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"pgdn", "Next page"},
		{"pgup", "Previous page"},
		{"enter", "Open workout detail"},
		{"r", "Refresh list"},
	})
	sections = append(sections, listSection)

	// Detail keys
	detailSection := m.renderSection("Workout Detail", []keyHelp{
		{"j / k", "Scroll"},
		{"esc", "Back to list"},
		{"r", "Refresh"},
	})
	sections = append(sections, detailSection)

	// Recovery keys
	recoverySection := m.renderSection("Recovery", []keyHelp{
		{"l", "Log today's wellness"},
		{"r", "Refresh"},
	})
	sections = append(sections, recoverySection)

	// Log form keys
	formSection := m.renderSection("Log Form", []keyHelp{
		{"tab / shift+tab", "Move between fields"},
		{"space", "Toggle rest day"},
		{"enter", "Next field / save"},
		{"esc", "Cancel"},
	})
	sections = append(sections, formSection)

	// Sync keys
	syncSection := m.renderSection("Sync Screen", []keyHelp{
		{"s / enter", "Start sync"},
	})
	sections = append(sections, syncSection)

	// Score explanation
	scoreSection := m.renderScoreHelp()
	sections = append(sections, scoreSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderScoreHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")).Render("Recovery Score Explained"))
	lines = append(lines, "")

	bands := []struct {
		name string
		desc string
	}{
		{"80-100", "Ready for an intense session."},
		{"60-79", "Moderate training is fine."},
		{"40-59", "Take it easy today."},
		{"0-39", "Rest or very light movement only."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	for _, band := range bands {
		lines = append(lines, "  "+helpKeyStyle.Render(band.name))
		lines = append(lines, "  "+mutedStyle.Render(band.desc))
		lines = append(lines, "")
	}

	factors := []struct {
		name string
		desc string
	}{
		{"Sleep", "Hours slept, from your watch or your log. More helps."},
		{"Soreness", "Self-reported 0-10. Higher soreness lowers the score."},
		{"Energy", "Self-reported 0-10. Higher energy raises the score."},
		{"Training load", "Workout count this week and recent calorie burn."},
		{"Rest days", "Long stretches without a rest day drag the score down."},
	}

	for _, factor := range factors {
		lines = append(lines, "  "+helpKeyStyle.Render(factor.name))
		lines = append(lines, "  "+mutedStyle.Render(factor.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

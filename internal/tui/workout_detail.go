package tui

import (
	"fmt"
	"strings"

	"stride/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// WorkoutDetailModel is the workout detail screen model
type WorkoutDetailModel struct {
	queryService *service.QueryService
	units        Units
	workoutID    int64
	detail       *service.WorkoutDetail
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewWorkoutDetailModel creates a new workout detail model
func NewWorkoutDetailModel(qs *service.QueryService, units Units, workoutID int64, width, height int) WorkoutDetailModel {
	m := WorkoutDetailModel{
		queryService: qs,
		units:        units,
		workoutID:    workoutID,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.ready = true
	}

	return m
}

// Init initializes the workout detail screen
func (m WorkoutDetailModel) Init() tea.Cmd {
	return m.loadDetail
}

type workoutDetailLoadedMsg struct {
	detail *service.WorkoutDetail
	err    error
}

func (m WorkoutDetailModel) loadDetail() tea.Msg {
	detail, err := m.queryService.GetWorkoutDetail(m.workoutID)
	if err != nil {
		return workoutDetailLoadedMsg{err: err}
	}
	return workoutDetailLoadedMsg{detail: detail}
}

// Update handles messages
func (m WorkoutDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutDetailLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.detail = msg.detail
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.detail != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadDetail
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the workout detail screen
func (m WorkoutDetailModel) View() string {
	if m.loading {
		return "\n  Loading workout details..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  esc: back to list  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m WorkoutDetailModel) renderContent() string {
	if m.detail == nil {
		return "No data"
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderSummary())

	if len(m.detail.Splits) > 0 {
		sections = append(sections, m.renderSplits())
	}

	if len(m.detail.Splits) > 2 {
		sections = append(sections, m.renderPaceChart())
	}

	if len(m.detail.Pauses) > 0 {
		sections = append(sections, m.renderPauses())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m WorkoutDetailModel) renderHeader() string {
	w := m.detail.Workout
	title := cardTitleStyle.Render(w.Name)

	date := w.StartedAt.Format("Monday, January 2, 2006 at 3:04 PM")
	subtitle := mutedTextStyle.Render(date)

	stats := fmt.Sprintf("%s  •  %s  •  %s",
		m.units.FormatDistance(w.Distance),
		formatDuration(int(w.Duration)),
		m.units.FormatPaceWithUnit(w.MovingSeconds, w.Distance),
	)
	statsLine := lipgloss.NewStyle().Foreground(textColor).Bold(true).Render(stats)

	return lipgloss.JoinVertical(lipgloss.Left, "", title, subtitle, statsLine, "")
}

func (m WorkoutDetailModel) renderSummary() string {
	w := m.detail.Workout

	lines := []string{sectionTitleStyle.Render("Summary")}

	lines = append(lines, fmt.Sprintf("  Moving Time:      %s", formatDuration(int(w.MovingSeconds))))
	lines = append(lines, fmt.Sprintf("  Elapsed Time:     %s", formatDuration(int(w.Duration))))
	lines = append(lines, fmt.Sprintf("  Elevation Gain:   %.0f m", w.ElevationGain))
	lines = append(lines, fmt.Sprintf("  Elevation Loss:   %.0f m", w.ElevationLoss))
	if w.MaxSpeedKmh > 0 {
		lines = append(lines, fmt.Sprintf("  Max Speed:        %s", m.units.FormatSpeed(w.MaxSpeedKmh)))
	}
	if w.Calories > 0 {
		lines = append(lines, fmt.Sprintf("  Calories:         %d", w.Calories))
	}
	if w.PauseCount > 0 {
		lines = append(lines, fmt.Sprintf("  Paused:           %s across %d pauses",
			formatMinSec(w.PausedSeconds), w.PauseCount))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m WorkoutDetailModel) renderSplits() string {
	lines := []string{sectionTitleStyle.Render("Splits")}

	header := fmt.Sprintf("  %-4s  %8s  %7s  %6s  %6s", "Km", "Dist", "Time", "Pace", "+Elev")
	lines = append(lines, lipgloss.NewStyle().Foreground(primaryColor).Render(header))

	for _, s := range m.detail.Splits {
		row := fmt.Sprintf("  %-4d  %8s  %7s  %6s  %5.0fm",
			s.Km,
			m.units.FormatDistanceValue(s.Distance),
			formatMinSec(s.Seconds),
			s.Pace,
			s.ElevationGain,
		)

		if s.Km == m.detail.FastestKm {
			lines = append(lines, successStyle.Bold(true).Render(row+"  fastest"))
		} else {
			lines = append(lines, row)
		}
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m WorkoutDetailModel) renderPaceChart() string {
	lines := []string{sectionTitleStyle.Render(fmt.Sprintf("Pace by Kilometer (%s)", m.units.PaceLabel()))}

	paceSecs := make([]float64, len(m.detail.Splits))
	for i, s := range m.detail.Splits {
		if s.Seconds > 0 && s.Distance > 0 {
			paceSecs[i] = s.Seconds / (s.Distance / 1000)
		}
	}

	data := m.units.ConvertPaceSeries(paceSecs)
	chart := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(50),
		asciigraph.Precision(1),
	)
	lines = append(lines, chart)

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m WorkoutDetailModel) renderPauses() string {
	w := m.detail.Workout

	lines := []string{sectionTitleStyle.Render("Pauses")}

	startMs := w.StartedAt.UnixMilli()
	for _, p := range m.detail.Pauses {
		offset := float64(p.StartTime-startMs) / 1000
		lines = append(lines, fmt.Sprintf("  at %s for %s",
			formatMinSec(offset), formatMinSec(p.Duration)))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// formatMinSec renders seconds as "M:SS"
func formatMinSec(seconds float64) string {
	mins := int(seconds) / 60
	secs := int(seconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

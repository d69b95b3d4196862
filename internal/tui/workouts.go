package tui

import (
	"fmt"

	"stride/internal/service"
	"stride/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WorkoutsModel is the workout list screen model
type WorkoutsModel struct {
	queryService *service.QueryService
	units        Units
	workouts     []store.Workout
	cursor       int
	offset       int
	total        int
	pageSize     int
	loading      bool
	err          error
}

// NewWorkoutsModel creates a new workout list model
func NewWorkoutsModel(qs *service.QueryService, units Units) WorkoutsModel {
	return WorkoutsModel{
		queryService: qs,
		units:        units,
		pageSize:     15,
		loading:      true,
	}
}

// Init initializes the workout list
func (m WorkoutsModel) Init() tea.Cmd {
	return m.loadPage
}

type workoutsLoadedMsg struct {
	workouts []store.Workout
	total    int
	err      error
}

func (m WorkoutsModel) loadPage() tea.Msg {
	workouts, err := m.queryService.GetWorkoutsList(m.pageSize, m.offset)
	if err != nil {
		return workoutsLoadedMsg{err: err}
	}

	total, err := m.queryService.GetTotalWorkoutCount()
	if err != nil {
		return workoutsLoadedMsg{err: err}
	}

	return workoutsLoadedMsg{workouts: workouts, total: total}
}

// Update handles messages
func (m WorkoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.workouts = msg.workouts
		m.total = msg.total
		if m.cursor >= len(m.workouts) && len(m.workouts) > 0 {
			m.cursor = len(m.workouts) - 1
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
				m.loading = true
				return m, m.loadPage
			}
		case "down", "j":
			if m.cursor < len(m.workouts)-1 {
				m.cursor++
			} else if m.offset+len(m.workouts) < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "pgdown":
			if m.offset+m.pageSize < m.total {
				m.offset += m.pageSize
				m.cursor = 0
				m.loading = true
				return m, m.loadPage
			}
		case "r":
			m.loading = true
			return m, m.loadPage
		case "enter":
			if len(m.workouts) > 0 && m.cursor < len(m.workouts) {
				workoutID := m.workouts[m.cursor].ID
				return m, func() tea.Msg {
					return OpenWorkoutDetailMsg{WorkoutID: workoutID}
				}
			}
		}
	}
	return m, nil
}

// View renders the workout list
func (m WorkoutsModel) View() string {
	if m.loading {
		return "\n  Loading workouts..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.workouts) == 0 {
		return "\n  No workouts found. Press '5' to sync with your device."
	}

	var sections []string

	startNum := m.offset + 1
	endNum := m.offset + len(m.workouts)
	title := cardTitleStyle.Render(fmt.Sprintf("Workouts (%d-%d of %d)", startNum, endNum, m.total))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-10s  %-25s  %-8s  %9s  %7s  %6s  %5s",
		"Date", "Name", "Type", "Dist("+m.units.DistanceLabel()+")", "Time", "Pace", "Cal"))
	sections = append(sections, header)

	for i, w := range m.workouts {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-10s  %-25s  %-8s  %9s  %7s  %6s  %5d",
			cursor,
			w.StartedAt.Format("Jan 02"),
			truncateName(w.Name, 25),
			w.ActivityType,
			m.units.FormatDistanceValue(w.Distance),
			formatDuration(int(w.Duration)),
			m.units.FormatPace(w.MovingSeconds, w.Distance),
			w.Calories,
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	help := statusStyle.Render("\n  enter: view details  j/k: navigate  pgup/pgdn: page  r: refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

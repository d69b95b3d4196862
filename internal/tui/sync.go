package tui

import (
	"context"
	"fmt"
	"strings"

	"stride/internal/service"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SyncModel is the sync screen model
type SyncModel struct {
	syncService *service.SyncService
	spinner     spinner.Model
	syncing     bool
	done        bool
	result      *service.SyncResult
	err         error

	progress  chan service.SyncProgress
	finished  chan syncFinishedMsg
	phase     string
	completed int
	total     int
	current   string
}

// NewSyncModel creates a new sync model
func NewSyncModel(ss *service.SyncService) SyncModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(primaryColor)),
	)
	return SyncModel{
		syncService: ss,
		spinner:     sp,
	}
}

// Init initializes the sync screen
func (m SyncModel) Init() tea.Cmd {
	return nil
}

type syncFinishedMsg struct {
	result *service.SyncResult
	err    error
}

type syncProgressMsg struct {
	progress service.SyncProgress
}

type progressClosedMsg struct{}

// waitForProgress delivers the next progress update. SyncAll closes the
// channel when it finishes, which ends the re-arm loop.
func waitForProgress(ch chan service.SyncProgress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return progressClosedMsg{}
		}
		return syncProgressMsg{progress: p}
	}
}

func waitForFinished(ch chan syncFinishedMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Update handles messages
func (m SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncProgressMsg:
		m.phase = msg.progress.Phase
		m.completed = msg.progress.Completed
		m.total = msg.progress.Total
		m.current = msg.progress.CurrentWorkout
		return m, waitForProgress(m.progress)

	case progressClosedMsg:
		return m, nil

	case syncFinishedMsg:
		m.syncing = false
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.syncing {
			switch msg.String() {
			case "enter", "s":
				return m.startSync()
			}
		}
	}
	return m, nil
}

func (m SyncModel) startSync() (tea.Model, tea.Cmd) {
	m.syncing = true
	m.done = false
	m.err = nil
	m.result = nil
	m.phase = ""
	m.completed = 0
	m.total = 0
	m.current = ""

	m.progress = make(chan service.SyncProgress, 64)
	m.finished = make(chan syncFinishedMsg, 1)

	ss := m.syncService
	progress := m.progress
	finished := m.finished
	go func() {
		result, err := ss.SyncAll(context.Background(), progress)
		finished <- syncFinishedMsg{result: result, err: err}
	}()

	return m, tea.Batch(m.spinner.Tick, waitForProgress(m.progress), waitForFinished(m.finished))
}

// View renders the sync screen
func (m SyncModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Device Sync")
	sections = append(sections, title)

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err)))
		sections = append(sections, "\n"+statusStyle.Render("  Press 's' or Enter to retry"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.done && !m.syncing {
		sections = append(sections, successStyle.Render("\n  Sync complete!"))
		sections = append(sections, m.renderSummary())
		sections = append(sections, "\n"+statusStyle.Render("  Press '1' to go to dashboard"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.syncing {
		sections = append(sections, m.renderProgress())
	} else {
		sections = append(sections, m.renderStartPrompt())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SyncModel) renderStartPrompt() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, "  This will sync with your paired watch:")
	lines = append(lines, "")
	lines = append(lines, "  1. Pull new workout sessions and sleep records")
	lines = append(lines, "  2. Analyze GPS tracks (distance, pace, splits, calories)")
	lines = append(lines, "  3. Update recovery scores")
	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  Press 's' or Enter to start sync"))

	return strings.Join(lines, "\n")
}

func (m SyncModel) renderProgress() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s %s", m.spinner.View(), phaseLabel(m.phase)))
	lines = append(lines, "")

	if m.total > 0 {
		bar := RenderProgressBar(m.completed, m.total, 30)
		lines = append(lines, fmt.Sprintf("  %s  %d/%d", bar, m.completed, m.total))
	}

	if m.current != "" {
		lines = append(lines, statusStyle.Render("  "+truncateName(m.current, 40)))
	}

	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  This may take a moment..."))

	return strings.Join(lines, "\n")
}

func phaseLabel(phase string) string {
	switch phase {
	case "sessions":
		return "Pulling workouts from device..."
	case "analysis":
		return "Analyzing workouts..."
	case "recovery":
		return "Updating recovery scores..."
	default:
		return "Starting sync..."
	}
}

func (m SyncModel) renderSummary() string {
	var lines []string

	if m.result == nil {
		return ""
	}

	r := m.result
	lines = append(lines, "")

	if r.WorkoutsStored > 0 {
		lines = append(lines, successStyle.Render(fmt.Sprintf("  %d workouts pulled", r.WorkoutsStored)))
	} else {
		lines = append(lines, statusStyle.Render("  No new workouts"))
	}

	if r.SleepRecordsStored > 0 {
		lines = append(lines, successStyle.Render(fmt.Sprintf("  %d sleep records stored", r.SleepRecordsStored)))
	}

	if r.WorkoutsAnalyzed > 0 {
		lines = append(lines, successStyle.Render(fmt.Sprintf("  %d workouts analyzed", r.WorkoutsAnalyzed)))
	}

	if r.ScoresComputed > 0 {
		lines = append(lines, successStyle.Render(fmt.Sprintf("  %d recovery scores updated", r.ScoresComputed)))
	}

	if len(r.Errors) > 0 {
		lines = append(lines, "")
		lines = append(lines, warningStyle.Render(fmt.Sprintf("  %d errors occurred", len(r.Errors))))
	}

	return strings.Join(lines, "\n")
}

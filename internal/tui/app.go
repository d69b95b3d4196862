package tui

import (
	"stride/internal/config"
	"stride/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenWorkouts
	ScreenWorkoutDetail
	ScreenRecovery
	ScreenLogForm
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard DashboardModel
	workouts  WorkoutsModel
	detail    WorkoutDetailModel
	recovery  RecoveryModel
	logForm   LogFormModel
	syncView  SyncModel
	help      HelpModel

	// Services
	queryService *service.QueryService
	syncService  *service.SyncService
	units        Units

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(syncService *service.SyncService, queryService *service.QueryService, display config.DisplayConfig) *App {
	units := NewUnits(display)
	return &App{
		screen:       ScreenDashboard,
		queryService: queryService,
		syncService:  syncService,
		units:        units,
		dashboard:    NewDashboardModel(queryService, units),
		workouts:     NewWorkoutsModel(queryService, units),
		recovery:     NewRecoveryModel(queryService),
		logForm:      NewLogFormModel(queryService),
		syncView:     NewSyncModel(syncService),
		help:         NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings. Suspended while a sync runs so a stray
		// keypress can't abandon it, and while the log form captures
		// typed text.
		if !(a.screen == ScreenSync && a.syncView.syncing) && a.screen != ScreenLogForm {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenDashboard
				a.dashboard = NewDashboardModel(a.queryService, a.units)
				return a, a.dashboard.Init()
			case "2":
				a.screen = ScreenWorkouts
				return a, a.workouts.Init()
			case "3":
				a.screen = ScreenRecovery
				a.recovery = NewRecoveryModel(a.queryService)
				return a, a.recovery.Init()
			case "4":
				return a, a.openLogForm()
			case "5", "s":
				if a.screen != ScreenSync {
					a.screen = ScreenSync
					return a, a.syncView.Init()
				}
				// Let 's' fall through to the sync screen when already there
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				switch a.screen {
				case ScreenHelp:
					a.screen = a.prevScreen
					return a, nil
				case ScreenWorkoutDetail:
					a.screen = ScreenWorkouts
					return a, nil
				}
			}
		}
		if a.screen == ScreenLogForm {
			switch msg.String() {
			case "ctrl+c":
				return a, tea.Quit
			case "esc":
				a.screen = ScreenRecovery
				a.recovery = NewRecoveryModel(a.queryService)
				return a, a.recovery.Init()
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenWorkoutDetailMsg:
		a.screen = ScreenWorkoutDetail
		a.detail = NewWorkoutDetailModel(a.queryService, a.units, msg.WorkoutID, a.width, a.height)
		return a, a.detail.Init()

	case OpenLogFormMsg:
		return a, a.openLogForm()

	case LogSavedMsg:
		a.screen = ScreenRecovery
		a.recovery = NewRecoveryModel(a.queryService)
		return a, a.recovery.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenWorkouts:
		var m tea.Model
		m, cmd = a.workouts.Update(msg)
		a.workouts = m.(WorkoutsModel)
	case ScreenWorkoutDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(WorkoutDetailModel)
	case ScreenRecovery:
		var m tea.Model
		m, cmd = a.recovery.Update(msg)
		a.recovery = m.(RecoveryModel)
	case ScreenLogForm:
		var m tea.Model
		m, cmd = a.logForm.Update(msg)
		a.logForm = m.(LogFormModel)
	case ScreenSync:
		var m tea.Model
		m, cmd = a.syncView.Update(msg)
		a.syncView = m.(SyncModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

func (a *App) openLogForm() tea.Cmd {
	a.screen = ScreenLogForm
	a.logForm = NewLogFormModel(a.queryService)
	return a.logForm.Init()
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenWorkouts:
		content = a.workouts.View()
	case ScreenWorkoutDetail:
		content = a.detail.View()
	case ScreenRecovery:
		content = a.recovery.View()
	case ScreenLogForm:
		content = a.logForm.View()
	case ScreenSync:
		content = a.syncView.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("stride")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Workouts", ScreenWorkouts},
		{"3", "Recovery", ScreenRecovery},
		{"4", "Log", ScreenLogForm},
		{"5", "Sync", ScreenSync},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		active := a.screen == item.screen ||
			(a.screen == ScreenWorkoutDetail && item.screen == ScreenWorkouts)
		if active {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

// OpenWorkoutDetailMsg asks the app to open one workout's detail screen
type OpenWorkoutDetailMsg struct {
	WorkoutID int64
}

// OpenLogFormMsg asks the app to open the wellness log form
type OpenLogFormMsg struct{}

// LogSavedMsg is sent after a wellness entry is saved
type LogSavedMsg struct{}

package tui

import (
	"strings"

	"github.com/andy/zentime/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenTimer
	ScreenProjects
	ScreenInvoices
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenDashboard:
		return "Dashboard"
	case ScreenTimer:
		return "Timer"
	case ScreenProjects:
		return "Projects"
	case ScreenInvoices:
		return "Invoices"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	// Screen models (lazy initialized)
	dashboard tea.Model
	timer     tea.Model
	projects  tea.Model
	invoices  tea.Model
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{
		app:           a,
		currentScreen: ScreenDashboard,
		dashboard:     NewDashboardModel(a),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.dashboard.Init()
}

// initScreen lazy-initializes a screen on first visit, and sends a
// RefreshDataMsg on subsequent visits so screens reload their data.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenDashboard:
		if m.dashboard == nil {
			m.dashboard = NewDashboardModel(m.app)
			return m.dashboard.Init()
		}
	case ScreenTimer:
		if m.timer == nil {
			m.timer = NewTimerModel(m.app)
			return m.timer.Init()
		}
	case ScreenProjects:
		if m.projects == nil {
			m.projects = NewProjectsModel(m.app)
			return m.projects.Init()
		}
	case ScreenInvoices:
		if m.invoices == nil {
			m.invoices = NewInvoicesModel(m.app)
			return m.invoices.Init()
		}
	}
	return func() tea.Msg { return RefreshDataMsg{} }
}

func (m *Model) activeScreen() tea.Model {
	switch m.currentScreen {
	case ScreenDashboard:
		return m.dashboard
	case ScreenTimer:
		return m.timer
	case ScreenProjects:
		return m.projects
	case ScreenInvoices:
		return m.invoices
	}
	return nil
}

func (m *Model) setActiveScreen(s tea.Model) {
	switch m.currentScreen {
	case ScreenDashboard:
		m.dashboard = s
	case ScreenTimer:
		m.timer = s
	case ScreenProjects:
		m.projects = s
	case ScreenInvoices:
		m.invoices = s
	}
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, DefaultKeyMap.Dashboard):
			m.currentScreen = ScreenDashboard
			return m, m.initScreen(ScreenDashboard)
		case key.Matches(msg, DefaultKeyMap.Timer):
			m.currentScreen = ScreenTimer
			return m, m.initScreen(ScreenTimer)
		case key.Matches(msg, DefaultKeyMap.Projects):
			m.currentScreen = ScreenProjects
			return m, m.initScreen(ScreenProjects)
		case key.Matches(msg, DefaultKeyMap.Invoices):
			m.currentScreen = ScreenInvoices
			return m, m.initScreen(ScreenInvoices)
		}
	}

	// Forward everything else to the active screen
	if screen := m.activeScreen(); screen != nil {
		updated, cmd := screen.Update(msg)
		m.setActiveScreen(updated)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	// Header with screen tabs
	var tabs []string
	for _, s := range []Screen{ScreenDashboard, ScreenTimer, ScreenProjects, ScreenInvoices} {
		label := s.String()
		if s == m.currentScreen {
			tabs = append(tabs, selectedStyle.Render(" "+label+" "))
		} else {
			tabs = append(tabs, subtitleStyle.Render(" "+label+" "))
		}
	}
	b.WriteString(headerStyle.Render("zentime"))
	b.WriteString("  ")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if screen := m.activeScreen(); screen != nil {
		b.WriteString(screen.View())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("d dashboard · t timer · p projects · i invoices · q quit"))

	return appBorderStyle.Render(b.String())
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/andy/zentime/internal/app"
	"github.com/andy/zentime/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// TimerTickMsg is sent every second while the timer view is refreshing
// (screen-local, cosmetic only)
type TimerTickMsg struct{}

// tickTimer returns a command that sends TimerTickMsg every second
func tickTimer() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TimerTickMsg{}
	})
}

// TimerModel shows the active timer and start/stop controls.
//
// Pause only suspends the refresh tick; the clock keeps running against the
// timer's original start time, so elapsed time includes the paused span.
type TimerModel struct {
	app *app.App

	timer    *domain.ActiveTimer
	projects []*domain.Project
	paused   bool

	statusMsg string
}

// NewTimerModel creates a new TimerModel
func NewTimerModel(a *app.App) tea.Model {
	m := &TimerModel{app: a}
	m.refresh()
	return m
}

func (m *TimerModel) refresh() {
	m.timer = m.app.Entries.ActiveTimer()
	m.projects = nil
	for _, p := range m.app.Projects.List() {
		if p.IsBillable() {
			m.projects = append(m.projects, p)
		}
	}
}

// Init starts the ticker when there's an active timer
func (m *TimerModel) Init() tea.Cmd {
	if m.timer != nil {
		return tickTimer()
	}
	return nil
}

// Update handles key events and ticks
func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.refresh()
		if m.timer != nil && !m.paused {
			return m, tickTimer()
		}
		return m, nil

	case TimerTickMsg:
		// The tick only forces a re-render of the elapsed display
		if m.timer == nil || m.paused {
			return m, nil
		}
		m.timer = m.app.Entries.ActiveTimer()
		if m.timer == nil {
			// Stopped externally (e.g. from the CLI)
			return m, nil
		}
		return m, tickTimer()

	case tea.KeyMsg:
		m.statusMsg = ""

		switch msg.String() {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if m.timer == nil {
				idx := int(msg.String()[0] - '1')
				if idx < len(m.projects) {
					p := m.projects[idx]
					m.app.Entries.StartTimer(p.ID, "", "", p.HourlyRate)
					m.timer = m.app.Entries.ActiveTimer()
					m.paused = false
					m.statusMsg = "Timer started for " + p.Name
					return m, tickTimer()
				}
			}
		case "s":
			if m.timer != nil {
				entry := m.app.Entries.StopTimer()
				m.timer = nil
				m.paused = false
				if entry != nil {
					m.statusMsg = fmt.Sprintf("Entry saved: %s, %s",
						formatMinutes(entry.Duration), formatMoney(entry.Earnings))
				}
			}
		case " ":
			if m.timer != nil {
				m.paused = !m.paused
				if !m.paused {
					return m, tickTimer()
				}
			}
		}
	}

	return m, nil
}

func (m *TimerModel) View() string {
	var b strings.Builder

	if m.timer == nil {
		b.WriteString(titleStyle.Render("No active timer"))
		b.WriteString("\n\n")
		if len(m.projects) == 0 {
			b.WriteString(subtitleStyle.Render("Create a project first: zentime projects add"))
		} else {
			b.WriteString("Start a timer:\n")
			for i, p := range m.projects {
				if i >= 9 {
					break
				}
				b.WriteString(fmt.Sprintf("  %d. %s (%s/hr)\n",
					i+1, truncateStr(p.Name, 30), formatMoney(p.HourlyRate)))
			}
		}
		if m.statusMsg != "" {
			b.WriteString("\n" + timerValueStyle.Render(m.statusMsg))
		}
		return b.String()
	}

	minutes := m.app.Entries.TimerDuration()
	value := float64(minutes) / 60 * m.timer.HourlyRate

	state := timerRunningStyle.Render("● RUNNING")
	if m.paused {
		state = timerPausedStyle.Render("● PAUSED (display only, time keeps accruing)")
	}

	b.WriteString(state)
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"%s\n\nProject: %s\nStarted: %s\nElapsed: %s\nValue: %s",
		titleStyle.Render(formatMinutes(minutes)),
		m.projectName(),
		m.timer.StartTime.Format("15:04:05"),
		formatMinutes(minutes),
		timerValueStyle.Render(formatMoney(value)),
	)))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("s stop · space pause/resume display"))
	if m.statusMsg != "" {
		b.WriteString("\n" + timerValueStyle.Render(m.statusMsg))
	}

	return b.String()
}

func (m *TimerModel) projectName() string {
	if p, ok := m.app.Projects.Get(m.timer.ProjectID); ok {
		return p.Name
	}
	return "Unknown Project"
}

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andy/zentime/internal/app"
	"github.com/andy/zentime/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel is the analytics home screen
type DashboardModel struct {
	app *app.App

	summary        *service.Summary
	hoursByProject map[string]float64
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(a *app.App) tea.Model {
	m := &DashboardModel{app: a}
	m.refresh()
	return m
}

func (m *DashboardModel) refresh() {
	m.summary = m.app.Analytics.Summary()
	m.hoursByProject = m.app.Analytics.HoursByProject()
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(RefreshDataMsg); ok {
		m.refresh()
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	s := m.summary
	var b strings.Builder

	timeBox := boxStyle.Render(fmt.Sprintf(
		"%s\n\nTotal: %s (%s)\nAvg rate: %s/hr\n7 days: %s (%s)\n30 days: %s (%s)\nDaily avg: %s",
		titleStyle.Render("Time"),
		formatHours(s.TotalHours), formatMoney(s.TotalEarnings),
		formatMoney(s.AverageHourlyRate),
		formatHours(s.ThisWeekHours), formatMoney(s.ThisWeekEarnings),
		formatHours(s.ThisMonthHours), formatMoney(s.ThisMonthEarnings),
		formatHours(s.AverageDailyHours),
	))

	workBox := boxStyle.Render(fmt.Sprintf(
		"%s\n\nActive projects: %d\nCompleted projects: %d\nTasks: %d (%d in progress)\nCompletion: %.0f%%",
		titleStyle.Render("Work"),
		s.ActiveProjects,
		s.CompletedProjects,
		s.TotalTasks, s.InProgressTasks,
		s.TaskCompletionRate,
	))

	invoiceBox := boxStyle.Render(fmt.Sprintf(
		"%s\n\nInvoices: %d (%s)\nPaid: %d (%s)\nPending: %d (%s)",
		titleStyle.Render("Invoices"),
		s.TotalInvoices, formatMoney(s.TotalInvoiceValue),
		s.PaidInvoices, formatMoney(s.PaidInvoiceValue),
		s.PendingInvoices, formatMoney(s.PendingInvoiceValue),
	))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, timeBox, " ", workBox, " ", invoiceBox))

	if len(m.hoursByProject) > 0 {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("Hours by project"))
		b.WriteString("\n")

		// Stable ordering for display
		ids := make([]string, 0, len(m.hoursByProject))
		for id := range m.hoursByProject {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(a, b int) bool {
			return m.hoursByProject[ids[a]] > m.hoursByProject[ids[b]]
		})

		for _, id := range ids {
			name := "Unknown Project"
			if p, ok := m.app.Projects.Get(id); ok {
				name = p.Name
			}
			b.WriteString(fmt.Sprintf("  %-25s %s\n",
				truncateStr(name, 25), formatHours(m.hoursByProject[id])))
		}
	}

	return b.String()
}

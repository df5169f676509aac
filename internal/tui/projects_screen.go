package tui

import (
	"fmt"

	"github.com/andy/zentime/internal/app"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// ProjectsModel lists projects with their live tracked totals
type ProjectsModel struct {
	app   *app.App
	table table.Model
}

// NewProjectsModel creates a new projects screen
func NewProjectsModel(a *app.App) tea.Model {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Client", Width: 20},
		{Title: "Rate", Width: 10},
		{Title: "Status", Width: 10},
		{Title: "Hours", Width: 8},
		{Title: "Earnings", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	m := &ProjectsModel{app: a, table: t}
	m.refresh()
	return m
}

func (m *ProjectsModel) refresh() {
	summaries := m.app.Analytics.ProjectSummaries()
	hoursByID := make(map[string]float64, len(summaries))
	earningsByID := make(map[string]float64, len(summaries))
	for _, s := range summaries {
		hoursByID[s.ProjectID] = s.Hours
		earningsByID[s.ProjectID] = s.Earnings
	}

	var rows []table.Row
	for _, p := range m.app.Projects.List() {
		rows = append(rows, table.Row{
			truncateStr(p.Name, 25),
			truncateStr(p.Client, 20),
			fmt.Sprintf("%.2f %s", p.HourlyRate, p.Currency),
			string(p.Status),
			formatHours(hoursByID[p.ID]),
			formatMoney(earningsByID[p.ID]),
		})
	}
	m.table.SetRows(rows)
}

func (m *ProjectsModel) Init() tea.Cmd {
	return nil
}

func (m *ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(RefreshDataMsg); ok {
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ProjectsModel) View() string {
	return titleStyle.Render("Projects") + "\n\n" + m.table.View()
}

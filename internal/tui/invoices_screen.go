package tui

import (
	"github.com/andy/zentime/internal/app"
	"github.com/andy/zentime/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// InvoicesModel lists invoices and supports status transitions
type InvoicesModel struct {
	app      *app.App
	table    table.Model
	invoices []*domain.Invoice

	statusMsg string
}

// NewInvoicesModel creates a new invoices screen
func NewInvoicesModel(a *app.App) tea.Model {
	columns := []table.Column{
		{Title: "Number", Width: 14},
		{Title: "Client", Width: 20},
		{Title: "Project", Width: 20},
		{Title: "Status", Width: 9},
		{Title: "Due", Width: 11},
		{Title: "Total", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	m := &InvoicesModel{app: a, table: t}
	m.refresh()
	return m
}

func (m *InvoicesModel) refresh() {
	m.invoices = m.app.Invoices.List()

	var rows []table.Row
	for _, inv := range m.invoices {
		rows = append(rows, table.Row{
			inv.InvoiceNumber,
			truncateStr(inv.ClientName, 20),
			truncateStr(inv.ProjectName, 20),
			string(inv.Status),
			inv.DueDate,
			formatMoney(inv.Total),
		})
	}
	m.table.SetRows(rows)
}

func (m *InvoicesModel) selected() *domain.Invoice {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.invoices) {
		return nil
	}
	return m.invoices[idx]
}

func (m *InvoicesModel) Init() tea.Cmd {
	return nil
}

func (m *InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.String() {
		case "s":
			if inv := m.selected(); inv != nil {
				if err := m.app.InvoiceService.MarkSent(inv.ID); err == nil {
					m.statusMsg = inv.InvoiceNumber + " marked as sent"
					m.refresh()
				}
				return m, nil
			}
		case "$":
			if inv := m.selected(); inv != nil {
				if err := m.app.InvoiceService.MarkPaid(inv.ID); err == nil {
					m.statusMsg = inv.InvoiceNumber + " marked as paid"
					m.refresh()
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *InvoicesModel) View() string {
	out := titleStyle.Render("Invoices") + "\n\n" + m.table.View() + "\n\n" +
		helpStyle.Render("s mark sent · $ mark paid")
	if m.statusMsg != "" {
		out += "\n" + timerValueStyle.Render(m.statusMsg)
	}
	return out
}

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/store"
	"github.com/google/uuid"
)

var (
	ErrUnknownProject    = errors.New("project not found")
	ErrUnknownInvoice    = errors.New("invoice not found")
	ErrNoEntriesSelected = errors.New("no time entries selected")
)

// InvoiceService derives invoices from tracked time. Generation snapshots
// the selected entries into line items; later edits or deletions of the
// source entries never touch the snapshot.
type InvoiceService struct {
	projects *store.ProjectStore
	entries  *store.EntryStore
	invoices *store.InvoiceStore
	now      func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(projects *store.ProjectStore, entries *store.EntryStore, invoices *store.InvoiceStore) *InvoiceService {
	return &InvoiceService{
		projects: projects,
		entries:  entries,
		invoices: invoices,
		now:      time.Now,
	}
}

// EligibleEntries returns the project's finished entries whose calendar
// date falls within [startDate, endDate]. Dates are compared as calendar
// date strings derived from each entry's start time, inclusive at both
// ends. Running entries are never billable.
func (s *InvoiceService) EligibleEntries(projectID, startDate, endDate string) []*domain.TimeEntry {
	var out []*domain.TimeEntry
	for _, e := range s.entries.ListByProject(projectID) {
		if e.IsRunning {
			continue
		}
		date := e.Date()
		if date >= startDate && date <= endDate {
			out = append(out, e)
		}
	}
	return out
}

// GenerateParams describes one invoice generation request. EntryIDs is the
// user's selection from the eligible set; TaxRate is a percentage.
type GenerateParams struct {
	ProjectID string
	EntryIDs  []string
	TaxRate   float64
	IssueDate string
	DueDate   string
	Notes     string
}

// Generate builds line items from the selected entries, totals them and
// adds the invoice to the invoice store, which assigns the invoice number.
// Client and project names are copied at this moment and not kept in sync
// with later project edits. Selected IDs that no longer resolve to an
// entry are skipped.
func (s *InvoiceService) Generate(p GenerateParams) (*domain.Invoice, error) {
	project, ok := s.projects.Get(p.ProjectID)
	if !ok {
		return nil, ErrUnknownProject
	}
	if len(p.EntryIDs) == 0 {
		return nil, ErrNoEntriesSelected
	}

	inv := domain.NewInvoice(project.ID, project.Client, project.Name, p.IssueDate, p.DueDate)
	inv.TaxRate = p.TaxRate
	inv.Notes = p.Notes

	for _, id := range p.EntryIDs {
		entry, ok := s.entries.Get(id)
		if !ok {
			continue
		}
		inv.LineItems = append(inv.LineItems, domain.InvoiceLineItem{
			ID:          uuid.NewString(),
			TimeEntryID: entry.ID,
			Description: entry.Description,
			Date:        entry.Date(),
			Duration:    entry.Duration,
			HourlyRate:  entry.HourlyRate,
			Amount:      entry.Earnings, // copied verbatim, no live link
		})
	}
	if len(inv.LineItems) == 0 {
		return nil, ErrNoEntriesSelected
	}

	inv.CalculateTotals()
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("invalid invoice: %w", err)
	}

	return s.invoices.Add(inv), nil
}

// MarkSent transitions an invoice to sent, stamping SentAt on the first
// transition.
func (s *InvoiceService) MarkSent(id string) error {
	if _, ok := s.invoices.Get(id); !ok {
		return ErrUnknownInvoice
	}
	status := domain.InvoiceStatusSent
	s.invoices.Update(id, store.InvoiceUpdate{Status: &status})
	return nil
}

// MarkPaid transitions an invoice to paid, stamping PaidAt on the first
// transition.
func (s *InvoiceService) MarkPaid(id string) error {
	if _, ok := s.invoices.Get(id); !ok {
		return ErrUnknownInvoice
	}
	status := domain.InvoiceStatusPaid
	s.invoices.Update(id, store.InvoiceUpdate{Status: &status})
	return nil
}

// CheckOverdue flags sent invoices whose due date has passed and returns
// how many were flagged.
func (s *InvoiceService) CheckOverdue() int {
	today := s.now().Format(domain.DateLayout)
	flagged := 0
	for _, inv := range s.invoices.ListByStatus(domain.InvoiceStatusSent) {
		if inv.DueDate < today {
			status := domain.InvoiceStatusOverdue
			s.invoices.Update(inv.ID, store.InvoiceUpdate{Status: &status})
			flagged++
		}
	}
	return flagged
}

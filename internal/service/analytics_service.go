package service

import (
	"math"
	"time"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/store"
)

// Summary is the full analytics snapshot shown on the dashboard. All values
// are computed deterministically from the four stores' current contents;
// nothing here is persisted.
type Summary struct {
	TotalHours        float64
	TotalEarnings     float64
	AverageHourlyRate float64 // 0 when no hours tracked

	// Trailing windows, not calendar weeks/months
	ThisWeekHours     float64
	ThisWeekEarnings  float64
	ThisMonthHours    float64
	ThisMonthEarnings float64

	ActiveProjects    int
	CompletedProjects int

	TotalTasks         int
	CompletedTasks     int
	InProgressTasks    int
	TaskCompletionRate float64 // percent, 0 when no tasks

	TotalInvoices       int
	PaidInvoices        int
	PendingInvoices     int
	TotalInvoiceValue   float64
	PaidInvoiceValue    float64
	PendingInvoiceValue float64

	AverageDailyHours float64
}

// ProjectSummary is the live per-project rollup of tracked time. It
// replaces the dead totalHours/totalEarnings fields the original data model
// persisted but never updated.
type ProjectSummary struct {
	ProjectID string
	Hours     float64
	Earnings  float64
	Entries   int
}

// TaskSummary is the live per-task rollup of tracked time
type TaskSummary struct {
	TaskID   string
	Hours    float64
	Earnings float64
	Entries  int
}

// AnalyticsService folds over the four stores' snapshots. It is read-only
// and keeps no state of its own.
type AnalyticsService struct {
	projects *store.ProjectStore
	tasks    *store.TaskStore
	entries  *store.EntryStore
	invoices *store.InvoiceStore
	now      func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(projects *store.ProjectStore, tasks *store.TaskStore, entries *store.EntryStore, invoices *store.InvoiceStore) *AnalyticsService {
	return &AnalyticsService{
		projects: projects,
		tasks:    tasks,
		entries:  entries,
		invoices: invoices,
		now:      time.Now,
	}
}

// Summary computes the dashboard metrics
func (s *AnalyticsService) Summary() *Summary {
	now := s.now()
	entries := s.entries.List()
	tasks := s.tasks.List()
	invoices := s.invoices.List()

	sum := &Summary{}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	monthAgo := now.Add(-30 * 24 * time.Hour)

	for _, e := range entries {
		sum.TotalHours += e.Hours()
		sum.TotalEarnings += e.Earnings
		if !e.StartTime.Before(weekAgo) {
			sum.ThisWeekHours += e.Hours()
			sum.ThisWeekEarnings += e.Earnings
		}
		if !e.StartTime.Before(monthAgo) {
			sum.ThisMonthHours += e.Hours()
			sum.ThisMonthEarnings += e.Earnings
		}
	}
	if sum.TotalHours > 0 {
		sum.AverageHourlyRate = sum.TotalEarnings / sum.TotalHours
	}

	for _, p := range s.projects.List() {
		switch p.Status {
		case domain.ProjectStatusActive:
			sum.ActiveProjects++
		case domain.ProjectStatusCompleted:
			sum.CompletedProjects++
		}
	}

	sum.TotalTasks = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskStatusCompleted:
			sum.CompletedTasks++
		case domain.TaskStatusInProgress:
			sum.InProgressTasks++
		}
	}
	if sum.TotalTasks > 0 {
		sum.TaskCompletionRate = float64(sum.CompletedTasks) / float64(sum.TotalTasks) * 100
	}

	sum.TotalInvoices = len(invoices)
	for _, inv := range invoices {
		sum.TotalInvoiceValue += inv.Total
		switch {
		case inv.Status == domain.InvoiceStatusPaid:
			sum.PaidInvoices++
			sum.PaidInvoiceValue += inv.Total
		case inv.IsOutstanding():
			sum.PendingInvoices++
			sum.PendingInvoiceValue += inv.Total
		}
	}

	// Daily average is measured from the chronologically first entry in
	// collection order, which may not be the true minimum start time.
	if len(entries) > 0 {
		days := math.Ceil(now.Sub(entries[0].StartTime).Hours() / 24)
		sum.AverageDailyHours = sum.TotalHours / math.Max(1, days)
	}

	return sum
}

// HoursByProject returns tracked hours keyed by project ID (time
// distribution chart). Dangling project IDs keep their bucket.
func (s *AnalyticsService) HoursByProject() map[string]float64 {
	out := make(map[string]float64)
	for _, e := range s.entries.List() {
		out[e.ProjectID] += e.Hours()
	}
	return out
}

// HoursByWeekday returns tracked hours keyed by the weekday of each entry's
// start time (productivity chart).
func (s *AnalyticsService) HoursByWeekday() map[time.Weekday]float64 {
	out := make(map[time.Weekday]float64)
	for _, e := range s.entries.List() {
		out[e.StartTime.Weekday()] += e.Hours()
	}
	return out
}

// RevenueByMonth returns paid invoice totals bucketed by payment month for
// the given year. Invoices without a PaidAt stamp fall back to their
// creation time.
func (s *AnalyticsService) RevenueByMonth(year int) map[time.Month]float64 {
	out := make(map[time.Month]float64)
	for m := time.January; m <= time.December; m++ {
		out[m] = 0
	}
	for _, inv := range s.invoices.ListByStatus(domain.InvoiceStatusPaid) {
		paidAt := inv.CreatedAt
		if inv.PaidAt != nil {
			paidAt = *inv.PaidAt
		}
		if paidAt.Year() == year {
			out[paidAt.Month()] += inv.Total
		}
	}
	return out
}

// ProjectSummaries returns the live rollup for every project, in project
// collection order.
func (s *AnalyticsService) ProjectSummaries() []ProjectSummary {
	byID := make(map[string]*ProjectSummary)
	var order []string
	for _, p := range s.projects.List() {
		byID[p.ID] = &ProjectSummary{ProjectID: p.ID}
		order = append(order, p.ID)
	}
	for _, e := range s.entries.List() {
		ps, ok := byID[e.ProjectID]
		if !ok {
			continue // dangling reference, entry's project was deleted
		}
		ps.Hours += e.Hours()
		ps.Earnings += e.Earnings
		ps.Entries++
	}
	out := make([]ProjectSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

// TaskSummaries returns the live rollup for every task of a project
func (s *AnalyticsService) TaskSummaries(projectID string) []TaskSummary {
	byID := make(map[string]*TaskSummary)
	var order []string
	for _, t := range s.tasks.ListByProject(projectID) {
		byID[t.ID] = &TaskSummary{TaskID: t.ID}
		order = append(order, t.ID)
	}
	for _, e := range s.entries.ListByProject(projectID) {
		ts, ok := byID[e.TaskID]
		if !ok {
			continue
		}
		ts.Hours += e.Hours()
		ts.Earnings += e.Earnings
		ts.Entries++
	}
	out := make([]TaskSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

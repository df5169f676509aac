package service

import (
	"testing"
	"time"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/store"
)

func (f *fixture) analytics(now time.Time) *AnalyticsService {
	svc := NewAnalyticsService(f.projects, f.tasks, f.entries, f.invoices)
	svc.now = func() time.Time { return now }
	return svc
}

func TestSummaryEmptyState(t *testing.T) {
	f := newFixture(t)
	svc := f.analytics(time.Now())

	sum := svc.Summary()
	if sum.TotalHours != 0 || sum.TotalEarnings != 0 {
		t.Fatalf("expected zero totals")
	}
	if sum.AverageHourlyRate != 0 {
		t.Fatalf("expected average rate 0 with no hours, got %v", sum.AverageHourlyRate)
	}
	if sum.TaskCompletionRate != 0 {
		t.Fatalf("expected completion rate 0 with no tasks, got %v", sum.TaskCompletionRate)
	}
	if sum.AverageDailyHours != 0 {
		t.Fatalf("expected daily average 0 with no entries, got %v", sum.AverageDailyHours)
	}
}

func TestSummaryTrailingWindows(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := f.analytics(now)

	p := f.projects.Add(domain.NewProject("Website", "ACME", "", 60, "USD"))

	// 60h of history: 1h three days ago, 2h fifteen days ago, 3h sixty days ago
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "recent", now.Add(-3*24*time.Hour), 60, 60))
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "this month", now.Add(-15*24*time.Hour), 120, 60))
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "old", now.Add(-60*24*time.Hour), 180, 60))

	sum := svc.Summary()
	if sum.TotalHours != 6 {
		t.Fatalf("expected 6 total hours, got %v", sum.TotalHours)
	}
	if sum.ThisWeekHours != 1 {
		t.Fatalf("expected 1 hour in the trailing week, got %v", sum.ThisWeekHours)
	}
	if sum.ThisMonthHours != 3 {
		t.Fatalf("expected 3 hours in the trailing month, got %v", sum.ThisMonthHours)
	}
	if sum.AverageHourlyRate != 60 {
		t.Fatalf("expected average rate 60, got %v", sum.AverageHourlyRate)
	}
	if sum.TotalEarnings != 360 {
		t.Fatalf("expected 360 total earnings, got %v", sum.TotalEarnings)
	}
}

func TestSummaryDailyAverageUsesFirstEntry(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := f.analytics(now)

	p := f.projects.Add(domain.NewProject("Website", "ACME", "", 60, "USD"))

	// First entry in collection order anchors the day count even when an
	// older entry exists later in the collection.
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "anchor", now.Add(-10*24*time.Hour), 300, 60))
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "older", now.Add(-20*24*time.Hour), 300, 60))

	sum := svc.Summary()
	// 10 total hours over 10 days from the anchor, not 20 from the oldest
	if sum.AverageDailyHours != 1 {
		t.Fatalf("expected daily average 1, got %v", sum.AverageDailyHours)
	}
}

func TestSummaryTaskAndProjectCounts(t *testing.T) {
	f := newFixture(t)
	svc := f.analytics(time.Now())

	active := f.projects.Add(domain.NewProject("A", "C", "", 50, "USD"))
	done := f.projects.Add(domain.NewProject("B", "C", "", 50, "USD"))
	completed := domain.ProjectStatusCompleted
	f.projects.Update(done.ID, store.ProjectUpdate{Status: &completed})

	t1 := f.tasks.Add(domain.NewTask(active.ID, "one", "", domain.TaskPriorityMedium))
	t2 := f.tasks.Add(domain.NewTask(active.ID, "two", "", domain.TaskPriorityMedium))
	f.tasks.Add(domain.NewTask(active.ID, "three", "", domain.TaskPriorityMedium))
	f.tasks.Add(domain.NewTask(active.ID, "four", "", domain.TaskPriorityMedium))

	taskDone := domain.TaskStatusCompleted
	inProgress := domain.TaskStatusInProgress
	f.tasks.Update(t1.ID, store.TaskUpdate{Status: &taskDone})
	f.tasks.Update(t2.ID, store.TaskUpdate{Status: &inProgress})

	sum := svc.Summary()
	if sum.ActiveProjects != 1 || sum.CompletedProjects != 1 {
		t.Fatalf("expected 1 active and 1 completed project, got %d/%d", sum.ActiveProjects, sum.CompletedProjects)
	}
	if sum.TotalTasks != 4 || sum.CompletedTasks != 1 || sum.InProgressTasks != 1 {
		t.Fatalf("unexpected task counts: %+v", sum)
	}
	if sum.TaskCompletionRate != 25 {
		t.Fatalf("expected 25%% completion, got %v", sum.TaskCompletionRate)
	}
}

func TestSummaryInvoiceBuckets(t *testing.T) {
	f := newFixture(t)
	svc := f.analytics(time.Now())

	addInvoice := func(status domain.InvoiceStatus, total float64) {
		inv := domain.NewInvoice("proj-1", "ACME", "Website", "2026-03-01", "2026-03-31")
		inv.Total = total
		added := f.invoices.Add(inv)
		if status != domain.InvoiceStatusDraft {
			f.invoices.Update(added.ID, store.InvoiceUpdate{Status: &status})
		}
	}

	addInvoice(domain.InvoiceStatusDraft, 100)
	addInvoice(domain.InvoiceStatusSent, 200)
	addInvoice(domain.InvoiceStatusOverdue, 300)
	addInvoice(domain.InvoiceStatusPaid, 400)

	sum := svc.Summary()
	if sum.TotalInvoices != 4 || sum.TotalInvoiceValue != 1000 {
		t.Fatalf("unexpected invoice totals: %d / %v", sum.TotalInvoices, sum.TotalInvoiceValue)
	}
	if sum.PaidInvoices != 1 || sum.PaidInvoiceValue != 400 {
		t.Fatalf("unexpected paid bucket: %d / %v", sum.PaidInvoices, sum.PaidInvoiceValue)
	}
	// Drafts count toward neither paid nor pending
	if sum.PendingInvoices != 2 || sum.PendingInvoiceValue != 500 {
		t.Fatalf("unexpected pending bucket: %d / %v", sum.PendingInvoices, sum.PendingInvoiceValue)
	}
}

func TestHoursByProjectKeepsDanglingBuckets(t *testing.T) {
	f := newFixture(t)
	svc := f.analytics(time.Now())

	p := f.projects.Add(domain.NewProject("Website", "ACME", "", 60, "USD"))
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "", time.Now(), 90, 60))
	f.entries.Add(domain.NewTimeEntry("deleted-project", "", "", time.Now(), 30, 60))

	got := svc.HoursByProject()
	if got[p.ID] != 1.5 {
		t.Fatalf("expected 1.5 hours, got %v", got[p.ID])
	}
	if got["deleted-project"] != 0.5 {
		t.Fatalf("expected the dangling bucket to survive, got %v", got["deleted-project"])
	}
}

func TestHoursByWeekday(t *testing.T) {
	f := newFixture(t)
	svc := f.analytics(time.Now())

	p := f.projects.Add(domain.NewProject("Website", "ACME", "", 60, "USD"))
	monday := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC) // a Monday
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "", monday, 60, 60))
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "", monday.Add(4*time.Hour), 30, 60))
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "", monday.AddDate(0, 0, 1), 120, 60))

	got := svc.HoursByWeekday()
	if got[time.Monday] != 1.5 {
		t.Fatalf("expected 1.5 hours on Monday, got %v", got[time.Monday])
	}
	if got[time.Tuesday] != 2 {
		t.Fatalf("expected 2 hours on Tuesday, got %v", got[time.Tuesday])
	}
}

func TestRevenueByMonth(t *testing.T) {
	f := newFixture(t)
	svc := f.analytics(time.Now())

	paidIn := func(total float64, paidAt *time.Time) {
		inv := domain.NewInvoice("proj-1", "ACME", "Website", "2026-03-01", "2026-03-31")
		inv.Total = total
		added := f.invoices.Add(inv)
		paid := domain.InvoiceStatusPaid
		f.invoices.Update(added.ID, store.InvoiceUpdate{Status: &paid})
		if paidAt != nil {
			// Overwrite the stamp for a deterministic month
			got, _ := f.invoices.Get(added.ID)
			got.PaidAt = paidAt
		}
	}

	march := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	alsoMarch := time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	paidIn(100, &march)
	paidIn(50, &alsoMarch)
	paidIn(999, &lastYear)

	got := svc.RevenueByMonth(2026)
	if len(got) != 12 {
		t.Fatalf("expected all 12 months to be present, got %d", len(got))
	}
	if got[time.March] != 150 {
		t.Fatalf("expected 150 in March, got %v", got[time.March])
	}
	if got[time.January] != 0 {
		t.Fatalf("expected empty months to be zero, got %v", got[time.January])
	}
}

func TestProjectSummariesLiveTotals(t *testing.T) {
	f := newFixture(t)
	svc := f.analytics(time.Now())

	a := f.projects.Add(domain.NewProject("A", "C", "", 50, "USD"))
	b := f.projects.Add(domain.NewProject("B", "C", "", 50, "USD"))

	f.entries.Add(domain.NewTimeEntry(a.ID, "", "", time.Now(), 60, 50))
	f.entries.Add(domain.NewTimeEntry(a.ID, "", "", time.Now(), 30, 50))
	f.entries.Add(domain.NewTimeEntry("gone", "", "", time.Now(), 60, 50))

	got := svc.ProjectSummaries()
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].ProjectID != a.ID || got[0].Hours != 1.5 || got[0].Earnings != 75 || got[0].Entries != 2 {
		t.Fatalf("unexpected rollup for a: %+v", got[0])
	}
	if got[1].ProjectID != b.ID || got[1].Hours != 0 {
		t.Fatalf("expected zero rollup for b: %+v", got[1])
	}
}

func TestTaskSummaries(t *testing.T) {
	f := newFixture(t)
	svc := f.analytics(time.Now())

	p := f.projects.Add(domain.NewProject("Website", "ACME", "", 50, "USD"))
	task := f.tasks.Add(domain.NewTask(p.ID, "Design", "", domain.TaskPriorityMedium))

	f.entries.Add(domain.NewTimeEntry(p.ID, task.ID, "", time.Now(), 120, 50))
	f.entries.Add(domain.NewTimeEntry(p.ID, "", "no task", time.Now(), 60, 50))

	got := svc.TaskSummaries(p.ID)
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	if got[0].Hours != 2 || got[0].Earnings != 100 || got[0].Entries != 1 {
		t.Fatalf("unexpected rollup: %+v", got[0])
	}
}

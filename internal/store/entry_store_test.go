package store

import (
	"testing"
	"time"

	"github.com/andy/zentime/internal/domain"
)

func newTestEntryStore(t *testing.T) *EntryStore {
	t.Helper()
	s, err := NewEntryStore(newTestBackend(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestEntryStoreAddDerivesEarnings(t *testing.T) {
	s := newTestEntryStore(t)

	e := domain.NewTimeEntry("proj-1", "", "api work", time.Now(), 90, 50)
	e.Earnings = 9999 // caller-supplied value must be overwritten
	added := s.Add(e)

	if added.Earnings != 75 {
		t.Fatalf("expected earnings 75.00 for 90min at 50/hr, got %v", added.Earnings)
	}
	if added.ID == "" || added.CreatedAt.IsZero() {
		t.Fatalf("expected ID and CreatedAt to be assigned")
	}
}

func TestEntryStoreUpdateRederivesEarnings(t *testing.T) {
	s := newTestEntryStore(t)
	e := s.Add(domain.NewTimeEntry("proj-1", "", "", time.Now(), 60, 50))

	duration := 120
	s.Update(e.ID, EntryUpdate{Duration: &duration})
	got, _ := s.Get(e.ID)
	if got.Earnings != 100 {
		t.Fatalf("expected earnings 100 after duration change, got %v", got.Earnings)
	}

	rate := 80.0
	s.Update(e.ID, EntryUpdate{HourlyRate: &rate})
	got, _ = s.Get(e.ID)
	if got.Earnings != 160 {
		t.Fatalf("expected earnings 160 after rate change, got %v", got.Earnings)
	}

	// Patching only the description leaves earnings untouched
	desc := "new description"
	s.Update(e.ID, EntryUpdate{Description: &desc})
	got, _ = s.Get(e.ID)
	if got.Earnings != 160 {
		t.Fatalf("expected earnings unchanged, got %v", got.Earnings)
	}
}

func TestEntryStoreStopTimerMaterializesEntry(t *testing.T) {
	s := newTestEntryStore(t)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return start }
	s.StartTimer("proj-1", "task-1", "deep work", 60)

	if s.ActiveTimer() == nil {
		t.Fatalf("expected a running timer")
	}

	s.now = func() time.Time { return start.Add(45 * time.Minute) }
	if got := s.TimerDuration(); got != 45 {
		t.Fatalf("expected 45 elapsed minutes, got %d", got)
	}

	entry := s.StopTimer()
	if entry == nil {
		t.Fatalf("expected a materialized entry")
	}
	if entry.Duration != 45 {
		t.Fatalf("expected duration 45, got %d", entry.Duration)
	}
	if entry.Earnings != 45 {
		t.Fatalf("expected earnings 45.00 for 45min at 60/hr, got %v", entry.Earnings)
	}
	if entry.IsRunning {
		t.Fatalf("materialized entry must not be running")
	}
	if entry.TaskID != "task-1" {
		t.Fatalf("expected task reference to carry over")
	}
	if s.ActiveTimer() != nil {
		t.Fatalf("expected timer slot to be cleared")
	}
	if len(s.List()) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(s.List()))
	}
}

func TestEntryStoreStopTimerWhenIdle(t *testing.T) {
	s := newTestEntryStore(t)

	if entry := s.StopTimer(); entry != nil {
		t.Fatalf("expected nil when no timer is running")
	}
	if len(s.List()) != 0 {
		t.Fatalf("expected no entries to be created")
	}
}

func TestEntryStoreStartWhileRunningStopsFirst(t *testing.T) {
	s := newTestEntryStore(t)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return start }
	s.StartTimer("proj-1", "", "first", 60)

	s.now = func() time.Time { return start.Add(30 * time.Minute) }
	s.StartTimer("proj-2", "", "second", 80)

	// The first timer was materialized, not discarded
	entries := s.List()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one materialized entry, got %d", len(entries))
	}
	if entries[0].ProjectID != "proj-1" || entries[0].Duration != 30 {
		t.Fatalf("unexpected materialized entry: %+v", entries[0])
	}

	timer := s.ActiveTimer()
	if timer == nil || timer.ProjectID != "proj-2" {
		t.Fatalf("expected the new timer to be running")
	}
}

func TestEntryStoreTimerSurvivesReload(t *testing.T) {
	backend := newTestBackend(t)

	s1, err := NewEntryStore(backend)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s1.StartTimer("proj-1", "", "long task", 60)

	s2, err := NewEntryStore(backend)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	timer := s2.ActiveTimer()
	if timer == nil {
		t.Fatalf("expected timer to survive a reload")
	}
	if timer.ProjectID != "proj-1" || timer.HourlyRate != 60 {
		t.Fatalf("reloaded timer lost data: %+v", timer)
	}
}

func TestEntryStoreDeleteLeavesOthersIntact(t *testing.T) {
	s := newTestEntryStore(t)
	a := s.Add(domain.NewTimeEntry("proj-1", "", "a", time.Now(), 30, 50))
	b := s.Add(domain.NewTimeEntry("proj-1", "", "b", time.Now(), 60, 50))

	s.Delete(a.ID)

	if _, ok := s.Get(a.ID); ok {
		t.Fatalf("expected entry to be gone")
	}
	if _, ok := s.Get(b.ID); !ok {
		t.Fatalf("expected the other entry to remain")
	}
}

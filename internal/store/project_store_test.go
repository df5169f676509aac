package store

import (
	"testing"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/storage"
)

func newTestBackend(t *testing.T) *storage.Store {
	t.Helper()
	backend, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	return backend
}

func TestProjectStoreAdd(t *testing.T) {
	s, err := NewProjectStore(newTestBackend(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := s.Add(domain.NewProject("Website", "ACME", "redesign", 80, "USD"))
	if p.ID == "" {
		t.Fatalf("expected a generated ID")
	}
	if p.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be stamped")
	}
	if p.Status != domain.ProjectStatusActive {
		t.Fatalf("expected new project to be active, got %s", p.Status)
	}

	got, ok := s.Get(p.ID)
	if !ok {
		t.Fatalf("expected to find project by ID")
	}
	if got.Name != "Website" {
		t.Fatalf("expected name Website, got %s", got.Name)
	}
}

func TestProjectStoreAddAssignsUniqueIDs(t *testing.T) {
	s, err := NewProjectStore(newTestBackend(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p := s.Add(domain.NewProject("P", "C", "", 50, "USD"))
		if seen[p.ID] {
			t.Fatalf("duplicate ID %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestProjectStoreUpdate(t *testing.T) {
	s, err := NewProjectStore(newTestBackend(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := s.Add(domain.NewProject("Website", "ACME", "", 80, "USD"))

	rate := 95.0
	status := domain.ProjectStatusCompleted
	s.Update(p.ID, ProjectUpdate{HourlyRate: &rate, Status: &status})

	got, _ := s.Get(p.ID)
	if got.HourlyRate != 95 {
		t.Fatalf("expected rate 95, got %v", got.HourlyRate)
	}
	if got.Status != domain.ProjectStatusCompleted {
		t.Fatalf("expected completed status, got %s", got.Status)
	}
	if got.Name != "Website" {
		t.Fatalf("unpatched field changed: %s", got.Name)
	}
}

func TestProjectStoreUpdateUnknownIDIsNoOp(t *testing.T) {
	s, err := NewProjectStore(newTestBackend(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "ghost"
	s.Update("no-such-id", ProjectUpdate{Name: &name}) // must not panic

	if len(s.List()) != 0 {
		t.Fatalf("expected empty collection")
	}
}

func TestProjectStoreDelete(t *testing.T) {
	s, err := NewProjectStore(newTestBackend(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := s.Add(domain.NewProject("Website", "ACME", "", 80, "USD"))
	s.Delete(p.ID)

	if _, ok := s.Get(p.ID); ok {
		t.Fatalf("expected project to be gone")
	}
	s.Delete(p.ID) // deleting again is a no-op
}

func TestProjectStoreReloadFromDisk(t *testing.T) {
	backend := newTestBackend(t)

	s1, err := NewProjectStore(backend)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := s1.Add(domain.NewProject("Website", "ACME", "redesign", 80, "USD"))

	s2, err := NewProjectStore(backend)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := s2.Get(p.ID)
	if !ok {
		t.Fatalf("expected project to survive a reload")
	}
	if got.Client != "ACME" || got.HourlyRate != 80 {
		t.Fatalf("reloaded project lost data: %+v", got)
	}
}

func TestProjectStoreListReturnsCopy(t *testing.T) {
	s, err := NewProjectStore(newTestBackend(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Add(domain.NewProject("A", "C", "", 50, "USD"))
	s.Add(domain.NewProject("B", "C", "", 50, "USD"))

	list := s.List()
	list[0] = nil
	if s.List()[0] == nil {
		t.Fatalf("mutating the returned slice must not affect the store")
	}
}

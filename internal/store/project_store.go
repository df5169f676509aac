package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/storage"
	"github.com/google/uuid"
)

// ProjectStore owns the project collection
type ProjectStore struct {
	mu       sync.RWMutex
	backend  *storage.Store
	projects []*domain.Project
}

// NewProjectStore loads the project collection from storage. A read failure
// here is a wiring error and fails fast.
func NewProjectStore(backend *storage.Store) (*ProjectStore, error) {
	s := &ProjectStore{backend: backend}
	if _, err := backend.Read(keyProjects, &s.projects); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return s, nil
}

// List returns the projects in insertion order
func (s *ProjectStore) List() []*domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Get returns the project with the given ID, or (nil, false)
func (s *ProjectStore) Get(id string) (*domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Add assigns a fresh ID and creation stamp, appends the project and
// persists the collection.
func (s *ProjectStore) Add(p *domain.Project) *domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	s.projects = append(s.projects, p)
	s.persist()
	return p
}

// ProjectUpdate is a partial update; nil fields are left unchanged
type ProjectUpdate struct {
	Name        *string
	Client      *string
	Description *string
	HourlyRate  *float64
	Currency    *string
	Status      *domain.ProjectStatus
}

// Update merges the patch into the matching project. Unknown IDs are a
// silent no-op.
func (s *ProjectStore) Update(id string, upd ProjectUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.projects {
		if p.ID != id {
			continue
		}
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Client != nil {
			p.Client = *upd.Client
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.HourlyRate != nil {
			p.HourlyRate = *upd.HourlyRate
		}
		if upd.Currency != nil {
			p.Currency = *upd.Currency
		}
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		s.persist()
		return
	}
}

// Delete removes the project if present. Tasks, entries and invoices
// referencing it are left untouched; their project lookups will miss.
func (s *ProjectStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.projects {
		if p.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *ProjectStore) persist() {
	logPersistErr(keyProjects, s.backend.Write(keyProjects, s.projects))
}

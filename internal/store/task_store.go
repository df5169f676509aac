package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/storage"
	"github.com/google/uuid"
)

// TaskStore owns the task collection
type TaskStore struct {
	mu      sync.RWMutex
	backend *storage.Store
	tasks   []*domain.Task
}

// NewTaskStore loads the task collection from storage
func NewTaskStore(backend *storage.Store) (*TaskStore, error) {
	s := &TaskStore{backend: backend}
	if _, err := backend.Read(keyTasks, &s.tasks); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return s, nil
}

// List returns the tasks in insertion order
func (s *TaskStore) List() []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given ID, or (nil, false)
func (s *TaskStore) Get(id string) (*domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// ListByProject returns the tasks referencing the given project, in
// collection order. A dangling project ID simply yields matches as usual.
func (s *TaskStore) ListByProject(projectID string) []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// Add assigns a fresh ID and creation stamp, appends the task and persists
func (s *TaskStore) Add(t *domain.Task) *domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	s.tasks = append(s.tasks, t)
	s.persist()
	return t
}

// TaskUpdate is a partial update; nil fields are left unchanged. HourlyRate
// and ClearRate are separate so the override can be removed as well as set.
type TaskUpdate struct {
	Name        *string
	Description *string
	HourlyRate  *float64
	ClearRate   bool
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
}

// Update merges the patch into the matching task. A status transition into
// completed stamps CompletedAt; a transition away from completed clears it.
// The invariant is enforced here, at update time, and not re-verified on
// read. Unknown IDs are a silent no-op.
func (s *TaskStore) Update(id string, upd TaskUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID != id {
			continue
		}
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.HourlyRate != nil {
			t.HourlyRate = upd.HourlyRate
		}
		if upd.ClearRate {
			t.HourlyRate = nil
		}
		if upd.Priority != nil {
			t.Priority = *upd.Priority
		}
		if upd.Status != nil {
			if *upd.Status == domain.TaskStatusCompleted && t.Status != domain.TaskStatusCompleted {
				now := time.Now()
				t.CompletedAt = &now
			}
			if *upd.Status != domain.TaskStatusCompleted && t.Status == domain.TaskStatusCompleted {
				t.CompletedAt = nil
			}
			t.Status = *upd.Status
		}
		s.persist()
		return
	}
}

// Delete removes the task if present. Time entries referencing it keep
// their dangling task ID.
func (s *TaskStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *TaskStore) persist() {
	logPersistErr(keyTasks, s.backend.Write(keyTasks, s.tasks))
}

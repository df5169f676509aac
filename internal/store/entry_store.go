package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/andy/zentime/internal/domain"
	"github.com/andy/zentime/internal/storage"
	"github.com/google/uuid"
)

// EntryStore owns the time entry collection and the single active timer.
// The timer is held outside the collection and mirrored to its own storage
// slot on every transition, so a restart picks up a running timer.
type EntryStore struct {
	mu      sync.RWMutex
	backend *storage.Store
	entries []*domain.TimeEntry
	timer   *domain.ActiveTimer

	now func() time.Time // injectable for tests
}

// NewEntryStore loads the entry collection and any persisted active timer
func NewEntryStore(backend *storage.Store) (*EntryStore, error) {
	s := &EntryStore{backend: backend, now: time.Now}
	if _, err := backend.Read(keyTimeEntries, &s.entries); err != nil {
		return nil, fmt.Errorf("failed to load time entries: %w", err)
	}
	var timer domain.ActiveTimer
	found, err := backend.Read(keyActiveTimer, &timer)
	if err != nil {
		return nil, fmt.Errorf("failed to load active timer: %w", err)
	}
	if found {
		s.timer = &timer
	}
	return s, nil
}

// List returns the entries in insertion order
func (s *EntryStore) List() []*domain.TimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.TimeEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given ID, or (nil, false)
func (s *EntryStore) Get(id string) (*domain.TimeEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// ListByProject returns the entries referencing the given project
func (s *EntryStore) ListByProject(projectID string) []*domain.TimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.TimeEntry
	for _, e := range s.entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}

// ListByTask returns the entries referencing the given task
func (s *EntryStore) ListByTask(taskID string) []*domain.TimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.TimeEntry
	for _, e := range s.entries {
		if e.TaskID == taskID {
			out = append(out, e)
		}
	}
	return out
}

// Add assigns a fresh ID and creation stamp, derives earnings from the
// entry's duration and rate, appends and persists. Any earnings value on
// the passed entry is overwritten.
func (s *EntryStore) Add(e *domain.TimeEntry) *domain.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	e.CreatedAt = s.now()
	e.RecalculateEarnings()
	s.entries = append(s.entries, e)
	s.persistEntries()
	return e
}

// EntryUpdate is a partial update; nil fields are left unchanged. There is
// deliberately no Earnings field: earnings are always re-derived.
type EntryUpdate struct {
	ProjectID   *string
	TaskID      *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Duration    *int
	HourlyRate  *float64
}

// Update merges the patch into the matching entry and re-derives earnings
// whenever duration or rate changed. Unknown IDs are a silent no-op.
func (s *EntryStore) Update(id string, upd EntryUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID != id {
			continue
		}
		if upd.ProjectID != nil {
			e.ProjectID = *upd.ProjectID
		}
		if upd.TaskID != nil {
			e.TaskID = *upd.TaskID
		}
		if upd.Description != nil {
			e.Description = *upd.Description
		}
		if upd.StartTime != nil {
			e.StartTime = *upd.StartTime
		}
		if upd.EndTime != nil {
			e.EndTime = upd.EndTime
		}
		if upd.Duration != nil || upd.HourlyRate != nil {
			if upd.Duration != nil {
				e.Duration = *upd.Duration
			}
			if upd.HourlyRate != nil {
				e.HourlyRate = *upd.HourlyRate
			}
			e.RecalculateEarnings()
		}
		s.persistEntries()
		return
	}
}

// Delete removes the entry if present. Invoice line items snapshotted from
// it are unaffected.
func (s *EntryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persistEntries()
			return
		}
	}
}

// ActiveTimer returns the current timer, or nil when idle
func (s *EntryStore) ActiveTimer() *domain.ActiveTimer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timer
}

// StartTimer installs a new active timer. If a timer is already running it
// is stopped first, materializing its time entry; timers never stack and
// running time is never silently discarded. The store enforces no
// preconditions on the fields; the UI validates before calling.
func (s *EntryStore) StartTimer(projectID, taskID, description string, hourlyRate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.stopTimerLocked()
	}

	s.timer = domain.NewActiveTimer(projectID, taskID, description, hourlyRate, s.now())
	s.persistTimer()
}

// StopTimer materializes the active timer into a time entry, clears the
// timer slot and returns the new entry. Returns nil when no timer is
// running, without touching the collection.
func (s *EntryStore) StopTimer() *domain.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopTimerLocked()
}

func (s *EntryStore) stopTimerLocked() *domain.TimeEntry {
	if s.timer == nil {
		return nil
	}

	entry := s.timer.ToTimeEntry(s.now())
	entry.ID = uuid.NewString()
	entry.CreatedAt = s.now()
	s.entries = append(s.entries, entry)
	s.timer = nil

	s.persistEntries()
	s.persistTimer()
	return entry
}

// TimerDuration returns the elapsed time of the active timer in whole
// minutes, 0 when idle. Pausing in the UI does not affect this value.
func (s *EntryStore) TimerDuration() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.timer == nil {
		return 0
	}
	return s.timer.DurationMinutes(s.now())
}

func (s *EntryStore) persistEntries() {
	logPersistErr(keyTimeEntries, s.backend.Write(keyTimeEntries, s.entries))
}

func (s *EntryStore) persistTimer() {
	if s.timer == nil {
		logPersistErr(keyActiveTimer, s.backend.Delete(keyActiveTimer))
		return
	}
	logPersistErr(keyActiveTimer, s.backend.Write(keyActiveTimer, s.timer))
}

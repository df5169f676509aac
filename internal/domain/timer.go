package domain

import (
	"math"
	"time"
)

// ActiveTimer is the single in-progress time interval. It lives outside the
// entry collection and only becomes a TimeEntry when stopped. At most one
// timer exists at a time; starting a new one materializes the current one
// first.
//
// There is deliberately no paused state here: pausing in the UI only stops
// the cosmetic refresh tick, elapsed time keeps accruing against StartTime.
type ActiveTimer struct {
	ProjectID   string    `json:"projectId"`
	TaskID      string    `json:"taskId,omitempty"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	HourlyRate  float64   `json:"hourlyRate"`
}

// NewActiveTimer creates a running timer starting now
func NewActiveTimer(projectID, taskID, description string, hourlyRate float64, start time.Time) *ActiveTimer {
	return &ActiveTimer{
		ProjectID:   projectID,
		TaskID:      taskID,
		Description: description,
		StartTime:   start,
		HourlyRate:  hourlyRate,
	}
}

// DurationMinutes returns the elapsed time in whole minutes, rounded
func (t *ActiveTimer) DurationMinutes(now time.Time) int {
	return int(math.Round(now.Sub(t.StartTime).Minutes()))
}

// ToTimeEntry materializes the timer into a finished time entry
func (t *ActiveTimer) ToTimeEntry(now time.Time) *TimeEntry {
	duration := t.DurationMinutes(now)
	end := now
	entry := &TimeEntry{
		ProjectID:   t.ProjectID,
		TaskID:      t.TaskID,
		Description: t.Description,
		StartTime:   t.StartTime,
		EndTime:     &end,
		Duration:    duration,
		HourlyRate:  t.HourlyRate,
		IsRunning:   false,
	}
	entry.RecalculateEarnings()
	return entry
}

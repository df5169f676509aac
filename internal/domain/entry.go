package domain

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format used for invoice dates and for
// date-range comparisons during invoice generation.
const DateLayout = "2006-01-02"

// TimeEntry is a finished (or manually logged) block of tracked time.
// Duration is whole minutes; HourlyRate is frozen at creation and does not
// follow later project or task rate changes.
type TimeEntry struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	TaskID      string     `json:"taskId,omitempty"` // empty = not tied to a task
	Description string     `json:"description"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Duration    int        `json:"duration"` // minutes
	HourlyRate  float64    `json:"hourlyRate"`
	Earnings    float64    `json:"earnings"`
	IsRunning   bool       `json:"isRunning"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewTimeEntry creates a manual time entry. The ID, CreatedAt stamp and
// Earnings are assigned by the entry store on Add.
func NewTimeEntry(projectID, taskID, description string, startTime time.Time, duration int, hourlyRate float64) *TimeEntry {
	end := startTime.Add(time.Duration(duration) * time.Minute)
	return &TimeEntry{
		ProjectID:   projectID,
		TaskID:      taskID,
		Description: description,
		StartTime:   startTime,
		EndTime:     &end,
		Duration:    duration,
		HourlyRate:  hourlyRate,
	}
}

// RecalculateEarnings re-derives earnings from the current duration and rate.
// Earnings must always equal duration/60 x rate; callers never supply it.
func (e *TimeEntry) RecalculateEarnings() {
	e.Earnings = float64(e.Duration) / 60 * e.HourlyRate
}

// Hours returns the tracked duration in fractional hours
func (e *TimeEntry) Hours() float64 {
	return float64(e.Duration) / 60
}

// Date returns the entry's calendar date, derived from its start time
func (e *TimeEntry) Date() string {
	return e.StartTime.Format(DateLayout)
}

// Validate returns an error if the entry is invalid
func (e *TimeEntry) Validate() error {
	if e.ProjectID == "" {
		return errors.New("project ID is required")
	}
	if e.StartTime.IsZero() {
		return errors.New("start time is required")
	}
	if e.Duration < 0 {
		return errors.New("duration cannot be negative")
	}
	if e.HourlyRate < 0 {
		return errors.New("hourly rate cannot be negative")
	}
	return nil
}

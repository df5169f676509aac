package domain

import (
	"errors"
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"projectId"` // weak reference, may dangle after project delete
	Name        string       `json:"name"`
	Description string       `json:"description"`
	HourlyRate  *float64     `json:"hourlyRate,omitempty"` // optional override of the project rate
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

// NewTask creates a todo task for a project
func NewTask(projectID, name, description string, priority TaskPriority) *Task {
	return &Task{
		ProjectID:   projectID,
		Name:        strings.TrimSpace(name),
		Description: description,
		Status:      TaskStatusTodo,
		Priority:    priority,
	}
}

// EffectiveRate returns the task's rate override when set, otherwise the
// given project rate.
func (t *Task) EffectiveRate(projectRate float64) float64 {
	if t.HourlyRate != nil {
		return *t.HourlyRate
	}
	return projectRate
}

// Validate returns an error if the task is invalid
func (t *Task) Validate() error {
	if t.ProjectID == "" {
		return errors.New("project ID is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("task name is required")
	}
	if t.HourlyRate != nil && *t.HourlyRate < 0 {
		return errors.New("hourly rate cannot be negative")
	}
	switch t.Status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
	default:
		return errors.New("invalid task status")
	}
	switch t.Priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
	default:
		return errors.New("invalid task priority")
	}
	return nil
}

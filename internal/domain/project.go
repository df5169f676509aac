package domain

import (
	"errors"
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Client      string        `json:"client"`
	Description string        `json:"description"`
	HourlyRate  float64       `json:"hourlyRate"`
	Currency    string        `json:"currency"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// NewProject creates an active project with the required fields.
// The ID and CreatedAt stamp are assigned by the project store on Add.
func NewProject(name, client, description string, hourlyRate float64, currency string) *Project {
	return &Project{
		Name:        strings.TrimSpace(name),
		Client:      strings.TrimSpace(client),
		Description: description,
		HourlyRate:  hourlyRate,
		Currency:    currency,
		Status:      ProjectStatusActive,
	}
}

// Validate returns an error if the project is invalid
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("project name is required")
	}
	if strings.TrimSpace(p.Client) == "" {
		return errors.New("client name is required")
	}
	if p.HourlyRate < 0 {
		return errors.New("hourly rate cannot be negative")
	}
	switch p.Status {
	case ProjectStatusActive, ProjectStatusPaused, ProjectStatusCompleted:
	default:
		return errors.New("invalid project status")
	}
	return nil
}

// IsBillable reports whether new work should normally be logged against the
// project. Paused and completed projects remain billable for late entries;
// only the UI filters them out.
func (p *Project) IsBillable() bool {
	return p.Status == ProjectStatusActive
}

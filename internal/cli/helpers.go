package cli

import (
	"fmt"
	"strings"

	"github.com/andy/zentime/internal/domain"
)

// resolveProject resolves a project by ID or by exact name
func resolveProject(idOrName string) (*domain.Project, error) {
	if p, ok := appInstance.Projects.Get(idOrName); ok {
		return p, nil
	}
	for _, p := range appInstance.Projects.List() {
		if strings.EqualFold(p.Name, idOrName) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("project '%s' not found", idOrName)
}

// projectLabel returns the project name for display, or a placeholder when
// the reference dangles.
func projectLabel(projectID string) string {
	if p, ok := appInstance.Projects.Get(projectID); ok {
		return p.Name
	}
	return "Unknown Project"
}

// taskLabel returns the task name for display, or a placeholder when the
// reference dangles. Entries without a task show a dash.
func taskLabel(taskID string) string {
	if taskID == "" {
		return "-"
	}
	if t, ok := appInstance.Tasks.Get(taskID); ok {
		return t.Name
	}
	return "Unknown Task"
}

// formatMinutes formats whole minutes as "XhYYm"
func formatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// shortID returns the first 8 characters of a UUID for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens a string to maxLen with an ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

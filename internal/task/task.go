// Package task defines the task data model, the project and organization
// name registries, and the deterministic sort order for task lists.
package task

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the due date wire format (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// Task represents a single to-do item.
type Task struct {
	ID           int64  `json:"id"`
	Title        string `json:"task"`
	Project      string `json:"project,omitempty"`
	Organization string `json:"organization,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
	Completed    bool   `json:"completed"`
	CreatedAt    string `json:"createdAt"`
}

// HasDue reports whether the task carries a due date.
func (t *Task) HasDue() bool {
	return t.DueDate != ""
}

// OverdueAt reports whether the task is overdue relative to the given day.
// A completed task is never overdue.
func (t *Task) OverdueAt(today time.Time) bool {
	if t.Completed || t.DueDate == "" {
		return false
	}
	due, err := time.Parse(DateFormat, t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(dateOnly(today))
}

// DueToday reports whether the task is due on the given day.
func (t *Task) DueToday(today time.Time) bool {
	if t.DueDate == "" {
		return false
	}
	due, err := time.Parse(DateFormat, t.DueDate)
	if err != nil {
		return false
	}
	return due.Equal(dateOnly(today))
}

// DueDisplay returns a human-readable due date relative to the given day.
func (t *Task) DueDisplay(today time.Time) string {
	if t.DueDate == "" {
		return ""
	}
	due, err := time.Parse(DateFormat, t.DueDate)
	if err != nil {
		return t.DueDate
	}

	diff := int(due.Sub(dateOnly(today)).Hours() / 24)
	switch {
	case diff < -1:
		return fmt.Sprintf("%d days ago", -diff)
	case diff == -1:
		return "yesterday"
	case diff == 0:
		return "today"
	case diff == 1:
		return "tomorrow"
	case diff < 7:
		return due.Weekday().String()
	default:
		return due.Format("Jan 2")
	}
}

// dateOnly truncates a time to its calendar day in UTC, matching the zone
// time.Parse uses for due dates.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// SortMode selects the ordering applied before rendering.
type SortMode int

const (
	SortByDueDate SortMode = iota
	SortByProject
)

// String returns the config/wire name of the sort mode.
func (m SortMode) String() string {
	if m == SortByProject {
		return "project"
	}
	return "dueDate"
}

// ParseSortMode maps a config/wire name to a SortMode.
// Unknown names fall back to SortByDueDate.
func ParseSortMode(s string) SortMode {
	if strings.EqualFold(strings.TrimSpace(s), "project") {
		return SortByProject
	}
	return SortByDueDate
}

// State is the full application state: the task list, the name registries,
// and the active sort mode. It is the single source of truth rendered into
// the UI and the unit of persistence.
type State struct {
	Tasks         []Task   `json:"tasks"`
	Projects      []string `json:"projects"`
	Organizations []string `json:"organizations"`
	SortMode      SortMode `json:"sortMode"`
}

// NewState returns an empty default state.
func NewState() *State {
	return &State{
		Tasks:         []Task{},
		Projects:      []string{},
		Organizations: []string{},
	}
}

// Find returns a pointer to the task with the given id, or nil.
func (s *State) Find(id int64) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// RegisterProject adds a project name to the registry if it is non-empty
// and not already present. Returns true if the registry changed.
// Registries are append-only; insertion order is preserved.
func (s *State) RegisterProject(name string) bool {
	return register(&s.Projects, name)
}

// RegisterOrganization adds an organization name to the registry if it is
// non-empty and not already present. Returns true if the registry changed.
func (s *State) RegisterOrganization(name string) bool {
	return register(&s.Organizations, name)
}

func register(names *[]string, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, n := range *names {
		if n == name {
			return false
		}
	}
	*names = append(*names, name)
	return true
}

// Draft holds in-progress input for the add flow. It is transient and
// never persisted.
type Draft struct {
	Title        string
	Project      string
	Organization string
	DueDate      string
}

// Merge overwrites draft fields with the non-empty fields of other.
// Empty incoming fields leave existing input intact.
func (d *Draft) Merge(other Draft) {
	if strings.TrimSpace(other.Title) != "" {
		d.Title = strings.TrimSpace(other.Title)
	}
	if strings.TrimSpace(other.Project) != "" {
		d.Project = strings.TrimSpace(other.Project)
	}
	if strings.TrimSpace(other.Organization) != "" {
		d.Organization = strings.TrimSpace(other.Organization)
	}
	if strings.TrimSpace(other.DueDate) != "" {
		d.DueDate = strings.TrimSpace(other.DueDate)
	}
}

// Reset clears the draft.
func (d *Draft) Reset() {
	*d = Draft{}
}

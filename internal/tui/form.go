package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskbeam/taskbeam/internal/task"
)

// Form field indexes for focus management.
const (
	formFieldTitle = iota
	formFieldProject
	formFieldOrganization
	formFieldDue
	formFieldSubmit
)

const formFieldCount = 5

// TaskForm holds the state of the add/edit form. Its inputs back the draft
// task; nothing here is persisted until the form is submitted.
type TaskForm struct {
	Title        textinput.Model
	Project      textinput.Model
	Organization textinput.Model
	Due          textinput.Model

	FocusIndex int

	// Mode tracking
	Mode   string // "create" or "edit"
	TaskID int64  // id of the task being edited

	// Suggestion data from the registries
	KnownProjects      []string
	KnownOrganizations []string
}

// NewTaskForm creates an empty form for the add flow.
func NewTaskForm(projects, organizations []string) *TaskForm {
	title := textinput.New()
	title.Placeholder = "Task"
	title.Focus()
	title.CharLimit = 500
	title.Width = 50

	project := textinput.New()
	project.Placeholder = "Project (optional)"
	project.CharLimit = 100
	project.Width = 30

	org := textinput.New()
	org.Placeholder = "Organization (optional)"
	org.CharLimit = 100
	org.Width = 30

	due := textinput.New()
	due.Placeholder = "Due (YYYY-MM-DD, today, tomorrow, +3d)"
	due.Width = 40

	return &TaskForm{
		Title:              title,
		Project:            project,
		Organization:       org,
		Due:                due,
		Mode:               "create",
		KnownProjects:      projects,
		KnownOrganizations: organizations,
	}
}

// NewEditTaskForm creates a form pre-filled from an existing task.
func NewEditTaskForm(t *task.Task, projects, organizations []string) *TaskForm {
	f := NewTaskForm(projects, organizations)
	f.Mode = "edit"
	f.TaskID = t.ID
	f.Title.SetValue(t.Title)
	f.Project.SetValue(t.Project)
	f.Organization.SetValue(t.Organization)
	f.Due.SetValue(t.DueDate)
	return f
}

// Update routes input to the focused field.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.NextField()
			return nil
		case "shift+tab", "up":
			f.PrevField()
			return nil
		}
	}

	switch f.FocusIndex {
	case formFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
		cmds = append(cmds, cmd)
	case formFieldProject:
		f.Project, cmd = f.Project.Update(msg)
		cmds = append(cmds, cmd)
	case formFieldOrganization:
		f.Organization, cmd = f.Organization.Update(msg)
		cmds = append(cmds, cmd)
	case formFieldDue:
		f.Due, cmd = f.Due.Update(msg)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

// Focus sets the focused field.
func (f *TaskForm) Focus(index int) {
	f.FocusIndex = index
	f.Title.Blur()
	f.Project.Blur()
	f.Organization.Blur()
	f.Due.Blur()

	switch index {
	case formFieldTitle:
		f.Title.Focus()
	case formFieldProject:
		f.Project.Focus()
	case formFieldOrganization:
		f.Organization.Focus()
	case formFieldDue:
		f.Due.Focus()
	}
}

// IsValid checks if the form can be submitted.
func (f *TaskForm) IsValid() bool {
	return strings.TrimSpace(f.Title.Value()) != ""
}

// Draft snapshots the current inputs, normalizing the due date.
func (f *TaskForm) Draft(today time.Time) task.Draft {
	return task.Draft{
		Title:        strings.TrimSpace(f.Title.Value()),
		Project:      strings.TrimSpace(f.Project.Value()),
		Organization: strings.TrimSpace(f.Organization.Value()),
		DueDate:      NormalizeDue(f.Due.Value(), today),
	}
}

// ApplyDraft merges a voice capture result into the inputs via
// task.Draft.Merge: only non-empty incoming fields overwrite typed input.
func (f *TaskForm) ApplyDraft(d task.Draft) {
	current := task.Draft{
		Title:        f.Title.Value(),
		Project:      f.Project.Value(),
		Organization: f.Organization.Value(),
		DueDate:      f.Due.Value(),
	}
	current.Merge(d)

	f.Title.SetValue(current.Title)
	f.Project.SetValue(current.Project)
	f.Organization.SetValue(current.Organization)
	f.Due.SetValue(current.DueDate)
}

// NormalizeDue resolves relative due input to YYYY-MM-DD. Absolute dates
// pass through; anything unrecognized is returned trimmed so the user sees
// what they typed.
func NormalizeDue(in string, today time.Time) string {
	s := strings.TrimSpace(in)
	if s == "" {
		return ""
	}
	switch strings.ToLower(s) {
	case "today":
		return today.Format(task.DateFormat)
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(task.DateFormat)
	}
	// +Nd offsets, e.g. "+3d"
	if strings.HasPrefix(s, "+") && strings.HasSuffix(s, "d") && len(s) > 2 {
		days := 0
		valid := true
		for _, r := range s[1 : len(s)-1] {
			if r < '0' || r > '9' {
				valid = false
				break
			}
			days = days*10 + int(r-'0')
		}
		if valid {
			return today.AddDate(0, 0, days).Format(task.DateFormat)
		}
	}
	return s
}

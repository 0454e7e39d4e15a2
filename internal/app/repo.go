// Package app routes all state mutation through a single repository so the
// task list, the name registries, and the sort mode stay consistent and are
// persisted as one snapshot after every change.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskbeam/taskbeam/internal/task"
)

// Validation errors surfaced to the UI. Persistence errors are wrapped
// separately so callers can keep working in memory when a save fails.
var (
	ErrEmptyTitle = errors.New("task text is required")
	ErrNotFound   = errors.New("task not found")
)

// Saver persists a full state snapshot. The repository only depends on this
// boundary so the storage medium stays swappable.
type Saver interface {
	Save(*task.State) error
}

// Repository owns the application state and applies all mutations to it.
// It is not safe for concurrent use; all calls come from the single UI
// event loop.
type Repository struct {
	state  *task.State
	store  Saver
	lastID int64

	now func() time.Time
}

// New wraps an already-loaded state. The max existing task id seeds the id
// generator so fresh ids stay unique even against clock skew.
func New(state *task.State, store Saver) *Repository {
	r := &Repository{
		state: state,
		store: store,
		now:   time.Now,
	}
	for _, t := range state.Tasks {
		if t.ID > r.lastID {
			r.lastID = t.ID
		}
	}
	return r
}

// State exposes the owned state for rendering. Callers must not mutate it.
func (r *Repository) State() *task.State {
	return r.state
}

// Sorted returns the task list in the order selected by the current sort
// mode.
func (r *Repository) Sorted() []task.Task {
	return task.Sort(r.state.Tasks, r.state.SortMode)
}

// AddTask appends a new task built from the draft. A draft without task
// text is rejected and the state is left unchanged. Non-empty project and
// organization names are registered before the task is appended.
func (r *Repository) AddTask(d task.Draft) error {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return ErrEmptyTitle
	}

	r.state.RegisterProject(d.Project)
	r.state.RegisterOrganization(d.Organization)

	now := r.now()
	r.state.Tasks = append(r.state.Tasks, task.Task{
		ID:           r.nextID(now),
		Title:        title,
		Project:      strings.TrimSpace(d.Project),
		Organization: strings.TrimSpace(d.Organization),
		DueDate:      strings.TrimSpace(d.DueDate),
		Completed:    false,
		CreatedAt:    now.Format(time.RFC3339),
	})

	return r.save()
}

// EditTask replaces the editable fields of an existing task. Unknown ids
// and empty task text are rejected. A project or organization name not yet
// in its registry is registered before assignment, which covers the
// "create new" selection in the edit form.
func (r *Repository) EditTask(id int64, fields task.Draft) error {
	t := r.state.Find(id)
	if t == nil {
		return ErrNotFound
	}
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return ErrEmptyTitle
	}

	r.state.RegisterProject(fields.Project)
	r.state.RegisterOrganization(fields.Organization)

	t.Title = title
	t.Project = strings.TrimSpace(fields.Project)
	t.Organization = strings.TrimSpace(fields.Organization)
	t.DueDate = strings.TrimSpace(fields.DueDate)

	return r.save()
}

// DeleteTask removes the task with the given id. A missing id is a no-op.
func (r *Repository) DeleteTask(id int64) error {
	for i := range r.state.Tasks {
		if r.state.Tasks[i].ID == id {
			r.state.Tasks = append(r.state.Tasks[:i], r.state.Tasks[i+1:]...)
			return r.save()
		}
	}
	return nil
}

// ToggleComplete flips the completed flag. A missing id is a no-op.
func (r *Repository) ToggleComplete(id int64) error {
	t := r.state.Find(id)
	if t == nil {
		return nil
	}
	t.Completed = !t.Completed
	return r.save()
}

// SetSortMode switches the active ordering.
func (r *Repository) SetSortMode(mode task.SortMode) error {
	if r.state.SortMode == mode {
		return nil
	}
	r.state.SortMode = mode
	return r.save()
}

// nextID returns a fresh unique id. Ids are creation timestamps in
// milliseconds, bumped past the last issued id when two creations land in
// the same millisecond.
func (r *Repository) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *Repository) save() error {
	if err := r.store.Save(r.state); err != nil {
		return fmt.Errorf("failed to persist tasks: %w", err)
	}
	return nil
}

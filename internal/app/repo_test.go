package app

import (
	"errors"
	"testing"
	"time"

	"github.com/taskbeam/taskbeam/internal/task"
)

// memStore counts saves and optionally fails.
type memStore struct {
	saves int
	err   error
	last  *task.State
}

func (m *memStore) Save(s *task.State) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.last = s
	return nil
}

func newTestRepo() (*Repository, *memStore) {
	st := &memStore{}
	r := New(task.NewState(), st)
	base := time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)
	n := 0
	r.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return r, st
}

func TestAddTaskRegistersNamesAndPersists(t *testing.T) {
	r, st := newTestRepo()

	err := r.AddTask(task.Draft{Title: "Fix bug", Project: "WebApp", Organization: "Acme", DueDate: "2099-01-01"})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	state := r.State()
	if len(state.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(state.Tasks))
	}
	got := state.Tasks[0]
	if got.Title != "Fix bug" || got.Project != "WebApp" || got.DueDate != "2099-01-01" || got.Completed {
		t.Errorf("unexpected task: %+v", got)
	}
	if len(state.Projects) != 1 || state.Projects[0] != "WebApp" {
		t.Errorf("project not registered: %v", state.Projects)
	}
	if len(state.Organizations) != 1 || state.Organizations[0] != "Acme" {
		t.Errorf("organization not registered: %v", state.Organizations)
	}
	if st.saves != 1 {
		t.Errorf("expected 1 save, got %d", st.saves)
	}
}

func TestAddTaskRejectsEmptyTitle(t *testing.T) {
	r, st := newTestRepo()

	for _, title := range []string{"", "   "} {
		if err := r.AddTask(task.Draft{Title: title}); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("AddTask(%q): expected ErrEmptyTitle, got %v", title, err)
		}
	}
	if len(r.State().Tasks) != 0 {
		t.Error("rejected add must leave tasks unchanged")
	}
	if st.saves != 0 {
		t.Error("rejected add must not persist")
	}
}

func TestIDsAreUniqueAndMonotonic(t *testing.T) {
	st := &memStore{}
	r := New(task.NewState(), st)
	fixed := time.Date(2026, 2, 12, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed } // same millisecond every call

	for i := 0; i < 5; i++ {
		if err := r.AddTask(task.Draft{Title: "t"}); err != nil {
			t.Fatal(err)
		}
	}

	tasks := r.State().Tasks
	for i := 1; i < len(tasks); i++ {
		if tasks[i].ID <= tasks[i-1].ID {
			t.Fatalf("ids not strictly increasing: %d then %d", tasks[i-1].ID, tasks[i].ID)
		}
	}
}

func TestEditTask(t *testing.T) {
	r, _ := newTestRepo()
	if err := r.AddTask(task.Draft{Title: "Original"}); err != nil {
		t.Fatal(err)
	}
	id := r.State().Tasks[0].ID

	err := r.EditTask(id, task.Draft{Title: "Renamed", Project: "NewProj", DueDate: "2026-03-01"})
	if err != nil {
		t.Fatalf("EditTask: %v", err)
	}

	got := r.State().Tasks[0]
	if got.Title != "Renamed" || got.Project != "NewProj" || got.DueDate != "2026-03-01" {
		t.Errorf("edit not applied: %+v", got)
	}
	// "Create new project" path: the fresh name lands in the registry.
	if len(r.State().Projects) != 1 || r.State().Projects[0] != "NewProj" {
		t.Errorf("new project name not registered: %v", r.State().Projects)
	}

	if err := r.EditTask(id, task.Draft{Title: "  "}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if err := r.EditTask(42, task.Draft{Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteThenEditIsNoOp(t *testing.T) {
	r, _ := newTestRepo()
	if err := r.AddTask(task.Draft{Title: "doomed"}); err != nil {
		t.Fatal(err)
	}
	id := r.State().Tasks[0].ID

	if err := r.DeleteTask(id); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if len(r.State().Tasks) != 0 {
		t.Fatal("task not deleted")
	}

	if err := r.EditTask(id, task.Draft{Title: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("edit after delete: expected ErrNotFound, got %v", err)
	}
	if len(r.State().Tasks) != 0 {
		t.Error("edit after delete must not resurrect the task")
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	r, st := newTestRepo()
	if err := r.DeleteTask(999); err != nil {
		t.Fatalf("DeleteTask on missing id: %v", err)
	}
	if st.saves != 0 {
		t.Error("no-op delete must not persist")
	}
}

func TestToggleComplete(t *testing.T) {
	r, _ := newTestRepo()
	if err := r.AddTask(task.Draft{Title: "flip me"}); err != nil {
		t.Fatal(err)
	}
	id := r.State().Tasks[0].ID

	if err := r.ToggleComplete(id); err != nil {
		t.Fatal(err)
	}
	if !r.State().Tasks[0].Completed {
		t.Error("expected completed after first toggle")
	}
	if err := r.ToggleComplete(id); err != nil {
		t.Fatal(err)
	}
	if r.State().Tasks[0].Completed {
		t.Error("expected uncompleted after second toggle")
	}
	if err := r.ToggleComplete(404); err != nil {
		t.Errorf("toggle on missing id must be a no-op, got %v", err)
	}
}

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	r, st := newTestRepo()
	st.err = errors.New("disk full")

	err := r.AddTask(task.Draft{Title: "still here"})
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if len(r.State().Tasks) != 1 {
		t.Error("failed save must not roll back the in-memory mutation")
	}
}

func TestSetSortMode(t *testing.T) {
	r, st := newTestRepo()

	if err := r.SetSortMode(task.SortByProject); err != nil {
		t.Fatal(err)
	}
	if r.State().SortMode != task.SortByProject {
		t.Error("sort mode not applied")
	}
	if err := r.SetSortMode(task.SortByProject); err != nil {
		t.Fatal(err)
	}
	if st.saves != 1 {
		t.Errorf("setting the same mode twice should persist once, got %d saves", st.saves)
	}
}

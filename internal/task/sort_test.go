package task

import "testing"

func TestSortByDueDate(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "no due old"},
		{ID: 4, Title: "late", DueDate: "2026-03-01"},
		{ID: 2, Title: "no due new"},
		{ID: 3, Title: "early", DueDate: "2026-02-01"},
	}

	sorted := Sort(tasks, SortByDueDate)

	// Dated tasks ascending, then undated newest-first.
	expectedOrder := []int64{3, 4, 2, 1}
	if len(sorted) != len(expectedOrder) {
		t.Fatalf("expected %d tasks, got %d", len(expectedOrder), len(sorted))
	}
	for i, id := range expectedOrder {
		if sorted[i].ID != id {
			t.Errorf("at index %d: expected id %d, got %d", i, id, sorted[i].ID)
		}
	}

	// Input order untouched.
	if tasks[0].ID != 1 || tasks[3].ID != 3 {
		t.Error("Sort mutated its input")
	}
}

func TestSortByDueDateSameDayTieBreak(t *testing.T) {
	tasks := []Task{
		{ID: 10, Title: "older", DueDate: "2026-02-01"},
		{ID: 20, Title: "newer", DueDate: "2026-02-01"},
	}

	sorted := Sort(tasks, SortByDueDate)

	if sorted[0].ID != 20 || sorted[1].ID != 10 {
		t.Errorf("same-day tasks should order newest first, got %d, %d", sorted[0].ID, sorted[1].ID)
	}
}

func TestSortByProject(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "unassigned"},
		{ID: 2, Title: "beta", Project: "B"},
		{ID: 3, Title: "alpha", Project: "A"},
		{ID: 4, Title: "alpha dated", Project: "A", DueDate: "2026-01-05"},
	}

	sorted := Sort(tasks, SortByProject)

	// A group first (dated before undated within the group), then B,
	// then tasks without a project.
	expectedOrder := []int64{4, 3, 2, 1}
	for i, id := range expectedOrder {
		if sorted[i].ID != id {
			t.Errorf("at index %d: expected id %d, got %d", i, id, sorted[i].ID)
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	tasks := []Task{
		{ID: 5, Title: "a", Project: "X", DueDate: "2026-06-01"},
		{ID: 3, Title: "b", Project: "X", DueDate: "2026-06-01"},
		{ID: 9, Title: "c"},
		{ID: 1, Title: "d", DueDate: "2026-05-01"},
	}

	once := Sort(tasks, SortByProject)
	twice := Sort(once, SortByProject)

	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("sorting twice changed order at index %d", i)
		}
	}
}

func TestLessIsTotal(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "a", Project: "P", DueDate: "2026-01-01"},
		{ID: 2, Title: "b", Project: "P", DueDate: "2026-01-01"},
		{ID: 3, Title: "c", Project: "Q"},
		{ID: 4, Title: "d"},
		{ID: 5, Title: "e", DueDate: "2026-01-02"},
	}

	for _, mode := range []SortMode{SortByDueDate, SortByProject} {
		for i := range tasks {
			for j := range tasks {
				if i == j {
					continue
				}
				ab := Less(tasks[i], tasks[j], mode)
				ba := Less(tasks[j], tasks[i], mode)
				if ab == ba {
					t.Errorf("mode %v: tasks %d and %d do not compare decisively", mode, tasks[i].ID, tasks[j].ID)
				}
			}
		}
	}
}

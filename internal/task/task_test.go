package task

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverdueAt(t *testing.T) {
	today := date("2026-02-12")

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"due yesterday", Task{DueDate: "2026-02-11"}, true},
		{"due today", Task{DueDate: "2026-02-12"}, false},
		{"due tomorrow", Task{DueDate: "2026-02-13"}, false},
		{"no due date", Task{}, false},
		{"completed", Task{DueDate: "2026-02-11", Completed: true}, false},
		{"garbage date", Task{DueDate: "not-a-date"}, false},
	}

	for _, tt := range tests {
		if got := tt.task.OverdueAt(today); got != tt.want {
			t.Errorf("%s: OverdueAt = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDueDisplay(t *testing.T) {
	today := date("2026-02-12") // a Thursday

	tests := []struct {
		due  string
		want string
	}{
		{"2026-02-10", "2 days ago"},
		{"2026-02-11", "yesterday"},
		{"2026-02-12", "today"},
		{"2026-02-13", "tomorrow"},
		{"2026-02-16", "Monday"},
		{"2026-03-01", "Mar 1"},
		{"", ""},
	}

	for _, tt := range tests {
		task := Task{DueDate: tt.due}
		if got := task.DueDisplay(today); got != tt.want {
			t.Errorf("DueDisplay(%q) = %q, want %q", tt.due, got, tt.want)
		}
	}
}

func TestRegistriesDedupeAndPreserveOrder(t *testing.T) {
	s := NewState()

	if !s.RegisterProject("WebApp") {
		t.Error("first registration should report a change")
	}
	if s.RegisterProject("WebApp") {
		t.Error("duplicate registration should be a no-op")
	}
	if s.RegisterProject("") {
		t.Error("empty name should not register")
	}
	s.RegisterProject("Infra")

	if len(s.Projects) != 2 || s.Projects[0] != "WebApp" || s.Projects[1] != "Infra" {
		t.Errorf("unexpected registry contents: %v", s.Projects)
	}
}

func TestDraftMergeKeepsExistingOnEmpty(t *testing.T) {
	d := Draft{Title: "typed title", Project: "Home"}
	d.Merge(Draft{Title: "captured title", DueDate: "2026-02-20"})

	if d.Title != "captured title" {
		t.Errorf("non-empty incoming title should overwrite, got %q", d.Title)
	}
	if d.Project != "Home" {
		t.Errorf("empty incoming project should not clear existing, got %q", d.Project)
	}
	if d.DueDate != "2026-02-20" {
		t.Errorf("due date not merged, got %q", d.DueDate)
	}
}

func TestParseSortMode(t *testing.T) {
	if ParseSortMode("project") != SortByProject {
		t.Error("expected SortByProject")
	}
	if ParseSortMode("dueDate") != SortByDueDate {
		t.Error("expected SortByDueDate")
	}
	if ParseSortMode("bogus") != SortByDueDate {
		t.Error("unknown mode should fall back to SortByDueDate")
	}
}

package task

import "sort"

// Sort returns a new slice holding the tasks in the order selected by mode.
// The input slice is not mutated.
//
// The comparison is total: any two distinct tasks compare decisively, with
// reverse creation time (newest first) as the final tie-break, so sorting
// is deterministic and idempotent.
func Sort(tasks []Task, mode SortMode) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j], mode)
	})
	return out
}

// Less reports whether a orders before b under the given mode.
func Less(a, b Task, mode SortMode) bool {
	if mode == SortByProject && a.Project != b.Project {
		// Unassigned tasks group after all named projects.
		if a.Project == "" {
			return false
		}
		if b.Project == "" {
			return true
		}
		return a.Project < b.Project
	}
	return lessByDue(a, b)
}

// lessByDue orders dated tasks ascending by due date; undated tasks sort
// after all dated ones. Remaining ties resolve by descending id, which is
// descending creation time.
func lessByDue(a, b Task) bool {
	switch {
	case a.HasDue() && !b.HasDue():
		return true
	case !a.HasDue() && b.HasDue():
		return false
	case a.HasDue() && b.HasDue() && a.DueDate != b.DueDate:
		// YYYY-MM-DD compares correctly as a string.
		return a.DueDate < b.DueDate
	}
	return a.ID > b.ID
}

// Package render turns a sorted task list into display rows. It is a pure
// function of its inputs: no clock reads, no state, no I/O.
//
// All user-supplied text (title, project, organization) is escaped before
// it is embedded into the row markup. The rows end up in exported HTML and
// shared snippets as well as the terminal, so unescaped input is an
// injection vector, not a cosmetic problem.
package render

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskbeam/taskbeam/internal/task"
	"github.com/taskbeam/taskbeam/internal/tui/styles"
)

// EmptyState is shown instead of a list when there are no tasks.
const EmptyState = "No tasks yet. Press 'a' to add one."

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape sanitizes user-supplied text for embedding into markup.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Row renders a single task as one line: checkbox, escaped title, optional
// project and organization tags, optional due tag with an overdue marker.
func Row(t task.Task, today time.Time, width int) string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	title := Escape(t.Title)
	if t.Completed {
		title = styles.TaskCompleted.Render(title)
	}

	var tags []string
	if t.Project != "" {
		tags = append(tags, styles.TaskProject.Render("#"+Escape(t.Project)))
	}
	if t.Organization != "" {
		tags = append(tags, styles.TaskOrganization.Render("@"+Escape(t.Organization)))
	}
	if t.DueDate != "" {
		tags = append(tags, dueTag(t, today))
	}

	line := checkbox + " " + title
	if len(tags) > 0 {
		line += "  " + strings.Join(tags, " ")
	}
	return truncate(line, width)
}

// List renders the whole task list, one row per task, or the empty-state
// indicator when there are no tasks. Tasks are rendered in the order given;
// sorting is the caller's concern.
func List(tasks []task.Task, today time.Time, width int) string {
	if len(tasks) == 0 {
		return styles.EmptyState.Render(EmptyState)
	}

	rows := make([]string, len(tasks))
	for i, t := range tasks {
		rows[i] = Row(t, today, width)
	}
	return strings.Join(rows, "\n")
}

func dueTag(t task.Task, today time.Time) string {
	display := t.DueDisplay(today)
	switch {
	case t.OverdueAt(today):
		return styles.TaskDueOverdue.Render(display + " (overdue)")
	case t.DueToday(today):
		return styles.TaskDueToday.Render(display)
	default:
		return styles.TaskDue.Render(display)
	}
}

// truncate clips a rendered line to the given display width. A width of
// zero or less means no limit.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	out := s
	for lipgloss.Width(out+"…") > width && len(out) > 0 {
		_, size := utf8.DecodeLastRuneInString(out)
		out = out[:len(out)-size]
	}
	return out + "…"
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
)

type checkDueMsg time.Time

func checkDueCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}

// handleCheckDue sends a desktop notification for each task that is due
// today or overdue, at most once per task per run.
func (a *App) handleCheckDue(now time.Time) tea.Cmd {
	cmds := []tea.Cmd{checkDueCmd()}

	for _, t := range a.repo.State().Tasks {
		if a.notified[t.ID] || t.Completed || !t.HasDue() {
			continue
		}
		if !t.DueToday(now) && !t.OverdueAt(now) {
			continue
		}

		a.notified[t.ID] = true

		title := "taskbeam"
		if t.Project != "" {
			title = t.Project
		}
		body := "Task due: " + t.Title
		cmds = append(cmds, func() tea.Msg {
			// Notification failures are not actionable; the list view
			// already shows the due state.
			_ = beeep.Notify(title, body, "")
			return nil
		})
	}

	return tea.Batch(cmds...)
}

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/taskbeam/taskbeam/internal/render"
	"github.com/taskbeam/taskbeam/internal/tui/styles"
	"github.com/taskbeam/taskbeam/internal/voice"
)

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.view {
	case ViewForm:
		body = a.viewForm()
	case ViewConfirmDelete:
		body = a.viewConfirmDelete()
	case ViewHelp:
		body = a.viewHelp()
	default:
		body = a.viewList()
	}

	sections := []string{a.viewHeader(), body, a.viewStatusBar()}
	return styles.App.Render(strings.Join(sections, "\n\n"))
}

func (a *App) viewHeader() string {
	title := styles.Title.Render("taskbeam")
	mode := styles.Subtitle.Render("sorted by " + modeLabel(a.repo.State().SortMode))
	return title + "  " + mode
}

func (a *App) viewList() string {
	today := time.Now()
	width := a.rowWidth()

	if len(a.visible) == 0 {
		return styles.EmptyState.Render(render.EmptyState)
	}

	rows := make([]string, len(a.visible))
	for i, t := range a.visible {
		row := render.Row(t, today, width)
		if i == a.cursor {
			rows[i] = styles.TaskSelected.Render(row)
		} else {
			rows[i] = styles.TaskItem.Render(row)
		}
	}
	return strings.Join(rows, "\n")
}

func (a *App) viewForm() string {
	f := a.form
	if f == nil {
		return ""
	}

	heading := "New task"
	if f.Mode == "edit" {
		heading = "Edit task"
	}

	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(heading))
	b.WriteString("\n\n")

	fields := []struct {
		index int
		label string
		view  string
	}{
		{formFieldTitle, "Task", f.Title.View()},
		{formFieldProject, "Project", f.Project.View()},
		{formFieldOrganization, "Organization", f.Organization.View()},
		{formFieldDue, "Due", f.Due.View()},
	}
	for _, field := range fields {
		label := styles.FormLabel
		if f.FocusIndex == field.index {
			label = styles.FormLabelFocused
		}
		b.WriteString(label.Render(field.label))
		b.WriteString("\n")
		b.WriteString(field.view)
		b.WriteString("\n")
	}

	if suggestions := a.suggestionLine(); suggestions != "" {
		b.WriteString(styles.FormHint.Render(suggestions))
		b.WriteString("\n")
	}

	submit := "[ Save ]"
	if f.FocusIndex == formFieldSubmit {
		submit = styles.FormLabelFocused.Render("[ Save ]")
	} else {
		submit = styles.FormLabel.Render(submit)
	}
	b.WriteString("\n")
	b.WriteString(submit)
	b.WriteString("\n\n")
	b.WriteString(a.voiceIndicator())

	return styles.FormBox.Render(b.String())
}

// suggestionLine shows registry names for the focused field.
func (a *App) suggestionLine() string {
	switch a.form.FocusIndex {
	case formFieldProject:
		if len(a.form.KnownProjects) > 0 {
			return "known: " + strings.Join(a.form.KnownProjects, ", ")
		}
	case formFieldOrganization:
		if len(a.form.KnownOrganizations) > 0 {
			return "known: " + strings.Join(a.form.KnownOrganizations, ", ")
		}
	}
	return ""
}

func (a *App) voiceIndicator() string {
	switch a.session.State() {
	case voice.Listening:
		return styles.VoiceListening.Render("● listening") +
			styles.FormHint.Render("  ("+a.keymap.Voice[0]+" to stop)")
	case voice.Captured:
		label := "✓ captured"
		if t := a.session.Result().Task; t != "" {
			label += ": " + render.Escape(t)
		}
		return styles.VoiceCaptured.Render(label) +
			styles.FormHint.Render("  (review and save)")
	default:
		return styles.FormHint.Render(a.keymap.Voice[0] + " to capture by voice")
	}
}

func (a *App) viewConfirmDelete() string {
	prompt := "Delete this task? (y/n)"
	if t := a.repo.State().Find(a.confirmDeleteID); t != nil {
		prompt = "Delete \"" + render.Escape(t.Title) + "\"? (y/n)"
	}
	return a.viewList() + "\n\n" + styles.StatusNotice.Render(prompt)
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Keybindings"))
	b.WriteString("\n\n")
	for _, item := range a.keymap.HelpItems() {
		key := runewidth.FillRight(item[0], 10)
		b.WriteString("  " + styles.Title.Render(key) + styles.StatusBar.Render(item[1]) + "\n")
	}
	b.WriteString("\n" + styles.FormHint.Render("press any key to close"))
	return b.String()
}

func (a *App) viewStatusBar() string {
	if a.status == "" {
		hint := a.keymap.Add[0] + " add · " + a.keymap.Help[0] + " help · " + a.keymap.Quit[0] + " quit"
		return styles.StatusBar.Render(hint)
	}

	style := styles.StatusBar
	switch a.statusKind {
	case statusError:
		style = styles.StatusError
	case statusNotice:
		style = styles.StatusNotice
	}
	return style.Render(truncateStatus(a.status, a.rowWidth()))
}

func (a *App) rowWidth() int {
	if a.width <= 0 {
		return 0
	}
	// App padding is 2 columns each side.
	w := a.width - 4
	if w < 10 {
		w = 10
	}
	return w
}

func truncateStatus(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

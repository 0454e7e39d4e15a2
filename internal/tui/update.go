package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskbeam/taskbeam/internal/share"
	"github.com/taskbeam/taskbeam/internal/task"
	"github.com/taskbeam/taskbeam/internal/voice"
)

// statusTTL is how long a transient status message stays visible.
const statusTTL = 4 * time.Second

type voicePayloadMsg []byte

type statusExpireMsg int

// listenCmd waits for the next transcription payload. It returns nil when
// no channel is configured; the simulated channel is wired lazily on the
// first voice toggle.
func (a *App) listenCmd() tea.Cmd {
	if a.channel == nil {
		return nil
	}
	ch := a.channel.Messages()
	return func() tea.Msg {
		payload, ok := <-ch
		if !ok {
			return nil
		}
		return voicePayloadMsg(payload)
	}
}

func (a *App) expireStatusCmd() tea.Cmd {
	seq := a.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpireMsg(seq)
	})
}

// setStatus shows a transient status line message that auto-dismisses.
func (a *App) setStatus(kind statusKind, msg string) tea.Cmd {
	a.statusSeq++
	a.status = msg
	a.statusKind = kind
	return a.expireStatusCmd()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case voicePayloadMsg:
		return a.handleVoicePayload([]byte(msg))

	case statusExpireMsg:
		if int(msg) == a.statusSeq {
			a.status = ""
		}
		return a, nil

	case checkDueMsg:
		return a, a.handleCheckDue(time.Time(msg))
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.view {
	case ViewForm:
		return a.handleFormKey(msg)
	case ViewConfirmDelete:
		return a.handleConfirmDeleteKey(msg)
	case ViewHelp:
		a.view = ViewList
		return a, nil
	default:
		return a.handleListKey(msg)
	}
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := a.keymap

	switch {
	case Matches(key, km.Quit):
		return a, tea.Quit

	case Matches(key, km.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case Matches(key, km.Down):
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}

	case Matches(key, km.Top):
		a.cursor = 0

	case Matches(key, km.Bottom):
		if len(a.visible) > 0 {
			a.cursor = len(a.visible) - 1
		}

	case Matches(key, km.Add):
		a.session.Reset()
		a.form = NewTaskForm(a.repo.State().Projects, a.repo.State().Organizations)
		a.view = ViewForm

	case Matches(key, km.Edit):
		if t := a.selected(); t != nil {
			a.session.Reset()
			a.form = NewEditTaskForm(t, a.repo.State().Projects, a.repo.State().Organizations)
			a.view = ViewForm
		}

	case Matches(key, km.Toggle):
		if t := a.selected(); t != nil {
			if err := a.repo.ToggleComplete(t.ID); err != nil {
				return a, a.setStatus(statusError, err.Error())
			}
			a.refresh()
		}

	case Matches(key, km.Delete):
		if t := a.selected(); t != nil {
			a.confirmDeleteID = t.ID
			a.view = ViewConfirmDelete
		}

	case Matches(key, km.Sort):
		mode := task.SortByProject
		if a.repo.State().SortMode == task.SortByProject {
			mode = task.SortByDueDate
		}
		if err := a.repo.SetSortMode(mode); err != nil {
			return a, a.setStatus(statusError, err.Error())
		}
		a.refresh()
		return a, a.setStatus(statusInfo, "Sorted by "+modeLabel(mode))

	case Matches(key, km.Copy):
		if t := a.selected(); t != nil {
			return a, a.copyShareLink(t)
		}

	case Matches(key, km.Help):
		a.view = ViewHelp
	}

	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := a.keymap

	switch {
	case Matches(key, km.Cancel):
		a.session.Reset()
		a.form = nil
		a.view = ViewList
		return a, nil

	case Matches(key, km.Voice):
		return a.toggleVoice()

	case Matches(key, km.Confirm):
		if a.form.FocusIndex != formFieldSubmit {
			a.form.NextField()
			return a, nil
		}
		return a.submitForm()
	}

	return a, a.form.Update(msg)
}

func (a *App) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	a.view = ViewList

	if key == "y" || Matches(key, a.keymap.Confirm) {
		if err := a.repo.DeleteTask(a.confirmDeleteID); err != nil {
			return a, a.setStatus(statusError, err.Error())
		}
		a.refresh()
		return a, a.setStatus(statusInfo, "Task deleted")
	}
	return a, nil
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	if !a.form.IsValid() {
		return a, a.setStatus(statusNotice, "Task text is required")
	}

	draft := a.form.Draft(time.Now())
	if draft.DueDate != "" && !task.ValidDate(draft.DueDate) {
		return a, a.setStatus(statusNotice, "Due date must be YYYY-MM-DD (or today, tomorrow, +Nd)")
	}

	var err error
	if a.form.Mode == "edit" {
		err = a.repo.EditTask(a.form.TaskID, draft)
	} else {
		err = a.repo.AddTask(draft)
	}

	a.session.Reset()
	a.form = nil
	a.view = ViewList
	a.refresh()

	if err != nil {
		return a, a.setStatus(statusError, err.Error())
	}
	return a, a.setStatus(statusInfo, "Task saved")
}

// toggleVoice starts or stops a capture session. Starting hands the
// transcriber the extraction instruction for the current date. With no
// transcriber configured, a simulated channel delivers a canned result
// after a fixed delay so the flow works standalone.
func (a *App) toggleVoice() (tea.Model, tea.Cmd) {
	if a.session.Toggle() {
		var cmds []tea.Cmd
		if a.channel == nil {
			a.channel = voice.NewSimulatedChannel(a.cfg.SimulateDelay())
			cmds = append(cmds, a.listenCmd())
		}
		if err := a.channel.Start(voice.Prompt(time.Now())); err != nil {
			// The session keeps listening; a late transcriber can still
			// pick up a re-sent instruction on the next toggle.
			cmds = append(cmds, a.setStatus(statusNotice, "Transcriber unavailable: "+err.Error()))
		} else {
			cmds = append(cmds, a.setStatus(statusNotice, "Listening..."))
		}
		return a, tea.Batch(cmds...)
	}
	return a, a.setStatus(statusInfo, "Stopped listening")
}

// handleVoicePayload merges an inbound capture result into the open form.
// Payloads arriving outside an active listening session, and payloads the
// session rejects as malformed, are dropped silently.
func (a *App) handleVoicePayload(payload []byte) (tea.Model, tea.Cmd) {
	rearm := a.listenCmd()

	if a.view != ViewForm || a.form == nil {
		return a, rearm
	}
	result, ok := a.session.Deliver(payload)
	if !ok {
		return a, rearm
	}

	a.form.ApplyDraft(result.Draft())
	return a, tea.Batch(rearm, a.setStatus(statusInfo, "Voice capture merged into draft"))
}

// copyShareLink puts a share link for the task on the clipboard. If the
// clipboard is unavailable the link is surfaced in the status line as the
// fallback copy path.
func (a *App) copyShareLink(t *task.Task) tea.Cmd {
	link, err := share.Link(a.cfg.Share.BaseURL, share.Payload{
		Task:         t.Title,
		Project:      t.Project,
		Organization: t.Organization,
		DueDate:      t.DueDate,
	})
	if err != nil {
		return a.setStatus(statusError, err.Error())
	}

	if err := clipboard.WriteAll(link); err != nil {
		return a.setStatus(statusNotice, "Clipboard unavailable, link: "+link)
	}
	return a.setStatus(statusInfo, "Share link copied")
}

func modeLabel(mode task.SortMode) string {
	if mode == task.SortByProject {
		return "project"
	}
	return "due date"
}

// Package tui implements the terminal UI. All state mutation runs through
// the repository from the single bubbletea event loop; the view is a pure
// function of the model.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskbeam/taskbeam/internal/app"
	"github.com/taskbeam/taskbeam/internal/config"
	"github.com/taskbeam/taskbeam/internal/task"
	"github.com/taskbeam/taskbeam/internal/voice"
)

// View represents the current screen.
type View int

const (
	ViewList View = iota
	ViewForm
	ViewConfirmDelete
	ViewHelp
)

// statusKind selects the status line style.
type statusKind int

const (
	statusInfo statusKind = iota
	statusNotice
	statusError
)

// App is the bubbletea model.
type App struct {
	repo    *app.Repository
	cfg     *config.Config
	channel voice.Channel
	session voice.Session

	view    View
	visible []task.Task
	cursor  int
	form    *TaskForm
	keymap  Keymap

	confirmDeleteID int64

	status     string
	statusKind statusKind
	statusSeq  int

	notified map[int64]bool

	width  int
	height int
}

// NewApp creates the TUI model. channel may be nil; voice capture then
// falls back to the simulated channel configured on first use.
func NewApp(repo *app.Repository, cfg *config.Config, channel voice.Channel) *App {
	a := &App{
		repo:     repo,
		cfg:      cfg,
		channel:  channel,
		keymap:   DefaultKeymap(cfg.UI.VimMode),
		notified: make(map[int64]bool),
	}
	a.refresh()
	return a
}

// Init starts the channel reader and the due-task ticker.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.listenCmd(), checkDueCmd())
}

// refresh re-derives the rendered task order from the repository state.
// Called after every mutation and sort mode change.
func (a *App) refresh() {
	a.visible = a.repo.Sorted()
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// selected returns the task under the cursor, or nil.
func (a *App) selected() *task.Task {
	if len(a.visible) == 0 || a.cursor >= len(a.visible) {
		return nil
	}
	return &a.visible[a.cursor]
}

// Package voice implements the voice-to-task capture flow: a small state
// machine toggled from the add form, an asynchronous channel that an
// external transcriber delivers structured results on, and the instruction
// prompt sent to that transcriber.
package voice

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/taskbeam/taskbeam/internal/task"
)

// State is the capture session state.
type State int

const (
	Idle State = iota
	Listening
	Captured
)

// String returns a display name for the state.
func (s State) String() string {
	switch s {
	case Listening:
		return "listening"
	case Captured:
		return "captured"
	default:
		return "idle"
	}
}

// Result is the structured payload extracted by the external transcriber.
// Every field is optional except Task.
type Result struct {
	Task         string `json:"task"`
	Project      string `json:"project"`
	Organization string `json:"organization"`
	DueDate      string `json:"dueDate"`
}

// Draft converts the result into draft fields for merging.
func (r Result) Draft() task.Draft {
	return task.Draft{
		Title:        r.Task,
		Project:      r.Project,
		Organization: r.Organization,
		DueDate:      r.DueDate,
	}
}

// ParseResult decodes an inbound payload. The payload must be JSON and must
// carry a non-empty task field to be accepted; anything else is rejected
// and the caller ignores it silently.
func ParseResult(payload []byte) (Result, bool) {
	var r Result
	if err := json.Unmarshal(payload, &r); err != nil {
		return Result{}, false
	}
	if strings.TrimSpace(r.Task) == "" {
		return Result{}, false
	}
	r.Task = strings.TrimSpace(r.Task)
	r.Project = strings.TrimSpace(r.Project)
	r.Organization = strings.TrimSpace(r.Organization)
	r.DueDate = strings.TrimSpace(r.DueDate)
	return r, true
}

// Prompt returns the instruction sent to the external language model along
// with the recorded speech. The current date is embedded so relative dates
// ("tomorrow", "in 3 days") come back as absolute YYYY-MM-DD.
func Prompt(today time.Time) string {
	return fmt.Sprintf(
		"You are a task capture assistant. Today's date is %s. "+
			"Extract a to-do item from the following spoken input and respond "+
			"with strict JSON only, no prose, using exactly these keys: "+
			`{"task": "", "project": "", "organization": "", "dueDate": ""}. `+
			"task is the action to perform and is required. project and "+
			"organization are names mentioned for grouping; leave them empty "+
			"if not mentioned. dueDate must be an absolute date in YYYY-MM-DD "+
			"format; resolve relative expressions like \"tomorrow\" or "+
			"\"in 3 days\" against today's date, or leave it empty if no date "+
			"was mentioned.",
		today.Format(task.DateFormat),
	)
}

// Session tracks one capture session. It is driven entirely from the UI
// event loop; there is no internal timeout, so a session with no inbound
// message stays listening until it is toggled off.
type Session struct {
	state  State
	result Result
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Result returns the last captured result. Only meaningful in Captured.
func (s *Session) Result() Result {
	return s.result
}

// Toggle flips between listening and not listening. It reports whether the
// session is listening after the toggle.
func (s *Session) Toggle() bool {
	if s.state == Listening {
		s.state = Idle
		return false
	}
	s.state = Listening
	return true
}

// Deliver feeds an inbound payload to the session. Payloads are only
// accepted while listening; malformed or task-less payloads are dropped
// without a state change. On acceptance the session moves to Captured.
func (s *Session) Deliver(payload []byte) (Result, bool) {
	if s.state != Listening {
		return Result{}, false
	}
	r, ok := ParseResult(payload)
	if !ok {
		return Result{}, false
	}
	s.state = Captured
	s.result = r
	return r, true
}

// Reset returns the session to idle, discarding any captured result. The
// add flow calls this on entry and on cancel.
func (s *Session) Reset() {
	*s = Session{}
}

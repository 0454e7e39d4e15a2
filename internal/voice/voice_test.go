package voice

import (
	"strings"
	"testing"
	"time"
)

func TestParseResult(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		ok      bool
		task    string
	}{
		{"full result", `{"task":"Buy milk","project":"Home","dueDate":"2026-02-13"}`, true, "Buy milk"},
		{"task only", `{"task":"Buy milk"}`, true, "Buy milk"},
		{"whitespace task", `{"task":"  Buy milk  "}`, true, "Buy milk"},
		{"missing task", `{"project":"Home"}`, false, ""},
		{"empty task", `{"task":"   "}`, false, ""},
		{"not json", `buy milk tomorrow`, false, ""},
		{"empty payload", ``, false, ""},
	}

	for _, tt := range tests {
		r, ok := ParseResult([]byte(tt.payload))
		if ok != tt.ok {
			t.Errorf("%s: accepted=%v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && r.Task != tt.task {
			t.Errorf("%s: task=%q, want %q", tt.name, r.Task, tt.task)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	var s Session

	if s.State() != Idle {
		t.Fatalf("new session should be idle, got %v", s.State())
	}
	if !s.Toggle() {
		t.Fatal("first toggle should start listening")
	}
	if s.State() != Listening {
		t.Fatalf("expected listening, got %v", s.State())
	}

	r, ok := s.Deliver([]byte(`{"task":"Call dentist","dueDate":"2026-03-01"}`))
	if !ok {
		t.Fatal("valid payload rejected")
	}
	if r.Task != "Call dentist" {
		t.Errorf("unexpected result: %+v", r)
	}
	if s.State() != Captured {
		t.Errorf("expected captured, got %v", s.State())
	}

	s.Reset()
	if s.State() != Idle {
		t.Errorf("reset should return to idle, got %v", s.State())
	}
}

func TestSessionToggleOffWhileListening(t *testing.T) {
	var s Session
	s.Toggle()
	if s.Toggle() {
		t.Fatal("second toggle should stop listening")
	}
	if s.State() != Idle {
		t.Errorf("expected idle after toggle off, got %v", s.State())
	}
}

func TestSessionIgnoresPayloadsOutsideListening(t *testing.T) {
	var s Session

	if _, ok := s.Deliver([]byte(`{"task":"late arrival"}`)); ok {
		t.Error("idle session must drop payloads")
	}

	s.Toggle()
	if _, ok := s.Deliver([]byte(`{"project":"no task here"}`)); ok {
		t.Error("task-less payload must be dropped")
	}
	if s.State() != Listening {
		t.Errorf("dropped payload must not change state, got %v", s.State())
	}
}

func TestPromptContainsDateAndKeys(t *testing.T) {
	p := Prompt(time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC))

	if !strings.Contains(p, "2026-02-12") {
		t.Error("prompt must embed the current date")
	}
	for _, key := range []string{`"task"`, `"project"`, `"organization"`, `"dueDate"`} {
		if !strings.Contains(p, key) {
			t.Errorf("prompt missing key %s", key)
		}
	}
	if !strings.Contains(p, "YYYY-MM-DD") {
		t.Error("prompt must pin the date format")
	}
}

func TestSimulatedChannelDelivers(t *testing.T) {
	c := NewSimulatedChannel(10 * time.Millisecond)
	defer c.Close()
	c.now = func() time.Time { return time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC) }

	if err := c.Start(Prompt(c.now())); err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case payload := <-c.Messages():
		r, ok := ParseResult(payload)
		if !ok {
			t.Fatalf("simulated payload did not parse: %s", payload)
		}
		if r.DueDate != "2026-02-13" {
			t.Errorf("expected tomorrow's date, got %q", r.DueDate)
		}
	case <-time.After(time.Second):
		t.Fatal("no simulated result delivered")
	}
}

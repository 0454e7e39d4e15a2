package voice

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/taskbeam/taskbeam/internal/task"
)

// settleDelay is how long to wait after the last write event before reading
// the spool file, so a transcriber writing in chunks is read once.
const settleDelay = 100 * time.Millisecond

// Channel connects a capture session to a transcriber. Start hands the
// transcriber the extraction instruction when listening begins; Messages
// delivers its payloads asynchronously. Receiving never blocks the UI
// loop; the reader re-arms itself after each message.
type Channel interface {
	Start(instruction string) error
	Messages() <-chan []byte
	Close() error
}

// FileChannel watches a spool file for results written by an external
// transcriber process. Each completed write of the file is delivered as one
// payload and the file is consumed.
type FileChannel struct {
	path string
	fsw  *fsnotify.Watcher
	msgs chan []byte

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// NewFileChannel starts watching the directory containing path. The
// directory is created if missing so the watch can be established before
// the transcriber ever runs.
func NewFileChannel(path string) (*FileChannel, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create spool directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch spool directory: %w", err)
	}

	c := &FileChannel{
		path: path,
		fsw:  fsw,
		msgs: make(chan []byte, 4),
		done: make(chan struct{}),
	}
	go c.run()
	return c, nil
}

// Start writes the extraction instruction to the companion prompt file
// next to the spool file. The transcriber reads it there before recording.
func (c *FileChannel) Start(instruction string) error {
	if err := os.WriteFile(c.PromptPath(), []byte(instruction), 0600); err != nil {
		return fmt.Errorf("failed to write transcriber instruction: %w", err)
	}
	return nil
}

// PromptPath returns the path the outbound instruction is written to.
func (c *FileChannel) PromptPath() string {
	return c.path + ".prompt"
}

// Messages returns the inbound payload channel.
func (c *FileChannel) Messages() <-chan []byte {
	return c.msgs
}

// Close stops the watcher. Pending messages stay readable.
func (c *FileChannel) Close() error {
	close(c.done)
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.mu.Unlock()
	return c.fsw.Close()
}

func (c *FileChannel) run() {
	for {
		select {
		case <-c.done:
			return
		case event, ok := <-c.fsw.Events:
			if !ok {
				return
			}
			if event.Name != c.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			c.debounceRead()
		case _, ok := <-c.fsw.Errors:
			if !ok {
				return
			}
			// Watcher errors are not actionable here; the session simply
			// keeps listening.
		}
	}
}

func (c *FileChannel) debounceRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(settleDelay, c.consume)
}

// consume reads and removes the spool file, then delivers its contents.
func (c *FileChannel) consume() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	os.Remove(c.path)

	select {
	case c.msgs <- data:
	case <-c.done:
	}
}

// SimulatedChannel delivers a canned result a fixed delay after each
// Start. It stands in for the external transcriber so the capture flow
// works standalone; the instruction has no reader and is discarded.
type SimulatedChannel struct {
	delay time.Duration
	now   func() time.Time
	msgs  chan []byte

	mu    sync.Mutex
	timer *time.Timer
}

// NewSimulatedChannel creates a simulated channel with the given delay.
func NewSimulatedChannel(delay time.Duration) *SimulatedChannel {
	return &SimulatedChannel{
		delay: delay,
		now:   time.Now,
		msgs:  make(chan []byte, 1),
	}
}

// Messages returns the inbound payload channel.
func (c *SimulatedChannel) Messages() <-chan []byte {
	return c.msgs
}

// Close cancels any pending delivery.
func (c *SimulatedChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	return nil
}

// Start schedules a simulated result. Called when listening starts.
func (c *SimulatedChannel) Start(string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, func() {
		tomorrow := c.now().AddDate(0, 0, 1).Format(task.DateFormat)
		payload, err := json.Marshal(Result{
			Task:    "Follow up on the quarterly report",
			Project: "Inbox",
			DueDate: tomorrow,
		})
		if err != nil {
			return
		}
		select {
		case c.msgs <- payload:
		default:
		}
	})
	return nil
}

// Package debounce collapses rapid value changes into a single settled value
// using Bubble Tea timer messages. Every Push restarts the quiet period; only
// the tick carrying the latest tag settles.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// SettledMsg is emitted when a debounce period elapses
type SettledMsg struct {
	ID    int
	Tag   int
	Value string
}

// Debouncer tracks the latest pushed value. It is not safe for concurrent
// use; it lives inside a Bubble Tea model and is touched only from Update.
type Debouncer struct {
	id      int
	delay   time.Duration
	tag     int
	pending string
	waiting bool
	value   string
}

// New creates a debouncer with the given quiet period
func New(delay time.Duration) *Debouncer {
	return &Debouncer{
		id:    nextID(),
		delay: delay,
	}
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Push records value as the latest write and returns the timer command
func (d *Debouncer) Push(value string) tea.Cmd {
	d.tag++
	d.pending = value
	d.waiting = true

	id, tag := d.id, d.tag
	if d.delay <= 0 {
		return func() tea.Msg {
			return SettledMsg{ID: id, Tag: tag, Value: value}
		}
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return SettledMsg{ID: id, Tag: tag, Value: value}
	})
}

// Settle accepts msg only if it is the latest tick of this debouncer
func (d *Debouncer) Settle(msg SettledMsg) (string, bool) {
	if msg.ID != d.id || msg.Tag != d.tag || !d.waiting {
		return "", false
	}
	d.waiting = false
	d.value = msg.Value
	return d.value, true
}

// Flush settles the pending value now. Ticks already scheduled become stale.
func (d *Debouncer) Flush() (string, bool) {
	if !d.waiting {
		return d.value, false
	}
	d.tag++
	d.waiting = false
	d.value = d.pending
	return d.value, true
}

// Pending reports whether a value is waiting for its quiet period
func (d *Debouncer) Pending() bool {
	return d.waiting
}

// Value returns the last settled value
func (d *Debouncer) Value() string {
	return d.value
}

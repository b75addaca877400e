// Package logbuf provides the in-memory log containers shared between
// the output relay, the browser session, and the tool handlers.
package logbuf

import (
	"sync"
)

// Queue is an unbounded FIFO of opaque log lines. Writers append
// concurrently; Drain hands over everything queued so far and removes
// it, so every line is delivered at most once. A drain that races a
// concurrent push may miss that line — it shows up in the next drain.
type Queue struct {
	mu    sync.Mutex
	lines []string
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a line to the queue.
func (q *Queue) Push(line string) {
	q.mu.Lock()
	q.lines = append(q.lines, line)
	q.mu.Unlock()
}

// Drain removes and returns all currently queued lines, oldest first.
// Returns nil when the queue is empty.
func (q *Queue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.lines) == 0 {
		return nil
	}

	lines := q.lines
	q.lines = nil
	return lines
}

// Len returns the number of queued lines.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.lines)
}

package logbuf

import (
	"fmt"
	"testing"

	"github.com/ajsharma/app_tail/internal/events"
)

func entry(n int) events.ConsoleEntry {
	return events.NewConsoleEntry(events.LevelLog, fmt.Sprintf("msg-%d", n), "http://localhost:5001/", nil)
}

func TestRingEvictsOldest(t *testing.T) {
	r := NewRing(100)

	const emitted = 150
	for i := 1; i <= emitted; i++ {
		r.Append(entry(i))
	}

	if r.Len() != 100 {
		t.Fatalf("expected 100 entries after %d appends, got %d", emitted, r.Len())
	}

	all := r.Tail(100)
	// The oldest surviving entry is the (N-99)th emitted.
	if all[0].Message != "msg-51" {
		t.Errorf("oldest surviving entry should be msg-51, got %s", all[0].Message)
	}
	if all[99].Message != "msg-150" {
		t.Errorf("newest entry should be msg-150, got %s", all[99].Message)
	}
}

func TestRingTail(t *testing.T) {
	r := NewRing(100)
	for i := 1; i <= 30; i++ {
		r.Append(entry(i))
	}

	t.Run("window smaller than contents", func(t *testing.T) {
		tail := r.Tail(20)
		if len(tail) != 20 {
			t.Fatalf("expected 20 entries, got %d", len(tail))
		}
		if tail[0].Message != "msg-11" || tail[19].Message != "msg-30" {
			t.Errorf("unexpected window [%s .. %s]", tail[0].Message, tail[19].Message)
		}
	})

	t.Run("window larger than contents", func(t *testing.T) {
		if got := len(r.Tail(100)); got != 30 {
			t.Errorf("expected all 30 entries, got %d", got)
		}
	})

	t.Run("reads are non-destructive", func(t *testing.T) {
		r.Tail(20)
		if r.Len() != 30 {
			t.Errorf("Tail must not consume entries, len=%d", r.Len())
		}
	})
}

func TestRingTailEmpty(t *testing.T) {
	r := NewRing(100)
	if tail := r.Tail(20); tail != nil {
		t.Errorf("expected nil tail from empty ring, got %v", tail)
	}
}

func TestRingClear(t *testing.T) {
	r := NewRing(100)
	for i := 1; i <= 10; i++ {
		r.Append(entry(i))
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("expected empty ring after clear, len=%d", r.Len())
	}
}

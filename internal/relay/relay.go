// Package relay forwards a supervised process's output streams into
// the shared log queue.
package relay

import (
	"bufio"
	"bytes"
	"io"
	"sync"

	"github.com/ajsharma/app_tail/internal/logbuf"
)

// maxLineSize bounds a single scanned token. A run longer than this
// with no newline is flushed in chunks so the stream keeps relaying
// instead of stopping with bufio.ErrTooLong.
const maxLineSize = 1024 * 1024

// Pump reads lines from r until EOF or error and pushes each one into
// q. It is intended to run as a goroutine per stream; per-stream line
// order is preserved, ordering across streams is not.
func Pump(r io.Reader, q *logbuf.Queue) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)

	for scanner.Scan() {
		q.Push(scanner.Text())
	}

	// A read error on a closing pipe is expected at process exit and
	// carries no information the caller can act on.
	_ = scanner.Err()
}

// PumpAll relays both streams of a process concurrently and returns a
// function that blocks until both streams have closed.
func PumpAll(stdout, stderr io.Reader, q *logbuf.Queue) (wait func()) {
	var wg sync.WaitGroup

	for _, stream := range []io.Reader{stdout, stderr} {
		if stream == nil {
			continue
		}
		wg.Add(1)
		go func(r io.Reader) {
			defer wg.Done()
			Pump(r, q)
		}(stream)
	}

	return wg.Wait
}

// scanLines behaves like bufio.ScanLines except that a full buffer
// with no newline is emitted as a chunk instead of erroring out.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, dropCR(data[:i]), nil
	}
	if len(data) >= maxLineSize {
		return len(data), data, nil
	}
	if atEOF && len(data) > 0 {
		return len(data), dropCR(data), nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[:len(data)-1]
	}
	return data
}

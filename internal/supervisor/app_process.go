package supervisor

import (
	"fmt"
	"os/exec"
	"syscall"
)

// AppProcess represents the supervised web application child process.
// The done channel is closed once the process has been reaped, at
// which point the exit outcome is known.
type AppProcess struct {
	Cmd  *exec.Cmd
	done chan struct{}
}

// newAppProcess wraps an already-started command and begins reaping
// it in the background. drained, when non-nil, blocks until the
// process's output pipes have been read to EOF; Wait closes those
// pipes, so reaping before the readers finish would drop trailing
// output.
func newAppProcess(cmd *exec.Cmd, drained func()) *AppProcess {
	ap := &AppProcess{
		Cmd:  cmd,
		done: make(chan struct{}),
	}

	go func() {
		if drained != nil {
			drained()
		}
		_ = cmd.Wait()
		close(ap.done)
	}()

	return ap
}

// Running reports whether the process has not yet exited. A process
// that exited on its own counts as not running even if it was never
// explicitly stopped.
func (ap *AppProcess) Running() bool {
	select {
	case <-ap.done:
		return false
	default:
		return true
	}
}

// Terminate sends SIGTERM and blocks until the process has exited.
// Falls back to SIGKILL if the termination signal cannot be delivered.
func (ap *AppProcess) Terminate() error {
	if ap.Cmd == nil || ap.Cmd.Process == nil {
		return nil
	}

	if !ap.Running() {
		return nil
	}

	if err := ap.Cmd.Process.Signal(syscall.SIGTERM); err != nil {
		if killErr := ap.Cmd.Process.Kill(); killErr != nil {
			return fmt.Errorf("failed to terminate app: %w", killErr)
		}
	}

	<-ap.done
	return nil
}

// PID returns the process ID of the supervised application.
func (ap *AppProcess) PID() int {
	if ap.Cmd != nil && ap.Cmd.Process != nil {
		return ap.Cmd.Process.Pid
	}
	return 0
}

package supervisor

import (
	"os/exec"
	"testing"
	"time"
)

func TestAppProcessLifecycle(t *testing.T) {
	cmd := exec.Command("sleep", "60")
	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start test process: %v", err)
	}

	ap := newAppProcess(cmd, nil)
	if !ap.Running() {
		t.Fatal("freshly started process should be running")
	}
	if ap.PID() == 0 {
		t.Error("expected a non-zero PID")
	}

	if err := ap.Terminate(); err != nil {
		t.Fatalf("terminate failed: %v", err)
	}
	if ap.Running() {
		t.Error("process still running after terminate")
	}

	// Terminating an already-dead process is a no-op.
	if err := ap.Terminate(); err != nil {
		t.Errorf("second terminate failed: %v", err)
	}
}

func TestAppProcessSelfExit(t *testing.T) {
	cmd := exec.Command("true")
	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start test process: %v", err)
	}

	ap := newAppProcess(cmd, nil)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && ap.Running() {
		time.Sleep(10 * time.Millisecond)
	}
	if ap.Running() {
		t.Fatal("process should have exited on its own")
	}
}

func TestAppProcessNilCmd(t *testing.T) {
	ap := &AppProcess{done: make(chan struct{})}
	if ap.PID() != 0 {
		t.Error("expected PID 0 without a command")
	}
	if err := ap.Terminate(); err != nil {
		t.Errorf("terminate without a command failed: %v", err)
	}
}

// Package supervisor owns the supervised application's process handle
// and drives the output relay and browser session in lock-step with
// the process lifecycle.
package supervisor

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ajsharma/app_tail/internal/browser"
	"github.com/ajsharma/app_tail/internal/config"
	"github.com/ajsharma/app_tail/internal/logbuf"
	"github.com/ajsharma/app_tail/internal/relay"
)

// Session is the browser surface the supervisor drives. The concrete
// implementation is browser.Session.
type Session interface {
	Setup() error
	Teardown()
	Active() bool
	Navigate(path string) (string, error)
	Click(selector string) error
}

// Supervisor starts and stops the web application child process and
// the browser session that observes it. All shared mutable state (the
// process handle, the browser session, the log containers) hangs off
// this one context object; handlers receive it explicitly.
type Supervisor struct {
	cfg     *config.Config
	queue   *logbuf.Queue
	ring    *logbuf.Ring
	session Session

	mu    sync.Mutex
	proc  *AppProcess
	runID string
}

// New creates a Supervisor with empty log containers and an inactive
// headless-Chrome browser session.
func New(cfg *config.Config) *Supervisor {
	ring := logbuf.NewRing(cfg.ConsoleCapacity)
	s := &Supervisor{
		cfg:   cfg,
		queue: logbuf.NewQueue(),
		ring:  ring,
	}
	s.session = browser.NewSession(cfg, ring)
	return s
}

// NewWithSession creates a Supervisor around a caller-provided browser
// session instead of a real headless Chrome one.
func NewWithSession(cfg *config.Config, session Session) *Supervisor {
	return &Supervisor{
		cfg:     cfg,
		queue:   logbuf.NewQueue(),
		ring:    logbuf.NewRing(cfg.ConsoleCapacity),
		session: session,
	}
}

// Queue returns the server log queue.
func (s *Supervisor) Queue() *logbuf.Queue { return s.queue }

// Ring returns the console log ring.
func (s *Supervisor) Ring() *logbuf.Ring { return s.ring }

// Session returns the browser session.
func (s *Supervisor) Session() Session { return s.session }

// Config returns the active configuration.
func (s *Supervisor) Config() *config.Config { return s.cfg }

// Running reports whether the supervised process is alive.
func (s *Supervisor) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.proc != nil && s.proc.Running()
}

// Start launches the web application and the browser session. Calling
// Start while the app is running is a no-op that reports so; no second
// process is spawned. Returns a human-readable status message.
func (s *Supervisor) Start() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.proc != nil && s.proc.Running() {
		return "App is already running."
	}

	name, args, err := s.commandLine()
	if err != nil {
		return fmt.Sprintf("Failed to start app: %v", err)
	}

	cmd := exec.Command(name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Sprintf("Failed to start app: %v", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Sprintf("Failed to start app: %v", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Sprintf("Failed to start app: %v", err)
	}

	// Relay both output streams for the lifetime of the process. The
	// reaper holds off cmd.Wait until both streams hit EOF so that a
	// fast-exiting child's trailing output still reaches the queue.
	drained := relay.PumpAll(stdout, stderr, s.queue)

	s.proc = newAppProcess(cmd, drained)
	s.runID = uuid.New().String()
	log.Printf("Started app (PID: %d, run: %s)", s.proc.PID(), s.runID)

	// Give the server time to bind its port.
	time.Sleep(s.cfg.StartupGrace)

	if err := s.session.Setup(); err != nil {
		log.Printf("Browser console capture unavailable: %v", err)
		return fmt.Sprintf("App started successfully. Server is running on %s (browser console capture failed to initialize).", s.cfg.BaseURL())
	}

	return fmt.Sprintf("App started successfully. Server is running on %s with browser console capture enabled.", s.cfg.BaseURL())
}

// Stop terminates the supervised process if it is running and tears
// down any browser session unconditionally. The success check runs
// after the handle is cleared, so Stop reports success whenever a
// running process was just stopped; the "not running" report is only
// reachable when the process had already exited on its own.
func (s *Supervisor) Stop() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.proc != nil && s.proc.Running() {
		if err := s.proc.Terminate(); err != nil {
			log.Printf("Error terminating app: %v", err)
		}
		s.proc = nil
	}

	s.session.Teardown()

	if s.proc == nil {
		return "App stopped successfully."
	}
	return "App is not running."
}

// Status reports whether the app is running, its PID and run ID, and
// whether browser console capture is active.
func (s *Supervisor) Status() string {
	s.mu.Lock()
	proc := s.proc
	runID := s.runID
	s.mu.Unlock()

	if proc != nil && proc.Running() {
		browserStatus := "Browser not initialized"
		if s.session.Active() {
			browserStatus = "Browser console capture enabled"
		}
		return fmt.Sprintf("App is running (PID: %d, run: %s). %s", proc.PID(), runID, browserStatus)
	}
	return "App is not running"
}

// PID returns the supervised process id, or 0 when not running.
func (s *Supervisor) PID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.proc != nil && s.proc.Running() {
		return s.proc.PID()
	}
	return 0
}

// RunID returns the identifier assigned to the most recent start.
func (s *Supervisor) RunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

// commandLine resolves the command used to launch the web application.
// With no configured override, the current binary is re-executed with
// the "app" subcommand.
func (s *Supervisor) commandLine() (string, []string, error) {
	if len(s.cfg.AppCommand) > 0 {
		return s.cfg.AppCommand[0], s.cfg.AppCommand[1:], nil
	}

	self, err := os.Executable()
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve executable: %w", err)
	}
	return self, []string{"app", "--port", s.cfg.AppPort}, nil
}

package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/ajsharma/app_tail/internal/config"
	"github.com/ajsharma/app_tail/internal/events"
	"github.com/ajsharma/app_tail/internal/logbuf"
)

// Session owns a single headless Chrome instance and one page. Console
// messages and uncaught page errors are captured into the console ring
// for the lifetime of the session. At most one session is live at a
// time; Setup discards any previous one.
type Session struct {
	cfg  *config.Config
	ring *logbuf.Ring

	mu            sync.RWMutex
	chrome        *ChromeProcess
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	currentURL    string
	active        bool
}

// NewSession creates an inactive session. Setup launches the browser.
func NewSession(cfg *config.Config, ring *logbuf.Ring) *Session {
	return &Session{cfg: cfg, ring: ring}
}

// Setup launches headless Chrome, connects over CDP, clears the
// console ring, and registers the console and page-error listeners.
// Any previous session is torn down first.
func (s *Session) Setup() error {
	s.Teardown()

	s.ring.Clear()

	chrome, err := LaunchChrome(s.cfg.ChromePort)
	if err != nil {
		return fmt.Errorf("failed to launch chrome: %w", err)
	}

	if err := WaitForChrome(s.cfg.ChromePort, s.cfg.BrowserTimeout); err != nil {
		_ = chrome.Stop() // Best effort cleanup
		return fmt.Errorf("chrome not ready: %w", err)
	}

	info, err := DiscoverBrowserInfo(s.cfg.ChromePort)
	if err != nil {
		_ = chrome.Stop()
		return fmt.Errorf("failed to get browser info: %w", err)
	}

	allocatorCtx, allocatorCancel := chromedp.NewRemoteAllocator(context.Background(), info.WebSocketDebuggerURL)
	browserCtx, browserCancel := chromedp.NewContext(allocatorCtx)

	if err := chromedp.Run(browserCtx,
		page.Enable(),
		runtime.Enable(),
	); err != nil {
		browserCancel()
		allocatorCancel()
		_ = chrome.Stop()
		return fmt.Errorf("failed to enable CDP domains: %w", err)
	}

	chromedp.ListenTarget(browserCtx, s.handleEvent)

	s.mu.Lock()
	s.chrome = chrome
	s.allocCancel = allocatorCancel
	s.browserCtx = browserCtx
	s.browserCancel = browserCancel
	s.currentURL = "about:blank"
	s.active = true
	s.mu.Unlock()

	return nil
}

// Teardown closes the page and browser and kills the Chrome process.
// Safe to call when no session exists.
func (s *Session) Teardown() {
	s.mu.Lock()
	chrome := s.chrome
	browserCancel := s.browserCancel
	allocCancel := s.allocCancel
	s.chrome = nil
	s.browserCtx = nil
	s.browserCancel = nil
	s.allocCancel = nil
	s.active = false
	s.mu.Unlock()

	if browserCancel != nil {
		browserCancel()
	}
	if allocCancel != nil {
		allocCancel()
	}
	if chrome != nil {
		_ = chrome.Stop()
	}
}

// Active reports whether a live session exists.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// CurrentURL returns the page URL as of the last main-frame navigation.
func (s *Session) CurrentURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentURL
}

// Navigate resolves path against the application's base URL, loads it,
// waits for the page to become ready, and then a fixed settle delay so
// asynchronous page work can flush. Returns the resolved URL.
func (s *Session) Navigate(path string) (string, error) {
	ctx, err := s.runContext()
	if err != nil {
		return "", err
	}

	url := s.cfg.BaseURL() + path

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.BrowserTimeout)
	defer cancel()

	if err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	); err != nil {
		return url, err
	}

	time.Sleep(s.cfg.NavigateSettle)
	return url, nil
}

// Click dispatches a click on the first element matching the CSS
// selector, then waits a short settle delay.
func (s *Session) Click(selector string) error {
	ctx, err := s.runContext()
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.BrowserTimeout)
	defer cancel()

	if err := chromedp.Run(runCtx,
		chromedp.WaitVisible(selector),
		chromedp.Click(selector),
	); err != nil {
		return err
	}

	time.Sleep(s.cfg.ClickSettle)
	return nil
}

// runContext returns the live browser context, or an error when the
// session is not active.
func (s *Session) runContext() (context.Context, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active || s.browserCtx == nil {
		return nil, fmt.Errorf("browser session is not active")
	}
	return s.browserCtx, nil
}

// handleEvent processes CDP events from the page target.
func (s *Session) handleEvent(ev interface{}) {
	switch ev := ev.(type) {
	case *page.EventFrameNavigated:
		if ev.Frame.ParentID == "" { // Main frame only
			s.mu.Lock()
			s.currentURL = ev.Frame.URL
			s.mu.Unlock()
		}

	case *runtime.EventConsoleAPICalled:
		args := make([]string, 0, len(ev.Args))
		for _, arg := range ev.Args {
			args = append(args, stringifyRemoteObject(arg))
		}

		s.ring.Append(events.NewConsoleEntry(
			consoleLevel(ev.Type),
			strings.Join(args, " "),
			s.CurrentURL(),
			args,
		))

	case *runtime.EventExceptionThrown:
		s.ring.Append(events.NewPageErrorEntry(
			exceptionText(ev.ExceptionDetails),
			s.CurrentURL(),
		))
	}
}

// consoleLevel maps a CDP console API type to a severity level.
func consoleLevel(apiType runtime.APIType) string {
	switch apiType {
	case runtime.APITypeWarning:
		return events.LevelWarning
	case runtime.APITypeError:
		return events.LevelError
	case runtime.APITypeInfo:
		return events.LevelInfo
	case runtime.APITypeDebug:
		return events.LevelDebug
	default:
		return events.LevelLog
	}
}

// exceptionText extracts a readable message from exception details.
func exceptionText(details *runtime.ExceptionDetails) string {
	if details == nil {
		return "unknown error"
	}
	if details.Exception != nil && details.Exception.Description != "" {
		return details.Exception.Description
	}
	return details.Text
}

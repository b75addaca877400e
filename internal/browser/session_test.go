package browser

import (
	"strings"
	"testing"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"

	"github.com/ajsharma/app_tail/internal/config"
	"github.com/ajsharma/app_tail/internal/events"
	"github.com/ajsharma/app_tail/internal/logbuf"
)

func newInactiveSession() (*Session, *logbuf.Ring) {
	cfg := config.DefaultConfig()
	ring := logbuf.NewRing(cfg.ConsoleCapacity)
	return NewSession(cfg, ring), ring
}

func TestSessionInactiveByDefault(t *testing.T) {
	s, _ := newInactiveSession()

	if s.Active() {
		t.Error("new session must not be active")
	}

	if _, err := s.Navigate("/"); err == nil {
		t.Error("navigate on inactive session must fail")
	}
	if err := s.Click("#button"); err == nil {
		t.Error("click on inactive session must fail")
	}
}

func TestTeardownIsSafeWithoutSession(t *testing.T) {
	s, _ := newInactiveSession()

	// Must be a no-op, repeatedly.
	s.Teardown()
	s.Teardown()

	if s.Active() {
		t.Error("session active after teardown")
	}
}

func TestHandleEventConsoleMessage(t *testing.T) {
	s, ring := newInactiveSession()

	s.handleEvent(&runtime.EventConsoleAPICalled{
		Type: runtime.APITypeWarning,
		Args: []*runtime.RemoteObject{
			{Type: runtime.TypeObject, Description: "something odd"},
		},
	})

	if ring.Len() != 1 {
		t.Fatalf("expected 1 captured entry, got %d", ring.Len())
	}

	entry := ring.Tail(1)[0]
	if entry.Level != events.LevelWarning {
		t.Errorf("expected warning level, got %q", entry.Level)
	}
	if entry.Message != "something odd" {
		t.Errorf("unexpected message %q", entry.Message)
	}
	if len(entry.Args) != 1 {
		t.Errorf("expected 1 arg, got %v", entry.Args)
	}
}

func TestHandleEventPageError(t *testing.T) {
	s, ring := newInactiveSession()

	s.handleEvent(&runtime.EventExceptionThrown{
		ExceptionDetails: &runtime.ExceptionDetails{
			Text:      "Uncaught",
			Exception: &runtime.RemoteObject{Description: "Error: boom at app.js:3"},
		},
	})

	if ring.Len() != 1 {
		t.Fatalf("expected 1 captured entry, got %d", ring.Len())
	}

	entry := ring.Tail(1)[0]
	if entry.Level != events.LevelError {
		t.Errorf("page errors must be level error, got %q", entry.Level)
	}
	if !strings.HasPrefix(entry.Message, "Page Error: ") {
		t.Errorf("page error message must carry the prefix, got %q", entry.Message)
	}
	if !strings.Contains(entry.Message, "boom") {
		t.Errorf("expected exception description in %q", entry.Message)
	}
}

func TestHandleEventTracksMainFrameURL(t *testing.T) {
	s, _ := newInactiveSession()

	s.handleEvent(&page.EventFrameNavigated{
		Frame: &cdp.Frame{ID: "main", URL: "http://localhost:5001/about"},
	})
	if got := s.CurrentURL(); got != "http://localhost:5001/about" {
		t.Errorf("expected main-frame URL to be tracked, got %q", got)
	}

	// Child frame navigations must not change the page URL.
	s.handleEvent(&page.EventFrameNavigated{
		Frame: &cdp.Frame{ID: "child", ParentID: "main", URL: "http://localhost:5001/iframe"},
	})
	if got := s.CurrentURL(); got != "http://localhost:5001/about" {
		t.Errorf("child frame navigation changed the URL to %q", got)
	}
}

func TestConsoleLevel(t *testing.T) {
	tests := []struct {
		apiType runtime.APIType
		want    string
	}{
		{runtime.APITypeLog, events.LevelLog},
		{runtime.APITypeInfo, events.LevelInfo},
		{runtime.APITypeWarning, events.LevelWarning},
		{runtime.APITypeError, events.LevelError},
		{runtime.APITypeDebug, events.LevelDebug},
		{runtime.APITypeTable, events.LevelLog}, // anything else maps to log
	}

	for _, tt := range tests {
		if got := consoleLevel(tt.apiType); got != tt.want {
			t.Errorf("consoleLevel(%s) = %q, want %q", tt.apiType, got, tt.want)
		}
	}
}

func TestExceptionText(t *testing.T) {
	t.Run("nil details", func(t *testing.T) {
		if got := exceptionText(nil); got != "unknown error" {
			t.Errorf("unexpected text %q", got)
		}
	})

	t.Run("prefers exception description", func(t *testing.T) {
		details := &runtime.ExceptionDetails{
			Text:      "Uncaught",
			Exception: &runtime.RemoteObject{Description: "Error: boom"},
		}
		if got := exceptionText(details); got != "Error: boom" {
			t.Errorf("unexpected text %q", got)
		}
	})

	t.Run("falls back to text", func(t *testing.T) {
		details := &runtime.ExceptionDetails{Text: "Uncaught SyntaxError"}
		if got := exceptionText(details); got != "Uncaught SyntaxError" {
			t.Errorf("unexpected text %q", got)
		}
	})
}

func TestStringifyRemoteObject(t *testing.T) {
	tests := []struct {
		name string
		obj  *runtime.RemoteObject
		want string
	}{
		{"nil object", nil, "null"},
		{"unserializable", &runtime.RemoteObject{UnserializableValue: "NaN"}, "NaN"},
		{"undefined", &runtime.RemoteObject{Type: runtime.TypeUndefined}, "undefined"},
		{"null subtype", &runtime.RemoteObject{Type: runtime.TypeObject, Subtype: runtime.SubtypeNull}, "null"},
		{"description fallback", &runtime.RemoteObject{Type: runtime.TypeFunction, Description: "function foo()"}, "function foo()"},
		{"type as last resort", &runtime.RemoteObject{Type: runtime.TypeSymbol}, "symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringifyRemoteObject(tt.obj); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

package mcp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// tool is one operation exposed through tools/list and tools/call.
type tool struct {
	name        string
	description string
	inputSchema json.RawMessage
	annotations *toolAnnotations
	handler     func(arguments json.RawMessage) (text string, isError bool)
}

// emptySchema is the input schema for tools that take no arguments.
var emptySchema = json.RawMessage(`{"type":"object","properties":{}}`)

func boolPtr(b bool) *bool { return &b }

// buildTools assembles the tool table. Every handler returns a single
// human-readable string; precondition reports (app not running,
// browser not initialized) are ordinary text, while failed operations
// set isError.
func (s *Server) buildTools() []tool {
	readOnly := &toolAnnotations{ReadOnlyHint: boolPtr(true), IdempotentHint: boolPtr(true)}
	idempotent := &toolAnnotations{IdempotentHint: boolPtr(true)}

	return []tool{
		{
			name:        "start_app",
			description: "Starts the demo web application subprocess and browser console capture.",
			inputSchema: emptySchema,
			annotations: idempotent,
			handler:     s.startApp,
		},
		{
			name:        "stop_app",
			description: "Stops the demo web application and releases the browser.",
			inputSchema: emptySchema,
			annotations: idempotent,
			handler:     s.stopApp,
		},
		{
			name:        "get_console_logs",
			description: "Gets the browser console logs captured from the application's pages.",
			inputSchema: emptySchema,
			annotations: readOnly,
			handler:     s.getConsoleLogs,
		},
		{
			name:        "navigate_to",
			description: "Navigate the browser to a specific path in the application.",
			inputSchema: json.RawMessage(`{"type":"object","properties":{"path":{"type":"string","description":"Path resolved against the app base URL","default":"/"}}}`),
			handler:     s.navigateTo,
		},
		{
			name:        "get_server_logs",
			description: "Gets new stdout/stderr lines from the application server process.",
			inputSchema: emptySchema,
			annotations: idempotent,
			handler:     s.getServerLogs,
		},
		{
			name:        "get_app_status",
			description: "Gets the current status of the application and browser capture.",
			inputSchema: emptySchema,
			annotations: readOnly,
			handler:     s.getAppStatus,
		},
		{
			name:        "click_element",
			description: "Click an element on the current page using a CSS selector.",
			inputSchema: json.RawMessage(`{"type":"object","properties":{"selector":{"type":"string","description":"CSS selector of the element to click"}},"required":["selector"]}`),
			handler:     s.clickElement,
		},
	}
}

func (s *Server) startApp(json.RawMessage) (string, bool) {
	msg := s.sup.Start()
	return msg, strings.HasPrefix(msg, "Failed")
}

func (s *Server) stopApp(json.RawMessage) (string, bool) {
	return s.sup.Stop(), false
}

func (s *Server) getAppStatus(json.RawMessage) (string, bool) {
	return s.sup.Status(), false
}

func (s *Server) getConsoleLogs(json.RawMessage) (string, bool) {
	if !s.sup.Running() {
		return "App is not running. Start the app first to capture console logs.", false
	}

	entries := s.sup.Ring().Tail(s.sup.Config().ConsoleWindow)
	if len(entries) == 0 {
		return "No browser console logs captured yet. Use navigate_to() to visit pages and generate logs.", false
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.Format())
	}
	return strings.Join(lines, "\n"), false
}

func (s *Server) getServerLogs(json.RawMessage) (string, bool) {
	// Best-effort drain: lines pushed by the relay while this call
	// runs may land in a later call instead.
	lines := s.sup.Queue().Drain()

	if len(lines) == 0 {
		if s.sup.Running() {
			return "No new server logs. Server is running.", false
		}
		return "No server logs. Server is not running.", false
	}

	window := s.sup.Config().ServerLogWindow
	if len(lines) > window {
		lines = lines[len(lines)-window:]
	}
	return strings.Join(lines, "\n"), false
}

// navigateArgs are the arguments for navigate_to.
type navigateArgs struct {
	Path string `json:"path"`
}

func (s *Server) navigateTo(arguments json.RawMessage) (string, bool) {
	args := navigateArgs{Path: "/"}
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return fmt.Sprintf("Invalid arguments: %v", err), true
		}
	}
	if args.Path == "" {
		args.Path = "/"
	}

	if !s.sup.Running() {
		return "App is not running. Start the app first.", false
	}
	if !s.sup.Session().Active() {
		return "Browser is not initialized. Restart the app.", false
	}

	url, err := s.sup.Session().Navigate(args.Path)
	if err != nil {
		return fmt.Sprintf("Failed to navigate: %v", err), true
	}
	return fmt.Sprintf("Navigated to %s", url), false
}

// clickArgs are the arguments for click_element.
type clickArgs struct {
	Selector string `json:"selector"`
}

func (s *Server) clickElement(arguments json.RawMessage) (string, bool) {
	var args clickArgs
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &args); err != nil {
			return fmt.Sprintf("Invalid arguments: %v", err), true
		}
	}
	if args.Selector == "" {
		return "A CSS selector is required.", true
	}

	if !s.sup.Running() {
		return "App is not running. Start the app first.", false
	}
	if !s.sup.Session().Active() {
		return "Browser is not initialized. Restart the app.", false
	}

	if err := s.sup.Session().Click(args.Selector); err != nil {
		return fmt.Sprintf("Failed to click element '%s': %v", args.Selector, err), true
	}
	return fmt.Sprintf("Clicked element: %s", args.Selector), false
}

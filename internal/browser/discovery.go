package browser

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BrowserInfo holds information about the connected Chrome instance.
type BrowserInfo struct {
	Browser              string `json:"Browser"`
	ProtocolVersion      string `json:"Protocol-Version"`
	UserAgent            string `json:"User-Agent"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

// DiscoverBrowserInfo queries the /json/version endpoint to get
// browser info, including the WebSocket URL for the CDP connection.
func DiscoverBrowserInfo(port string) (*BrowserInfo, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(fmt.Sprintf("http://localhost:%s/json/version", port))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Chrome on port %s: %w", port, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info BrowserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode browser info: %w", err)
	}

	return &info, nil
}

// WaitForChrome polls the /json/version endpoint until Chrome is
// ready to accept CDP connections, or the timeout elapses.
func WaitForChrome(port string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 1 * time.Second}

	for time.Now().Before(deadline) {
		resp, err := client.Get(fmt.Sprintf("http://localhost:%s/json/version", port))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("chrome not ready on port %s after %s", port, timeout)
}

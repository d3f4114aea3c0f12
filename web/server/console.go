package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gcottrell13/cs430-project3/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// ConsoleLog keeps the most recent render messages for /api/console
type ConsoleLog struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	capacity int
}

// NewConsoleLog creates a console log holding at most capacity messages
func NewConsoleLog(capacity int) *ConsoleLog {
	return &ConsoleLog{capacity: capacity}
}

// Append adds a message, dropping the oldest when full
func (c *ConsoleLog) Append(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.capacity; over > 0 {
		c.messages = append([]ConsoleMessage(nil), c.messages[over:]...)
	}
}

// Messages returns a copy of the stored messages, oldest first
func (c *ConsoleLog) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

// WebLogger implements core.Logger by writing to the server log and the console log
type WebLogger struct {
	renderID string
	console  *ConsoleLog
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, console *ConsoleLog) core.Logger {
	return &WebLogger{
		renderID: renderID,
		console:  console,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to the server log
	log.Printf("[%s] %s", wl.renderID, message)

	if wl.console != nil {
		wl.console.Append(ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		})
	}
}

// handleConsole returns recent render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": s.console.Messages()})
}

package webradio

import (
	"fmt"
	"io"
	"strings"
)

// formatErrorString formats an error as a string for the UI
func formatErrorString(err error) string {
	return errorStyle.Render(fmt.Sprintf("Error: %v", err))
}

// logInterceptor implements io.Writer to capture log output for display in UI
type logInterceptor struct {
	model    *Model
	original io.Writer // The original log output
}

func (li *logInterceptor) Write(p []byte) (n int, err error) {
	message := string(p)

	// Add message to the model's log messages (if enabled in model)
	if li.model != nil && li.model.maxLogMessages > 0 {
		// Trim whitespace for cleaner display
		trimmedMessage := strings.TrimSpace(message)
		if trimmedMessage != "" { // Avoid adding empty lines
			li.model.logMessages = append(li.model.logMessages, trimmedMessage)
			// Trim to max length
			if len(li.model.logMessages) > li.model.maxLogMessages {
				li.model.logMessages = li.model.logMessages[len(li.model.logMessages)-li.model.maxLogMessages:]
			}
		}
	}

	// Write to the original log output (e.g., file)
	if li.original != nil {
		// Write original bytes to preserve formatting in log file
		return li.original.Write(p)
	}

	return len(p), nil
}

// volumeBar renders the current level as a small horizontal gauge.
func volumeBar(level, max int) string {
	if max <= 0 {
		return ""
	}
	if level < 0 {
		level = 0
	}
	if level > max {
		level = max
	}
	return fmt.Sprintf("[%s%s] %2d", strings.Repeat("■", level), strings.Repeat("·", max-level), level)
}

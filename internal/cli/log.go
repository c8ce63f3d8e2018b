package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger with timestamp formatting that writes to w.
// Verbose lowers the level from info to debug.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "scentcloud",
	})
}

package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const envLogFile = "TAILORVIEW_LOG"

// Setup returns a logger writing to the file named by TAILORVIEW_LOG, or a
// disabled logger when the variable is unset. The TUI owns the terminal, so
// nothing may log to stdout or stderr.
func Setup() zerolog.Logger {
	path := strings.TrimSpace(os.Getenv(envLogFile))
	if path == "" {
		return zerolog.Nop()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

package util

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog logger at the given level. Logs go to stderr;
// stdout is reserved for the credential output the operator copies out.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
}

// Package diagnostics provides the leveled, structured logging used while a
// grammar is constructed and resolved. It never runs on the Match/Parse hot
// path — only at Grammar/Language setup time.
package diagnostics

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New returns a logger named "peg", at Warn level by default. Callers that
// want construction-time detail raise the level with SetVerbose.
func New() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "peg",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})
}

// SetVerbose raises logger to Debug level, emitting step-by-step grammar
// construction and resolution detail.
func SetVerbose(logger hclog.Logger) {
	logger.SetLevel(hclog.Debug)
}

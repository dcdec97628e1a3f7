package symcore

import (
	"github.com/hashicorp/go-hclog"
)

// defaultLogger is used by any Engine constructed without an explicit
// WithLogger option. It is a no-op sink, matching the teacher's convention
// that a package must be safe to use without the caller wiring up logging
// first.
func defaultLogger() hclog.Logger {
	return hclog.NewNullLogger()
}

// NewLogger constructs a structured logger for standalone callers:
// human-readable output at Info level, named "symcore" so its lines are
// easy to grep out of a larger program's log stream. The cmd/symcore CLI
// does not use it; it builds its own logger with a --verbose level.
func NewLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "symcore",
		Level: hclog.Info,
	})
}

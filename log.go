package seqs

import "github.com/rs/zerolog"

// The package logger only emits trace events, on coercions and lazy
// materializations. It defaults to a no-op logger: operations never log
// errors, conditions are returned to the caller.
var logger = zerolog.Nop()

// SetLogger installs the logger used for trace events.
func SetLogger(l zerolog.Logger) {
	logger = l
}

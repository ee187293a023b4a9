package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

// Logs go to stderr: in stdio transport mode, stdout carries the MCP protocol.
var logWriter io.Writer = os.Stderr

var verbose atomic.Bool

// SetLogWriter sets the log output destination
func SetLogWriter(w io.Writer) {
	if w != nil {
		logWriter = w
	}
}

// SetVerbose enables or disables verbose logging
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Log prints a message to the log output
func Log(a ...any) {
	_, _ = fmt.Fprintln(logWriter, a...)
}

// Logf prints a formatted message to the log output
func Logf(format string, a ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(logWriter, format, a...)
}

// Verbose prints a message only when verbose logging is enabled
func Verbose(a ...any) {
	if verbose.Load() {
		Log(a...)
	}
}

// Verbosef prints a formatted message only when verbose logging is enabled
func Verbosef(format string, a ...any) {
	if verbose.Load() {
		Logf(format, a...)
	}
}

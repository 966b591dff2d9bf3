package logger

import (
	"github.com/fatih/color"
)

// Info prints informational messages in green
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn prints warnings in yellow
var Warn = color.New(color.FgYellow).PrintfFunc()

var errorf = color.New(color.FgRed).FprintfFunc()

// Error prints error messages in red to stderr
func Error(format string, a ...any) {
	errorf(color.Error, format, a...)
}

// Debug prints diagnostic messages in cyan when verbose output is
// enabled, and is a no-op otherwise. Assigned by Init.
var Debug func(format string, a ...any)

func init() {
	Init(false)
}

// Init configures debug logging
func Init(verbose bool) {
	if verbose {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

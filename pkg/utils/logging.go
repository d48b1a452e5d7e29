package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger provides structured console logging for the application
type Logger struct {
	out    io.Writer
	errOut io.Writer
	dryRun bool
}

// NewLogger creates a new logger writing to stdout/stderr
func NewLogger(dryRun bool) *Logger {
	return &Logger{out: os.Stdout, errOut: os.Stderr, dryRun: dryRun}
}

// NewFileLogger creates a logger that writes everything to the given writer.
// Callers routing output to a log file should also disable color rendering
// via color.NoColor so the file stays free of escape sequences.
func NewFileLogger(w io.Writer, dryRun bool) *Logger {
	return &Logger{out: w, errOut: w, dryRun: dryRun}
}

// Success logs a success message in green
func (l *Logger) Success(msg string, args ...interface{}) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(l.out, green("✓ "+msg)+"\n", args...)
}

// Info logs an informational message in cyan
func (l *Logger) Info(msg string, args ...interface{}) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(l.out, cyan(msg)+"\n", args...)
}

// Warning logs a warning message in yellow
func (l *Logger) Warning(msg string, args ...interface{}) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(l.out, yellow("⚠ "+msg)+"\n", args...)
}

// Error logs an error message in red
func (l *Logger) Error(msg string, err error, args ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	if err != nil {
		fmt.Fprintf(l.errOut, red("✗ "+msg+": %v")+"\n", append(args, err)...)
	} else {
		fmt.Fprintf(l.errOut, red("✗ "+msg)+"\n", args...)
	}
}

// Debug logs a debug message in dim/gray
func (l *Logger) Debug(msg string, args ...interface{}) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(l.out, dim(msg)+"\n", args...)
}

// DryRun logs a dry-run action in yellow
func (l *Logger) DryRun(action string, msg string, args ...interface{}) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(l.out, yellow("[DRY-RUN] %s: "+msg)+"\n", append([]interface{}{action}, args...)...)
}

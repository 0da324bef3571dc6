package tilewall

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// LogLevel orders log records by severity.
type LogLevel uint8

const (
	LevelInfo LogLevel = iota
	LevelSuccess
	LevelWarn
	LevelError
)

var levelTags = [...]string{
	LevelInfo:    "INFO",
	LevelSuccess: "OK",
	LevelWarn:    "WARN",
	LevelError:   "ERROR",
}

var levelStyles = [...]color.Style{
	LevelInfo:    {color.FgCyan},
	LevelSuccess: {color.FgGreen, color.OpBold},
	LevelWarn:    {color.FgYellow, color.OpBold},
	LevelError:   {color.FgRed, color.OpBold},
}

// String returns the level's tag.
func (l LogLevel) String() string {
	if int(l) < len(levelTags) {
		return levelTags[l]
	}
	return "LOG"
}

// Logger writes scoped diagnostics as
//
//	[tilewall] LEVEL [Scope] message key=value ...
//
// Warnings and errors always print. Info and success records print only in
// debug mode. Level tags are colored when the output is a terminal.
type Logger struct {
	out   io.Writer
	scope string
	debug *bool
	color bool
}

// NewLogger creates a logger writing to w (stderr when nil).
func NewLogger(w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	debug := false
	return &Logger{out: w, debug: &debug, color: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// With returns a logger for a sub-scope sharing the same output and debug
// switch.
func (l *Logger) With(scope string) *Logger {
	c := *l
	c.scope = scope
	return &c
}

// SetDebug enables info and success records for this logger and every
// logger derived from it.
func (l *Logger) SetDebug(on bool) { *l.debug = on }

// Debug reports whether verbose records are enabled.
func (l *Logger) Debug() bool { return *l.debug }

// Info logs a verbose record.
func (l *Logger) Info(msg string, kv ...any) { l.log(LevelInfo, msg, kv) }

// Success logs a verbose record for a completed action.
func (l *Logger) Success(msg string, kv ...any) { l.log(LevelSuccess, msg, kv) }

// Warn logs a recoverable problem.
func (l *Logger) Warn(msg string, kv ...any) { l.log(LevelWarn, msg, kv) }

// Error logs a failure.
func (l *Logger) Error(msg string, kv ...any) { l.log(LevelError, msg, kv) }

func (l *Logger) log(level LogLevel, msg string, kv []any) {
	if l == nil {
		return
	}
	if level < LevelWarn && !*l.debug {
		return
	}
	var b strings.Builder
	b.WriteString("[tilewall] ")
	tag := level.String()
	if l.color {
		tag = levelStyles[level].Sprint(tag)
	}
	b.WriteString(tag)
	if l.scope != "" {
		b.WriteString(" [")
		b.WriteString(l.scope)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		b.WriteByte(' ')
		if i+1 < len(kv) {
			fmt.Fprintf(&b, "%v=%v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(&b, "%v", kv[i])
		}
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(l.out, b.String())
}

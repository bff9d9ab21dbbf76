// Package trace provides a process-wide trace hook with a no-op default
// implementation.
//
// Instrumented code calls Emit (or the formatting helpers layered on top of
// it) to signal trace-worthy events. By default the emissions are discarded.
// An application that wants to observe them installs a Sink with Attach at
// startup, which silently replaces the default, the same way a strong symbol
// definition replaces a weak one at link time. Collectors that record
// emissions live in the tracing package.
package trace

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

const (
	colorReset   = "\x1b[0m"
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorYellow  = "\x1b[33m"
	colorMagenta = "\x1b[35m"
)

var noColor atomic.Bool

// DisableColor stops the formatting helpers from emitting ANSI escape
// sequences. Useful when the sink writes to a file or a database.
func DisableColor() {
	noColor.Store(true)
}

// EnableColor re-enables ANSI escape sequences in formatted messages. Color
// is enabled by default.
func EnableColor() {
	noColor.Store(false)
}

// Tracef formats the message and emits it at LevelPrint, with no prefix, no
// coloring, and no line terminator. With no sink attached this is a no-op.
func Tracef(format string, args ...any) {
	if !Active() {
		return
	}

	var m Message
	fmt.Fprintf(&m, format, args...)
	Emit(uint32(LevelPrint), m.Bytes())
}

// Tracelnf is like Tracef, but terminates the message with "\r\n" and resets
// the terminal color first.
func Tracelnf(format string, args ...any) {
	emitf(LevelPrint, "", "", format, args)
}

// Debugf emits a "DEBUG: " message at LevelDebug.
func Debugf(format string, args ...any) {
	emitf(LevelDebug, "DEBUG: ", colorMagenta, format, args)
}

// Infof emits an "INFO: " message at LevelInfo.
func Infof(format string, args ...any) {
	emitf(LevelInfo, "INFO: ", colorGreen, format, args)
}

// Warningf emits a "WARNING: " message at LevelWarning.
func Warningf(format string, args ...any) {
	emitf(LevelWarning, "WARNING: ", colorYellow, format, args)
}

// Errorf emits an "ERROR: " message at LevelError.
func Errorf(format string, args ...any) {
	emitf(LevelError, "ERROR: ", colorRed, format, args)
}

// Panicf emits a "PANIC: " message at LevelPanic. It is safe to call from a
// panic handler: like every emission it cannot fail, with or without a sink
// attached.
func Panicf(format string, args ...any) {
	emitf(LevelPanic, "PANIC: ", colorRed, format, args)
}

func emitf(level Level, prefix, color, format string, args []any) {
	if !Active() {
		return
	}

	var m Message

	useColor := !noColor.Load()
	if useColor && color != "" {
		m.WriteString(color)
	}
	m.WriteString(prefix)
	fmt.Fprintf(&m, format, args...)
	if useColor {
		m.WriteString(colorReset)
	}
	m.WriteString("\r\n")

	Emit(uint32(level), m.Bytes())
}

// onceSites records the call sites that already fired a *Oncef helper.
var onceSites sync.Map

// siteFiredBefore marks the caller of a *Oncef helper as fired and reports
// whether it had fired before.
func siteFiredBefore() bool {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return false
	}

	_, fired := onceSites.LoadOrStore(pc, struct{}{})

	return fired
}

// TraceOncef is like Tracef, but emits at most once per call site.
func TraceOncef(format string, args ...any) {
	if siteFiredBefore() {
		return
	}

	Tracef(format, args...)
}

// TracelnOncef is like Tracelnf, but emits at most once per call site.
func TracelnOncef(format string, args ...any) {
	if siteFiredBefore() {
		return
	}

	Tracelnf(format, args...)
}

// DebugOncef is like Debugf, but emits at most once per call site.
func DebugOncef(format string, args ...any) {
	if siteFiredBefore() {
		return
	}

	Debugf(format, args...)
}

// InfoOncef is like Infof, but emits at most once per call site.
func InfoOncef(format string, args ...any) {
	if siteFiredBefore() {
		return
	}

	Infof(format, args...)
}

// WarningOncef is like Warningf, but emits at most once per call site.
func WarningOncef(format string, args ...any) {
	if siteFiredBefore() {
		return
	}

	Warningf(format, args...)
}

// ErrorOncef is like Errorf, but emits at most once per call site.
func ErrorOncef(format string, args ...any) {
	if siteFiredBefore() {
		return
	}

	Errorf(format, args...)
}

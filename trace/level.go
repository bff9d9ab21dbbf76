package trace

import "strconv"

// A Level tags an emission with its severity. The level is carried as the
// event id of the emission, so sinks that only understand raw event ids still
// see a stable numbering.
type Level uint32

// Enumeration of the levels used by the formatting API. Applications that
// call Emit directly may use any event id; ids above LevelPanic are never
// produced by this package.
const (
	LevelPrint Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelPanic
)

// String returns the level name used in message prefixes and recorded
// traces.
func (l Level) String() string {
	switch l {
	case LevelPrint:
		return "PRINT"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelPanic:
		return "PANIC"
	}

	return "LEVEL(" + strconv.FormatUint(uint64(l), 10) + ")"
}

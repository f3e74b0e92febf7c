// FILE: constant.go
package daylog

import (
	"time"
)

// Log level constants, ordered by severity
const (
	LevelTrace int64 = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// Mode controls which sinks a writer targets
type Mode int32

const (
	ModeDisabled Mode = iota
	ModeOnlyConsole
	ModeOnlyFile
	ModeFull
)

// Display is a bitset of message fields to render
type Display uint16

const (
	DisplayLogLevel Display = 1 << iota
	DisplayModuleName
	DisplayDateTime
	DisplayThreadID
	DisplayFunction
	DisplayFile
	DisplayLine
	DisplayMessage
)

// DisplayDefault selects the fixed composite layout
// [Level][Module][Timestamp][ThreadId]{File:Line} Message
const DisplayDefault = DisplayLogLevel | DisplayModuleName | DisplayDateTime |
	DisplayThreadID | DisplayFunction | DisplayFile | DisplayLine | DisplayMessage

// SuffixStyle names the filename suffix used when a file is renamed.
// Only SuffixDateTime is acted on; SuffixNumber is accepted for
// interface fidelity with older configurations.
type SuffixStyle int32

const (
	SuffixDateTime SuffixStyle = iota
	SuffixNumber
)

// Timers
const (
	// Minimum time between enqueue-driven worker wakeups
	defaultFlushInterval = 500 * time.Millisecond
	// Queue age beyond which ForcePush signals the worker
	defaultIdleThreshold = 5 * time.Second
	// Bound on the external archiver process
	defaultArchiveTimeout = 15 * time.Minute
)

// Filename and line layout
const (
	timestampLayout  = "2006-01-02 15:04:05" // milliseconds appended separately
	rotateDateLayout = "_2006_01_02"
	defaultExtension = ".log"
	defaultFolder    = "logs"
)

// FILE: utility.go
package daylog

import (
	"fmt"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "daylog: ") {
		format = "daylog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// levelToText converts a level constant to its display name
func levelToText(level int64) string {
	switch level {
	case LevelTrace:
		return "Trace"
	case LevelDebug:
		return "Debug"
	case LevelInfo:
		return "Info"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelFatal:
		return "Fatal"
	}
	return ""
}

// ParseLevel converts a level string to its numeric constant
func ParseLevel(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warning, error, fatal)", levelStr)
	}
}

// ParseMode converts a mode string to its Mode constant
func ParseMode(modeStr string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(modeStr)) {
	case "disabled":
		return ModeDisabled, nil
	case "console":
		return ModeOnlyConsole, nil
	case "file":
		return ModeOnlyFile, nil
	case "full":
		return ModeFull, nil
	default:
		return 0, fmtErrorf("invalid mode string: '%s' (use disabled, console, file, full)", modeStr)
	}
}

// parseSuffixStyle converts the config suffix_style string
func parseSuffixStyle(s string) SuffixStyle {
	if strings.ToLower(strings.TrimSpace(s)) == "number" {
		return SuffixNumber
	}
	return SuffixDateTime
}

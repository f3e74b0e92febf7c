// FILE: format.go
package daylog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Record carries the fields of one log call into the writer.
type Record struct {
	Time     time.Time
	ThreadID string
	Module   string
	Level    int64
	Function string
	File     string
	Line     int
	Message  any
}

// formatMessage renders a record into a single newline-terminated line.
// writerLevel is the writer's configured severity, which gates the
// file/line and file/function segments. Pure function of its inputs.
func formatMessage(display Display, writerLevel int64, rec Record) string {
	buf := make([]byte, 0, 128)

	fileSegment := formatFileSegment(display, writerLevel, rec)

	if display == DisplayDefault {
		// Fixed layout: [Level][Module][Timestamp][ThreadId]{File:Line} Message
		buf = append(buf, '[')
		buf = append(buf, levelToText(rec.Level)...)
		buf = append(buf, "]["...)
		buf = append(buf, rec.Module...)
		buf = append(buf, "]["...)
		buf = appendTimestamp(buf, rec.Time)
		buf = append(buf, "]["...)
		buf = append(buf, rec.ThreadID...)
		buf = append(buf, ']')
		buf = append(buf, fileSegment...)
		buf = append(buf, ' ')
		buf = appendMessageValue(buf, rec.Message)
	} else {
		if display&DisplayLogLevel != 0 {
			buf = append(buf, '[')
			buf = append(buf, levelToText(rec.Level)...)
			buf = append(buf, ']')
		}
		if display&DisplayModuleName != 0 {
			buf = append(buf, '[')
			buf = append(buf, rec.Module...)
			buf = append(buf, ']')
		}
		if display&DisplayDateTime != 0 {
			buf = append(buf, '[')
			buf = appendTimestamp(buf, rec.Time)
			buf = append(buf, ']')
		}
		if display&DisplayThreadID != 0 {
			buf = append(buf, '[')
			buf = append(buf, rec.ThreadID...)
			buf = append(buf, ']')
		}
		if fileSegment != "" {
			buf = append(buf, fileSegment...)
		}
		if display&DisplayMessage != 0 {
			if len(buf) > 0 && buf[len(buf)-1] != ' ' {
				buf = append(buf, ' ')
			}
			buf = appendMessageValue(buf, rec.Message)
		}
	}

	buf = append(buf, '\n')
	return string(buf)
}

// formatFileSegment builds the {file:line} or {file}{function} segment.
// Emitted only while the writer's level admits debug output.
func formatFileSegment(display Display, writerLevel int64, rec Record) string {
	if writerLevel > LevelDebug {
		return ""
	}
	if display&DisplayFile != 0 && display&DisplayLine != 0 &&
		rec.File != "" && rec.Line > 0 {
		return "{" + rec.File + ":" + strconv.Itoa(rec.Line) + "}"
	}
	if display&DisplayFile != 0 && display&DisplayFunction != 0 &&
		rec.File != "" && rec.Function != "" {
		return "{" + rec.File + "}{" + rec.Function + "}"
	}
	return ""
}

// appendTimestamp renders yyyy-MM-dd hh:mm:ss:zzz. The millisecond part
// follows a colon, which time.AppendFormat cannot express directly.
func appendTimestamp(buf []byte, t time.Time) []byte {
	buf = t.AppendFormat(buf, timestampLayout)
	ms := t.Nanosecond() / int(time.Millisecond)
	buf = append(buf, ':',
		byte('0'+ms/100), byte('0'+(ms/10)%10), byte('0'+ms%10))
	return buf
}

// appendMessageValue converts a message value to text.
// Fallback to go-spew/spew with data structure information for types that
// are not explicitly supported.
func appendMessageValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return appendTimestamp(buf, val)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		// For all other types (structs, maps, pointers, arrays, etc.), delegate to spew.
		var b bytes.Buffer

		// Use a custom dumper for log-friendly, compact output.
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true, // Cleaner for logs
			DisableCapacities:       true, // Less noise
			SortKeys:                true, // Consistent map output
		}

		dumper.Fdump(&b, val)

		// Trim trailing new line added by spew
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}

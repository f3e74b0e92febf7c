// FILE: output.go
package daylog

import (
	"fmt"
	"io"
	"os"
)

// write persists one batch of already-formatted lines. All file writes
// across every writer instance are serialized by the process-wide write
// lock; an open failure silently drops the batch for this flush.
func (w *Writer) write(batch []string) {
	mode := w.Mode()
	if mode == ModeDisabled {
		return
	}

	if mode == ModeOnlyConsole {
		out := w.console.Load().(sink).w
		for _, line := range batch {
			io.WriteString(out, line)
		}
		return
	}

	prev := w.rotateIfNeeded()

	writeMu.Lock()
	defer writeMu.Unlock()

	if w.fileLock != nil {
		if err := w.fileLock.Lock(); err != nil {
			w.internalLog("failed to acquire file lock '%s': %v\n", w.fileLock.Path(), err)
		} else {
			defer w.fileLock.Unlock()
		}
	}

	f, err := os.OpenFile(w.destination, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		// Batch is dropped, no retry. Producers never see this failure.
		w.internalLog("failed to open log file '%s': %v\n", w.destination, err)
		return
	}

	if prev != "" {
		fmt.Fprintf(f, "Previous log %s\n", prev)
	}

	out := w.console.Load().(sink).w
	for _, line := range batch {
		io.WriteString(f, line)
		if mode == ModeFull {
			io.WriteString(out, line)
		}
	}

	if err := f.Close(); err != nil {
		w.internalLog("failed to close log file '%s': %v\n", w.destination, err)
	}
}

// FILE: rotation.go
package daylog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// rotateIfNeeded checks the tracked calendar date once per flush, before
// the batch is written. When the day has changed it renames the
// destination to a name carrying the previously-tracked date and, unless
// the writer is shutting down, hands the renamed file to the archiver.
// The returned path is the renamed file, empty when no rotation happened.
func (w *Writer) rotateIfNeeded() string {
	w.rotMu.Lock()
	defer w.rotMu.Unlock()

	today := dateOf(time.Now())
	if w.currentDate.Equal(today) {
		return ""
	}

	newName := resolveDuplicateName(datedName(w.destination, w.currentDate))
	if err := os.Rename(w.destination, newName); err != nil {
		// Rotation is abandoned for this flush, the next flush retries.
		return ""
	}

	w.currentDate = today

	if w.quit.Load() {
		// No archival during shutdown
		return newName
	}

	if w.cfg.ArchiveEnabled {
		w.lastArchiveStatus.Store(w.archive(newName))
	}

	return newName
}

// datedName inserts the date suffix immediately before the extension:
// /var/log/app.log -> /var/log/app_2024_07_01.log
func datedName(path string, date time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + date.Format(rotateDateLayout) + ext
}

// resolveDuplicateName returns the lowest unused variant of path,
// appending "(n)" before the extension while a file already exists.
// Iterative by design; terminates for any finite number of collisions.
func resolveDuplicateName(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s(%d)%s", base, n, ext)
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

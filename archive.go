// FILE: archive.go
package daylog

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
)

// archive compresses a just-rotated file with the external archiver,
// requesting maximum compression. At most one archive operation runs
// process-wide at a time, bounded by the configured timeout. The source
// file is not deleted. The returned status string records source, archive
// path, whether the process finished within the bound, whether it
// crashed, and the elapsed time; failures are reported there and are
// never fatal.
func (w *Writer) archive(source string) string {
	archiveMu.Lock()
	defer archiveMu.Unlock()

	start := time.Now()

	archivePath := resolveDuplicateName(strings.TrimSuffix(source, filepath.Ext(source)) + ".7z")

	ctx, cancel := context.WithTimeout(context.Background(), w.archiveTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, w.cfg.ArchiveCommand, "a", "-t7z", "-mx9", archivePath, source)
	err := cmd.Run()

	finished := true
	crashed := false
	switch {
	case ctx.Err() != nil:
		finished = false
		crashed = true
	case err != nil:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			crashed = !exitErr.Exited() // killed by a signal
		} else {
			// The archiver never started
			finished = false
			crashed = true
			w.internalLog("%v\n", pkgerrors.Wrap(err, "archiver failed to start"))
		}
	}

	outcome := "The process exited normally"
	if crashed {
		outcome = "The process crashed"
	}

	return fmt.Sprintf("%s to archive: %s. finished: %s, %s. time: %v",
		source, archivePath, yesNo(finished), outcome, time.Since(start))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

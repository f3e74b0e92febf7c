// FILE: rotation_test.go
package daylog

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTrackedDate rewinds the writer's rotation state for tests
func setTrackedDate(w *Writer, date time.Time) {
	w.rotMu.Lock()
	w.currentDate = date
	w.rotMu.Unlock()
}

func trackedDate(w *Writer) time.Time {
	w.rotMu.Lock()
	defer w.rotMu.Unlock()
	return w.currentDate
}

// TestRotateSameDayNoop ensures flushes within one calendar day never rename
func TestRotateSameDayNoop(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, os.WriteFile(w.Destination(), []byte("data\n"), 0644))

	prev := w.rotateIfNeeded()

	assert.Empty(t, prev)
	_, err := os.Stat(w.Destination())
	assert.NoError(t, err)
}

// TestRotateDayChangeRenames checks the rename on a day transition and
// that rotation happens exactly once per transition
func TestRotateDayChangeRenames(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, os.WriteFile(w.Destination(), []byte("yesterday's data\n"), 0644))

	yesterday := dateOf(time.Now().AddDate(0, 0, -1))
	setTrackedDate(w, yesterday)

	prev := w.rotateIfNeeded()

	want := datedName(w.Destination(), yesterday)
	assert.Equal(t, want, prev)

	content, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "yesterday's data\n", string(content))

	// Destination is gone until the next write recreates it
	_, err = os.Stat(w.Destination())
	assert.True(t, os.IsNotExist(err))

	// Tracked date advanced; a second flush the same day is a noop
	assert.True(t, trackedDate(w).Equal(dateOf(time.Now())))
	assert.Empty(t, w.rotateIfNeeded())
}

// TestRotateMissingDestinationSkips documents the silent-skip on rename
// failure: the tracked date stays stale so the next flush retries
func TestRotateMissingDestinationSkips(t *testing.T) {
	w := newTestWriter(t)

	yesterday := dateOf(time.Now().AddDate(0, 0, -1))
	setTrackedDate(w, yesterday)

	prev := w.rotateIfNeeded()

	assert.Empty(t, prev)
	assert.True(t, trackedDate(w).Equal(yesterday))
}

// TestRotateDuplicateTarget resolves collisions on the dated name
func TestRotateDuplicateTarget(t *testing.T) {
	w := newTestWriter(t)
	require.NoError(t, os.WriteFile(w.Destination(), []byte("new\n"), 0644))

	yesterday := dateOf(time.Now().AddDate(0, 0, -1))
	setTrackedDate(w, yesterday)

	// Occupy the dated name so rotation must fall back to a suffix
	dated := datedName(w.Destination(), yesterday)
	require.NoError(t, os.WriteFile(dated, []byte("already there\n"), 0644))

	prev := w.rotateIfNeeded()

	ext := filepath.Ext(dated)
	want := dated[:len(dated)-len(ext)] + "(2)" + ext
	assert.Equal(t, want, prev)
	_, err := os.Stat(want)
	assert.NoError(t, err)
}

// TestRotateDuringShutdownSkipsArchive ensures a rotation triggered by the
// final flush renames but never archives
func TestRotateDuringShutdownSkipsArchive(t *testing.T) {
	fake := writeFakeArchiver(t)
	w := newTestWriter(t, func(c *Config) {
		c.ArchiveEnabled = true
		c.ArchiveCommand = fake
	})
	require.NoError(t, os.WriteFile(w.Destination(), []byte("data\n"), 0644))

	yesterday := dateOf(time.Now().AddDate(0, 0, -1))
	setTrackedDate(w, yesterday)
	w.quit.Store(true)

	prev := w.rotateIfNeeded()

	require.NotEmpty(t, prev)
	assert.Empty(t, w.LastArchiveStatus())

	archivePath := prev[:len(prev)-len(filepath.Ext(prev))] + ".7z"
	_, err := os.Stat(archivePath)
	assert.True(t, os.IsNotExist(err))
}

// TestDatedName verifies the rotated filename convention
func TestDatedName(t *testing.T) {
	date := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "/var/log/app_2024_07_01.log", datedName("/var/log/app.log", date))
	assert.Equal(t, "/var/log/app_2024_07_01.txt", datedName("/var/log/app.txt", date))
}

// TestResolveDuplicateName covers the iterative lowest-unused-suffix search
func TestResolveDuplicateName(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rot.log")

	// No collision: path unchanged
	assert.Equal(t, path, resolveDuplicateName(path))

	// One collision: first numeric suffix
	require.NoError(t, os.WriteFile(path, nil, 0644))
	want2 := filepath.Join(tmpDir, "rot(2).log")
	assert.Equal(t, want2, resolveDuplicateName(path))

	// Consecutive collisions: next free suffix
	require.NoError(t, os.WriteFile(want2, nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "rot(3).log"), nil, 0644))
	assert.Equal(t, filepath.Join(tmpDir, "rot(4).log"), resolveDuplicateName(path))
}

// TestTrackedDateFromFileModTime checks that construction derives the
// tracked date from an existing destination's last-modified time
func TestTrackedDateFromFileModTime(t *testing.T) {
	tmpDir := t.TempDir()
	dest := filepath.Join(tmpDir, "seed.log")
	require.NoError(t, os.WriteFile(dest, []byte("seeded\n"), 0644))

	stale := time.Now().AddDate(0, 0, -3)
	require.NoError(t, os.Chtimes(dest, stale, stale))

	cfg := DefaultConfig()
	cfg.Destination = "seed.log"
	cfg.Folder = tmpDir
	cfg.Mode = "disabled"
	w, err := NewWriter(cfg)
	require.NoError(t, err)

	assert.True(t, trackedDate(w).Equal(dateOf(stale)),
		fmt.Sprintf("tracked %v, want %v", trackedDate(w), dateOf(stale)))
}

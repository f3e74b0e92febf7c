// FILE: writer.go
package daylog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
)

// Process-wide locks shared by every writer instance. writeMu serializes
// all file writes, archiveMu serializes archiver invocations. Both live
// for the process lifetime.
var (
	writeMu   sync.Mutex
	archiveMu sync.Mutex
)

// Writer is one configured destination (file or console) with its own
// pending queue, background worker, and rotation state.
type Writer struct {
	cfg *Config

	destination string // full path, always carries an extension
	folder      string // always ends with a path separator
	level       int64
	display     Display
	suffix      SuffixStyle

	flushInterval  time.Duration
	idleThreshold  time.Duration
	archiveTimeout time.Duration

	mode atomic.Int32

	mu       sync.Mutex // guards queue and lastWake
	queue    []string
	lastWake time.Time

	signal chan struct{} // worker wake, capacity 1 so wakes coalesce

	quit         atomic.Bool
	closed       atomic.Bool
	started      atomic.Bool
	workerExited atomic.Bool

	rotMu       sync.Mutex // guards currentDate
	currentDate time.Time  // tracked calendar date, midnight-truncated

	lastActive        atomic.Value // time.Time, worker's last flush
	lastArchiveStatus atomic.Value // string

	console  atomic.Value // sink
	fileLock *flock.Flock // nil unless UseFileLock
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// NewWriter constructs a writer from the given configuration and starts
// its worker unless the mode is disabled.
func NewWriter(cfg *Config) (*Writer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	folder := cfg.Folder
	if folder == "" {
		wd, _ := os.Getwd()
		folder = filepath.Join(wd, defaultFolder)
	}
	if !strings.HasSuffix(folder, string(os.PathSeparator)) {
		folder += string(os.PathSeparator)
	}

	name := cfg.Destination
	if name == "" {
		name = time.Now().Format("2006-01-02") + defaultExtension
	} else if !strings.Contains(name, ".") {
		name += defaultExtension
	}

	w := &Writer{
		cfg:            cfg,
		destination:    folder + name,
		folder:         folder,
		level:          cfg.Level,
		display:        Display(cfg.Display),
		suffix:         parseSuffixStyle(cfg.SuffixStyle),
		flushInterval:  time.Duration(cfg.FlushIntervalMs) * time.Millisecond,
		idleThreshold:  time.Duration(cfg.IdleThresholdS) * time.Second,
		archiveTimeout: time.Duration(cfg.ArchiveTimeoutMin) * time.Minute,
		signal:         make(chan struct{}, 1),
	}
	w.mode.Store(int32(mode))
	w.console.Store(sink{w: consoleWriter(cfg.ConsoleTarget)})
	w.workerExited.Store(true)
	w.lastWake = time.Now()

	if cfg.UseFileLock {
		w.fileLock = flock.New(w.destination + ".lock")
	}

	if mode == ModeFull || mode == ModeOnlyFile {
		if err := os.MkdirAll(folder, 0755); err != nil {
			return nil, fmtErrorf("failed to create log folder '%s': %w", folder, err)
		}
	}

	// The tracked date comes from the destination file's last-modified
	// time so a restart resumes the previous day's rotation cycle.
	w.currentDate = dateOf(time.Now())
	if info, errStat := os.Stat(w.destination); errStat == nil {
		w.currentDate = dateOf(info.ModTime())
	}

	if mode != ModeDisabled {
		w.start()
	}

	return w, nil
}

// Destination returns the full path of the active log file.
func (w *Writer) Destination() string {
	return w.destination
}

// Mode returns the writer's current operating mode.
func (w *Writer) Mode() Mode {
	return Mode(w.mode.Load())
}

// SetMode changes the operating mode and starts the worker when
// transitioning out of ModeDisabled.
func (w *Writer) SetMode(m Mode) {
	w.mode.Store(int32(m))

	if m == ModeFull || m == ModeOnlyFile {
		if err := os.MkdirAll(w.folder, 0755); err != nil {
			w.internalLog("failed to create log folder '%s': %v\n", w.folder, err)
		}
	}

	if m != ModeDisabled {
		w.start()
	}
}

// Enqueue formats the record and appends it to the pending queue.
// It never blocks on I/O and is a no-op while the writer is disabled.
// Producers never observe failures through this call.
func (w *Writer) Enqueue(rec Record) {
	if w.Mode() == ModeDisabled {
		return
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}

	line := formatMessage(w.display, w.level, rec)

	w.mu.Lock()
	w.queue = append(w.queue, line)
	shouldWake := false
	if time.Since(w.lastWake) > w.flushInterval {
		if !w.quit.Load() {
			shouldWake = true
		}
		w.lastWake = time.Now()
	}
	w.mu.Unlock()

	if shouldWake {
		w.wake()
	}
}

// ForcePush signals the worker immediately when lines are pending and the
// worker has been idle beyond the idle threshold. Intended to be called
// by an external scheduler to bound latency under sparse traffic.
func (w *Writer) ForcePush() {
	w.mu.Lock()
	pending := len(w.queue) > 0
	w.mu.Unlock()
	if !pending {
		return
	}

	last, _ := w.lastActive.Load().(time.Time)
	if time.Since(last) > w.idleThreshold {
		w.wake()
	}
}

// Close synchronously flushes the remaining queue, writes a terminal
// "Closed" marker, and stops the worker. Safe to call once; subsequent
// calls are no-ops.
func (w *Writer) Close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}

	w.mu.Lock()
	if len(w.queue) > 0 {
		batch := w.queue
		w.queue = nil
		w.write(batch)
	}
	w.write([]string{fmt.Sprintf("Closed %s\n", time.Now().Format(timestampLayout))})
	w.quit.Store(true)
	w.mu.Unlock()

	w.wake()
}

// LastArchiveStatus returns the status string of the most recent archiver
// invocation, empty if none has run.
func (w *Writer) LastArchiveStatus() string {
	s, _ := w.lastArchiveStatus.Load().(string)
	return s
}

// start launches the worker goroutine exactly once
func (w *Writer) start() {
	if w.started.CompareAndSwap(false, true) {
		w.workerExited.Store(false)
		go w.run()
	}
}

// wake signals the worker without blocking; a pending signal is enough
func (w *Writer) wake() {
	select {
	case w.signal <- struct{}{}:
	default:
	}
}

// internalLog handles writing internal writer diagnostics to stderr, if enabled.
func (w *Writer) internalLog(format string, args ...any) {
	if !w.cfg.InternalErrorsToStderr {
		return
	}
	if !strings.HasPrefix(format, "daylog: ") {
		format = "daylog: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// consoleWriter resolves the configured console target
func consoleWriter(target string) io.Writer {
	if target == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

// dateOf truncates a time to its calendar date
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

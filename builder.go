// FILE: builder.go
package daylog

// Builder provides a fluent API for building writer configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Writer instance with the specified configuration.
func (b *Builder) Build() (*Writer, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewWriter(b.cfg)
}

// Destination sets the log file name within the folder.
func (b *Builder) Destination(name string) *Builder {
	b.cfg.Destination = name
	return b
}

// Folder sets the destination folder.
func (b *Builder) Folder(dir string) *Builder {
	b.cfg.Folder = dir
	return b
}

// Mode sets the operating mode.
func (b *Builder) Mode(m Mode) *Builder {
	switch m {
	case ModeDisabled:
		b.cfg.Mode = "disabled"
	case ModeOnlyConsole:
		b.cfg.Mode = "console"
	case ModeOnlyFile:
		b.cfg.Mode = "file"
	case ModeFull:
		b.cfg.Mode = "full"
	}
	return b
}

// Level sets the writer severity level.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the writer severity level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// Display sets the message display flags.
func (b *Builder) Display(d Display) *Builder {
	b.cfg.Display = int64(d)
	return b
}

// FlushIntervalMs sets the minimum time between enqueue-driven wakes.
func (b *Builder) FlushIntervalMs(ms int64) *Builder {
	b.cfg.FlushIntervalMs = ms
	return b
}

// IdleThresholdS sets the queue age before ForcePush signals the worker.
func (b *Builder) IdleThresholdS(s int64) *Builder {
	b.cfg.IdleThresholdS = s
	return b
}

// ArchiveEnabled toggles archival of rotated files.
func (b *Builder) ArchiveEnabled(enable bool) *Builder {
	b.cfg.ArchiveEnabled = enable
	return b
}

// ArchiveCommand sets the external archiver binary.
func (b *Builder) ArchiveCommand(cmd string) *Builder {
	b.cfg.ArchiveCommand = cmd
	return b
}

// ConsoleTarget selects stdout or stderr for the console sink.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// UseFileLock enables a cross-process flock on the destination file.
func (b *Builder) UseFileLock(enable bool) *Builder {
	b.cfg.UseFileLock = enable
	return b
}

// Example usage:
// writer, err := daylog.NewBuilder().
//
//	Folder("/var/log/app").
//	Destination("app.log").
//	LevelString("debug").
//	Mode(daylog.ModeFull).
//	Build()
//
// if err == nil {
//
//	 defer writer.Close()
//	 writer.Enqueue(daylog.Record{Module: "core", Level: daylog.LevelInfo, Message: "started"})
//
// }

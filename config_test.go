// FILE: config_test.go
package daylog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfigIsValid ensures the shipped defaults pass validation
func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.validate())
	assert.Equal(t, int64(DisplayDefault), cfg.Display)
	assert.Equal(t, "7z", cfg.ArchiveCommand)
	assert.Equal(t, int64(15), cfg.ArchiveTimeoutMin)
}

// TestConfigValidation covers the rejection paths
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"invalid mode", func(c *Config) { c.Mode = "bogus" }},
		{"level out of range", func(c *Config) { c.Level = 99 }},
		{"negative display", func(c *Config) { c.Display = -1 }},
		{"display out of range", func(c *Config) { c.Display = int64(DisplayDefault) + 1 }},
		{"invalid suffix style", func(c *Config) { c.SuffixStyle = "roman" }},
		{"zero flush interval", func(c *Config) { c.FlushIntervalMs = 0 }},
		{"zero idle threshold", func(c *Config) { c.IdleThresholdS = 0 }},
		{"empty archive command", func(c *Config) { c.ArchiveCommand = " " }},
		{"zero archive timeout", func(c *Config) { c.ArchiveTimeoutMin = 0 }},
		{"invalid console target", func(c *Config) { c.ConsoleTarget = "tty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.validate())
		})
	}
}

// TestArchiveSettingsIgnoredWhenDisabled: archiver knobs are only checked
// when archiving is on
func TestArchiveSettingsIgnoredWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArchiveEnabled = false
	cfg.ArchiveCommand = ""
	cfg.ArchiveTimeoutMin = 0
	assert.NoError(t, cfg.validate())
}

// TestConfigClone verifies clone independence
func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.Destination = "other.log"
	clone.Level = LevelTrace

	assert.NotEqual(t, cfg.Destination, clone.Destination)
	assert.Equal(t, LevelWarning, cfg.Level)
}

// TestNewConfigFromFile loads settings from a TOML file over the defaults
func TestNewConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "daylog.toml")

	content := `
[daylog]
destination = "svc.log"
folder = "/var/log/svc"
mode = "full"
level = 1
flush_interval_ms = 250
archive_enabled = false
console_target = "stderr"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "svc.log", cfg.Destination)
	assert.Equal(t, "/var/log/svc", cfg.Folder)
	assert.Equal(t, "full", cfg.Mode)
	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, int64(250), cfg.FlushIntervalMs)
	assert.False(t, cfg.ArchiveEnabled)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)

	// Untouched keys keep their defaults
	assert.Equal(t, "7z", cfg.ArchiveCommand)
	assert.Equal(t, int64(5), cfg.IdleThresholdS)
}

// TestNewConfigFromFileMissing falls back to defaults without error
func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestNewConfigFromFileInvalid rejects a file that fails validation
func TestNewConfigFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daylog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[daylog]\nmode = \"bogus\"\n"), 0644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
}

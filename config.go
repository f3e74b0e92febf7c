// FILE: config.go
package daylog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all writer configuration values.
// A Config is immutable once handed to NewWriter; only the mode can be
// changed later through Writer.SetMode.
type Config struct {
	// Destination settings
	Destination string `toml:"destination"` // File name within the folder
	Folder      string `toml:"folder"`      // Destination folder
	Mode        string `toml:"mode"`        // "disabled", "console", "file", or "full"
	Level       int64  `toml:"level"`       // Writer severity level (LevelTrace..LevelFatal)

	// Formatting
	Display     int64  `toml:"display"`      // Display-flag bitset, DisplayDefault when unset
	SuffixStyle string `toml:"suffix_style"` // "datetime" or "number"; reserved, see SuffixStyle

	// Timers
	FlushIntervalMs int64 `toml:"flush_interval_ms"` // Minimum time between enqueue-driven wakes
	IdleThresholdS  int64 `toml:"idle_threshold_s"`  // Queue age before ForcePush signals

	// Archival
	ArchiveEnabled    bool   `toml:"archive_enabled"`
	ArchiveCommand    string `toml:"archive_command"`     // External archiver binary
	ArchiveTimeoutMin int64  `toml:"archive_timeout_min"` // Bound on the archiver process

	// Console and locking
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"
	UseFileLock   bool   `toml:"use_file_lock"`  // Cross-process flock on the destination

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Destination: "",
	Folder:      "",
	Mode:        "file",
	Level:       LevelWarning,

	Display:     int64(DisplayDefault),
	SuffixStyle: "datetime",

	FlushIntervalMs: 500,
	IdleThresholdS:  5,

	ArchiveEnabled:    true,
	ArchiveCommand:    "7z",
	ArchiveTimeoutMin: 15,

	ConsoleTarget: "stdout",
	UseFileLock:   false,

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("daylog.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "daylog.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}

	if c.Level < LevelTrace || c.Level > LevelFatal {
		return fmtErrorf("level must be between %d and %d: %d", LevelTrace, LevelFatal, c.Level)
	}

	if c.Display < 0 || c.Display > int64(DisplayDefault) {
		return fmtErrorf("display flags out of range: %d", c.Display)
	}

	if c.SuffixStyle != "datetime" && c.SuffixStyle != "number" {
		return fmtErrorf("invalid suffix_style: '%s' (use datetime or number)", c.SuffixStyle)
	}

	if c.FlushIntervalMs <= 0 || c.IdleThresholdS <= 0 {
		return fmtErrorf("interval settings must be positive")
	}

	if c.ArchiveEnabled {
		if strings.TrimSpace(c.ArchiveCommand) == "" {
			return fmtErrorf("archive_command cannot be empty when archiving is enabled")
		}
		if c.ArchiveTimeoutMin <= 0 {
			return fmtErrorf("archive_timeout_min must be positive: %d", c.ArchiveTimeoutMin)
		}
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

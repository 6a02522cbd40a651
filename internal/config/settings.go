package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the optional, file-based presentation and logging settings.
// Nothing here changes which lines match.
type Settings struct {
	Output OutputSettings `yaml:"output"`
	Log    LogSettings    `yaml:"log"`
}

// OutputSettings controls how matches are rendered.
type OutputSettings struct {
	Format string `yaml:"format"` // debug, lines, or json
}

// LogSettings controls the diagnostic logger.
type LogSettings struct {
	Level      string `yaml:"level"`        // debug, info, warn, error
	File       string `yaml:"file"`         // Rotated log file (empty = stderr)
	MaxSizeMB  int    `yaml:"max_size_mb"`  // Rotate after this many megabytes
	MaxBackups int    `yaml:"max_backups"`  // Rotated files to keep
	MaxAgeDays int    `yaml:"max_age_days"` // Days to keep rotated files
	Compress   bool   `yaml:"compress"`     // Gzip rotated files
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			Format: "debug",
		},
		Log: LogSettings{
			Level:      "warn",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// LoadSettingsFromFile loads settings from path.
// If the file doesn't exist, returns default settings.
func LoadSettingsFromFile(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// Validate checks enum and range fields.
func (s *Settings) Validate() error {
	if !IsValidFormat(s.Output.Format) {
		return fmt.Errorf("invalid output.format: %s (must be debug, lines, or json)", s.Output.Format)
	}
	if !isValidLogLevel(s.Log.Level) {
		return fmt.Errorf("invalid log.level: %s (must be debug, info, warn, or error)", s.Log.Level)
	}
	if s.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must be >= 0, got %d", s.Log.MaxSizeMB)
	}
	if s.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must be >= 0, got %d", s.Log.MaxBackups)
	}
	if s.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log.max_age_days must be >= 0, got %d", s.Log.MaxAgeDays)
	}
	return nil
}

// IsValidFormat reports whether format names a supported output format.
func IsValidFormat(format string) bool {
	switch format {
	case "debug", "lines", "json":
		return true
	default:
		return false
	}
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

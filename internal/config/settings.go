package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tracklist/internal/format"
)

// Settings holds all configuration options.
type Settings struct {
	// Conversion settings
	OutputFormat string `json:"output_format"` // m3u, pls

	// Scan settings
	ScanExtensions  []string `json:"scan_extensions"`
	ScanConcurrency int      `json:"scan_concurrency"`

	// TUI settings
	ConfirmOnQuit bool `json:"confirm_on_quit"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputFormat:    "m3u",
		ScanExtensions:  []string{".mp3"},
		ScanConcurrency: 8,
		ConfirmOnQuit:   true,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error; defaults are returned so a fresh
// install works without any configuration.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the settings reference known formats and sane
// limits.
func (s *Settings) Validate() error {
	if _, err := format.ForName(s.OutputFormat); err != nil {
		return fmt.Errorf("output_format: %w", err)
	}
	if s.ScanConcurrency < 1 {
		return fmt.Errorf("scan_concurrency must be at least 1, got %d", s.ScanConcurrency)
	}
	return nil
}

// Output returns the configured output format codec.
func (s *Settings) Output() (format.Format, error) {
	return format.ForName(s.OutputFormat)
}

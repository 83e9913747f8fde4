// Package config provides configuration management for tracklist.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Resolving the configured output format codec
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// M3U output, .mp3 scanning, 8 concurrent tag readers
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// A missing file yields defaults, not an error
//
// # Saving Settings
//
//	settings.OutputFormat = "pls"
//	err := settings.Save("/path/to/config.json")
package config

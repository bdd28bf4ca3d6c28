// settings.go - Persistent application settings (YAML)
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/DigitalPals/portal/internal/selection"
)

// AppSettings holds all application configuration
type AppSettings struct {
	// Terminal Behavior
	ScrollbackLines int  `yaml:"scrollback_lines"` // Number of scrollback lines (default: 1000)
	CopyOnSelect    bool `yaml:"copy_on_select"`   // Copy to clipboard when a drag ends (default: false)

	// Selection
	WordSeparators string `yaml:"word_separators,omitempty"` // Extra word-boundary characters for double-click

	// Auto-scroll during drag selection
	AutoScrollZonePx     float32 `yaml:"auto_scroll_zone_px"`     // Edge band that triggers scrolling (default: 30)
	AutoScrollIntervalMs int     `yaml:"auto_scroll_interval_ms"` // Minimum ms between triggers (default: 50)
	AutoScrollMaxLines   int     `yaml:"auto_scroll_max_lines"`   // Lines per trigger at the edge (default: 3)
}

// DefaultSettings returns settings with sensible defaults
func DefaultSettings() *AppSettings {
	return &AppSettings{
		ScrollbackLines:      1000,
		CopyOnSelect:         false,
		WordSeparators:       selection.DefaultWordBoundaries,
		AutoScrollZonePx:     30,
		AutoScrollIntervalMs: 50,
		AutoScrollMaxLines:   3,
	}
}

// LoadSettings reads settings from path, falling back to defaults
// when the file is missing or malformed.
func LoadSettings(path string) *AppSettings {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Could not read settings %s: %v", path, err)
		}
		return settings
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		log.Printf("Warning: Could not parse settings %s: %v, using defaults", path, err)
		return DefaultSettings()
	}

	settings.normalize()
	return settings
}

// Save writes settings to path as YAML.
func (s *AppSettings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// normalize clamps nonsense values back to defaults
func (s *AppSettings) normalize() {
	if s.ScrollbackLines < 0 {
		s.ScrollbackLines = 1000
	}
	if s.AutoScrollZonePx <= 0 {
		s.AutoScrollZonePx = 30
	}
	if s.AutoScrollIntervalMs <= 0 {
		s.AutoScrollIntervalMs = 50
	}
	if s.AutoScrollMaxLines < 1 {
		s.AutoScrollMaxLines = 3
	}
	if s.WordSeparators == "" {
		s.WordSeparators = selection.DefaultWordBoundaries
	}
}

// AutoScrollConfig converts the stored tuning into the selection
// package's config.
func (s *AppSettings) AutoScrollConfig() selection.AutoScrollConfig {
	return selection.AutoScrollConfig{
		EdgeZonePx:      s.AutoScrollZonePx,
		Interval:        time.Duration(s.AutoScrollIntervalMs) * time.Millisecond,
		MaxLinesPerTick: s.AutoScrollMaxLines,
	}
}

// Package config loads and saves display settings as TOML. Missing keys
// fall back to console.DefaultDisplaySettings, so a partial file is
// always valid.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lorekeep/termcanvas/console"
	"github.com/lorekeep/termcanvas/terminal"
)

// duration wraps time.Duration for TOML round-tripping ("500ms")
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// fileConfig is the on-disk schema. Pointer fields distinguish "absent"
// from zero values.
type fileConfig struct {
	UseColors       *bool     `toml:"use_colors"`
	BorderStyle     string    `toml:"border_style"`
	CursorBlink     *bool     `toml:"cursor_blink"`
	CursorBlinkRate *duration `toml:"cursor_blink_rate"`
	RefreshInterval *duration `toml:"refresh_interval"`
	DefaultColor    string    `toml:"default_color"`
}

// Load reads display settings from path. A missing file yields the
// defaults without error; a malformed file is reported.
func Load(path string) (console.DisplaySettings, error) {
	settings := console.DefaultDisplaySettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read display config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return settings, fmt.Errorf("parse display config %s: %w", path, err)
	}

	if fc.UseColors != nil {
		settings.UseColors = *fc.UseColors
	}
	if fc.BorderStyle != "" {
		var style console.BorderStyle
		if err := style.UnmarshalText([]byte(fc.BorderStyle)); err != nil {
			return settings, fmt.Errorf("parse display config %s: %w", path, err)
		}
		settings.Borders = style
	}
	if fc.CursorBlink != nil {
		settings.CursorBlink = *fc.CursorBlink
	}
	if fc.CursorBlinkRate != nil {
		settings.CursorBlinkRate = fc.CursorBlinkRate.Duration
	}
	if fc.RefreshInterval != nil {
		settings.RefreshInterval = fc.RefreshInterval.Duration
	}
	if fc.DefaultColor != "" {
		c, err := terminal.ParseRGB(fc.DefaultColor)
		if err != nil {
			return settings, fmt.Errorf("parse display config %s: %w", path, err)
		}
		settings.DefaultColor = c
	}

	return settings, nil
}

// Save writes the full settings to path as TOML
func Save(path string, settings console.DisplaySettings) error {
	blinkRate := duration{settings.CursorBlinkRate}
	refresh := duration{settings.RefreshInterval}
	fc := fileConfig{
		UseColors:       &settings.UseColors,
		BorderStyle:     settings.Borders.String(),
		CursorBlink:     &settings.CursorBlink,
		CursorBlinkRate: &blinkRate,
		RefreshInterval: &refresh,
		DefaultColor:    settings.DefaultColor.Hex(),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write display config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(fc); err != nil {
		return fmt.Errorf("encode display config: %w", err)
	}
	return nil
}

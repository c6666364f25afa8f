package console

import (
	"fmt"
	"time"

	"github.com/lorekeep/termcanvas/terminal"
)

// BorderStyle selects the border glyph set
type BorderStyle uint8

const (
	BorderASCII   BorderStyle = iota // + - |
	BorderUnicode                    // square Unicode corners
	BorderRounded                    // rounded Unicode corners
)

// String returns the TOML/config name of the style
func (s BorderStyle) String() string {
	switch s {
	case BorderASCII:
		return "ascii"
	case BorderUnicode:
		return "unicode"
	case BorderRounded:
		return "rounded"
	}
	return "unknown"
}

// UnmarshalText parses a config name into a style
func (s *BorderStyle) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ascii":
		*s = BorderASCII
	case "unicode":
		*s = BorderUnicode
	case "rounded":
		*s = BorderRounded
	default:
		return fmt.Errorf("unknown border style %q", text)
	}
	return nil
}

// MarshalText emits the config name of a style
func (s BorderStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DisplaySettings is the caller-owned display configuration. The window
// manager copies it on UpdateDisplaySettings and re-derives its cached
// glyph table immediately.
type DisplaySettings struct {
	UseColors       bool
	Borders         BorderStyle
	CursorBlink     bool
	CursorBlinkRate time.Duration
	RefreshInterval time.Duration
	DefaultColor    terminal.RGB
}

// DefaultDisplaySettings returns the settings used when no config exists
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		UseColors:       true,
		Borders:         BorderUnicode,
		CursorBlink:     true,
		CursorBlinkRate: 500 * time.Millisecond,
		RefreshInterval: 50 * time.Millisecond,
		DefaultColor:    terminal.RGBWhite,
	}
}

// borderGlyphs is the derived glyph table cached by the window manager
type borderGlyphs struct {
	TL, TR, BL, BR rune
	H, V           rune
}

var borderSets = [...]borderGlyphs{
	BorderASCII:   {'+', '+', '+', '+', '-', '|'},
	BorderUnicode: {'┌', '┐', '└', '┘', '─', '│'},
	BorderRounded: {'╭', '╮', '╰', '╯', '─', '│'},
}

// glyphsFor derives the glyph table for a style
func glyphsFor(style BorderStyle) borderGlyphs {
	if int(style) >= len(borderSets) {
		style = BorderASCII
	}
	return borderSets[style]
}

package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Common colors used by the default panel styling
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBWhite     = RGB{229, 229, 229}
	RGBGray      = RGB{128, 128, 128}
	RGBDarkKhaki = RGB{175, 175, 95}
	RGBRed       = RGB{205, 49, 49}
	RGBGreen     = RGB{13, 188, 121}
	RGBYellow    = RGB{229, 229, 16}
	RGBBlue      = RGB{36, 114, 200}
	RGBMagenta   = RGB{188, 63, 188}
	RGBCyan      = RGB{17, 168, 205}
)

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'#',
		digits[c.R>>4], digits[c.R&0xf],
		digits[c.G>>4], digits[c.G&0xf],
		digits[c.B>>4], digits[c.B&0xf],
	})
}

// ParseRGB parses a #rrggbb color string
func ParseRGB(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("invalid color %q, want #rrggbb", s)
	}
	var v [6]uint8
	for i := 0; i < 6; i++ {
		ch := s[i+1]
		switch {
		case ch >= '0' && ch <= '9':
			v[i] = ch - '0'
		case ch >= 'a' && ch <= 'f':
			v[i] = ch - 'a' + 10
		case ch >= 'A' && ch <= 'F':
			v[i] = ch - 'A' + 10
		default:
			return RGB{}, fmt.Errorf("invalid color %q, want #rrggbb", s)
		}
	}
	return RGB{
		R: v[0]<<4 | v[1],
		G: v[2]<<4 | v[3],
		B: v[4]<<4 | v[5],
	}, nil
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube values for the 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func nearestCube(v uint8) int {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for i := 1; i < 6; i++ {
		d := abs(int(v) - int(cubeValues[i]))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// RGBTo256 finds the nearest xterm 256-color palette index for an RGB value.
// Near-gray inputs prefer the grayscale ramp (232-255) when it is a closer
// match than the color cube.
func RGBTo256(c RGB) uint8 {
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(
		abs(int(c.R)-gray),
		abs(int(c.G)-gray),
		abs(int(c.B)-gray),
	)

	cr, cg, cb := nearestCube(c.R), nearestCube(c.G), nearestCube(c.B)
	cubeDist := abs(int(c.R)-int(cubeValues[cr])) +
		abs(int(c.G)-int(cubeValues[cg])) +
		abs(int(c.B)-int(cubeValues[cb]))

	if maxDiff < 10 {
		// Grayscale ramp: 232-255 maps to luminance 8, 18, ..., 238
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := 232 + (gray-8)/10
		grayLevel := 8 + (grayIdx-232)*10
		grayDist := abs(int(c.R)-grayLevel) +
			abs(int(c.G)-grayLevel) +
			abs(int(c.B)-grayLevel)
		if grayDist <= cubeDist {
			return uint8(grayIdx)
		}
	}

	return uint8(16 + 36*cr + 6*cg + cb)
}

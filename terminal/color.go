package terminal

import (
	"fmt"
	"strings"
)

// ColorMode indicates which foreground sequences the frame stream may emit
type ColorMode uint8

const (
	ColorModeNone      ColorMode = iota // no color escapes, glyphs only
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorMode256:
		return "256"
	default:
		return "mono"
	}
}

// ParseColorMode resolves a flag/config value, "auto" defers to DetectColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	case "mono", "none", "off":
		return ColorModeNone, nil
	}
	return ColorModeNone, fmt.Errorf("unknown color mode %q", s)
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex returns the #rrggbb form
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

package terminal

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// DetectColorMode determines truecolor capability from the environment
// Anything short of truecolor resolves to ColorModeNone; 256-color output is opt-in only
func DetectColorMode() ColorMode {
	if os.Getenv("FORCE_COLOR") != "" {
		return ColorModeTrueColor
	}

	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	// Terminal-specific hints (kitty, iTerm, WezTerm...) are covered by termenv
	if termenv.EnvColorProfile() == termenv.TrueColor {
		return ColorModeTrueColor
	}

	return ColorModeNone
}

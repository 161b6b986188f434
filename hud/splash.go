package hud

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/parameter/visual"
)

var splashBanner = []string{
	"  ███╗   ██╗███████╗ ██████╗ ███╗   ██╗    ██████╗  █████╗ ██╗██╗     ███████╗",
	"  ████╗  ██║██╔════╝██╔═══██╗████╗  ██║    ██╔══██╗██╔══██╗██║██║     ██╔════╝",
	"  ██╔██╗ ██║█████╗  ██║   ██║██╔██╗ ██║    ██████╔╝███████║██║██║     ███████╗",
	"  ██║╚██╗██║██╔══╝  ██║   ██║██║╚██╗██║    ██╔══██╗██╔══██║██║██║     ╚════██║",
	"  ██║ ╚████║███████╗╚██████╔╝██║ ╚████║    ██║  ██║██║  ██║██║███████╗███████║",
	"  ╚═╝  ╚═══╝╚══════╝ ╚═════╝ ╚═╝  ╚═══╝    ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝",
}

// Splash returns the briefing shown under the splash streaks
// The banner is dropped when maxLines cannot hold it
func Splash(laps, maxLines int) []string {
	brief := []string{
		"",
		"  Nightfall in SOMA. Hack a hovercar, race for GPU crates, dodge drone spotlights.",
		"",
		"  Controls:",
		"    • ←/→ or A/D: steer",
		"    • ↑/↓ or W/S: throttle & brake",
		"    • P: pause / resume",
		"    • R: restart run",
		"    • ENTER / SPACE: start race",
		"    • Q: bail out",
		"",
		fmt.Sprintf("  Objective: grab GPUs, ram rivals, finish %d laps, and bank the credits.", laps),
	}

	if len(splashBanner)+len(brief) <= maxLines {
		return append(append([]string{}, splashBanner...), brief...)
	}
	if len(brief) <= maxLines {
		return brief
	}
	return nil
}

// SplashHeader is the header line while the splash is up
func SplashHeader(p Painter) string {
	var b strings.Builder
	b.WriteString(p.Paint(visual.RgbHUD, parameter.TextTitle))
	b.WriteString(" - ")
	b.WriteString(p.Paint(visual.RgbMessage, parameter.TextSplashPrompt))
	return b.String()
}

package hud

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/neon-rails/game"
	"github.com/lixenwraith/neon-rails/parameter"
)

var (
	panelRule   = strings.Repeat("═", parameter.HUDPanelWidth+2)
	panelTop    = "╔" + panelRule + "╗"
	panelSplit  = "╠" + panelRule + "╣"
	panelBottom = "╚" + panelRule + "╝"
)

// Panel returns the standings box for a race in progress
func Panel(st *game.State) []string {
	p := &st.Player
	health := clamp01(1 - p.Damage)
	pct := int(math.Round(health * 100))
	critical := pct <= parameter.HUDCriticalPercent

	warn := "  "
	if critical {
		warn = " ⚠"
	}

	lines := make([]string, 0, 16)
	lines = append(lines,
		panelTop,
		row(center(parameter.TextTitle, parameter.HUDPanelWidth)),
		row(center(parameter.TextSubtitle, parameter.HUDPanelWidth)),
		panelSplit,
		row(fmt.Sprintf("GPU CREDITS: %3d", p.Credits)),
		row(fmt.Sprintf("HP: %s %3d%%%s", Bar(health), pct, warn)),
		row(fmt.Sprintf("TIME: %3ds", int(st.RaceTime))),
		row(fmt.Sprintf("SPEED: %.0f/%.0f km/h", p.Speed*parameter.HUDSpeedScale, st.Tuning.SpeedMax*parameter.HUDSpeedScale)),
	)
	if st.IsCircuit() {
		lines = append(lines, row(fmt.Sprintf("LAP: %d/%d", min(st.Laps.Current, st.Laps.Total), st.Laps.Total)))
	} else {
		lines = append(lines, row(fmt.Sprintf("DISTANCE: %.0f", p.S)))
	}
	lines = append(lines, panelSplit, row("STANDINGS:"))

	for _, s := range st.Standings() {
		name := "  " + strings.ToUpper(s.Name)
		if s.Player {
			name = "▶ " + s.Name
		}
		lines = append(lines, row(runewidth.FillRight(Ordinal(s.Position), 4)+" "+name))
	}
	lines = append(lines, panelBottom)

	if critical {
		lines = append(lines, "    "+parameter.TextDroneWarning)
	}
	return lines
}

// row pads content into one boxed panel line, cutting content that does not fit
func row(content string) string {
	content = runewidth.Truncate(content, parameter.HUDPanelWidth, "")
	return "║ " + runewidth.FillRight(content, parameter.HUDPanelWidth) + " ║"
}

func center(s string, width int) string {
	pad := (width - runewidth.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// Bar draws ratio as a fixed-width block gauge
func Bar(ratio float64) string {
	filled := int(math.Round(clamp01(ratio) * parameter.HUDBarSegments))
	return strings.Repeat("█", filled) + strings.Repeat("░", parameter.HUDBarSegments-filled)
}

// Ordinal formats 1 as "1st", 2 as "2nd", 11 as "11th"
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

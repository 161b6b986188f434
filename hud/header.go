package hud

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/neon-rails/parameter"
	"github.com/lixenwraith/neon-rails/parameter/visual"
	"github.com/lixenwraith/neon-rails/terminal"
)

// HeaderInfo is what the header line shows
type HeaderInfo struct {
	Score   float64
	Best    float64 // shown when positive
	Alive   bool
	Message string
	Mode    terminal.ColorMode
}

// Header formats the single line above the canvas, fitted to width columns
// The status message is truncated first; the fixed part is never cut
func Header(info HeaderInfo, width int) string {
	p := Painter{Mode: info.Mode}
	score := strconv.Itoa(int(info.Score))

	hint := ""
	if info.Mode != terminal.ColorModeTrueColor {
		hint = parameter.TextNoTruecolor
	}

	best := ""
	if info.Best > 0 {
		best = " best " + strconv.Itoa(int(info.Best))
	}

	plain := parameter.TextTitle + " - score " + score + best + "  " + parameter.TextLaneHint + hint
	var b strings.Builder
	b.WriteString(p.Paint(visual.RgbHUD, parameter.TextTitle))
	b.WriteString(" - score ")
	b.WriteString(p.Paint(terminal.White, score))
	b.WriteString(best)
	b.WriteString("  ")
	b.WriteString(parameter.TextLaneHint)
	b.WriteString(hint)

	if info.Message == "" {
		return b.String()
	}

	room := width - runewidth.StringWidth(plain) - 2
	if room <= 1 {
		return b.String()
	}
	msg := runewidth.Truncate(info.Message, room, "…")
	col := visual.RgbMessage
	if !info.Alive {
		col = visual.RgbAlert
	}
	b.WriteString("  ")
	b.WriteString(p.Paint(col, msg))
	return b.String()
}

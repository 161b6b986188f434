// Package hud formats the text around the track view: the header line above
// the canvas, the standings panel and the splash briefing below it.
package hud

import (
	"strings"

	"github.com/lixenwraith/neon-rails/terminal"
)

// Painter wraps text in color escapes suited to a color mode
type Painter struct {
	Mode terminal.ColorMode
}

// Paint returns s in color c, or s unchanged in mono mode
func (p Painter) Paint(c terminal.RGB, s string) string {
	var b strings.Builder
	switch p.Mode {
	case terminal.ColorModeTrueColor:
		b.WriteString(terminal.Fg24(c))
	case terminal.ColorMode256:
		b.Write(terminal.AppendFg256(nil, terminal.RGBTo256(c)))
	default:
		return s
	}
	b.WriteString(s)
	b.WriteString(terminal.SeqReset)
	return b.String()
}

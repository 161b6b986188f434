// Package canvas packs a sub-character dot bitmap into braille cells and
// serializes it as a terminal frame with run-length color escapes.
//
// Each cell holds a 2x4 dot grid. Pixel space is (cols*2) x (rows*4).
// Color is stored per cell, last write wins.
package canvas

import (
	"io"
	"math"

	"github.com/lixenwraith/neon-rails/terminal"
)

// glyphBase is the empty braille pattern; a cell's glyph is glyphBase + mask
const glyphBase = 0x2800

// dotBits maps a pixel's parities [px&1][py&3] to its braille dot bit
//
//	col 0   col 1
//	0x01    0x08    row 0
//	0x02    0x10    row 1
//	0x04    0x20    row 2
//	0x40    0x80    row 3
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// DotCanvas is a packed dot bitmap with one color per cell
// Not safe for concurrent use; owned by the frame loop
type DotCanvas struct {
	cols, rows int
	mask       []uint8
	color      []terminal.RGB
	mode       terminal.ColorMode

	// Reused frame buffer
	buf []byte
}

// New allocates a canvas of cols x rows cells
func New(cols, rows int, mode terminal.ColorMode) *DotCanvas {
	c := &DotCanvas{mode: mode}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates both buffers wholesale, discarding content
func (c *DotCanvas) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	c.cols = cols
	c.rows = rows
	c.mask = make([]uint8, cols*rows)
	c.color = make([]terminal.RGB, cols*rows)
	c.buf = nil
}

// Clear zeroes both buffers
func (c *DotCanvas) Clear() {
	clear(c.mask)
	clear(c.color)
}

// SetColorMode selects the escape encoding used by Serialize
func (c *DotCanvas) SetColorMode(mode terminal.ColorMode) {
	c.mode = mode
}

func (c *DotCanvas) ColorMode() terminal.ColorMode { return c.mode }
func (c *DotCanvas) Cols() int                     { return c.cols }
func (c *DotCanvas) Rows() int                     { return c.rows }
func (c *DotCanvas) PixelWidth() int               { return c.cols * 2 }
func (c *DotCanvas) PixelHeight() int              { return c.rows * 4 }

// Plot sets one dot and overwrites its cell color
// Out-of-range coordinates are ignored
func (c *DotCanvas) Plot(px, py int, col terminal.RGB) {
	if px < 0 || py < 0 || px >= c.cols*2 || py >= c.rows*4 {
		return
	}
	idx := (py>>2)*c.cols + (px >> 1)
	c.mask[idx] |= dotBits[px&1][py&3]
	c.color[idx] = col
}

// Stamp plots a square footprint of the given radius around a real-valued center
// Radius 0 plots a single dot
func (c *DotCanvas) Stamp(x, y float64, radius int, col terminal.RGB) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	// Far off-canvas centers would overflow the int conversion
	limit := float64(c.cols*2 + c.rows*4 + radius)
	if x < -limit || y < -limit || x > limit || y > limit {
		return
	}

	cx := int(math.Floor(x))
	cy := int(math.Floor(y))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c.Plot(cx+dx, cy+dy, col)
		}
	}
}

// Cell returns the dot mask and color of a cell, zero values when out of range
func (c *DotCanvas) Cell(cx, cy int) (uint8, terminal.RGB) {
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return 0, terminal.RGB{}
	}
	idx := cy*c.cols + cx
	return c.mask[idx], c.color[idx]
}

// Serialize renders the frame as text; see AppendFrame
func (c *DotCanvas) Serialize(header string) string {
	c.buf = c.AppendFrame(c.buf[:0], header)
	return string(c.buf)
}

// WriteFrame renders the frame and writes it in a single call
func (c *DotCanvas) WriteFrame(w io.Writer, header string) error {
	c.buf = c.AppendFrame(c.buf[:0], header)
	_, err := w.Write(c.buf)
	return err
}

// AppendFrame appends cursor-home, clear-to-end, the optional header line and
// every cell row to dst.
//
// A color escape is emitted only when a lit cell's color differs from the
// color active on the current row. Empty cells reset an active color before
// their space, and every row ends with a reset if a color is still active.
// ColorModeNone emits no color escapes at all.
func (c *DotCanvas) AppendFrame(dst []byte, header string) []byte {
	dst = append(dst, terminal.SeqHome...)
	dst = append(dst, terminal.SeqClearToEnd...)
	if header != "" {
		dst = append(dst, terminal.SeqReset...)
		dst = append(dst, header...)
		dst = append(dst, '\n')
	}

	colored := c.mode != terminal.ColorModeNone

	for r := 0; r < c.rows; r++ {
		active := false
		var prev terminal.RGB
		var prevIdx uint8

		row := r * c.cols
		for col := 0; col < c.cols; col++ {
			i := row + col
			m := c.mask[i]

			if m == 0 {
				if active {
					dst = append(dst, terminal.SeqReset...)
					active = false
				}
				dst = append(dst, ' ')
				continue
			}

			if colored {
				dst = c.appendColor(dst, c.color[i], &active, &prev, &prevIdx)
			}
			dst = appendGlyph(dst, m)
		}

		if active {
			dst = append(dst, terminal.SeqReset...)
		}
		dst = append(dst, '\n')
	}
	return dst
}

// appendColor emits a foreground escape when the cell color differs from the active one
func (c *DotCanvas) appendColor(dst []byte, col terminal.RGB, active *bool, prev *terminal.RGB, prevIdx *uint8) []byte {
	if c.mode == terminal.ColorMode256 {
		idx := terminal.RGBTo256(col)
		if *active && idx == *prevIdx {
			return dst
		}
		*prevIdx = idx
		*active = true
		return terminal.AppendFg256(dst, idx)
	}

	if *active && col == *prev {
		return dst
	}
	*prev = col
	*active = true
	return terminal.AppendFg24(dst, col)
}

// appendGlyph appends the 3-byte UTF-8 encoding of U+2800+m
func appendGlyph(dst []byte, m uint8) []byte {
	r := rune(glyphBase) + rune(m)
	return append(dst,
		byte(0xe0|(r>>12)),
		byte(0x80|((r>>6)&0x3f)),
		byte(0x80|(r&0x3f)),
	)
}

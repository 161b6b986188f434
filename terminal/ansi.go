package terminal

// Pre-allocated ANSI sequences (avoid allocations during render)
const (
	SeqHideCursor   = "\x1b[?25l"
	SeqShowCursor   = "\x1b[?25h"
	SeqAltScreenOn  = "\x1b[?1049h"
	SeqAltScreenOff = "\x1b[?1049l"
	SeqHome         = "\x1b[H"
	SeqClearToEnd   = "\x1b[0J"
	SeqReset        = "\x1b[0m"

	// DECAWM: ?7l disables wrapping, preventing scroll when writing to the bottom-right corner
	SeqAutoWrapOn  = "\x1b[?7h"
	SeqAutoWrapOff = "\x1b[?7l"

	// Reset to Initial State (emergency)
	seqRIS = "\x1bc"
)

// Color prefixes
const (
	seqFgRGB = "\x1b[38;2;" // followed by R;G;B;m
	seqFg256 = "\x1b[38;5;" // followed by N;m
)

// AppendFg24 appends a 24-bit foreground color sequence
func AppendFg24(dst []byte, c RGB) []byte {
	dst = append(dst, seqFgRGB...)
	dst = appendInt(dst, int(c.R))
	dst = append(dst, ';')
	dst = appendInt(dst, int(c.G))
	dst = append(dst, ';')
	dst = appendInt(dst, int(c.B))
	return append(dst, 'm')
}

// AppendFg256 appends a 256-palette foreground color sequence
func AppendFg256(dst []byte, index uint8) []byte {
	dst = append(dst, seqFg256...)
	dst = appendInt(dst, int(index))
	return append(dst, 'm')
}

// Fg24 returns the 24-bit foreground sequence as a string, for non-hot paths (HUD text)
func Fg24(c RGB) string {
	var buf [20]byte
	return string(AppendFg24(buf[:0], c))
}

// appendInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Terminal provides low-level terminal access for a full-screen frame stream
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// ColorMode returns the color capability frames should be encoded for
	ColorMode() ColorMode

	// WriteFrame writes a fully encoded frame in one write
	WriteFrame(frame []byte) error

	// Events delivers key, resize and input-closed events
	Events() <-chan Event
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend   Backend
	colorMode ColorMode
	input     *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a new Terminal; ColorModeNone disables color escapes
func New(colorMode ColorMode) Terminal {
	b := newBackend()
	return &termImpl{
		backend:   b,
		colorMode: colorMode,
		input:     newInputReader(b),
	}
}

// Init enters raw mode and sets up the screen
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.backend.SetResizeHandler(func(w, h int) {
		t.input.sendEvent(Event{Type: EventResize, Width: w, Height: h})
	})

	// Auto-wrap off keeps a full last row from scrolling the screen
	t.writeRaw(SeqAltScreenOn + SeqHideCursor + SeqAutoWrapOff + SeqHome + SeqClearToEnd)

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()

	// Re-enable auto-wrap after leaving the alt screen so the main buffer wraps again
	t.writeRaw(SeqReset + SeqShowCursor + SeqAltScreenOff + SeqAutoWrapOn)

	t.backend.Fini()
	t.finalized = true
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) ColorMode() ColorMode {
	return t.colorMode
}

// WriteFrame is a no-op outside the Init/Fini window
func (t *termImpl) WriteFrame(frame []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	_, err := t.backend.Write(frame)
	return err
}

func (t *termImpl) Events() <-chan Event {
	return t.input.eventCh
}

func (t *termImpl) writeRaw(s string) {
	t.backend.Write([]byte(s))
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	io.WriteString(w, SeqReset+SeqShowCursor+SeqAltScreenOff+SeqAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// recoverAndReset is deferred by terminal goroutines; a panic there leaves the tty unusable otherwise
func recoverAndReset(name string) {
	if r := recover(); r != nil {
		EmergencyReset(os.Stdout)
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", name, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}

package terminal

import (
	"errors"
	"sync"
	"time"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

var errInputClosed = errors.New("terminal input closed")

// inputReader turns raw stdin bytes into key events
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Stream assembly buffer, holds partial escape or UTF-8 sequences across reads
	buf []byte
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader and waits briefly for it to exit
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	select {
	case <-r.doneCh:
	case <-time.After(200 * time.Millisecond):
	}
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)
	defer recoverAndReset("INPUT READER")

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			if errors.Is(err, errInputClosed) {
				r.sendEvent(Event{Type: EventClosed})
			} else {
				r.sendEvent(Event{Type: EventError, Err: err})
			}
			return
		}

		if len(data) == 0 {
			// Poll timeout: a lone pending ESC is a standalone Escape key
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.sendEvent(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := r.parseInput(r.buf)
		if consumed > 0 {
			n := copy(r.buf, r.buf[consumed:])
			r.buf = r.buf[:n]
		}
	}
}

// parseInput emits events for complete sequences and returns bytes consumed
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			if i+1 >= n {
				return i
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ev.Key != KeyNone {
				r.sendEvent(ev)
			}
			i += consumed

		case b < 0x20:
			r.sendEvent(parseControl(b))
			i++

		case b == 0x7f:
			r.sendEvent(Event{Type: EventKey, Key: KeyBackspace})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			rn, size := utf8.DecodeRune(data[i:])
			if rn != utf8.RuneError {
				r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rn})
			}
			i += size
		}
	}
	return i
}

// parseEscape returns 0 when the sequence is incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch {
	case data[1] == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] < 0x20:
		ev := parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	case data[1] < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}
	return 2, Event{}
}

func parseCSI(data []byte) (int, Event) {
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	for end := 2; end < maxScan; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if key, mod, ok := lookupCSI(data[2 : end+1]); ok {
				return end + 1, Event{Type: EventKey, Key: key, Modifiers: mod}
			}
			// Unknown but well-formed, swallow it
			return end + 1, Event{}
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer only
			return 2, Event{}
		}
	}

	if len(data) >= 16 {
		return 2, Event{}
	}
	return 0, Event{}
}

func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Modifiers: mod}
	}
	return 3, Event{}
}

func parseControl(b byte) Event {
	switch b {
	case 0x03:
		return Event{Type: EventKey, Key: KeyCtrlC, Modifiers: ModCtrl}
	case 0x04:
		return Event{Type: EventKey, Key: KeyCtrlD, Modifiers: ModCtrl}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x0c:
		return Event{Type: EventKey, Key: KeyCtrlL, Modifiers: ModCtrl}
	case 0x1a:
		return Event{Type: EventKey, Key: KeyCtrlZ, Modifiers: ModCtrl}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	}
	return Event{Type: EventKey, Key: KeyCtrlOther, Rune: rune(b), Modifiers: ModCtrl}
}

// sendEvent drops the event when the consumer is behind
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
	}
}

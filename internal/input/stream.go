package input

import (
	"bufio"
	"context"
	"slices"
	"time"
)

// keyHoldDuration is how long a button counts as held after its last byte.
// Terminals never report releases, so key repeat keeps a button alive and
// silence past this window releases it. A lone ESC waits the same window for
// the rest of an escape sequence before it counts as cancel.
const keyHoldDuration = 150 * time.Millisecond

// maxEscapeLen bounds an unfinished escape sequence kept between polls.
const maxEscapeLen = 32

// Stream delivers input bytes via a channel and converts them into events.
type Stream struct {
	ch       chan byte
	lastSeen [numButtons]time.Time
	held     [numButtons]bool
	quit     bool

	// pending is an escape sequence cut off at the end of the last poll.
	pending      []byte
	pendingSince time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine stops when r fails or ctx is done; either way the
// stream reports quit.
func StartStream(ctx context.Context, r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return s
}

// Poll drains all available bytes (non-blocking) and returns the key events
// they produce, followed by releases for buttons whose hold window expired.
// It reports whether any byte arrived.
func (s *Stream) Poll(now time.Time) ([]Event, bool) {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.quit = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	return s.parse(buf, now), len(buf) > 0
}

// Quit reports whether the user asked to quit or the input closed.
func (s *Stream) Quit() bool {
	return s.quit
}

// parse turns raw bytes into events. Arrow keys arrive as ESC [ A..D or
// ESC O A..D; other complete escape sequences are ignored. An escape sequence
// cut off at the end of buf is kept for the next call.
func (s *Stream) parse(buf []byte, now time.Time) []Event {
	var events []Event
	press := func(b Button) {
		s.lastSeen[b] = now
		s.held[b] = true
		events = append(events, Event{Kind: KeyDown, Button: b})
	}

	carried := len(s.pending) > 0
	since := s.pendingSince
	if carried {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			n, btn, ok := escapeSequence(buf[i:])
			switch {
			case n == 0:
				s.pending = slices.Clone(buf[i:])
				s.pendingSince = now
				if i == 0 && carried {
					s.pendingSince = since
				}
				i = len(buf)
				continue
			case ok:
				press(btn)
			case n == 1:
				// ESC followed by an ordinary byte.
				press(ButtonCancel)
			}
			i += n - 1
			continue
		}

		if b == 'q' || b == 'Q' {
			s.quit = true
			continue
		}
		if btn, ok := byteButton(b); ok {
			press(btn)
		}
	}

	if len(s.pending) > 0 && now.Sub(s.pendingSince) >= keyHoldDuration {
		if len(s.pending) == 1 {
			press(ButtonCancel)
		}
		s.pending = nil
	}

	for btn := range numButtons {
		if s.held[btn] && now.Sub(s.lastSeen[btn]) >= keyHoldDuration {
			s.held[btn] = false
			events = append(events, Event{Kind: KeyUp, Button: btn})
		}
	}
	return events
}

// escapeSequence measures the escape sequence at the start of seq, which
// begins with ESC. It returns the bytes consumed and the arrow button, if the
// sequence is one. n is 0 when the sequence is not finished yet and 1 when
// ESC is not followed by '[' or 'O'.
func escapeSequence(seq []byte) (n int, btn Button, ok bool) {
	if len(seq) < 2 {
		return 0, 0, false
	}

	switch seq[1] {
	case '[':
		// CSI: parameter and intermediate bytes, then one final byte.
		j := 2
		for j < len(seq) && seq[j] >= 0x20 && seq[j] <= 0x3f {
			j++
		}
		if j == len(seq) {
			if len(seq) >= maxEscapeLen {
				return len(seq), 0, false
			}
			return 0, 0, false
		}
		if seq[j] < 0x40 || seq[j] > 0x7e {
			return j, 0, false
		}
		btn, ok = arrowButton(seq[j])
		return j + 1, btn, ok
	case 'O':
		// SS3: exactly one final byte.
		if len(seq) < 3 {
			return 0, 0, false
		}
		btn, ok = arrowButton(seq[2])
		return 3, btn, ok
	}
	return 1, 0, false
}

func arrowButton(code byte) (Button, bool) {
	switch code {
	case 'A':
		return ButtonUp, true
	case 'B':
		return ButtonDown, true
	case 'C':
		return ButtonRight, true
	case 'D':
		return ButtonLeft, true
	}
	return 0, false
}

func byteButton(b byte) (Button, bool) {
	switch b {
	case 'a', 'A', 'h', 'H':
		return ButtonLeft, true
	case 'd', 'D', 'l', 'L':
		return ButtonRight, true
	case 'w', 'W', 'k', 'K':
		return ButtonUp, true
	case 's', 'S', 'j', 'J':
		return ButtonDown, true
	}
	return 0, false
}

// Package input tracks the game's logical buttons and converts host key
// events into per-frame button state.
package input

// Button is a logical game button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonCancel
	numButtons
)

var buttonNames = [numButtons]string{"left", "right", "up", "down", "cancel"}

func (b Button) String() string {
	if b < 0 || b >= numButtons {
		return "unknown"
	}
	return buttonNames[b]
}

// EventKind distinguishes presses from releases.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
)

// Event is one key transition delivered by a host.
type Event struct {
	Kind   EventKind
	Button Button
}

// ButtonState is the held flag plus the number of presses seen this frame.
type ButtonState struct {
	Pressed bool
	Downs   uint8
}

// State holds every button's state for the current frame.
type State struct {
	buttons [numButtons]ButtonState
}

// Apply folds one event into the state. It reports false for buttons it
// does not know.
func (s *State) Apply(ev Event) bool {
	if ev.Button < 0 || ev.Button >= numButtons {
		return false
	}
	b := &s.buttons[ev.Button]
	switch ev.Kind {
	case KeyDown:
		b.Downs++
		b.Pressed = true
	case KeyUp:
		b.Pressed = false
	default:
		return false
	}
	return true
}

// Pressed reports whether a button is currently held.
func (s *State) Pressed(b Button) bool {
	return s.buttons[b].Pressed
}

// Downs returns the number of presses of a button since the last EndFrame.
func (s *State) Downs(b Button) uint8 {
	return s.buttons[b].Downs
}

// EndFrame resets the press counters; held flags persist.
func (s *State) EndFrame() {
	for i := range s.buttons {
		s.buttons[i].Downs = 0
	}
}

package game

import "unicode/utf8"

// Action represents a pilot input action.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit
	ActionToggleRenderer
	ActionScreenshot
)

// InputEvent carries a pilot action into the game loop.
type InputEvent struct {
	PilotID string
	Action  Action
}

// Input returns the control bit for a direction action, or 0.
func (a Action) Input() Input {
	switch a {
	case ActionUp:
		return InputUp
	case ActionDown:
		return InputDown
	case ActionLeft:
		return InputLeft
	case ActionRight:
		return InputRight
	}
	return 0
}

// ParseKeys converts raw terminal bytes into actions.
// Handles WASD, arrow key escape sequences, R, P, Q, and Ctrl-C.
func ParseKeys(data []byte) []Action {
	var actions []Action
	i := 0
	for i < len(data) {
		// Arrow keys, both CSI and SS3 (application cursor mode)
		if i+2 < len(data) && data[i] == 0x1b && (data[i+1] == '[' || data[i+1] == 'O') {
			switch data[i+2] {
			case 'A':
				actions = append(actions, ActionUp)
			case 'B':
				actions = append(actions, ActionDown)
			case 'C':
				actions = append(actions, ActionRight)
			case 'D':
				actions = append(actions, ActionLeft)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			actions = append(actions, ActionUp)
		case 's', 'S':
			actions = append(actions, ActionDown)
		case 'a', 'A':
			actions = append(actions, ActionLeft)
		case 'd', 'D':
			actions = append(actions, ActionRight)
		case 'r', 'R':
			actions = append(actions, ActionToggleRenderer)
		case 'p', 'P':
			actions = append(actions, ActionScreenshot)
		case 'q', 'Q':
			actions = append(actions, ActionQuit)
		case 3: // Ctrl-C
			actions = append(actions, ActionQuit)
		}
		i += size
	}
	return actions
}

// InputLatch turns key presses into a held Input mask. Terminals report key
// presses, not key state, so each press holds its direction for KeyHoldTicks;
// autorepeat keeps refreshing it while the key is down.
type InputLatch struct {
	hold [4]int
}

var latchBits = [4]Input{InputUp, InputDown, InputLeft, InputRight}

// Press latches the direction of a, if it has one.
func (l *InputLatch) Press(a Action) {
	bit := a.Input()
	for i, b := range latchBits {
		if b == bit {
			l.hold[i] = KeyHoldTicks
		}
	}
}

// Release drops every held direction.
func (l *InputLatch) Release() {
	l.hold = [4]int{}
}

// Tick returns the mask for this tick and ages every latched direction.
func (l *InputLatch) Tick() Input {
	var in Input
	for i, b := range latchBits {
		if l.hold[i] > 0 {
			in |= b
			l.hold[i]--
		}
	}
	return in
}

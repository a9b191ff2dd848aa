package game

const (
	TickRate      = 30 // ticks per second
	InputChanSize = 256
)

// SecsToTicks converts a duration in seconds to game ticks.
func SecsToTicks(s float64) int {
	t := int(s * TickRate)
	if t < 1 {
		t = 1
	}
	return t
}

// Timing constants, expressed in seconds and converted to ticks at init.
var (
	KeyHoldTicks   = SecsToTicks(0.55) // how long a key press stays held; covers the autorepeat delay
	StatusInterval = SecsToTicks(0.5)  // ticks between status line refreshes
)

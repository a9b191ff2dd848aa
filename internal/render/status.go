package render

import (
	"fmt"

	"flightsim/internal/game"
)

// StatusLine formats the one-line flight readout shown under the display.
func StatusLine(p game.PilotSnapshot, s Strategy, online int) string {
	cam := p.Camera
	return fmt.Sprintf("%s  ALT %3d  HDG %03d  PITCH %+4d  ROLL %+4d  [%s] %s  %d online  │  ←↑↓→/WASD fly  R renderer  Q quit",
		p.Name, cam.Altitude(), cam.Heading(), int8(cam.Pitch), int8(cam.Roll), p.Input, s, online)
}

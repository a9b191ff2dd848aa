package render

// Instrument panel geometry: two white panels in the bottom corners, framed
// by vertical bezel lines MFDWidth pixels in from each edge.
const (
	PanelWidth  = 38
	PanelHeight = 20
	PanelTop    = Height - 21
	LeftPanelX  = 1
	RightPanelX = Width - 39

	LeftBezelX  = MFDWidth
	RightBezelX = Width - MFDWidth
)

// DrawHUD stamps the cockpit overlay onto fb. It only touches pixels outside
// the scene region plus the bezel columns and the top row between them, so the
// result does not depend on the camera.
func DrawHUD(fb *Framebuffer) {
	// Everything below the scene starts black.
	for x := 0; x < Width; x++ {
		for page := ColumnHeight(x) / 8; page < Pages; page++ {
			fb.SetPage(page, x, 0)
		}
	}

	for y := PanelTop; y < PanelTop+PanelHeight; y++ {
		for x := 0; x < PanelWidth; x++ {
			fb.Set(LeftPanelX+x, y, true)
			fb.Set(RightPanelX+x, y, true)
		}
	}

	for _, x := range []int{LeftBezelX, RightBezelX} {
		fb.SetPage(0, x, 0x01)
		for page := 1; page < Pages; page++ {
			fb.SetPage(page, x, 0)
		}
	}

	for x := LeftBezelX + 1; x < RightBezelX; x++ {
		fb.Pix[x] &^= 0x01
	}
}

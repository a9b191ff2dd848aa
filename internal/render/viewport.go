package render

// Viewport places the display inside a terminal.
type Viewport struct {
	OffsetX, OffsetY int // top-left terminal cell of the display (0-based)
	Cols, Rows       int // display size in cells
	Scale            int // display pixels per cell column
}

// NewViewport centers the display in a termW×termH terminal, leaving
// StatusRows free at the bottom. When the terminal is too small the display is
// subsampled by a power of two.
func NewViewport(termW, termH int) Viewport {
	s := 1
	for s < 8 && (Width/s > termW || Height/(2*s) > termH-StatusRows) {
		s *= 2
	}
	cols, rows := Width/s, Height/(2*s)

	offX := (termW - cols) / 2
	offY := (termH - StatusRows - rows) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 0 {
		offY = 0
	}

	return Viewport{
		OffsetX: offX,
		OffsetY: offY,
		Cols:    cols,
		Rows:    rows,
		Scale:   s,
	}
}

// CellToPixels returns the display pixels shown in the upper and lower half of
// the cell at (col, row), relative to the viewport.
func (v Viewport) CellToPixels(col, row int) (x, top, bottom int) {
	return col * v.Scale, row * 2 * v.Scale, row*2*v.Scale + v.Scale
}

package render

import "strings"

// StatusRows is the number of terminal rows reserved below the display.
const StatusRows = 1

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// Panel colors: lit pixels glow pale blue like an OLED, unlit pixels are black.
var (
	litRGB  = [3]uint8{170, 220, 255}
	darkRGB = [3]uint8{0, 0, 0}
	// border around the display when the terminal is larger than it
	frameRGB = [3]uint8{10, 10, 15}
)

// Engine is a per-session double-buffer diff renderer. Each terminal cell shows
// two display rows with an upper half block: foreground is the top pixel and
// background the bottom one.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		firstFrame: true,
	}
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	return e
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI byte output for the current frame.
func (e *Engine) Render(fb *Framebuffer, status string, termW, termH int) string {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}

	bg := Cell{Ch: ' ', BgR: frameRGB[0], BgG: frameRGB[1], BgB: frameRGB[2]}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.next[y][x] = bg
		}
	}

	vp := NewViewport(termW, termH)
	for row := 0; row < vp.Rows; row++ {
		sy := vp.OffsetY + row
		if sy >= e.height-StatusRows {
			break
		}
		for col := 0; col < vp.Cols; col++ {
			sx := vp.OffsetX + col
			if sx >= e.width {
				break
			}
			px, top, bottom := vp.CellToPixels(col, row)
			fg := pixelRGB(fb.At(px, top))
			bgc := pixelRGB(fb.At(px, bottom))
			e.next[sy][sx] = Cell{
				Ch:  '▀',
				FgR: fg[0], FgG: fg[1], FgB: fg[2],
				BgR: bgc[0], BgG: bgc[1], BgB: bgc[2],
			}
		}
	}

	if e.height > 0 {
		e.drawStatus(status)
	}

	return e.flush()
}

func pixelRGB(on bool) [3]uint8 {
	if on {
		return litRGB
	}
	return darkRGB
}

// drawStatus fills the bottom row with the status text.
func (e *Engine) drawStatus(status string) {
	y := e.height - 1
	bgR, bgG, bgB := uint8(15), uint8(18), uint8(30)
	for x := 0; x < e.width; x++ {
		e.next[y][x] = Cell{Ch: ' ', BgR: bgR, BgG: bgG, BgB: bgB}
	}
	e.writeText(y, 1, e.width, status, 180, 180, 195, bgR, bgG, bgB, false)
}

// writeText writes colored text into a bounded region [col, maxCol). Returns the next column position.
func (e *Engine) writeText(row, col, maxCol int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bold bool) int {
	for _, r := range text {
		if col >= maxCol || col >= e.width {
			break
		}
		if row >= 0 && row < e.height && col >= 0 {
			e.next[row][col] = Cell{Ch: r, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB, Bold: bold}
		}
		col++
	}
	return col
}

// flush diffs current vs next, emits only changed cells and swaps buffers.
func (e *Engine) flush() string {
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

package render

const (
	// Width and Height are the display size in pixels.
	Width  = 128
	Height = 64
	// Pages is the number of 8-row bands in the page layout.
	Pages = Height / 8
)

// Framebuffer is a 1bpp monochrome display in SSD1306 page layout: byte
// page*Width+x holds column x of rows page*8 through page*8+7, with bit n
// (LSB first) being row page*8+n.
type Framebuffer struct {
	Pix [Width * Pages]byte
}

// NewFramebuffer returns a blank framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	fb.Pix = [Width * Pages]byte{}
}

// Set turns the pixel at (x, y) on or off. Out of range writes are ignored.
func (fb *Framebuffer) Set(x, y int, on bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	i := (y>>3)*Width + x
	bit := byte(1) << (y & 7)
	if on {
		fb.Pix[i] |= bit
	} else {
		fb.Pix[i] &^= bit
	}
}

// At reports whether the pixel at (x, y) is on.
func (fb *Framebuffer) At(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return fb.Pix[(y>>3)*Width+x]&(1<<(y&7)) != 0
}

// Page returns the byte for column x of a page.
func (fb *Framebuffer) Page(page, x int) byte {
	return fb.Pix[page*Width+x]
}

// SetPage writes the byte for column x of a page.
func (fb *Framebuffer) SetPage(page, x int, b byte) {
	fb.Pix[page*Width+x] = b
}

// Bytes returns the page-organized buffer, suitable for an SSD1306.
func (fb *Framebuffer) Bytes() []byte {
	return fb.Pix[:]
}

// Package capture turns framebuffers into images: upscaled PNG screenshots and
// numbered recording frames.
package capture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"flightsim/internal/render"
)

const (
	// ScreenshotName is the file written by Screenshot.
	ScreenshotName = "screenshot.png"
	// FramePattern names recording frames.
	FramePattern = "Frame%05d.png"

	// captionHeight is the strip added under the display when a caption is drawn.
	captionHeight = 16
)

var (
	lit   = color.Gray{Y: 0xFF}
	unlit = color.Gray{Y: 0x00}
)

// Image converts a framebuffer to a 128×64 grayscale image.
func Image(fb *render.Framebuffer) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, render.Width, render.Height))
	for y := 0; y < render.Height; y++ {
		for x := 0; x < render.Width; x++ {
			c := unlit
			if fb.At(x, y) {
				c = lit
			}
			img.SetGray(x, y, c)
		}
	}
	return img
}

// Upscale enlarges src by an integer factor with nearest-neighbour sampling so
// pixels stay crisp.
func Upscale(src image.Image, factor int) *image.Gray {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Captioned returns img with a black strip below it holding caption.
func Captioned(img image.Image, caption string) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()+captionHeight))
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)

	d := font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(lit),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, b.Dy()+captionHeight-4),
	}
	d.DrawString(caption)
	return out
}

// WritePNG encodes fb upscaled by scale.
func WritePNG(w io.Writer, fb *render.Framebuffer, scale int) error {
	return png.Encode(w, Upscale(Image(fb), scale))
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Screenshot saves fb as ScreenshotName in dir and returns the path.
func Screenshot(dir string, fb *render.Framebuffer, scale int) (string, error) {
	path := filepath.Join(dir, ScreenshotName)
	if err := SavePNG(path, Upscale(Image(fb), scale)); err != nil {
		return "", err
	}
	return path, nil
}

// Recorder writes consecutive frames as numbered PNGs.
type Recorder struct {
	dir   string
	scale int
	next  int
}

// NewRecorder creates dir if needed and starts numbering at 0.
func NewRecorder(dir string, scale int) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create recording dir: %w", err)
	}
	return &Recorder{dir: dir, scale: scale}, nil
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() int {
	return r.next
}

// Add writes fb as the next frame, with an optional caption strip, and returns
// its path.
func (r *Recorder) Add(fb *render.Framebuffer, caption string) (string, error) {
	var img image.Image = Upscale(Image(fb), r.scale)
	if caption != "" {
		img = Captioned(img, caption)
	}
	path := filepath.Join(r.dir, fmt.Sprintf(FramePattern, r.next))
	if err := SavePNG(path, img); err != nil {
		return "", err
	}
	r.next++
	return path, nil
}

package maps

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

var (
	// ErrTextureSize reports a texture whose dimensions do not match.
	ErrTextureSize = errors.New("texture size mismatch")
	// ErrTextureFormat reports texture data that cannot be read as levels.
	ErrTextureFormat = errors.New("bad texture format")
)

// GrayToLevel maps an 8-bit gray value to the nearest shade level.
func GrayToLevel(g uint8) byte {
	return byte((int(g)*MaxLevel + 127) / 255)
}

// LevelToGray maps a shade level to an 8-bit gray value.
func LevelToGray(l byte) uint8 {
	return uint8(int(l) * 255 / MaxLevel)
}

// LoadTexture reads a size×size grayscale PNG from disk.
func LoadTexture(path string, size int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	t, err := DecodeTexture(f, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadOr loads the texture at path, or returns def when path is empty.
func LoadOr(path string, size int, def *Texture) (*Texture, error) {
	if path == "" {
		return def, nil
	}
	return LoadTexture(path, size)
}

// DecodeTexture reads a size×size PNG, converting every pixel to gray and then
// to the nearest level.
func DecodeTexture(r io.Reader, size int) (*Texture, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTextureFormat, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != size || bounds.Dy() != size {
		return nil, fmt.Errorf("%w: expected %dx%d, got %dx%d", ErrTextureSize, size, size, bounds.Dx(), bounds.Dy())
	}

	data := make([]byte, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			data[y*size+x] = GrayToLevel(g.Y)
		}
	}
	return NewTexture(size, data)
}

// Image renders the texture as a grayscale image, one pixel per texel.
func (t *Texture) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, t.Size, t.Size))
	for i, v := range t.Data {
		img.Pix[i] = LevelToGray(v)
	}
	return img
}

// EncodePNG writes the texture as a grayscale PNG.
func (t *Texture) EncodePNG(w io.Writer) error {
	return png.Encode(w, t.Image())
}

// SaveTexture writes the texture to path as a grayscale PNG.
func SaveTexture(path string, t *Texture) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	if err := t.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

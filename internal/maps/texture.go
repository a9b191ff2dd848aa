// Package maps holds the two textures the flight renderer samples: the ground
// plane and the cloud plane. Both are small square grids of shade levels that
// tile the infinite planes.
package maps

import "fmt"

const (
	// GroundSize is the side of the ground texture in texels.
	GroundSize = 64
	// CloudSize is the side of the cloud texture in texels.
	CloudSize = 32
	// MaxLevel is the brightest shade level. Levels run 0 (black) to MaxLevel.
	MaxLevel = 4
	// TexelShift converts integer world units to texels: one texel covers
	// 1<<TexelShift world units.
	TexelShift = 4
)

// Texture is an immutable Size×Size grid of shade levels, row-major with
// Data[y*Size+x]. Size is a power of two so coordinates wrap with a mask.
type Texture struct {
	Size int
	Data []byte
}

var (
	ground = &Texture{Size: GroundSize, Data: groundData[:]}
	cloud  = &Texture{Size: CloudSize, Data: cloudData[:]}
)

// Ground returns the compiled-in ground texture. Callers must not modify it.
func Ground() *Texture { return ground }

// Cloud returns the compiled-in cloud texture. Callers must not modify it.
func Cloud() *Texture { return cloud }

// NewTexture validates data as a size×size level grid.
func NewTexture(size int, data []byte) (*Texture, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: size %d is not a power of two", ErrTextureSize, size)
	}
	if len(data) != size*size {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrTextureSize, len(data), size, size)
	}
	for i, v := range data {
		if v > MaxLevel {
			return nil, fmt.Errorf("%w: level %d at texel (%d,%d)", ErrTextureFormat, v, i%size, i/size)
		}
	}
	return &Texture{Size: size, Data: data}, nil
}

// Texel returns the level at (x, y), wrapping both coordinates.
func (t *Texture) Texel(x, y int) byte {
	m := t.Size - 1
	return t.Data[(y&m)*t.Size+(x&m)]
}

// Histogram counts the texels at each level.
func (t *Texture) Histogram() [MaxLevel + 1]int {
	var h [MaxLevel + 1]int
	for _, v := range t.Data {
		h[v]++
	}
	return h
}

package main

// ValueNoise is tileable 2D value noise on an integer lattice. Lattice values
// come from a seeded integer hash and are blended bilinearly, so the result
// is exact and identical on every platform.
type ValueNoise struct {
	seed   uint32
	period int // lattice cells per tile
	cell   int // texels per lattice cell
}

// NewValueNoise creates a noise layer that repeats every period*cell texels.
func NewValueNoise(seed uint32, period, cell int) ValueNoise {
	return ValueNoise{seed: seed, period: period, cell: cell}
}

// hash2 mixes a lattice point and seed into 32 bits.
func hash2(x, y int, seed uint32) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + seed*2246822519
	h = (h ^ h>>13) * 1274126177
	return h ^ h>>16
}

func (n ValueNoise) lattice(i, j int) int {
	return int(hash2(i%n.period, j%n.period, n.seed) & 255)
}

// At returns the noise value in [0, 255] at texel (x, y), x and y >= 0.
func (n ValueNoise) At(x, y int) int {
	c := n.cell
	i, fx := x/c, x%c
	j, fy := y/c, y%c
	top := n.lattice(i, j)*(c-fx) + n.lattice(i+1, j)*fx
	bottom := n.lattice(i, j+1)*(c-fx) + n.lattice(i+1, j+1)*fx
	return (top*(c-fy) + bottom*fy) / (c * c)
}

// Fractal sums octaves of value noise over a size×size tile. Each octave
// halves the cell size and the weight; the result stays in [0, 255].
func Fractal(size int, seed uint32, cell, octaves, x, y int) int {
	w := 1 << (octaves - 1)
	total, weights := 0, 0
	for o := 0; o < octaves; o++ {
		n := NewValueNoise(seed+uint32(o), size/cell, cell)
		total += n.At(x, y) * w
		weights += w
		cell /= 2
		w /= 2
	}
	return total / weights
}

// classify returns the index of the first threshold above v.
func classify(v int, thresholds []int) byte {
	for level, t := range thresholds {
		if v < t {
			return byte(level)
		}
	}
	return byte(len(thresholds))
}

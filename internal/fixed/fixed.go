// Package fixed implements the fixed-point scalars used by the flight renderer.
//
// Both widths share FracBits fractional bits, so a raw value r means r/64.
// Unit is the narrow width (int8 raw) used for view directions and rotation
// matrix entries. World is the wide width (int16 raw) used for positions and
// plane-intersection distances. World arithmetic wraps modulo 2^16 raw, which is
// 1024 world units: exactly one period of the ground texture, so the wrap acts
// as a toroidal world rather than an overflow.
//
// Arithmetic is provided as plain functions so the truncation and wrap behaviour
// is explicit at every call site.
package fixed

const (
	// FracBits is the number of fractional bits in every fixed-point scalar.
	FracBits = 6

	// OneUnit is 1.0 as a Unit.
	OneUnit Unit = 1 << FracBits
	// HalfUnit is 0.5 as a Unit.
	HalfUnit Unit = OneUnit / 2
)

// Unit is a narrow fixed-point scalar with range [-2, 2).
type Unit int8

// World is a wide fixed-point scalar with range [-512, 512).
type World int16

// UnitFromRaw wraps a raw int8 value.
func UnitFromRaw(raw int8) Unit { return Unit(raw) }

// UnitFromInt converts an integer, wrapping outside [-2, 2).
func UnitFromInt(i int) Unit { return Unit(i << FracBits) }

// Raw returns the underlying integer.
func (u Unit) Raw() int8 { return int8(u) }

// Widen converts to World without changing the value.
func (u Unit) Widen() World { return World(u) }

// WorldFromRaw wraps a raw int16 value.
func WorldFromRaw(raw int16) World { return World(raw) }

// WorldFromInt converts an integer number of world units, wrapping modulo 1024.
func WorldFromInt(i int) World { return World(i << FracBits) }

// Raw returns the underlying integer.
func (w World) Raw() int16 { return int16(w) }

// Int returns the integer part, rounding toward negative infinity.
func (w World) Int() int { return int(w) >> FracBits }

// Mul multiplies two Units. The product is shifted back by FracBits with an
// arithmetic shift (floor) and narrowed, wrapping on overflow.
func Mul(a, b Unit) Unit {
	return Unit((int(a) * int(b)) >> FracBits)
}

// Scale multiplies a World by a Unit factor, wrapping modulo 1024 world units.
func Scale(a Unit, b World) World {
	return World((int(a) * int(b)) >> FracBits)
}

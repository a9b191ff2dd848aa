// Package geom provides the fixed-point vectors and rotation matrices used by
// the camera and the ray caster.
package geom

import "flightsim/internal/fixed"

// Vec3U is a unit-scale vector, used for view directions.
type Vec3U struct {
	X, Y, Z fixed.Unit
}

// Vec3W is a world-scale vector, used for positions.
type Vec3W struct {
	X, Y, Z fixed.World
}

// Widen converts a unit-scale vector to world scale without changing its value.
func (v Vec3U) Widen() Vec3W {
	return Vec3W{X: v.X.Widen(), Y: v.Y.Widen(), Z: v.Z.Widen()}
}

// Add returns v + o, wrapping each component modulo 1024 world units.
func (v Vec3W) Add(o Vec3W) Vec3W {
	return Vec3W{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Lerp interpolates from a to b. t is a raw fraction where 64 means b.
func Lerp(a, b Vec3U, t fixed.Unit) Vec3U {
	return Vec3U{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
	}
}

func lerp(a, b, t fixed.Unit) fixed.Unit {
	s := int(fixed.OneUnit) - int(t)
	return fixed.Unit((int(a)*s + int(b)*int(t)) >> fixed.FracBits)
}

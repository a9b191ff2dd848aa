package game

import (
	"fmt"

	"flightsim/internal/fixed"
	"flightsim/internal/geom"
)

// Input is the level-triggered control mask sampled once per tick.
type Input uint8

const (
	InputUp Input = 1 << iota
	InputDown
	InputLeft
	InputRight
)

// String lists the held directions, e.g. "up+left", or "-" when none are held.
func (in Input) String() string {
	s := ""
	for _, d := range []struct {
		bit  Input
		name string
	}{
		{InputUp, "up"},
		{InputDown, "down"},
		{InputLeft, "left"},
		{InputRight, "right"},
	} {
		if in&d.bit == 0 {
			continue
		}
		if s != "" {
			s += "+"
		}
		s += d.name
	}
	if s == "" {
		return "-"
	}
	return s
}

// Altitude limits, in world units.
const (
	MinAltitude   = 1
	MaxAltitude   = 120
	StartAltitude = 75

	// maxTurn bounds the yaw change per tick caused by banking.
	maxTurn = 3
)

// StartPosition is where every new camera begins. 1024 wraps to 0, which is
// the same texel as 1024 on both textures.
func StartPosition() geom.Vec3W {
	return geom.Vec3W{
		X: fixed.WorldFromInt(1024),
		Y: fixed.WorldFromInt(StartAltitude),
		Z: fixed.WorldFromInt(1024),
	}
}

// Camera is the viewer: position, orientation angles and the matrices derived
// from them. Rotation maps camera space to world space and InvRotation is its
// transpose.
type Camera struct {
	Position    geom.Vec3W
	Rotation    geom.Matrix3
	InvRotation geom.Matrix3

	Pitch, Roll, Yaw fixed.Angle
}

// NewCamera returns a level camera at StartPosition heading along +Z.
func NewCamera() *Camera {
	return &Camera{
		Position:    StartPosition(),
		Rotation:    geom.Identity(),
		InvRotation: geom.Identity(),
	}
}

// Turn is the yaw change per tick produced by a bank angle: roll/8 with Go's
// truncating division, limited to ±3.
func Turn(roll fixed.Angle) fixed.Angle {
	t := int(int8(roll)) / 8
	if t > maxTurn {
		t = maxTurn
	} else if t < -maxTurn {
		t = -maxTurn
	}
	return fixed.Angle(t)
}

// Tick advances the camera by one frame under the given input: stick input
// changes pitch and roll, bank turns the heading, and the camera moves one
// unit along its forward vector.
func (c *Camera) Tick(in Input) {
	if in&InputDown != 0 {
		c.Pitch++
	}
	if in&InputUp != 0 {
		c.Pitch--
	}
	if in&InputLeft != 0 {
		c.Roll++
	}
	if in&InputRight != 0 {
		c.Roll--
	}

	c.Yaw += Turn(c.Roll)

	c.Rotation = geom.RotateZ(c.Roll).Mul(geom.RotateX(-c.Pitch)).Mul(geom.RotateY(-c.Yaw))
	c.InvRotation = c.Rotation.Transpose()

	c.Position = c.Position.Add(c.Rotation.Forward().Widen())

	lo, hi := fixed.WorldFromInt(MinAltitude), fixed.WorldFromInt(MaxAltitude)
	if c.Position.Y < lo {
		c.Position.Y = lo
	} else if c.Position.Y > hi {
		c.Position.Y = hi
	}
}

// Altitude returns the integer height above the ground plane.
func (c *Camera) Altitude() int {
	return c.Position.Y.Int()
}

// Heading returns the yaw in degrees, 0..359.
func (c *Camera) Heading() int {
	return int(c.Yaw) * 360 / 256
}

func (c *Camera) String() string {
	return fmt.Sprintf("pos=(%d,%d,%d) pitch=%d roll=%d yaw=%d",
		c.Position.X.Int(), c.Position.Y.Int(), c.Position.Z.Int(),
		int8(c.Pitch), int8(c.Roll), c.Yaw)
}

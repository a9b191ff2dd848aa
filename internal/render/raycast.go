package render

import (
	"fmt"
	"strings"

	"flightsim/internal/fixed"
	"flightsim/internal/game"
	"flightsim/internal/geom"
	"flightsim/internal/maps"
)

// Strategy selects how the scene is sampled.
type Strategy int

const (
	// Coarse samples every other pixel in both directions and fills each
	// 2×2 block through the primary dither pattern.
	Coarse Strategy = iota
	// Full samples every pixel.
	Full
)

func (s Strategy) String() string {
	switch s {
	case Coarse:
		return "coarse"
	case Full:
		return "full"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Toggle returns the other strategy.
func (s Strategy) Toggle() Strategy {
	if s == Coarse {
		return Full
	}
	return Coarse
}

// ParseStrategy parses "coarse" or "full".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "coarse":
		return Coarse, nil
	case "full":
		return Full, nil
	}
	return Coarse, fmt.Errorf("unknown renderer %q (want coarse or full)", s)
}

const (
	// CloudHeight is the altitude of the cloud plane in world units.
	CloudHeight = 128
	// SkyLevel is the shade of rays that hit neither plane.
	SkyLevel = 3
	// FlatGroundLevel is the shade of rays that graze the ground near the horizon.
	FlatGroundLevel = 2

	// horizon is the dead-zone threshold on a ray's vertical component.
	// Steeper rays intersect a plane; shallower downward rays are flat ground.
	horizon fixed.Unit = 4

	// SceneHeight is the number of rendered rows between the instrument panels.
	SceneHeight = Height - 16
	// MFDSceneHeight is the number of rendered rows above the instrument panels.
	MFDSceneHeight = Height - 24
	// MFDWidth is the width of each instrument panel column band.
	MFDWidth = 40

	// rowBias offsets the row alpha so the scene sits under the top rays.
	rowBias = 8
)

// ColumnHeight returns how many rows the renderer writes in column x. The
// outer columns are covered below by the instrument panels.
func ColumnHeight(x int) int {
	if x < MFDWidth || x >= Width-MFDWidth {
		return MFDSceneHeight
	}
	return SceneHeight
}

// Renderer draws the ground and cloud planes as seen from a camera. It keeps
// no per-frame state, so one Renderer may serve any number of cameras.
type Renderer struct {
	ground   *maps.Texture
	cloud    *maps.Texture
	strategy Strategy
}

// NewRenderer creates a renderer over the given textures.
func NewRenderer(ground, cloud *maps.Texture, strategy Strategy) *Renderer {
	return &Renderer{ground: ground, cloud: cloud, strategy: strategy}
}

// Strategy returns the sampling strategy.
func (r *Renderer) Strategy() Strategy {
	return r.strategy
}

// WithStrategy returns a copy of the renderer using s.
func (r *Renderer) WithStrategy(s Strategy) *Renderer {
	return &Renderer{ground: r.ground, cloud: r.cloud, strategy: s}
}

// Render overwrites the scene region of fb with the view from cam. Rows below
// ColumnHeight are left untouched for the HUD.
func (r *Renderer) Render(fb *Framebuffer, cam *game.Camera) {
	corners := cornerRays(cam.Rotation)
	if r.strategy == Full {
		r.renderFull(fb, cam, corners)
		return
	}
	r.renderCoarse(fb, cam, corners)
}

func (r *Renderer) renderCoarse(fb *Framebuffer, cam *game.Camera, corners [4]geom.Vec3U) {
	for x := 0; x < Width; x += 2 {
		top, bottom := columnRays(corners, x)
		pages := ColumnHeight(x) / 8
		for page := 0; page < pages; page++ {
			var left, right byte
			for k := 0; k < 4; k++ {
				y := page*8 + k*2
				level := r.Shade(cam, rowRay(top, bottom, y))
				bit := byte(1) << (k * 2)
				if level >= Primary[0] {
					left |= bit
				}
				if level >= Primary[1] {
					right |= bit
				}
				bit <<= 1
				if level >= Primary[2] {
					left |= bit
				}
				if level >= Primary[3] {
					right |= bit
				}
			}
			fb.SetPage(page, x, left)
			fb.SetPage(page, x+1, right)
		}
	}
}

func (r *Renderer) renderFull(fb *Framebuffer, cam *game.Camera, corners [4]geom.Vec3U) {
	for x := 0; x < Width; x++ {
		top, bottom := columnRays(corners, x)
		pages := ColumnHeight(x) / 8
		for page := 0; page < pages; page++ {
			var b byte
			for n := 0; n < 8; n++ {
				y := page*8 + n
				if r.Shade(cam, rowRay(top, bottom, y)) >= fullThreshold(x, y) {
					b |= 1 << n
				}
			}
			fb.SetPage(page, x, b)
		}
	}
}

// Shade classifies a world-space view direction and returns its level.
func (r *Renderer) Shade(cam *game.Camera, dir geom.Vec3U) uint8 {
	level := uint8(SkyLevel)
	if dir.Y < -horizon {
		dist := fixed.QuickDivide(cam.Position.Y, -dir.Y.Widen())
		level = sample(r.ground, cam.Position, dir, dist)
	} else if dir.Y < 0 {
		level = FlatGroundLevel
	}
	if dir.Y > horizon {
		dist := fixed.QuickDivide(fixed.WorldFromInt(CloudHeight)-cam.Position.Y, dir.Y.Widen())
		level = sample(r.cloud, cam.Position, dir, dist)
	}
	return level
}

// sample intersects the ray pos + dir·dist with a plane and reads the texel
// under the hit point.
func sample(tex *maps.Texture, pos geom.Vec3W, dir geom.Vec3U, dist fixed.World) uint8 {
	x := pos.X + fixed.Scale(dir.X, dist)
	z := pos.Z + fixed.Scale(dir.Z, dist)
	return tex.Texel(x.Int()>>maps.TexelShift, z.Int()>>maps.TexelShift)
}

// cornerRays returns the world-space view directions through the top-left,
// top-right, bottom-left and bottom-right corners of the view.
func cornerRays(rot geom.Matrix3) [4]geom.Vec3U {
	one, half := fixed.OneUnit, fixed.HalfUnit
	return [4]geom.Vec3U{
		rot.Rotate(geom.Vec3U{X: -one, Y: half, Z: one}),
		rot.Rotate(geom.Vec3U{X: one, Y: half, Z: one}),
		rot.Rotate(geom.Vec3U{X: -one, Y: -half, Z: one}),
		rot.Rotate(geom.Vec3U{X: one, Y: -half, Z: one}),
	}
}

// columnRays interpolates the top and bottom rays of column x.
func columnRays(corners [4]geom.Vec3U, x int) (top, bottom geom.Vec3U) {
	alpha := fixed.UnitFromRaw(int8(x / 2))
	return geom.Lerp(corners[0], corners[1], alpha), geom.Lerp(corners[2], corners[3], alpha)
}

// rowRay interpolates the ray of row y between a column's top and bottom rays.
func rowRay(top, bottom geom.Vec3U, y int) geom.Vec3U {
	return geom.Lerp(top, bottom, fixed.UnitFromRaw(int8(y+rowBias)))
}

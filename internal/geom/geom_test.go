package geom

import (
	"testing"

	"flightsim/internal/fixed"
)

// orthoTolerance is the largest deviation from the identity, in raw units, of
// Mᵀ·M over every reachable camera orientation.
const orthoTolerance = 10

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestElementaryRotationsAtZero(t *testing.T) {
	for name, m := range map[string]Matrix3{
		"x": RotateX(0),
		"y": RotateY(0),
		"z": RotateZ(0),
	} {
		if m != Identity() {
			t.Errorf("Rotate%s(0) = %v, want identity", name, m)
		}
	}
}

func TestTransposeIsInverse(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 5
	}
	for roll := 0; roll < 256; roll += step {
		for pitch := 0; pitch < 256; pitch += step {
			zx := RotateZ(fixed.Angle(roll)).Mul(RotateX(-fixed.Angle(pitch)))
			for yaw := 0; yaw < 256; yaw += step {
				m := zx.Mul(RotateY(-fixed.Angle(yaw)))
				for _, p := range []Matrix3{m.Transpose().Mul(m), m.Mul(m.Transpose())} {
					for i := 0; i < 3; i++ {
						for j := 0; j < 3; j++ {
							want := 0
							if i == j {
								want = int(fixed.OneUnit)
							}
							if d := abs(int(p[i][j]) - want); d > orthoTolerance {
								t.Fatalf("roll=%d pitch=%d yaw=%d: product[%d][%d] = %d, want %d±%d",
									roll, pitch, yaw, i, j, p[i][j], want, orthoTolerance)
							}
						}
					}
				}
			}
		}
	}
}

func TestForwardMatchesRotate(t *testing.T) {
	forward := Vec3U{Z: fixed.OneUnit}
	for a := 0; a < 256; a += 3 {
		m := RotateZ(fixed.Angle(a)).Mul(RotateX(fixed.Angle(a * 7))).Mul(RotateY(fixed.Angle(a * 13)))
		if got, want := m.Rotate(forward), m.Forward(); got != want {
			t.Errorf("angle %d: Rotate(forward) = %v, Forward() = %v", a, got, want)
		}
	}
}

func TestRotationSense(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
		in   Vec3U
		want Vec3U
	}{
		{
			name: "quarter yaw turns forward to -x",
			m:    RotateY(fixed.Angle(256 - 64)),
			in:   Vec3U{Z: fixed.OneUnit},
			want: Vec3U{X: -fixed.OneUnit},
		},
		{
			name: "quarter pitch turns forward up",
			m:    RotateX(fixed.Angle(256 - 64)),
			in:   Vec3U{Z: fixed.OneUnit},
			want: Vec3U{Y: fixed.OneUnit},
		},
		{
			name: "quarter roll lifts the right wing",
			m:    RotateZ(fixed.QuarterTurn),
			in:   Vec3U{X: fixed.OneUnit},
			want: Vec3U{Y: fixed.OneUnit},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Rotate(tt.in); got != tt.want {
				t.Errorf("Rotate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := Vec3U{X: -fixed.OneUnit, Y: fixed.HalfUnit, Z: fixed.OneUnit}
	b := Vec3U{X: fixed.OneUnit, Y: -fixed.HalfUnit, Z: fixed.OneUnit}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, fixed.OneUnit); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, want %v", got, b)
	}
	if got, want := Lerp(a, b, fixed.HalfUnit), (Vec3U{Z: fixed.OneUnit}); got != want {
		t.Errorf("Lerp(a, b, 0.5) = %v, want %v", got, want)
	}
}

func TestVec3WAddWraps(t *testing.T) {
	p := Vec3W{X: fixed.WorldFromInt(511)}
	got := p.Add(Vec3U{X: fixed.OneUnit}.Widen())
	if got.X != fixed.WorldFromInt(-512) {
		t.Errorf("511 + 1 = %d, want wrap to -512", got.X.Int())
	}
}

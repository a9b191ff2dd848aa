package game

import (
	"testing"

	"flightsim/internal/fixed"
	"flightsim/internal/geom"
)

func TestNewCamera(t *testing.T) {
	cam := NewCamera()
	want := geom.Vec3W{X: 0, Y: fixed.WorldFromInt(75), Z: 0}
	if cam.Position != want {
		t.Errorf("Position = %+v, want %+v (1024 wraps to 0)", cam.Position, want)
	}
	if cam.Rotation != geom.Identity() || cam.InvRotation != geom.Identity() {
		t.Errorf("rotation not identity: %v / %v", cam.Rotation, cam.InvRotation)
	}
	if cam.Pitch != 0 || cam.Roll != 0 || cam.Yaw != 0 {
		t.Errorf("angles = %d/%d/%d, want zero", cam.Pitch, cam.Roll, cam.Yaw)
	}
}

func TestTurn(t *testing.T) {
	tests := []struct {
		roll int8
		want int8
	}{
		{0, 0},
		{7, 0},
		{8, 1},
		{-7, 0},
		{-8, -1},
		{24, 3},
		{40, 3},
		{-40, -3},
		{127, 3},
		{-128, -3},
	}
	for _, tt := range tests {
		if got := int8(Turn(fixed.Angle(uint8(tt.roll)))); got != tt.want {
			t.Errorf("Turn(%d) = %d, want %d", tt.roll, got, tt.want)
		}
	}
}

func TestTickLevelFlightMovesForward(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 10; i++ {
		cam.Tick(0)
	}
	if got, want := cam.Position.Z, fixed.WorldFromInt(10); got != want {
		t.Errorf("Z after 10 ticks = %d, want %d", got, want)
	}
	if cam.Position.X != 0 || cam.Position.Y != fixed.WorldFromInt(StartAltitude) {
		t.Errorf("level flight drifted: %+v", cam.Position)
	}
}

func TestTickStickDirections(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		pitch int8
		roll  int8
	}{
		{"down", InputDown, 1, 0},
		{"up", InputUp, -1, 0},
		{"left", InputLeft, 0, 1},
		{"right", InputRight, 0, -1},
		{"up and down cancel", InputUp | InputDown, 0, 0},
		{"down and left", InputDown | InputLeft, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera()
			cam.Tick(tt.in)
			if int8(cam.Pitch) != tt.pitch || int8(cam.Roll) != tt.roll {
				t.Errorf("pitch/roll = %d/%d, want %d/%d", int8(cam.Pitch), int8(cam.Roll), tt.pitch, tt.roll)
			}
		})
	}
}

func TestDownRaisesNose(t *testing.T) {
	cam := NewCamera()
	cam.Tick(InputDown)
	if f := cam.Rotation.Forward(); f.Y <= 0 {
		t.Errorf("forward after pulling back = %+v, want climbing", f)
	}
	if cam.Position.Y <= fixed.WorldFromInt(StartAltitude) {
		t.Errorf("altitude did not increase: %d", cam.Position.Y)
	}
}

func TestLeftBanksAndTurnsLeft(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 40; i++ {
		cam.Tick(InputLeft)
	}
	if int8(cam.Roll) != 40 {
		t.Fatalf("roll = %d, want 40", int8(cam.Roll))
	}
	// roll 8..15 turns 1, 16..23 turns 2, 24..40 turns 3
	if want := fixed.Angle(8*1 + 8*2 + 17*3); cam.Yaw != want {
		t.Errorf("yaw = %d, want %d", cam.Yaw, want)
	}
	if cam.Position.X >= 0 {
		t.Errorf("X = %d, want drift to negative X when turning left", cam.Position.X)
	}
}

func TestInvRotationIsTranspose(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 100; i++ {
		cam.Tick(InputDown | InputRight)
		if cam.InvRotation != cam.Rotation.Transpose() {
			t.Fatalf("tick %d: InvRotation is not the transpose", i)
		}
	}
}

func TestAltitudeClamp(t *testing.T) {
	t.Run("ceiling", func(t *testing.T) {
		cam := NewCamera()
		cam.Position.Y = fixed.WorldFromInt(MaxAltitude)
		cam.Pitch = 63
		cam.Tick(InputDown) // pitch 64: straight up
		if cam.Position.Y != fixed.WorldFromInt(MaxAltitude) {
			t.Errorf("Y = %d, want clamp at %d", cam.Position.Y.Int(), MaxAltitude)
		}
	})
	t.Run("floor", func(t *testing.T) {
		cam := NewCamera()
		cam.Position.Y = fixed.WorldFromInt(MinAltitude)
		cam.Pitch = fixed.Angle(256 - 63)
		cam.Tick(InputUp) // pitch -64: straight down
		if cam.Position.Y != fixed.WorldFromInt(MinAltitude) {
			t.Errorf("Y = %d, want clamp at %d", cam.Position.Y.Int(), MinAltitude)
		}
	})
	t.Run("long dive", func(t *testing.T) {
		cam := NewCamera()
		for i := 0; i < 2000; i++ {
			cam.Tick(InputUp)
			if y := cam.Position.Y.Int(); y < MinAltitude || y > MaxAltitude {
				t.Fatalf("tick %d: altitude %d out of range", i, y)
			}
		}
	})
}

func TestInputString(t *testing.T) {
	tests := []struct {
		in   Input
		want string
	}{
		{0, "-"},
		{InputUp, "up"},
		{InputDown | InputLeft, "down+left"},
		{InputUp | InputDown | InputLeft | InputRight, "up+down+left+right"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Input(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

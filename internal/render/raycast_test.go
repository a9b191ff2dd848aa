package render

import (
	"bytes"
	"testing"

	"flightsim/internal/fixed"
	"flightsim/internal/game"
	"flightsim/internal/geom"
	"flightsim/internal/maps"
)

func uniform(t *testing.T, size int, level byte) *maps.Texture {
	t.Helper()
	data := bytes.Repeat([]byte{level}, size*size)
	tex, err := maps.NewTexture(size, data)
	if err != nil {
		t.Fatal(err)
	}
	return tex
}

func renderFrame(r *Renderer, cam *game.Camera) *Framebuffer {
	fb := NewFramebuffer()
	r.Render(fb, cam)
	DrawHUD(fb)
	return fb
}

func TestRenderCenterColumnBytes(t *testing.T) {
	cam := game.NewCamera()

	tests := []struct {
		strategy Strategy
		page     int
		x        int
		mask     byte
		want     byte
	}{
		// rows 24..28: sky, then the flat-ground dead zone
		{Coarse, 3, 64, 0x3F, 0x15},
		{Coarse, 3, 65, 0x3F, 0x2B},
		// rows 20..23: sky just above the horizon
		{Coarse, 2, 64, 0xF0, 0x50},
		{Coarse, 2, 65, 0xF0, 0xF0},

		{Full, 3, 64, 0x1F, 0x0A},
		{Full, 3, 65, 0x1F, 0x15},
		{Full, 2, 64, 0xF0, 0xA0},
		{Full, 2, 65, 0xF0, 0xF0},
	}
	for _, tt := range tests {
		fb := renderFrame(NewRenderer(maps.Ground(), maps.Cloud(), tt.strategy), cam)
		if got := fb.Page(tt.page, tt.x) & tt.mask; got != tt.want {
			t.Errorf("%s page %d column %d: %#02x & %#02x = %#02x, want %#02x",
				tt.strategy, tt.page, tt.x, fb.Page(tt.page, tt.x), tt.mask, got, tt.want)
		}
	}
}

func TestShadeClassification(t *testing.T) {
	ground := uniform(t, maps.GroundSize, 0)
	cloud := uniform(t, maps.CloudSize, 4)
	r := NewRenderer(ground, cloud, Coarse)
	cam := game.NewCamera()

	tests := []struct {
		name string
		y    int8
		want uint8
	}{
		{"steep down hits ground", -40, 0},
		{"just below threshold hits ground", -5, 0},
		{"threshold is dead zone", -4, FlatGroundLevel},
		{"dead zone", -1, FlatGroundLevel},
		{"level is sky", 0, SkyLevel},
		{"threshold up is sky", 4, SkyLevel},
		{"just above threshold hits cloud", 5, 4},
		{"steep up hits cloud", 60, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := geom.Vec3U{Y: fixed.UnitFromRaw(tt.y), Z: fixed.OneUnit}
			if got := r.Shade(cam, dir); got != tt.want {
				t.Errorf("Shade(y=%d) = %d, want %d", tt.y, got, tt.want)
			}
		})
	}
}

func TestShadeCloudPeriod(t *testing.T) {
	r := NewRenderer(maps.Ground(), maps.Cloud(), Coarse)
	a := game.NewCamera()
	b := game.NewCamera()
	b.Position.X += fixed.WorldFromInt(maps.CloudSize << maps.TexelShift)
	b.Position.Z -= fixed.WorldFromInt(3 * maps.CloudSize << maps.TexelShift)

	for y := 5; y < 100; y++ {
		for x := -64; x <= 64; x += 8 {
			dir := geom.Vec3U{X: fixed.UnitFromRaw(int8(x)), Y: fixed.UnitFromRaw(int8(y)), Z: fixed.OneUnit}
			if ra, rb := r.Shade(a, dir), r.Shade(b, dir); ra != rb {
				t.Fatalf("dir (%d,%d): shade %d vs %d one cloud period away", x, y, ra, rb)
			}
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	for _, s := range []Strategy{Coarse, Full} {
		r := NewRenderer(maps.Ground(), maps.Cloud(), s)
		cam := game.NewCamera()
		for i := 0; i < 50; i++ {
			cam.Tick(game.InputLeft | game.InputDown)
		}
		first := renderFrame(r, cam)
		second := NewFramebuffer()
		second.Pix = first.Pix
		r.Render(second, cam)
		DrawHUD(second)
		if first.Pix != second.Pix {
			t.Errorf("%s: re-render over the same frame changed it", s)
		}
		if third := renderFrame(r, cam); third.Pix != first.Pix {
			t.Errorf("%s: render into a fresh buffer differs", s)
		}
	}
}

func TestRenderLeavesBelowSceneUntouched(t *testing.T) {
	r := NewRenderer(maps.Ground(), maps.Cloud(), Full)
	fb := NewFramebuffer()
	for i := range fb.Pix {
		fb.Pix[i] = 0xA5
	}
	r.Render(fb, game.NewCamera())
	for x := 0; x < Width; x++ {
		for page := ColumnHeight(x) / 8; page < Pages; page++ {
			if fb.Page(page, x) != 0xA5 {
				t.Fatalf("column %d page %d overwritten", x, page)
			}
		}
	}
}

func TestStrategiesAgreeOnBlockCoverage(t *testing.T) {
	ground := uniform(t, maps.GroundSize, 3)
	cloud := uniform(t, maps.CloudSize, 3)
	cam := game.NewCamera()

	for _, s := range []Strategy{Coarse, Full} {
		fb := NewFramebuffer()
		NewRenderer(ground, cloud, s).Render(fb, cam)
		for x := 0; x < Width; x += 2 {
			for y := 0; y < ColumnHeight(x); y += 2 {
				if y >= 24 && y < 30 {
					continue // blocks straddling the dead zone
				}
				lit := 0
				for _, p := range [][2]int{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}} {
					if fb.At(p[0], p[1]) {
						lit++
					}
				}
				if lit != 3 {
					t.Fatalf("%s: block (%d,%d) has %d lit pixels, want 3 for level 3", s, x, y, lit)
				}
			}
		}
	}
}

func TestColumnHeight(t *testing.T) {
	tests := []struct {
		x, want int
	}{
		{0, 40}, {39, 40}, {40, 48}, {64, 48}, {87, 48}, {88, 40}, {127, 40},
	}
	for _, tt := range tests {
		if got := ColumnHeight(tt.x); got != tt.want {
			t.Errorf("ColumnHeight(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"", Coarse, false},
		{"coarse", Coarse, false},
		{"FULL", Full, false},
		{" full ", Full, false},
		{"fast", Coarse, true},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, %v", tt.in, got, err)
		}
	}
	if Coarse.Toggle() != Full || Full.Toggle() != Coarse {
		t.Error("Toggle does not alternate")
	}
}

func TestDitherMatrices(t *testing.T) {
	if Primary.Threshold(0, 0) != 1 || Primary.Threshold(1, 0) != 3 ||
		Primary.Threshold(0, 1) != 4 || Primary.Threshold(1, 1) != 2 {
		t.Errorf("Primary thresholds = %v", Primary)
	}
	for dx := 0; dx < 2; dx++ {
		if Secondary.Threshold(dx, 0) != Primary.Threshold(dx, 1) || Secondary.Threshold(dx, 1) != Primary.Threshold(dx, 0) {
			t.Errorf("Secondary is not Primary with rows swapped")
		}
	}
	for level := uint8(0); level <= maps.MaxLevel; level++ {
		lit := 0
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				if level >= fullThreshold(x, y) {
					lit++
				}
				if Primary.Lit(level, x, y) {
					lit += 10
				}
			}
		}
		if want := int(level) * 11; lit != want {
			t.Errorf("level %d: coverage %d, want %d", level, lit, want)
		}
	}
}

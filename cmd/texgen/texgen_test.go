package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"flightsim/internal/maps"
)

func TestSeedOneMatchesCompiledTextures(t *testing.T) {
	ground, cloud := Generate(1)
	if !bytes.Equal(ground, maps.Ground().Data) {
		t.Error("seed 1 ground differs from the compiled-in texture")
	}
	if !bytes.Equal(cloud, maps.Cloud().Data) {
		t.Error("seed 1 cloud differs from the compiled-in texture")
	}
}

func TestSourceMatchesGeneratedFile(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "internal", "maps", "textures_gen.go"))
	if err != nil {
		t.Skip(err)
	}
	ground, cloud := Generate(1)
	got, err := Source(1, ground, cloud)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("textures_gen.go is stale; rerun texgen -seed 1")
	}
}

func TestNoiseTiles(t *testing.T) {
	tests := []struct {
		name       string
		size, cell int
	}{
		{"ground", maps.GroundSize, groundCell},
		{"cloud", maps.CloudSize, cloudCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for y := 0; y < tt.size; y++ {
				for x := 0; x < tt.size; x++ {
					a := Fractal(tt.size, 7, tt.cell, octaves, x, y)
					b := Fractal(tt.size, 7, tt.cell, octaves, x+tt.size, y+tt.size)
					if a != b {
						t.Fatalf("(%d,%d) = %d but one tile over = %d", x, y, a, b)
					}
					if a < 0 || a > 255 {
						t.Fatalf("(%d,%d) = %d out of range", x, y, a)
					}
				}
			}
		})
	}
}

func TestLevelsInRange(t *testing.T) {
	for _, seed := range []uint32{1, 2, 99} {
		ground, cloud := Generate(seed)
		for i, v := range ground {
			if v > maps.MaxLevel {
				t.Fatalf("seed %d ground[%d] = %d", seed, i, v)
			}
		}
		for i, v := range cloud {
			if v < 2 || v > maps.MaxLevel {
				t.Fatalf("seed %d cloud[%d] = %d", seed, i, v)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		v    int
		want byte
	}{
		{0, 0}, {67, 0}, {68, 1}, {119, 2}, {150, 4}, {255, 4},
	}
	for _, tt := range tests {
		if got := classify(tt.v, groundThresholds); got != tt.want {
			t.Errorf("classify(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"flightsim/internal/maps"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools validate <texture-dir>")
			os.Exit(1)
		}
		os.Exit(runValidate(args[0]))
	case "viz":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools viz <texture>")
			os.Exit(1)
		}
		runViz(args[0])
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools stats <texture>")
			os.Exit(1)
		}
		runStats(args[0])
	case "all":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools all <texture-dir>")
			os.Exit(1)
		}
		os.Exit(runAll(args[0]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: maptools <command> <path>

A texture is a grayscale PNG, or "ground" / "cloud" for the compiled-in ones.

Commands:
  validate <texture-dir>   Validate ground.png and cloud.png in directory
  viz      <texture>       Render texture as shaded ASCII art
  stats    <texture>       Show level distribution
  all      <texture-dir>   Run validate + viz + stats for both textures`)
}

// loadTexture resolves a built-in name or reads a PNG at its own size.
func loadTexture(arg string) (*maps.Texture, error) {
	switch arg {
	case "ground":
		return maps.Ground(), nil
	case "cloud":
		return maps.Cloud(), nil
	}

	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	cfg, err := png.DecodeConfig(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", arg, maps.ErrTextureFormat, err)
	}
	return maps.LoadTexture(arg, cfg.Width)
}

// --- validate ---

// textureSpec describes the expected shape of one texture file.
type textureSpec struct {
	file     string
	size     int
	minLevel byte
}

var textureSpecs = []textureSpec{
	{"ground.png", maps.GroundSize, 0},
	// Clouds are never darker than the flat-ground shade.
	{"cloud.png", maps.CloudSize, 2},
}

func runValidate(dir string) int {
	errors := 0
	for _, ts := range textureSpecs {
		path := filepath.Join(dir, ts.file)
		fmt.Printf("Validating %s...\n", path)

		t, err := maps.LoadTexture(path, ts.size)
		if err != nil {
			fmt.Printf("  ERROR: %v\n", err)
			errors++
			continue
		}

		bad := 0
		for _, v := range t.Data {
			if v < ts.minLevel {
				bad++
			}
		}
		if bad > 0 {
			fmt.Printf("  ERROR: %d texels below level %d\n", bad, ts.minLevel)
			errors++
			continue
		}

		h := t.Histogram()
		fmt.Printf("  OK (%dx%d, levels %v)\n", t.Size, t.Size, h)
	}

	if errors > 0 {
		fmt.Printf("\n%d error(s) found\n", errors)
		return 1
	}
	fmt.Printf("\nAll %d textures valid\n", len(textureSpecs))
	return 0
}

// --- viz ---

// levelShades maps levels to 24-bit gray backgrounds.
var levelShades = [maps.MaxLevel + 1]int{16, 70, 128, 190, 245}

func runViz(arg string) {
	t, err := loadTexture(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%dx%d)\n", arg, t.Size, t.Size)

	for y := 0; y < t.Size; y++ {
		for x := 0; x < t.Size; x++ {
			g := levelShades[t.Texel(x, y)]
			fmt.Printf("\033[48;2;%d;%d;%dm  ", g, g, g)
		}
		fmt.Println("\033[0m")
	}
}

// --- stats ---

func runStats(arg string) {
	t, err := loadTexture(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	total := t.Size * t.Size
	fmt.Printf("%s (%dx%d = %d texels)\n\n", arg, t.Size, t.Size, total)

	sum := 0
	for level, count := range t.Histogram() {
		pct := float64(count) / float64(total) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Printf("  level %d %5d (%5.1f%%) %s\n", level, count, pct, bar)
		sum += level * count
	}

	fmt.Printf("\nMean level: %.2f\n", float64(sum)/float64(total))
	fmt.Printf("Lit under coarse dither: %.1f%%\n", float64(sum)/float64(total)*25)
}

// --- all ---

func runAll(dir string) int {
	// Run validate first
	fmt.Println("=== VALIDATE ===")
	code := runValidate(dir)
	if code != 0 {
		return code
	}

	// Then viz + stats for each texture
	for _, ts := range textureSpecs {
		path := filepath.Join(dir, ts.file)
		fmt.Printf("\n=== VIZ: %s ===\n", ts.file)
		runViz(path)
		fmt.Printf("\n=== STATS: %s ===\n", ts.file)
		runStats(path)
	}

	return 0
}

// Command texgen generates the compiled-in ground and cloud textures.
//
//	texgen [-seed N] [-out internal/maps/textures_gen.go] [-png dir] [-show]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"flightsim/internal/maps"
)

var (
	// groundThresholds split fractal noise into the five ground levels.
	groundThresholds = []int{68, 98, 120, 150}
	// cloudThresholds split cloud noise into three bands, mapped to levels 2..4.
	cloudThresholds = []int{78, 117}
)

const (
	groundCell   = 16
	cloudCell    = 8
	octaves      = 3
	cloudSeedOff = 100
)

// Generate builds both textures for seed.
func Generate(seed uint32) (ground, cloud []byte) {
	ground = make([]byte, maps.GroundSize*maps.GroundSize)
	for y := 0; y < maps.GroundSize; y++ {
		for x := 0; x < maps.GroundSize; x++ {
			n := Fractal(maps.GroundSize, seed, groundCell, octaves, x, y)
			ground[y*maps.GroundSize+x] = classify(n, groundThresholds)
		}
	}

	cloud = make([]byte, maps.CloudSize*maps.CloudSize)
	for y := 0; y < maps.CloudSize; y++ {
		for x := 0; x < maps.CloudSize; x++ {
			n := Fractal(maps.CloudSize, seed+cloudSeedOff, cloudCell, octaves, x, y)
			cloud[y*maps.CloudSize+x] = 2 + classify(n, cloudThresholds)
		}
	}
	return ground, cloud
}

// Source renders the textures as the generated Go file for package maps.
func Source(seed uint32, ground, cloud []byte) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by texgen -seed %d; DO NOT EDIT.\n\npackage maps\n\n", seed)
	writeArray(&b, "groundData", "GroundSize", maps.GroundSize, ground)
	b.WriteString("\n")
	writeArray(&b, "cloudData", "CloudSize", maps.CloudSize, cloud)
	return format.Source(b.Bytes())
}

func writeArray(b *bytes.Buffer, name, sizeConst string, size int, data []byte) {
	fmt.Fprintf(b, "var %s = [%s * %s]byte{\n", name, sizeConst, sizeConst)
	for y := 0; y < size; y++ {
		row := make([]string, size)
		for x := 0; x < size; x++ {
			row[x] = fmt.Sprint(data[y*size+x])
		}
		fmt.Fprintf(b, "\t%s,\n", strings.Join(row, ", "))
	}
	b.WriteString("}\n")
}

// preview draws a texture as ASCII, doubling columns so texels look square.
func preview(size int, data []byte, wide bool) string {
	const ramp = " .:*#"
	var sb strings.Builder
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := ramp[data[y*size+x]]
			sb.WriteByte(c)
			if wide {
				sb.WriteByte(c)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func main() {
	seed := flag.Uint("seed", 1, "noise seed")
	out := flag.String("out", filepath.Join("internal", "maps", "textures_gen.go"), "generated Go file (- for stdout, empty to skip)")
	pngDir := flag.String("png", "", "also write ground.png and cloud.png to this directory")
	show := flag.Bool("show", false, "print an ASCII preview to stderr")
	flag.Parse()

	ground, cloud := Generate(uint32(*seed))

	if *show {
		fmt.Fprint(os.Stderr, preview(maps.GroundSize, ground, false))
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, preview(maps.CloudSize, cloud, true))
	}

	g, err := maps.NewTexture(maps.GroundSize, ground)
	if err != nil {
		fatal(err)
	}
	c, err := maps.NewTexture(maps.CloudSize, cloud)
	if err != nil {
		fatal(err)
	}
	fmt.Fprintf(os.Stderr, "Seed %d: ground levels %v, cloud levels %v\n", *seed, g.Histogram(), c.Histogram())

	if *out != "" {
		src, err := Source(uint32(*seed), ground, cloud)
		if err != nil {
			fatal(err)
		}
		if *out == "-" {
			os.Stdout.Write(src)
		} else {
			if err := os.WriteFile(*out, src, 0o644); err != nil {
				fatal(err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", *out)
		}
	}

	if *pngDir != "" {
		if err := os.MkdirAll(*pngDir, 0o755); err != nil {
			fatal(err)
		}
		for name, t := range map[string]*maps.Texture{"ground.png": g, "cloud.png": c} {
			path := filepath.Join(*pngDir, name)
			if err := maps.SaveTexture(path, t); err != nil {
				fatal(err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

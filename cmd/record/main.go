// Command record flies a Lua autopilot headlessly and writes every frame as a
// numbered PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"flightsim/internal/autopilot"
	"flightsim/internal/capture"
	"flightsim/internal/config"
	"flightsim/internal/game"
	"flightsim/internal/render"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	script := flag.String("script", "", "autopilot Lua script (default: built-in circuit)")
	out := flag.String("out", "frames", "output directory")
	frames := flag.Int("frames", 300, "number of frames to record")
	every := flag.Int("every", 1, "record one frame every N ticks")
	scale := flag.Int("scale", 4, "PNG upscale factor")
	caption := flag.Bool("caption", true, "draw the flight readout under each frame")
	cfg := config.MustParse(nil)

	if *frames < 1 || *every < 1 {
		log.Fatalf("-frames and -every must be positive")
	}

	world, err := cfg.World()
	if err != nil {
		log.Fatalf("Texture error: %v", err)
	}

	var pilot *autopilot.Pilot
	if *script == "" {
		pilot, err = autopilot.New("built-in", autopilot.DefaultScript)
	} else {
		pilot, err = autopilot.Load(*script)
	}
	if err != nil {
		log.Fatalf("Autopilot error: %v", err)
	}
	defer pilot.Close()

	rec, err := capture.NewRecorder(*out, *scale)
	if err != nil {
		log.Fatalf("Recorder error: %v", err)
	}

	renderer := cfg.NewRenderer(world)
	fb := render.NewFramebuffer()
	cam := game.NewCamera()

	log.Printf("Recording %d frames with %s (%s renderer) to %s", *frames, pilot.Name(), cfg.Renderer, *out)
	for tick := uint64(0); rec.Frames() < *frames; tick++ {
		in, err := pilot.Control(tick, cam)
		if err != nil {
			log.Fatalf("Autopilot error at tick %d: %v", tick, err)
		}
		cam.Tick(in)
		if tick%uint64(*every) != 0 {
			continue
		}

		renderer.Render(fb, cam)
		render.DrawHUD(fb)

		text := ""
		if *caption {
			text = fmt.Sprintf("T%05d ALT %3d HDG %03d %s", tick, cam.Altitude(), cam.Heading(), in)
		}
		if _, err := rec.Add(fb, text); err != nil {
			log.Fatalf("Recorder error: %v", err)
		}
		if rec.Frames()%100 == 0 {
			fmt.Fprintf(os.Stderr, "  %d/%d frames\n", rec.Frames(), *frames)
		}
	}
	log.Printf("Wrote %d frames to %s", rec.Frames(), *out)
}

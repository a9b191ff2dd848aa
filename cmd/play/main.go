// Command play flies the simulator in the local terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"flightsim/internal/capture"
	"flightsim/internal/config"
	"flightsim/internal/game"
	"flightsim/internal/render"
)

const screenshotScale = 4

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	name := flag.String("name", os.Getenv("USER"), "pilot name shown in the status line")
	cfg := config.MustParse(nil)

	world, err := cfg.World()
	if err != nil {
		log.Fatalf("Texture error: %v", err)
	}

	inFd, outFd := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	if !term.IsTerminal(inFd) {
		log.Fatalf("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		log.Fatalf("Raw mode: %v", err)
	}

	msg, err := run(cfg, world, *name, outFd)

	// Restore before logging so the message lands on a clean line.
	term.Restore(inFd, oldState)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if msg != "" {
		log.Print(msg)
	}
}

func run(cfg config.Config, world *game.World, name string, outFd int) (string, error) {
	out := os.Stdout
	fmt.Fprint(out, render.EnableAltScreen()+render.HideCursor()+render.ClearScreen())
	defer fmt.Fprint(out, render.ShowCursor()+render.DisableAltScreen())

	keys := make(chan game.Action, game.InputChanSize)
	go readKeys(keys)

	renderer := cfg.NewRenderer(world)
	fb := render.NewFramebuffer()
	engine := render.NewEngine(80, 24)
	pilot := game.PilotSnapshot{ID: name, Name: name, Camera: *game.NewCamera()}
	var latch game.InputLatch
	var lastShot string

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case a, ok := <-keys:
			if !ok {
				return "", nil
			}
			switch a {
			case game.ActionQuit:
				return lastShot, nil
			case game.ActionToggleRenderer:
				renderer = renderer.WithStrategy(renderer.Strategy().Toggle())
			case game.ActionScreenshot:
				path, err := capture.Screenshot(".", fb, screenshotScale)
				if err != nil {
					return "", fmt.Errorf("screenshot: %w", err)
				}
				lastShot = "Screenshot saved to " + path
			default:
				latch.Press(a)
			}

		case <-ticker.C:
			pilot.Input = latch.Tick()
			pilot.Camera.Tick(pilot.Input)

			renderer.Render(fb, &pilot.Camera)
			render.DrawHUD(fb)

			w, h, err := term.GetSize(outFd)
			if err != nil {
				w, h = 80, 24
			}
			status := render.StatusLine(pilot, renderer.Strategy(), 1)
			if output := engine.Render(fb, status, w, h); output != "" {
				fmt.Fprint(out, output)
			}
		}
	}
}

// readKeys parses stdin into actions until it closes.
func readKeys(keys chan<- game.Action) {
	defer close(keys)
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		for _, a := range game.ParseKeys(buf[:n]) {
			select {
			case keys <- a:
			default:
			}
		}
	}
}

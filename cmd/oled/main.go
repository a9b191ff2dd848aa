//go:build tinygo && rp2040

// Command oled flies the simulator on an SSD1306 128×64 panel wired to an
// RP2040 board. The framebuffer's page layout is the panel's native layout,
// so frames are handed to the driver unchanged.
//
// Wiring: panel on I2C0 (SDA GP4, SCL GP5); buttons to ground on GP10 (up),
// GP11 (down), GP12 (left), GP13 (right) and GP14 (renderer toggle).
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"flightsim/internal/game"
	"flightsim/internal/render"
)

const panelAddress = 0x3C

var (
	buttonPins = [4]machine.Pin{machine.GP10, machine.GP11, machine.GP12, machine.GP13}
	buttonBits = [4]game.Input{game.InputUp, game.InputDown, game.InputLeft, game.InputRight}
	togglePin  = machine.GP14
)

func main() {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{SDA: machine.GP4, SCL: machine.GP5, Frequency: 400 * machine.KHz}); err != nil {
		fail("i2c: " + err.Error())
	}

	panel := ssd1306.NewI2C(i2c)
	panel.Configure(ssd1306.Config{Width: render.Width, Height: render.Height, Address: panelAddress})

	for _, p := range buttonPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	togglePin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	world := game.DefaultWorld()
	renderer := render.NewRenderer(world.Ground, world.Cloud, render.Coarse)
	fb := render.NewFramebuffer()
	cam := game.NewCamera()

	frame := time.Second / game.TickRate
	toggleWas := false
	for {
		start := time.Now()

		// Buttons are active low.
		var in game.Input
		for i, p := range buttonPins {
			if !p.Get() {
				in |= buttonBits[i]
			}
		}
		toggle := !togglePin.Get()
		if toggle && !toggleWas {
			renderer = renderer.WithStrategy(renderer.Strategy().Toggle())
		}
		toggleWas = toggle

		cam.Tick(in)
		renderer.Render(fb, cam)
		render.DrawHUD(fb)

		if err := panel.SetBuffer(fb.Bytes()); err != nil {
			fail("buffer: " + err.Error())
		}
		if err := panel.Display(); err != nil {
			println("display:", err.Error())
		}

		if d := time.Since(start); d < frame {
			time.Sleep(frame - d)
		}
	}
}

func fail(msg string) {
	for {
		println(msg)
		time.Sleep(time.Second)
	}
}

// Command desktop flies the simulator in a window, with beeper sounds.
//
// Keys: arrows or WASD fly, R switches renderer, M mutes, Tab fast-forwards,
// F12 saves a screenshot, F11 starts/stops recording frames, Esc quits.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"flightsim/internal/capture"
	"flightsim/internal/config"
	"flightsim/internal/game"
	"flightsim/internal/render"
	"flightsim/internal/tones"
)

const (
	statusHeight = 20
	captureScale = 4
	recordingDir = "recording"

	// groundWarningAltitude sounds the warning at or below this altitude.
	groundWarningAltitude = 12

	// fastForward is the number of ticks per frame while Tab is held.
	fastForward = 4
)

var (
	backgroundColor = color.RGBA{206, 221, 231, 255}
	statusColor     = color.RGBA{20, 24, 40, 255}
	textColor       = color.RGBA{170, 220, 255, 255}
)

type desktop struct {
	renderer *render.Renderer
	fb       *render.Framebuffer
	display  *ebiten.Image
	pixels   []byte
	scale    int

	pilot game.PilotSnapshot

	seq      *tones.Sequencer
	player   *oto.Player
	muted    bool
	recorder *capture.Recorder
	message  string
}

func newDesktop(cfg config.Config, world *game.World, scale int) *desktop {
	return &desktop{
		renderer: cfg.NewRenderer(world),
		fb:       render.NewFramebuffer(),
		display:  ebiten.NewImage(render.Width, render.Height),
		pixels:   make([]byte, render.Width*render.Height*4),
		scale:    scale,
		pilot:    game.PilotSnapshot{ID: "desktop", Name: "desktop", Camera: *game.NewCamera()},
		seq:      tones.NewSequencer(),
	}
}

// startAudio opens the output device. Failure leaves the desktop silent.
func (d *desktop) startAudio() {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   tones.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
	})
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		return
	}
	<-ready
	d.player = ctx.NewPlayer(d.seq)
	d.player.Play()
	d.seq.Play(tones.Startup)
}

// pollInput reads the held keys as an input mask.
func pollInput() game.Input {
	var in game.Input
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in |= game.InputUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in |= game.InputDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in |= game.InputLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in |= game.InputRight
	}
	return in
}

func (d *desktop) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.renderer = d.renderer.WithStrategy(d.renderer.Strategy().Toggle())
		d.seq.Play(tones.Click)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		d.muted = !d.muted
		d.seq.SetMuted(d.muted)
	}

	steps := 1
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		steps = fastForward
	}
	d.pilot.Input = pollInput()
	for i := 0; i < steps; i++ {
		d.pilot.Camera.Tick(d.pilot.Input)
	}
	if d.pilot.Camera.Altitude() <= groundWarningAltitude && !d.seq.Playing() {
		d.seq.Play(tones.GroundWarning)
	}

	d.renderer.Render(d.fb, &d.pilot.Camera)
	render.DrawHUD(d.fb)

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		path, err := capture.Screenshot(".", d.fb, captureScale)
		if err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		d.message = "saved " + path
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if err := d.toggleRecording(); err != nil {
			return err
		}
	}
	if d.recorder != nil {
		if _, err := d.recorder.Add(d.fb, ""); err != nil {
			return fmt.Errorf("record: %w", err)
		}
	}
	return nil
}

func (d *desktop) toggleRecording() error {
	if d.recorder != nil {
		d.message = fmt.Sprintf("recorded %d frames", d.recorder.Frames())
		log.Printf("Recording stopped after %d frames", d.recorder.Frames())
		d.recorder = nil
		return nil
	}
	rec, err := capture.NewRecorder(recordingDir, captureScale)
	if err != nil {
		return err
	}
	d.recorder = rec
	d.message = "recording"
	log.Printf("Recording to %s", recordingDir)
	return nil
}

func (d *desktop) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for y := 0; y < render.Height; y++ {
		for x := 0; x < render.Width; x++ {
			i := (y*render.Width + x) * 4
			v := byte(0)
			if d.fb.At(x, y) {
				v = 0xFF
			}
			d.pixels[i], d.pixels[i+1], d.pixels[i+2], d.pixels[i+3] = v, v, v, 0xFF
		}
	}
	d.display.WritePixels(d.pixels)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(d.scale), float64(d.scale))
	screen.DrawImage(d.display, opts)

	y := render.Height * d.scale
	w := render.Width * d.scale
	ebitenutil.DrawRect(screen, 0, float64(y), float64(w), statusHeight, statusColor)

	cam := d.pilot.Camera
	status := fmt.Sprintf("ALT %3d  HDG %03d  [%s] %s", cam.Altitude(), cam.Heading(), d.pilot.Input, d.renderer.Strategy())
	if d.muted {
		status += "  MUTED"
	}
	if d.message != "" {
		status += "  " + d.message
	}
	text.Draw(screen, status, basicfont.Face7x13, 6, y+14, textColor)
}

func (d *desktop) Layout(_, _ int) (int, int) {
	return render.Width * d.scale, render.Height*d.scale + statusHeight
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	scale := flag.Int("scale", 6, "window scale factor")
	silent := flag.Bool("silent", false, "disable audio")
	cfg := config.MustParse(nil)

	world, err := cfg.World()
	if err != nil {
		log.Fatalf("Texture error: %v", err)
	}

	d := newDesktop(cfg, world, *scale)
	if !*silent {
		d.startAudio()
	}

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(render.Width*(*scale), render.Height*(*scale)+statusHeight)
	ebiten.SetWindowTitle("flightsim")
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(d); err != nil {
		log.Fatalf("Desktop error: %v", err)
	}
}

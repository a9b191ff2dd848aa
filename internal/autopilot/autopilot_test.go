package autopilot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flightsim/internal/game"
)

func TestControlMasks(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   game.Input
	}{
		{"nothing", "function control(s) return 0 end", 0},
		{"left", "function control(s) return LEFT end", game.InputLeft},
		{"combined", "function control(s) return LEFT + DOWN end", game.InputLeft | game.InputDown},
		{"extra bits dropped", "function control(s) return 255 end", game.InputUp | game.InputDown | game.InputLeft | game.InputRight},
		{"reads state", "function control(s) if s.y == 75 and s.tick == 7 then return UP end return 0 end", game.InputUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.name, tt.script)
			if err != nil {
				t.Fatal(err)
			}
			defer p.Close()

			got, err := p.Control(7, game.NewCamera())
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Control = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateFields(t *testing.T) {
	p, err := New("fields", `
function control(s)
  if s.pitch ~= -3 then error("pitch " .. s.pitch) end
  if s.roll ~= 2 then error("roll " .. s.roll) end
  if s.x ~= 0 or s.z ~= 0 then error("position") end
  return 0
end`)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	cam := game.NewCamera()
	cam.Pitch = 253
	cam.Roll = 2
	if _, err := p.Control(0, cam); err != nil {
		t.Fatal(err)
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := New("empty", "x = 1"); !errors.Is(err, ErrNoControl) {
		t.Errorf("missing control: err = %v, want ErrNoControl", err)
	}
	if _, err := New("syntax", "function control("); err == nil {
		t.Error("syntax error not reported")
	}

	p, err := New("string", `function control(s) return "left" end`)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	if _, err := p.Control(0, game.NewCamera()); !errors.Is(err, ErrBadResult) {
		t.Errorf("string result: err = %v, want ErrBadResult", err)
	}

	boom, err := New("boom", `function control(s) error("boom") end`)
	if err != nil {
		t.Fatal(err)
	}
	defer boom.Close()
	if _, err := boom.Control(0, game.NewCamera()); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("runtime error: err = %v", err)
	}
}

func TestRunawayScriptTimesOut(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the call timeout")
	}
	p, err := New("loop", "function control(s) while true do end end")
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	if _, err := p.Control(0, game.NewCamera()); err == nil {
		t.Error("infinite loop returned without error")
	}
}

func TestDefaultScriptKeepsAltitude(t *testing.T) {
	p, err := New("default", DefaultScript)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	cam := game.NewCamera()
	sawLeft, sawRight := false, false
	for tick := uint64(0); tick < 1200; tick++ {
		in, err := p.Control(tick, cam)
		if err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
		sawLeft = sawLeft || in&game.InputLeft != 0
		sawRight = sawRight || in&game.InputRight != 0
		cam.Tick(in)
		if y := cam.Altitude(); y <= game.MinAltitude {
			t.Fatalf("tick %d: autopilot hit the ground", tick)
		}
	}
	if !sawLeft || !sawRight {
		t.Error("default script should bank both ways")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pilot.lua")
	if err := os.WriteFile(path, []byte("function control(s) return RIGHT end"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	if p.Name() != path {
		t.Errorf("Name = %q", p.Name())
	}
	if in, err := p.Control(0, game.NewCamera()); err != nil || in != game.InputRight {
		t.Errorf("Control = %v, %v", in, err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("missing file not reported")
	}
}

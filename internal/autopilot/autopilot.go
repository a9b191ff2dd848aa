// Package autopilot drives a camera from a Lua script. The script defines
//
//	function control(state) ... end
//
// which is called once per tick with a table of the camera state (tick, pitch,
// roll, yaw, x, y, z) and returns the input mask as a number built from the
// globals UP, DOWN, LEFT and RIGHT, e.g. "return LEFT + DOWN".
package autopilot

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"flightsim/internal/game"
)

// CallTimeout bounds a single control call.
const CallTimeout = 100 * time.Millisecond

var (
	// ErrNoControl reports a script that does not define control.
	ErrNoControl = errors.New("script does not define function control(state)")
	// ErrBadResult reports a control call that did not return a number.
	ErrBadResult = errors.New("control(state) must return a number")
)

// DefaultScript circles gently and holds altitude between 40 and 100.
const DefaultScript = `
function control(s)
  local phase = s.tick % 300
  if phase < 24 then return LEFT end
  if phase >= 150 and phase < 174 then return RIGHT end
  if s.pitch > 4 then return UP end
  if s.pitch < -4 then return DOWN end
  if s.y < 40 then return DOWN end
  if s.y > 100 then return UP end
  return 0
end
`

// Pilot is a loaded script. It is not safe for concurrent use.
type Pilot struct {
	name    string
	L       *lua.LState
	control *lua.LFunction
}

// Load reads and runs the script at path.
func Load(path string) (*Pilot, error) {
	return load(path, func(L *lua.LState) error { return L.DoFile(path) })
}

// New runs source as a script; name is used in error messages.
func New(name, source string) (*Pilot, error) {
	return load(name, func(L *lua.LState) error { return L.DoString(source) })
}

func load(name string, run func(*lua.LState) error) (*Pilot, error) {
	L := lua.NewState()
	for global, in := range map[string]game.Input{
		"UP":    game.InputUp,
		"DOWN":  game.InputDown,
		"LEFT":  game.InputLeft,
		"RIGHT": game.InputRight,
	} {
		L.SetGlobal(global, lua.LNumber(in))
	}

	if err := run(L); err != nil {
		L.Close()
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	fn, ok := L.GetGlobal("control").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%s: %w", name, ErrNoControl)
	}
	return &Pilot{name: name, L: L, control: fn}, nil
}

// Name returns the script name.
func (p *Pilot) Name() string {
	return p.name
}

// Control asks the script for this tick's input.
func (p *Pilot) Control(tick uint64, cam *game.Camera) (game.Input, error) {
	ctx, cancel := context.WithTimeout(context.Background(), CallTimeout)
	defer cancel()
	p.L.SetContext(ctx)
	defer p.L.RemoveContext()

	state := p.L.NewTable()
	state.RawSetString("tick", lua.LNumber(tick))
	state.RawSetString("pitch", lua.LNumber(int8(cam.Pitch)))
	state.RawSetString("roll", lua.LNumber(int8(cam.Roll)))
	state.RawSetString("yaw", lua.LNumber(cam.Yaw))
	state.RawSetString("x", lua.LNumber(cam.Position.X.Int()))
	state.RawSetString("y", lua.LNumber(cam.Position.Y.Int()))
	state.RawSetString("z", lua.LNumber(cam.Position.Z.Int()))

	if err := p.L.CallByParam(lua.P{Fn: p.control, NRet: 1, Protect: true}, state); err != nil {
		return 0, fmt.Errorf("%s: control: %w", p.name, err)
	}
	ret := p.L.Get(-1)
	p.L.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%s: %w, got %s", p.name, ErrBadResult, ret.Type())
	}
	return game.Input(int(n)) & (game.InputUp | game.InputDown | game.InputLeft | game.InputRight), nil
}

// Close releases the Lua state.
func (p *Pilot) Close() {
	p.L.Close()
}

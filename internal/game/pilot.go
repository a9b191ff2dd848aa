package game

// Pilot holds the game state for a connected pilot.
type Pilot struct {
	ID     string
	Name   string
	Camera *Camera

	latch InputLatch
	input Input // mask applied on the last tick
}

// PilotSnapshot is a read-only copy of pilot state for rendering.
type PilotSnapshot struct {
	ID     string
	Name   string
	Camera Camera
	Input  Input
}

// Snapshot returns a read-only copy of the pilot.
func (p *Pilot) Snapshot() PilotSnapshot {
	return PilotSnapshot{
		ID:     p.ID,
		Name:   p.Name,
		Camera: *p.Camera,
		Input:  p.input,
	}
}

// step applies one tick of latched input to the pilot's camera.
func (p *Pilot) step() {
	p.input = p.latch.Tick()
	p.Camera.Tick(p.input)
}

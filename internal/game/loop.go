package game

import (
	"fmt"
	"sync"
	"time"
)

// FrameState is the per-tick snapshot sent to a pilot's session for rendering.
type FrameState struct {
	Pilot  PilotSnapshot
	Tick   uint64
	Online int
}

// RenderChan is the per-session channel that receives frame snapshots.
type RenderChan chan FrameState

// savedState holds persisted pilot data for reconnecting pilots.
type savedState struct {
	Camera Camera
}

// GameLoop is the central game loop singleton.
type GameLoop struct {
	world     *World
	inputCh   chan InputEvent
	tickCount uint64
	tickRate  int

	mu          sync.RWMutex
	pilots      map[string]*Pilot
	renderChans map[string]RenderChan
	saved       map[string]savedState // keyed by username

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates and returns a new game loop.
func NewGameLoop(world *World) *GameLoop {
	return &GameLoop{
		world:       world,
		inputCh:     make(chan InputEvent, InputChanSize),
		tickRate:    TickRate,
		pilots:      make(map[string]*Pilot),
		renderChans: make(map[string]RenderChan),
		saved:       make(map[string]savedState),
		stopCh:      make(chan struct{}),
	}
}

// World returns the shared world.
func (gl *GameLoop) World() *World {
	return gl.world
}

// InputChan returns the shared input channel for sessions to send events.
func (gl *GameLoop) InputChan() chan<- InputEvent {
	return gl.inputCh
}

// AddPilot registers a pilot using their username as identity.
// If the username was seen before, the camera is restored where they left off.
// Returns the effective pilot ID and the render channel.
func (gl *GameLoop) AddPilot(name string) (string, RenderChan) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	// If this username is already online, add a suffix
	id := name
	if _, online := gl.pilots[id]; online {
		id = fmt.Sprintf("%s_%04d", name, time.Now().UnixNano()%10000)
	}

	cam := NewCamera()
	if ss, ok := gl.saved[name]; ok {
		*cam = ss.Camera
	}

	gl.pilots[id] = &Pilot{ID: id, Name: name, Camera: cam}
	ch := make(RenderChan, 2)
	gl.renderChans[id] = ch
	return id, ch
}

// RemovePilot saves the pilot's camera and unregisters them.
func (gl *GameLoop) RemovePilot(id string) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	if p, ok := gl.pilots[id]; ok {
		gl.saved[p.Name] = savedState{Camera: *p.Camera}
		delete(gl.pilots, id)
	}
	if ch, ok := gl.renderChans[id]; ok {
		close(ch)
		delete(gl.renderChans, id)
	}
}

// SetTickRate changes the ticks per second used by Run. Call before Run.
func (gl *GameLoop) SetTickRate(tps int) {
	if tps > 0 {
		gl.tickRate = tps
	}
}

// Online returns the number of connected pilots.
func (gl *GameLoop) Online() int {
	gl.mu.RLock()
	defer gl.mu.RUnlock()
	return len(gl.pilots)
}

// Run starts the game loop. Blocks until Stop is called.
func (gl *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(gl.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-gl.stopCh:
			return
		case <-ticker.C:
			gl.tick()
		}
	}
}

// Stop shuts down the game loop.
func (gl *GameLoop) Stop() {
	gl.stopOnce.Do(func() { close(gl.stopCh) })
}

func (gl *GameLoop) tick() {
	// Drain all pending input events
	for {
		select {
		case ev := <-gl.inputCh:
			gl.processInput(ev)
		default:
			goto drained
		}
	}
drained:

	gl.tickCount++

	gl.mu.Lock()
	for _, p := range gl.pilots {
		p.step()
	}
	gl.mu.Unlock()

	gl.mu.RLock()
	online := len(gl.pilots)
	for id, ch := range gl.renderChans {
		p, ok := gl.pilots[id]
		if !ok {
			continue
		}
		state := FrameState{Pilot: p.Snapshot(), Tick: gl.tickCount, Online: online}

		// Non-blocking send to each render channel
		select {
		case ch <- state:
		default:
			// Drop frame for slow client
		}
	}
	gl.mu.RUnlock()
}

func (gl *GameLoop) processInput(ev InputEvent) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	p, ok := gl.pilots[ev.PilotID]
	if !ok {
		return
	}
	p.latch.Press(ev.Action)
}

package server

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gliderlabs/ssh"

	"flightsim/internal/game"
	"flightsim/internal/render"
)

// SSHServer wraps the SSH listener and game loop integration.
type SSHServer struct {
	gameLoop *game.GameLoop
	addr     string
	hostKey  string
	strategy render.Strategy
}

// NewSSHServer creates a new SSH server bound to the given address. Sessions
// start with the given render strategy and may toggle it.
func NewSSHServer(addr string, hostKey string, gl *game.GameLoop, strategy render.Strategy) *SSHServer {
	return &SSHServer{
		gameLoop: gl,
		addr:     addr,
		hostKey:  hostKey,
		strategy: strategy,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}

	// Register with game loop (username = identity)
	pilotID, renderCh := s.gameLoop.AddPilot(username)

	log.Printf("Pilot connected: %s (%s)", username, pilotID)
	defer func() {
		s.gameLoop.RemovePilot(pilotID)
		log.Printf("Pilot disconnected: %s (%s)", username, pilotID)
	}()

	// Terminal dimensions
	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	// Per-session display state
	world := s.gameLoop.World()
	renderer := render.NewRenderer(world.Ground, world.Cloud, s.strategy)
	fb := render.NewFramebuffer()
	engine := render.NewEngine(termW, termH)

	// Setup terminal
	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	inputCh := s.gameLoop.InputChan()
	quitCh := make(chan struct{})
	toggleCh := make(chan struct{}, 1)

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, action := range game.ParseKeys(buf[:n]) {
				switch action {
				case game.ActionQuit:
					close(quitCh)
					return
				case game.ActionToggleRenderer:
					select {
					case toggleCh <- struct{}{}:
					default:
					}
					continue
				case game.ActionScreenshot:
					continue // no local disk for remote pilots
				}
				select {
				case inputCh <- game.InputEvent{PilotID: pilotID, Action: action}:
				default:
				}
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
		}
	}()

	// Main render loop: read from render channel
	for {
		select {
		case <-quitCh:
			return
		case <-toggleCh:
			renderer = renderer.WithStrategy(renderer.Strategy().Toggle())
			log.Printf("Pilot %s switched to %s renderer", pilotID, renderer.Strategy())
		case state, ok := <-renderCh:
			if !ok {
				return
			}

			termMu.Lock()
			w, h := termW, termH
			termMu.Unlock()

			renderer.Render(fb, &state.Pilot.Camera)
			render.DrawHUD(fb)

			status := render.StatusLine(state.Pilot, renderer.Strategy(), state.Online)
			output := engine.Render(fb, status, w, h)
			if len(output) > 0 {
				io.WriteString(sess, output)
			}
		}
	}
}

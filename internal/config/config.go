// Package config holds the settings shared by the flightsim commands. Values
// come from defaults, then environment variables, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"flightsim/internal/game"
	"flightsim/internal/maps"
	"flightsim/internal/render"
)

const (
	DefaultAddr    = ":2222"
	DefaultHostKey = "host_key"

	EnvPort     = "PORT"
	EnvRenderer = "FLIGHTSIM_RENDERER"

	maxTPS = 240
)

// ErrTPS reports a tick rate outside 1..240.
var ErrTPS = errors.New("tick rate out of range")

// Config is the parsed configuration.
type Config struct {
	Addr     string
	HostKey  string
	TPS      int
	Renderer render.Strategy

	// Optional grayscale PNGs replacing the compiled-in textures.
	GroundPath string
	CloudPath  string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     DefaultAddr,
		HostKey:  DefaultHostKey,
		TPS:      game.TickRate,
		Renderer: render.Coarse,
	}
}

// strategyFlag adapts a render.Strategy to flag.Value.
type strategyFlag struct{ s *render.Strategy }

func (f strategyFlag) String() string {
	if f.s == nil {
		return render.Coarse.String()
	}
	return f.s.String()
}

func (f strategyFlag) Set(v string) error {
	s, err := render.ParseStrategy(v)
	if err != nil {
		return err
	}
	*f.s = s
	return nil
}

// RegisterFlags adds the shared flags to fs, using the current values of c as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "SSH listen address")
	fs.StringVar(&c.HostKey, "hostkey", c.HostKey, "SSH host key path (generated if missing)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Var(strategyFlag{&c.Renderer}, "renderer", "renderer strategy: coarse or full")
	fs.StringVar(&c.GroundPath, "ground", c.GroundPath, "ground texture PNG (64x64 gray)")
	fs.StringVar(&c.CloudPath, "cloud", c.CloudPath, "cloud texture PNG (32x32 gray)")
}

// ApplyEnv overrides c from the environment. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if port := getenv(EnvPort); port != "" {
		c.Addr = ":" + port
	}
	if r := getenv(EnvRenderer); r != "" {
		s, err := render.ParseStrategy(r)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRenderer, err)
		}
		c.Renderer = s
	}
	return nil
}

// Validate checks values flags cannot constrain.
func (c Config) Validate() error {
	if c.TPS < 1 || c.TPS > maxTPS {
		return fmt.Errorf("%w: %d", ErrTPS, c.TPS)
	}
	return nil
}

// Parse builds a Config from defaults, then the
// environment, then args. Extra flags may be registered on fs by the caller
// before Parse is called; pass nil to use a fresh set.
func Parse(fs *flag.FlagSet, args []string, getenv func(string) string) (Config, error) {
	if fs == nil {
		fs = flag.NewFlagSet("flightsim", flag.ContinueOnError)
	}
	c := Default()
	if err := c.ApplyEnv(getenv); err != nil {
		return c, err
	}
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// MustParse parses the process command line, exiting on error the way
// flag.Parse does.
func MustParse(fs *flag.FlagSet) Config {
	if fs == nil {
		fs = flag.CommandLine
	}
	c, err := Parse(fs, os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	return c
}

// TickInterval is the wall-clock time between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// World loads the configured textures, falling back to the compiled-in ones
// for empty paths.
func (c Config) World() (*game.World, error) {
	ground, err := maps.LoadOr(c.GroundPath, maps.GroundSize, maps.Ground())
	if err != nil {
		return nil, fmt.Errorf("ground texture: %w", err)
	}
	cloud, err := maps.LoadOr(c.CloudPath, maps.CloudSize, maps.Cloud())
	if err != nil {
		return nil, fmt.Errorf("cloud texture: %w", err)
	}
	return game.NewWorld(ground, cloud), nil
}

// NewRenderer returns a renderer for w using the configured strategy.
func (c Config) NewRenderer(w *game.World) *render.Renderer {
	return render.NewRenderer(w.Ground, w.Cloud, c.Renderer)
}

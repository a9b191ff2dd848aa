package config

import (
	"errors"
	"flag"
	"io"
	"path/filepath"
	"testing"
	"time"

	"flightsim/internal/maps"
	"flightsim/internal/render"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			want: Default(),
		},
		{
			name: "port from env",
			env:  map[string]string{EnvPort: "3000"},
			want: Config{Addr: ":3000", HostKey: DefaultHostKey, TPS: 30, Renderer: render.Coarse},
		},
		{
			name: "flag beats env",
			args: []string{"-addr", ":4000", "-renderer", "coarse"},
			env:  map[string]string{EnvPort: "3000", EnvRenderer: "full"},
			want: Config{Addr: ":4000", HostKey: DefaultHostKey, TPS: 30, Renderer: render.Coarse},
		},
		{
			name: "renderer from env",
			env:  map[string]string{EnvRenderer: "FULL"},
			want: Config{Addr: DefaultAddr, HostKey: DefaultHostKey, TPS: 30, Renderer: render.Full},
		},
		{
			name: "all flags",
			args: []string{"-hostkey", "k", "-tps", "60", "-renderer", "full", "-ground", "g.png", "-cloud", "c.png"},
			want: Config{Addr: DefaultAddr, HostKey: "k", TPS: 60, Renderer: render.Full, GroundPath: "g.png", CloudPath: "c.png"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(newFlagSet(), tt.args, env(tt.env))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Parse = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(newFlagSet(), []string{"-renderer", "wireframe"}, env(nil)); err == nil {
		t.Error("bad -renderer accepted")
	}
	if _, err := Parse(newFlagSet(), nil, env(map[string]string{EnvRenderer: "wireframe"})); err == nil {
		t.Error("bad FLIGHTSIM_RENDERER accepted")
	}
	for _, tps := range []string{"0", "-5", "1000"} {
		if _, err := Parse(newFlagSet(), []string{"-tps", tps}, env(nil)); !errors.Is(err, ErrTPS) {
			t.Errorf("-tps %s: err = %v, want ErrTPS", tps, err)
		}
	}
}

func TestExtraFlags(t *testing.T) {
	fs := newFlagSet()
	out := fs.String("out", "frames", "")
	c, err := Parse(fs, []string{"-out", "dir", "-tps", "15"}, env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if *out != "dir" || c.TPS != 15 {
		t.Errorf("out = %q, tps = %d", *out, c.TPS)
	}
	if c.TickInterval() != time.Second/15 {
		t.Errorf("TickInterval = %v", c.TickInterval())
	}
}

func TestWorld(t *testing.T) {
	w, err := Default().World()
	if err != nil {
		t.Fatal(err)
	}
	if w.Ground != maps.Ground() || w.Cloud != maps.Cloud() {
		t.Error("default world should use compiled-in textures")
	}

	path := filepath.Join(t.TempDir(), "cloud.png")
	if err := maps.SaveTexture(path, maps.Cloud()); err != nil {
		t.Fatal(err)
	}
	c := Default()
	c.CloudPath = path
	w, err = c.World()
	if err != nil {
		t.Fatal(err)
	}
	if w.Cloud == maps.Cloud() || w.Cloud.Size != maps.CloudSize {
		t.Error("cloud texture was not loaded from disk")
	}

	c.GroundPath = path // wrong size
	if _, err := c.World(); !errors.Is(err, maps.ErrTextureSize) {
		t.Errorf("err = %v, want ErrTextureSize", err)
	}
}

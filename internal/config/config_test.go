package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Question-jpeg/Pendulum/pendulum"
)

func TestParseOverridesDefaults(t *testing.T) {
	conf, err := Parse(`
Output = "out.png"
Frames = 10
Speed = 5
Style = "dotted"
ArmLength2 = 60
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if conf.Output != "out.png" || conf.Frames != 10 || conf.Speed != 5 {
		t.Errorf("overrides not applied: %+v", conf)
	}
	def := Default()
	if conf.Width != def.Width || conf.ArmLength1 != def.ArmLength1 || conf.Rotation != def.Rotation {
		t.Errorf("defaults lost: %+v", conf)
	}

	p := conf.Params()
	if p.Style != pendulum.StyleDotted || p.L[1] != 60 || p.Speed != 5 {
		t.Errorf("Params() = %+v", p)
	}
}

func TestParseDoesNotMutateDefaults(t *testing.T) {
	if _, err := Parse(`Speed = 42`); err != nil {
		t.Fatal(err)
	}
	if Default().Speed == 42 {
		t.Error("Parse modified the defaults")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `Speed = `, "decode config"},
		{"unknown key", `Sped = 3`, `unknown config key "Sped"`},
		{"bad style", `Style = "dashed"`, `bad style "dashed"`},
		{"bad size", `Width = 0`, "canvas size"},
		{"negative frames", `Frames = -1`, "frames"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestParamsClampToCanvas(t *testing.T) {
	conf := Default()
	conf.Width = 400
	conf.ArmLength1 = 300
	conf.ArmLength2 = 10
	conf.Speed = 1000

	p := conf.Params()
	if p.L != [2]float64{100, 25} {
		t.Errorf("arm lengths = %v, want [100 25]", p.L)
	}
	if p.Speed != pendulum.MaxSpeed {
		t.Errorf("speed = %v, want %v", p.Speed, pendulum.MaxSpeed)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	if err := os.WriteFile(path, []byte("Frames = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	conf, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if conf.Frames != 7 {
		t.Errorf("Frames = %d, want 7", conf.Frames)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLogger(t *testing.T) {
	conf := Default()
	if conf.Logger() != nil {
		t.Error("quiet config returned a logger")
	}
	conf.Verbose = true
	if conf.Logger() == nil {
		t.Error("verbose config returned no logger")
	}
}

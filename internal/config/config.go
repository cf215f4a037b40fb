// Package config loads the run configuration of the pendulum drivers from
// a TOML file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Question-jpeg/Pendulum/pendulum"
)

// Config holds the parameters of a run.
type Config struct {
	// Output is the PNG file written by the headless driver.
	Output string

	Width  int // canvas width in pixels
	Height int // canvas height in pixels
	Frames int // frames simulated by the headless driver

	// Pendulum parameters
	Speed      float64 // ticks per frame
	Rotation   float64 // speed ratio of the second arm
	ArmLength1 float64
	ArmLength2 float64
	Style      string // "line" or "dotted"
	LineWidth  float64

	Running bool // start the interactive drivers unpaused
	Verbose bool // debug logging to stderr
}

// Default returns the default parameters.
func Default() *Config {
	p := pendulum.DefaultParams()
	return &Config{
		Output:     "pendulum.png",
		Width:      720,
		Height:     720,
		Frames:     3600,
		Speed:      p.Speed,
		Rotation:   p.Coef,
		ArmLength1: p.L[0],
		ArmLength2: p.L[1],
		Style:      p.Style.String(),
		LineWidth:  p.LineWidth,
		Running:    true,
	}
}

// Parse decodes TOML data over the defaults.
func Parse(data string) (*Config, error) {
	conf := Default()
	md, err := toml.Decode(data, conf)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// ParseFile parses the TOML config file whose path is provided.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	conf, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// Validate reports settings no driver can run with. Out of range pendulum
// parameters are not errors; Params clamps them.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames %d must not be negative", c.Frames)
	}
	if _, ok := pendulum.ParseStyle(c.Style); !ok {
		return fmt.Errorf("bad style %q", c.Style)
	}
	return nil
}

// Params returns the pendulum parameters clamped to the bounds of the
// canvas.
func (c *Config) Params() pendulum.Params {
	style, _ := pendulum.ParseStyle(c.Style)
	p := pendulum.Params{
		Speed:     c.Speed,
		Coef:      c.Rotation,
		L:         [2]float64{c.ArmLength1, c.ArmLength2},
		Style:     style,
		LineWidth: c.LineWidth,
	}
	return p.Clamp(pendulum.MaxArmLength(float64(c.Width)))
}

// Canvas returns the canvas size in trace units.
func (c *Config) Canvas() pendulum.Size {
	return pendulum.Size{W: float64(c.Width), H: float64(c.Height)}
}

// Logger returns a debug logger on stderr when Verbose is set, nil
// otherwise.
func (c *Config) Logger() *slog.Logger {
	if !c.Verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Command pendulum runs the pendulum headless and writes the traced
// figure to a PNG file.
//
// Usage
//
//	pendulum [config_file]
//
// The optional argument is the path to a TOML config file. Keys not present
// in the file keep their default value:
//
//	Output     = "pendulum.png"
//	Width      = 720
//	Height     = 720
//	Frames     = 3600
//	Speed      = 2
//	Rotation   = 3.14159
//	ArmLength1 = 90
//	ArmLength2 = 90
//	Style      = "line"   # or "dotted"
//	LineWidth  = 1
//	Verbose    = false
package main

import (
	"fmt"
	"os"

	"github.com/Question-jpeg/Pendulum/internal/canvas"
	"github.com/Question-jpeg/Pendulum/internal/config"
	"github.com/Question-jpeg/Pendulum/pendulum"
)

const usage = `Usage: pendulum [config_file]

The first argument is optional and is the path to a TOML config file.
`

func main() {
	var conf *config.Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = config.Default()
	case 2:
		conf, err = config.ParseFile(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	if err := run(conf); err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func run(conf *config.Config) error {
	pendulum.SetLogger(conf.Logger())

	p := pendulum.New(conf.Params())
	p.SetRunning(true)

	painter := canvas.NewPainter(conf.Width, conf.Height, 1)
	size := conf.Canvas()
	for i := 0; i < conf.Frames; i++ {
		p.Update(size)
	}

	dc, err := painter.Paint(p.Geometry())
	if err != nil {
		return err
	}
	if err := dc.SavePNG(conf.Output); err != nil {
		return fmt.Errorf("save %s: %w", conf.Output, err)
	}
	pendulum.Logger().Info("wrote trace",
		"output", conf.Output,
		"frames", conf.Frames,
		"batches", painter.Baked())
	return nil
}

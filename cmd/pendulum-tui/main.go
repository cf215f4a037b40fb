// Command pendulum-tui draws the pendulum trace in the terminal with
// braille characters.
//
// Usage
//
//	pendulum-tui [config_file]
//
// The optional argument is a TOML config file, see the pendulum command.
// Width sets how many trace units fit across the shorter side of the
// drawing area.
//
// Keys: space pauses and resumes, e erases the trace, r resets the arms,
// tab selects a parameter, up and down tune it, s switches between lines
// and dots, ? shows help, q quits.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Question-jpeg/Pendulum/internal/config"
	"github.com/Question-jpeg/Pendulum/pendulum"
)

func main() {
	var conf *config.Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = config.Default()
	case 2:
		conf, err = config.ParseFile(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)", len(os.Args)-1)
	}
	if err != nil {
		Fatal(err)
	}

	// the terminal belongs to the UI, so debug logs go to a file
	if conf.Verbose {
		f, err := tea.LogToFile("pendulum-debug.log", "pendulum")
		if err != nil {
			Fatal(err)
		}
		defer f.Close()
		pendulum.SetLogger(slogToFile(f))
	}

	p := tea.NewProgram(newModel(conf), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		Fatal(err)
	}
}

func slogToFile(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

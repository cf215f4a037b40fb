package pendulum

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/Question-jpeg/Pendulum/trace"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	p := New(fastParams())
	p.Advance(trace.FlushThreshold+1, canvas)
	p.Reset()

	out := buf.String()
	for _, want := range []string{"trace flushed", "history=1", "pendulum reset"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

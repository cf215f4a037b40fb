// Package pendulum simulates a two-arm pendulum whose arms rotate at a
// fixed ratio and records the path drawn by its tip.
//
// The motion is a parametrized rotation, not a dynamics model: every tick
// turns the first arm by TickStep and the second arm by TickStep*Coef.
// The package is driven by a single caller, once per rendered frame, and
// does no locking.
package pendulum

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/Question-jpeg/Pendulum/trace"
)

// EmitDistance is how far the tip must move from the last emitted position
// before a new primitive is added to the trace.
const EmitDistance = 5.0

// Size is the canvas size in trace units.
type Size struct {
	W, H float64
}

// Rig describes the arms for drawing.
type Rig struct {
	Pivot, Joint1, Joint2 gg.Point
	Rotation1, Rotation2  float64
	L1, L2                float64
}

// Frame is a snapshot of everything a renderer needs for one frame.
type Frame struct {
	Rig Rig

	// Active is a copy of the trace built since the last flush.
	Active *gg.Path

	// Pending is the batch flushed since the previous snapshot, or nil.
	// It is already part of History.
	Pending *trace.Entry

	History []trace.Entry
	Extent  gg.Rect
}

// Pendulum is the simulator state.
type Pendulum struct {
	params  Params
	angles  Angles
	j1, j2  gg.Point
	last    gg.Point
	running bool
	acc     *trace.Accumulator
}

// New returns a stopped pendulum hanging straight down with an empty trace.
func New(p Params) *Pendulum {
	pd := &Pendulum{
		params: p,
		acc:    trace.New(),
	}
	pd.recalculate()
	pd.last = pd.j2
	return pd
}

func (p *Pendulum) recalculate() {
	p.j1, p.j2 = Joints(p.angles.Rotation1, p.angles.Rotation2, &p.params)
}

// Advance performs ticks simulation steps and then gives the trace one
// chance to flush. A non-positive ticks performs no steps.
func (p *Pendulum) Advance(ticks int, canvas Size) {
	p.acc.SetExtent(extent(canvas))

	for i := 0; i < ticks; i++ {
		Step(&p.angles, p.params.Coef)
		p.recalculate()

		if trace.Distance(p.last, p.j2) > EmitDistance {
			p.acc.Append(p.primitive())
			p.last = p.j2
		}
	}

	if e, ok := p.acc.MaybeFlush(); ok {
		Logger().Debug("trace flushed",
			slog.String("id", e.ID.String()),
			slog.Int("history", len(p.acc.OldPaths())))
	}
}

func (p *Pendulum) primitive() trace.Primitive {
	if p.params.Style == StyleDotted {
		return trace.Dot{Center: p.j2, Diameter: p.params.LineWidth}
	}
	return trace.Segment{From: p.last, To: p.j2, Width: p.params.LineWidth}
}

// extent is the canvas rectangle centered on the pivot.
func extent(canvas Size) gg.Rect {
	return gg.NewRect(gg.Pt(-canvas.W/2, -canvas.H/2), gg.Pt(canvas.W/2, canvas.H/2))
}

// Update advances one frame at the configured speed if the pendulum is
// running.
func (p *Pendulum) Update(canvas Size) {
	if !p.running {
		return
	}
	p.Advance(int(p.params.Speed), canvas)
}

// Params returns the current configuration.
func (p *Pendulum) Params() Params { return p.params }

// SetArmLength sets the length of arm 1 or 2 and moves the joints right
// away. Other values of which are ignored.
func (p *Pendulum) SetArmLength(which int, v float64) {
	if which < 1 || which > 2 {
		return
	}
	p.params.L[which-1] = v
	p.recalculate()
}

// SetSpeed sets the number of ticks per frame used by Update.
func (p *Pendulum) SetSpeed(v float64) { p.params.Speed = v }

// SetCoef sets the rotation coefficient of the second arm.
func (p *Pendulum) SetCoef(v float64) { p.params.Coef = v }

// SetStyle selects the primitive emitted from the next tick on.
func (p *Pendulum) SetStyle(s Style) { p.params.Style = s }

// SetLineWidth sets the width of new primitives.
func (p *Pendulum) SetLineWidth(v float64) { p.params.LineWidth = v }

// SetParams replaces the whole configuration and moves the joints.
func (p *Pendulum) SetParams(params Params) {
	p.params = params
	p.recalculate()
}

// Running reports whether Update advances the simulation.
func (p *Pendulum) Running() bool { return p.running }

// SetRunning starts or pauses the pendulum. Starting it makes the next
// primitive begin at the current tip, so arms moved while paused do not
// leave a long jump in the trace.
func (p *Pendulum) SetRunning(running bool) {
	if running && !p.running {
		p.last = p.j2
	}
	if running != p.running {
		Logger().Debug("run state changed", slog.Bool("running", running))
	}
	p.running = running
}

// Erase clears the trace and keeps the arms where they are.
func (p *Pendulum) Erase() {
	p.acc.Clear()
	p.last = p.j2
	Logger().Debug("trace erased")
}

// Reset clears the trace and brings both arms back to angle zero.
func (p *Pendulum) Reset() {
	p.angles = Angles{}
	p.recalculate()
	p.last = p.j2
	p.acc.Clear()
	Logger().Debug("pendulum reset")
}

// TakePendingFlush returns the batch flushed since it was last taken.
func (p *Pendulum) TakePendingFlush() (trace.Entry, bool) {
	return p.acc.TakePending()
}

// Geometry returns a snapshot for rendering. It consumes the pending
// flush, so Pending is set in at most one snapshot per flush.
func (p *Pendulum) Geometry() Frame {
	f := Frame{
		Rig:     p.Rig(),
		Active:  p.acc.Active().Clone(),
		History: p.acc.OldPaths(),
		Extent:  p.acc.Extent(),
	}
	if e, ok := p.acc.TakePending(); ok {
		f.Pending = &e
	}
	return f
}

// Rig returns the current arm geometry.
func (p *Pendulum) Rig() Rig {
	return Rig{
		Joint1:    p.j1,
		Joint2:    p.j2,
		Rotation1: p.angles.Rotation1,
		Rotation2: p.angles.Rotation2,
		L1:        p.params.L[0],
		L2:        p.params.L[1],
	}
}

// Angles returns the current angular state.
func (p *Pendulum) Angles() Angles { return p.angles }

// LastEmitted returns the tip position the last primitive was emitted at.
func (p *Pendulum) LastEmitted() gg.Point { return p.last }

// Trace returns the accumulator holding the trace. Callers must not
// append to it directly.
func (p *Pendulum) Trace() *trace.Accumulator { return p.acc }

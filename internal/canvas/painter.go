// Package canvas rasterizes pendulum frames with the gg software renderer.
package canvas

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/google/uuid"

	"github.com/Question-jpeg/Pendulum/pendulum"
	"github.com/Question-jpeg/Pendulum/trace"
)

const (
	jointSize = 10.0 // diameter of the joint markers
	stickSize = 1.0  // width of the arms
)

// Painter draws frames onto a fixed size image with the pivot in the
// center. Flushed trace batches are painted once onto a cached layer and
// reused until the history is cleared.
type Painter struct {
	width, height int
	scale         float64

	layer *gg.Context
	baked []uuid.UUID
}

// NewPainter returns a painter for a width x height image. Trace units are
// multiplied by scale.
func NewPainter(width, height int, scale float64) *Painter {
	p := &Painter{width: width, height: height, scale: scale}
	p.resetLayer()
	return p
}

func (p *Painter) resetLayer() {
	p.layer = gg.NewContext(p.width, p.height)
	p.layer.ClearWithColor(gg.Black)
	p.baked = p.baked[:0]
}

// Baked returns the number of history batches in the cached layer.
func (p *Painter) Baked() int { return len(p.baked) }

// Paint renders f and returns the context holding the result.
func (p *Painter) Paint(f pendulum.Frame) (*gg.Context, error) {
	if err := p.sync(f.History); err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(p.layer.Image())
	p.setup(dc)
	if f.Active != nil {
		if err := fillPath(dc, f.Active); err != nil {
			return nil, fmt.Errorf("fill active trace: %w", err)
		}
	}
	if err := drawRig(dc, f.Rig); err != nil {
		return nil, fmt.Errorf("draw rig: %w", err)
	}
	return dc, nil
}

// sync brings the cached layer in line with history. History only grows
// between clears, so a mismatch in the already baked prefix means it was
// cleared and the layer is rebuilt.
func (p *Painter) sync(history []trace.Entry) error {
	if !hasPrefix(history, p.baked) {
		p.resetLayer()
	}
	if len(history) == len(p.baked) {
		return nil
	}

	p.layer.Push()
	defer p.layer.Pop()
	p.setup(p.layer)
	for _, e := range history[len(p.baked):] {
		if err := fillPath(p.layer, e.Path); err != nil {
			return fmt.Errorf("bake batch %s: %w", e.ID, err)
		}
		p.baked = append(p.baked, e.ID)
	}
	return nil
}

func hasPrefix(history []trace.Entry, ids []uuid.UUID) bool {
	if len(ids) > len(history) {
		return false
	}
	for i, id := range ids {
		if history[i].ID != id {
			return false
		}
	}
	return true
}

func (p *Painter) setup(dc *gg.Context) {
	dc.Translate(float64(p.width)/2, float64(p.height)/2)
	dc.Scale(p.scale, p.scale)
	dc.SetRGB(1, 1, 1)
	dc.SetFillRule(gg.FillRuleNonZero)
}

// fillPath fills a trace path in the current transform.
func fillPath(dc *gg.Context, path *gg.Path) error {
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
	return dc.Fill()
}

func drawRig(dc *gg.Context, r pendulum.Rig) error {
	dc.SetLineWidth(stickSize)

	dc.DrawLine(r.Pivot.X, r.Pivot.Y, r.Joint1.X, r.Joint1.Y)
	dc.DrawLine(r.Joint1.X, r.Joint1.Y, r.Joint2.X, r.Joint2.Y)
	dc.DrawCircle(r.Pivot.X, r.Pivot.Y, jointSize/2)
	dc.DrawCircle(r.Joint1.X, r.Joint1.Y, jointSize/2)
	if err := dc.Stroke(); err != nil {
		return err
	}

	dc.DrawCircle(r.Joint2.X, r.Joint2.Y, jointSize/2)
	return dc.Fill()
}

package trace

import (
	"math"

	"github.com/gogpu/gg"
)

// Primitive is a single drawable unit of the trace.
type Primitive interface {
	// Anchor is the end effector position the primitive was emitted at.
	Anchor() gg.Point

	// Outline appends the filled outline of the primitive to dst.
	Outline(dst *gg.Path)
}

// Segment is a straight stroke from From to To with butt caps.
type Segment struct {
	From, To gg.Point
	Width    float64
}

func (s Segment) Anchor() gg.Point { return s.To }

// Outline appends the stroke outline as a closed quad. The quad is wound
// the same way as gg.Path.Circle so nonzero fill unions overlaps.
func (s Segment) Outline(dst *gg.Path) {
	d := s.To.Sub(s.From)
	length := d.Length()
	if length == 0 || s.Width <= 0 {
		return
	}
	h := s.Width / 2
	// left-hand normal of the segment direction
	n := gg.Pt(-d.Y/length*h, d.X/length*h)

	a := s.From.Sub(n)
	b := s.To.Sub(n)
	c := s.To.Add(n)
	e := s.From.Add(n)
	dst.MoveTo(a.X, a.Y)
	dst.LineTo(b.X, b.Y)
	dst.LineTo(c.X, c.Y)
	dst.LineTo(e.X, e.Y)
	dst.Close()
}

// Dot is a circle of the given diameter traced with a one unit wide pen.
type Dot struct {
	Center   gg.Point
	Diameter float64
}

// DotPen is the pen width used to outline dots.
const DotPen = 1.0

func (d Dot) Anchor() gg.Point { return d.Center }

// Outline appends a ring around Center. When the pen covers the whole
// interior the ring collapses into a filled disk.
func (d Dot) Outline(dst *gg.Path) {
	if d.Diameter <= 0 {
		return
	}
	r := d.Diameter / 2
	outer := r + DotPen/2
	inner := r - DotPen/2

	dst.Circle(d.Center.X, d.Center.Y, outer)
	if inner <= 0 {
		return
	}
	hole := gg.NewPath()
	hole.Circle(d.Center.X, d.Center.Y, inner)
	appendPath(dst, hole.Reversed())
}

// appendPath replays the elements of src onto dst.
func appendPath(dst, src *gg.Path) {
	for _, elem := range src.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			dst.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dst.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dst.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dst.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dst.Close()
		}
	}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b gg.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

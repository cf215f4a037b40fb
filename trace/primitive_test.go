package trace

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSegmentOutline(t *testing.T) {
	tests := []struct {
		name   string
		seg    Segment
		inside []gg.Point
		out    []gg.Point
	}{
		{
			name:   "horizontal",
			seg:    Segment{From: gg.Pt(0, 0), To: gg.Pt(10, 0), Width: 2},
			inside: []gg.Point{gg.Pt(5, 0), gg.Pt(5, 0.9), gg.Pt(5, -0.9)},
			out:    []gg.Point{gg.Pt(5, 1.1), gg.Pt(-0.5, 0), gg.Pt(10.5, 0)},
		},
		{
			name:   "diagonal reversed",
			seg:    Segment{From: gg.Pt(10, 10), To: gg.Pt(0, 0), Width: 1},
			inside: []gg.Point{gg.Pt(5, 5), gg.Pt(1, 1)},
			out:    []gg.Point{gg.Pt(5, 6), gg.Pt(11, 11)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := gg.NewPath()
			tt.seg.Outline(p)
			for _, pt := range tt.inside {
				if !p.Contains(pt) {
					t.Errorf("Contains(%v) = false, want true", pt)
				}
			}
			for _, pt := range tt.out {
				if p.Contains(pt) {
					t.Errorf("Contains(%v) = true, want false", pt)
				}
			}
		})
	}
}

func TestSegmentOutlineBounds(t *testing.T) {
	p := gg.NewPath()
	Segment{From: gg.Pt(0, 0), To: gg.Pt(0, 20), Width: 3}.Outline(p)

	bb := p.BoundingBox()
	if !approxEqual(bb.Width(), 3, 1e-9) || !approxEqual(bb.Height(), 20, 1e-9) {
		t.Errorf("bounding box = %v, want 3x20", bb)
	}
}

func TestSegmentDegenerate(t *testing.T) {
	tests := []Segment{
		{From: gg.Pt(1, 1), To: gg.Pt(1, 1), Width: 1},
		{From: gg.Pt(0, 0), To: gg.Pt(5, 0), Width: 0},
	}
	for _, s := range tests {
		p := gg.NewPath()
		s.Outline(p)
		if n := len(p.Elements()); n != 0 {
			t.Errorf("Outline(%+v) produced %d elements, want 0", s, n)
		}
	}
}

func TestDotOutline(t *testing.T) {
	t.Run("ring", func(t *testing.T) {
		p := gg.NewPath()
		Dot{Center: gg.Pt(10, 10), Diameter: 4}.Outline(p)

		if p.Contains(gg.Pt(10, 10)) {
			t.Error("ring center should be empty")
		}
		if !p.Contains(gg.Pt(12, 10)) {
			t.Error("ring should cover the circle of radius 2")
		}
		if p.Contains(gg.Pt(13, 10)) {
			t.Error("ring should end at radius 2.5")
		}
		bb := p.BoundingBox()
		if !approxEqual(bb.Width(), 5, 1e-6) {
			t.Errorf("ring width = %v, want 5", bb.Width())
		}
	})

	t.Run("disk", func(t *testing.T) {
		p := gg.NewPath()
		Dot{Center: gg.Pt(0, 0), Diameter: 0.5}.Outline(p)

		if !p.Contains(gg.Pt(0, 0)) {
			t.Error("small dot should be a filled disk")
		}
		bb := p.BoundingBox()
		if !approxEqual(bb.Width(), 1.5, 1e-6) {
			t.Errorf("disk width = %v, want 1.5", bb.Width())
		}
	})

	t.Run("zero", func(t *testing.T) {
		p := gg.NewPath()
		Dot{Center: gg.Pt(0, 0)}.Outline(p)
		if len(p.Elements()) != 0 {
			t.Error("zero diameter dot should have no outline")
		}
	})
}

func TestOutlineWindingMatches(t *testing.T) {
	seg := gg.NewPath()
	Segment{From: gg.Pt(0, 0), To: gg.Pt(10, 0), Width: 2}.Outline(seg)
	disk := gg.NewPath()
	Dot{Center: gg.Pt(0, 0), Diameter: 0.5}.Outline(disk)

	ws := seg.Winding(gg.Pt(5, 0))
	wd := disk.Winding(gg.Pt(0, 0))
	if ws == 0 || ws != wd {
		t.Errorf("segment winding %d, disk winding %d: want equal and non-zero", ws, wd)
	}
}

func TestAnchor(t *testing.T) {
	s := Segment{From: gg.Pt(1, 2), To: gg.Pt(3, 4)}
	if s.Anchor() != gg.Pt(3, 4) {
		t.Errorf("Segment.Anchor() = %v", s.Anchor())
	}
	d := Dot{Center: gg.Pt(5, 6)}
	if d.Anchor() != gg.Pt(5, 6) {
		t.Errorf("Dot.Anchor() = %v", d.Anchor())
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(gg.Pt(0, 0), gg.Pt(3, 4)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

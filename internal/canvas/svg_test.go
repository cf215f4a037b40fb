package canvas

import (
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/Question-jpeg/Pendulum/trace"
)

func TestSVGPath(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *gg.Path)
		want  string
	}{
		{"empty", func(p *gg.Path) {}, ""},
		{
			name: "segment",
			build: func(p *gg.Path) {
				trace.Segment{From: gg.Pt(0, 0), To: gg.Pt(10, 0), Width: 2}.Outline(p)
			},
			want: "M0.00 -1.00 L10.00 -1.00 L10.00 1.00 L0.00 1.00 Z",
		},
		{
			name: "curves",
			build: func(p *gg.Path) {
				p.MoveTo(1, 2)
				p.QuadraticTo(3, 4, 5, 6)
				p.CubicTo(7, 8, 9, 10, 11.5, 12.25)
			},
			want: "M1.00 2.00 Q3.00 4.00 5.00 6.00 C7.00 8.00 9.00 10.00 11.50 12.25",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := gg.NewPath()
			tt.build(p)
			if got := SVGPath(p); got != tt.want {
				t.Errorf("SVGPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSVGPathDot(t *testing.T) {
	p := gg.NewPath()
	trace.Dot{Center: gg.Pt(0, 0), Diameter: 4}.Outline(p)
	d := SVGPath(p)
	if strings.Count(d, "M") != 2 || strings.Count(d, "C") != 8 || strings.Count(d, "Z") != 2 {
		t.Errorf("ring path = %q", d)
	}
}

package canvas

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// SVGPath encodes p as SVG path data, suitable for the browser's Path2D.
func SVGPath(p *gg.Path) string {
	var sb strings.Builder
	for _, elem := range p.Elements() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case gg.MoveTo:
			sb.WriteByte('M')
			writePoints(&sb, e.Point)
		case gg.LineTo:
			sb.WriteByte('L')
			writePoints(&sb, e.Point)
		case gg.QuadTo:
			sb.WriteByte('Q')
			writePoints(&sb, e.Control, e.Point)
		case gg.CubicTo:
			sb.WriteByte('C')
			writePoints(&sb, e.Control1, e.Control2, e.Point)
		case gg.Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writePoints(sb *strings.Builder, pts ...gg.Point) {
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(pt.X, 'f', 2, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(pt.Y, 'f', 2, 64))
	}
}

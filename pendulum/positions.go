package pendulum

import (
	"math"

	"github.com/gogpu/gg"
)

// Joints returns the positions of the two arm ends. The pivot is at the
// origin and angle 0 points along +Y (down on screen).
func Joints(rotation1, rotation2 float64, p *Params) (j1, j2 gg.Point) {
	L1, L2 := p.L[0], p.L[1]

	a1 := rotation1 + math.Pi/2
	j1 = gg.Pt(math.Cos(a1)*L1, math.Sin(a1)*L1)

	a2 := rotation2 + math.Pi/2
	j2 = gg.Pt(j1.X+math.Cos(a2)*L2, j1.Y+math.Sin(a2)*L2)

	return
}

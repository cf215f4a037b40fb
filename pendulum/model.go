package pendulum

import "math"

// Style selects the primitive emitted for each trace step.
type Style int

const (
	// StyleLine connects successive tip positions with stroked segments.
	StyleLine Style = iota
	// StyleDotted drops a small ring at each tip position.
	StyleDotted
)

func (s Style) String() string {
	switch s {
	case StyleLine:
		return "line"
	case StyleDotted:
		return "dotted"
	}
	return "unknown"
}

// ParseStyle maps "line" and "dotted" to their Style.
func ParseStyle(s string) (Style, bool) {
	switch s {
	case "line":
		return StyleLine, true
	case "dotted":
		return StyleDotted, true
	}
	return 0, false
}

// Bounds the callers are expected to keep the parameters in. The core does
// not enforce them.
const (
	MinSpeed     = 1
	MaxSpeed     = 100
	MinCoef      = 0
	MaxCoef      = 7
	MinArmLength = 25
	MinLineWidth = 0.5
	MaxLineWidth = 5
)

// Params holds the user tunable configuration of the pendulum.
type Params struct {
	// Speed: ticks per frame, integer valued in [1, 100]
	Speed float64

	// Coef: ratio between the angular velocity of the second arm and the
	// first one, in [0, 7]
	Coef float64

	// L[i]: length of arm i, in [25, MaxArmLength(canvas width)]
	L [2]float64

	Style Style

	// LineWidth: stroke width of segments, diameter of dots, in [0.5, 5]
	LineWidth float64
}

// DefaultParams returns the configuration the pendulum starts with.
func DefaultParams() Params {
	return Params{
		Speed:     2,
		Coef:      math.Pi,
		L:         [2]float64{90, 90},
		Style:     StyleLine,
		LineWidth: 1,
	}
}

// MaxArmLength is the largest arm length that keeps a fully stretched
// pendulum inside a canvas of the given width.
func MaxArmLength(canvasWidth float64) float64 {
	return canvasWidth / 4
}

// Clamp returns p with every field forced into its bounds. A maxArm below
// MinArmLength leaves the arm lengths unbounded above.
func (p Params) Clamp(maxArm float64) Params {
	p.Speed = math.Round(clamp(p.Speed, MinSpeed, MaxSpeed))
	p.Coef = clamp(p.Coef, MinCoef, MaxCoef)
	for i := range p.L {
		if maxArm >= MinArmLength {
			p.L[i] = clamp(p.L[i], MinArmLength, maxArm)
		} else {
			p.L[i] = math.Max(p.L[i], MinArmLength)
		}
	}
	if p.Style != StyleLine && p.Style != StyleDotted {
		p.Style = StyleLine
	}
	p.LineWidth = clamp(p.LineWidth, MinLineWidth, MaxLineWidth)
	return p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

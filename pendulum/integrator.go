package pendulum

import "math"

// TickStep is the angle the first arm turns by on every tick (0.2°).
const TickStep = 0.2 * math.Pi / 180

// Angles is the angular state of both arms, in radians.
type Angles struct {
	Rotation1 float64
	Rotation2 float64
}

// Step advances a by one tick. The second arm turns coef times as fast as
// the first one. Angles are not wrapped.
func Step(a *Angles, coef float64) {
	a.Rotation1 -= TickStep
	a.Rotation2 -= TickStep * coef
}

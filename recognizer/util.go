package recognizer

import "math"

// Tolerance is the difference below which Equal treats two values as the same.
const Tolerance = 1e-9

// Touch coordinates come from float math on the host side, so comparisons are
// tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Straight-line distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Angle of the vector from p to other, in radians, as returned by atan2.
func (p Point) Angle(other Point) float64 {
	return math.Atan2(other.Y-p.Y, other.X-p.X)
}

// Distance and angle between the first two contacts. The caller guarantees
// there are at least two.
func pairMetrics(contacts []Point) (distance, angle float64) {
	a, b := contacts[0], contacts[1]
	return a.Distance(b), a.Angle(b)
}

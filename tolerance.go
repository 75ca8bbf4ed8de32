package polybool

import "math"

// cross2D returns the z-component of the 3D cross product of a and b
// treated as vectors.
func cross2D(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// dot2D returns the dot product of a and b.
func dot2D(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

func sub(a, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

func add(a, b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

func scale(a Point, s float64) Point {
	return Point{X: a.X * s, Y: a.Y * s}
}

// lerpPoint linearly interpolates between a and b at parameter t.
func lerpPoint(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// intervalIntersection computes the overlap of [a0,a1] and [b0,b1],
// each normalized to ascending order first. Reports false if the
// intervals do not meet.
func intervalIntersection(a0, a1, b0, b1 float64) (lo, hi float64, ok bool) {
	a0, a1 = MinMax(a0, a1)
	b0, b1 = MinMax(b0, b1)
	lo = math.Max(a0, b0)
	hi = math.Min(a1, b1)
	return lo, hi, hi >= lo
}

// clamp01 clamps v into [0,1], absorbing tiny eps-excursions past the
// endpoints.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Distance is the Euclidean distance between a and b.
func Distance(a, b cp.Vector) float64 {
	return a.Distance(b)
}

// Angle is the bearing from a to b in radians, measured from +X toward +Y
// (screen space, Y down). Coincident points give 0.
func Angle(a, b cp.Vector) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Toward returns a vector of length speed pointing from a to b. Coincident
// points point along +X, matching atan2(0, 0) == 0.
func Toward(a, b cp.Vector, speed float64) cp.Vector {
	return cp.ForAngle(Angle(a, b)).Mult(speed)
}

// ClampToRadius pulls p back onto the circle of radius r around center when
// it lies outside it. The result is never further than r from center, even
// after rounding.
func ClampToRadius(center, p cp.Vector, r float64) cp.Vector {
	if center.Distance(p) <= r {
		return p
	}
	if r <= 0 {
		return center
	}
	dir := cp.ForAngle(Angle(center, p))
	q := center.Add(dir.Mult(r))
	for step := r; center.Distance(q) > r && step > 0; {
		step = math.Nextafter(step, 0)
		q = center.Add(dir.Mult(step))
	}
	return q
}

func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

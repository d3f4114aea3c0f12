package core

import "math"

// degenerateEpsilon guards divisions by a near-zero leading coefficient or denominator
const degenerateEpsilon = 1e-12

// SolveQuadratic returns the real roots of a·t² + b·t + c = 0 with t0 <= t1.
// ok is false when the discriminant is negative or the equation is degenerate (a ≈ 0).
func SolveQuadratic(a, b, c float64) (t0, t1 float64, ok bool) {
	if math.Abs(a) < degenerateEpsilon {
		return 0, 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 = (-b - sqrtD) / (2 * a)
	t1 = (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// NearestPositiveRoot applies the ray root policy: the smaller strictly positive root,
// else the larger one (ray starting inside the surface), else no hit.
func NearestPositiveRoot(a, b, c float64) (float64, bool) {
	t0, t1, ok := SolveQuadratic(a, b, c)
	if !ok {
		return 0, false
	}
	if t0 > 0 {
		return t0, true
	}
	if t1 > 0 {
		return t1, true
	}
	return 0, false
}

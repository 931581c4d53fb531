package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundInt rounds half away from zero.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// Unit returns the normalized vector, or the zero vector when v has no length.
func Unit(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are exactly zero.
func IsZero(v cp.Vector) bool {
	return v.X == 0 && v.Y == 0
}

// Sign returns -1, 0 or 1.
func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

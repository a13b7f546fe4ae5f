package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the magnitude floor below which a vector is treated as zero
const Epsilon = 1e-9

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates component-wise from a toward b
// t is clamped to [0, 1] so a large frame delta cannot overshoot b
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

// AngleBetweenDeg returns the unsigned angle between a and b in degrees [0, 180]
// Zero-length input yields 0
func AngleBetweenDeg(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < Epsilon || lb < Epsilon {
		return 0
	}
	cos := Clamp(a.Dot(b)/(la*lb), -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// Perpendicular returns a unit vector orthogonal to v, picked against the
// world axis v is least aligned with for numerical stability
func Perpendicular(v mgl64.Vec3) mgl64.Vec3 {
	axis := mgl64.Vec3{1, 0, 0}
	if math.Abs(v.X()) > math.Abs(v.Y()) {
		axis = mgl64.Vec3{0, 1, 0}
	}
	p := v.Cross(axis)
	if p.LenSqr() < Epsilon {
		return mgl64.Vec3{0, 0, 1}
	}
	return p.Normalize()
}

package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SlerpDirection spherically interpolates from one direction toward another
// along their great circle. Inputs need not be unit length; the result is unit.
//
// t is intentionally NOT clamped: t > 1 extrapolates past `to` on the same
// great circle. Callers rely on this to overshoot a rest direction as a soft
// hard-limit instead of pinning to it.
// Zero-length input yields the zero vector
func SlerpDirection(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	if from.LenSqr() < Epsilon || to.LenSqr() < Epsilon {
		return mgl64.Vec3{}
	}
	f := from.Normalize()
	g := to.Normalize()

	cos := Clamp(f.Dot(g), -1, 1)
	theta := math.Acos(cos)

	if theta < 1e-8 {
		// Coincident directions span no arc
		return f
	}

	sin := math.Sin(theta)
	if sin < 1e-8 {
		// Antipodal directions have no unique great circle; rotate through a
		// stable perpendicular so the path is at least deterministic
		axis := Perpendicular(f)
		return mgl64.QuatRotate(theta*t, axis).Rotate(f)
	}

	// Standard slerp formula, valid for any t
	a := math.Sin((1-t)*theta) / sin
	b := math.Sin(t*theta) / sin
	return f.Mul(a).Add(g.Mul(b))
}

// ScaleRotation blends q toward the identity rotation, returning the rotation
// that applies fraction t of q's effect. t outside [0, 1] is clamped
func ScaleRotation(q mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp(t, 0, 1)
	if t <= 0 {
		return mgl64.QuatIdent()
	}
	if t >= 1 {
		return q
	}
	return mgl64.QuatSlerp(mgl64.QuatIdent(), q, t)
}

package aim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/aimrig/parameter"
	"github.com/lixenwraith/aimrig/rig"
	"github.com/lixenwraith/aimrig/vmath"
)

// Solver computes the bounded look point and applies weighted rotational
// corrections across a bone chain. It is stateless apart from the iteration
// count and has no failure mode: degenerate geometry yields no correction for
// the frame, never an error or NaN
type Solver struct {
	// Iterations bounds the per-frame correction passes. Each pass re-reads
	// the anchor direction, so later passes absorb the drift earlier bones
	// introduced; this is approximate iterative correction, not an analytic
	// solve, and convergence is bounded by count rather than tolerance
	Iterations int
}

// NewSolver returns a solver with the default iteration count
func NewSolver() *Solver {
	return &Solver{Iterations: parameter.SolverIterations}
}

// ComputeLookPoint derives the point the chain should aim at from the
// follower position, pulling it back toward the anchor's neutral aim axis
// when the target violates the angle or distance limits.
//
// Angle excess beyond the limit contributes excess/BlendSoftness; distance
// shortfall below the limit contributes its full amount, so "too close"
// dominates quickly. The two terms sum UNCLAMPED into the interpolation
// parameter: a sum above 1 overshoots past the aim axis, acting as a soft
// hard-limit instead of a pin.
//
// Returns ok=false when the follower coincides with the anchor (zero
// direction): no correction this frame
func (s *Solver) ComputeLookPoint(followerPos, anchorPos, anchorAimDir mgl64.Vec3, cfg ChainConfig) (mgl64.Vec3, bool) {
	toTarget := followerPos.Sub(anchorPos)
	dist := toTarget.Len()
	if dist*dist < vmath.Epsilon {
		return mgl64.Vec3{}, false
	}

	blendOut := 0.0

	// Angle is in [0, 180], so a 180 degree limit can never be exceeded
	if angle := vmath.AngleBetweenDeg(toTarget, anchorAimDir); angle > cfg.AngleLimitDeg {
		blendOut += (angle - cfg.AngleLimitDeg) / parameter.BlendSoftness
	}

	// A zero distance limit can never produce a shortfall
	if dist < cfg.DistanceLimit {
		blendOut += cfg.DistanceLimit - dist
	}

	dir := toTarget.Mul(1 / dist)
	if blendOut > 0 {
		dir = vmath.SlerpDirection(dir, anchorAimDir, blendOut)
	}
	return anchorPos.Add(dir), true
}

// ApplyChain rotates each bone of the chain, in configured root-to-tip
// order, toward the aim point. Per bone, the rotation mapping the anchor's
// current aim-axis direction onto the direction to the aim point is scaled by
// boneWeight*globalWeight and premultiplied onto the bone.
//
// globalWeight 0 leaves every rotation untouched
func (s *Solver) ApplyChain(aimPoint mgl64.Vec3, cfg ChainConfig, bones []*rig.Bone, tip *rig.Bone, globalWeight float64) {
	if globalWeight <= 0 || len(bones) == 0 || tip == nil {
		return
	}

	iterations := s.Iterations
	if iterations <= 0 {
		iterations = 1
	}

	for it := 0; it < iterations; it++ {
		for i, bw := range cfg.Bones {
			w := bw.Weight * globalWeight
			if w <= 0 {
				continue
			}

			current := tip.WorldAxis(cfg.Axis)
			want := aimPoint.Sub(tip.WorldPosition())
			if want.LenSqr() < vmath.Epsilon || current.LenSqr() < vmath.Epsilon {
				// Aim point coincides with the anchor; skip this frame's
				// correction rather than propagate a degenerate rotation
				continue
			}

			delta := mgl64.QuatBetweenVectors(current, want.Normalize())
			bones[i].ApplyWorldRotation(vmath.ScaleRotation(delta, w))
		}
	}
}

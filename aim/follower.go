package aim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/aimrig/parameter"
	"github.com/lixenwraith/aimrig/vmath"
)

// TargetFollower maintains a smoothed proxy position trailing either the live
// target or the rest position, so bone corrections never see an abrupt jump.
//
// State machine: idle (uninitialized or settled at rest, blend 0) → tracking
// (target set, blend rising) → returning (target cleared, blend decaying) →
// idle again, firing the at-rest signal exactly once per return cycle.
//
// Initialization is an explicit flag, not a positional sentinel: a target at
// the world origin is legitimate
type TargetFollower struct {
	initialized bool
	pos         mgl64.Vec3
	rest        mgl64.Vec3

	hasTarget bool
	target    mgl64.Vec3

	baseSpeed   float64
	blend       float64
	returnBoost float64

	// resting latches after a snap so the at-rest signal is edge-triggered
	resting bool
}

// NewTargetFollower creates an uninitialized follower with the default speed
func NewTargetFollower() *TargetFollower {
	return &TargetFollower{baseSpeed: parameter.BaseLookSpeed}
}

// Init places the follower at the rest position. First call wins; the
// follower never reinterprets its position as uninitialized afterward
func (f *TargetFollower) Init(rest mgl64.Vec3) {
	if f.initialized {
		return
	}
	f.initialized = true
	f.pos = rest
	f.rest = rest
	f.resting = true
}

// Initialized reports whether Init has run
func (f *TargetFollower) Initialized() bool {
	return f.initialized
}

// SetTarget starts tracking a target. The follower position itself never
// moves here; motion happens only in Tick
func (f *TargetFollower) SetTarget(p mgl64.Vec3) {
	f.hasTarget = true
	f.target = p
	f.returnBoost = 0
	f.resting = false
}

// ClearTarget begins the return to rest. Position is untouched; decay plays
// out over subsequent ticks
func (f *TargetFollower) ClearTarget() {
	f.hasTarget = false
}

// HasTarget reports whether a live target is being tracked
func (f *TargetFollower) HasTarget() bool {
	return f.hasTarget
}

// SetBaseSpeed overrides the exponential approach rate (1/sec)
func (f *TargetFollower) SetBaseSpeed(s float64) {
	if s > 0 {
		f.baseSpeed = s
	}
}

// SetRest updates the rest position the follower returns to. The owning
// controller refreshes this each frame so rest stays body-relative
func (f *TargetFollower) SetRest(rest mgl64.Vec3) {
	if f.initialized {
		f.rest = rest
	}
}

// Position returns the current follower position
func (f *TargetFollower) Position() mgl64.Vec3 {
	return f.pos
}

// Rest returns the current rest position
func (f *TargetFollower) Rest() mgl64.Vec3 {
	return f.rest
}

// Blend returns the current blend weight in [0, 1]
func (f *TargetFollower) Blend() float64 {
	return f.blend
}

// Tick advances the follower by dt seconds.
//
// With a target set, the position exponentially approaches it at
// baseSpeed*(1+speedBoost), speedBoost clamped to [0, SpeedBoostMax], and the
// blend weight ramps up. Without a target, the position approaches rest with
// a growing return boost while the blend weight decays; inside the snap
// threshold the position lands exactly on rest, blend is forced to 0, and
// atRest reports true for that tick only
func (f *TargetFollower) Tick(dt, speedBoost float64) (pos mgl64.Vec3, atRest bool) {
	if !f.initialized {
		return mgl64.Vec3{}, false
	}

	if f.hasTarget {
		boost := vmath.Clamp(speedBoost, 0, parameter.SpeedBoostMax)
		rate := f.baseSpeed * (1 + boost)
		f.pos = vmath.Lerp(f.pos, f.target, dt*rate)
		f.blend = vmath.Clamp(f.blend+parameter.BlendGainPerTick, 0, 1)
		return f.pos, false
	}

	f.returnBoost = vmath.Clamp(f.returnBoost+parameter.ReturnBoostPerTick, 0, parameter.ReturnBoostMax)
	rate := f.baseSpeed * (1 + f.returnBoost)
	f.pos = vmath.Lerp(f.pos, f.rest, dt*rate)
	f.blend = vmath.Clamp(f.blend-parameter.BlendDecayPerTick, 0, 1)

	if !f.resting && f.pos.Sub(f.rest).Len() < parameter.RestSnapDistance {
		f.pos = f.rest
		f.blend = 0
		f.resting = true
		return f.pos, true
	}
	if f.resting {
		// Settled; keep pinned to the (possibly body-relative) rest point
		f.pos = f.rest
	}
	return f.pos, false
}

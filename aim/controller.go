package aim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/aimrig/parameter"
	"github.com/lixenwraith/aimrig/rig"
	"github.com/lixenwraith/aimrig/vmath"
)

// Controller is the composition root for one aim chain: it wires target
// assignment, the smoothed follower, and the chain solver into a single
// per-frame update, and owns the chain's lifecycle.
//
// It is single-threaded and frame-cooperative. Update must run on the host's
// late-update phase, after locomotion for the same frame, since it consumes
// that frame's agent speed
type Controller struct {
	skel  rig.Skeleton
	cfg   ChainConfig
	bones []*rig.Bone
	tip   *rig.Bone

	follower *TargetFollower
	solver   *Solver

	weight float64

	// restLocal is fixed in root-bone space at the first-ever Start and
	// never recomputed; the world-space rest point tracks the body from it
	restLocal mgl64.Vec3
	restSet   bool

	autoRemove bool
	done       bool
	onRest     func()
}

// New resolves every chain bone plus the tip exactly once and builds the
// controller. A missing bone or an invalid config is a fatal configuration
// error; the controller never activates
func New(skel rig.Skeleton, cfg ChainConfig) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bones := make([]*rig.Bone, len(cfg.Bones))
	for i, bw := range cfg.Bones {
		b, err := skel.Resolve(bw.Bone)
		if err != nil {
			return nil, fmt.Errorf("aim: resolve chain bone: %w", err)
		}
		bones[i] = b
	}
	tip, err := skel.Resolve(cfg.Tip)
	if err != nil {
		return nil, fmt.Errorf("aim: resolve tip bone: %w", err)
	}

	return &Controller{
		skel:     skel,
		cfg:      cfg,
		bones:    bones,
		tip:      tip,
		follower: NewTargetFollower(),
		solver:   NewSolver(),
		weight:   1,
	}, nil
}

// Config returns the chain configuration (read-only by convention)
func (c *Controller) Config() ChainConfig {
	return c.cfg
}

// Start assigns the target and arms the chain. On the first-ever call the
// rest position is derived from the anchor's current orientation, one unit
// along the aim axis, and fixed in body-local space for the controller's
// lifetime. autoRemove requests self-termination once the chain has returned
// to rest after Stop
func (c *Controller) Start(target mgl64.Vec3, autoRemove bool) {
	if c.done {
		return
	}
	if !c.restSet {
		root := c.skel.Root()
		restWorld := c.tip.WorldPosition().Add(c.tip.WorldAxis(c.cfg.Axis).Mul(parameter.RestOffsetDistance))
		c.restLocal = root.WorldRotation().Inverse().Rotate(restWorld.Sub(root.WorldPosition()))
		c.restSet = true
		c.follower.Init(restWorld)
	}
	c.autoRemove = autoRemove
	c.follower.SetTarget(target)
}

// Stop clears the target. Non-blocking: the chain decays back to rest over
// subsequent frames, it does not jump
func (c *Controller) Stop() {
	c.follower.ClearTarget()
}

// SetSpeed overrides the follower's base look speed (1/sec)
func (c *Controller) SetSpeed(s float64) {
	c.follower.SetBaseSpeed(s)
}

// SetWeight scales every applied correction, clamped to [0, 1]
func (c *Controller) SetWeight(w float64) {
	c.weight = vmath.Clamp(w, 0, 1)
}

// OnRest registers the lifecycle callback invoked when the chain settles
// back at rest. It fires at most once per return-to-rest transition, never
// repeatedly while idle
func (c *Controller) OnRest(fn func()) {
	c.onRest = fn
}

// Done reports whether the controller has terminated and should be removed
// from the host's update phase
func (c *Controller) Done() bool {
	return c.done
}

// Priority orders this controller against others sharing bones; lower runs
// first within a frame
func (c *Controller) Priority() int {
	return c.cfg.Priority
}

// RestPosition returns the current world-space rest point, for debug
// rendering. ok is false before the first Start
func (c *Controller) RestPosition() (mgl64.Vec3, bool) {
	if !c.restSet {
		return mgl64.Vec3{}, false
	}
	return c.restWorld(), true
}

// FollowerPosition returns the follower's current world position, for debug
// rendering. ok is false before the first Start
func (c *Controller) FollowerPosition() (mgl64.Vec3, bool) {
	if !c.follower.Initialized() {
		return mgl64.Vec3{}, false
	}
	return c.follower.Position(), true
}

// Aiming reports whether a live target is currently tracked
func (c *Controller) Aiming() bool {
	return c.follower.HasTarget()
}

// Update advances the chain by dt seconds. agentSpeed is the locomotion
// velocity magnitude for this frame (0 when no locomotion collaborator is
// present); it boosts the follower so a moving body tracks without lag.
//
// Pure state transformation: no blocking, no error paths. Lifecycle
// termination happens here when the follower signals at-rest and autoRemove
// was requested
func (c *Controller) Update(dt float64, agentSpeed float64) {
	if c.done || !c.restSet {
		return
	}

	boost := 0.0
	if agentSpeed > 0 {
		boost = agentSpeed * parameter.AgentSpeedBoostFactor
	}

	c.follower.SetRest(c.restWorld())
	pos, atRest := c.follower.Tick(dt, boost)

	if w := c.weight * c.follower.Blend(); w > 0 {
		anchorPos := c.tip.WorldPosition()
		anchorDir := c.tip.WorldAxis(c.cfg.Axis)
		if point, ok := c.solver.ComputeLookPoint(pos, anchorPos, anchorDir, c.cfg); ok {
			c.solver.ApplyChain(point, c.cfg, c.bones, c.tip, w)
		}
	}

	if atRest {
		if c.onRest != nil {
			c.onRest()
		}
		if c.autoRemove {
			c.done = true
		}
	}
}

func (c *Controller) restWorld() mgl64.Vec3 {
	root := c.skel.Root()
	return root.WorldPosition().Add(root.WorldRotation().Rotate(c.restLocal))
}

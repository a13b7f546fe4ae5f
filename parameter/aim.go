package parameter

// Aim follower motion
const (
	// BaseLookSpeed is the default exponential approach rate toward the live
	// target (1/sec), before any speed boost
	BaseLookSpeed = 4.0

	// SpeedBoostMax caps the externally supplied locomotion speed boost
	SpeedBoostMax = 10.0

	// AgentSpeedBoostFactor converts agent velocity magnitude (units/sec)
	// into follower speed boost
	AgentSpeedBoostFactor = 1.5

	// RestSnapDistance is the follower-to-rest distance below which the
	// follower snaps exactly to rest and the return cycle completes
	RestSnapDistance = 0.05

	// RestOffsetDistance is how far along the aim axis from the anchor the
	// rest position sits, fixed at the first target assignment
	RestOffsetDistance = 1.0
)

// Blend weight ramps (per tick, not per second)
const (
	// BlendGainPerTick raises the blend weight while a target is tracked
	BlendGainPerTick = 0.02

	// BlendDecayPerTick lowers the blend weight while returning to rest
	BlendDecayPerTick = 0.01

	// ReturnBoostPerTick grows the return speed accumulator each targetless
	// tick so an abandoned aim settles quickly
	ReturnBoostPerTick = 0.7

	// ReturnBoostMax caps the return speed accumulator
	ReturnBoostMax = 10.0
)

// Aim solver
const (
	// BlendSoftness divides the angle excess (degrees) over the chain's angle
	// limit to produce the angular blend-out term
	BlendSoftness = 50.0

	// SolverIterations is the default per-frame chain correction pass count.
	// Bounded iteration replaces a convergence tolerance; pathological
	// geometry yields a suboptimal pose, never an error
	SolverIterations = 10
)

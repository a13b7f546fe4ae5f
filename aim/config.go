// Package aim implements procedural look-at correction for skeletal chains:
// a smoothed follower trails a world-space target, a bounded solver blends
// the desired look direction against angle/distance limits, and an iterative
// per-bone pass rotates the chain toward it each frame
package aim

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/aimrig/rig"
)

// ErrEmptyChain reports a chain configuration with no bones
var ErrEmptyChain = errors.New("aim: chain has no bones")

// BoneWeight pairs a bone with its correction weight.
// Immutable once part of a ChainConfig
type BoneWeight struct {
	Bone   rig.BoneID
	Weight float64 // [0, 1]
}

// ChainConfig describes one aim chain. Produced once at setup and read-only
// for the lifetime of the controller that uses it
type ChainConfig struct {
	// Bones in root-to-tip order. Slice order IS the per-iteration
	// application order and encodes the chain's correction priority
	Bones []BoneWeight

	// Axis is the local direction of the anchor segment designated as
	// "pointing" outward
	Axis rig.Axis

	// AngleLimitDeg blends the look direction back toward the aim axis when
	// the target strays further off-axis than this. 180 disables the limit
	AngleLimitDeg float64

	// DistanceLimit blends the look direction back toward the aim axis when
	// the target comes closer than this. 0 disables the limit
	DistanceLimit float64

	// Tip is the terminal bone whose world transform anchors the chain
	Tip rig.BoneID

	// Priority orders this chain against others sharing bones; lower runs
	// first (base layer before head layer)
	Priority int
}

// Validate reports setup-time configuration errors
func (c ChainConfig) Validate() error {
	if len(c.Bones) == 0 {
		return ErrEmptyChain
	}
	for _, bw := range c.Bones {
		if bw.Bone == "" {
			return errors.New("aim: chain entry with empty bone id")
		}
		if bw.Weight < 0 || bw.Weight > 1 {
			return fmt.Errorf("aim: bone %s weight %v outside [0,1]", bw.Bone, bw.Weight)
		}
	}
	if c.Tip == "" {
		return errors.New("aim: chain has no tip bone")
	}
	if c.AngleLimitDeg < 0 || c.AngleLimitDeg > 180 {
		return fmt.Errorf("aim: angle limit %v outside [0,180]", c.AngleLimitDeg)
	}
	if c.DistanceLimit < 0 {
		return fmt.Errorf("aim: negative distance limit %v", c.DistanceLimit)
	}
	return nil
}

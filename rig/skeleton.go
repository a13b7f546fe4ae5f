package rig

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Skeleton exposes named bone transforms. Hosts embedding a real animation
// system implement this over their own rig; Humanoid below is the in-memory
// reference implementation used by tests and sandboxes
type Skeleton interface {
	// Resolve returns the mutable orientation handle for a bone.
	// A missing bone is fatal at setup time, wrapped around ErrBoneNotFound
	Resolve(id BoneID) (*Bone, error)
	// Root returns the bone defining the owning body's local space
	Root() *Bone
}

// Humanoid is an in-memory standard humanoid skeleton in T-pose
type Humanoid struct {
	root  *Bone
	bones map[BoneID]*Bone
}

// NewHumanoid builds the standard humanoid hierarchy. Proportions are
// schematic (roughly 1.7 units tall); limb roots are oriented so each limb's
// conventional aim axis points outward along the limb:
// arms +X, legs +Y, head and torso +Z (facing)
func NewHumanoid() *Humanoid {
	h := &Humanoid{bones: make(map[BoneID]*Bone)}

	add := func(id BoneID, parent *Bone, pos mgl64.Vec3) *Bone {
		b := NewBone(id, parent, pos)
		h.bones[id] = b
		return b
	}

	hips := add(BoneHips, nil, mgl64.Vec3{0, 1.0, 0})
	spine := add(BoneSpine, hips, mgl64.Vec3{0, 0.15, 0})
	chest := add(BoneChest, spine, mgl64.Vec3{0, 0.2, 0})
	neck := add(BoneNeck, chest, mgl64.Vec3{0, 0.25, 0})
	add(BoneHead, neck, mgl64.Vec3{0, 0.1, 0})

	rShoulder := add(BoneRightShoulder, chest, mgl64.Vec3{0.1, 0.2, 0})
	rUpper := add(BoneRightUpperArm, rShoulder, mgl64.Vec3{0.1, 0, 0})
	rLower := add(BoneRightLowerArm, rUpper, mgl64.Vec3{0.3, 0, 0})
	add(BoneRightHand, rLower, mgl64.Vec3{0.3, 0, 0})

	lShoulder := add(BoneLeftShoulder, chest, mgl64.Vec3{-0.1, 0.2, 0})
	// Mirror about Y so the local +X aim axis points outward along the left arm
	lShoulder.LocalRotation = mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 1, 0})
	lUpper := add(BoneLeftUpperArm, lShoulder, mgl64.Vec3{0.1, 0, 0})
	lLower := add(BoneLeftLowerArm, lUpper, mgl64.Vec3{0.3, 0, 0})
	add(BoneLeftHand, lLower, mgl64.Vec3{0.3, 0, 0})

	rHip := add(BoneRightUpperLeg, hips, mgl64.Vec3{0.1, -0.05, 0})
	// Flip about X so the local +Y aim axis points down the leg
	rHip.LocalRotation = mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0})
	rKnee := add(BoneRightLowerLeg, rHip, mgl64.Vec3{0, 0.45, 0})
	add(BoneRightFoot, rKnee, mgl64.Vec3{0, 0.45, 0})

	lHip := add(BoneLeftUpperLeg, hips, mgl64.Vec3{-0.1, -0.05, 0})
	lHip.LocalRotation = mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0})
	lKnee := add(BoneLeftLowerLeg, lHip, mgl64.Vec3{0, 0.45, 0})
	add(BoneLeftFoot, lKnee, mgl64.Vec3{0, 0.45, 0})

	h.root = hips
	return h
}

// Resolve returns the handle for id, or an error wrapping ErrBoneNotFound
func (h *Humanoid) Resolve(id BoneID) (*Bone, error) {
	b, ok := h.bones[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBoneNotFound, id)
	}
	return b, nil
}

// Root returns the hips bone
func (h *Humanoid) Root() *Bone {
	return h.root
}

// Bones returns every bone in the skeleton, in no particular order
func (h *Humanoid) Bones() []*Bone {
	out := make([]*Bone, 0, len(h.bones))
	for _, b := range h.bones {
		out = append(out, b)
	}
	return out
}

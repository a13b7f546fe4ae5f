package rig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrBoneNotFound reports a chain referencing a bone the rig does not have.
// It is a setup-time configuration error, never a per-frame condition
var ErrBoneNotFound = errors.New("rig: bone not found")

// Axis selects which local basis vector of a bone is designated as "pointing"
// outward (the aim axis of a chain's anchor segment)
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vec returns the local basis vector of the axis
func (a Axis) Vec() mgl64.Vec3 {
	switch a {
	case AxisX:
		return mgl64.Vec3{1, 0, 0}
	case AxisY:
		return mgl64.Vec3{0, 1, 0}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// ParseAxis converts an axis name ("x", "y", "z", case-insensitive) to an Axis
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return AxisX, fmt.Errorf("rig: unknown axis %q", s)
}

// BoneID identifies a bone within a skeleton. Host rigs may use any names;
// the constants below cover the standard humanoid set
type BoneID string

// Standard humanoid bone identifiers
const (
	BoneHips  BoneID = "hips"
	BoneSpine BoneID = "spine"
	BoneChest BoneID = "chest"
	BoneNeck  BoneID = "neck"
	BoneHead  BoneID = "head"

	BoneLeftShoulder  BoneID = "left-shoulder"
	BoneLeftUpperArm  BoneID = "left-upper-arm"
	BoneLeftLowerArm  BoneID = "left-lower-arm"
	BoneLeftHand      BoneID = "left-hand"
	BoneRightShoulder BoneID = "right-shoulder"
	BoneRightUpperArm BoneID = "right-upper-arm"
	BoneRightLowerArm BoneID = "right-lower-arm"
	BoneRightHand     BoneID = "right-hand"

	BoneLeftUpperLeg  BoneID = "left-upper-leg"
	BoneLeftLowerLeg  BoneID = "left-lower-leg"
	BoneLeftFoot      BoneID = "left-foot"
	BoneRightUpperLeg BoneID = "right-upper-leg"
	BoneRightLowerLeg BoneID = "right-lower-leg"
	BoneRightFoot     BoneID = "right-foot"
)

// Bone is a mutable orientation handle within a skeleton hierarchy.
// Handles are resolved once at controller setup and referenced for the
// controller's lifetime; they are owned by the skeleton, not the resolver
type Bone struct {
	ID BoneID

	// LocalPosition is the offset from the parent bone, in parent space
	LocalPosition mgl64.Vec3
	// LocalRotation is the orientation relative to the parent bone
	LocalRotation mgl64.Quat

	parent *Bone
}

// NewBone creates a bone parented under parent (nil for the root)
func NewBone(id BoneID, parent *Bone, localPos mgl64.Vec3) *Bone {
	return &Bone{
		ID:            id,
		LocalPosition: localPos,
		LocalRotation: mgl64.QuatIdent(),
		parent:        parent,
	}
}

// Parent returns the parent bone, nil for the root
func (b *Bone) Parent() *Bone {
	return b.parent
}

// WorldRotation composes local rotations from the root down to this bone
func (b *Bone) WorldRotation() mgl64.Quat {
	if b.parent == nil {
		return b.LocalRotation
	}
	return b.parent.WorldRotation().Mul(b.LocalRotation).Normalize()
}

// WorldPosition composes local offsets from the root down to this bone
func (b *Bone) WorldPosition() mgl64.Vec3 {
	if b.parent == nil {
		return b.LocalPosition
	}
	return b.parent.WorldPosition().Add(b.parent.WorldRotation().Rotate(b.LocalPosition))
}

// WorldAxis returns the bone's local axis expressed in world space
func (b *Bone) WorldAxis(a Axis) mgl64.Vec3 {
	return b.WorldRotation().Rotate(a.Vec())
}

// ApplyWorldRotation premultiplies a world-space rotation delta onto the
// bone's orientation, leaving the rest of the hierarchy untouched
func (b *Bone) ApplyWorldRotation(delta mgl64.Quat) {
	if b.parent == nil {
		b.LocalRotation = delta.Mul(b.LocalRotation).Normalize()
		return
	}
	pw := b.parent.WorldRotation()
	b.LocalRotation = pw.Inverse().Mul(delta).Mul(pw).Mul(b.LocalRotation).Normalize()
}

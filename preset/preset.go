// Package preset supplies the static per-region aim chain tables and the
// loader for caller-supplied custom chains. Presets are data selected by
// region identifier, not behavior
package preset

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/aimrig/aim"
	"github.com/lixenwraith/aimrig/rig"
)

// Region identifies a built-in body region chain
type Region string

const (
	RegionRightArm Region = "right-arm"
	RegionLeftArm  Region = "left-arm"
	RegionRightLeg Region = "right-leg"
	RegionLeftLeg  Region = "left-leg"
	RegionHead     Region = "head"
	RegionBase     Region = "base"
)

// chains holds the built-in region tables. Bone order is root-to-tip;
// weights grow toward the tip so distal bones carry most of the correction.
// Priority layers base before limbs and limbs before the head, so chains
// sharing torso bones apply in a deterministic order
var chains = map[Region]aim.ChainConfig{
	RegionRightArm: {
		Bones: []aim.BoneWeight{
			{Bone: rig.BoneChest, Weight: 0.15},
			{Bone: rig.BoneRightShoulder, Weight: 0.3},
			{Bone: rig.BoneRightUpperArm, Weight: 0.6},
			{Bone: rig.BoneRightLowerArm, Weight: 0.85},
			{Bone: rig.BoneRightHand, Weight: 1},
		},
		Axis:          rig.AxisX,
		AngleLimitDeg: 120,
		DistanceLimit: 0.5,
		Tip:           rig.BoneRightHand,
		Priority:      10,
	},
	RegionLeftArm: {
		Bones: []aim.BoneWeight{
			{Bone: rig.BoneChest, Weight: 0.15},
			{Bone: rig.BoneLeftShoulder, Weight: 0.3},
			{Bone: rig.BoneLeftUpperArm, Weight: 0.6},
			{Bone: rig.BoneLeftLowerArm, Weight: 0.85},
			{Bone: rig.BoneLeftHand, Weight: 1},
		},
		Axis:          rig.AxisX,
		AngleLimitDeg: 120,
		DistanceLimit: 0.5,
		Tip:           rig.BoneLeftHand,
		Priority:      10,
	},
	RegionRightLeg: {
		Bones: []aim.BoneWeight{
			{Bone: rig.BoneRightUpperLeg, Weight: 0.5},
			{Bone: rig.BoneRightLowerLeg, Weight: 0.8},
			{Bone: rig.BoneRightFoot, Weight: 1},
		},
		Axis:          rig.AxisY,
		AngleLimitDeg: 90,
		DistanceLimit: 0.3,
		Tip:           rig.BoneRightFoot,
		Priority:      10,
	},
	RegionLeftLeg: {
		Bones: []aim.BoneWeight{
			{Bone: rig.BoneLeftUpperLeg, Weight: 0.5},
			{Bone: rig.BoneLeftLowerLeg, Weight: 0.8},
			{Bone: rig.BoneLeftFoot, Weight: 1},
		},
		Axis:          rig.AxisY,
		AngleLimitDeg: 90,
		DistanceLimit: 0.3,
		Tip:           rig.BoneLeftFoot,
		Priority:      10,
	},
	RegionHead: {
		Bones: []aim.BoneWeight{
			{Bone: rig.BoneChest, Weight: 0.1},
			{Bone: rig.BoneNeck, Weight: 0.35},
			{Bone: rig.BoneHead, Weight: 0.8},
		},
		Axis:          rig.AxisZ,
		AngleLimitDeg: 100,
		DistanceLimit: 0.2,
		Tip:           rig.BoneHead,
		Priority:      20,
	},
	RegionBase: {
		Bones: []aim.BoneWeight{
			{Bone: rig.BoneHips, Weight: 0.3},
			{Bone: rig.BoneSpine, Weight: 0.5},
			{Bone: rig.BoneChest, Weight: 0.7},
		},
		Axis:          rig.AxisZ,
		AngleLimitDeg: 160,
		DistanceLimit: 0.2,
		Tip:           rig.BoneChest,
		Priority:      0,
	},
}

// Chain returns the built-in chain configuration for a region
func Chain(r Region) (aim.ChainConfig, error) {
	cfg, ok := chains[r]
	if !ok {
		return aim.ChainConfig{}, fmt.Errorf("preset: unknown region %q", r)
	}
	// Copy the bone slice so a misbehaving caller cannot mutate the table
	cfg.Bones = append([]aim.BoneWeight(nil), cfg.Bones...)
	return cfg, nil
}

// Regions lists the built-in regions in stable order
func Regions() []Region {
	out := make([]Region, 0, len(chains))
	for r := range chains {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package preset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/aimrig/aim"
	"github.com/lixenwraith/aimrig/rig"
)

// chainFile is the YAML shape of a caller-supplied custom chain
type chainFile struct {
	Bones []struct {
		Bone   string  `yaml:"bone"`
		Weight float64 `yaml:"weight"`
	} `yaml:"bones"`
	Axis          string  `yaml:"axis"`
	AngleLimit    float64 `yaml:"angle_limit"`
	DistanceLimit float64 `yaml:"distance_limit"`
	Tip           string  `yaml:"tip"`
	Priority      int     `yaml:"priority"`
}

// LoadChain parses a custom chain definition. Bone names are not restricted
// to the standard humanoid set; resolution against the actual rig happens at
// controller setup. The tip defaults to the last chain bone when omitted
func LoadChain(r io.Reader) (aim.ChainConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return aim.ChainConfig{}, fmt.Errorf("preset: read chain: %w", err)
	}

	var cf chainFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return aim.ChainConfig{}, fmt.Errorf("preset: parse chain: %w", err)
	}

	axis, err := rig.ParseAxis(cf.Axis)
	if err != nil {
		return aim.ChainConfig{}, fmt.Errorf("preset: %w", err)
	}

	cfg := aim.ChainConfig{
		Axis:          axis,
		AngleLimitDeg: cf.AngleLimit,
		DistanceLimit: cf.DistanceLimit,
		Tip:           rig.BoneID(cf.Tip),
		Priority:      cf.Priority,
	}
	for _, b := range cf.Bones {
		cfg.Bones = append(cfg.Bones, aim.BoneWeight{Bone: rig.BoneID(b.Bone), Weight: b.Weight})
	}
	if cfg.Tip == "" && len(cfg.Bones) > 0 {
		cfg.Tip = cfg.Bones[len(cfg.Bones)-1].Bone
	}

	if err := cfg.Validate(); err != nil {
		return aim.ChainConfig{}, err
	}
	return cfg, nil
}

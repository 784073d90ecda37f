package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SpriteSpec struct {
	Frames        int `yaml:"frames"`
	FrameDuration int `yaml:"frame_duration"`
}

// AvatarSpec tunes the controllable actor. Speeds are pixels per frame and
// gravity is pixels per frame squared.
type AvatarSpec struct {
	Name      string     `yaml:"name"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	MoveSpeed float64    `yaml:"move_speed"`
	JumpSpeed float64    `yaml:"jump_speed"`
	FallSpeed float64    `yaml:"fall_speed"`
	Gravity   float64    `yaml:"gravity"`
	Sprite    SpriteSpec `yaml:"sprite"`
}

func DefaultAvatarSpec() AvatarSpec {
	return AvatarSpec{
		Name:      "avatar",
		Width:     7,
		Height:    16,
		MoveSpeed: 1,
		JumpSpeed: 3,
		FallSpeed: 1,
		Gravity:   0.1,
		Sprite:    SpriteSpec{Frames: 3, FrameDuration: 5},
	}
}

func (s AvatarSpec) Validate() error {
	var errs []error
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("size must be positive, got %gx%g", s.Width, s.Height))
	}
	if s.MoveSpeed < 0 || s.JumpSpeed < 0 || s.FallSpeed < 0 {
		errs = append(errs, fmt.Errorf("speeds must not be negative"))
	}
	if s.Sprite.Frames <= 0 || s.Sprite.FrameDuration <= 0 {
		errs = append(errs, fmt.Errorf("sprite frames and frame_duration must be positive"))
	}
	return errors.Join(errs...)
}

// LoadAvatarSpec reads avatar.yaml. Fields missing from the file keep their
// defaults.
func LoadAvatarSpec() (*AvatarSpec, error) {
	data, err := Load("avatar.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load avatar.yaml: %w", err)
	}
	spec := DefaultAvatarSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal avatar.yaml: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: avatar.yaml: %w", err)
	}
	return &spec, nil
}

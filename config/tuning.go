package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk override file. Sections and fields left out of the
// YAML keep their current values.
type Tuning struct {
	Physics   PhysicsConstants `yaml:"physics"`
	Hazard    HazardConfig     `yaml:"hazard"`
	Reach     ReachConfig      `yaml:"reach"`
	Generator GeneratorConfig  `yaml:"generator"`
	Sim       SimConfig        `yaml:"sim"`
}

// Current returns the live configuration as a Tuning value.
func Current() Tuning {
	return Tuning{
		Physics:   Physics,
		Hazard:    Hazard,
		Reach:     Reach,
		Generator: Generator,
		Sim:       Sim,
	}
}

// ParseTuning overlays data onto base.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a tuning file from fsys and overlays it onto the current
// configuration. Nothing is applied.
func LoadTuning(fsys fs.FS, name string) (Tuning, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", name, err)
	}
	t, err := ParseTuning(data, Current())
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return t, nil
}

// LoadTuningFile is LoadTuning for a path on the local filesystem.
func LoadTuningFile(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(data, Current())
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Apply replaces the global configuration. Consumers hold pointers to the
// globals, so the physics and the oracle keep agreeing after a reload.
func (t Tuning) Apply() {
	Physics = t.Physics
	Hazard = t.Hazard
	Reach = t.Reach
	Generator = t.Generator
	Sim = t.Sim
}

func (t Tuning) validate() error {
	p := t.Physics
	switch {
	case p.Gravity <= 0:
		return fmt.Errorf("config: gravity must be positive, got %g", p.Gravity)
	case p.JumpForce >= 0 || p.DoubleJumpForce >= 0 || p.WallJumpForce.Y >= 0:
		return fmt.Errorf("config: jump forces must point up (negative)")
	case p.MoveSpeed <= 0 || p.MaxFallSpeed <= 0:
		return fmt.Errorf("config: speeds must be positive")
	case p.ActorHalf.X <= 0 || p.ActorHalf.Y <= 0:
		return fmt.Errorf("config: actor extents must be positive")
	case p.AirControl <= 0:
		return fmt.Errorf("config: air control must be positive, got %g", p.AirControl)
	case p.MaxJumps < 1:
		return fmt.Errorf("config: max jumps must be at least 1, got %d", p.MaxJumps)
	case t.Reach.SafetyFactor <= 0 || t.Reach.SafetyFactor > 1:
		return fmt.Errorf("config: safety factor %g outside (0, 1]", t.Reach.SafetyFactor)
	case t.Reach.DiagonalFactor <= 0 || t.Reach.DiagonalFactor > 1:
		return fmt.Errorf("config: diagonal factor %g outside (0, 1]", t.Reach.DiagonalFactor)
	case t.Sim.MaxStep <= 0:
		return fmt.Errorf("config: max step must be positive")
	case t.Generator.CheckpointEvery <= 0 || t.Generator.WallJumpEvery <= 0:
		return fmt.Errorf("config: generator intervals must be positive")
	case t.Generator.MaxAttempts <= 0:
		return fmt.Errorf("config: max attempts must be positive, got %d", t.Generator.MaxAttempts)
	}
	return nil
}

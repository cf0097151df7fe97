package config

import "github.com/automoto/parkour/shared/gamemath"

// PhysicsConstants is the single set of movement constants shared by the
// kinematic model and the reachability oracle. Both read it through a pointer
// and never keep their own copy, so the solvability guarantee of generated
// levels always refers to the physics that actually runs.
type PhysicsConstants struct {
	// Gravity is in px/s², positive is down. Forces are initial speeds in
	// px/s, negative is up.
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	JumpForce       float64 `yaml:"jump_force"`
	DoubleJumpForce float64 `yaml:"double_jump_force"`

	WallJumpForce gamemath.Vec `yaml:"wall_jump_force"`

	// Horizontal control. AirControl is the fraction of MoveSpeed available
	// while airborne; Friction and AirDamping are per-step multipliers.
	MoveSpeed      float64 `yaml:"move_speed"`
	AirControl     float64 `yaml:"air_control"`
	Friction       float64 `yaml:"friction"`
	AirDamping     float64 `yaml:"air_damping"`
	AccelFactor    float64 `yaml:"accel_factor"`
	WallSlideSpeed float64 `yaml:"wall_slide_speed"`
	MaxJumps       int     `yaml:"max_jumps"`

	ActorHalf gamemath.Vec `yaml:"actor_half"`
}

// CollisionConfig contains resolver tolerances and the broad-phase grid size
type CollisionConfig struct {
	SupportEpsilon float64 // Max gap under a grounded actor that still counts as standing
	WallProbe      float64 // Distance past the leading edge probed for wall slides
	BroadPhaseCell int     // resolv cell size in pixels
	QueryMargin    float64 // Padding around the actor's broad-phase object
}

// HazardConfig contains platform behavior values
type HazardConfig struct {
	CrumbleDelay float64 `yaml:"crumble_delay"` // Seconds between first contact and collapse
	BounceForce  float64 `yaml:"bounce_force"`  // Default upward speed given by bouncy platforms
	MoveRadius   float64 `yaml:"move_radius"`   // Default amplitude of moving platforms
	MoveSpeed    float64 `yaml:"move_speed"`    // Default angular speed (rad/s) of moving platforms
}

// ReachConfig contains the safety margins applied to theoretical jump limits
type ReachConfig struct {
	SafetyFactor   float64 `yaml:"safety_factor"`   // Orthogonal moves
	DiagonalFactor float64 `yaml:"diagonal_factor"` // Extra multiplier for combined height+distance moves
}

// GeneratorConfig contains procedural level construction values
type GeneratorConfig struct {
	Width            float64      `yaml:"width"`
	BaseHeight       float64      `yaml:"base_height"`         // Level height at difficulty 0
	HeightPerLevel   float64      `yaml:"height_per_level"`    // Added height per difficulty step
	SideMargin       float64      `yaml:"side_margin"`         // Reserved band on both sides for walls and spikes
	TopMargin        float64      `yaml:"top_margin"`          // Distance from the level top to the exit platform
	PlatformHalfH    float64      `yaml:"platform_half_h"`
	StartHalfW       float64      `yaml:"start_half_w"`
	ExitHalfW        float64      `yaml:"exit_half_w"`
	BaseHalfW        float64      `yaml:"base_half_w"`         // Platform half-width at difficulty 0
	HalfWPerLevel    float64      `yaml:"half_w_per_level"`    // Half-width removed per difficulty step
	MinHalfW         float64      `yaml:"min_half_w"`
	HalfWJitter      float64      `yaml:"half_w_jitter"`
	CheckpointEvery  int          `yaml:"checkpoint_every"`
	WallJumpEvery    int          `yaml:"wall_jump_every"`
	WallJumpMinLevel int          `yaml:"wall_jump_min_level"`
	RetreatStep      float64      `yaml:"retreat_step"`        // Rise removed after a failed placement attempt
	MaxAttempts      int          `yaml:"max_attempts"`        // Attempts per platform before giving up
	MaxPlatforms     int          `yaml:"max_platforms"`       // Hard cap on generated path length
	CollectibleRate  float64      `yaml:"collectible_rate"`
	SpikeBase        int          `yaml:"spike_base"`          // Spikes at difficulty 0
	SpikesPerLevel   float64      `yaml:"spikes_per_level"`
	SpikeHalf        gamemath.Vec `yaml:"spike_half"`
	WallHalfW        float64      `yaml:"wall_half_w"`
}

// SimConfig contains simulation loop values
type SimConfig struct {
	MaxStep        float64      `yaml:"max_step"`        // Upper bound for a single step's dt
	FallOutMargin  float64      `yaml:"fall_out_margin"` // Distance below the level bottom that counts as a fall-out
	CheckpointSize gamemath.Vec `yaml:"checkpoint_size"`
	CollectRadius  float64      `yaml:"collect_radius"`
}

// Global configuration instances
var Physics PhysicsConstants
var Collision CollisionConfig
var Hazard HazardConfig
var Reach ReachConfig
var Generator GeneratorConfig
var Sim SimConfig

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Physics = DefaultPhysics()

	Collision = CollisionConfig{
		SupportEpsilon: 1.0,
		WallProbe:      1.0,
		BroadPhaseCell: 32,
		QueryMargin:    4.0,
	}

	Hazard = HazardConfig{
		CrumbleDelay: 1.0,
		BounceForce:  700,
		MoveRadius:   32,
		MoveSpeed:    1.5,
	}

	Reach = ReachConfig{
		SafetyFactor:   0.8,
		DiagonalFactor: 0.7,
	}

	Generator = GeneratorConfig{
		Width:            800,
		BaseHeight:       1600,
		HeightPerLevel:   200,
		SideMargin:       48,
		TopMargin:        120,
		PlatformHalfH:    10,
		StartHalfW:       160,
		ExitHalfW:        120,
		BaseHalfW:        100,
		HalfWPerLevel:    6,
		MinHalfW:         36,
		HalfWJitter:      10,
		CheckpointEvery:  4,
		WallJumpEvery:    7,
		WallJumpMinLevel: 5,
		RetreatStep:      8,
		MaxAttempts:      48,
		MaxPlatforms:     512,
		CollectibleRate:  0.35,
		SpikeBase:        2,
		SpikesPerLevel:   1.5,
		SpikeHalf:        gamemath.Vec{X: 8, Y: 12},
		WallHalfW:        8,
	}

	Sim = SimConfig{
		MaxStep:        1.0 / 60.0,
		FallOutMargin:  200,
		CheckpointSize: gamemath.Vec{X: 16, Y: 24},
		CollectRadius:  14,
	}
}

// DefaultPhysics returns the stock movement constants.
func DefaultPhysics() PhysicsConstants {
	return PhysicsConstants{
		Gravity:         1200,
		MaxFallSpeed:    800,
		JumpForce:       -500,
		DoubleJumpForce: -400,
		WallJumpForce:   gamemath.Vec{X: 300, Y: -450},
		MoveSpeed:       200,
		AirControl:      0.8,
		Friction:        0.85,
		AirDamping:      0.98,
		AccelFactor:     8,
		WallSlideSpeed:  100,
		MaxJumps:        2,
		ActorHalf:       gamemath.Vec{X: 12, Y: 16},
	}
}

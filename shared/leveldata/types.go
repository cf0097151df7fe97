// Package leveldata holds the parkour level model shared by the generator, the
// simulation and the viewer. It is pure data with no engine dependencies.
package leveldata

import (
	"fmt"

	"github.com/automoto/parkour/shared/gamemath"
)

// PlatformType selects how a platform reacts to the actor.
type PlatformType int

const (
	Solid PlatformType = iota
	Moving
	Crumbling
	Bouncy
	Spike
)

var platformTypeNames = map[PlatformType]string{
	Solid:     "solid",
	Moving:    "moving",
	Crumbling: "crumbling",
	Bouncy:    "bouncy",
	Spike:     "spike",
}

func (t PlatformType) String() string {
	if name, ok := platformTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParsePlatformType maps a Tiled property value to a PlatformType.
func ParsePlatformType(s string) (PlatformType, bool) {
	for t, name := range platformTypeNames {
		if name == s {
			return t, true
		}
	}
	return Solid, false
}

// Pattern is the motion path of a moving platform.
type Pattern int

const (
	PatternNone Pattern = iota
	PatternHorizontal
	PatternVertical
	PatternCircular
	PatternPatrol // eased back-and-forth along x
)

var patternNames = map[Pattern]string{
	PatternNone:       "",
	PatternHorizontal: "horizontal",
	PatternVertical:   "vertical",
	PatternCircular:   "circular",
	PatternPatrol:     "patrol",
}

func (p Pattern) String() string { return patternNames[p] }

// ParsePattern maps a Tiled property value to a Pattern.
func ParsePattern(s string) (Pattern, bool) {
	for p, name := range patternNames {
		if name == s {
			return p, true
		}
	}
	return PatternNone, false
}

// PatternData parametrizes a moving platform. Positions are derived from
// simulation time, never accumulated.
type PatternData struct {
	Center gamemath.Vec
	Radius float64
	Speed  float64 // radians per second
	Phase  float64
}

// CrumblePhase is the lifecycle of a crumbling platform.
type CrumblePhase int

const (
	Intact CrumblePhase = iota
	Armed
	Collapsed
)

// CrumbleState replaces "timer present or not": Intact platforms were never
// touched, Armed ones count Timer down, Collapsed ones are gone.
type CrumbleState struct {
	Phase CrumblePhase
	Timer float64
}

type Platform struct {
	Pos  gamemath.Vec
	Half gamemath.Vec
	Type PlatformType

	Pattern     Pattern
	PatternData PatternData
	BounceForce float64
	Crumble     CrumbleState

	// LastDelta is the displacement applied by the most recent hazard update.
	LastDelta gamemath.Vec
}

// Active reports whether the platform still takes part in collision and rendering.
func (p *Platform) Active() bool {
	return p.Crumble.Phase != Collapsed
}

// Bounds returns the platform's collision box.
func (p *Platform) Bounds() gamemath.AABB {
	return gamemath.AABB{Center: p.Pos, Half: p.Half}
}

// Top returns the y of the platform's upper face.
func (p *Platform) Top() float64 {
	return p.Pos.Y - p.Half.Y
}

// Lethal reports whether touching the platform kills the actor.
func (p *Platform) Lethal() bool {
	return p.Type == Spike
}

// Arm starts the crumble countdown. It has no effect on platforms that are not
// crumbling or whose countdown already started, and reports whether it armed.
func (p *Platform) Arm(delay float64) bool {
	if p.Type != Crumbling || p.Crumble.Phase != Intact {
		return false
	}
	p.Crumble = CrumbleState{Phase: Armed, Timer: delay}
	return true
}

// CollectibleKind selects the score value of a pickup.
type CollectibleKind int

const (
	Coin CollectibleKind = iota
	Gem
)

func (k CollectibleKind) String() string {
	if k == Gem {
		return "gem"
	}
	return "coin"
}

type Collectible struct {
	Pos       gamemath.Vec
	Kind      CollectibleKind
	Value     int
	Collected bool
}

// Checkpoint is a respawn point standing on a path platform.
type Checkpoint struct {
	Pos      gamemath.Vec
	Platform int
}

// Level is a complete course. Path lists the indices of the critical-path
// platforms in traversal order, spawn platform first and exit platform last;
// every consecutive pair is reachable with the actor's move set.
type Level struct {
	Platforms    []Platform
	Collectibles []Collectible
	Checkpoints  []Checkpoint
	Path         []int

	SpawnPoint gamemath.Vec
	ExitY      float64 // reaching a center y above this completes the level

	Width  float64
	Height float64

	Name       string // source file of an authored course; empty when generated
	Seed       int64
	Difficulty int
}

// CourseID names the course for saved progress. Authored courses go by
// their file, generated ones by seed and difficulty.
func (l *Level) CourseID() string {
	if l.Name != "" {
		return "tmx:" + l.Name
	}
	return fmt.Sprintf("gen:%d:%d", l.Seed, l.Difficulty)
}

// Reached reports whether an actor centered at y has passed the exit threshold.
func (l *Level) Reached(y float64) bool {
	return y <= l.ExitY
}

// Package kinematics integrates the player-controlled body: gravity, horizontal
// control, jump impulses and wall-slide damping.
package kinematics

import (
	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/shared/gamemath"
)

// Actor is the single simulated body. Pos is the center of its box.
type Actor struct {
	Pos  gamemath.Vec
	Vel  gamemath.Vec
	Half gamemath.Vec

	Grounded    bool
	JumpCount   int
	MaxJumps    int
	WallSliding bool
	FacingRight bool

	// LastGrounded is the last position where the actor landed safely.
	LastGrounded gamemath.Vec
}

// NewActor creates an actor standing still at spawn.
func NewActor(spawn gamemath.Vec, c *config.PhysicsConstants) *Actor {
	a := &Actor{
		Half:        c.ActorHalf,
		MaxJumps:    max(c.MaxJumps, 1),
		FacingRight: true,
	}
	a.Respawn(spawn)
	return a
}

// Bounds returns the actor's collision box.
func (a *Actor) Bounds() gamemath.AABB {
	return gamemath.AABB{Center: a.Pos, Half: a.Half}
}

// Respawn puts the actor at pos with all motion state cleared.
func (a *Actor) Respawn(pos gamemath.Vec) {
	a.Pos = pos
	a.Vel = gamemath.Vec{}
	a.Grounded = false
	a.JumpCount = 0
	a.WallSliding = false
	a.LastGrounded = pos
}

// Intents are the per-frame inputs. JumpRequested is edge-triggered.
type Intents struct {
	MoveDirection int
	JumpRequested bool
	DashRequested bool // reserved
}

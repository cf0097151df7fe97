package kinematics

import (
	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/shared/gamemath"
)

// WallProbe answers whether a non-lethal platform touches the actor's side in
// direction dir (-1 left, 1 right).
type WallProbe interface {
	TouchingWall(a *Actor, dir float64) bool
}

// JumpKind is the result of a jump request.
type JumpKind int

const (
	JumpNone JumpKind = iota
	JumpGround
	JumpWall
	JumpAir
)

func (k JumpKind) String() string {
	switch k {
	case JumpGround:
		return "ground"
	case JumpWall:
		return "wall"
	case JumpAir:
		return "air"
	}
	return "none"
}

// Model steps actors against a shared set of physics constants.
type Model struct {
	Constants *config.PhysicsConstants
}

// NewModel returns a model reading c. Passing nil uses config.Physics.
func NewModel(c *config.PhysicsConstants) *Model {
	if c == nil {
		c = &config.Physics
	}
	return &Model{Constants: c}
}

// Step applies gravity, wall-slide clamping, integration and damping for dt
// seconds. probe may be nil when no wall geometry exists.
func (m *Model) Step(a *Actor, dt float64, probe WallProbe) {
	c := m.Constants

	if !a.Grounded {
		a.Vel.Y += c.Gravity * dt
		if a.Vel.Y > c.MaxFallSpeed {
			a.Vel.Y = c.MaxFallSpeed
		}
	}

	a.WallSliding = false
	if !a.Grounded && a.Vel.Y > 0 && a.Vel.X != 0 && probe != nil {
		if probe.TouchingWall(a, gamemath.Sign(a.Vel.X)) {
			a.WallSliding = true
			if a.Vel.Y > c.WallSlideSpeed {
				a.Vel.Y = c.WallSlideSpeed
			}
		}
	}

	// Semi-implicit Euler: velocity is already updated for this step.
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))

	if a.Grounded {
		a.Vel.X = gamemath.Damp(a.Vel.X, c.Friction)
	} else {
		a.Vel.X = gamemath.Damp(a.Vel.X, c.AirDamping)
	}
}

// ApplyMovement accelerates the actor toward dir.
func (m *Model) ApplyMovement(a *Actor, dir int, dt float64) {
	c := m.Constants
	speed := c.MoveSpeed
	if !a.Grounded {
		speed *= c.AirControl
	}
	a.Vel.X += float64(dir) * speed * dt * c.AccelFactor
	a.Vel.X = gamemath.ClampSpeed(a.Vel.X, c.MoveSpeed)

	if dir > 0 {
		a.FacingRight = true
	} else if dir < 0 {
		a.FacingRight = false
	}
}

// ApplyJump runs the jump state machine. A request with no jumps left is
// ignored and reports JumpNone.
func (m *Model) ApplyJump(a *Actor) JumpKind {
	c := m.Constants
	switch {
	case a.Grounded:
		a.Vel.Y = c.JumpForce
		a.JumpCount = 1
		a.Grounded = false
		return JumpGround
	case a.WallSliding:
		away := 1.0
		if a.FacingRight {
			away = -1.0
		}
		a.Vel.X = c.WallJumpForce.X * away
		a.Vel.Y = c.WallJumpForce.Y
		a.FacingRight = away > 0
		a.JumpCount = 1
		a.WallSliding = false
		return JumpWall
	case a.JumpCount < a.MaxJumps:
		a.Vel.Y = c.DoubleJumpForce
		a.JumpCount++
		return JumpAir
	}
	return JumpNone
}

// ApplyIntents applies movement and then a jump if one was requested.
func (m *Model) ApplyIntents(a *Actor, in Intents, dt float64) JumpKind {
	m.ApplyMovement(a, in.MoveDirection, dt)
	if !in.JumpRequested {
		return JumpNone
	}
	return m.ApplyJump(a)
}

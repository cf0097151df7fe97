// Package reach answers, in closed form, whether the actor can travel from one
// platform to another with the moves the kinematic model allows.
package reach

import (
	"math"

	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/shared/gamemath"
)

// Method is the simplest move that covers a gap.
type Method int

const (
	Unreachable Method = iota
	SingleJump
	DoubleJump
	WallJump
	Drop
)

func (m Method) String() string {
	switch m {
	case SingleJump:
		return "single"
	case DoubleJump:
		return "double"
	case WallJump:
		return "wall"
	case Drop:
		return "drop"
	}
	return "unreachable"
}

// Oracle reads the same constants the kinematic model steps with.
type Oracle struct {
	Constants *config.PhysicsConstants
	Margins   *config.ReachConfig
}

// NewOracle returns an oracle over c. Passing nil uses config.Physics.
func NewOracle(c *config.PhysicsConstants) *Oracle {
	if c == nil {
		c = &config.Physics
	}
	return &Oracle{Constants: c, Margins: &config.Reach}
}

func (o *Oracle) gravity() float64 { return o.Constants.Gravity }

// AirSpeed is the horizontal speed available while airborne.
func (o *Oracle) AirSpeed() float64 {
	return o.Constants.MoveSpeed * o.Constants.AirControl
}

// MaxJumpHeight is v0²/(2g) for the ground jump.
func (o *Oracle) MaxJumpHeight() float64 {
	return gamemath.ApexHeight(o.Constants.JumpForce, o.gravity())
}

// TimeToMaxHeight is -v0/g for the ground jump.
func (o *Oracle) TimeToMaxHeight() float64 {
	return gamemath.TimeToApex(o.Constants.JumpForce, o.gravity())
}

// MaxJumpDistance is the horizontal distance covered during a full
// up-and-down ground jump with air control held.
func (o *Oracle) MaxJumpDistance() float64 {
	return JumpDistance(o.AirSpeed(), o.TimeToMaxHeight())
}

// JumpDistance is vx times the full airtime of a jump whose apex is reached
// after tApex. An unassisted jump has vx of zero.
func JumpDistance(vx, tApex float64) float64 {
	return vx * 2 * tApex
}

func (o *Oracle) secondJumpHeight() float64 {
	return gamemath.ApexHeight(o.Constants.DoubleJumpForce, o.gravity())
}

func (o *Oracle) secondJumpTime() float64 {
	return gamemath.TimeToApex(o.Constants.DoubleJumpForce, o.gravity())
}

// DoubleJumpHeight adds the second jump, launched from rest at the first
// apex, to the ground jump.
func (o *Oracle) DoubleJumpHeight() float64 {
	return o.MaxJumpHeight() + o.secondJumpHeight()
}

// DoubleJumpDistance covers both rises plus the fall back to take-off height.
func (o *Oracle) DoubleJumpDistance() float64 {
	airtime := o.TimeToMaxHeight() + o.secondJumpTime() + gamemath.FallTime(o.DoubleJumpHeight(), o.gravity())
	return o.AirSpeed() * airtime
}

// WallJumpHeight uses the vertical wall jump impulse.
func (o *Oracle) WallJumpHeight() float64 {
	return gamemath.ApexHeight(o.Constants.WallJumpForce.Y, o.gravity())
}

// WallJumpDistance takes the raw horizontal impulse as constant speed.
func (o *Oracle) WallJumpDistance() float64 {
	t := gamemath.TimeToApex(o.Constants.WallJumpForce.Y, o.gravity())
	return JumpDistance(math.Abs(o.Constants.WallJumpForce.X), t)
}

// DropDistance is the horizontal reach while falling gap pixels.
func (o *Oracle) DropDistance(gap float64) float64 {
	return o.AirSpeed() * gamemath.FallTime(math.Abs(gap), o.gravity())
}

// ReachAtRise is the horizontal distance available when the landing surface
// sits rise pixels above the take-off surface, landing on the way down. It is
// negative when rise is out of reach.
func (o *Oracle) ReachAtRise(rise float64, double bool) float64 {
	g := o.gravity()
	peak, rising := o.MaxJumpHeight(), o.TimeToMaxHeight()
	if double {
		peak += o.secondJumpHeight()
		rising += o.secondJumpTime()
	}
	if rise > peak {
		return -1
	}
	return o.AirSpeed() * (rising + gamemath.FallTime(peak-rise, g))
}

// Gaps returns the horizontal gap between the facing edges (zero when the
// x-ranges overlap) and the vertical gap between the top surfaces, positive
// when to is higher.
func Gaps(from, to gamemath.AABB) (horizontal, vertical float64) {
	horizontal = math.Abs(to.Center.X-from.Center.X) - (from.Half.X + to.Half.X)
	horizontal = max(horizontal, 0)
	vertical = from.Top() - to.Top()
	return horizontal, vertical
}

// IsReachable tests the move archetypes in order single, double, wall, drop
// and returns the first that covers the gap.
func (o *Oracle) IsReachable(from, to gamemath.AABB, allowDouble, allowWall bool) Method {
	h, v := Gaps(from, to)

	if v <= o.MaxJumpHeight() && h <= o.MaxJumpDistance() {
		return SingleJump
	}
	if allowDouble && v <= o.DoubleJumpHeight() && h <= o.DoubleJumpDistance() {
		return DoubleJump
	}
	if allowWall && v <= o.WallJumpHeight() && h <= o.WallJumpDistance() {
		return WallJump
	}
	if v < 0 && h <= o.DropDistance(v) {
		return Drop
	}
	return Unreachable
}

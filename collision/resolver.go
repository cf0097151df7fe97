// Package collision resolves the actor against level platforms using the
// axis of least penetration.
package collision

import (
	"math"

	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/kinematics"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

// ContactKind classifies the notable contact of a resolve pass.
type ContactKind int

const (
	ContactNone ContactKind = iota
	ContactLanded
	ContactLethal
)

func (k ContactKind) String() string {
	switch k {
	case ContactLanded:
		return "landed"
	case ContactLethal:
		return "lethal"
	}
	return "none"
}

// Contact reports the platform involved in a landing or lethal contact, or the
// platform a resting actor armed. Platform is -1 when nothing happened.
type Contact struct {
	Kind     ContactKind
	Platform int
	Armed    bool // the contact started a crumble countdown
}

var noContact = Contact{Kind: ContactNone, Platform: -1}

// Resolver holds the tolerances used while resolving.
type Resolver struct {
	Collision *config.CollisionConfig
	Hazard    *config.HazardConfig
}

// NewResolver returns a resolver reading the global configuration.
func NewResolver() *Resolver {
	return &Resolver{Collision: &config.Collision, Hazard: &config.Hazard}
}

// Resolve pushes the actor out of every overlapping active platform listed in
// candidates, which must be sorted ascending. A nil candidates slice checks
// every platform. Crumbling platforms supporting the actor are armed in place.
func (r *Resolver) Resolve(a *kinematics.Actor, platforms []leveldata.Platform, candidates []int) Contact {
	if candidates == nil {
		candidates = allIndices(len(platforms))
	}

	wasGrounded := a.Grounded
	contact := noContact
	support := -1

	for _, i := range candidates {
		p := &platforms[i]
		if !p.Active() {
			continue
		}
		box, pb := a.Bounds(), p.Bounds()
		if !box.Overlaps(pb) {
			continue
		}
		if p.Lethal() {
			return Contact{Kind: ContactLethal, Platform: i}
		}

		axis, _ := gamemath.Penetrate(box, pb).Shallowest()
		switch axis {
		case gamemath.AxisTop:
			if a.Vel.Y < 0 {
				continue
			}
			a.Pos.Y = pb.Top() - a.Half.Y
			a.Vel.Y = 0
			a.Grounded = true
			a.WallSliding = false
			support = i

			armed := p.Arm(r.Hazard.CrumbleDelay)
			if wasGrounded {
				if armed {
					contact = Contact{Kind: ContactNone, Platform: i, Armed: true}
				}
				continue
			}
			a.JumpCount = 0
			contact = Contact{Kind: ContactLanded, Platform: i, Armed: armed}
			if p.Type == leveldata.Bouncy {
				a.Vel.Y = -r.bounceForce(p)
				a.Grounded = false
				support = -1
			} else {
				a.LastGrounded = a.Pos
			}
		case gamemath.AxisBottom:
			if a.Vel.Y >= 0 {
				continue
			}
			a.Pos.Y = pb.Bottom() + a.Half.Y
			a.Vel.Y = 0
		case gamemath.AxisLeft:
			if a.Vel.X < 0 {
				continue
			}
			a.Pos.X = pb.Left() - a.Half.X
			a.Vel.X = 0
		case gamemath.AxisRight:
			if a.Vel.X > 0 {
				continue
			}
			a.Pos.X = pb.Right() + a.Half.X
			a.Vel.X = 0
		}
	}

	if wasGrounded && support < 0 && a.Grounded {
		support = r.restingOn(a, platforms, candidates)
		if support >= 0 {
			p := &platforms[support]
			a.Pos.Y = p.Top() - a.Half.Y
			a.Vel.Y = 0
			if p.Arm(r.Hazard.CrumbleDelay) {
				contact = Contact{Kind: ContactNone, Platform: support, Armed: true}
			}
		} else {
			a.Grounded = false
		}
	}

	// Ride along with whatever moved under the actor since the last frame.
	if wasGrounded && support >= 0 {
		a.Pos.X += platforms[support].LastDelta.X
	}

	return contact
}

// restingOn finds a platform the actor stands on without overlapping it.
func (r *Resolver) restingOn(a *kinematics.Actor, platforms []leveldata.Platform, candidates []int) int {
	box := a.Bounds()
	for _, i := range candidates {
		p := &platforms[i]
		if !p.Active() || p.Lethal() {
			continue
		}
		pb := p.Bounds()
		if gamemath.OverlapX(box, pb) <= 0 {
			continue
		}
		gap := pb.Top() - box.Bottom()
		if gap >= -r.Collision.SupportEpsilon && gap <= r.Collision.SupportEpsilon+math.Abs(p.LastDelta.Y) {
			return i
		}
	}
	return -1
}

func (r *Resolver) bounceForce(p *leveldata.Platform) float64 {
	if p.BounceForce > 0 {
		return p.BounceForce
	}
	return r.Hazard.BounceForce
}

// TouchingWall reports whether an active non-lethal platform lies within the
// probe distance of the actor's side facing dir.
func (r *Resolver) TouchingWall(a *kinematics.Actor, platforms []leveldata.Platform, candidates []int, dir float64) bool {
	if dir == 0 {
		return false
	}
	if candidates == nil {
		candidates = allIndices(len(platforms))
	}
	reach := r.Collision.WallProbe
	probe := gamemath.AABB{
		Center: gamemath.Vec{X: a.Pos.X + dir*(a.Half.X+reach/2), Y: a.Pos.Y},
		// Shrunk vertically so floors and ceilings are not walls
		Half: gamemath.Vec{X: reach / 2, Y: a.Half.Y * 0.5},
	}
	for _, i := range candidates {
		p := &platforms[i]
		if !p.Active() || p.Lethal() {
			continue
		}
		if probe.Overlaps(p.Bounds()) {
			return true
		}
	}
	return false
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

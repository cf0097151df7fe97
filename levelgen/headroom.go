package levelgen

import (
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

// clear reports whether c can join the path without blocking it: c must leave
// standing room above every earlier platform and stay out of the air space of
// every earlier jump. The path's current last platform is c's predecessor.
func (b *builder) clear(c *leveldata.Platform) bool {
	cb := swept(c)
	path := b.level.Path
	for i, idx := range path {
		p := &b.level.Platforms[idx]
		if i < len(path)-1 && !b.standingRoom(cb, swept(p)) {
			return false
		}
		if i+1 < len(path) {
			next := &b.level.Platforms[path[i+1]]
			if cb.Overlaps(b.corridor(p, next)) {
				return false
			}
		}
	}
	return true
}

// standingRoom reports whether the actor still fits on p with c above it.
func (b *builder) standingRoom(c, p gamemath.AABB) bool {
	if gamemath.OverlapX(c, p) <= -pad {
		return true
	}
	return c.Bottom() <= p.Top()-2*b.actor.Y-pad
}

// corridor is the air space the jump from a to next passes through: the span
// between their facing edges, widened by the actor, up to the top of the
// jump's arc.
func (b *builder) corridor(a, next *leveldata.Platform) gamemath.AABB {
	ab, nb := swept(a), swept(next)

	var lo, hi float64
	if nb.Center.X >= ab.Center.X {
		lo, hi = ab.Right(), nb.Left()
	} else {
		lo, hi = nb.Right(), ab.Left()
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	lo -= 2*b.actor.X + pad
	hi += 2*b.actor.X + pad
	if a.Type == leveldata.Bouncy {
		// A bounce launches from anywhere on the platform.
		lo, hi = min(lo, ab.Left()), max(hi, ab.Right())
	}

	bottom := ab.Top()
	top := bottom - b.apex(a, next) - 2*b.actor.Y - pad
	return gamemath.AABB{
		Center: gamemath.Vec{X: (lo + hi) / 2, Y: (top + bottom) / 2},
		Half:   gamemath.Vec{X: (hi - lo) / 2, Y: (bottom - top) / 2},
	}
}

// apex is the height above a's top the jump to next reaches.
func (b *builder) apex(a, next *leveldata.Platform) float64 {
	h := b.oracle.MaxJumpHeight()
	if a.Top()-next.Top() > b.safe.MaxHeight {
		h = b.oracle.DoubleJumpHeight()
	}
	if a.Type == leveldata.Bouncy {
		h = max(h, gamemath.ApexHeight(-a.BounceForce, b.oracle.Constants.Gravity))
	}
	return h
}

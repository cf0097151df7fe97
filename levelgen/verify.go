package levelgen

import (
	"errors"
	"fmt"

	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/reach"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

var (
	ErrUnsafeStep = errors.New("levelgen: unsafe path step")
	ErrBlocked    = errors.New("levelgen: blocked layout")
)

// Verify re-checks a finished level against the oracle: every consecutive
// pair of path platforms must climb, sit inside the safe envelope and be
// reachable. The layout must also leave the path usable: no two platforms
// overlap, every path platform has standing room above it, and no
// checkpoint is buried in a platform. It works on hand-made courses too.
func (g *Generator) Verify(level *leveldata.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}
	if len(level.Path) < 2 {
		return fmt.Errorf("%w: path has %d platforms", ErrUnsafeStep, len(level.Path))
	}

	safe := g.Oracle.SafePlatformSpacing()
	for i := 0; i+1 < len(level.Path); i++ {
		from := level.Platforms[level.Path[i]].Bounds()
		to := level.Platforms[level.Path[i+1]].Bounds()

		h, v := reach.Gaps(from, to)
		switch {
		case v <= 0:
			return fmt.Errorf("%w: step %d does not climb (v=%g)", ErrUnsafeStep, i, v)
		case !safe.Contains(h, v):
			return fmt.Errorf("%w: step %d gap h=%g v=%g outside the safe envelope", ErrUnsafeStep, i, h, v)
		case g.Oracle.IsReachable(from, to, true, true) == reach.Unreachable:
			return fmt.Errorf("%w: step %d unreachable", ErrUnsafeStep, i)
		}
	}
	return g.verifyLayout(level)
}

// verifyLayout checks the level geometry around the path. Moving platforms
// count with the whole box they sweep.
func (g *Generator) verifyLayout(level *leveldata.Level) error {
	ps := level.Platforms
	boxes := make([]gamemath.AABB, len(ps))
	for i := range ps {
		boxes[i] = swept(&ps[i])
	}

	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Overlaps(boxes[j]) {
				return fmt.Errorf("%w: platforms %d and %d overlap", ErrBlocked, i, j)
			}
		}
	}

	room := 2 * g.Oracle.Constants.ActorHalf.Y
	for _, idx := range level.Path {
		p := boxes[idx]
		for j, q := range boxes {
			if j == idx || ps[j].Lethal() || q.Top() >= p.Top() || gamemath.OverlapX(p, q) <= 0 {
				continue
			}
			if p.Top()-q.Bottom() < room {
				return fmt.Errorf("%w: path platform %d roofed by platform %d", ErrBlocked, idx, j)
			}
		}
	}

	half := config.Sim.CheckpointSize.Scale(0.5)
	for i, cp := range level.Checkpoints {
		box := gamemath.AABB{Center: cp.Pos, Half: half}
		for j := range boxes {
			if box.Overlaps(boxes[j]) {
				return fmt.Errorf("%w: checkpoint %d inside platform %d", ErrBlocked, i, j)
			}
		}
	}
	return nil
}

package levelgen

import (
	"math"

	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

type archetype int

const (
	archStraightUp archetype = iota
	archHorizontal
	archDiagonal
	archDouble
	archWallSetup
)

func (a archetype) String() string {
	switch a {
	case archStraightUp:
		return "straight-up"
	case archHorizontal:
		return "horizontal"
	case archDiagonal:
		return "diagonal"
	case archDouble:
		return "double"
	case archWallSetup:
		return "wall-setup"
	}
	return "unknown"
}

type placement struct {
	platform leveldata.Platform
	arch     archetype
	dir      float64
}

// pickArchetype draws a weighted archetype. Harder moves unlock with
// difficulty; the wall setup only appears on every WallJumpEvery-th step.
func (b *builder) pickArchetype() archetype {
	d := float64(b.difficulty)
	type choice struct {
		arch   archetype
		weight float64
	}
	choices := []choice{
		{archStraightUp, 3},
		{archHorizontal, 3 - 0.15*d},
		{archDiagonal, 2 + 0.3*d},
	}
	if b.difficulty >= 3 {
		choices = append(choices, choice{archDouble, 1 + 0.3*d})
	}
	if b.difficulty >= b.cfg.WallJumpMinLevel && b.nextStep()%b.cfg.WallJumpEvery == 0 {
		choices = append(choices, choice{archWallSetup, 3})
	}

	total := 0.0
	for _, c := range choices {
		total += c.weight
	}
	roll := b.rng.Float64() * total
	for _, c := range choices {
		if roll < c.weight {
			return c.arch
		}
		roll -= c.weight
	}
	return choices[len(choices)-1].arch
}

// sample draws an unvalidated rise and gap for an archetype.
func (b *builder) sample(a archetype) (rise, gap float64) {
	s := b.safe
	between := func(lo, hi float64) float64 { return lo + b.rng.Float64()*(hi-lo) }
	switch a {
	case archStraightUp:
		return between(0.6, 1) * s.MaxHeight, between(0, 0.25) * s.MaxDistance
	case archHorizontal:
		return between(0.1, 0.3) * s.MaxHeight, between(0.5, 1) * s.MaxDistance
	case archDiagonal:
		return between(0.5, 1) * s.DiagonalHeight, between(0.5, 1) * s.DiagonalDistance
	case archDouble:
		return between(s.MaxHeight+1, s.DoubleHeight), between(0, 0.25) * s.DoubleDistance
	case archWallSetup:
		return between(0.5, 0.9) * s.MaxHeight, between(0, 0.25) * s.MaxDistance
	}
	return s.MaxHeight / 2, 0
}

func (b *builder) halfWidth() float64 {
	jitter := (b.rng.Float64()*2 - 1) * b.cfg.HalfWJitter
	return math.Round(max(b.cfg.MinHalfW, b.baseHalfWidth()+jitter))
}

func (b *builder) baseHalfWidth() float64 {
	return max(b.cfg.MinHalfW, b.cfg.BaseHalfW-b.cfg.HalfWPerLevel*float64(b.difficulty))
}

// ceiling is the highest rise allowed above a platform remaining pixels
// below the exit.
func (b *builder) ceiling(remaining float64) float64 {
	return min(b.safe.DoubleHeight, remaining-b.minRemaining())
}

// candidate proposes a random next platform above prev, rise reduced by
// retreat.
func (b *builder) candidate(prev *leveldata.Platform, remaining, retreat float64) (placement, bool) {
	arch := b.pickArchetype()
	rise, gap := b.sample(arch)
	hw := b.halfWidth()
	rise = clampFloor(rise, b.minRise(), b.ceiling(remaining)-retreat)
	return b.place(prev, arch, b.direction(arch, prev), rise, gap, hw, remaining)
}

// sweepOptions is the number of deterministic placements tried per rise:
// both directions, three gaps and two widths.
const sweepOptions = 12

// sweep returns the k-th deterministic placement above prev, walking rises
// from the highest allowed down. more is false once k is past the last one.
func (b *builder) sweep(prev *leveldata.Platform, remaining float64, k int) (pl placement, ok, more bool) {
	top, lo := b.ceiling(remaining), b.minRise()
	if top < lo {
		return placement{}, false, false
	}
	rises := int((top-lo)/b.cfg.RetreatStep) + 1
	if k >= rises*sweepOptions {
		return placement{}, false, false
	}

	rise := math.Floor(top - float64(k/sweepOptions)*b.cfg.RetreatStep)
	opt := k % sweepOptions
	dir := b.dir
	if opt >= sweepOptions/2 {
		dir = -dir
	}
	hw := b.baseHalfWidth()
	if opt%2 == 1 {
		hw = b.cfg.MinHalfW
	}
	minGap := travel(prev)
	limit := b.gapLimit(rise, rise > b.safe.MaxHeight) - minGap
	gap := minGap + []float64{1, 0.5, 0}[(opt/2)%3]*max(0, limit-minGap)

	arch := archStraightUp
	if rise > b.safe.MaxHeight {
		arch = archDouble
	}
	pl, ok = b.place(prev, arch, dir, rise, gap, hw, remaining)
	return pl, ok, true
}

// place builds the platform rise pixels above prev and gap pixels beyond it
// in direction dir. The gap is re-validated against the safe envelope before
// the platform is built, so a returned placement always satisfies validStep.
func (b *builder) place(prev *leveldata.Platform, arch archetype, dir, rise, gap, hw, remaining float64) (placement, bool) {
	final := remaining-rise <= b.safe.DoubleHeight
	double := rise > b.safe.MaxHeight
	minGap := travel(prev)
	limit := b.gapLimit(rise, double) - minGap
	gap = clampFloor(gap, minGap, limit)

	if arch == archWallSetup {
		// Push the platform flush against the margin when that stays reachable.
		if flush := math.Floor(b.room(prev, dir) - 2*hw); flush >= minGap && flush <= limit {
			gap = flush
		}
	}

	x, hw, dir, ok := b.fit(prev, dir, gap, hw, minGap)
	if !ok {
		return placement{}, false
	}

	c := leveldata.Platform{
		Pos:  gamemath.Vec{X: x, Y: prev.Top() - rise + b.cfg.PlatformHalfH},
		Half: gamemath.Vec{X: hw, Y: b.cfg.PlatformHalfH},
	}
	actual := math.Abs(x-prev.Pos.X) - prev.Half.X - hw
	b.assignType(&c, final, min(limit-actual, actual-minGap))

	if !b.validStep(prev, &c) {
		return placement{}, false
	}
	return placement{platform: c, arch: arch, dir: dir}, true
}

// direction keeps sweeping the same way with an occasional turn. Wall setups
// head for the nearer side of the level.
func (b *builder) direction(a archetype, prev *leveldata.Platform) float64 {
	if a == archWallSetup {
		if prev.Pos.X < b.cfg.Width/2 {
			return -1
		}
		return 1
	}
	if b.rng.Float64() < 0.15 {
		return -b.dir
	}
	return b.dir
}

// room is the free horizontal space beside prev in direction dir.
func (b *builder) room(prev *leveldata.Platform, dir float64) float64 {
	if dir > 0 {
		return b.cfg.Width - b.cfg.SideMargin - (prev.Pos.X + prev.Half.X)
	}
	return prev.Pos.X - prev.Half.X - b.cfg.SideMargin
}

// fit clamps a placement inside the playable band, turning around or
// shrinking the gap and then the platform when there is not enough room.
func (b *builder) fit(prev *leveldata.Platform, dir, gap, hw, minGap float64) (x, halfW, newDir float64, ok bool) {
	if b.room(prev, dir) < gap+2*hw && b.room(prev, -dir) > b.room(prev, dir) {
		dir = -dir
	}
	room := b.room(prev, dir)
	if room < gap+2*hw {
		gap = math.Floor(max(minGap, room-2*hw))
		if room-2*hw < minGap {
			hw = math.Floor((room - minGap) / 2)
		}
	}
	if hw < b.cfg.MinHalfW {
		return 0, 0, dir, false
	}
	return prev.Pos.X + dir*(prev.Half.X+gap+hw), hw, dir, true
}

// assignType picks the platform's behavior. Checkpoint platforms and the
// last platform before the exit stay solid. slack is how far the gap to prev
// may move either way and stay safe.
func (b *builder) assignType(c *leveldata.Platform, final bool, slack float64) {
	roll := b.rng.Float64()
	if final || b.nextStep()%b.cfg.CheckpointEvery == 0 {
		return
	}
	switch {
	case b.difficulty >= 4 && roll < 0.10:
		b.makeMoving(c, slack)
	case b.difficulty >= 3 && roll < 0.22:
		c.Type = leveldata.Crumbling
	case b.difficulty >= 2 && roll < 0.32:
		c.Type = leveldata.Bouncy
		c.BounceForce = b.haz.BounceForce
	}
}

// makeMoving turns c into a horizontal mover whose travel keeps the step
// from prev safe and the platform inside the playable band.
func (b *builder) makeMoving(c *leveldata.Platform, slack float64) {
	lo, hi := b.cfg.SideMargin, b.cfg.Width-b.cfg.SideMargin
	radius := min(b.haz.MoveRadius, slack, c.Pos.X-c.Half.X-lo, hi-c.Pos.X-c.Half.X)
	radius = math.Floor(radius)
	if radius < 8 {
		return
	}
	pattern := leveldata.PatternHorizontal
	if b.rng.Intn(2) == 0 {
		pattern = leveldata.PatternPatrol
	}
	c.Type = leveldata.Moving
	c.Pattern = pattern
	c.PatternData = leveldata.PatternData{
		Center: c.Pos,
		Radius: radius,
		Speed:  b.haz.MoveSpeed,
	}
}

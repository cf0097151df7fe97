// Package levelgen builds parkour levels bottom to top. Every placement is
// constrained by the reachability oracle's safe envelope, so each step of the
// critical path is completable with the actor's move set.
package levelgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/reach"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 10

	// Distance between the start platform's top and the level bottom.
	startClearance = 40
	// Slack added around the actor in clearance checks.
	pad = 4
	// Steps the climb may undo before giving up.
	maxBacktracks = 1024
)

// ErrExhausted means no unblocked placement was found, even after backing
// up. It indicates a configuration error: with sane constants it never
// happens.
var ErrExhausted = errors.New("level generation exhausted its retries")

// Generator is stateless apart from its configuration; every Build call
// starts from the seed alone.
type Generator struct {
	Oracle *reach.Oracle
	Config *config.GeneratorConfig
	Hazard *config.HazardConfig
}

// New returns a generator over o. Passing nil uses an oracle over
// config.Physics.
func New(o *reach.Oracle) *Generator {
	if o == nil {
		o = reach.NewOracle(nil)
	}
	return &Generator{Oracle: o, Config: &config.Generator, Hazard: &config.Hazard}
}

// Build generates the level for seed at difficulty, which is clamped to
// [MinDifficulty, MaxDifficulty]. The same arguments always produce the same
// level.
func (g *Generator) Build(seed int64, difficulty int) (*leveldata.Level, error) {
	difficulty = max(MinDifficulty, min(difficulty, MaxDifficulty))
	b := newBuilder(g, seed, difficulty)
	if err := b.run(); err != nil {
		return nil, fmt.Errorf("build level seed=%d difficulty=%d: %w", seed, difficulty, err)
	}
	return b.level, nil
}

// builder holds the state of one Build call.
type builder struct {
	cfg    *config.GeneratorConfig
	haz    *config.HazardConfig
	oracle *reach.Oracle
	safe   reach.SafeSpacing
	rng    *rand.Rand

	difficulty int
	level      *leveldata.Level
	actor      gamemath.Vec // actor half-extents

	dir       float64     // current horizontal sweep direction
	dirs      []float64   // sweep direction after each path platform
	archs     []archetype // archetype of each path platform
	generated int         // path platforms placed before the exit
	walls     []leveldata.Platform
}

func newBuilder(g *Generator, seed int64, difficulty int) *builder {
	return &builder{
		cfg:        g.Config,
		haz:        g.Hazard,
		oracle:     g.Oracle,
		safe:       g.Oracle.SafePlatformSpacing(),
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: difficulty,
		level: &leveldata.Level{
			Seed:       seed,
			Difficulty: difficulty,
		},
		actor: g.Oracle.Constants.ActorHalf,
		dir:   1,
	}
}

func (b *builder) run() error {
	cfg, lvl := b.cfg, b.level
	lvl.Width = cfg.Width
	lvl.Height = cfg.BaseHeight + cfg.HeightPerLevel*float64(b.difficulty)
	if b.rng.Intn(2) == 0 {
		b.dir = -1
	}

	startTop := lvl.Height - startClearance
	start := leveldata.Platform{
		Pos:  gamemath.Vec{X: math.Round(cfg.Width / 2), Y: startTop + cfg.PlatformHalfH},
		Half: gamemath.Vec{X: cfg.StartHalfW, Y: cfg.PlatformHalfH},
	}
	b.appendPath(start)
	lvl.SpawnPoint = b.standingPoint(&start)
	lvl.Checkpoints = append(lvl.Checkpoints, leveldata.Checkpoint{Pos: lvl.SpawnPoint, Platform: 0})

	exitTop := cfg.TopMargin
	if err := b.climb(exitTop); err != nil {
		return err
	}
	lvl.ExitY = exitTop - b.actor.Y/2

	b.furnish()
	b.decorate()
	return lvl.Validate()
}

// climb adds path platforms until the exit is in range and then places the
// exit. A platform is only accepted when clear of the path below it; when a
// step or the exit has no such placement the previous platform is taken back
// and its next candidate tried.
func (b *builder) climb(exitTop float64) error {
	tries := []int{0} // next candidate index per path depth
	backtracks := 0
	for {
		depth := len(tries) - 1
		remaining := b.last().Top() - exitTop
		if remaining <= b.safe.DoubleHeight {
			b.generated = len(b.level.Path)
			if b.placeExit(exitTop) == nil {
				return nil
			}
		} else {
			if len(b.level.Path) >= b.cfg.MaxPlatforms {
				return fmt.Errorf("%w: path reached %d platforms", ErrExhausted, len(b.level.Path))
			}
			if pl, ok := b.nextPlacement(&tries[depth], remaining); ok {
				b.dir = pl.dir
				b.appendPath(pl.platform)
				b.archs[len(b.archs)-1] = pl.arch
				tries = append(tries, 0)
				continue
			}
		}

		if depth == 0 {
			return fmt.Errorf("%w: no clear placement above the start platform", ErrExhausted)
		}
		if backtracks++; backtracks > maxBacktracks {
			return fmt.Errorf("%w: gave up after %d backtracks at step %d", ErrExhausted, maxBacktracks, depth)
		}
		tries = tries[:depth]
		b.popPath()
	}
}

// nextPlacement returns the next clear candidate above the last platform.
// The first MaxAttempts candidates are random, each retreating the rise a
// little further; after those a deterministic sweep covers every rise,
// direction, gap and width.
func (b *builder) nextPlacement(try *int, remaining float64) (placement, bool) {
	prev := *b.last()
	for {
		k := *try
		*try++

		var pl placement
		var ok bool
		if k < b.cfg.MaxAttempts {
			pl, ok = b.candidate(&prev, remaining, float64(k)*b.cfg.RetreatStep)
		} else {
			var more bool
			if pl, ok, more = b.sweep(&prev, remaining, k-b.cfg.MaxAttempts); !more {
				return placement{}, false
			}
		}
		if ok && b.clear(&pl.platform) {
			return pl, true
		}
	}
}

// furnish adds checkpoints, collectibles and wall strips along the generated
// part of the path, once it is final.
func (b *builder) furnish() {
	for i := 1; i < b.generated; i++ {
		p := b.level.Platforms[b.level.Path[i]]
		if i%b.cfg.CheckpointEvery == 0 {
			b.level.Checkpoints = append(b.level.Checkpoints, leveldata.Checkpoint{
				Pos:      b.standingPoint(&p),
				Platform: b.level.Path[i],
			})
		}
		if b.rng.Float64() < b.cfg.CollectibleRate {
			b.addCollectible(&p)
		}
		if b.archs[i] == archWallSetup {
			b.addWall(&p)
		}
	}
}

func (b *builder) appendPath(p leveldata.Platform) int {
	idx := len(b.level.Platforms)
	b.level.Platforms = append(b.level.Platforms, p)
	b.level.Path = append(b.level.Path, idx)
	b.dirs = append(b.dirs, b.dir)
	b.archs = append(b.archs, archStraightUp)
	return idx
}

// popPath removes the most recently appended path platform and restores the
// sweep direction it was placed from.
func (b *builder) popPath() {
	n := len(b.level.Path) - 1
	b.level.Platforms = b.level.Platforms[:len(b.level.Platforms)-1]
	b.level.Path = b.level.Path[:n]
	b.dirs = b.dirs[:n]
	b.archs = b.archs[:n]
	if n > 0 {
		b.dir = b.dirs[n-1]
	}
}

// nextStep is the path position the next platform takes.
func (b *builder) nextStep() int {
	return len(b.level.Path)
}

func (b *builder) last() *leveldata.Platform {
	return &b.level.Platforms[b.level.Path[len(b.level.Path)-1]]
}

// standingPoint is where the actor's center sits when standing on p.
func (b *builder) standingPoint(p *leveldata.Platform) gamemath.Vec {
	return gamemath.Vec{X: p.Pos.X, Y: p.Top() - b.actor.Y}
}

// minRemaining keeps the final platform far enough below the exit for the
// actor to stand under it.
func (b *builder) minRemaining() float64 {
	need := 2*b.actor.Y + 2*b.cfg.PlatformHalfH + 2*pad
	return min(need, b.safe.DoubleHeight/2)
}

func (b *builder) minRise() float64 {
	return max(1, math.Floor(0.1*b.safe.MaxHeight))
}

// gapLimit is the widest safe horizontal gap for a landing rise pixels above
// the take-off surface.
func (b *builder) gapLimit(rise float64, double bool) float64 {
	safety := b.oracle.Margins.SafetyFactor
	if double {
		return min(b.safe.DoubleDistance, safety*b.oracle.ReachAtRise(rise, true))
	}
	return min(b.safe.MaxDistance, safety*b.oracle.ReachAtRise(rise, false))
}

// validStep is the re-validation of a step against the safe envelope. Moving
// platforms are checked at both ends of their travel.
func (b *builder) validStep(from, to *leveldata.Platform) bool {
	h, v := reach.Gaps(from.Bounds(), to.Bounds())
	raw := math.Abs(to.Pos.X-from.Pos.X) - from.Half.X - to.Half.X
	sweep := travel(from) + travel(to)
	if v <= 0 || raw-sweep < 0 {
		return false
	}
	if !b.safe.Contains(h+sweep, v) {
		return false
	}
	return h+sweep <= b.gapLimit(v, v > b.safe.MaxHeight)
}

// travel is how far a platform moves horizontally from its center.
func travel(p *leveldata.Platform) float64 {
	if p.Type != leveldata.Moving {
		return 0
	}
	switch p.Pattern {
	case leveldata.PatternHorizontal, leveldata.PatternPatrol, leveldata.PatternCircular:
		return p.PatternData.Radius
	}
	return 0
}

// swept is the box a platform covers over its whole motion.
func swept(p *leveldata.Platform) gamemath.AABB {
	b := p.Bounds()
	b.Half.X += travel(p)
	return b
}

func clampFloor(v, lo, hi float64) float64 {
	return math.Floor(gamemath.ClampFloat(v, lo, max(lo, hi)))
}

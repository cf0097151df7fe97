package levelgen

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/reach"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

func newTestGenerator() *Generator {
	c := config.DefaultPhysics()
	return New(reach.NewOracle(&c))
}

func TestBuildEveryDifficulty(t *testing.T) {
	g := newTestGenerator()
	safe := g.Oracle.SafePlatformSpacing()

	for d := MinDifficulty; d <= MaxDifficulty; d++ {
		for seed := int64(1); seed <= 12; seed++ {
			lvl, err := g.Build(seed, d)
			if err != nil {
				t.Fatalf("difficulty %d seed %d: %v", d, seed, err)
			}
			if err := lvl.Validate(); err != nil {
				t.Fatalf("difficulty %d seed %d: %v", d, seed, err)
			}
			if len(lvl.Path) < 3 {
				t.Fatalf("difficulty %d seed %d: path too short: %d", d, seed, len(lvl.Path))
			}

			for i := 0; i+1 < len(lvl.Path); i++ {
				from := lvl.Platforms[lvl.Path[i]]
				to := lvl.Platforms[lvl.Path[i+1]]
				h, v := reach.Gaps(from.Bounds(), to.Bounds())
				if v <= 0 {
					t.Fatalf("difficulty %d seed %d step %d: path does not climb (v=%g)", d, seed, i, v)
				}
				if !safe.Contains(h, v) {
					t.Fatalf("difficulty %d seed %d step %d: gap h=%g v=%g outside the safe envelope", d, seed, i, h, v)
				}
				if raw := math.Abs(to.Pos.X-from.Pos.X) - from.Half.X - to.Half.X; raw < 0 {
					t.Fatalf("difficulty %d seed %d step %d: consecutive platforms overlap horizontally", d, seed, i)
				}
				if m := g.Oracle.IsReachable(from.Bounds(), to.Bounds(), true, false); m == reach.Unreachable {
					t.Fatalf("difficulty %d seed %d step %d: oracle reports unreachable", d, seed, i)
				}
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	g := newTestGenerator()
	a, err := g.Build(42, 6)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Build(42, 6)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different levels")
	}

	c, err := g.Build(43, 6)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a.Platforms, c.Platforms) {
		t.Fatalf("different seeds produced identical platforms")
	}
}

func TestBuildClampsDifficulty(t *testing.T) {
	g := newTestGenerator()
	cases := []struct {
		in, want int
	}{
		{-3, MinDifficulty},
		{0, MinDifficulty},
		{5, 5},
		{99, MaxDifficulty},
	}
	for _, tc := range cases {
		lvl, err := g.Build(7, tc.in)
		if err != nil {
			t.Fatalf("difficulty %d: %v", tc.in, err)
		}
		if lvl.Difficulty != tc.want {
			t.Fatalf("difficulty %d: got %d, want %d", tc.in, lvl.Difficulty, tc.want)
		}
		wantHeight := config.Generator.BaseHeight + config.Generator.HeightPerLevel*float64(tc.want)
		if lvl.Height != wantHeight {
			t.Fatalf("difficulty %d: height %g, want %g", tc.in, lvl.Height, wantHeight)
		}
	}
}

func TestLevelLayout(t *testing.T) {
	g := newTestGenerator()
	cfg := config.Generator

	for seed := int64(1); seed <= 8; seed++ {
		lvl, err := g.Build(seed, 8)
		if err != nil {
			t.Fatal(err)
		}

		onPath := map[int]bool{}
		for _, idx := range lvl.Path {
			onPath[idx] = true
			p := lvl.Platforms[idx]
			if p.Lethal() {
				t.Fatalf("seed %d: lethal platform %d on the path", seed, idx)
			}
			lo, hi := p.Pos.X-p.Half.X-travel(&p), p.Pos.X+p.Half.X+travel(&p)
			if lo < cfg.SideMargin || hi > cfg.Width-cfg.SideMargin {
				t.Fatalf("seed %d: path platform %d leaves the playable band [%g, %g]", seed, idx, lo, hi)
			}
		}
		for i, p := range lvl.Platforms {
			if p.Type != leveldata.Spike {
				continue
			}
			if onPath[i] {
				t.Fatalf("seed %d: spike %d on the path", seed, i)
			}
			if p.Pos.X+p.Half.X > cfg.SideMargin && p.Pos.X-p.Half.X < cfg.Width-cfg.SideMargin {
				t.Fatalf("seed %d: spike %d inside the playable band", seed, i)
			}
		}

		start := lvl.Platforms[lvl.Path[0]]
		if lvl.SpawnPoint.Y != start.Top()-g.Oracle.Constants.ActorHalf.Y {
			t.Fatalf("seed %d: spawn %v is not standing on the start platform", seed, lvl.SpawnPoint)
		}
		if len(lvl.Checkpoints) == 0 || lvl.Checkpoints[0].Pos != lvl.SpawnPoint {
			t.Fatalf("seed %d: first checkpoint should be the spawn point", seed)
		}
		for _, cp := range lvl.Checkpoints {
			if !onPath[cp.Platform] || lvl.Platforms[cp.Platform].Type != leveldata.Solid {
				t.Fatalf("seed %d: checkpoint on platform %d which is not a solid path platform", seed, cp.Platform)
			}
		}

		exit := lvl.Platforms[lvl.Path[len(lvl.Path)-1]]
		if exit.Top() != cfg.TopMargin {
			t.Fatalf("seed %d: exit top %g, want %g", seed, exit.Top(), cfg.TopMargin)
		}
		if !lvl.Reached(exit.Top() - g.Oracle.Constants.ActorHalf.Y) {
			t.Fatalf("seed %d: standing on the exit platform does not complete the level", seed)
		}
		if lvl.Reached(lvl.SpawnPoint.Y) {
			t.Fatalf("seed %d: spawn already completes the level", seed)
		}
	}
}

func TestHarderLevelsUseHazards(t *testing.T) {
	g := newTestGenerator()
	counts := map[leveldata.PlatformType]int{}
	for seed := int64(1); seed <= 10; seed++ {
		lvl, err := g.Build(seed, 10)
		if err != nil {
			t.Fatal(err)
		}
		for _, idx := range lvl.Path {
			counts[lvl.Platforms[idx].Type]++
		}
	}
	for _, typ := range []leveldata.PlatformType{leveldata.Moving, leveldata.Crumbling, leveldata.Bouncy} {
		if counts[typ] == 0 {
			t.Fatalf("no %v platforms on difficulty 10 paths: %v", typ, counts)
		}
	}

	easy, err := g.Build(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, idx := range easy.Path {
		if typ := easy.Platforms[idx].Type; typ != leveldata.Solid {
			t.Fatalf("difficulty 1 path uses a %v platform", typ)
		}
	}
}

func TestExitBridgesUnreachableGap(t *testing.T) {
	g := newTestGenerator()
	b := newBuilder(g, 1, 1)
	b.level.Width = 800
	b.level.Height = 1000

	// 144px from the centered exit's left edge and 100px below it: too far
	// for a direct jump.
	last := leveldata.Platform{
		Pos:  gamemath.Vec{X: 100, Y: 230},
		Half: gamemath.Vec{X: 36, Y: 10},
	}
	b.appendPath(last)
	if err := b.placeExit(120); err != nil {
		t.Fatal(err)
	}

	if len(b.level.Path) != 3 {
		t.Fatalf("path = %v, want last, bridge, exit", b.level.Path)
	}
	exit := b.level.Platforms[b.level.Path[2]]
	if exit.Pos.X != 400 || exit.Top() != 120 {
		t.Fatalf("exit moved to %+v", exit.Pos)
	}
	for i := 0; i < 2; i++ {
		from := b.level.Platforms[b.level.Path[i]]
		to := b.level.Platforms[b.level.Path[i+1]]
		if !b.validStep(&from, &to) {
			h, v := reach.Gaps(from.Bounds(), to.Bounds())
			t.Fatalf("bridged step %d unsafe: h=%g v=%g", i, h, v)
		}
	}
}

func TestExitDirectWhenReachable(t *testing.T) {
	g := newTestGenerator()
	b := newBuilder(g, 1, 1)
	b.level.Width = 800
	b.level.Height = 1000

	b.appendPath(leveldata.Platform{
		Pos:  gamemath.Vec{X: 220, Y: 210},
		Half: gamemath.Vec{X: 36, Y: 10},
	})
	if err := b.placeExit(120); err != nil {
		t.Fatal(err)
	}
	if len(b.level.Path) != 2 {
		t.Fatalf("path = %v, want a direct step to the exit", b.level.Path)
	}
}

func TestClearRejectsBlockedCorridor(t *testing.T) {
	g := newTestGenerator()
	b := newBuilder(g, 1, 1)

	b.appendPath(leveldata.Platform{Pos: gamemath.Vec{X: 200, Y: 1010}, Half: gamemath.Vec{X: 50, Y: 10}})
	b.appendPath(leveldata.Platform{Pos: gamemath.Vec{X: 350, Y: 950}, Half: gamemath.Vec{X: 50, Y: 10}})

	// Hangs over the gap between the two, inside the first jump's arc.
	blocking := leveldata.Platform{Pos: gamemath.Vec{X: 275, Y: 930}, Half: gamemath.Vec{X: 20, Y: 10}}
	if b.clear(&blocking) {
		t.Fatalf("platform inside the jump corridor reported clear")
	}

	// Far to the right and above: nothing to block.
	open := leveldata.Platform{Pos: gamemath.Vec{X: 520, Y: 890}, Half: gamemath.Vec{X: 50, Y: 10}}
	if !b.clear(&open) {
		t.Fatalf("open placement reported blocked")
	}

	// Directly over the first platform, too low to stand under.
	low := leveldata.Platform{Pos: gamemath.Vec{X: 200, Y: 985}, Half: gamemath.Vec{X: 30, Y: 10}}
	if b.clear(&low) {
		t.Fatalf("platform without standing room reported clear")
	}
}

func TestErrExhaustedWraps(t *testing.T) {
	g := newTestGenerator()
	cfg := *g.Config
	cfg.MaxPlatforms = 2
	g.Config = &cfg

	_, err := g.Build(1, 1)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
}

func TestVerify(t *testing.T) {
	g := newTestGenerator()
	lvl, err := g.Build(5, 7)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Verify(lvl); err != nil {
		t.Fatalf("generated level failed verification: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(l *leveldata.Level)
	}{
		{"too_high", func(l *leveldata.Level) { l.Platforms[l.Path[1]].Pos.Y -= 400 }},
		{"sinks", func(l *leveldata.Level) { l.Platforms[l.Path[1]].Pos.Y = l.Platforms[l.Path[0]].Pos.Y }},
		{"no_path", func(l *leveldata.Level) { l.Path = l.Path[:1] }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := lvl.Clone()
			tc.mutate(bad)
			if err := g.Verify(bad); !errors.Is(err, ErrUnsafeStep) {
				t.Fatalf("err = %v, want ErrUnsafeStep", err)
			}
		})
	}
}

func TestLevelsKeepHeadroom(t *testing.T) {
	g := newTestGenerator()
	room := 2 * g.Oracle.Constants.ActorHalf.Y
	half := config.Sim.CheckpointSize.Scale(0.5)

	for d := MinDifficulty; d <= MaxDifficulty; d++ {
		for seed := int64(1); seed <= 30; seed++ {
			lvl, err := g.Build(seed, d)
			if err != nil {
				t.Fatalf("difficulty %d seed %d: %v", d, seed, err)
			}
			if err := g.Verify(lvl); err != nil {
				t.Fatalf("difficulty %d seed %d: %v", d, seed, err)
			}

			for i := range lvl.Platforms {
				for j := i + 1; j < len(lvl.Platforms); j++ {
					if lvl.Platforms[i].Bounds().Overlaps(lvl.Platforms[j].Bounds()) {
						t.Fatalf("difficulty %d seed %d: platforms %d and %d overlap", d, seed, i, j)
					}
				}
			}
			for _, idx := range lvl.Path {
				p := lvl.Platforms[idx].Bounds()
				for j, other := range lvl.Platforms {
					q := other.Bounds()
					if j == idx || q.Top() >= p.Top() || gamemath.OverlapX(p, q) <= 0 {
						continue
					}
					if p.Top()-q.Bottom() < room {
						t.Fatalf("difficulty %d seed %d: path platform %d roofed by %d (%gpx)", d, seed, idx, j, p.Top()-q.Bottom())
					}
				}
			}
			for i, cp := range lvl.Checkpoints {
				box := gamemath.AABB{Center: cp.Pos, Half: half}
				for j := range lvl.Platforms {
					if box.Overlaps(lvl.Platforms[j].Bounds()) {
						t.Fatalf("difficulty %d seed %d: checkpoint %d inside platform %d", d, seed, i, j)
					}
				}
			}

			// Every path platform passes the same clearance test it had to
			// pass when it was placed.
			b := newBuilder(g, seed, d)
			b.level = &leveldata.Level{Platforms: lvl.Platforms}
			for k := 1; k < len(lvl.Path); k++ {
				b.level.Path = lvl.Path[:k]
				if !b.clear(&lvl.Platforms[lvl.Path[k]]) {
					t.Fatalf("difficulty %d seed %d: path platform %d blocks the path below it", d, seed, k)
				}
			}
		}
	}
}

func TestVerifyRejectsBlockedLayouts(t *testing.T) {
	g := newTestGenerator()
	lvl, err := g.Build(9, 4)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		mutate func(l *leveldata.Level)
	}{
		{"flush_roof", func(l *leveldata.Level) {
			p := l.Platforms[l.Path[1]]
			l.Platforms = append(l.Platforms, leveldata.Platform{
				Pos:  gamemath.Vec{X: p.Pos.X, Y: p.Top() - 10},
				Half: gamemath.Vec{X: p.Half.X / 2, Y: 10},
			})
		}},
		{"overlap", func(l *leveldata.Level) {
			p := l.Platforms[l.Path[2]]
			p.Pos.X += 5
			l.Platforms = append(l.Platforms, p)
		}},
		{"buried_checkpoint", func(l *leveldata.Level) {
			l.Checkpoints[0].Pos = l.Platforms[l.Path[0]].Pos
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := lvl.Clone()
			tc.mutate(bad)
			if err := g.Verify(bad); !errors.Is(err, ErrBlocked) {
				t.Fatalf("err = %v, want ErrBlocked", err)
			}
		})
	}
}

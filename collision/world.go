package collision

import (
	"slices"

	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/kinematics"
	"github.com/automoto/parkour/shared/leveldata"
	"github.com/automoto/parkour/tags"
	"github.com/solarlune/resolv"
)

// World mirrors a level's platforms into a resolv.Space so each resolve pass
// only narrow-phases the platforms sharing cells with the actor. Objects carry
// their platform index in Data.
type World struct {
	Resolver *Resolver

	level   *leveldata.Level
	space   *resolv.Space
	objects []*resolv.Object
	inSpace []bool
	runner  *resolv.Object
}

// NewWorld builds the broad phase for level.
func NewWorld(level *leveldata.Level, r *Resolver) *World {
	if r == nil {
		r = NewResolver()
	}
	cell := max(r.Collision.BroadPhaseCell, 1)
	w := &World{
		Resolver: r,
		level:    level,
		space:    resolv.NewSpace(int(level.Width)+cell, int(level.Height)+cell, cell, cell),
		objects:  make([]*resolv.Object, len(level.Platforms)),
		inSpace:  make([]bool, len(level.Platforms)),
	}

	for i := range level.Platforms {
		p := &level.Platforms[i]
		tag := tags.ResolvPlatform
		if p.Lethal() {
			tag = tags.ResolvSpike
		}
		b := p.Bounds()
		obj := resolv.NewObject(b.Left(), b.Top(), 2*p.Half.X, 2*p.Half.Y, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, 2*p.Half.X, 2*p.Half.Y))
		obj.Data = i
		w.objects[i] = obj
	}

	half := config.Physics.ActorHalf
	w.runner = resolv.NewObject(0, 0, 2*half.X, 2*half.Y, tags.ResolvRunner)
	w.space.Add(w.runner)

	w.Sync()
	return w
}

// Level returns the level whose platforms the world mirrors.
func (w *World) Level() *leveldata.Level {
	return w.level
}

// Sync moves platform objects to their current positions and drops collapsed
// ones from the space. Call after platforms changed.
func (w *World) Sync() {
	for i := range w.level.Platforms {
		p := &w.level.Platforms[i]
		obj := w.objects[i]
		if !p.Active() {
			if w.inSpace[i] {
				w.space.Remove(obj)
				w.inSpace[i] = false
			}
			continue
		}
		b := p.Bounds()
		obj.X, obj.Y = b.Left(), b.Top()
		if !w.inSpace[i] {
			w.space.Add(obj)
			w.inSpace[i] = true
			continue
		}
		obj.Update()
	}
}

// Candidates returns the ascending indices of platforms near the actor.
func (w *World) Candidates(a *kinematics.Actor) []int {
	margin := w.Resolver.Collision.QueryMargin
	b := a.Bounds()
	w.runner.X = b.Left() - margin
	w.runner.Y = b.Top() - margin
	w.runner.W = 2 * (a.Half.X + margin)
	w.runner.H = 2 * (a.Half.Y + margin)
	w.runner.Update()

	idx := []int{}
	check := w.runner.Check(0, 0, tags.ResolvPlatform, tags.ResolvSpike)
	if check == nil {
		return idx
	}
	for _, obj := range check.Objects {
		if i, ok := obj.Data.(int); ok {
			idx = append(idx, i)
		}
	}
	slices.Sort(idx)
	return slices.Compact(idx)
}

// Resolve runs the resolver against the platforms near the actor.
func (w *World) Resolve(a *kinematics.Actor) Contact {
	return w.Resolver.Resolve(a, w.level.Platforms, w.Candidates(a))
}

// TouchingWall implements kinematics.WallProbe.
func (w *World) TouchingWall(a *kinematics.Actor, dir float64) bool {
	return w.Resolver.TouchingWall(a, w.level.Platforms, w.Candidates(a), dir)
}

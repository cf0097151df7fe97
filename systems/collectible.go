package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollectibles picks up every uncollected item within reach of the
// runner's box.
func UpdateCollectibles(e *ecs.ECS) {
	course := GetCourse(e)
	entry, ok := GetRunner(e)
	if !ok {
		return
	}
	runner := components.Runner.Get(entry)
	reach := runner.Actor.Bounds().Expand(cfg.Sim.CollectRadius)

	components.Collectible.Each(e.World, func(ce *donburi.Entry) {
		idx := components.Collectible.Get(ce).Index
		item := &course.Level.Collectibles[idx]
		if item.Collected || !contains(reach, item.Pos) {
			return
		}
		item.Collected = true
		runner.Score += item.Value
		publish(e, components.SimEvent{Kind: components.EventCollected, Index: idx, Pos: item.Pos, Value: item.Value})
	})
}

func contains(b gamemath.AABB, p gamemath.Vec) bool {
	return p.X >= b.Left() && p.X <= b.Right() && p.Y >= b.Top() && p.Y <= b.Bottom()
}

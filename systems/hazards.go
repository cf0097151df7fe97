package systems

import (
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/hazards"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards advances simulation time, moves platforms along their
// patterns and collapses crumbling platforms whose countdown ran out.
func UpdateHazards(e *ecs.ECS) {
	course := GetCourse(e)
	course.SimTime += course.Dt

	platforms := course.Level.Platforms
	for _, idx := range hazards.Advance(platforms, course.Dt, course.SimTime) {
		publish(e, components.SimEvent{Kind: components.EventPlatformCollapsed, Index: idx, Pos: platforms[idx].Pos})
	}
	course.World.Sync()
}

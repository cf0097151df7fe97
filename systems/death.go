package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/kinematics"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFallOut kills a runner that dropped out of the bottom of the level.
func UpdateFallOut(e *ecs.ECS) {
	course := GetCourse(e)
	entry, ok := GetRunner(e)
	if !ok || entry.HasComponent(components.Death) {
		return
	}
	actor := components.Runner.Get(entry).Actor

	if actor.Bounds().Top() > course.Level.Height+cfg.Sim.FallOutMargin {
		publish(e, components.SimEvent{Kind: components.EventFellOut, Index: -1, Pos: actor.Pos})
		markDead(entry, components.DeathFallOut)
	}
}

// UpdateDeaths respawns dead runners at the active checkpoint. Platforms are
// restored from the pristine level so a collapsed platform can never leave
// the course unsolvable.
func UpdateDeaths(e *ecs.ECS) {
	course := GetCourse(e)

	var dead []*donburi.Entry
	components.Death.Each(e.World, func(entry *donburi.Entry) {
		dead = append(dead, entry)
	})

	for _, entry := range dead {
		if !entry.HasComponent(components.Runner) {
			entry.RemoveComponent(components.Death)
			continue
		}
		runner := components.Runner.Get(entry)
		runner.Deaths++

		course.Level.RestorePlatforms(course.Pristine)
		course.World.Sync()

		spawn := RespawnPoint(course)
		runner.Actor.Respawn(spawn)
		runner.Intents = kinematics.Intents{}

		entry.RemoveComponent(components.Death)
		publish(e, components.SimEvent{Kind: components.EventRespawned, Index: course.ActiveCheckpoint, Pos: spawn})
	}
}

// RespawnPoint is the active checkpoint's position, or the level spawn when
// no checkpoint exists.
func RespawnPoint(course *components.CourseData) gamemath.Vec {
	cps := course.Level.Checkpoints
	if course.ActiveCheckpoint >= 0 && course.ActiveCheckpoint < len(cps) {
		return cps[course.ActiveCheckpoint].Pos
	}
	return course.Level.SpawnPoint
}

package systems

import (
	"log"

	"github.com/automoto/parkour/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFinishLine completes the course once the runner climbs past the
// exit threshold.
func UpdateFinishLine(e *ecs.ECS) {
	course := GetCourse(e)
	entry, ok := GetRunner(e)
	if !ok || entry.HasComponent(components.Death) {
		return
	}
	runner := components.Runner.Get(entry)

	components.FinishLine.Each(e.World, func(fe *donburi.Entry) {
		finishLine := components.FinishLine.Get(fe)
		if finishLine.Activated || !course.Level.Reached(runner.Actor.Pos.Y) {
			return
		}

		finishLine.Activated = true
		course.Finished = true
		publish(e, components.SimEvent{Kind: components.EventLevelCompleted, Index: -1, Pos: runner.Actor.Pos, Value: runner.Score})

		if err := ClearProgress(course); err != nil {
			log.Printf("Warning: Could not clear progress: %v", err)
		}
	})
}

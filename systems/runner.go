package systems

import (
	"github.com/automoto/parkour/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRunner applies the frame's intents and integrates the actor. The
// jump request is consumed here so a single press jumps once.
func UpdateRunner(e *ecs.ECS) {
	course := GetCourse(e)
	entry, ok := GetRunner(e)
	if !ok {
		return
	}
	runner := components.Runner.Get(entry)

	runner.LastJump = course.Model.ApplyIntents(runner.Actor, runner.Intents, course.Dt)
	runner.Intents.JumpRequested = false

	course.Model.Step(runner.Actor, course.Dt, course.World)
}

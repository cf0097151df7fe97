package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints activates checkpoints the runner touches. Only
// checkpoints further along than the active one move the respawn point.
func UpdateCheckpoints(e *ecs.ECS) {
	course := GetCourse(e)
	entry, ok := GetRunner(e)
	if !ok || entry.HasComponent(components.Death) {
		return
	}
	runner := components.Runner.Get(entry)
	bounds := runner.Actor.Bounds()

	components.Checkpoint.Each(e.World, func(ce *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(ce)
		if checkpoint.Activated {
			return
		}

		marker := gamemath.AABB{
			Center: gamemath.Vec{X: checkpoint.SpawnX, Y: checkpoint.SpawnY},
			Half:   cfg.Sim.CheckpointSize.Scale(0.5),
		}
		if !bounds.Overlaps(marker) {
			return
		}

		// Activate checkpoint
		checkpoint.Activated = true
		if checkpoint.Index <= course.ActiveCheckpoint {
			return
		}
		course.ActiveCheckpoint = checkpoint.Index
		publish(e, components.SimEvent{
			Kind:  components.EventCheckpointReached,
			Index: checkpoint.Index,
			Pos:   gamemath.Vec{X: checkpoint.SpawnX, Y: checkpoint.SpawnY},
		})

		SaveProgress(course, runner)
	})
}

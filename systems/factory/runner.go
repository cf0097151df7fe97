package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/kinematics"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateRunner(ecs *ecs.ECS, spawn gamemath.Vec) *donburi.Entry {
	runner := archetypes.Runner.Spawn(ecs)

	components.Runner.SetValue(runner, components.RunnerData{
		Actor: kinematics.NewActor(spawn, &cfg.Physics),
	})

	return runner
}

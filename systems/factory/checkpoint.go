package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint entity for level checkpoint index.
// The first checkpoint is the spawn point and starts activated.
func CreateCheckpoint(ecs *ecs.ECS, index int, cp leveldata.Checkpoint) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Index:     index,
		Platform:  cp.Platform,
		Activated: index == 0,
		SpawnX:    cp.Pos.X,
		SpawnY:    cp.Pos.Y,
	})

	return checkpoint
}

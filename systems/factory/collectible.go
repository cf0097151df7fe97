package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCollectible(ecs *ecs.ECS, index int) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)
	components.Collectible.SetValue(collectible, components.CollectibleData{Index: index})
	return collectible
}

package archetypes

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Course = newArchetype(
		tags.Course,
		components.Course,
	)
	Runner = newArchetype(
		tags.Runner,
		components.Runner,
		components.State,
		components.Idle,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

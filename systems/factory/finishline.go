package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinishLine creates the exit threshold entity
func CreateFinishLine(ecs *ecs.ECS, y float64) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)

	components.FinishLine.SetValue(finishLine, components.FinishLineData{
		Y:         y,
		Activated: false,
	})

	return finishLine
}

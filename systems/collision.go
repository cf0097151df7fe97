package systems

import (
	"github.com/automoto/parkour/collision"
	"github.com/automoto/parkour/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the runner against the course. A lethal contact
// marks the runner for the death system.
func UpdateCollisions(e *ecs.ECS) {
	course := GetCourse(e)
	entry, ok := GetRunner(e)
	if !ok {
		return
	}
	actor := components.Runner.Get(entry).Actor

	contact := course.World.Resolve(actor)
	switch contact.Kind {
	case collision.ContactLanded:
		publish(e, components.SimEvent{Kind: components.EventLanded, Index: contact.Platform, Pos: actor.Pos})
	case collision.ContactLethal:
		publish(e, components.SimEvent{Kind: components.EventLethalContact, Index: contact.Platform, Pos: actor.Pos})
		markDead(entry, components.DeathLethal)
	}
}

func markDead(entry *donburi.Entry, cause components.DeathCause) {
	if entry.HasComponent(components.Death) {
		return
	}
	entry.AddComponent(components.Death)
	components.Death.SetValue(entry, components.DeathData{Cause: cause})
}

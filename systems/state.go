package systems

import (
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/kinematics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives the runner's pose and keeps exactly one state tag on
// the entry.
func UpdateStates(e *ecs.ECS) {
	components.State.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Runner) {
			return
		}
		state := components.State.Get(entry)
		next := poseOf(components.Runner.Get(entry).Actor)

		state.PreviousState = state.CurrentState
		state.CurrentState = next
		if state.CurrentState != state.PreviousState {
			state.StateTimer = 0
			setStateTag(entry, next)
			return
		}
		state.StateTimer++
	})
}

func poseOf(a *kinematics.Actor) components.StateID {
	switch {
	case a.WallSliding:
		return components.StateWallSliding
	case !a.Grounded && a.Vel.Y < 0:
		return components.StateJumping
	case !a.Grounded:
		return components.StateFalling
	case a.Vel.X != 0:
		return components.StateRunning
	}
	return components.StateIdle
}

func setStateTag(e *donburi.Entry, s components.StateID) {
	removeAllStateTags(e)

	switch s {
	case components.StateIdle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case components.StateRunning:
		donburi.Add(e, components.Running, &components.RunningState{})
	case components.StateJumping:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case components.StateFalling:
		donburi.Add(e, components.Falling, &components.FallingState{})
	case components.StateWallSliding:
		donburi.Add(e, components.WallSliding, &components.WallSlidingState{})
	}
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.FallingState](e, components.Falling)
	donburi.Remove[components.WallSlidingState](e, components.WallSliding)
}

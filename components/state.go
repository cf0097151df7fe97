package components

import (
	"github.com/yohamta/donburi"
)

// StateID is the runner's pose, derived from the actor after each step.
type StateID int

const (
	StateIdle StateID = iota
	StateRunning
	StateJumping
	StateFalling
	StateWallSliding
)

var stateNames = [...]string{
	StateIdle:        "idle",
	StateRunning:     "running",
	StateJumping:     "jumping",
	StateFalling:     "falling",
	StateWallSliding: "wall-sliding",
}

func (s StateID) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

type StateData struct {
	CurrentState  StateID
	PreviousState StateID
	StateTimer    int // frames spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type RunningState struct{}
type JumpingState struct{}
type FallingState struct{}
type WallSlidingState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Falling = donburi.NewComponentType[FallingState]()
var WallSliding = donburi.NewComponentType[WallSlidingState]()

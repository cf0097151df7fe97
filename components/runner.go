package components

import (
	"github.com/automoto/parkour/kinematics"
	"github.com/yohamta/donburi"
)

type RunnerData struct {
	Actor    *kinematics.Actor
	Intents  kinematics.Intents
	LastJump kinematics.JumpKind // Jump performed on the most recent step
	Score    int
	Deaths   int
}

var Runner = donburi.NewComponentType[RunnerData]()

package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	Index     int // position in Level.Checkpoints
	Platform  int
	Activated bool
	SpawnX    float64 // Respawn position (actor center standing on the platform)
	SpawnY    float64
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()

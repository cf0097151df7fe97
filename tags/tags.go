package tags

import "github.com/yohamta/donburi"

var (
	Runner      = donburi.NewTag().SetName("Runner")
	Course      = donburi.NewTag().SetName("Course")
	Checkpoint  = donburi.NewTag().SetName("Checkpoint")
	Collectible = donburi.NewTag().SetName("Collectible")
	FinishLine  = donburi.NewTag().SetName("FinishLine")
)

// Resolv tags for the collision broad phase
const (
	ResolvPlatform = "platform"
	ResolvSpike    = "spike"
	ResolvRunner   = "runner"
)

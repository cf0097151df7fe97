package components

import (
	"github.com/automoto/parkour/collision"
	"github.com/automoto/parkour/kinematics"
	"github.com/automoto/parkour/persistence"
	"github.com/automoto/parkour/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CourseData is the singleton holding the live level and everything the
// per-frame systems share.
type CourseData struct {
	Level    *leveldata.Level
	Pristine *leveldata.Level // untouched copy used to restore platforms on respawn
	World    *collision.World
	Model    *kinematics.Model
	Store    persistence.Store // nil disables progress saving

	Dt      float64 // clamped step length of the current frame
	SimTime float64
	Frame   int

	ActiveCheckpoint int // index into Level.Checkpoints
	Finished         bool
}

var Course = donburi.NewComponentType[CourseData]()

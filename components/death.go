package components

import "github.com/yohamta/donburi"

type DeathCause int

const (
	DeathLethal  DeathCause = iota // touched a spike
	DeathFallOut                   // dropped below the level
)

func (c DeathCause) String() string {
	if c == DeathFallOut {
		return "fall-out"
	}
	return "lethal"
}

// DeathData marks a runner that died this frame. The death system respawns
// it and removes the marker.
type DeathData struct {
	Cause DeathCause
}

var Death = donburi.NewComponentType[DeathData]()

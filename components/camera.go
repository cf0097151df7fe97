package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	LookAheadY float64
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData is a decaying camera wobble.
type ScreenShakeData struct {
	Strength float64 // peak offset in pixels
	Frames   int
	Left     int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

package components

import "github.com/yohamta/donburi"

type FinishLineData struct {
	Y         float64 // actor centers at or above this y have finished
	Activated bool
}

var FinishLine = donburi.NewComponentType[FinishLineData]()

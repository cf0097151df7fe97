package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	Index int // position in Level.Collectibles
}

var Collectible = donburi.NewComponentType[CollectibleData]()

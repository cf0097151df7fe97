package levelgen

import (
	"math"

	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

const (
	gemChance = 0.2
	gemValue  = 50
	coinValue = 10
)

// addCollectible floats a pickup at head height above c, inside the standing
// room every path platform keeps.
func (b *builder) addCollectible(c *leveldata.Platform) {
	kind, value := leveldata.Coin, coinValue
	if b.rng.Float64() < gemChance {
		kind, value = leveldata.Gem, gemValue
	}
	x := c.Pos.X + (b.rng.Float64()*2-1)*c.Half.X/2
	b.level.Collectibles = append(b.level.Collectibles, leveldata.Collectible{
		Pos:   gamemath.Vec{X: math.Round(x), Y: c.Top() - 2*b.actor.Y + pad},
		Kind:  kind,
		Value: value,
	})
}

// addWall records a wall strip in the side margin nearest c. Walls sit in
// the outer band, clear of every jump corridor.
func (b *builder) addWall(c *leveldata.Platform) {
	halfH := math.Floor(b.safe.WallHeight / 2)
	x := b.cfg.WallHalfW
	if c.Pos.X > b.cfg.Width/2 {
		x = b.cfg.Width - b.cfg.WallHalfW
	}
	wall := leveldata.Platform{
		Pos:  gamemath.Vec{X: x, Y: c.Top() - halfH},
		Half: gamemath.Vec{X: b.cfg.WallHalfW, Y: halfH},
	}
	for i := range b.walls {
		if wall.Bounds().Expand(pad).Overlaps(b.walls[i].Bounds()) {
			return
		}
	}
	b.walls = append(b.walls, wall)
}

// decorate appends walls and spikes after the path. Spikes only go into the
// outer band, so they never sit on or above the route.
func (b *builder) decorate() {
	lvl := b.level
	lvl.Platforms = append(lvl.Platforms, b.walls...)

	count := b.cfg.SpikeBase + int(b.cfg.SpikesPerLevel*float64(b.difficulty))
	half := b.cfg.SpikeHalf
	top, bottom := b.cfg.TopMargin, lvl.Height-2*startClearance
	for i := 0; i < count; i++ {
		for try := 0; try < 8; try++ {
			x := half.X
			if b.rng.Intn(2) == 0 {
				x = b.cfg.Width - half.X
			}
			y := math.Round(top + b.rng.Float64()*(bottom-top))
			spike := leveldata.Platform{
				Pos:  gamemath.Vec{X: x, Y: y},
				Half: half,
				Type: leveldata.Spike,
			}
			if b.blocked(spike.Bounds().Expand(pad)) {
				continue
			}
			lvl.Platforms = append(lvl.Platforms, spike)
			break
		}
	}
}

func (b *builder) blocked(box gamemath.AABB) bool {
	for i := range b.level.Platforms {
		if box.Overlaps(b.level.Platforms[i].Bounds()) {
			return true
		}
	}
	return false
}

package levelgen

import (
	"fmt"
	"math"

	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

// placeExit caps the path with the exit platform, centered at the top of the
// level. When the centered exit is out of safe reach or blocks the path a
// bridging platform is inserted between it and the last platform; failing
// that the exit moves next to the last platform. The path is unchanged on
// error.
func (b *builder) placeExit(exitTop float64) error {
	last := *b.last()
	exit := leveldata.Platform{
		Pos:  gamemath.Vec{X: math.Round(b.cfg.Width / 2), Y: exitTop + b.cfg.PlatformHalfH},
		Half: gamemath.Vec{X: b.cfg.ExitHalfW, Y: b.cfg.PlatformHalfH},
	}

	if b.validStep(&last, &exit) && b.clear(&exit) {
		b.appendPath(exit)
		return nil
	}
	if b.bridge(&last, &exit) || b.exitBeside(&last, exitTop) {
		return nil
	}
	return fmt.Errorf("%w: no clear route to the exit platform", ErrExhausted)
}

// bridge searches for one platform between last and exit, starting at their
// midpoint and widening outwards. On success both the bridge and the exit are
// on the path.
func (b *builder) bridge(last, exit *leveldata.Platform) bool {
	total := last.Top() - exit.Top()
	hw := b.cfg.MinHalfW
	lo, hi := b.cfg.SideMargin+hw, b.cfg.Width-b.cfg.SideMargin-hw
	mid := math.Round((last.Pos.X + exit.Pos.X) / 2)

	for _, frac := range []float64{0.5, 0.35, 0.65} {
		rise := math.Floor(total * frac)
		if rise < 1 || total-rise < 1 {
			continue
		}
		for off := 0.0; mid-off >= lo || mid+off <= hi; off += 4 {
			xs := []float64{mid - off}
			if off > 0 {
				xs = append(xs, mid+off)
			}
			for _, x := range xs {
				if x < lo || x > hi {
					continue
				}
				br := leveldata.Platform{
					Pos:  gamemath.Vec{X: x, Y: last.Top() - rise + b.cfg.PlatformHalfH},
					Half: gamemath.Vec{X: hw, Y: b.cfg.PlatformHalfH},
				}
				if !b.validStep(last, &br) || !b.clear(&br) {
					continue
				}
				b.appendPath(br)
				if b.validStep(&br, exit) && b.clear(exit) {
					b.appendPath(*exit)
					return true
				}
				b.popPath()
			}
		}
	}
	return false
}

// exitBeside places the exit directly next to last, shrinking it if the
// band is too narrow.
func (b *builder) exitBeside(last *leveldata.Platform, exitTop float64) bool {
	rise := last.Top() - exitTop
	minGap := travel(last)
	limit := b.gapLimit(rise, rise > b.safe.MaxHeight) - minGap
	gaps := []float64{math.Floor((minGap + limit) / 2), minGap, math.Floor(limit)}
	lo, hi := b.cfg.SideMargin, b.cfg.Width-b.cfg.SideMargin

	for _, dir := range []float64{b.dir, -b.dir} {
		for hw := b.cfg.ExitHalfW; hw >= b.cfg.MinHalfW; hw -= 12 {
			for _, gap := range gaps {
				x := last.Pos.X + dir*(last.Half.X+gap+hw)
				if x-hw < lo || x+hw > hi {
					continue
				}
				exit := leveldata.Platform{
					Pos:  gamemath.Vec{X: x, Y: exitTop + b.cfg.PlatformHalfH},
					Half: gamemath.Vec{X: hw, Y: b.cfg.PlatformHalfH},
				}
				if b.validStep(last, &exit) && b.clear(&exit) {
					b.appendPath(exit)
					return true
				}
			}
		}
	}
	return false
}

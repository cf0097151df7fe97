package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/reach"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every platform, including collapsed ones, and the safe
// jump envelope above the runner's last landing spot.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBroadPhase {
		return
	}
	course := GetCourse(e)
	v, ok := newView(e, screen)
	if course == nil || !ok {
		return
	}

	for i := range course.Level.Platforms {
		p := &course.Level.Platforms[i]
		b := p.Bounds()
		if !v.visible(b) {
			continue
		}
		c := cfg.Green
		if !p.Active() {
			c = cfg.LightRed
		}
		v.strokeBox(screen, b, c)
	}

	entry, ok := GetRunner(e)
	if !ok {
		return
	}
	actor := components.Runner.Get(entry).Actor
	safe := reach.NewOracle(nil).SafePlatformSpacing()
	feet := actor.LastGrounded.Add(gamemath.Vec{Y: actor.Half.Y})

	// Single and double jump envelopes as boxes centered on the takeoff point
	for _, env := range []gamemath.Vec{
		{X: safe.MaxDistance, Y: safe.MaxHeight},
		{X: safe.DoubleDistance, Y: safe.DoubleHeight},
	} {
		x := float32(feet.X - env.X + v.offX)
		y := float32(feet.Y - env.Y + v.offY)
		vector.StrokeRect(screen, x, y, float32(2*env.X), float32(env.Y), 1, cfg.Yellow, false)
	}
}

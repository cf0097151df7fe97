package systems

import (
	"image/color"
	"math"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps world coordinates onto the screen and culls what is off it.
type view struct {
	offX, offY float64
	min, max   gamemath.Vec
}

const cullPadding = 64.0

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	return view{
		offX: width/2 - camera.Position.X,
		offY: height/2 - camera.Position.Y,
		min:  gamemath.Vec{X: camera.Position.X - width/2 - cullPadding, Y: camera.Position.Y - height/2 - cullPadding},
		max:  gamemath.Vec{X: camera.Position.X + width/2 + cullPadding, Y: camera.Position.Y + height/2 + cullPadding},
	}, true
}

func (v view) visible(b gamemath.AABB) bool {
	return b.Right() >= v.min.X && b.Left() <= v.max.X && b.Bottom() >= v.min.Y && b.Top() <= v.max.Y
}

func (v view) fillBox(screen *ebiten.Image, b gamemath.AABB, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(b.Left()+v.offX), float32(b.Top()+v.offY),
		float32(2*b.Half.X), float32(2*b.Half.Y), c, false)
}

func (v view) strokeBox(screen *ebiten.Image, b gamemath.AABB, c color.Color) {
	vector.StrokeRect(screen,
		float32(b.Left()+v.offX), float32(b.Top()+v.offY),
		float32(2*b.Half.X), float32(2*b.Half.Y), 1, c, false)
}

// DrawBackground clears the screen.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)
}

// DrawPlatforms renders every active platform colored by type. Armed crumbling
// platforms blink faster as their countdown runs out.
func DrawPlatforms(e *ecs.ECS, screen *ebiten.Image) {
	course := GetCourse(e)
	v, ok := newView(e, screen)
	if course == nil || !ok {
		return
	}

	for i := range course.Level.Platforms {
		p := &course.Level.Platforms[i]
		b := p.Bounds()
		if !p.Active() || !v.visible(b) {
			continue
		}
		v.fillBox(screen, b, platformColor(p, course.SimTime))
	}
}

func platformColor(p *leveldata.Platform, simTime float64) color.Color {
	switch p.Type {
	case leveldata.Moving:
		return cfg.LightBlue
	case leveldata.Bouncy:
		return cfg.LightGreen
	case leveldata.Spike:
		return cfg.Red
	case leveldata.Crumbling:
		if p.Crumble.Phase == leveldata.Armed {
			rate := 4 + 12*(1-p.Crumble.Timer/math.Max(cfg.Hazard.CrumbleDelay, 1e-6))
			if math.Sin(simTime*rate*math.Pi) > 0 {
				return cfg.Yellow
			}
		}
		return cfg.Orange
	}
	return cfg.Gray
}

// DrawPickups renders checkpoints, uncollected items and the exit line.
func DrawPickups(e *ecs.ECS, screen *ebiten.Image) {
	course := GetCourse(e)
	v, ok := newView(e, screen)
	if course == nil || !ok {
		return
	}

	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(entry)
		b := gamemath.AABB{
			Center: gamemath.Vec{X: checkpoint.SpawnX, Y: checkpoint.SpawnY},
			Half:   cfg.Sim.CheckpointSize.Scale(0.5),
		}
		if !v.visible(b) {
			return
		}
		c := color.Color(cfg.White)
		if checkpoint.Index == course.ActiveCheckpoint {
			c = cfg.Green
		}
		v.strokeBox(screen, b, c)
	})

	components.Collectible.Each(e.World, func(entry *donburi.Entry) {
		item := course.Level.Collectibles[components.Collectible.Get(entry).Index]
		if item.Collected {
			return
		}
		c, r := cfg.Yellow, float32(4)
		if item.Kind == leveldata.Gem {
			c, r = cfg.Magenta, 6
		}
		vector.DrawFilledCircle(screen, float32(item.Pos.X+v.offX), float32(item.Pos.Y+v.offY), r, c, true)
	})

	components.FinishLine.Each(e.World, func(entry *donburi.Entry) {
		y := float32(components.FinishLine.Get(entry).Y + v.offY)
		vector.StrokeLine(screen, float32(v.offX), y, float32(course.Level.Width+v.offX), y, 2, cfg.Purple, false)
	})
}

// DrawRunner renders the runner box with a facing marker.
func DrawRunner(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := GetRunner(e)
	v, vok := newView(e, screen)
	if !ok || !vok {
		return
	}
	actor := components.Runner.Get(entry).Actor
	b := actor.Bounds()

	var c color.Color = cfg.Blue
	if entry.HasComponent(components.State) {
		c = stateColor(components.State.Get(entry).CurrentState)
	}
	v.fillBox(screen, b, c)

	eyeX := b.Center.X + actor.Half.X/2
	if !actor.FacingRight {
		eyeX = b.Center.X - actor.Half.X/2
	}
	vector.DrawFilledRect(screen, float32(eyeX-2+v.offX), float32(b.Top()+6+v.offY), 4, 4, cfg.White, false)
}

func stateColor(s components.StateID) color.Color {
	switch s {
	case components.StateJumping:
		return cfg.Purple
	case components.StateFalling:
		return cfg.Magenta
	case components.StateWallSliding:
		return cfg.Orange
	}
	return cfg.Blue
}

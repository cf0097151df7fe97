// Package hazards advances time-driven platform state: moving platform
// patterns and crumble countdowns.
package hazards

import (
	"math"

	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
	"github.com/tanema/gween/ease"
)

// Advance moves every moving platform to its pattern position at simTime,
// recording the displacement in LastDelta, and counts armed crumble timers
// down by dt. It returns the indices of platforms that collapsed this call.
func Advance(platforms []leveldata.Platform, dt, simTime float64) []int {
	var collapsed []int
	for i := range platforms {
		p := &platforms[i]

		if p.Type == leveldata.Moving && p.Pattern != leveldata.PatternNone {
			next := PatternPosition(p.Pattern, p.PatternData, simTime)
			p.LastDelta = next.Sub(p.Pos)
			p.Pos = next
		} else {
			p.LastDelta = gamemath.Vec{}
		}

		if p.Crumble.Phase == leveldata.Armed {
			p.Crumble.Timer -= dt
			if p.Crumble.Timer <= 0 {
				p.Crumble = leveldata.CrumbleState{Phase: leveldata.Collapsed}
				collapsed = append(collapsed, i)
			}
		}
	}
	return collapsed
}

// PatternPosition evaluates a motion pattern. Positions depend on time only,
// so they never drift.
func PatternPosition(pattern leveldata.Pattern, d leveldata.PatternData, simTime float64) gamemath.Vec {
	angle := simTime*d.Speed + d.Phase
	switch pattern {
	case leveldata.PatternHorizontal:
		return gamemath.Vec{X: d.Center.X + d.Radius*math.Sin(angle), Y: d.Center.Y}
	case leveldata.PatternVertical:
		return gamemath.Vec{X: d.Center.X, Y: d.Center.Y + d.Radius*math.Sin(angle)}
	case leveldata.PatternCircular:
		return gamemath.Vec{X: d.Center.X + d.Radius*math.Cos(angle), Y: d.Center.Y + d.Radius*math.Sin(angle)}
	case leveldata.PatternPatrol:
		return gamemath.Vec{X: d.Center.X + d.Radius*patrolOffset(angle), Y: d.Center.Y}
	}
	return d.Center
}

// patrolOffset eases from -1 to 1 over the first half turn and back over the
// second, slowing near each end.
func patrolOffset(angle float64) float64 {
	t := math.Mod(angle, 2*math.Pi)
	if t < 0 {
		t += 2 * math.Pi
	}
	if t < math.Pi {
		return float64(ease.InOutQuad(float32(t), -1, 2, math.Pi))
	}
	return float64(ease.InOutQuad(float32(t-math.Pi), 1, -2, math.Pi))
}

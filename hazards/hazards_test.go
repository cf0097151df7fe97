package hazards

import (
	"math"
	"testing"

	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

func movingPlatform(pattern leveldata.Pattern) leveldata.Platform {
	center := gamemath.Vec{X: 100, Y: 200}
	return leveldata.Platform{
		Pos:         center,
		Half:        gamemath.Vec{X: 40, Y: 10},
		Type:        leveldata.Moving,
		Pattern:     pattern,
		PatternData: leveldata.PatternData{Center: center, Radius: 30, Speed: 2},
	}
}

func TestPatternPositions(t *testing.T) {
	simTime := math.Pi / 4 // angle pi/2
	cases := []struct {
		pattern leveldata.Pattern
		want    gamemath.Vec
	}{
		{leveldata.PatternHorizontal, gamemath.Vec{X: 130, Y: 200}},
		{leveldata.PatternVertical, gamemath.Vec{X: 100, Y: 230}},
		{leveldata.PatternCircular, gamemath.Vec{X: 100, Y: 230}},
		{leveldata.PatternPatrol, gamemath.Vec{X: 100, Y: 200}},
		{leveldata.PatternNone, gamemath.Vec{X: 100, Y: 200}},
	}
	for _, tc := range cases {
		t.Run(tc.pattern.String(), func(t *testing.T) {
			p := movingPlatform(tc.pattern)
			got := PatternPosition(p.Pattern, p.PatternData, simTime)
			if math.Abs(got.X-tc.want.X) > 1e-3 || math.Abs(got.Y-tc.want.Y) > 1e-3 {
				t.Fatalf("position = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestPatrolStaysWithinRadius(t *testing.T) {
	p := movingPlatform(leveldata.PatternPatrol)
	for step := 0; step < 600; step++ {
		pos := PatternPosition(p.Pattern, p.PatternData, float64(step)/60)
		if math.Abs(pos.X-100) > 30+1e-3 {
			t.Fatalf("step %d: x=%g outside the patrol range", step, pos.X)
		}
	}
	start := PatternPosition(p.Pattern, p.PatternData, 0)
	half := PatternPosition(p.Pattern, p.PatternData, math.Pi/2)
	if math.Abs(start.X-70) > 1e-3 || math.Abs(half.X-130) > 1e-3 {
		t.Fatalf("patrol ends = %g %g, want 70 130", start.X, half.X)
	}
}

func TestAdvanceRecordsDelta(t *testing.T) {
	platforms := []leveldata.Platform{
		movingPlatform(leveldata.PatternHorizontal),
		{Pos: gamemath.Vec{X: 10, Y: 10}, Half: gamemath.Vec{X: 5, Y: 5}},
	}
	Advance(platforms, 1.0/60, math.Pi/4)
	if math.Abs(platforms[0].Pos.X-130) > 1e-3 {
		t.Fatalf("moving platform at %+v", platforms[0].Pos)
	}
	if math.Abs(platforms[0].LastDelta.X-30) > 1e-3 {
		t.Fatalf("delta = %+v, want 30 on x", platforms[0].LastDelta)
	}
	if platforms[1].Pos != (gamemath.Vec{X: 10, Y: 10}) || platforms[1].LastDelta != (gamemath.Vec{}) {
		t.Fatalf("solid platform moved")
	}
}

func TestCrumbleCountdown(t *testing.T) {
	platforms := []leveldata.Platform{
		{Type: leveldata.Crumbling, Half: gamemath.Vec{X: 5, Y: 5}},
		{Type: leveldata.Crumbling, Half: gamemath.Vec{X: 5, Y: 5}},
	}
	platforms[0].Arm(1.0)

	simTime := 0.0
	var collapsedAt []float64
	for i := 0; i < 90; i++ {
		simTime += 1.0 / 60
		if got := Advance(platforms, 1.0/60, simTime); len(got) > 0 {
			if len(got) != 1 || got[0] != 0 {
				t.Fatalf("unexpected collapse %v", got)
			}
			collapsedAt = append(collapsedAt, simTime)
		}
	}
	if len(collapsedAt) != 1 {
		t.Fatalf("collapse should happen exactly once, got %v", collapsedAt)
	}
	if math.Abs(collapsedAt[0]-1.0) > 1.0/60+1e-9 {
		t.Fatalf("collapsed at %g, want about 1s", collapsedAt[0])
	}
	if platforms[0].Active() {
		t.Fatalf("collapsed platform still active")
	}
	if !platforms[1].Active() || platforms[1].Crumble.Phase != leveldata.Intact {
		t.Fatalf("untouched platform changed: %+v", platforms[1].Crumble)
	}
}

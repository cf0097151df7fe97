package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 6
	hudMargin    = 10
	hudLine      = 14
)

// DrawHUD renders run stats in the top-left corner and a climb progress bar.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	course := GetCourse(e)
	entry, ok := GetRunner(e)
	if course == nil || !ok || !fonts.Loaded(fonts.Small) {
		return
	}
	runner := components.Runner.Get(entry)
	face := fonts.Small.Get()

	lines := []string{
		fmt.Sprintf("seed %d  difficulty %d", course.Level.Seed, course.Level.Difficulty),
		fmt.Sprintf("score %d  deaths %d", runner.Score, runner.Deaths),
		fmt.Sprintf("checkpoint %d/%d", course.ActiveCheckpoint+1, len(course.Level.Checkpoints)),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+hudLine*(i+1), cfg.White)
	}

	// Climb progress (dark background, green fill)
	barY := float32(hudMargin + hudLine*len(lines) + 6)
	vector.DrawFilledRect(screen, hudMargin, barY, hudBarWidth, hudBarHeight, cfg.DarkGray, false)
	vector.DrawFilledRect(screen, hudMargin, barY, hudBarWidth*float32(climbRatio(course, runner)), hudBarHeight, cfg.Green, false)

	if course.Finished {
		drawFinished(screen, runner)
	}
}

func climbRatio(course *components.CourseData, runner *components.RunnerData) float64 {
	span := course.Level.SpawnPoint.Y - course.Level.ExitY
	if span <= 0 {
		return 1
	}
	r := (course.Level.SpawnPoint.Y - runner.Actor.Pos.Y) / span
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

func drawFinished(screen *ebiten.Image, runner *components.RunnerData) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	if !fonts.Loaded(fonts.Title) || !fonts.Loaded(fonts.Regular) {
		return
	}
	drawCentered(screen, "COURSE COMPLETE", fonts.Title.Get(), height/2-10, cfg.White)
	drawCentered(screen, fmt.Sprintf("score %d  deaths %d", runner.Score, runner.Deaths), fonts.Regular.Get(), height/2+20, cfg.White)
	drawCentered(screen, "N: next course  R: retry", fonts.Regular.Get(), height/2+40, cfg.White)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	text.Draw(screen, s, face, (screen.Bounds().Dx()-w)/2, y, clr)
}

package scenes

import (
	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// drawError shows why no course could be started.
func drawError(screen *ebiten.Image, err error) {
	if !fonts.Loaded(fonts.Regular) {
		return
	}
	text.Draw(screen, "Could not start the course:", fonts.Regular.Get(), 20, 40, config.LightRed)
	text.Draw(screen, err.Error(), fonts.Small.Get(), 20, 60, config.White)
}

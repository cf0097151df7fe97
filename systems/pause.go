package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const menuOptionCount = int(components.MenuExit) + 1

// UpdatePause handles the pause toggle and menu navigation. It returns the
// option chosen this frame, or MenuNone. Choosing Resume unpauses here; the
// caller acts on the others.
func UpdatePause(e *ecs.ECS, input *components.InputData) components.PauseMenuOption {
	pause := GetOrCreatePause(e)

	switch {
	case GetAction(input, cfg.ActionPause).JustPressed:
		pause.IsPaused = !pause.IsPaused
		pause.SelectedOption = components.MenuResume
		return components.MenuNone
	case !pause.IsPaused:
		return components.MenuNone
	case GetAction(input, cfg.ActionMenuUp).JustPressed:
		pause.SelectedOption = stepOption(pause.SelectedOption, -1)
	case GetAction(input, cfg.ActionMenuDown).JustPressed:
		pause.SelectedOption = stepOption(pause.SelectedOption, 1)
	case GetAction(input, cfg.ActionMenuSelect).JustPressed:
		if pause.SelectedOption != components.MenuExit {
			pause.IsPaused = false
		}
		return pause.SelectedOption
	}
	return components.MenuNone
}

// stepOption moves the selection by delta, wrapping at both ends.
func stepOption(o components.PauseMenuOption, delta int) components.PauseMenuOption {
	return components.PauseMenuOption((int(o) + delta + menuOptionCount) % menuOptionCount)
}

// DrawPause dims the course and lists the menu options.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.Pause.OverlayColor, false)
	if !fonts.Loaded(fonts.Bold) {
		return
	}

	row := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	top := (float64(b.Dy()) - row*float64(len(cfg.Pause.MenuOptions))) / 2
	face := fonts.Bold.Get()
	for i, label := range cfg.Pause.MenuOptions {
		clr := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			clr = cfg.Pause.TextColorSelected
			label = "> " + label + " <"
		}
		drawCentered(screen, label, face, int(top+float64(i)*row+cfg.Pause.MenuItemHeight), clr)
	}
}

// WithPauseCheck skips system while the pause menu is open.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks also skips system once the course is finished.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithFinishCheck(system))
}

// GetOrCreatePause returns the world's pause state, creating it on first use.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(entry, components.PauseData{SelectedOption: components.MenuResume})
	}
	return components.Pause.Get(entry)
}

package config

import "image/color"

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows the runner (0.0-1.0)
	LookAheadDistanceY      float64 // Max upward look-ahead offset in pixels while climbing
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum vertical speed to update look-ahead
}

// ScreenShakeConfig contains screen shake values for viewer events
type ScreenShakeConfig struct {
	DeathIntensity    float64 // pixels
	DeathDuration     int     // frames
	CollapseIntensity float64
	CollapseDuration  int
}

// PauseConfig contains pause menu layout and colors
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
}

// DebugConfig contains debug overlay toggles
type DebugConfig struct {
	ShowBroadPhase bool // outline platform boxes and the safe envelope
}

var C *Config
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Debug DebugConfig
var Pause PauseConfig

// Color palette
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Sky          = color.RGBA{R: 24, G: 28, B: 48, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceY:      60.0,
		LookAheadSmoothing:      0.05, // Slower than follow for smooth feel
		LookAheadSpeedThreshold: 20.0,
	}

	ScreenShake = ScreenShakeConfig{
		DeathIntensity:    6.0,
		DeathDuration:     18,
		CollapseIntensity: 2.0,
		CollapseDuration:  8,
	}

	Pause = PauseConfig{
		OverlayColor:      color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		MenuOptions:       []string{"Resume", "Restart", "Exit"},
		MenuItemHeight:    20,
		MenuItemGap:       8,
	}

	Debug = DebugConfig{
		ShowBroadPhase: false,
	}
}

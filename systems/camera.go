package systems

import (
	"math"

	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)

	runnerEntry, ok := GetRunner(e)
	if !ok {
		return
	}
	actor := components.Runner.Get(runnerEntry).Actor

	course := GetCourse(e)
	if course == nil {
		return
	}

	// Look up while climbing, freeze the offset otherwise
	if actor.Vel.Y < -config.Camera.LookAheadSpeedThreshold {
		target := -config.Camera.LookAheadDistanceY
		camera.LookAheadY += (target - camera.LookAheadY) * config.Camera.LookAheadSmoothing
	} else if actor.Grounded {
		camera.LookAheadY += (0 - camera.LookAheadY) * config.Camera.LookAheadSmoothing
	}

	targetX := actor.Pos.X
	targetY := actor.Pos.Y + camera.LookAheadY

	// Keep the level filling the screen when it is large enough.
	targetX = clampAxis(targetX, float64(config.C.Width), course.Level.Width)
	targetY = clampAxis(targetY, float64(config.C.Height), course.Level.Height)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}

// updateScreenShake offsets the camera by the active shake, which fades out
// linearly over its frames.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	s := components.ScreenShake.Get(cameraEntry)
	s.Left--
	t := float64(s.Frames - s.Left)
	amp := s.Strength * float64(max(s.Left, 0)) / float64(s.Frames)
	camera.Position.X += amp * math.Sin(t*1.1)
	camera.Position.Y += amp * math.Cos(t*1.3)
	if s.Left <= 0 {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a shake. A weaker shake does not cut a running
// one short.
func TriggerScreenShake(e *ecs.ECS, strength float64, frames int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || frames <= 0 {
		return
	}
	next := components.ScreenShakeData{Strength: strength, Frames: frames, Left: frames}
	if !cameraEntry.HasComponent(components.ScreenShake) {
		cameraEntry.AddComponent(components.ScreenShake)
	} else if components.ScreenShake.Get(cameraEntry).Strength >= strength {
		return
	}
	components.ScreenShake.SetValue(cameraEntry, next)
}

// ShakeOnEvents subscribes the camera to deaths and collapses.
func ShakeOnEvents(e *ecs.ECS) {
	components.SimEvents.Subscribe(e.World, func(w donburi.World, ev components.SimEvent) {
		switch ev.Kind {
		case components.EventRespawned:
			TriggerScreenShake(e, config.ScreenShake.DeathIntensity, config.ScreenShake.DeathDuration)
		case components.EventPlatformCollapsed:
			TriggerScreenShake(e, config.ScreenShake.CollapseIntensity, config.ScreenShake.CollapseDuration)
		}
	})
}

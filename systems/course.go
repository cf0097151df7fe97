package systems

import (
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetCourse returns the course singleton, or nil before it is created.
func GetCourse(e *ecs.ECS) *components.CourseData {
	entry, ok := components.Course.First(e.World)
	if !ok {
		return nil
	}
	return components.Course.Get(entry)
}

// GetRunner returns the runner entry.
func GetRunner(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Runner.First(e.World)
}

// IsFinished reports whether the runner has reached the exit.
func IsFinished(e *ecs.ECS) bool {
	course := GetCourse(e)
	return course == nil || course.Finished
}

// WithFinishCheck wraps a system to skip execution once the course is done
func WithFinishCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsFinished(e) {
			return
		}
		system(e)
	}
}

func publish(e *ecs.ECS, ev components.SimEvent) {
	components.SimEvents.Publish(e.World, ev)
}

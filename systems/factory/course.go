package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/collision"
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/kinematics"
	"github.com/automoto/parkour/persistence"
	"github.com/automoto/parkour/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCourse spawns the course singleton around level. The level is
// mutated in place by the systems; a pristine clone is kept for respawns.
func CreateCourse(ecs *ecs.ECS, level *leveldata.Level, store persistence.Store) *donburi.Entry {
	course := archetypes.Course.Spawn(ecs)

	components.Course.SetValue(course, components.CourseData{
		Level:    level,
		Pristine: level.Clone(),
		World:    collision.NewWorld(level, collision.NewResolver()),
		Model:    kinematics.NewModel(nil),
		Store:    store,
	})

	return course
}

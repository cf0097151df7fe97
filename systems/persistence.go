package systems

import (
	"log"

	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/persistence"
)

// SaveProgress records the active checkpoint and the items picked up so far.
// Storage failures are logged and never interrupt the run.
func SaveProgress(course *components.CourseData, runner *components.RunnerData) {
	if course.Store == nil {
		return
	}
	var collected []int
	for i, item := range course.Level.Collectibles {
		if item.Collected {
			collected = append(collected, i)
		}
	}
	progress := &persistence.SavedProgress{
		Course:     course.Level.CourseID(),
		Checkpoint: course.ActiveCheckpoint,
		Collected:  collected,
		Deaths:     runner.Deaths,
		Score:      runner.Score,
	}
	if err := course.Store.Save(progress); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}

// ClearProgress removes saved progress once the course is finished.
func ClearProgress(course *components.CourseData) error {
	if course.Store == nil {
		return nil
	}
	return course.Store.Clear()
}

// ResumeProgress moves the course to a saved checkpoint when the save
// belongs to this course, marking the saved items as collected. It reports
// whether anything was restored.
func ResumeProgress(course *components.CourseData, runner *components.RunnerData) bool {
	if course.Store == nil {
		return false
	}
	saved, err := course.Store.Load()
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return false
	}
	level := course.Level
	if saved == nil || saved.Course != level.CourseID() {
		return false
	}
	if saved.Checkpoint < 0 || saved.Checkpoint >= len(level.Checkpoints) {
		return false
	}
	for _, idx := range saved.Collected {
		if idx < 0 || idx >= len(level.Collectibles) {
			log.Printf("Warning: Saved progress names collectible %d of %d", idx, len(level.Collectibles))
			return false
		}
	}

	for _, idx := range saved.Collected {
		level.Collectibles[idx].Collected = true
	}
	course.ActiveCheckpoint = saved.Checkpoint
	runner.Deaths = saved.Deaths
	runner.Score = saved.Score
	runner.Actor.Respawn(RespawnPoint(course))
	return true
}

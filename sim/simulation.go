// Package sim assembles the course, the runner and the per-frame systems into
// a donburi world and steps it with caller-supplied intents.
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/kinematics"
	"github.com/automoto/parkour/persistence"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
	"github.com/automoto/parkour/systems"
	"github.com/automoto/parkour/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoLevel = errors.New("sim: no level")

// Simulation owns one run through a level. It is not safe for concurrent use.
type Simulation struct {
	ecs    *ecs.ECS
	course *donburi.Entry
	runner *donburi.Entry

	events []components.SimEvent
}

// New builds a simulation around level, which it mutates in place. store may
// be nil to disable progress saving.
func New(level *leveldata.Level, store persistence.Store) (*Simulation, error) {
	if level == nil {
		return nil, ErrNoLevel
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Frame order matters: integrate, resolve, move hazards, then the checks
	// that read the resolved position, and deaths last.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRunner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFallOut))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollectibles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCheckpoints))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFinishLine))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateStates))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawPlatforms)
	e.AddRenderer(cfg.Default, systems.DrawPickups)
	e.AddRenderer(cfg.Default, systems.DrawRunner)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.HUD, systems.DrawHUD)
	e.AddRenderer(cfg.HUD, systems.DrawPause)

	s := &Simulation{ecs: e}
	s.course = factory.CreateCourse(e, level, store)
	for i, cp := range level.Checkpoints {
		factory.CreateCheckpoint(e, i, cp)
	}
	for i := range level.Collectibles {
		factory.CreateCollectible(e, i)
	}
	factory.CreateFinishLine(e, level.ExitY)
	s.runner = factory.CreateRunner(e, level.SpawnPoint)
	factory.CreateCamera(e, level.SpawnPoint)

	systems.GetOrCreatePause(e)

	components.SimEvents.Subscribe(e.World, s.collect)
	systems.ShakeOnEvents(e)

	return s, nil
}

func (s *Simulation) collect(w donburi.World, ev components.SimEvent) {
	s.events = append(s.events, ev)
}

// Step advances the run by dt seconds, clamped to the configured maximum,
// and returns the events of the frame. A non-positive dt or a paused run
// does nothing.
func (s *Simulation) Step(in kinematics.Intents, dt float64) []components.SimEvent {
	if !(dt > 0) || math.IsInf(dt, 0) || s.Paused() {
		return nil
	}
	course := components.Course.Get(s.course)
	course.Dt = math.Min(dt, cfg.Sim.MaxStep)
	course.Frame++

	components.Runner.Get(s.runner).Intents = in

	s.ecs.Update()
	components.SimEvents.ProcessEvents(s.ecs.World)

	out := s.events
	s.events = nil
	return out
}

// ECS exposes the world for viewer-side systems such as the pause menu.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// SetPaused freezes or resumes stepping.
func (s *Simulation) SetPaused(paused bool) {
	systems.GetOrCreatePause(s.ecs).IsPaused = paused
}

// Paused reports whether stepping is frozen.
func (s *Simulation) Paused() bool {
	return systems.GetOrCreatePause(s.ecs).IsPaused
}

// Draw renders the course through the registered renderers.
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.ecs.Draw(screen)
}

// Resume restores saved progress for this level, reporting whether a
// checkpoint was restored.
func (s *Simulation) Resume() bool {
	return systems.ResumeProgress(components.Course.Get(s.course), components.Runner.Get(s.runner))
}

// Reset puts the run back to its initial state: platforms and collectibles
// are restored, the runner returns to the spawn and stats are cleared.
func (s *Simulation) Reset() {
	course := components.Course.Get(s.course)
	level := course.Level

	level.RestorePlatforms(course.Pristine)
	copy(level.Collectibles, course.Pristine.Collectibles)
	course.World.Sync()
	course.SimTime = 0
	course.Frame = 0
	course.ActiveCheckpoint = 0
	course.Finished = false

	components.Checkpoint.Each(s.ecs.World, func(entry *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(entry)
		checkpoint.Activated = checkpoint.Index == 0
	})
	components.FinishLine.Each(s.ecs.World, func(entry *donburi.Entry) {
		components.FinishLine.Get(entry).Activated = false
	})

	runner := components.Runner.Get(s.runner)
	runner.Actor.Respawn(level.SpawnPoint)
	runner.Intents = kinematics.Intents{}
	runner.LastJump = kinematics.JumpNone
	runner.Score = 0
	runner.Deaths = 0
	if s.runner.HasComponent(components.Death) {
		s.runner.RemoveComponent(components.Death)
	}
	s.events = nil
}

// Finished reports whether the runner reached the exit.
func (s *Simulation) Finished() bool {
	return components.Course.Get(s.course).Finished
}

// Level returns the live level.
func (s *Simulation) Level() *leveldata.Level {
	return components.Course.Get(s.course).Level
}

// Snapshot is a read-only copy of the run for renderers and tests.
type Snapshot struct {
	Actor        kinematics.Actor
	LastJump     kinematics.JumpKind
	State        components.StateID
	Platforms    []leveldata.Platform
	Collectibles []leveldata.Collectible
	Checkpoints  []leveldata.Checkpoint

	ActiveCheckpoint int
	Finished         bool
	Score            int
	Deaths           int
	SimTime          float64
	Frame            int
	Camera           gamemath.Vec
}

// Snapshot copies the current state. Nothing in it aliases the simulation.
func (s *Simulation) Snapshot() Snapshot {
	course := components.Course.Get(s.course)
	runner := components.Runner.Get(s.runner)
	level := course.Level.Clone()

	snap := Snapshot{
		Actor:            *runner.Actor,
		LastJump:         runner.LastJump,
		State:            components.State.Get(s.runner).CurrentState,
		Platforms:        level.Platforms,
		Collectibles:     level.Collectibles,
		Checkpoints:      level.Checkpoints,
		ActiveCheckpoint: course.ActiveCheckpoint,
		Finished:         course.Finished,
		Score:            runner.Score,
		Deaths:           runner.Deaths,
		SimTime:          course.SimTime,
		Frame:            course.Frame,
	}
	if entry, ok := components.Camera.First(s.ecs.World); ok {
		pos := components.Camera.Get(entry).Position
		snap.Camera = gamemath.Vec{X: pos.X, Y: pos.Y}
	}
	return snap
}

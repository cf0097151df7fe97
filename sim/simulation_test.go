package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/kinematics"
	"github.com/automoto/parkour/levelgen"
	"github.com/automoto/parkour/persistence"
	"github.com/automoto/parkour/shared/gamemath"
	"github.com/automoto/parkour/shared/leveldata"
)

const dt = 1.0 / 60.0

var (
	idle  = kinematics.Intents{}
	right = kinematics.Intents{MoveDirection: 1}
)

func vec(x, y float64) gamemath.Vec { return gamemath.Vec{X: x, Y: y} }

// floorLevel is an 800x600 course with a full-width floor whose top is at
// y=580. A standing actor is centered at y=564.
func floorLevel() *leveldata.Level {
	return &leveldata.Level{
		Width:  800,
		Height: 600,
		Platforms: []leveldata.Platform{
			{Pos: vec(400, 590), Half: vec(400, 10)},
		},
		Path:        []int{0},
		Checkpoints: []leveldata.Checkpoint{{Pos: vec(100, 564), Platform: 0}},
		SpawnPoint:  vec(100, 564),
		ExitY:       -1000,
		Seed:        3,
		Difficulty:  2,
	}
}

func newSim(t *testing.T, level *leveldata.Level, store persistence.Store) *Simulation {
	t.Helper()
	s, err := New(level, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// run steps until an event of kind shows up or frames run out.
func run(s *Simulation, in kinematics.Intents, frames int, kind components.EventKind) (components.SimEvent, []components.SimEvent, bool) {
	var all []components.SimEvent
	for i := 0; i < frames; i++ {
		for _, ev := range s.Step(in, dt) {
			all = append(all, ev)
			if ev.Kind == kind {
				return ev, all, true
			}
		}
	}
	return components.SimEvent{}, all, false
}

func count(evs []components.SimEvent, kind components.EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewRejectsBadLevels(t *testing.T) {
	if _, err := New(nil, nil); !errors.Is(err, ErrNoLevel) {
		t.Fatalf("nil level: err = %v", err)
	}
	level := floorLevel()
	level.Width = 0
	if _, err := New(level, nil); !errors.Is(err, leveldata.ErrInvalidLevel) {
		t.Fatalf("zero width: err = %v", err)
	}
}

func TestLandingEvent(t *testing.T) {
	level := floorLevel()
	level.SpawnPoint = vec(100, 500)
	s := newSim(t, level, nil)

	ev, _, ok := run(s, idle, 120, components.EventLanded)
	if !ok {
		t.Fatalf("runner never landed")
	}
	if ev.Index != 0 {
		t.Fatalf("landed on platform %d, want 0", ev.Index)
	}
	snap := s.Snapshot()
	if !snap.Actor.Grounded || snap.Actor.Pos.Y != 564 {
		t.Fatalf("actor after landing: grounded=%v y=%g", snap.Actor.Grounded, snap.Actor.Pos.Y)
	}
}

func TestStepClampsDt(t *testing.T) {
	level := floorLevel()
	level.SpawnPoint = vec(100, 100)
	s := newSim(t, level, nil)

	if evs := s.Step(idle, 0); evs != nil || s.Snapshot().Frame != 0 {
		t.Fatalf("zero dt should not step")
	}
	if evs := s.Step(idle, math.NaN()); evs != nil || s.Snapshot().Frame != 0 {
		t.Fatalf("NaN dt should not step")
	}

	s.Step(idle, 1.0)
	snap := s.Snapshot()
	want := cfg.Physics.Gravity * cfg.Sim.MaxStep
	if math.Abs(snap.Actor.Vel.Y-want) > 1e-9 {
		t.Fatalf("vel.y = %g, want %g", snap.Actor.Vel.Y, want)
	}
	if math.Abs(snap.SimTime-cfg.Sim.MaxStep) > 1e-12 || snap.Frame != 1 {
		t.Fatalf("sim time %g frame %d", snap.SimTime, snap.Frame)
	}
}

func TestCollectOnce(t *testing.T) {
	level := floorLevel()
	level.Collectibles = []leveldata.Collectible{{Pos: vec(200, 564), Kind: leveldata.Coin, Value: 10}}
	s := newSim(t, level, nil)

	ev, _, ok := run(s, right, 300, components.EventCollected)
	if !ok {
		t.Fatalf("collectible never picked up")
	}
	if ev.Index != 0 || ev.Value != 10 {
		t.Fatalf("event = %+v", ev)
	}

	_, rest, _ := run(s, right, 60, components.EventKind(-1))
	if n := count(rest, components.EventCollected); n != 0 {
		t.Fatalf("collected %d more times", n)
	}
	snap := s.Snapshot()
	if snap.Score != 10 || !snap.Collectibles[0].Collected {
		t.Fatalf("score %d collected %v", snap.Score, snap.Collectibles[0].Collected)
	}
}

func TestFallOutRespawnsAtCheckpoint(t *testing.T) {
	level := floorLevel()
	level.Platforms[0] = leveldata.Platform{Pos: vec(100, 590), Half: vec(50, 10)}
	s := newSim(t, level, nil)

	ev, evs, ok := run(s, right, 600, components.EventRespawned)
	if !ok {
		t.Fatalf("runner never respawned")
	}
	if count(evs, components.EventFellOut) != 1 {
		t.Fatalf("expected one fall-out before the respawn")
	}
	if ev.Index != 0 || ev.Pos != vec(100, 564) {
		t.Fatalf("respawn event = %+v", ev)
	}
	snap := s.Snapshot()
	if snap.Deaths != 1 || snap.Actor.Pos != vec(100, 564) || snap.Actor.Vel != (gamemath.Vec{}) {
		t.Fatalf("after respawn: deaths=%d pos=%+v vel=%+v", snap.Deaths, snap.Actor.Pos, snap.Actor.Vel)
	}
}

func TestSpikeKills(t *testing.T) {
	level := floorLevel()
	level.Platforms = append(level.Platforms, leveldata.Platform{Pos: vec(400, 560), Half: vec(20, 10), Type: leveldata.Spike})
	level.SpawnPoint = vec(400, 400)
	s := newSim(t, level, nil)

	ev, evs, ok := run(s, idle, 120, components.EventRespawned)
	if !ok {
		t.Fatalf("spike contact never killed the runner")
	}
	if count(evs, components.EventLethalContact) != 1 {
		t.Fatalf("expected a lethal contact, got %v", evs)
	}
	if ev.Pos != level.Checkpoints[0].Pos {
		t.Fatalf("respawned at %+v", ev.Pos)
	}
}

func TestCheckpointSavesAndRespawns(t *testing.T) {
	level := floorLevel()
	level.Checkpoints = append(level.Checkpoints, leveldata.Checkpoint{Pos: vec(300, 564), Platform: 0})
	level.Platforms = append(level.Platforms, leveldata.Platform{Pos: vec(500, 570), Half: vec(8, 10), Type: leveldata.Spike})
	store := &persistence.MemoryStore{}
	s := newSim(t, level, store)

	ev, _, ok := run(s, right, 600, components.EventCheckpointReached)
	if !ok {
		t.Fatalf("checkpoint never reached")
	}
	if ev.Index != 1 {
		t.Fatalf("reached checkpoint %d", ev.Index)
	}

	saved, err := store.Load()
	if err != nil || saved == nil {
		t.Fatalf("progress not saved: %v", err)
	}
	if saved.Checkpoint != 1 || saved.Course != "gen:3:2" || len(saved.Collected) != 0 {
		t.Fatalf("saved = %+v", saved)
	}

	ev, _, ok = run(s, right, 600, components.EventRespawned)
	if !ok {
		t.Fatalf("runner never hit the spike")
	}
	if ev.Index != 1 || ev.Pos != vec(300, 564) {
		t.Fatalf("respawn event = %+v", ev)
	}
	if store.Saves != 1 {
		t.Fatalf("Saves = %d, want 1", store.Saves)
	}
}

func TestCrumbleRestoredOnRespawn(t *testing.T) {
	level := floorLevel()
	level.Platforms[0] = leveldata.Platform{Pos: vec(100, 590), Half: vec(50, 10), Type: leveldata.Crumbling}
	s := newSim(t, level, nil)

	_, evs, ok := run(s, idle, 600, components.EventRespawned)
	if !ok {
		t.Fatalf("runner never respawned")
	}
	if count(evs, components.EventPlatformCollapsed) != 1 || count(evs, components.EventFellOut) != 1 {
		t.Fatalf("events = %v", evs)
	}

	snap := s.Snapshot()
	if snap.Platforms[0].Crumble.Phase != leveldata.Intact {
		t.Fatalf("platform not restored: %+v", snap.Platforms[0].Crumble)
	}

	// The restored platform carries the runner again.
	if _, _, ok := run(s, idle, 60, components.EventLanded); !ok {
		t.Fatalf("runner fell through the restored platform")
	}
}

func TestReachingExitFinishes(t *testing.T) {
	level := floorLevel()
	level.ExitY = 514
	store := &persistence.MemoryStore{}
	if err := store.Save(&persistence.SavedProgress{Course: "gen:3:2", Checkpoint: 0}); err != nil {
		t.Fatal(err)
	}
	s := newSim(t, level, store)

	s.Step(idle, dt)
	if !s.Snapshot().Actor.Grounded {
		t.Fatalf("runner should start on the floor")
	}
	s.Step(kinematics.Intents{JumpRequested: true}, dt)

	if _, _, ok := run(s, idle, 120, components.EventLevelCompleted); !ok {
		t.Fatalf("jump never crossed the exit")
	}
	if !s.Finished() {
		t.Fatalf("Finished() = false")
	}
	if saved, _ := store.Load(); saved != nil {
		t.Fatalf("progress not cleared: %+v", saved)
	}

	before := s.Snapshot().Actor.Pos
	if evs := s.Step(right, dt); len(evs) != 0 {
		t.Fatalf("finished run still emits %v", evs)
	}
	if s.Snapshot().Actor.Pos != before {
		t.Fatalf("finished run still moves the runner")
	}
}

func TestJumpConsumedOncePerStep(t *testing.T) {
	s := newSim(t, floorLevel(), nil)
	s.Step(idle, dt)

	jump := kinematics.Intents{JumpRequested: true}
	s.Step(jump, dt)
	if got := s.Snapshot().LastJump; got != kinematics.JumpGround {
		t.Fatalf("first jump = %v", got)
	}
	s.Step(idle, dt)
	if got := s.Snapshot().LastJump; got != kinematics.JumpNone {
		t.Fatalf("idle step jumped: %v", got)
	}
	s.Step(jump, dt)
	if got := s.Snapshot().LastJump; got != kinematics.JumpAir {
		t.Fatalf("second press = %v, want air jump", got)
	}
}

func TestResume(t *testing.T) {
	cases := []struct {
		name  string
		saved persistence.SavedProgress
		want  bool
	}{
		{"matching", persistence.SavedProgress{Course: "gen:3:2", Checkpoint: 1, Deaths: 4, Score: 20}, true},
		{"other_seed", persistence.SavedProgress{Course: "gen:4:2", Checkpoint: 1}, false},
		{"authored_course", persistence.SavedProgress{Course: "tmx:levels/a.tmx", Checkpoint: 1}, false},
		{"bad_checkpoint", persistence.SavedProgress{Course: "gen:3:2", Checkpoint: 7}, false},
		{"bad_collectible", persistence.SavedProgress{Course: "gen:3:2", Checkpoint: 1, Collected: []int{4}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			level := floorLevel()
			level.Checkpoints = append(level.Checkpoints, leveldata.Checkpoint{Pos: vec(300, 564), Platform: 0})
			store := &persistence.MemoryStore{}
			if err := store.Save(&tc.saved); err != nil {
				t.Fatal(err)
			}
			s := newSim(t, level, store)

			if got := s.Resume(); got != tc.want {
				t.Fatalf("Resume() = %v", got)
			}
			snap := s.Snapshot()
			if !tc.want {
				if snap.ActiveCheckpoint != 0 || snap.Actor.Pos != level.SpawnPoint {
					t.Fatalf("rejected save still moved the run")
				}
				return
			}
			if snap.ActiveCheckpoint != 1 || snap.Actor.Pos != vec(300, 564) || snap.Deaths != 4 || snap.Score != 20 {
				t.Fatalf("resumed snapshot = %+v", snap)
			}
		})
	}
}

func TestResumeKeepsCollectedItems(t *testing.T) {
	coinLevel := func() *leveldata.Level {
		level := floorLevel()
		level.Checkpoints = append(level.Checkpoints, leveldata.Checkpoint{Pos: vec(300, 564), Platform: 0})
		level.Collectibles = []leveldata.Collectible{{Pos: vec(200, 564), Kind: leveldata.Coin, Value: 10}}
		return level
	}
	store := &persistence.MemoryStore{}

	first := newSim(t, coinLevel(), store)
	_, evs, ok := run(first, right, 600, components.EventCheckpointReached)
	if !ok || count(evs, components.EventCollected) != 1 {
		t.Fatalf("first run: checkpoint=%v events=%v", ok, evs)
	}
	saved, _ := store.Load()
	if saved == nil || saved.Score != 10 || len(saved.Collected) != 1 || saved.Collected[0] != 0 {
		t.Fatalf("saved = %+v", saved)
	}

	second := newSim(t, coinLevel(), store)
	if !second.Resume() {
		t.Fatalf("Resume() = false")
	}
	if snap := second.Snapshot(); !snap.Collectibles[0].Collected || snap.Score != 10 {
		t.Fatalf("resumed score %d collected %v", snap.Score, snap.Collectibles[0].Collected)
	}

	// Walk back over the coin.
	_, evs, _ = run(second, kinematics.Intents{MoveDirection: -1}, 75, components.EventKind(-1))
	if n := count(evs, components.EventCollected); n != 0 {
		t.Fatalf("coin collected %d more times", n)
	}
	if got := second.Snapshot().Score; got != 10 {
		t.Fatalf("score = %d, want 10", got)
	}
}

func TestResumeIgnoresOtherAuthoredCourse(t *testing.T) {
	store := &persistence.MemoryStore{}
	level := floorLevel()
	level.Name = "levels/a.tmx"
	level.Checkpoints = append(level.Checkpoints, leveldata.Checkpoint{Pos: vec(300, 564), Platform: 0})
	s := newSim(t, level, store)
	if _, _, ok := run(s, right, 600, components.EventCheckpointReached); !ok {
		t.Fatalf("checkpoint never reached")
	}

	other := floorLevel()
	other.Name = "levels/b.tmx"
	other.Checkpoints = append(other.Checkpoints, leveldata.Checkpoint{Pos: vec(300, 564), Platform: 0})
	if newSim(t, other, store).Resume() {
		t.Fatalf("b.tmx resumed a save from a.tmx")
	}
	again := floorLevel()
	again.Name = "levels/a.tmx"
	again.Checkpoints = append(again.Checkpoints, leveldata.Checkpoint{Pos: vec(300, 564), Platform: 0})
	if !newSim(t, again, store).Resume() {
		t.Fatalf("a.tmx did not resume its own save")
	}
}

func TestResetRestoresRun(t *testing.T) {
	level := floorLevel()
	level.Collectibles = []leveldata.Collectible{{Pos: vec(200, 564), Value: 10}}
	s := newSim(t, level, nil)

	if _, _, ok := run(s, right, 300, components.EventCollected); !ok {
		t.Fatalf("collectible never picked up")
	}
	s.Reset()

	snap := s.Snapshot()
	if snap.Score != 0 || snap.Collectibles[0].Collected || snap.Actor.Pos != level.SpawnPoint || snap.Frame != 0 {
		t.Fatalf("after reset: %+v", snap)
	}
	if _, _, ok := run(s, right, 300, components.EventCollected); !ok {
		t.Fatalf("collectible not available after reset")
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	s := newSim(t, floorLevel(), nil)
	snap := s.Snapshot()
	snap.Platforms[0].Pos = vec(0, 0)
	snap.Actor.Pos = vec(0, 0)

	again := s.Snapshot()
	if again.Platforms[0].Pos != vec(400, 590) || again.Actor.Pos != vec(100, 564) {
		t.Fatalf("snapshot aliases the simulation")
	}
}

func TestGeneratedLevelIdles(t *testing.T) {
	level, err := levelgen.New(nil).Build(7, 5)
	if err != nil {
		t.Fatal(err)
	}
	s := newSim(t, level, nil)

	_, evs, _ := run(s, idle, 600, components.EventKind(-1))
	for _, kind := range []components.EventKind{components.EventFellOut, components.EventLethalContact, components.EventRespawned} {
		if n := count(evs, kind); n != 0 {
			t.Fatalf("idle runner on the start platform saw %d %v events", n, kind)
		}
	}
	if s.Snapshot().Actor.Pos.X != level.SpawnPoint.X {
		t.Fatalf("idle runner drifted")
	}
}

func TestRunnerStates(t *testing.T) {
	s := newSim(t, floorLevel(), nil)

	s.Step(idle, dt)
	if got := s.Snapshot().State; got != components.StateIdle {
		t.Fatalf("standing state = %v", got)
	}
	s.Step(right, dt)
	if got := s.Snapshot().State; got != components.StateRunning {
		t.Fatalf("moving state = %v", got)
	}
	s.Step(kinematics.Intents{JumpRequested: true}, dt)
	if got := s.Snapshot().State; got != components.StateJumping {
		t.Fatalf("rising state = %v", got)
	}
	for i := 0; i < 40; i++ {
		s.Step(idle, dt)
	}
	if got := s.Snapshot().State; got != components.StateFalling {
		t.Fatalf("state after the apex = %v", got)
	}
}

func TestPausedStepDoesNothing(t *testing.T) {
	level := floorLevel()
	level.SpawnPoint = vec(100, 300)
	s := newSim(t, level, nil)

	s.SetPaused(true)
	if evs := s.Step(right, dt); evs != nil {
		t.Fatalf("paused step emitted %v", evs)
	}
	snap := s.Snapshot()
	if snap.Frame != 0 || snap.Actor.Pos != vec(100, 300) {
		t.Fatalf("paused step moved the run: %+v", snap)
	}

	s.SetPaused(false)
	s.Step(right, dt)
	if s.Snapshot().Frame != 1 {
		t.Fatalf("unpaused step did not run")
	}
}

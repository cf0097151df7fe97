package scenes

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/levelgen"
	"github.com/automoto/parkour/persistence"
	"github.com/automoto/parkour/shared/leveldata"
	"github.com/automoto/parkour/sim"
	"github.com/automoto/parkour/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options selects what the viewer plays.
type Options struct {
	Seed       int64
	Difficulty int
	LevelFile  string // TMX course; empty means generate from Seed and Difficulty
	TuningDir  string // watched for tuning YAML; empty disables hot reload
	Resume     bool
	Store      persistence.Store
}

// ParkourScene plays one course at a time and moves on to the next seed
// when asked after finishing.
type ParkourScene struct {
	sceneChanger SceneChanger
	opts         Options

	sim     *sim.Simulation
	input   components.InputData
	watcher *cfg.Watcher
	err     error
	once    sync.Once
}

func NewParkourScene(sc SceneChanger, opts Options) *ParkourScene {
	return &ParkourScene{sceneChanger: sc, opts: opts}
}

func (ps *ParkourScene) Update() {
	ps.once.Do(ps.configure)
	ps.reloadTuning()

	systems.PollInput(&ps.input)

	if systems.GetAction(&ps.input, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowBroadPhase = !cfg.Debug.ShowBroadPhase
	}
	if ps.sim == nil {
		return
	}

	switch systems.UpdatePause(ps.sim.ECS(), &ps.input) {
	case components.MenuRestart:
		ps.sim.Reset()
		return
	case components.MenuExit:
		_ = ps.Close()
		os.Exit(0)
	}
	if ps.sim.Paused() {
		return
	}

	if systems.GetAction(&ps.input, cfg.ActionRetry).JustPressed {
		ps.sim.Reset()
		return
	}
	if ps.sim.Finished() {
		if systems.GetAction(&ps.input, cfg.ActionNextCourse).JustPressed {
			ps.next()
		}
		return
	}

	ps.sim.Step(systems.IntentsFromInput(&ps.input), 1/float64(ebiten.TPS()))
}

func (ps *ParkourScene) Draw(screen *ebiten.Image) {
	if ps.sim == nil {
		screen.Fill(cfg.Sky)
		if ps.err != nil {
			drawError(screen, ps.err)
		}
		return
	}
	ps.sim.Draw(screen)
}

func (ps *ParkourScene) configure() {
	if ps.opts.TuningDir != "" {
		w, err := cfg.NewWatcher(ps.opts.TuningDir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", ps.opts.TuningDir, err)
		} else {
			ps.watcher = w
		}
	}

	ps.load()
	if ps.sim != nil && ps.opts.Resume && ps.sim.Resume() {
		log.Printf("Resumed %s at a saved checkpoint", ps.sim.Level().CourseID())
	}
}

// load builds the course for the current options.
func (ps *ParkourScene) load() {
	level, err := LoadCourse(ps.opts)
	if err != nil {
		log.Printf("Warning: Could not build course: %v", err)
		ps.err = err
		ps.sim = nil
		return
	}
	s, err := sim.New(level, ps.opts.Store)
	if err != nil {
		log.Printf("Warning: Could not start course: %v", err)
		ps.err = err
		ps.sim = nil
		return
	}
	ps.sim, ps.err = s, nil
}

// next hands over to a scene for the following seed, one difficulty step
// harder. TMX courses just restart.
func (ps *ParkourScene) next() {
	if ps.opts.LevelFile != "" {
		ps.sim.Reset()
		return
	}
	opts := ps.opts
	opts.Seed++
	opts.Difficulty = min(opts.Difficulty+1, levelgen.MaxDifficulty)
	opts.Resume = false
	if err := ps.Close(); err != nil {
		log.Printf("Warning: Could not stop tuning watcher: %v", err)
	}
	ps.sceneChanger.ChangeScene(NewParkourScene(ps.sceneChanger, opts))
}

// reloadTuning applies changed tuning files. The course is rebuilt because
// its reachability was checked against the previous physics.
func (ps *ParkourScene) reloadTuning() {
	if ps.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-ps.watcher.Events:
			if !ok {
				ps.watcher = nil
				return
			}
			tuning, err := cfg.LoadTuningFile(path)
			if err != nil {
				log.Printf("Warning: Ignoring %s: %v", filepath.Base(path), err)
				continue
			}
			tuning.Apply()
			log.Printf("Reloaded tuning from %s", filepath.Base(path))
			ps.load()
		case err, ok := <-ps.watcher.Errors:
			if !ok {
				ps.watcher = nil
				return
			}
			log.Printf("Warning: Tuning watcher: %v", err)
		default:
			return
		}
	}
}

// Close stops the tuning watcher.
func (ps *ParkourScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}

// LoadCourse returns the TMX course named by opts, or a generated one.
func LoadCourse(opts Options) (*leveldata.Level, error) {
	if opts.LevelFile != "" {
		dir, name := filepath.Split(opts.LevelFile)
		if dir == "" {
			dir = "."
		}
		level, err := leveldata.LoadLevel(os.DirFS(dir), name)
		if err != nil {
			return nil, fmt.Errorf("load course %s: %w", opts.LevelFile, err)
		}
		level.Name = filepath.Clean(opts.LevelFile)
		return level, nil
	}
	level, err := levelgen.New(nil).Build(opts.Seed, opts.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("generate course: %w", err)
	}
	return level, nil
}

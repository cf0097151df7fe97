package scenes

import (
	"testing"
	"time"

	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/levelgen"
)

func TestLoadCourseGenerates(t *testing.T) {
	level, err := LoadCourse(Options{Seed: 11, Difficulty: 3})
	if err != nil {
		t.Fatal(err)
	}
	if level.Seed != 11 || level.Difficulty != 3 || len(level.Path) < 2 {
		t.Fatalf("level seed=%d difficulty=%d path=%d", level.Seed, level.Difficulty, len(level.Path))
	}

	again, err := levelgen.New(nil).Build(11, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Platforms) != len(level.Platforms) {
		t.Fatalf("same seed built a different course")
	}
}

func TestLoadCourseMissingFile(t *testing.T) {
	if _, err := LoadCourse(Options{LevelFile: "testdata/missing.tmx"}); err == nil {
		t.Fatalf("expected an error for a missing course file")
	}
}

func TestLoadCourseFromTMX(t *testing.T) {
	level, err := LoadCourse(Options{LevelFile: "../shared/leveldata/testdata/levels/tower.tmx", Seed: 99})
	if err != nil {
		t.Fatal(err)
	}
	if level.Width != 640 || level.Height != 1280 {
		t.Fatalf("size %gx%g", level.Width, level.Height)
	}
	if err := level.Validate(); err != nil {
		t.Fatal(err)
	}
}

type changer struct{ scene interface{} }

func (c *changer) ChangeScene(scene interface{}) { c.scene = scene }

func TestNextHandsOverHarderCourse(t *testing.T) {
	cases := []struct {
		name       string
		difficulty int
		want       int
	}{
		{"steps_up", 3, 4},
		{"capped", levelgen.MaxDifficulty, levelgen.MaxDifficulty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &changer{}
			ps := NewParkourScene(c, Options{Seed: 4, Difficulty: tc.difficulty, Resume: true})
			ps.next()

			got, ok := c.scene.(*ParkourScene)
			if !ok {
				t.Fatalf("scene = %T", c.scene)
			}
			if got.opts.Seed != 5 || got.opts.Difficulty != tc.want || got.opts.Resume {
				t.Fatalf("next opts = %+v", got.opts)
			}
			if ps.opts.Seed != 4 {
				t.Fatalf("previous scene options changed")
			}
		})
	}
}

func TestReloadTuningDropsClosedWatcher(t *testing.T) {
	cases := []struct {
		name         string
		closeEvents  bool
		closeErrors  bool
		wantReleased bool
	}{
		{"errors_closed", false, true, true},
		{"events_closed", true, false, true},
		{"both_closed", true, true, true},
		{"idle", false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := &cfg.Watcher{Events: make(chan string), Errors: make(chan error)}
			if tc.closeEvents {
				close(w.Events)
			}
			if tc.closeErrors {
				close(w.Errors)
			}
			ps := &ParkourScene{watcher: w}

			done := make(chan struct{})
			go func() {
				ps.reloadTuning()
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatalf("reloadTuning never returned")
			}
			if released := ps.watcher == nil; released != tc.wantReleased {
				t.Fatalf("watcher released = %v, want %v", released, tc.wantReleased)
			}

			// A second frame is a no-op once the watcher is gone.
			ps.reloadTuning()
		})
	}
}

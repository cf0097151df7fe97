package main

import (
	"flag"
	"image"
	"log"
	"path/filepath"
	"time"

	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/fonts"
	"github.com/automoto/parkour/persistence"
	"github.com/automoto/parkour/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewParkourScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "generator seed")
	difficulty := flag.Int("difficulty", 1, "course difficulty (1-10)")
	tmx := flag.String("tmx", "", "play a Tiled course instead of generating one")
	tuning := flag.String("tuning", "", "tuning YAML file applied at start; its directory is watched for changes")
	resume := flag.Bool("resume", false, "continue from saved progress when it matches the course")
	debug := flag.Bool("debug", false, "outline platforms and jump envelopes")
	flag.Parse()

	config.Debug.ShowBroadPhase = *debug

	opts := scenes.Options{
		Seed:       *seed,
		Difficulty: *difficulty,
		LevelFile:  *tmx,
		Resume:     *resume,
	}

	if *tuning != "" {
		t, err := config.LoadTuningFile(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
		opts.TuningDir = filepath.Dir(*tuning)
	}

	store, err := persistence.OpenGData("parkour")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		opts.Store = &persistence.MemoryStore{}
	} else {
		opts.Store = store
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("parkour")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}

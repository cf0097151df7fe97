package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/parkour/config"
	"github.com/automoto/parkour/levelgen"
	"github.com/automoto/parkour/shared/leveldata"
	"gopkg.in/yaml.v3"
)

func main() {
	seed := flag.Int64("seed", 1, "first generator seed")
	count := flag.Int("count", 1, "number of consecutive seeds to generate")
	difficulty := flag.Int("difficulty", 1, "course difficulty (1-10)")
	all := flag.Bool("all", false, "generate every difficulty for each seed")
	tuning := flag.String("tuning", "", "tuning YAML applied before generating")
	tmx := flag.String("tmx", "", "verify a Tiled course instead of generating")
	dump := flag.Bool("dump", false, "write each level as YAML to stdout")
	flag.Parse()

	if *tuning != "" {
		t, err := config.LoadTuningFile(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	gen := levelgen.New(nil)

	if *tmx != "" {
		dir, name := filepath.Split(*tmx)
		if dir == "" {
			dir = "."
		}
		level, err := leveldata.LoadLevel(os.DirFS(dir), name)
		if err != nil {
			log.Fatalf("Failed to load course: %v", err)
		}
		if err := gen.Verify(level); err != nil {
			log.Fatalf("%s: %v", *tmx, err)
		}
		report(level)
		if *dump {
			write(level)
		}
		return
	}

	difficulties := []int{*difficulty}
	if *all {
		difficulties = difficulties[:0]
		for d := levelgen.MinDifficulty; d <= levelgen.MaxDifficulty; d++ {
			difficulties = append(difficulties, d)
		}
	}

	failed := 0
	for s := *seed; s < *seed+int64(*count); s++ {
		for _, d := range difficulties {
			level, err := gen.Build(s, d)
			if err == nil {
				err = gen.Verify(level)
			}
			if err != nil {
				log.Printf("seed %d difficulty %d: %v", s, d, err)
				failed++
				continue
			}
			report(level)
			if *dump {
				write(level)
			}
		}
	}
	if failed > 0 {
		log.Fatalf("%d level(s) failed", failed)
	}
}

func report(l *leveldata.Level) {
	counts := map[leveldata.PlatformType]int{}
	for _, p := range l.Platforms {
		counts[p.Type]++
	}
	log.Printf("seed %d difficulty %d: %gx%g, %d platforms (%d moving, %d crumbling, %d bouncy, %d spikes), path %d, checkpoints %d, collectibles %d",
		l.Seed, l.Difficulty, l.Width, l.Height, len(l.Platforms),
		counts[leveldata.Moving], counts[leveldata.Crumbling], counts[leveldata.Bouncy], counts[leveldata.Spike],
		len(l.Path), len(l.Checkpoints), len(l.Collectibles))
}

func write(l *leveldata.Level) {
	out, err := yaml.Marshal(l)
	if err != nil {
		log.Fatalf("Failed to encode level: %v", err)
	}
	fmt.Printf("---\n%s", out)
}

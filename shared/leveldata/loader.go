package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/parkour/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names recognized in hand-authored TMX courses.
const (
	groupPlatforms    = "Platforms"
	groupSpawn        = "Spawn"
	groupCheckpoints  = "Checkpoints"
	groupCollectibles = "Collectibles"
	groupExit         = "Exit"
)

// LoadLevel parses a TMX course. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   tmxPath,
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
		ExitY:  0,
	}

	var checkpoints []gamemath.Vec
	spawnSet := false

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				p, err := platformFromObject(o)
				if err != nil {
					return nil, fmt.Errorf("%s object %d: %w", tmxPath, o.ID, err)
				}
				level.Platforms = append(level.Platforms, p)
			}
		case groupSpawn:
			if len(og.Objects) > 0 {
				level.SpawnPoint = gamemath.Vec{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawnSet = true
			}
		case groupCheckpoints:
			for _, o := range og.Objects {
				checkpoints = append(checkpoints, gamemath.Vec{X: o.X, Y: o.Y})
			}
		case groupCollectibles:
			for _, o := range og.Objects {
				kind := Coin
				if o.Properties.GetString("kind") == Gem.String() {
					kind = Gem
				}
				level.Collectibles = append(level.Collectibles, Collectible{
					Pos:   gamemath.Vec{X: o.X, Y: o.Y},
					Kind:  kind,
					Value: o.Properties.GetInt("value"),
				})
			}
		case groupExit:
			if len(og.Objects) > 0 {
				level.ExitY = og.Objects[0].Y
			}
		}
	}

	if !spawnSet {
		return nil, fmt.Errorf("%s: %w: no spawn point", tmxPath, ErrInvalidLevel)
	}

	// Checkpoints sorted bottom to top, the order a climb reaches them
	sort.Slice(checkpoints, func(i, j int) bool {
		return checkpoints[i].Y > checkpoints[j].Y
	})
	for _, pos := range checkpoints {
		level.Checkpoints = append(level.Checkpoints, Checkpoint{
			Pos:      pos,
			Platform: platformBelow(level.Platforms, pos),
		})
	}

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return level, nil
}

func platformFromObject(o *tiled.Object) (Platform, error) {
	kind := o.Properties.GetString("type")
	if kind == "" {
		kind = o.Class
	}
	pt, ok := ParsePlatformType(strings.ToLower(kind))
	if kind != "" && !ok {
		return Platform{}, fmt.Errorf("unknown platform type %q", kind)
	}

	half := gamemath.Vec{X: o.Width / 2, Y: o.Height / 2}
	p := Platform{
		Pos:         gamemath.Vec{X: o.X + half.X, Y: o.Y + half.Y},
		Half:        half,
		Type:        pt,
		BounceForce: o.Properties.GetFloat("bounceForce"),
	}

	if pt == Moving {
		pattern, ok := ParsePattern(o.Properties.GetString("pattern"))
		if !ok || pattern == PatternNone {
			return Platform{}, fmt.Errorf("moving platform needs a pattern")
		}
		p.Pattern = pattern
		p.PatternData = PatternData{
			Center: p.Pos,
			Radius: o.Properties.GetFloat("radius"),
			Speed:  o.Properties.GetFloat("speed"),
		}
	}
	return p, nil
}

// platformBelow returns the index of the closest platform whose top lies at or
// below pos and whose x-range contains it, or -1.
func platformBelow(platforms []Platform, pos gamemath.Vec) int {
	best := -1
	bestGap := 0.0
	for i := range platforms {
		p := &platforms[i]
		if p.Lethal() || pos.X < p.Pos.X-p.Half.X || pos.X > p.Pos.X+p.Half.X {
			continue
		}
		gap := p.Top() - pos.Y
		if gap < 0 {
			continue
		}
		if best < 0 || gap < bestGap {
			best, bestGap = i, gap
		}
	}
	return best
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = level
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

package leveldata

import (
	"errors"
	"fmt"
)

var ErrInvalidLevel = errors.New("invalid level")

// Validate checks the preconditions the simulation assumes but never checks
// per frame. Meant for load time and debug builds.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: non-positive size %gx%g", ErrInvalidLevel, l.Width, l.Height)
	}
	if !l.SpawnPoint.IsFinite() {
		return fmt.Errorf("%w: spawn point %v", ErrInvalidLevel, l.SpawnPoint)
	}
	for i, p := range l.Platforms {
		if !p.Pos.IsFinite() || !p.Half.IsFinite() {
			return fmt.Errorf("%w: platform %d has non-finite geometry", ErrInvalidLevel, i)
		}
		if p.Half.X <= 0 || p.Half.Y <= 0 {
			return fmt.Errorf("%w: platform %d has non-positive extents", ErrInvalidLevel, i)
		}
		if p.Type == Moving && p.Pattern == PatternNone {
			return fmt.Errorf("%w: moving platform %d has no pattern", ErrInvalidLevel, i)
		}
	}
	for _, idx := range l.Path {
		if idx < 0 || idx >= len(l.Platforms) {
			return fmt.Errorf("%w: path index %d out of range", ErrInvalidLevel, idx)
		}
		if l.Platforms[idx].Lethal() {
			return fmt.Errorf("%w: path platform %d is lethal", ErrInvalidLevel, idx)
		}
	}
	for i, c := range l.Checkpoints {
		if c.Platform < 0 || c.Platform >= len(l.Platforms) {
			return fmt.Errorf("%w: checkpoint %d platform out of range", ErrInvalidLevel, i)
		}
	}
	return nil
}

package leveldata

// Clone returns a deep copy. Platforms, collectibles and checkpoints are plain
// values, so copying the slices is enough; the copy shares no backing arrays
// with l.
func (l *Level) Clone() *Level {
	if l == nil {
		return nil
	}
	c := *l
	c.Platforms = append([]Platform(nil), l.Platforms...)
	c.Collectibles = append([]Collectible(nil), l.Collectibles...)
	c.Checkpoints = append([]Checkpoint(nil), l.Checkpoints...)
	c.Path = append([]int(nil), l.Path...)
	return &c
}

// RestorePlatforms copies platform state from a pristine level back into l.
// Collectibles and checkpoints are left untouched.
func (l *Level) RestorePlatforms(pristine *Level) {
	if pristine == nil || len(pristine.Platforms) != len(l.Platforms) {
		return
	}
	copy(l.Platforms, pristine.Platforms)
}

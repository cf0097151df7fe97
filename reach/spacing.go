package reach

// SafeSpacing is the envelope generation may use: theoretical capabilities
// scaled by the safety factor, and additionally by the diagonal factor for
// moves that combine height and distance.
type SafeSpacing struct {
	MaxHeight   float64
	MaxDistance float64

	DoubleHeight   float64
	DoubleDistance float64

	DiagonalHeight   float64
	DiagonalDistance float64

	WallHeight   float64
	WallDistance float64
}

// SafePlatformSpacing returns the margined envelope for the current constants.
func (o *Oracle) SafePlatformSpacing() SafeSpacing {
	s := o.Margins.SafetyFactor
	d := s * o.Margins.DiagonalFactor
	return SafeSpacing{
		MaxHeight:        o.MaxJumpHeight() * s,
		MaxDistance:      o.MaxJumpDistance() * s,
		DoubleHeight:     o.DoubleJumpHeight() * s,
		DoubleDistance:   o.DoubleJumpDistance() * s,
		DiagonalHeight:   o.MaxJumpHeight() * d,
		DiagonalDistance: o.MaxJumpDistance() * d,
		WallHeight:       o.WallJumpHeight() * s,
		WallDistance:     o.WallJumpDistance() * s,
	}
}

// Contains reports whether a horizontal and vertical gap lie within the
// single or double jump envelope.
func (s SafeSpacing) Contains(horizontal, vertical float64) bool {
	if horizontal <= s.MaxDistance && vertical <= s.MaxHeight {
		return true
	}
	return horizontal <= s.DoubleDistance && vertical <= s.DoubleHeight
}

// ContainsSingle reports whether the gap fits the single jump envelope.
func (s SafeSpacing) ContainsSingle(horizontal, vertical float64) bool {
	return horizontal <= s.MaxDistance && vertical <= s.MaxHeight
}

package gamemath

// AABB is an axis-aligned box stored as center and half-extents.
type AABB struct {
	Center Vec
	Half   Vec
}

func (b AABB) Left() float64 { return b.Center.X - b.Half.X }
func (b AABB) Right() float64 { return b.Center.X + b.Half.X }
func (b AABB) Top() float64 { return b.Center.Y - b.Half.Y }
func (b AABB) Bottom() float64 { return b.Center.Y + b.Half.Y }

// Expand grows the box by m on every side.
func (b AABB) Expand(m float64) AABB {
	return AABB{Center: b.Center, Half: Vec{X: b.Half.X + m, Y: b.Half.Y + m}}
}

// Overlaps reports a strictly positive intersection area. Boxes that only
// share an edge do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	return OverlapX(b, o) > 0 && OverlapY(b, o) > 0
}

// OverlapX returns the length of the shared x-interval (negative when apart).
func OverlapX(a, b AABB) float64 {
	return min(a.Right(), b.Right()) - max(a.Left(), b.Left())
}

// OverlapY returns the length of the shared y-interval (negative when apart).
func OverlapY(a, b AABB) float64 {
	return min(a.Bottom(), b.Bottom()) - max(a.Top(), b.Top())
}

// Axis names the face of a static box that a moving box penetrated.
type Axis int

const (
	AxisTop Axis = iota
	AxisBottom
	AxisLeft
	AxisRight
)

func (a Axis) String() string {
	switch a {
	case AxisTop:
		return "top"
	case AxisBottom:
		return "bottom"
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	}
	return "unknown"
}

// Penetration holds how deep a mover sits inside each face of a static box.
type Penetration struct {
	Top, Bottom, Left, Right float64
}

// Penetrate measures mover against the faces of static.
func Penetrate(mover, static AABB) Penetration {
	return Penetration{
		Top:    mover.Bottom() - static.Top(),
		Bottom: static.Bottom() - mover.Top(),
		Left:   mover.Right() - static.Left(),
		Right:  static.Right() - mover.Left(),
	}
}

// Shallowest returns the axis of least penetration and its depth. Ties break
// in the fixed order top, bottom, left, right.
func (p Penetration) Shallowest() (Axis, float64) {
	axis, depth := AxisTop, p.Top
	if p.Bottom < depth {
		axis, depth = AxisBottom, p.Bottom
	}
	if p.Left < depth {
		axis, depth = AxisLeft, p.Left
	}
	if p.Right < depth {
		axis, depth = AxisRight, p.Right
	}
	return axis, depth
}

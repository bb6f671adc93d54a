package reveal

import "math"

// NodeID names a registered element or group. IDs are chosen by the caller
// and are unique among live nodes.
type NodeID string

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Area returns Width*Height, or 0 for empty or inverted rectangles.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Intersection returns the overlapping region of r and other. The result has
// zero area when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.X+r.Width, other.X+other.Width)
	y1 := math.Min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// VisibleFraction returns the share of r's area that lies inside viewport,
// in [0, 1]. Degenerate rectangles report ok=false.
func (r Rect) VisibleFraction(viewport Rect) (fraction float64, ok bool) {
	area := r.Area()
	if area == 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return 0, false
	}
	f := r.Intersection(viewport).Area() / area
	return math.Min(math.Max(f, 0), 1), true
}

// Props is the set of animatable visual properties of a node. Rotation is in
// degrees, X and Y are translation offsets in pixels.
type Props struct {
	Opacity  float64
	X, Y     float64
	Scale    float64
	Rotation float64
}

// Identity is the untransformed, fully opaque state.
var Identity = Props{Opacity: 1, Scale: 1}

// lerpProps interpolates every field from a toward b by t.
func lerpProps(a, b Props, t float64) Props {
	return Props{
		Opacity:  a.Opacity + (b.Opacity-a.Opacity)*t,
		X:        a.X + (b.X-a.X)*t,
		Y:        a.Y + (b.Y-a.Y)*t,
		Scale:    a.Scale + (b.Scale-a.Scale)*t,
		Rotation: a.Rotation + (b.Rotation-a.Rotation)*t,
	}
}

func (p Props) finite() bool {
	for _, v := range [...]float64{p.Opacity, p.X, p.Y, p.Scale, p.Rotation} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// PropMask selects a subset of Props fields. Values can be combined with
// bitwise OR (e.g. MaskScale | MaskY).
type PropMask uint8

const (
	MaskOpacity  PropMask = 1 << iota // Props.Opacity
	MaskX                             // Props.X
	MaskY                             // Props.Y
	MaskScale                         // Props.Scale
	MaskRotation                      // Props.Rotation

	MaskAll = MaskOpacity | MaskX | MaskY | MaskScale | MaskRotation
)

// overlay interpolates the masked fields of base toward target by t and
// leaves the rest untouched.
func overlay(base, target Props, mask PropMask, t float64) Props {
	out := base
	if mask&MaskOpacity != 0 {
		out.Opacity = base.Opacity + (target.Opacity-base.Opacity)*t
	}
	if mask&MaskX != 0 {
		out.X = base.X + (target.X-base.X)*t
	}
	if mask&MaskY != 0 {
		out.Y = base.Y + (target.Y-base.Y)*t
	}
	if mask&MaskScale != 0 {
		out.Scale = base.Scale + (target.Scale-base.Scale)*t
	}
	if mask&MaskRotation != 0 {
		out.Rotation = base.Rotation + (target.Rotation-base.Rotation)*t
	}
	return out
}

// Phase describes where a node is in its reveal lifecycle.
type Phase uint8

const (
	PhaseHidden    Phase = iota // trigger has not fired
	PhasePending                // fired, waiting for its delay or stagger slot
	PhaseAnimating              // transition in progress
	PhaseVisible                // finite transition complete
	PhaseLooping                // infinite transition running
)

func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhasePending:
		return "pending"
	case PhaseAnimating:
		return "animating"
	case PhaseVisible:
		return "visible"
	case PhaseLooping:
		return "looping"
	default:
		return "unknown"
	}
}

// NodeState is a read-only snapshot of a node for painting.
type NodeState struct {
	ID        NodeID
	Group     bool
	Phase     Phase
	Props     Props
	Progress  float64
	StartTime float64
	Fires     int
}

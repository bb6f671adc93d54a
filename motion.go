package reveal

import (
	"fmt"
	"math"
)

// RepeatForever makes a MotionSpec loop until its node is unmounted.
const RepeatForever = -1

// MotionSpec describes a reusable transition between a Hidden and a Visible
// state. Specs are plain values: copy and tweak them freely before
// registration, they are frozen afterwards.
type MotionSpec struct {
	Name string

	Hidden  Props
	Visible Props

	// Keyframes, when set, replace the Hidden→Visible path with evenly spaced
	// stops over one cycle. Hidden and Visible are then taken from the first
	// and last keyframe.
	Keyframes []Props

	// Duration is the length of one cycle in seconds.
	Duration float64
	// Delay postpones the start after the trigger (or stagger slot).
	Delay float64
	// Ease names a curve known to LookupEase.
	Ease string
	// Repeat is the number of extra cycles, or RepeatForever.
	Repeat int
}

// Infinite reports whether the spec loops forever.
func (m *MotionSpec) Infinite() bool {
	return m.Repeat == RepeatForever
}

// TotalDuration returns the play time from start to rest, excluding Delay.
// Infinite specs return +Inf.
func (m *MotionSpec) TotalDuration() float64 {
	if m.Infinite() {
		return math.Inf(1)
	}
	return m.Duration * float64(m.Repeat+1)
}

// validate checks the spec and returns a normalized copy.
func (m MotionSpec) validate(id NodeID) (*MotionSpec, error) {
	bad := func(format string, args ...any) error {
		return &InvalidSpecError{ID: id, Spec: m.Name, Reason: fmt.Sprintf(format, args...)}
	}
	if math.IsNaN(m.Duration) || math.IsInf(m.Duration, 0) || m.Duration <= 0 {
		return nil, bad("duration must be positive, got %v", m.Duration)
	}
	if math.IsNaN(m.Delay) || math.IsInf(m.Delay, 0) || m.Delay < 0 {
		return nil, bad("delay must be non-negative, got %v", m.Delay)
	}
	if m.Repeat < RepeatForever {
		return nil, bad("repeat must be >= %d, got %d", RepeatForever, m.Repeat)
	}
	if _, ok := LookupEase(m.Ease); !ok {
		return nil, bad("unknown easing %q", m.Ease)
	}
	if len(m.Keyframes) == 1 {
		return nil, bad("keyframes need at least two stops")
	}
	if len(m.Keyframes) > 0 {
		kf := make([]Props, len(m.Keyframes))
		copy(kf, m.Keyframes)
		m.Keyframes = kf
		m.Hidden = kf[0]
		m.Visible = kf[len(kf)-1]
	}
	for _, p := range append([]Props{m.Hidden, m.Visible}, m.Keyframes...) {
		if !p.finite() {
			return nil, bad("non-finite property value")
		}
	}
	return &m, nil
}

// Preset variants of the education-centre landing page. Hidden states pair
// an offset with zero opacity; Visible is the identity.
var (
	FadeUp = MotionSpec{
		Name:     "fadeUp",
		Hidden:   Props{Opacity: 0, Y: 60, Scale: 1},
		Visible:  Identity,
		Duration: 0.8,
		Ease:     "easeOut",
	}
	FadeLeft = MotionSpec{
		Name:     "fadeLeft",
		Hidden:   Props{Opacity: 0, X: -80, Scale: 1},
		Visible:  Identity,
		Duration: 0.8,
		Ease:     "easeOut",
	}
	FadeRight = MotionSpec{
		Name:     "fadeRight",
		Hidden:   Props{Opacity: 0, X: 80, Scale: 1},
		Visible:  Identity,
		Duration: 0.8,
		Ease:     "easeOut",
	}
	ScaleIn = MotionSpec{
		Name:     "scaleIn",
		Hidden:   Props{Opacity: 0, Scale: 0.8},
		Visible:  Identity,
		Duration: 0.6,
		Ease:     "easeOut",
	}
	SlideInUp = MotionSpec{
		Name:     "slideInUp",
		Hidden:   Props{Opacity: 0, Y: 100, Scale: 1},
		Visible:  Identity,
		Duration: 0.7,
		Ease:     "easeOut",
	}
	RotateIn = MotionSpec{
		Name:     "rotateIn",
		Hidden:   Props{Opacity: 0, Scale: 1, Rotation: -10},
		Visible:  Identity,
		Duration: 0.7,
		Ease:     "easeOut",
	}
	// FadeIn is the plain opacity reveal used for captions inside cards.
	FadeIn = MotionSpec{
		Name:     "fadeIn",
		Hidden:   Props{Opacity: 0, Scale: 1},
		Visible:  Identity,
		Duration: 0.3,
		Ease:     "easeOut",
	}
	// Float bobs and tilts forever (hero image box).
	Float = MotionSpec{
		Name: "float",
		Keyframes: []Props{
			Identity,
			{Opacity: 1, Y: -20, Scale: 1, Rotation: 5},
			Identity,
		},
		Duration: 4,
		Repeat:   RepeatForever,
	}
	// Pulse breathes opacity forever (footer line).
	Pulse = MotionSpec{
		Name: "pulse",
		Keyframes: []Props{
			{Opacity: 0.7, Scale: 1},
			Identity,
			{Opacity: 0.7, Scale: 1},
		},
		Duration: 2,
		Repeat:   RepeatForever,
	}
)

// WithDelay returns a copy of m with Delay set.
func (m MotionSpec) WithDelay(delay float64) MotionSpec {
	m.Delay = delay
	return m
}

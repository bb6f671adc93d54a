package reveal

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// TransientKind identifies a pointer-driven variant.
type TransientKind uint8

const (
	TransientHover TransientKind = iota // pointer over the node
	TransientPress                      // pointer held down on the node

	numTransientKinds = 2
)

func (k TransientKind) String() string {
	switch k {
	case TransientHover:
		return "hover"
	case TransientPress:
		return "press"
	default:
		return fmt.Sprintf("TransientKind(%d)", uint8(k))
	}
}

// Transient is a temporary target layered over the reveal state. Only the
// fields selected by Mask are overridden. Duration 0 applies instantly.
type Transient struct {
	Target   Props
	Mask     PropMask
	Duration float64
	Ease     string
}

type transientSpec struct {
	Transient
	fn ease.TweenFunc
}

func (t *Transient) validate(id NodeID, kind TransientKind) (*transientSpec, error) {
	if t == nil {
		return nil, nil
	}
	bad := func(format string, args ...any) error {
		return &InvalidSpecError{ID: id, Spec: kind.String(), Reason: fmt.Sprintf(format, args...)}
	}
	if math.IsNaN(t.Duration) || math.IsInf(t.Duration, 0) || t.Duration < 0 {
		return nil, bad("duration must be non-negative, got %v", t.Duration)
	}
	if t.Mask == 0 || t.Mask&^MaskAll != 0 {
		return nil, bad("mask %#x selects no known property", uint8(t.Mask))
	}
	if !t.Target.finite() {
		return nil, bad("non-finite property value")
	}
	fn, ok := LookupEase(t.Ease)
	if !ok {
		return nil, bad("unknown easing %q", t.Ease)
	}
	return &transientSpec{Transient: *t, fn: fn}, nil
}

// ApplyTransient layers the node's hover or press variant over its current
// reveal state. Applying an already active variant is a no-op.
func (a *Animator) ApplyTransient(id NodeID, kind TransientKind) error {
	n, err := a.lookup(id)
	if err != nil {
		return err
	}
	if kind >= numTransientKinds {
		return &InvalidSpecError{ID: id, Reason: fmt.Sprintf("unknown transient %s", kind)}
	}
	spec := n.variants[kind]
	if spec == nil {
		return &InvalidSpecError{ID: id, Spec: kind.String(), Reason: "node has no such variant"}
	}
	if n.overlays[kind] != nil {
		return nil
	}
	n.overlays[kind] = newOverlayClock(spec, a.now)
	if n.refresh(a.now) {
		a.activate(n)
	}
	return nil
}

// ReleaseTransient ends one variant, restoring the values beneath it at once.
func (a *Animator) ReleaseTransient(id NodeID, kind TransientKind) error {
	n, err := a.lookup(id)
	if err != nil {
		return err
	}
	if kind >= numTransientKinds {
		return &InvalidSpecError{ID: id, Reason: fmt.Sprintf("unknown transient %s", kind)}
	}
	n.overlays[kind] = nil
	n.refresh(a.now)
	return nil
}

// ClearTransient ends every variant on the node, restoring the reveal state
// at once, even mid-transition.
func (a *Animator) ClearTransient(id NodeID) error {
	n, err := a.lookup(id)
	if err != nil {
		return err
	}
	for i := range n.overlays {
		n.overlays[i] = nil
	}
	n.refresh(a.now)
	return nil
}

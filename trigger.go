package reveal

import (
	"fmt"
	"math"
)

// TriggerKind selects the condition that flips a node from Hidden to Visible.
type TriggerKind uint8

const (
	TriggerOnMount         TriggerKind = iota // fires once when the node is observed
	TriggerOnViewportEnter                    // fires when enough of the node is on screen
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerOnMount:
		return "mount"
	case TriggerOnViewportEnter:
		return "viewport"
	default:
		return fmt.Sprintf("TriggerKind(%d)", uint8(k))
	}
}

// Trigger is the reveal condition of a node.
type Trigger struct {
	Kind TriggerKind
	// Once makes the trigger fire at most once per node lifetime. When false,
	// leaving the viewport hides the node again and re-entering replays it.
	Once bool
	// Amount is the visible area fraction in [0, 1] that counts as entering.
	// Zero means any visible pixel.
	Amount float64
}

// OnMount returns a trigger that fires as soon as the node is observed.
func OnMount() Trigger {
	return Trigger{Kind: TriggerOnMount, Once: true}
}

// OnViewportEnter returns a trigger that fires when at least amount of the
// node's area is inside the viewport.
func OnViewportEnter(amount float64, once bool) Trigger {
	return Trigger{Kind: TriggerOnViewportEnter, Once: once, Amount: amount}
}

func (t Trigger) validate(id NodeID) error {
	switch t.Kind {
	case TriggerOnMount:
		return nil
	case TriggerOnViewportEnter:
		if math.IsNaN(t.Amount) || t.Amount < 0 || t.Amount > 1 {
			return &InvalidSpecError{ID: id, Reason: fmt.Sprintf("viewport amount must be in [0, 1], got %v", t.Amount)}
		}
		return nil
	default:
		return &InvalidSpecError{ID: id, Reason: fmt.Sprintf("unknown trigger kind %d", t.Kind)}
	}
}

// entered reports whether a visible fraction satisfies the threshold.
func (t Trigger) entered(fraction float64) bool {
	return fraction > 0 && fraction >= t.Amount
}

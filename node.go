package reveal

import "github.com/tanema/gween/ease"

// Element is a leaf node bound to exactly one MotionSpec.
type Element struct {
	ID     NodeID
	Motion MotionSpec

	// Optional pointer variants, layered over the reveal state while active.
	Hover *Transient
	Press *Transient
}

// Group sequences its children under a shared trigger. Child i starts at
// trigger time + Delay + i*Stagger. Children must be registered before the
// group and may themselves be groups.
type Group struct {
	ID       NodeID
	Children []NodeID
	Delay    float64
	Stagger  float64
	// Motion is optional; a group without one has no visual output of its
	// own and reports Identity props.
	Motion *MotionSpec
}

// MeasureFunc reports a node's bounding box in page coordinates. ok=false
// means the node has no usable layout yet.
type MeasureFunc func() (bounds Rect, ok bool)

// node is the animator's record for a registered element or group. A single
// flat struct serves both kinds.
type node struct {
	id    NodeID
	seq   int
	group bool

	trigger Trigger
	motion  *MotionSpec
	easeFn  ease.TweenFunc

	// Group fields
	parent   *node
	children []*node
	delay    float64
	stagger  float64

	// Transient variants, indexed by TransientKind
	variants [numTransientKinds]*transientSpec
	overlays [numTransientKinds]*overlayClock

	// Viewport subscription
	measure  MeasureFunc
	observed bool
	inside   bool

	// Reveal state
	fired    bool
	fires    int
	tr       *transition
	active   bool
	phase    Phase
	progress float64
	start    float64
	base     Props
	props    Props

	disposed bool
}

// hiddenProps returns the props a node shows before its trigger fires.
func (n *node) hiddenProps() Props {
	if n.motion == nil {
		return Identity
	}
	return n.motion.Hidden
}

// refresh recomputes props from base and any transient overlays. Press is
// layered on top of hover. Reports whether an overlay is still easing in.
func (n *node) refresh(now float64) bool {
	props := n.base
	easing := false
	for _, c := range n.overlays {
		if c == nil {
			continue
		}
		w, settled := c.weight(now)
		if !settled {
			easing = true
		}
		props = overlay(props, c.spec.Target, c.spec.Mask, w)
	}
	n.props = props
	return easing
}

func (n *node) snapshot() NodeState {
	return NodeState{
		ID:        n.id,
		Group:     n.group,
		Phase:     n.phase,
		Props:     n.props,
		Progress:  n.progress,
		StartTime: n.start,
		Fires:     n.fires,
	}
}

// removeChildByPtr removes child from n.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *node) removeChildByPtr(child *node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// walk calls fn for n and every descendant, depth first.
func (n *node) walk(fn func(*node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

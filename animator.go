package reveal

import (
	"io"
	"math"
	"os"
	"slices"
	"sync"
	"time"
)

// Animator owns every registered node, the reveal clock and the queue of
// pending trigger requests. All state changes happen inside Tick or the
// registration calls; only SetViewport and ReportIntersection may be called
// from other goroutines.
type Animator struct {
	nodes  map[NodeID]*node
	seq    int
	now    float64
	active []*node
	watch  []*node

	viewport    Rect
	hasViewport bool

	// Guards queue only.
	mu    sync.Mutex
	queue []request

	sink     EventSink
	debug    bool
	debugOut io.Writer
}

// NewAnimator creates an empty animator with its clock at zero.
func NewAnimator() *Animator {
	return &Animator{
		nodes:    make(map[NodeID]*node),
		debugOut: os.Stderr,
	}
}

// Now returns the animator clock in seconds.
func (a *Animator) Now() float64 {
	return a.now
}

// RegisterElement associates an element with its trigger and motion.
func (a *Animator) RegisterElement(el Element, trig Trigger) error {
	if err := a.checkNew(el.ID, trig); err != nil {
		return err
	}
	spec, err := el.Motion.validate(el.ID)
	if err != nil {
		return err
	}
	n := &node{id: el.ID, trigger: trig, motion: spec}
	n.easeFn, _ = LookupEase(spec.Ease)
	for kind, t := range [numTransientKinds]*Transient{el.Hover, el.Press} {
		v, err := t.validate(el.ID, TransientKind(kind))
		if err != nil {
			return err
		}
		n.variants[kind] = v
	}
	a.insert(n)
	return nil
}

// RegisterGroup associates a group with its trigger and links its children,
// which must already be registered and not belong to another group.
func (a *Animator) RegisterGroup(g Group, trig Trigger) error {
	if err := a.checkNew(g.ID, trig); err != nil {
		return err
	}
	bad := func(reason string) error { return &InvalidSpecError{ID: g.ID, Reason: reason} }
	if math.IsNaN(g.Delay) || math.IsInf(g.Delay, 0) || g.Delay < 0 {
		return bad("group delay must be non-negative")
	}
	if math.IsNaN(g.Stagger) || math.IsInf(g.Stagger, 0) || g.Stagger < 0 {
		return bad("stagger must be non-negative")
	}
	n := &node{id: g.ID, group: true, trigger: trig, delay: g.Delay, stagger: g.Stagger}
	if g.Motion != nil {
		spec, err := g.Motion.validate(g.ID)
		if err != nil {
			return err
		}
		n.motion = spec
		n.easeFn, _ = LookupEase(spec.Ease)
	}

	children := make([]*node, 0, len(g.Children))
	for _, cid := range g.Children {
		c, ok := a.nodes[cid]
		if !ok {
			return &UnknownNodeError{ID: cid}
		}
		if c.parent != nil || slices.Contains(children, c) {
			owner := g.ID
			if c.parent != nil {
				owner = c.parent.id
			}
			return &DuplicateRegistrationError{ID: cid, Group: owner}
		}
		if c.fired {
			return bad("child " + string(cid) + " has already fired")
		}
		children = append(children, c)
	}
	for _, c := range children {
		c.parent = n
	}
	n.children = children
	a.insert(n)
	return nil
}

func (a *Animator) checkNew(id NodeID, trig Trigger) error {
	if id == "" {
		return &InvalidSpecError{ID: id, Reason: "empty node ID"}
	}
	if _, ok := a.nodes[id]; ok {
		return &DuplicateRegistrationError{ID: id}
	}
	return trig.validate(id)
}

func (a *Animator) insert(n *node) {
	a.seq++
	n.seq = a.seq
	n.phase = PhaseHidden
	n.base = n.hiddenProps()
	n.props = n.base
	a.nodes[n.id] = n
}

func (a *Animator) lookup(id NodeID) (*node, error) {
	n, ok := a.nodes[id]
	if !ok {
		return nil, &UnknownNodeError{ID: id}
	}
	return n, nil
}

// Observe starts monitoring a node for its trigger. OnMount nodes fire on the
// next Tick. OnViewportEnter nodes are measured with measure whenever the
// viewport changes; measure may be nil when the host reports fractions
// through ReportIntersection instead.
func (a *Animator) Observe(id NodeID, measure MeasureFunc) error {
	n, err := a.lookup(id)
	if err != nil {
		return err
	}
	switch n.trigger.Kind {
	case TriggerOnMount:
		a.enqueue(request{kind: reqFire, id: id})
	case TriggerOnViewportEnter:
		if n.fired && n.trigger.Once {
			return nil
		}
		n.measure = measure
		if !n.observed {
			n.observed = true
			a.watch = append(a.watch, n)
		}
		if measure != nil {
			a.enqueue(request{kind: reqMeasure, id: id})
		}
	}
	return nil
}

// Unmount destroys a node and all of its descendants. Their subscriptions
// and queued events are dropped; later events for them are ignored.
func (a *Animator) Unmount(id NodeID) error {
	n, err := a.lookup(id)
	if err != nil {
		return err
	}
	if n.parent != nil {
		n.parent.removeChildByPtr(n)
		n.parent = nil
	}
	gone := make(map[NodeID]struct{})
	n.walk(func(d *node) {
		d.disposed = true
		d.measure = nil
		d.tr = nil
		delete(a.nodes, d.id)
		gone[d.id] = struct{}{}
		a.emit(EventUnmounted, d)
	})
	a.watch = slices.DeleteFunc(a.watch, func(w *node) bool { return w.disposed })
	a.active = slices.DeleteFunc(a.active, func(w *node) bool { return w.disposed })

	a.mu.Lock()
	a.queue = slices.DeleteFunc(a.queue, func(r request) bool {
		_, ok := gone[r.id]
		return ok
	})
	a.mu.Unlock()
	return nil
}

// Tick applies queued trigger requests at the current time, then advances
// the clock by dt seconds and re-samples every active transition. Negative
// or non-finite dt is treated as zero.
func (a *Animator) Tick(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	var stats debugStats
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	a.drain(&stats)
	a.now += dt
	a.advance(&stats)

	if a.debug {
		stats.tickTime = time.Since(t0)
		stats.active = len(a.active)
		a.debugLog(stats)
	}
}

// activate adds n to the set re-sampled by Tick.
func (a *Animator) activate(n *node) {
	if n.active || n.disposed {
		return
	}
	n.active = true
	a.active = append(a.active, n)
}

// advance re-samples active nodes and drops the ones that came to rest.
func (a *Animator) advance(stats *debugStats) {
	kept := a.active[:0]
	for _, n := range a.active {
		running := false
		if n.tr != nil {
			props, progress, done := n.tr.sample(a.now)
			n.base = props
			n.progress = progress
			switch {
			case a.now < n.tr.start:
				n.phase = PhasePending
				running = true
			case done:
				n.phase = PhaseVisible
				n.tr = nil
				stats.completed++
				a.emit(EventTransitionComplete, n)
			case n.motion.Infinite():
				n.phase = PhaseLooping
				running = true
			default:
				n.phase = PhaseAnimating
				running = true
			}
		}
		if n.refresh(a.now) {
			running = true
		}
		if running {
			kept = append(kept, n)
		} else {
			n.active = false
		}
	}
	clear(a.active[len(kept):])
	a.active = kept
}

// fire starts a root node's reveal at time t.
func (a *Animator) fire(n *node, t float64) {
	if n.fired {
		return
	}
	n.fired = true
	n.fires++
	if n.trigger.Once && n.observed {
		a.unwatch(n)
	}
	a.emit(EventTriggerFired, n)
	a.schedule(n, t)
}

// schedule starts n's own transition at t (plus its motion delay) and hands
// each child its stagger slot. A child's own trigger counts as satisfied.
func (a *Animator) schedule(n *node, t float64) {
	n.start = t
	if n.motion != nil {
		n.start = t + n.motion.Delay
		n.tr = newTransition(n.motion, n.start, n.easeFn)
		n.phase = PhasePending
		a.activate(n)
	} else {
		n.phase = PhaseVisible
		n.progress = 1
	}
	for i, c := range n.children {
		if c.observed {
			a.unwatch(c)
		}
		c.fired = true
		c.fires++
		a.emit(EventTriggerFired, c)
		a.schedule(c, t+n.delay+float64(i)*n.stagger)
	}
}

// reset returns n and its descendants to Hidden so the trigger can fire
// again.
func (a *Animator) reset(n *node) {
	n.walk(func(d *node) {
		d.fired = false
		d.tr = nil
		d.phase = PhaseHidden
		d.progress = 0
		d.start = 0
		d.base = d.hiddenProps()
		if d.refresh(a.now) {
			a.activate(d)
		}
	})
	a.emit(EventTriggerReset, n)
}

func (a *Animator) unwatch(n *node) {
	n.observed = false
	if i := slices.Index(a.watch, n); i >= 0 {
		a.watch = slices.Delete(a.watch, i, i+1)
	}
}

// Props returns the node's current interpolated values, transients included.
func (a *Animator) Props(id NodeID) (Props, error) {
	n, err := a.lookup(id)
	if err != nil {
		return Props{}, err
	}
	return n.props, nil
}

// Progress returns the fraction of the node's transition that has elapsed.
// Finite transitions report a value clamped to [0, 1]; looping ones report
// the position within the current cycle.
func (a *Animator) Progress(id NodeID) (float64, error) {
	n, err := a.lookup(id)
	if err != nil {
		return 0, err
	}
	return n.progress, nil
}

// State returns a snapshot of the node.
func (a *Animator) State(id NodeID) (NodeState, error) {
	n, err := a.lookup(id)
	if err != nil {
		return NodeState{}, err
	}
	return n.snapshot(), nil
}

// Nodes returns snapshots of every live node in registration order.
func (a *Animator) Nodes() []NodeState {
	ns := make([]*node, 0, len(a.nodes))
	for _, n := range a.nodes {
		ns = append(ns, n)
	}
	slices.SortFunc(ns, func(x, y *node) int { return x.seq - y.seq })
	out := make([]NodeState, len(ns))
	for i, n := range ns {
		out[i] = n.snapshot()
	}
	return out
}

package reveal

import "math"

type requestKind uint8

const (
	reqFire     requestKind = iota // OnMount trigger
	reqMeasure                     // measure one node against the last viewport
	reqSample                      // host-reported visible fraction
	reqViewport                    // viewport moved or resized
)

// request is a queued trigger input, applied by the next Tick.
type request struct {
	kind     requestKind
	id       NodeID
	fraction float64
	viewport Rect
}

func (a *Animator) enqueue(r request) {
	a.mu.Lock()
	a.queue = append(a.queue, r)
	a.mu.Unlock()
}

// SetViewport records the visible region of the page, in the same
// coordinates MeasureFunc uses. On the next Tick every subscribed node is
// measured against it. Safe to call from the host's scroll or layout
// callbacks on any goroutine.
func (a *Animator) SetViewport(r Rect) {
	a.enqueue(request{kind: reqViewport, viewport: r})
}

// ReportIntersection queues a visible area fraction for a node, for hosts
// that compute intersections themselves. Events for unknown or unmounted
// nodes are dropped on the next Tick. Safe to call from any goroutine.
func (a *Animator) ReportIntersection(id NodeID, fraction float64) {
	a.enqueue(request{kind: reqSample, id: id, fraction: fraction})
}

// Viewport returns the last viewport applied by Tick.
func (a *Animator) Viewport() (Rect, bool) {
	return a.viewport, a.hasViewport
}

// drain applies queued requests in arrival order at the current time.
func (a *Animator) drain(stats *debugStats) {
	a.mu.Lock()
	pending := a.queue
	a.queue = nil
	a.mu.Unlock()

	for _, r := range pending {
		stats.drained++
		switch r.kind {
		case reqViewport:
			a.viewport = r.viewport
			a.hasViewport = true
			// sample may unwatch nodes; iterate over a stable copy.
			watched := append([]*node(nil), a.watch...)
			for _, n := range watched {
				a.measureNode(n, stats)
			}
		case reqMeasure:
			n, ok := a.nodes[r.id]
			if !ok || !n.observed {
				a.dropped(r, stats)
				continue
			}
			a.measureNode(n, stats)
		case reqSample:
			n, ok := a.nodes[r.id]
			if !ok || !n.observed {
				a.dropped(r, stats)
				continue
			}
			a.sample(n, r.fraction, stats)
		case reqFire:
			n, ok := a.nodes[r.id]
			if !ok {
				a.dropped(r, stats)
				continue
			}
			// Grouped nodes only ever start from their group.
			if n.parent != nil || n.fired {
				continue
			}
			stats.fired++
			a.fire(n, a.now)
		}
	}
}

// measureNode samples n's visible fraction against the current viewport.
// Degenerate or missing geometry is ignored.
func (a *Animator) measureNode(n *node, stats *debugStats) {
	if !a.hasViewport || n.measure == nil || !n.observed {
		return
	}
	bounds, ok := n.measure()
	if !ok {
		return
	}
	fraction, ok := bounds.VisibleFraction(a.viewport)
	if !ok {
		return
	}
	a.sample(n, fraction, stats)
}

// sample feeds one visible fraction into n's viewport trigger. The trigger
// fires on each transition from outside to inside the threshold; a
// once=false trigger resets the node when it leaves.
func (a *Animator) sample(n *node, fraction float64, stats *debugStats) {
	if math.IsNaN(fraction) {
		return
	}
	inside := n.trigger.entered(fraction)
	switch {
	case inside && !n.inside:
		n.inside = true
		if n.parent == nil {
			stats.fired++
			a.fire(n, a.now)
		}
	case !inside && n.inside:
		n.inside = false
		if n.parent == nil && !n.trigger.Once && n.fired {
			a.reset(n)
		}
	}
}

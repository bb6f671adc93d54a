package reveal

import (
	"iter"
)

// EventType identifies an animator lifecycle event.
type EventType uint8

const (
	EventTriggerFired       EventType = iota // node's trigger fired (directly or via its group)
	EventTriggerReset                        // once=false node left the viewport and is Hidden again
	EventTransitionComplete                  // finite transition reached Visible
	EventUnmounted                           // node destroyed
)

func (t EventType) String() string {
	switch t {
	case EventTriggerFired:
		return "fired"
	case EventTriggerReset:
		return "reset"
	case EventTransitionComplete:
		return "complete"
	case EventUnmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

// Event is published to the EventSink from inside Tick or Unmount.
type Event struct {
	Type EventType
	Node NodeID
	// Time is the animator clock when the event was raised.
	Time float64
}

// EventSink receives animator events. When set on an Animator, every
// lifecycle event is forwarded to it synchronously.
type EventSink interface {
	Emit(event Event)
}

// SetEventSink sets the optional event receiver. Pass nil to detach.
func (a *Animator) SetEventSink(sink EventSink) {
	a.sink = sink
}

func (a *Animator) emit(t EventType, n *node) {
	if a.sink == nil {
		return
	}
	a.sink.Emit(Event{Type: t, Node: n.id, Time: a.now})
}

// Frame is one step of the frame stream.
type Frame struct {
	Index int
	Time  float64
	Nodes []NodeState
}

// Frames returns a lazy, unbounded stream: each pull ticks the animator by dt
// and yields every node's state. Stop by breaking out of the range loop.
//
//	for f := range a.Frames(1.0 / 60) {
//		paint(f.Nodes)
//		if f.Time > 2 {
//			break
//		}
//	}
func (a *Animator) Frames(dt float64) iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for i := 0; ; i++ {
			a.Tick(dt)
			if !yield(Frame{Index: i, Time: a.now, Nodes: a.Nodes()}) {
				return
			}
		}
	}
}

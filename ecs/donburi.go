package ecs

import (
	"github.com/phanxgames/reveal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimatorEventType is the Donburi event type for reveal animator events.
var AnimatorEventType = events.NewEventType[reveal.Event]()

// NodeComponent holds the latest state of one animated node.
var NodeComponent = donburi.NewComponentType[reveal.NodeState]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to AnimatorEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) reveal.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event reveal.Event) {
	AnimatorEventType.Publish(s.world, event)
}

// Mirror maintains one entity per animated node, carrying NodeComponent.
type Mirror struct {
	world    donburi.World
	entities map[reveal.NodeID]donburi.Entity
}

// NewMirror creates an empty mirror over world.
func NewMirror(world donburi.World) *Mirror {
	return &Mirror{world: world, entities: make(map[reveal.NodeID]donburi.Entity)}
}

// Sync creates, updates and removes entities so the world matches states.
func (m *Mirror) Sync(states []reveal.NodeState) {
	seen := make(map[reveal.NodeID]struct{}, len(states))
	for _, st := range states {
		seen[st.ID] = struct{}{}
		e, ok := m.entities[st.ID]
		if !ok || !m.world.Valid(e) {
			e = m.world.Create(NodeComponent)
			m.entities[st.ID] = e
		}
		NodeComponent.SetValue(m.world.Entry(e), st)
	}
	for id, e := range m.entities {
		if _, ok := seen[id]; ok {
			continue
		}
		if m.world.Valid(e) {
			m.world.Remove(e)
		}
		delete(m.entities, id)
	}
}

// Entity returns the entity mirroring id.
func (m *Mirror) Entity(id reveal.NodeID) (donburi.Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

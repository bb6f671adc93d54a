// Package ecs provides ECS adapters for reveal's animator.
//
// [NewDonburiSink] bridges animator lifecycle events (trigger fired, reset,
// transition complete, unmounted) into a [Donburi] world as typed events.
// Subscribe to [AnimatorEventType] in your ECS systems to receive them.
// [Mirror] keeps one entity per animated node so systems can query the
// current interpolated state with a component lookup.
//
// Usage:
//
//	a.SetEventSink(ecs.NewDonburiSink(world))
//	mirror := ecs.NewMirror(world)
//	// each frame, after a.Tick:
//	mirror.Sync(a.Nodes())
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package reveal sequences entrance animations for pages built from sections
// of visual blocks.
//
// An [Animator] decides, for every registered node, when it goes from its
// Hidden to its Visible state: on mount for above-the-fold content, on
// viewport entry for content further down, and in staggered order inside a
// [Group]. It also drives ambient loops that never finish and hover/press
// overlays that snap back when the pointer leaves.
//
// # Quick start
//
//	a := reveal.NewAnimator()
//	a.RegisterElement(reveal.Element{ID: "title", Motion: reveal.FadeUp}, reveal.OnMount())
//	a.RegisterElement(reveal.Element{ID: "card.0", Motion: reveal.ScaleIn}, reveal.OnMount())
//	a.RegisterElement(reveal.Element{ID: "card.1", Motion: reveal.ScaleIn}, reveal.OnMount())
//	a.RegisterGroup(reveal.Group{
//		ID:       "mission",
//		Children: []reveal.NodeID{"title", "card.0", "card.1"},
//		Delay:    0.2,
//		Stagger:  0.15,
//	}, reveal.OnViewportEnter(0.3, true))
//	a.Observe("mission", func() (reveal.Rect, bool) { return missionBounds, true })
//
// Then, once per frame:
//
//	a.SetViewport(reveal.Rect{Y: scrollY, Width: w, Height: h}) // on scroll
//	a.Tick(dt)
//	props, _ := a.Props("card.0")
//
// # Timing
//
// Everything runs on the animator's own clock, advanced only by
// [Animator.Tick]. Viewport and intersection updates are queued and applied
// at the start of the next tick, so state never changes mid-frame. When a
// group fires at time T, child i starts at T + Delay + i*Stagger.
//
// Easing curves come from [gween]; see [LookupEase] for the accepted names.
//
// The ebitenhost package runs an animator inside an Ebitengine window, the
// ecs module forwards its events to a Donburi world, and the landing package
// declares a complete page.
//
// [gween]: https://github.com/tanema/gween
package reveal

// Package ebitenhost runs a reveal.Animator inside an Ebitengine window.
//
// A [Page] is a flat list of [Block]s laid out in page coordinates. Blocks
// bound to an animator node are painted with that node's interpolated
// props; children inherit their parent's translation and opacity. The host
// turns wheel and keyboard scrolling into viewport updates, pointer hover
// and press into transient variants, and ticks the animator once per frame.
//
//	page, _ := ebitenhost.NewPage(1280, 4000, blocks)
//	err := ebitenhost.Run(animator, page, ebitenhost.RunConfig{
//		Title: "Landing", Width: 1280, Height: 720,
//	})
package ebitenhost

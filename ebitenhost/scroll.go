package ebitenhost

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scroller tracks the vertical scroll offset of the page, clamped to
// [0, max], with an optional eased scroll-to animation.
type scroller struct {
	y     float64
	max   float64
	tween *gween.Tween
	dirty bool
}

func newScroller(pageHeight, viewHeight float64) *scroller {
	return &scroller{max: math.Max(0, pageHeight-viewHeight), dirty: true}
}

// ScrollTo animates to y over duration seconds.
func (s *scroller) ScrollTo(y float64, duration float32, fn ease.TweenFunc) {
	y = s.clamp(y)
	if duration <= 0 {
		s.tween = nil
		s.set(y)
		return
	}
	s.tween = gween.New(float32(s.y), float32(y), duration, fn)
}

// Nudge scrolls by dy immediately, cancelling any scroll-to animation.
func (s *scroller) Nudge(dy float64) {
	if dy == 0 {
		return
	}
	s.tween = nil
	s.set(s.clamp(s.y + dy))
}

// update advances the scroll-to animation and reports whether the offset
// changed since the last call.
func (s *scroller) update(dt float32) bool {
	if s.tween != nil {
		val, done := s.tween.Update(dt)
		s.set(float64(val))
		if done {
			s.tween = nil
		}
	}
	changed := s.dirty
	s.dirty = false
	return changed
}

func (s *scroller) set(y float64) {
	if y != s.y {
		s.y = y
		s.dirty = true
	}
}

func (s *scroller) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, s.max))
}

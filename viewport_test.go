package reveal

import (
	"sync"
	"testing"
)

func feedFractions(t *testing.T, a *Animator, id NodeID, fractions []float64) []int {
	t.Helper()
	fires := make([]int, len(fractions))
	for i, f := range fractions {
		a.ReportIntersection(id, f)
		a.Tick(0)
		fires[i] = mustState(t, a, id).Fires
	}
	return fires
}

func TestViewportOnceFiresExactlyOnce(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "el", FadeUp, OnViewportEnter(0.3, true))
	_ = a.Observe("el", nil)

	got := feedFractions(t, a, "el", []float64{0.1, 0.35, 0.1, 0.4})
	want := []int{0, 1, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fires after sample %d = %d, want %d (all: %v)", i, got[i], want[i], got)
		}
	}
	if s := mustState(t, a, "el"); s.Phase == PhaseHidden {
		t.Error("once trigger must not hide the node again")
	}
}

func TestViewportRepeatFiresPerEntry(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "el", FadeUp, OnViewportEnter(0.3, false))
	_ = a.Observe("el", nil)

	got := feedFractions(t, a, "el", []float64{0.1, 0.35, 0.5, 0.1, 0.4, 0.9})
	want := []int{0, 1, 1, 1, 2, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fires = %v, want %v", got, want)
		}
	}
}

func TestViewportRepeatResetsOnExit(t *testing.T) {
	a := NewAnimator()
	sink := &recordingSink{}
	a.SetEventSink(sink)
	mustElement(t, a, "el", FadeUp, OnViewportEnter(0.3, false))
	_ = a.Observe("el", nil)

	a.ReportIntersection("el", 1)
	a.Tick(2)
	if s := mustState(t, a, "el"); s.Phase != PhaseVisible {
		t.Fatalf("phase = %s, want visible", s.Phase)
	}
	a.ReportIntersection("el", 0)
	a.Tick(0)
	s := mustState(t, a, "el")
	if s.Phase != PhaseHidden || s.Props != FadeUp.Hidden {
		t.Errorf("after exit: %+v, want hidden", s)
	}
	last := sink.events[len(sink.events)-1]
	if last.Type != EventTriggerReset {
		t.Errorf("last event = %s, want reset", last.Type)
	}
}

func TestViewportMeasuredOnScroll(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "el", FadeUp, OnViewportEnter(0.3, true))
	bounds := Rect{X: 0, Y: 1000, Width: 400, Height: 200}
	measured := 0
	_ = a.Observe("el", func() (Rect, bool) {
		measured++
		return bounds, true
	})

	a.SetViewport(Rect{Width: 1280, Height: 720})
	a.Tick(0)
	if s := mustState(t, a, "el"); s.Fires != 0 {
		t.Fatal("fired while below the fold")
	}

	// 40 of 200 pixels visible: 0.2 is under the threshold.
	a.SetViewport(Rect{Y: 320, Width: 1280, Height: 720})
	a.Tick(0)
	if s := mustState(t, a, "el"); s.Fires != 0 {
		t.Fatal("fired below the threshold")
	}

	// 80 of 200 pixels visible: 0.4.
	a.SetViewport(Rect{Y: 360, Width: 1280, Height: 720})
	a.Tick(0)
	if s := mustState(t, a, "el"); s.Fires != 1 {
		t.Fatalf("fires = %d, want 1", s.Fires)
	}

	before := measured
	a.SetViewport(Rect{Y: 900, Width: 1280, Height: 720})
	a.Tick(0)
	if measured != before {
		t.Error("once trigger still measured after firing")
	}
}

func TestObserveMeasuresAgainstKnownViewport(t *testing.T) {
	a := NewAnimator()
	a.SetViewport(Rect{Width: 800, Height: 600})
	a.Tick(0)

	mustElement(t, a, "el", FadeUp, OnViewportEnter(0.3, true))
	_ = a.Observe("el", func() (Rect, bool) { return Rect{X: 10, Y: 10, Width: 50, Height: 50}, true })
	a.Tick(0)
	if s := mustState(t, a, "el"); s.Fires != 1 {
		t.Errorf("fires = %d, want 1 for a node mounted in view", s.Fires)
	}
}

func TestDegenerateGeometryKeepsNodeHidden(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "unlaid", FadeUp, OnViewportEnter(0, true))
	mustElement(t, a, "flat", FadeUp, OnViewportEnter(0, true))
	_ = a.Observe("unlaid", func() (Rect, bool) { return Rect{}, false })
	_ = a.Observe("flat", func() (Rect, bool) { return Rect{Width: 100}, true })

	for y := 0.0; y < 2000; y += 250 {
		a.SetViewport(Rect{Y: y, Width: 1280, Height: 720})
		a.Tick(1.0 / 60)
	}
	for _, id := range []NodeID{"unlaid", "flat"} {
		s := mustState(t, a, id)
		if s.Phase != PhaseHidden || s.Fires != 0 {
			t.Errorf("%s: %+v, want hidden", id, s)
		}
	}
}

func TestZeroAmountNeedsSomeOverlap(t *testing.T) {
	tr := OnViewportEnter(0, true)
	if tr.entered(0) {
		t.Error("fraction 0 must not count as entered")
	}
	if !tr.entered(0.001) {
		t.Error("any overlap should count with amount 0")
	}
}

func TestReportIntersectionFromOtherGoroutines(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "el", FadeUp, OnViewportEnter(0.5, false))
	_ = a.Observe("el", nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a.ReportIntersection("el", 1)
				a.SetViewport(Rect{Width: 10, Height: 10})
			}
		}()
	}
	wg.Wait()
	a.Tick(0)
	if s := mustState(t, a, "el"); s.Fires != 1 {
		t.Errorf("fires = %d, want 1 (never left the viewport)", s.Fires)
	}
}

package reveal

import (
	"math"
	"testing"
)

func mustElement(t *testing.T, a *Animator, id NodeID, spec MotionSpec, trig Trigger) {
	t.Helper()
	if err := a.RegisterElement(Element{ID: id, Motion: spec}, trig); err != nil {
		t.Fatalf("register %s: %v", id, err)
	}
}

func mustProps(t *testing.T, a *Animator, id NodeID) Props {
	t.Helper()
	p, err := a.Props(id)
	if err != nil {
		t.Fatalf("props %s: %v", id, err)
	}
	return p
}

func mustState(t *testing.T, a *Animator, id NodeID) NodeState {
	t.Helper()
	s, err := a.State(id)
	if err != nil {
		t.Fatalf("state %s: %v", id, err)
	}
	return s
}

func linearFade(duration float64) MotionSpec {
	return MotionSpec{
		Name:     "linearFade",
		Hidden:   Props{Opacity: 0, Y: 40, Scale: 1},
		Visible:  Identity,
		Duration: duration,
		Ease:     "linear",
	}
}

func TestTransitionInterpolatesLinearly(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "el", linearFade(1), OnMount())
	if err := a.Observe("el", nil); err != nil {
		t.Fatal(err)
	}

	a.Tick(0.5)
	p := mustProps(t, a, "el")
	if math.Abs(p.Opacity-0.5) > 1e-4 {
		t.Errorf("Opacity = %f, want ~0.5", p.Opacity)
	}
	if math.Abs(p.Y-20) > 1e-3 {
		t.Errorf("Y = %f, want ~20", p.Y)
	}
	if s := mustState(t, a, "el"); s.Phase != PhaseAnimating {
		t.Errorf("phase = %s, want animating", s.Phase)
	}

	a.Tick(0.5)
	p = mustProps(t, a, "el")
	if p != Identity {
		t.Errorf("props = %+v, want %+v", p, Identity)
	}
	if s := mustState(t, a, "el"); s.Phase != PhaseVisible {
		t.Errorf("phase = %s, want visible", s.Phase)
	}
}

func TestProgressClampedForHugeTick(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "el", FadeUp, OnMount())
	_ = a.Observe("el", nil)

	a.Tick(1e9)
	prog, err := a.Progress("el")
	if err != nil {
		t.Fatal(err)
	}
	if prog != 1 {
		t.Errorf("progress = %v, want 1", prog)
	}
	if p := mustProps(t, a, "el"); p != FadeUp.Visible {
		t.Errorf("props = %+v, want Visible", p)
	}
	if len(a.active) != 0 {
		t.Errorf("active = %d, want 0 after completion", len(a.active))
	}
}

func TestProgressNeverNegativeBeforeStart(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "el", FadeUp.WithDelay(1), OnMount())
	_ = a.Observe("el", nil)

	a.Tick(0.5)
	s := mustState(t, a, "el")
	if s.Progress != 0 {
		t.Errorf("progress = %v, want 0 while delayed", s.Progress)
	}
	if s.Phase != PhasePending {
		t.Errorf("phase = %s, want pending", s.Phase)
	}
	if s.Props != FadeUp.Hidden {
		t.Errorf("props = %+v, want Hidden", s.Props)
	}
}

func TestFiniteRepeatPlaysExtraCycles(t *testing.T) {
	spec := linearFade(1)
	spec.Repeat = 1
	a := NewAnimator()
	mustElement(t, a, "el", spec, OnMount())
	_ = a.Observe("el", nil)

	a.Tick(1.5)
	s := mustState(t, a, "el")
	if math.Abs(s.Props.Opacity-0.5) > 1e-4 {
		t.Errorf("Opacity = %f, want ~0.5 in second cycle", s.Props.Opacity)
	}
	if math.Abs(s.Progress-0.75) > 1e-9 {
		t.Errorf("progress = %f, want 0.75", s.Progress)
	}

	a.Tick(0.5)
	if s := mustState(t, a, "el"); s.Phase != PhaseVisible {
		t.Errorf("phase = %s, want visible after both cycles", s.Phase)
	}
}

func TestInfiniteLoopWrapsAndNeverCompletes(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "box", Float, OnMount())
	_ = a.Observe("box", nil)

	a.Tick(1)
	first := mustProps(t, a, "box")
	if math.Abs(first.Y+10) > 1e-3 {
		t.Errorf("Y = %f, want ~-10 halfway up", first.Y)
	}
	if math.Abs(first.Rotation-2.5) > 1e-3 {
		t.Errorf("Rotation = %f, want ~2.5", first.Rotation)
	}

	a.Tick(4)
	again := mustProps(t, a, "box")
	if math.Abs(again.Y-first.Y) > 1e-3 || math.Abs(again.Rotation-first.Rotation) > 1e-3 {
		t.Errorf("props after one full cycle = %+v, want %+v", again, first)
	}
	if prog, _ := a.Progress("box"); math.Abs(prog-0.25) > 1e-9 {
		t.Errorf("progress = %f, want 0.25 of the cycle", prog)
	}

	a.Tick(10000)
	s := mustState(t, a, "box")
	if s.Phase != PhaseLooping {
		t.Errorf("phase = %s, want looping", s.Phase)
	}
	if len(a.active) != 1 {
		t.Errorf("active = %d, want the loop to stay scheduled", len(a.active))
	}
}

func TestKeyframesSetHiddenAndVisible(t *testing.T) {
	spec, err := Pulse.validate("footer")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Hidden != Pulse.Keyframes[0] {
		t.Errorf("Hidden = %+v, want first keyframe", spec.Hidden)
	}
	if spec.Visible != Pulse.Keyframes[2] {
		t.Errorf("Visible = %+v, want last keyframe", spec.Visible)
	}
}

func TestTickZeroIsIdempotent(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "a", FadeUp, OnMount())
	mustElement(t, a, "b", Float, OnMount())
	mustElement(t, a, "c", ScaleIn.WithDelay(0.3), OnMount())
	for _, id := range []NodeID{"a", "b", "c"} {
		_ = a.Observe(id, nil)
	}
	a.Tick(0.1)
	a.Tick(0.27)

	before := a.Nodes()
	a.Tick(0)
	after := a.Nodes()
	if len(before) != len(after) {
		t.Fatalf("node count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("node %s changed on Tick(0): %+v -> %+v", before[i].ID, before[i], after[i])
		}
	}
}

func TestNegativeTickIgnored(t *testing.T) {
	a := NewAnimator()
	a.Tick(1)
	a.Tick(-5)
	a.Tick(math.NaN())
	if a.Now() != 1 {
		t.Errorf("Now = %v, want 1", a.Now())
	}
}

func TestLookupEase(t *testing.T) {
	if _, ok := LookupEase(""); !ok {
		t.Error("empty ease should resolve to the default")
	}
	if _, ok := LookupEase("easeOut"); !ok {
		t.Error("easeOut should resolve")
	}
	if _, ok := LookupEase("wobble"); ok {
		t.Error("wobble should not resolve")
	}
}

package reveal

import (
	"errors"
	"math"
	"testing"
)

var (
	hoverLift = &Transient{
		Target:   Props{Scale: 1.05, Y: -10},
		Mask:     MaskScale | MaskY,
		Duration: 0.3,
		Ease:     "linear",
	}
	tap = &Transient{Target: Props{Scale: 0.98}, Mask: MaskScale}
)

func newCard(t *testing.T, a *Animator, id NodeID) {
	t.Helper()
	err := a.RegisterElement(Element{ID: id, Motion: linearFade(1), Hover: hoverLift, Press: tap}, OnMount())
	if err != nil {
		t.Fatal(err)
	}
	_ = a.Observe(id, nil)
}

func TestTransientRoundTripRestoresExactly(t *testing.T) {
	a := NewAnimator()
	newCard(t, a, "card")
	a.Tick(0.37)

	before := mustProps(t, a, "card")
	if err := a.ApplyTransient("card", TransientHover); err != nil {
		t.Fatal(err)
	}
	if err := a.ApplyTransient("card", TransientPress); err != nil {
		t.Fatal(err)
	}
	if err := a.ClearTransient("card"); err != nil {
		t.Fatal(err)
	}
	if after := mustProps(t, a, "card"); after != before {
		t.Errorf("props after round trip = %+v, want %+v", after, before)
	}
}

func TestHoverEasesInOverRevealState(t *testing.T) {
	a := NewAnimator()
	newCard(t, a, "card")
	a.Tick(2)

	_ = a.ApplyTransient("card", TransientHover)
	a.Tick(0.15)
	p := mustProps(t, a, "card")
	if math.Abs(p.Scale-1.025) > 1e-4 {
		t.Errorf("Scale = %f, want ~1.025 halfway through hover", p.Scale)
	}
	if math.Abs(p.Y+5) > 1e-4 {
		t.Errorf("Y = %f, want ~-5", p.Y)
	}
	if p.Opacity != 1 {
		t.Errorf("Opacity = %f, unmasked field must keep reveal value", p.Opacity)
	}

	a.Tick(1)
	p = mustProps(t, a, "card")
	if math.Abs(p.Scale-1.05) > 1e-6 {
		t.Errorf("Scale = %f, want 1.05", p.Scale)
	}

	_ = a.ReleaseTransient("card", TransientHover)
	if p := mustProps(t, a, "card"); p != Identity {
		t.Errorf("props after unhover = %+v, want identity", p)
	}
}

func TestPressLayersOverHover(t *testing.T) {
	a := NewAnimator()
	newCard(t, a, "card")
	a.Tick(2)

	_ = a.ApplyTransient("card", TransientHover)
	a.Tick(1)
	_ = a.ApplyTransient("card", TransientPress)
	p := mustProps(t, a, "card")
	if math.Abs(p.Scale-0.98) > 1e-9 {
		t.Errorf("Scale = %f, want press 0.98 over hover", p.Scale)
	}
	if math.Abs(p.Y+10) > 1e-6 {
		t.Errorf("Y = %f, want hover -10 kept", p.Y)
	}

	_ = a.ReleaseTransient("card", TransientPress)
	if p := mustProps(t, a, "card"); math.Abs(p.Scale-1.05) > 1e-6 {
		t.Errorf("Scale = %f, want hover 1.05 after release", p.Scale)
	}
}

func TestTransientFollowsRunningReveal(t *testing.T) {
	a := NewAnimator()
	newCard(t, a, "card")
	_ = a.ApplyTransient("card", TransientHover)
	a.Tick(0.5)

	p := mustProps(t, a, "card")
	if math.Abs(p.Opacity-0.5) > 1e-4 {
		t.Errorf("Opacity = %f, reveal must keep running under the overlay", p.Opacity)
	}

	_ = a.ClearTransient("card")
	if p := mustProps(t, a, "card"); math.Abs(p.Y-20) > 1e-3 {
		t.Errorf("Y = %f, want reveal value ~20 immediately after clear", p.Y)
	}
}

func TestApplyMissingVariant(t *testing.T) {
	a := NewAnimator()
	mustElement(t, a, "plain", FadeUp, OnMount())
	err := a.ApplyTransient("plain", TransientHover)
	if !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("err = %v, want invalid spec", err)
	}
}

func TestInvalidTransientRejected(t *testing.T) {
	cases := map[string]*Transient{
		"no mask":          {Target: Identity},
		"negative":         {Target: Identity, Mask: MaskScale, Duration: -1},
		"unknown ease":     {Target: Identity, Mask: MaskScale, Ease: "wobble"},
		"unknown mask bit": {Target: Identity, Mask: 1 << 7},
	}
	for name, tr := range cases {
		a := NewAnimator()
		err := a.RegisterElement(Element{ID: "el", Motion: FadeUp, Press: tr}, OnMount())
		if !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("%s: err = %v, want invalid spec", name, err)
		}
	}
}

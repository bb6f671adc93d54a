package reveal

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transition is the clock of one node's reveal. A single gween tween from 0
// to 1 spans one path segment (the whole cycle for two-state specs, one
// keyframe interval otherwise) and is re-sampled at absolute animator time,
// so repeated or out-of-order samples never accumulate drift.
type transition struct {
	spec   *MotionSpec
	start  float64
	tween  *gween.Tween
	segs   int
	segDur float64
}

func newTransition(spec *MotionSpec, start float64, fn ease.TweenFunc) *transition {
	segs := 1
	if len(spec.Keyframes) > 1 {
		segs = len(spec.Keyframes) - 1
	}
	segDur := spec.Duration / float64(segs)
	return &transition{
		spec:   spec,
		start:  start,
		tween:  gween.New(0, 1, float32(segDur), fn),
		segs:   segs,
		segDur: segDur,
	}
}

// sample returns the interpolated props at time now, the linear progress in
// [0, 1] (of the whole play for finite specs, of the current cycle for
// infinite ones) and whether a finite transition has come to rest.
func (tr *transition) sample(now float64) (Props, float64, bool) {
	spec := tr.spec
	local := now - tr.start
	if local <= 0 {
		return spec.Hidden, 0, false
	}

	var pos, progress float64
	if spec.Infinite() {
		pos = math.Mod(local, spec.Duration)
		progress = pos / spec.Duration
	} else {
		total := spec.TotalDuration()
		if local >= total {
			return spec.Visible, 1, true
		}
		pos = math.Mod(local, spec.Duration)
		progress = local / total
	}
	return tr.at(pos), progress, false
}

// at evaluates the path at pos seconds into a cycle.
func (tr *transition) at(pos float64) Props {
	spec := tr.spec
	if tr.segs == 1 {
		eased, _ := tr.tween.Set(float32(pos))
		return lerpProps(spec.Hidden, spec.Visible, float64(eased))
	}
	seg := int(pos / tr.segDur)
	if seg >= tr.segs {
		seg = tr.segs - 1
	}
	eased, _ := tr.tween.Set(float32(pos - float64(seg)*tr.segDur))
	return lerpProps(spec.Keyframes[seg], spec.Keyframes[seg+1], float64(eased))
}

// overlayClock eases a transient variant in from the moment it was applied.
type overlayClock struct {
	spec  *transientSpec
	start float64
	tween *gween.Tween
}

func newOverlayClock(spec *transientSpec, start float64) *overlayClock {
	c := &overlayClock{spec: spec, start: start}
	if spec.Duration > 0 {
		c.tween = gween.New(0, 1, float32(spec.Duration), spec.fn)
	}
	return c
}

// weight returns the blend factor toward the variant target and whether the
// blend has settled.
func (c *overlayClock) weight(now float64) (float64, bool) {
	local := now - c.start
	if c.tween == nil {
		if local < 0 {
			return 0, false
		}
		return 1, true
	}
	eased, finished := c.tween.Set(float32(local))
	return float64(eased), finished
}

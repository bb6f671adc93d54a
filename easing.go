package reveal

import "github.com/tanema/gween/ease"

// DefaultEase is used when a MotionSpec or Transient leaves Ease empty.
const DefaultEase = "easeInOut"

// easings maps the identifiers accepted in MotionSpec.Ease to gween easing
// functions. Not synchronized: register custom curves before building specs.
var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"easeIn":     ease.InCubic,
	"easeOut":    ease.OutCubic,
	"easeInOut":  ease.InOutCubic,
	"sineIn":     ease.InSine,
	"sineOut":    ease.OutSine,
	"sineInOut":  ease.InOutSine,
	"circIn":     ease.InCirc,
	"circOut":    ease.OutCirc,
	"circInOut":  ease.InOutCirc,
	"backIn":     ease.InBack,
	"backOut":    ease.OutBack,
	"backInOut":  ease.InOutBack,
	"bounceOut":  ease.OutBounce,
	"elasticOut": ease.OutElastic,
	// Approximates a stiff spring's single overshoot.
	"spring": ease.OutBack,
}

// RegisterEase adds or replaces a named easing curve.
func RegisterEase(name string, fn ease.TweenFunc) {
	if name == "" || fn == nil {
		panic("reveal: RegisterEase needs a name and a function")
	}
	easings[name] = fn
}

// LookupEase resolves an easing identifier. The empty string resolves to
// DefaultEase.
func LookupEase(name string) (ease.TweenFunc, bool) {
	if name == "" {
		name = DefaultEase
	}
	fn, ok := easings[name]
	return fn, ok
}

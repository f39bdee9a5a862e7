package anim

// EasingFunc reshapes a playback's clock before the keyframe lookup. Both
// input and output run from 0 at the start of the timeline to 1 at its end.
//
// The burst keyframes already encode their own rhythm, so easing is applied
// on top of them: a timeline eased out reaches its later keys sooner.
type EasingFunc func(t float64) float64

var (
	// EaseLinear leaves the clock alone. The keyframe times alone decide
	// when the circle, lines and icon hit each key.
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseInQuad starts slow, holding the first keys longer.
	EaseInQuad EasingFunc = func(t float64) float64 { return t * t }

	// EaseOutQuad front-loads the burst.
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	}

	// EaseOutCubic is a stronger EaseOutQuad.
	EaseOutCubic EasingFunc = func(t float64) float64 {
		u := 1 - t
		return 1 - u*u*u
	}

	// EaseOutBack runs past the end key and settles back. On the icon
	// timeline this adds an extra wobble to the bounce.
	EaseOutBack EasingFunc = func(t float64) float64 {
		const overshoot = 1.70158
		u := t - 1
		return 1 + (overshoot+1)*u*u*u + overshoot*u*u
	}
)

// easings maps config names to curves. The empty name is linear.
var easings = map[string]EasingFunc{
	"":               EaseLinear,
	"linear":         EaseLinear,
	"ease-in":        EaseInQuad,
	"ease-out":       EaseOutQuad,
	"ease":           EaseInOutQuad,
	"ease-in-out":    EaseInOutQuad,
	"ease-out-cubic": EaseOutCubic,
	"back":           EaseOutBack,
}

// EasingByName returns the curve registered under name, or nil.
func EasingByName(name string) EasingFunc {
	return easings[name]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

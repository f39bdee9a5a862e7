package favorite

import (
	"time"

	"github.com/agiangrant/favorite/anim"
)

// Default colors.
var (
	DefaultImageColorOn  = anim.RGB(255, 172, 51)
	DefaultImageColorOff = anim.RGB(136, 153, 166)
	DefaultCircleColor   = anim.RGB(155, 172, 51)
	DefaultLineColor     = anim.RGB(250, 120, 68)
)

const (
	// DefaultDuration is the length of the longest timeline.
	DefaultDuration = time.Second

	// DefaultDimAlpha is the whole-widget alpha while a touch is held down.
	DefaultDimAlpha = 0.4
)

// Theme groups the tunable appearance of a Button. It is what the config
// file loads and what hot reload re-applies. Zero fields mean "keep the
// current value" when a theme is applied.
type Theme struct {
	ImageColorOn  anim.Color
	ImageColorOff anim.Color
	CircleColor   anim.Color
	LineColor     anim.Color

	Duration  time.Duration
	Easing    string             // anim.EasingByName key; empty means linear
	Fractions map[string]float64 // overrides DefaultFractions by timeline name

	DimAlpha    float64
	ToggleOnTap *bool
}

// DefaultTheme returns the stock look of the button.
func DefaultTheme() Theme {
	return Theme{
		ImageColorOn:  DefaultImageColorOn,
		ImageColorOff: DefaultImageColorOff,
		CircleColor:   DefaultCircleColor,
		LineColor:     DefaultLineColor,
		Duration:      DefaultDuration,
		DimAlpha:      DefaultDimAlpha,
		ToggleOnTap:   Bool(true),
	}
}

// Bool returns a pointer to v, for Theme.ToggleOnTap.
func Bool(v bool) *bool {
	return &v
}

// easing resolves the theme's easing name, falling back to linear.
func (t Theme) easing() anim.EasingFunc {
	if fn := anim.EasingByName(t.Easing); fn != nil {
		return fn
	}
	return anim.EaseLinear
}

package favorite

import (
	"github.com/agiangrant/favorite/anim"
	"github.com/agiangrant/favorite/geometry"
)

// Timeline names, also used as keys for fraction overrides in a Theme.
const (
	TimelineCircle          = "circle-transform"
	TimelineCircleMask      = "circle-mask-transform"
	TimelineLineStrokeStart = "line-stroke-start"
	TimelineLineStrokeEnd   = "line-stroke-end"
	TimelineLineOpacity     = "line-opacity"
	TimelineImage           = "image-transform"
)

// TimelineNames lists every timeline in the order they are started.
var TimelineNames = []string{
	TimelineCircle,
	TimelineCircleMask,
	TimelineImage,
	TimelineLineStrokeStart,
	TimelineLineStrokeEnd,
	TimelineLineOpacity,
}

// DefaultFractions is each timeline's share of the global duration.
var DefaultFractions = map[string]float64{
	TimelineCircle:          0.333, // 10 frames
	TimelineCircleMask:      0.333,
	TimelineLineStrokeStart: 0.6, // 18 frames
	TimelineLineStrokeEnd:   0.6,
	TimelineLineOpacity:     1.0, // 30 frames
	TimelineImage:           1.0,
}

// Timelines is the full set of timelines for one geometry. It is rebuilt
// whenever the geometry changes.
type Timelines struct {
	Circle          *anim.Timeline
	CircleMask      *anim.Timeline
	Image           *anim.Timeline
	LineStrokeStart *anim.Timeline
	LineStrokeEnd   *anim.Timeline
	LineOpacity     *anim.Timeline
}

// All returns the timelines in start order.
func (t Timelines) All() []*anim.Timeline {
	return []*anim.Timeline{t.Circle, t.CircleMask, t.Image, t.LineStrokeStart, t.LineStrokeEnd, t.LineOpacity}
}

// ByName returns the named timeline, or nil.
func (t Timelines) ByName(name string) *anim.Timeline {
	for _, tl := range t.All() {
		if tl.Name == name {
			return tl
		}
	}
	return nil
}

// BuildTimelines creates every timeline for the given geometry. fractions
// overrides DefaultFractions per name; easing applies to all of them.
func BuildTimelines(shape geometry.Shape, fractions map[string]float64, easing anim.EasingFunc) Timelines {
	frac := func(name string) float64 {
		if f, ok := fractions[name]; ok && f > 0 {
			return f
		}
		return DefaultFractions[name]
	}

	t := Timelines{
		Circle:          anim.NewTimeline(TimelineCircle, frac(TimelineCircle), circleTrack()),
		CircleMask:      anim.NewTimeline(TimelineCircleMask, frac(TimelineCircleMask), circleMaskTrack(shape)),
		Image:           anim.NewTimeline(TimelineImage, frac(TimelineImage), imageTrack()),
		LineStrokeStart: anim.NewTimeline(TimelineLineStrokeStart, frac(TimelineLineStrokeStart), lineStrokeStartTrack()),
		LineStrokeEnd:   anim.NewTimeline(TimelineLineStrokeEnd, frac(TimelineLineStrokeEnd), lineStrokeEndTrack()),
		LineOpacity:     anim.NewTimeline(TimelineLineOpacity, frac(TimelineLineOpacity), lineOpacityTrack()),
	}
	for _, tl := range t.All() {
		tl.Easing = easing
	}
	return t
}

// ============================================================================
// Keyframe tables
// ============================================================================

// Key times are fractions of a fixed frame count (n/10, n/18, n/30), which
// gives irregular easing without a named curve.

func circleTrack() *anim.Track {
	return anim.MustTrack(anim.PropertyTransform,
		[]float64{
			0.0, //  0/10
			0.1, //  1/10
			0.2, //  2/10
			0.3, //  3/10
			0.4, //  4/10
			0.5, //  5/10
			0.6, //  6/10
			1.0, // 10/10
		},
		[]anim.Value{
			anim.Scale(0.0),
			anim.Scale(0.5),
			anim.Scale(1.0),
			anim.ScaleXY(1.2, 1.0),
			anim.Scale(1.3),
			anim.Scale(1.37),
			anim.Scale(1.4),
			anim.Scale(1.4),
		})
}

// circleMaskTrack opens the hole in the circle mask. The hole starts at
// geometry.MaskHoleRadius, so scales are proportional to the icon size.
// 1/10 and 8/10 have no key.
func circleMaskTrack(shape geometry.Shape) *anim.Track {
	w, h := shape.ImageFrame.Width, shape.ImageFrame.Height
	c := shape.Center
	scale := func(k float64) anim.Value {
		return anim.ScaleAbout(w*k, h*k, c.X, c.Y)
	}

	return anim.MustTrack(anim.PropertyTransform,
		[]float64{
			0.0, //  0/10
			0.2, //  2/10
			0.3, //  3/10
			0.4, //  4/10
			0.5, //  5/10
			0.6, //  6/10
			0.7, //  7/10
			0.9, //  9/10
			1.0, // 10/10
		},
		[]anim.Value{
			anim.Identity,
			anim.Identity,
			scale(1.25),
			scale(2.688),
			scale(3.923),
			scale(4.375),
			scale(4.731),
			scale(5.0),
			scale(5.0),
		})
}

func lineStrokeStartTrack() *anim.Track {
	t, err := anim.ScalarTrack(anim.PropertyStrokeStart,
		[]float64{
			0.0,   //  0/18
			0.056, //  1/18
			0.111, //  2/18
			0.167, //  3/18
			0.222, //  4/18
			0.278, //  5/18
			0.333, //  6/18
			0.389, //  7/18
			0.444, //  8/18
			0.944, // 17/18
			1.0,   // 18/18
		},
		[]float64{0.0, 0.0, 0.18, 0.2, 0.26, 0.32, 0.4, 0.6, 0.71, 0.89, 0.92})
	if err != nil {
		panic(err)
	}
	return t
}

func lineStrokeEndTrack() *anim.Track {
	t, err := anim.ScalarTrack(anim.PropertyStrokeEnd,
		[]float64{
			0.0,   //  0/18
			0.056, //  1/18
			0.111, //  2/18
			0.167, //  3/18
			0.222, //  4/18
			0.278, //  5/18
			0.944, // 17/18
			1.0,   // 18/18
		},
		[]float64{0.0, 0.0, 0.32, 0.48, 0.64, 0.68, 0.92, 0.92})
	if err != nil {
		panic(err)
	}
	return t
}

// lineOpacityTrack fades the lines out by 17/30 and holds at zero.
func lineOpacityTrack() *anim.Track {
	t, err := anim.ScalarTrack(anim.PropertyOpacity,
		[]float64{
			0.0,   //  0/30
			0.4,   // 12/30
			0.567, // 17/30
			1.0,   // 30/30
		},
		[]float64{1.0, 1.0, 0.0, 0.0})
	if err != nil {
		panic(err)
	}
	return t
}

func imageTrack() *anim.Track {
	return anim.MustTrack(anim.PropertyTransform,
		[]float64{
			0.0,   //  0/30
			0.1,   //  3/30
			0.3,   //  9/30
			0.333, // 10/30
			0.367, // 11/30
			0.467, // 14/30
			0.5,   // 15/30
			0.533, // 16/30
			0.567, // 17/30
			0.667, // 20/30
			0.7,   // 21/30
			0.733, // 22/30
			0.833, // 25/30
			0.867, // 26/30
			0.9,   // 27/30
			0.967, // 29/30
			1.0,   // 30/30
		},
		[]anim.Value{
			anim.Scale(0.0),
			anim.Scale(0.0),
			anim.Scale(1.2),
			anim.Scale(1.25),
			anim.Scale(1.2),
			anim.Scale(0.9),
			anim.Scale(0.875),
			anim.Scale(0.875),
			anim.Scale(0.9),
			anim.Scale(1.013),
			anim.Scale(1.025),
			anim.Scale(1.013),
			anim.Scale(0.96),
			anim.Scale(0.95),
			anim.Scale(0.96),
			anim.Scale(0.99),
			anim.Identity,
		})
}

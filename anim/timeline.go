package anim

import (
	"math"
	"time"
)

// Timeline is a named bundle of tracks that play back in lockstep. Its
// duration is a fixed fraction of a global duration chosen at playback time.
type Timeline struct {
	Name     string
	Fraction float64
	Tracks   []*Track
	Easing   EasingFunc // nil means linear
}

// NewTimeline creates a timeline. A non-positive fraction is treated as 1.
func NewTimeline(name string, fraction float64, tracks ...*Track) *Timeline {
	if fraction <= 0 {
		fraction = 1
	}
	return &Timeline{
		Name:     name,
		Fraction: fraction,
		Tracks:   tracks,
	}
}

// Duration scales the global duration by the timeline's fraction.
func (tl *Timeline) Duration(global time.Duration) time.Duration {
	return time.Duration(math.Round(tl.Fraction * float64(global)))
}

// Track returns the track animating the given property, or nil.
func (tl *Timeline) Track(p Property) *Track {
	for _, t := range tl.Tracks {
		if t.Property() == p {
			return t
		}
	}
	return nil
}

// Sample is one track's value at a playback position.
type Sample struct {
	Property Property
	Value    Value
}

// Sample evaluates every track at normalized position pos after easing.
func (tl *Timeline) Sample(pos float64) []Sample {
	pos = tl.easing()(clamp(pos, 0, 1))
	out := make([]Sample, len(tl.Tracks))
	for i, t := range tl.Tracks {
		out[i] = Sample{Property: t.Property(), Value: t.At(pos)}
	}
	return out
}

// Bind pairs every track of the timeline with a target, producing the
// bindings a Player starts together.
func (tl *Timeline) Bind(target Target, global time.Duration) []Binding {
	d := tl.Duration(global)
	out := make([]Binding, len(tl.Tracks))
	for i, t := range tl.Tracks {
		out[i] = Binding{
			Target:   target,
			Track:    t,
			Duration: d,
			Easing:   tl.easing(),
		}
	}
	return out
}

func (tl *Timeline) easing() EasingFunc {
	if tl.Easing == nil {
		return EaseLinear
	}
	return tl.Easing
}

package favorite

import (
	"math"
	"testing"

	"github.com/agiangrant/favorite/anim"
	"github.com/agiangrant/favorite/geometry"
)

func TestBuildTimelinesShape(t *testing.T) {
	tl := BuildTimelines(geometry.Build(geometry.R(0, 0, 80, 80)), nil, nil)

	tests := []struct {
		name     string
		fraction float64
		keys     int
		property anim.Property
	}{
		{TimelineCircle, 0.333, 8, anim.PropertyTransform},
		{TimelineCircleMask, 0.333, 9, anim.PropertyTransform},
		{TimelineLineStrokeStart, 0.6, 11, anim.PropertyStrokeStart},
		{TimelineLineStrokeEnd, 0.6, 8, anim.PropertyStrokeEnd},
		{TimelineLineOpacity, 1.0, 4, anim.PropertyOpacity},
		{TimelineImage, 1.0, 17, anim.PropertyTransform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeline := tl.ByName(tt.name)
			if timeline == nil {
				t.Fatal("timeline missing")
			}
			if timeline.Fraction != tt.fraction {
				t.Errorf("Fraction = %v, want %v", timeline.Fraction, tt.fraction)
			}
			if len(timeline.Tracks) != 1 {
				t.Fatalf("timeline has %d tracks, want 1", len(timeline.Tracks))
			}
			track := timeline.Tracks[0]
			if track.Len() != tt.keys {
				t.Errorf("track has %d keys, want %d", track.Len(), tt.keys)
			}
			if track.Property() != tt.property {
				t.Errorf("track animates %s, want %s", track.Property(), tt.property)
			}
		})
	}

	if len(tl.All()) != len(TimelineNames) {
		t.Errorf("All() returned %d timelines, want %d", len(tl.All()), len(TimelineNames))
	}
}

func TestBuildTimelinesFractionOverrides(t *testing.T) {
	tl := BuildTimelines(geometry.Build(geometry.R(0, 0, 40, 40)),
		map[string]float64{TimelineCircle: 0.5, TimelineImage: -1}, anim.EaseOutQuad)

	if tl.Circle.Fraction != 0.5 {
		t.Errorf("circle fraction = %v, want override 0.5", tl.Circle.Fraction)
	}
	if tl.Image.Fraction != 1.0 {
		t.Errorf("image fraction = %v, invalid override should keep 1.0", tl.Image.Fraction)
	}
	for _, timeline := range tl.All() {
		if timeline.Easing == nil {
			t.Errorf("%s has no easing", timeline.Name)
		}
	}
}

func TestCircleTrackNonUniformKey(t *testing.T) {
	tl := BuildTimelines(geometry.Build(geometry.R(0, 0, 80, 80)), nil, nil)
	v := tl.Circle.Tracks[0].At(0.3).(anim.Transform)
	if v.SX != 1.2 || v.SY != 1.0 {
		t.Errorf("circle at 3/10 = (%v, %v), want (1.2, 1.0)", v.SX, v.SY)
	}
}

func TestCircleMaskKeepsLiteralKeys(t *testing.T) {
	shape := geometry.Build(geometry.R(0, 0, 80, 40))
	track := BuildTimelines(shape, nil, nil).CircleMask.Tracks[0]

	wantTimes := []float64{0, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.9, 1}
	wantK := []float64{0, 0, 1.25, 2.688, 3.923, 4.375, 4.731, 5, 5}

	for i, want := range wantTimes {
		time, v := track.Key(i)
		if time != want {
			t.Errorf("key %d time = %v, want %v", i, time, want)
		}
		tr := v.(anim.Transform)
		if wantK[i] == 0 {
			if tr != anim.Identity {
				t.Errorf("key %d = %+v, want identity", i, tr)
			}
			continue
		}
		if sx := shape.ImageFrame.Width * wantK[i]; math.Abs(tr.SX-sx) > 1e-9 {
			t.Errorf("key %d SX = %v, want %v", i, tr.SX, sx)
		}
		if sy := shape.ImageFrame.Height * wantK[i]; math.Abs(tr.SY-sy) > 1e-9 {
			t.Errorf("key %d SY = %v, want %v", i, tr.SY, sy)
		}
		// Scaling happens about the icon center.
		x, y := tr.Apply(shape.Center.X, shape.Center.Y, 0, 0)
		if math.Abs(x-shape.Center.X) > 1e-9 || math.Abs(y-shape.Center.Y) > 1e-9 {
			t.Errorf("key %d moves the center to (%v, %v)", i, x, y)
		}
	}

	// The hole fully opens to half the icon width.
	_, last := track.Key(track.Len() - 1)
	if r := geometry.MaskHoleRadius * last.(anim.Transform).SX; math.Abs(r-shape.ImageFrame.Width/2) > 1e-9 {
		t.Errorf("final hole radius = %v, want %v", r, shape.ImageFrame.Width/2)
	}
}

func TestLineOpacityHoldsAfterFade(t *testing.T) {
	track := BuildTimelines(geometry.Build(geometry.R(0, 0, 80, 80)), nil, nil).LineOpacity.Tracks[0]

	if got := track.ScalarAt(0.3); got != 1 {
		t.Errorf("opacity at 0.3 = %v, want 1", got)
	}
	for _, pos := range []float64{0.567, 0.8, 1} {
		if got := track.ScalarAt(pos); got != 0 {
			t.Errorf("opacity at %v = %v, want 0", pos, got)
		}
	}
}

func TestImageTrackEndsAtIdentity(t *testing.T) {
	track := BuildTimelines(geometry.Build(geometry.R(0, 0, 80, 80)), nil, nil).Image.Tracks[0]
	if got := track.At(1); got != anim.Value(anim.Identity) {
		t.Errorf("image at 1 = %+v, want identity", got)
	}
	if got := track.At(0.333).(anim.Transform); got.SX != 1.25 {
		t.Errorf("image peak = %v, want 1.25", got.SX)
	}
}

package favorite

import (
	"fmt"
	"image"
	"time"

	"github.com/agiangrant/favorite/anim"
	"github.com/agiangrant/favorite/geometry"
)

// Layer names. Lines are named with LineTarget. A button plays its
// bindings on its own scoped copies of these names, see Button.Target.
const (
	TargetCircle     anim.Target = "circle"
	TargetCircleMask anim.Target = "circle-mask"
	TargetImage      anim.Target = "image"
)

// LineTarget returns the layer name of line i.
func LineTarget(i int) anim.Target {
	return anim.Target(fmt.Sprintf("line-%d", i))
}

// LayerNames returns every layer name in z-order.
func LayerNames() []anim.Target {
	names := []anim.Target{TargetCircle, TargetCircleMask}
	for i := 0; i < geometry.LineCount; i++ {
		names = append(names, LineTarget(i))
	}
	return append(names, TargetImage)
}

// Layer holds the static (non-animated) properties of one visual primitive.
// Render surfaces draw from a Snapshot, where active playbacks override these.
type Layer struct {
	Name   anim.Target
	Bounds geometry.Rect
	ZOrder int // Compositing order (lower = further back)

	// Transforms scale about Anchor. Rotation is applied first, about the
	// same point, and is never animated.
	Anchor    geometry.Point
	Transform anim.Transform
	Rotation  float64

	Path        geometry.Path
	FillColor   anim.Color
	StrokeColor anim.Color
	LineWidth   float64
	StrokeStart float64
	StrokeEnd   float64
	Opacity     float64
}

// apply overrides one property with an interpolated value.
func (l *Layer) apply(p anim.Property, v anim.Value) {
	switch p {
	case anim.PropertyTransform:
		if tr, ok := v.(anim.Transform); ok {
			l.Transform = tr
		}
	case anim.PropertyStrokeStart:
		if s, ok := v.(anim.Scalar); ok {
			l.StrokeStart = float64(s)
		}
	case anim.PropertyStrokeEnd:
		if s, ok := v.(anim.Scalar); ok {
			l.StrokeEnd = float64(s)
		}
	case anim.PropertyOpacity:
		if s, ok := v.(anim.Scalar); ok {
			l.Opacity = float64(s)
		}
	}
}

// layerSet is the button's layer tree, replaced as a whole on rebuild.
type layerSet struct {
	circle     Layer
	circleMask Layer
	lines      [geometry.LineCount]Layer
	image      Layer
}

// lineWidth is the stroke width of each radiating line.
const lineWidth = 1.25

// buildLayers creates fresh layers for shape with the given colors.
func buildLayers(shape geometry.Shape, circleColor, lineColor, imageFill anim.Color) layerSet {
	ls := layerSet{
		circle: Layer{
			Name:      TargetCircle,
			Bounds:    shape.ImageFrame,
			ZOrder:    0,
			Anchor:    shape.Center,
			Transform: anim.Scale(0),
			Path:      shape.CirclePath,
			FillColor: circleColor,
			Opacity:   1,
		},
		// The mask's transform track carries its own translation, so it
		// scales about the origin.
		circleMask: Layer{
			Name:      TargetCircleMask,
			Bounds:    shape.ImageFrame,
			ZOrder:    1,
			Transform: anim.Identity,
			Path:      shape.MaskPath,
			Opacity:   1,
		},
		image: Layer{
			Name:      TargetImage,
			Bounds:    shape.ImageFrame,
			ZOrder:    2 + geometry.LineCount,
			Anchor:    shape.Center,
			Transform: anim.Identity,
			Path:      shape.ImagePath,
			FillColor: imageFill,
			Opacity:   1,
		},
	}
	for i := range ls.lines {
		ls.lines[i] = Layer{
			Name:        LineTarget(i),
			Bounds:      shape.LineFrame,
			ZOrder:      2 + i,
			Anchor:      shape.Center,
			Transform:   anim.Identity,
			Rotation:    shape.LineAngles[i],
			Path:        shape.LinePath,
			StrokeColor: lineColor,
			LineWidth:   lineWidth,
		}
	}
	return ls
}

// byName returns the layer called name, or nil.
func (ls *layerSet) byName(name anim.Target) *Layer {
	switch name {
	case TargetCircle:
		return &ls.circle
	case TargetCircleMask:
		return &ls.circleMask
	case TargetImage:
		return &ls.image
	}
	for i := range ls.lines {
		if ls.lines[i].Name == name {
			return &ls.lines[i]
		}
	}
	return nil
}

// ============================================================================
// Snapshot
// ============================================================================

// Snapshot is the button's visual state at one instant: static layer values
// with every active playback applied.
type Snapshot struct {
	Time     time.Time
	Shape    geometry.Shape
	Icon     image.Image
	Selected bool
	Alpha    float64 // whole-widget alpha from touch feedback

	Circle     Layer
	CircleMask Layer
	Lines      [geometry.LineCount]Layer
	Image      Layer
}

// Layers returns the snapshot's layers in z-order.
func (s *Snapshot) Layers() []Layer {
	out := []Layer{s.Circle, s.CircleMask}
	out = append(out, s.Lines[:]...)
	return append(out, s.Image)
}

// Layer returns a copy of the layer called name.
func (s *Snapshot) Layer(name anim.Target) (Layer, bool) {
	for _, l := range s.Layers() {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

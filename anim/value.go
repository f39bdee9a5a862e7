package anim

import (
	"fmt"
	"math"
)

// Property identifies which attribute of a layer a track animates.
type Property uint8

const (
	PropertyTransform Property = iota + 1
	PropertyStrokeStart
	PropertyStrokeEnd
	PropertyOpacity
)

// String returns the key the property is registered under on a layer.
func (p Property) String() string {
	switch p {
	case PropertyTransform:
		return "transform"
	case PropertyStrokeStart:
		return "strokeStart"
	case PropertyStrokeEnd:
		return "strokeEnd"
	case PropertyOpacity:
		return "opacity"
	default:
		return fmt.Sprintf("property(%d)", uint8(p))
	}
}

// accepts reports whether v is the value type animated by this property.
func (p Property) accepts(v Value) bool {
	switch v.(type) {
	case Scalar:
		return p == PropertyStrokeStart || p == PropertyStrokeEnd || p == PropertyOpacity
	case Transform:
		return p == PropertyTransform
	default:
		return false
	}
}

// Value is a keyframe value that can be interpolated toward another value
// of the same concrete type. f is the 0-1 fraction between the two keys.
type Value interface {
	Lerp(to Value, f float64) Value
}

// Scalar is a plain float value (stroke progress, opacity).
type Scalar float64

// Lerp interpolates linearly. A mismatched target type holds the current value.
func (s Scalar) Lerp(to Value, f float64) Value {
	t, ok := to.(Scalar)
	if !ok {
		return s
	}
	return s + (t-s)*Scalar(f)
}

// Transform is a 2D scale with an optional translation. Points are mapped as
// anchor + S*(p-anchor) + T, where the anchor is supplied by the layer.
type Transform struct {
	SX, SY float64
	TX, TY float64
}

// Identity is the transform that leaves every point in place.
var Identity = Transform{SX: 1, SY: 1}

// Scale returns a uniform scale transform.
func Scale(s float64) Transform {
	return Transform{SX: s, SY: s}
}

// ScaleXY returns a non-uniform scale transform.
func ScaleXY(sx, sy float64) Transform {
	return Transform{SX: sx, SY: sy}
}

// ScaleAbout returns a transform that scales about (cx, cy) when applied
// with an anchor at the origin.
func ScaleAbout(sx, sy, cx, cy float64) Transform {
	return Transform{SX: sx, SY: sy, TX: cx * (1 - sx), TY: cy * (1 - sy)}
}

// Lerp interpolates each component independently.
func (tr Transform) Lerp(to Value, f float64) Value {
	t, ok := to.(Transform)
	if !ok {
		return tr
	}
	return Transform{
		SX: tr.SX + (t.SX-tr.SX)*f,
		SY: tr.SY + (t.SY-tr.SY)*f,
		TX: tr.TX + (t.TX-tr.TX)*f,
		TY: tr.TY + (t.TY-tr.TY)*f,
	}
}

// Apply maps (x, y) through the transform about the given anchor.
func (tr Transform) Apply(x, y, ax, ay float64) (float64, float64) {
	return ax + tr.SX*(x-ax) + tr.TX, ay + tr.SY*(y-ay) + tr.TY
}

// Invert maps a transformed point back to layer space. ok is false when the
// transform collapses an axis and nothing is visible.
func (tr Transform) Invert(x, y, ax, ay float64) (float64, float64, bool) {
	if math.Abs(tr.SX) < 1e-9 || math.Abs(tr.SY) < 1e-9 {
		return 0, 0, false
	}
	return ax + (x-ax-tr.TX)/tr.SX, ay + (y-ay-tr.TY)/tr.SY, true
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// Hex returns the color packed as 0xRRGGBBAA.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// String formats the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", c.Hex())
}

// Lerp interpolates each channel.
func (c Color) Lerp(to Value, f float64) Value {
	t, ok := to.(Color)
	if !ok {
		return c
	}
	return lerpColor(c, t, f)
}

// lerpColor linearly interpolates between two RGBA colors.
func lerpColor(from, to Color, t float64) Color {
	return Color{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
		A: lerpChannel(from.A, to.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

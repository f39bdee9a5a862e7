// Package term draws favorite button snapshots into a tcell screen.
//
// Each terminal cell holds two square pixels using the upper half block:
// the foreground paints the top pixel and the background the bottom one.
package term

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/agiangrant/favorite"
	"github.com/agiangrant/favorite/anim"
	"github.com/agiangrant/favorite/geometry"
)

const halfBlock = '▀'

// DefaultBackground is the color behind the button.
var DefaultBackground = anim.RGB(21, 32, 43)

// Option configures a Surface.
type Option func(*Surface)

// WithOrigin sets the top-left cell the button is drawn at.
func WithOrigin(x, y int) Option {
	return func(s *Surface) {
		s.origin = image.Pt(x, y)
	}
}

// WithScale sets how many pixels one frame unit covers.
func WithScale(scale float64) Option {
	return func(s *Surface) {
		if scale > 0 {
			s.scale = scale
		}
	}
}

// WithBackground sets the color behind the button.
func WithBackground(c anim.Color) Option {
	return func(s *Surface) {
		s.background = c
	}
}

// Surface renders snapshots into a region of a tcell screen.
type Surface struct {
	screen     tcell.Screen
	origin     image.Point
	scale      float64
	background anim.Color
}

// New creates a surface drawing into screen.
func New(screen tcell.Screen, opts ...Option) *Surface {
	s := &Surface{
		screen:     screen,
		scale:      1,
		background: DefaultBackground,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FitScale returns the largest scale at which frame fits in cols x rows
// cells.
func FitScale(frame geometry.Rect, cols, rows int) float64 {
	if frame.Empty() || cols <= 0 || rows <= 0 {
		return 1
	}
	return math.Min(float64(cols)/frame.Width, float64(2*rows)/frame.Height)
}

// Scale returns the pixels per frame unit.
func (s *Surface) Scale() float64 { return s.scale }

// SetScale changes the pixels per frame unit, for instance after a resize.
func (s *Surface) SetScale(scale float64) {
	if scale > 0 {
		s.scale = scale
	}
}

// SetOrigin moves the top-left cell.
func (s *Surface) SetOrigin(x, y int) { s.origin = image.Pt(x, y) }

// Size returns the number of cells a frame occupies.
func (s *Surface) Size(frame geometry.Rect) (cols, rows int) {
	if frame.Empty() {
		return 0, 0
	}
	cols = int(math.Ceil(frame.Width * s.scale))
	rows = int(math.Ceil(frame.Height * s.scale / 2))
	return cols, rows
}

// Draw renders snap. The caller is responsible for Show.
func (s *Surface) Draw(snap *favorite.Snapshot) {
	cols, rows := s.Size(snap.Shape.Frame)
	pixel := 1 / s.scale
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := Shade(snap, s.sample(cx, 2*cy), s.background, pixel)
			bottom := Shade(snap, s.sample(cx, 2*cy+1), s.background, pixel)
			style := tcell.StyleDefault.Foreground(Color(top)).Background(Color(bottom))
			s.screen.SetContent(s.origin.X+cx, s.origin.Y+cy, halfBlock, nil, style)
		}
	}
}

// sample returns the center of pixel (px, py) in frame units.
func (s *Surface) sample(px, py int) geometry.Point {
	return geometry.Point{
		X: (float64(px) + 0.5) / s.scale,
		Y: (float64(py) + 0.5) / s.scale,
	}
}

// Color converts to a true-color tcell color.
func Color(c anim.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Shade composites every layer of snap at p (frame units) over bg. pixel is
// the size of one pixel in frame units; strokes are never drawn thinner.
func Shade(snap *favorite.Snapshot, p geometry.Point, bg anim.Color, pixel float64) anim.Color {
	dst := bg

	if circleCovers(snap, p) {
		dst = over(dst, snap.Circle.FillColor, snap.Circle.Opacity)
	}
	for i := range snap.Lines {
		if cov := strokeCoverage(&snap.Lines[i], p, pixel); cov > 0 {
			dst = over(dst, snap.Lines[i].StrokeColor, cov)
		}
	}
	if cov := iconCoverage(snap, p); cov > 0 {
		dst = over(dst, snap.Image.FillColor, cov)
	}

	return over(bg, dst, snap.Alpha)
}

// over blends src onto dst with coverage a.
func over(dst, src anim.Color, a float64) anim.Color {
	a *= float64(src.A) / 0xFF
	if a <= 0 {
		return dst
	}
	if a >= 1 {
		return anim.Color{R: src.R, G: src.G, B: src.B, A: dst.A}
	}
	c := dst.Lerp(src, a).(anim.Color)
	c.A = dst.A
	return c
}

// toLayer maps p into the layer's untransformed coordinates. It fails when
// the layer's transform collapses to a point.
func toLayer(l *favorite.Layer, p geometry.Point) (geometry.Point, bool) {
	x, y, ok := l.Transform.Invert(p.X, p.Y, l.Anchor.X, l.Anchor.Y)
	if !ok {
		return geometry.Point{}, false
	}
	q := geometry.Point{X: x, Y: y}
	if l.Rotation != 0 {
		q = geometry.Rotate(q, l.Anchor, -l.Rotation)
	}
	return q, true
}

// circleCovers reports whether the circle is filled at p once its mask has
// been applied. The mask shows the circle inside its rectangle and outside
// its growing hole.
func circleCovers(snap *favorite.Snapshot, p geometry.Point) bool {
	c := &snap.Circle
	if c.Opacity <= 0 {
		return false
	}
	q, ok := toLayer(c, p)
	if !ok || !c.Path.Contains(q) {
		return false
	}
	m := &snap.CircleMask
	mq, ok := toLayer(m, p)
	return ok && m.Path.Contains(mq)
}

func strokeCoverage(l *favorite.Layer, p geometry.Point, pixel float64) float64 {
	if l.Opacity <= 0 || l.StrokeEnd <= l.StrokeStart {
		return 0
	}
	from, to, ok := l.Path.Segment()
	if !ok {
		return 0
	}
	q, ok := toLayer(l, p)
	if !ok {
		return 0
	}
	a := geometry.PointAt(from, to, l.StrokeStart)
	b := geometry.PointAt(from, to, l.StrokeEnd)

	// Round caps: distance to the segment, not to its infinite line.
	half := math.Max(l.LineWidth/2, pixel/2)
	if distToSegment(q, a, b) > half {
		return 0
	}
	return l.Opacity
}

func distToSegment(p, a, b geometry.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return geometry.Length(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return geometry.Length(p, geometry.PointAt(a, b, t))
}

// iconCoverage samples the icon's alpha at p, stretched over the image
// layer's bounds.
func iconCoverage(snap *favorite.Snapshot, p geometry.Point) float64 {
	l := &snap.Image
	if l.Opacity <= 0 || snap.Icon == nil {
		return 0
	}
	bounds := snap.Icon.Bounds()
	frame := l.Bounds
	if bounds.Empty() || frame.Empty() {
		return 0
	}
	q, ok := toLayer(l, p)
	if !ok || !frame.Contains(q) {
		return 0
	}

	u := bounds.Min.X + int((q.X-frame.X)/frame.Width*float64(bounds.Dx()))
	v := bounds.Min.Y + int((q.Y-frame.Y)/frame.Height*float64(bounds.Dy()))
	u = min(u, bounds.Max.X-1)
	v = min(v, bounds.Max.Y-1)
	_, _, _, a := snap.Icon.At(u, v).RGBA()
	return float64(a) / 0xFFFF * l.Opacity
}

package geometry

import "math"

// FillRule decides how overlapping closed primitives combine.
type FillRule int

const (
	// FillNonZero fills any point covered by at least one primitive.
	FillNonZero FillRule = iota
	// FillEvenOdd fills points covered by an odd number of primitives.
	FillEvenOdd
)

// PrimitiveKind identifies a path component.
type PrimitiveKind int

const (
	KindRect PrimitiveKind = iota
	KindEllipse
	KindSegment
)

// Primitive is one component of a Path. Rect and Ellipse are closed and use
// Bounds; Segment is open and uses From/To.
type Primitive struct {
	Kind     PrimitiveKind
	Bounds   Rect
	From, To Point
}

// Path is a small set of primitives with a fill rule. It covers exactly the
// shapes the button draws: rectangles, ellipses, and straight strokes.
type Path struct {
	Primitives []Primitive
	Rule       FillRule
}

// RectPath returns a path covering r.
func RectPath(r Rect) Path {
	return Path{Primitives: []Primitive{{Kind: KindRect, Bounds: r.normalized()}}}
}

// EllipsePath returns the ellipse inscribed in r.
func EllipsePath(r Rect) Path {
	return Path{Primitives: []Primitive{{Kind: KindEllipse, Bounds: r.normalized()}}}
}

// SegmentPath returns an open stroke from one point to another.
func SegmentPath(from, to Point) Path {
	return Path{Primitives: []Primitive{{Kind: KindSegment, From: from, To: to}}}
}

// AddCircle appends a circle of the given radius around center.
func (p Path) AddCircle(center Point, radius float64) Path {
	if radius < 0 {
		radius = 0
	}
	prims := append(append([]Primitive(nil), p.Primitives...), Primitive{
		Kind:   KindEllipse,
		Bounds: R(center.X-radius, center.Y-radius, 2*radius, 2*radius),
	})
	return Path{Primitives: prims, Rule: p.Rule}
}

// WithRule returns a copy of the path using rule.
func (p Path) WithRule(rule FillRule) Path {
	p.Primitives = append([]Primitive(nil), p.Primitives...)
	p.Rule = rule
	return p
}

// Contains reports whether pt lies in the filled area. Open segments never
// contain a point.
func (p Path) Contains(pt Point) bool {
	hits := 0
	for _, prim := range p.Primitives {
		if prim.contains(pt) {
			hits++
		}
	}
	if p.Rule == FillEvenOdd {
		return hits%2 == 1
	}
	return hits > 0
}

// Segment returns the first open segment of the path.
func (p Path) Segment() (from, to Point, ok bool) {
	for _, prim := range p.Primitives {
		if prim.Kind == KindSegment {
			return prim.From, prim.To, true
		}
	}
	return Point{}, Point{}, false
}

func (prim Primitive) contains(pt Point) bool {
	switch prim.Kind {
	case KindRect:
		return !prim.Bounds.Empty() && prim.Bounds.Contains(pt)
	case KindEllipse:
		if prim.Bounds.Empty() {
			return false
		}
		c := prim.Bounds.Mid()
		rx, ry := prim.Bounds.Width/2, prim.Bounds.Height/2
		dx, dy := (pt.X-c.X)/rx, (pt.Y-c.Y)/ry
		return dx*dx+dy*dy <= 1
	default:
		return false
	}
}

// PointAt returns the point at fraction f along the segment from-to.
func PointAt(from, to Point, f float64) Point {
	return Point{X: from.X + (to.X-from.X)*f, Y: from.Y + (to.Y-from.Y)*f}
}

// Length returns the distance between two points.
func Length(from, to Point) float64 {
	return math.Hypot(to.X-from.X, to.Y-from.Y)
}

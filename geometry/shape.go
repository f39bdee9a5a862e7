package geometry

import "math"

// LineCount is the number of radiating lines around the icon.
const LineCount = 5

// MaskHoleRadius is the radius of the hole cut in the circle mask before
// the mask timeline scales it open.
const MaskHoleRadius = 0.1

// Shape is the full set of static geometry derived from a bounding box.
// It is rebuilt as a whole whenever the frame changes.
type Shape struct {
	Frame      Rect
	ImageFrame Rect // Icon area: centered, half the frame's size
	LineFrame  Rect // 1.5x the icon area, room for the lines to extend
	Center     Point

	LineAngles [LineCount]float64 // radians, 72° apart starting at 36°

	CirclePath Path // filled by the circle color
	MaskPath   Path // even-odd: image rect minus a small hole at the center
	LinePath   Path // center of the line frame to its top-middle
	ImagePath  Path // filled by the image color, masked by the icon
}

// LineAngle returns the rotation of line i: π/5 * (2i + 1).
func LineAngle(i int) float64 {
	return math.Pi / 5 * float64(2*i+1)
}

// Build computes the shape geometry for a widget frame. Offsets are relative
// to the frame's own origin. Degenerate frames yield zero-size shapes.
func Build(frame Rect) Shape {
	frame = frame.normalized()
	w, h := frame.Width, frame.Height

	imageFrame := R(w/2-w/4, h/2-h/4, w/2, h/2)
	center := imageFrame.Mid()
	lineFrame := R(
		imageFrame.X-imageFrame.Width/4,
		imageFrame.Y-imageFrame.Height/4,
		imageFrame.Width*1.5,
		imageFrame.Height*1.5,
	)

	s := Shape{
		Frame:      frame,
		ImageFrame: imageFrame,
		LineFrame:  lineFrame,
		Center:     center,
		CirclePath: EllipsePath(imageFrame),
		MaskPath:   RectPath(imageFrame).AddCircle(center, MaskHoleRadius).WithRule(FillEvenOdd),
		LinePath: SegmentPath(
			lineFrame.Mid(),
			Point{X: lineFrame.X + lineFrame.Width/2, Y: lineFrame.Y},
		),
		ImagePath: RectPath(imageFrame),
	}
	for i := range s.LineAngles {
		s.LineAngles[i] = LineAngle(i)
	}
	return s
}

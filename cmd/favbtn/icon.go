package main

import "image"

// heartIcon rasterizes a heart as an alpha mask, the usual favorite glyph.
// Pixels inside (x²+y²-1)³ - x²y³ <= 0 are opaque.
func heartIcon(size int) *image.Alpha {
	icon := image.NewAlpha(image.Rect(0, 0, size, size))
	if size <= 0 {
		return icon
	}
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			x := (float64(px)+0.5)/float64(size)*2.6 - 1.3
			y := 1.25 - (float64(py)+0.5)/float64(size)*2.5
			a := x*x + y*y - 1
			if a*a*a-x*x*y*y*y <= 0 {
				icon.Pix[icon.PixOffset(px, py)] = 0xFF
			}
		}
	}
	return icon
}

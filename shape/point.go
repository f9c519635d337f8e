package shape

import (
	"math"

	"honnef.co/go/curve"
)

// Point is a world-space coordinate. It is the curve package's point so that
// authored outlines can be handed to path routines without conversion.
type Point = curve.Point

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return curve.Pt(x, y)
}

// SnapDivisions is the number of grid cells per world unit that clicked
// points are rounded to.
const SnapDivisions = 2

// Snap rounds p to the nearest half unit on both axes. Snapping an already
// snapped point returns it unchanged.
func Snap(p Point) Point {
	r := Point{X: p.X * SnapDivisions, Y: p.Y * SnapDivisions}.Round()
	return Point{X: r.X / SnapDivisions, Y: r.Y / SnapDivisions}
}

// MapCursor converts a screen-space pointer position into world space. The
// window center is the world origin and the result is divided by scale.
// ok is false when the window size is not known yet or scale is unusable; the
// caller keeps its previous cursor in that case.
func MapCursor(screen Point, width, height, scale float64) (world Point, ok bool) {
	if width <= 0 || height <= 0 {
		return Point{}, false
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return Point{}, false
	}
	cx := screen.X - width*0.5
	cy := screen.Y - height*0.5
	return Point{X: cx / scale, Y: cy / scale}, true
}

// TriangleArea returns the unsigned area of the triangle abc.
func TriangleArea(a, b, c Point) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}

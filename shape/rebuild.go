package shape

import "fmt"

// MinPoints is the number of points an outline needs before it can enclose
// any area.
const MinPoints = 3

// Rebuild closes points into a polygon, tessellates it with t and assembles
// the resulting triangles into a compound collider. A nil t uses Earcut.
func Rebuild(points []Point, t Tessellator) (*Compound, error) {
	if len(points) < MinPoints {
		return nil, ErrTooFewPoints
	}
	if t == nil {
		t = Earcut{}
	}
	mesh, err := t.Tessellate(ClosedPath(points))
	if err != nil {
		return nil, fmt.Errorf("shape: rebuild %d points: %w", len(points), err)
	}
	return NewCompound(mesh)
}

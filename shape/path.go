package shape

import (
	"fmt"

	"honnef.co/go/curve"
)

// flattenTolerance bounds how far flattened curve segments may deviate from
// the source path. Authored outlines only contain lines, so it only matters
// for paths built elsewhere.
const flattenTolerance = 0.05

// ClosedPath builds the closed outline for an open point list. The path
// starts at the last point, visits the remaining points in stored order and
// closes back to the start. The input slice is not modified.
func ClosedPath(points []Point) curve.BezPath {
	if len(points) == 0 {
		return nil
	}
	path := make(curve.BezPath, 0, len(points)+1)
	path.MoveTo(points[len(points)-1])
	for _, p := range points[:len(points)-1] {
		path.LineTo(p)
	}
	path.ClosePath()
	return path
}

// Contour flattens path and returns the vertices of its single subpath in
// path order. The closing edge is implicit.
func Contour(path curve.BezPath) ([]Point, error) {
	var (
		out      []Point
		subpaths int
	)
	for el := range path.Flatten(flattenTolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			subpaths++
			if subpaths > 1 {
				return nil, fmt.Errorf("shape: contour: %w", ErrMultipleSubpaths)
			}
			out = append(out, el.P0)
		case curve.LineToKind:
			out = append(out, el.P0)
		case curve.ClosePathKind:
		default:
			return nil, fmt.Errorf("shape: contour: unexpected element %v after flattening", el.Kind)
		}
	}
	return out, nil
}

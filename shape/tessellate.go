package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/rclancey/earcut"
	"honnef.co/go/curve"
)

var (
	ErrTooFewPoints     = errors.New("shape: fewer than 3 points")
	ErrDegenerate       = errors.New("shape: polygon has no area")
	ErrMultipleSubpaths = errors.New("shape: path has more than one subpath")
)

// degenerateArea is the absolute area below which an outline is treated as
// collapsed onto a line or point.
const degenerateArea = 1e-9

// Mesh is an indexed triangle list. Every three consecutive entries of
// Indices name one triangle in Vertices.
type Mesh struct {
	Vertices []Point
	Indices  []int
}

// Triangles returns the number of whole triangles in the index buffer.
func (m Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Tessellator fills a closed path with non-overlapping triangles.
type Tessellator interface {
	Tessellate(path curve.BezPath) (Mesh, error)
}

// Earcut tessellates simple polygons, convex or concave, by ear clipping.
// Self-intersecting outlines produce unspecified triangles.
type Earcut struct{}

func (Earcut) Tessellate(path curve.BezPath) (Mesh, error) {
	contour, err := Contour(path)
	if err != nil {
		return Mesh{}, err
	}
	if len(contour) < 3 {
		return Mesh{}, ErrTooFewPoints
	}
	if math.Abs(path.SignedArea()) < degenerateArea {
		return Mesh{}, ErrDegenerate
	}

	coords := make([]float64, 0, len(contour)*2)
	for _, p := range contour {
		coords = append(coords, p.X, p.Y)
	}
	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return Mesh{}, fmt.Errorf("shape: earcut %d vertices: %w", len(contour), err)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return Mesh{}, fmt.Errorf("shape: earcut returned %d indices: %w", len(indices), ErrDegenerate)
	}
	return Mesh{Vertices: contour, Indices: indices}, nil
}

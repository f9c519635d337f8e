package shape

import "fmt"

// Part is one rigid triangle of a compound collider, placed at Offset and
// rotated by Rotation radians relative to its owner.
type Part struct {
	Offset   Point
	Rotation float64
	Triangle [3]Point
}

// Compound is a collision shape assembled from triangle parts.
type Compound struct {
	Parts []Part
}

// NewCompound groups the mesh index buffer into consecutive triples and emits
// one zero-offset, unrotated part per triple.
func NewCompound(m Mesh) (*Compound, error) {
	if len(m.Indices)%3 != 0 {
		return nil, fmt.Errorf("shape: index buffer length %d is not a multiple of 3", len(m.Indices))
	}
	parts := make([]Part, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		var tri [3]Point
		for j := 0; j < 3; j++ {
			idx := m.Indices[i+j]
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, fmt.Errorf("shape: index %d out of range for %d vertices", idx, len(m.Vertices))
			}
			tri[j] = m.Vertices[idx]
		}
		parts = append(parts, Part{Triangle: tri})
	}
	return &Compound{Parts: parts}, nil
}

// Len returns the number of parts.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Parts)
}

// Area sums the areas of all parts.
func (c *Compound) Area() float64 {
	if c == nil {
		return 0
	}
	var total float64
	for _, p := range c.Parts {
		total += TriangleArea(p.Triangle[0], p.Triangle[1], p.Triangle[2])
	}
	return total
}

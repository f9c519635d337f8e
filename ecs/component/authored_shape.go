package component

import "github.com/milk9111/spritecollider/shape"

// AuthoredShape is the outline being clicked together on top of an image.
//
// Points is the open outline in click order; the closing edge is implied.
// Dirty is set whenever Points changes and cleared once Collider matches it
// again. Collider stays nil until at least three points enclose an area.
type AuthoredShape struct {
	Points   []shape.Point
	Dirty    bool
	Sensor   bool
	Collider *shape.Compound

	// Revision counts appends. FailedRevision remembers the revision whose
	// rebuild failed so it is not retried until the outline changes.
	Revision       uint64
	FailedRevision uint64
	RebuildFailed  bool
}

var AuthoredShapeComponent = NewComponent[AuthoredShape]()

package ecs

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spritecollider/shape"
)

const collisionTypeAuthored cp.CollisionType = 1

const defaultIterations = 10

// PhysicsWorld owns the Chipmunk space and the collider shapes attached to
// entities. Each entity gets one static body; its compound collider is a set
// of triangle shapes on that body.
type PhysicsWorld struct {
	space *cp.Space

	bodies       map[Entity]*cp.Body
	shapes       map[Entity][]*cp.Shape
	replacements int

	Debug bool
}

// NewPhysicsWorld creates an empty, gravity-free space.
func NewPhysicsWorld(iterations int) *PhysicsWorld {
	if iterations <= 0 {
		iterations = defaultIterations
	}
	space := cp.NewSpace()
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{})

	return &PhysicsWorld{
		space:  space,
		bodies: make(map[Entity]*cp.Body),
		shapes: make(map[Entity][]*cp.Shape),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// ReplaceCompound swaps the collider attached to e for c. A nil or empty c
// leaves e with no collider.
func (pw *PhysicsWorld) ReplaceCompound(e Entity, c *shape.Compound, sensor bool) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.removeShapes(e)
	pw.replacements++

	if c.Len() == 0 {
		return
	}

	body := pw.ensureBody(e)
	shapes := make([]*cp.Shape, 0, c.Len())
	for _, part := range c.Parts {
		verts := []cp.Vector{
			{X: part.Triangle[0].X, Y: part.Triangle[0].Y},
			{X: part.Triangle[1].X, Y: part.Triangle[1].Y},
			{X: part.Triangle[2].X, Y: part.Triangle[2].Y},
		}
		offset := cp.Vector{X: part.Offset.X, Y: part.Offset.Y}
		s := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformRigid(offset, part.Rotation), 0)
		s.SetSensor(sensor)
		s.SetCollisionType(collisionTypeAuthored)
		pw.space.AddShape(s)
		shapes = append(shapes, s)
	}
	pw.shapes[e] = shapes

	if pw.Debug {
		log.Printf("PhysicsWorld: entity %v collider replaced with %d triangles (sensor=%v)", e, len(shapes), sensor)
	}
}

// Shapes returns the collider shapes currently attached to e.
func (pw *PhysicsWorld) Shapes(e Entity) []*cp.Shape {
	if pw == nil {
		return nil
	}
	return pw.shapes[e]
}

// Replacements counts ReplaceCompound calls since creation.
func (pw *PhysicsWorld) Replacements() int {
	if pw == nil {
		return 0
	}
	return pw.replacements
}

// RemoveEntity drops e's shapes and body from the space.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.removeShapes(e)
	if body, ok := pw.bodies[e]; ok {
		pw.space.RemoveBody(body)
		delete(pw.bodies, e)
	}
}

// Step advances the simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) ensureBody(e Entity) *cp.Body {
	if body, ok := pw.bodies[e]; ok {
		return body
	}
	body := cp.NewStaticBody()
	pw.space.AddBody(body)
	pw.bodies[e] = body
	return body
}

func (pw *PhysicsWorld) removeShapes(e Entity) {
	for _, s := range pw.shapes[e] {
		if pw.space.ContainsShape(s) {
			pw.space.RemoveShape(s)
		}
	}
	delete(pw.shapes, e)
}

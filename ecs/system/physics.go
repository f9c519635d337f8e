package system

import "github.com/milk9111/spritecollider/ecs"

// PhysicsSystem steps the world's physics space by a fixed timestep.
type PhysicsSystem struct {
	dt float64
}

func NewPhysicsSystem(tps int) *PhysicsSystem {
	if tps <= 0 {
		tps = 60
	}
	return &PhysicsSystem{dt: 1.0 / float64(tps)}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	w.PhysicsWorld().Step(p.dt)
}

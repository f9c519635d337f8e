package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem draws ECS state each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Draw calls all render-capable systems in registration order.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range w.scheduler.Systems() {
		rs, ok := s.(RenderSystem)
		if !ok || rs == nil {
			continue
		}
		rs.Draw(w, screen)
	}
}

package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
	"github.com/milk9111/spritecollider/shape"
)

// RenderSystem draws sprites centered on their transform. World space has
// its origin at the middle of the screen and is magnified by the display
// scale.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	scale := displayScale(w)
	ox, oy := screenOrigin(screen)

	for _, e := range w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)
		if s.Image == nil {
			continue
		}

		b := s.Image.Bounds()
		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(t.X*scale+ox, t.Y*scale+oy)
		screen.DrawImage(s.Image, op)
	}
}

func displayScale(w *ecs.World) float64 {
	view, ok := w.First(component.ViewTagComponent.Kind(), component.DisplayComponent.Kind())
	if !ok {
		return 1
	}
	d, _ := ecs.Get(w, view, component.DisplayComponent)
	if d.Scale <= 0 {
		return 1
	}
	return d.Scale
}

func screenOrigin(screen *ebiten.Image) (float64, float64) {
	b := screen.Bounds()
	return float64(b.Dx()) / 2, float64(b.Dy()) / 2
}

// worldToScreen is the inverse of shape.MapCursor.
func worldToScreen(p shape.Point, scale, ox, oy float64) (float32, float32) {
	return float32(p.X*scale + ox), float32(p.Y*scale + oy)
}

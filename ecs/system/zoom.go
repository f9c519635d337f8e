package system

import (
	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
	"github.com/milk9111/spritecollider/shape"
)

// ZoomSystem applies the zoom keys to the display scale and to the transform
// of the main image. A number key wins over the step keys in the same frame.
type ZoomSystem struct{}

func NewZoomSystem() *ZoomSystem {
	return &ZoomSystem{}
}

func (z *ZoomSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	view, ok := w.First(component.ViewTagComponent.Kind(), component.InputComponent.Kind(), component.DisplayComponent.Kind())
	if !ok {
		return
	}
	input, _ := ecs.Get(w, view, component.InputComponent)
	display, _ := ecs.Get(w, view, component.DisplayComponent)

	scale := display.Scale
	if s, ok := shape.ScaleForDigit(input.ZoomDigit); ok {
		scale = s
	} else if input.ZoomIn {
		scale = shape.ZoomIn(scale)
	} else if input.ZoomOut {
		scale = shape.ZoomOut(scale)
	}
	if scale == display.Scale {
		return
	}

	display.Scale = scale
	_ = ecs.Add(w, view, component.DisplayComponent, display)
	ApplyImageScale(w, scale)
}

// ApplyImageScale sets the scale of every main image transform.
func ApplyImageScale(w *ecs.World, scale float64) {
	for _, e := range w.Query(component.MainImageTagComponent.Kind(), component.TransformComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		t.ScaleX = scale
		t.ScaleY = scale
		_ = ecs.Add(w, e, component.TransformComponent, t)
	}
}

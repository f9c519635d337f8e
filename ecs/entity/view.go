package entity

import (
	"fmt"

	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
)

// NewView creates the entity holding the per-frame input and the display
// state. The cursor starts at the world origin.
func NewView(w *ecs.World, scale float64) (ecs.Entity, error) {
	if scale <= 0 {
		scale = 1
	}
	view := w.CreateEntity()
	if err := ecs.Add(w, view, component.ViewTagComponent, component.ViewTag{}); err != nil {
		return 0, fmt.Errorf("view: add view tag: %w", err)
	}
	if err := ecs.Add(w, view, component.InputComponent, component.Input{ZoomDigit: -1}); err != nil {
		return 0, fmt.Errorf("view: add input: %w", err)
	}
	if err := ecs.Add(w, view, component.DisplayComponent, component.Display{Scale: scale}); err != nil {
		return 0, fmt.Errorf("view: add display: %w", err)
	}
	return view, nil
}

package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
)

// MainImageOptions describes the image being outlined.
type MainImageOptions struct {
	Path   string
	Image  *ebiten.Image
	Scale  float64
	Sensor bool
	// Authoring attaches an empty AuthoredShape. Viewers leave it off.
	Authoring bool
}

// NewMainImage creates the sprite entity at the world origin.
func NewMainImage(w *ecs.World, opts MainImageOptions) (ecs.Entity, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	img := w.CreateEntity()
	if err := ecs.Add(w, img, component.MainImageTagComponent, component.MainImageTag{}); err != nil {
		return 0, fmt.Errorf("main image: add tag: %w", err)
	}
	if err := ecs.Add(w, img, component.TransformComponent, component.Transform{ScaleX: scale, ScaleY: scale}); err != nil {
		return 0, fmt.Errorf("main image: add transform: %w", err)
	}
	if err := ecs.Add(w, img, component.SpriteComponent, component.Sprite{Image: opts.Image, Path: opts.Path}); err != nil {
		return 0, fmt.Errorf("main image: add sprite: %w", err)
	}
	if opts.Authoring {
		if err := ecs.Add(w, img, component.AuthoredShapeComponent, component.AuthoredShape{Sensor: opts.Sensor}); err != nil {
			return 0, fmt.Errorf("main image: add authored shape: %w", err)
		}
	}
	return img, nil
}

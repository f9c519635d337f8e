package system

import (
	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
	"github.com/milk9111/spritecollider/shape"
)

// CursorSystem keeps the view's world-space cursor in step with the pointer.
// It consumes the frame's CursorMoved events, of which only the last counts,
// and remaps the last known pointer position whenever the display scale or
// the window size changes, so a zoom without pointer movement still moves
// the cursor.
type CursorSystem struct {
	screen shape.Point
	scale  float64
	width  float64
	height float64
	seen   bool
	mapped bool
}

func NewCursorSystem() *CursorSystem {
	return &CursorSystem{}
}

func (c *CursorSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	moved := false
	if events := w.Events().Take(ecs.EventCursorMoved); len(events) > 0 {
		if last, ok := events[len(events)-1].Data.(ecs.CursorMoved); ok {
			c.screen = shape.Pt(last.X, last.Y)
			c.seen = true
			moved = true
		}
	}

	view, ok := w.First(component.ViewTagComponent.Kind(), component.InputComponent.Kind(), component.DisplayComponent.Kind())
	if !ok {
		return
	}
	input, _ := ecs.Get(w, view, component.InputComponent)
	if !input.WindowKnown || !c.seen {
		return
	}
	display, _ := ecs.Get(w, view, component.DisplayComponent)

	stale := c.mapped && (display.Scale != c.scale || input.WindowW != c.width || input.WindowH != c.height)
	if !moved && !stale {
		return
	}

	world, ok := shape.MapCursor(c.screen, input.WindowW, input.WindowH, display.Scale)
	if !ok {
		return
	}
	c.scale, c.width, c.height = display.Scale, input.WindowW, input.WindowH
	c.mapped = true

	display.CursorWorld = world
	_ = ecs.Add(w, view, component.DisplayComponent, display)
}

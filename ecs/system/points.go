package system

import (
	"log"

	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
	"github.com/milk9111/spritecollider/shape"
)

// PointSystem appends the snapped cursor to the authored outline on each
// primary press. On a dump request it hands the outline to OnDump, or logs it
// in the points file format when OnDump is nil.
type PointSystem struct {
	Debug  bool
	OnDump func([]shape.Point)
}

func NewPointSystem() *PointSystem {
	return &PointSystem{}
}

func (p *PointSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	view, ok := w.First(component.ViewTagComponent.Kind(), component.InputComponent.Kind(), component.DisplayComponent.Kind())
	if !ok {
		return
	}
	input, _ := ecs.Get(w, view, component.InputComponent)
	if !input.PrimaryPressed && !input.DumpPoints {
		return
	}
	target, ok := w.First(component.AuthoredShapeComponent.Kind())
	if !ok {
		return
	}
	authored, _ := ecs.Get(w, target, component.AuthoredShapeComponent)
	if input.DumpPoints {
		p.dump(authored.Points)
	}
	if !input.PrimaryPressed {
		return
	}
	display, _ := ecs.Get(w, view, component.DisplayComponent)

	pt := shape.Snap(display.CursorWorld)
	authored.Points = append(authored.Points, pt)
	authored.Dirty = true
	authored.Revision++
	if err := ecs.Add(w, target, component.AuthoredShapeComponent, authored); err != nil {
		log.Printf("PointSystem: append point: %v", err)
		return
	}
	if p.Debug {
		log.Printf("PointSystem: point %d at (%g, %g)", len(authored.Points), pt.X, pt.Y)
	}
}

func (p *PointSystem) dump(pts []shape.Point) {
	out := append([]shape.Point(nil), pts...)
	if p.OnDump != nil {
		p.OnDump(out)
		return
	}
	log.Printf("points: %s", shape.FormatPoints(out))
}

// AppendPoints seeds e's outline with pts as if they had been clicked.
func AppendPoints(w *ecs.World, e ecs.Entity, pts []shape.Point) error {
	authored, _ := ecs.Get(w, e, component.AuthoredShapeComponent)
	authored.Points = append(authored.Points, pts...)
	if len(pts) > 0 {
		authored.Dirty = true
		authored.Revision += uint64(len(pts))
	}
	return ecs.Add(w, e, component.AuthoredShapeComponent, authored)
}

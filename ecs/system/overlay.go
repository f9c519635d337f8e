package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
	"github.com/milk9111/spritecollider/shape"
	"golang.org/x/image/colornames"
)

const (
	pointRadius = 3
	edgeWidth   = 1.5
)

// OverlaySystem draws the authored outline, the snapped cursor and a status
// line on top of the image.
type OverlaySystem struct {
	ShowStatus bool
}

func NewOverlaySystem() *OverlaySystem {
	return &OverlaySystem{ShowStatus: true}
}

func (o *OverlaySystem) Update(w *ecs.World) {}

func (o *OverlaySystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if o == nil || w == nil || screen == nil {
		return
	}
	scale := displayScale(w)
	ox, oy := screenOrigin(screen)

	var (
		points    int
		triangles int
		failed    bool
	)
	ecs.ForEach(w, component.AuthoredShapeComponent, func(_ ecs.Entity, authored component.AuthoredShape) {
		pts := authored.Points
		for i := 1; i < len(pts); i++ {
			x0, y0 := worldToScreen(pts[i-1], scale, ox, oy)
			x1, y1 := worldToScreen(pts[i], scale, ox, oy)
			vector.StrokeLine(screen, x0, y0, x1, y1, edgeWidth, colornames.Yellow, true)
		}
		if len(pts) >= shape.MinPoints {
			x0, y0 := worldToScreen(pts[len(pts)-1], scale, ox, oy)
			x1, y1 := worldToScreen(pts[0], scale, ox, oy)
			vector.StrokeLine(screen, x0, y0, x1, y1, edgeWidth, colornames.Orange, true)
		}
		for _, p := range pts {
			x, y := worldToScreen(p, scale, ox, oy)
			vector.DrawFilledCircle(screen, x, y, pointRadius, colornames.Red, true)
		}
		points += len(pts)
		triangles += authored.Collider.Len()
		failed = failed || authored.RebuildFailed
	})

	view, ok := w.First(component.ViewTagComponent.Kind(), component.DisplayComponent.Kind())
	if !ok {
		return
	}
	display, _ := ecs.Get(w, view, component.DisplayComponent)
	snapped := shape.Snap(display.CursorWorld)
	cx, cy := worldToScreen(snapped, scale, ox, oy)
	vector.StrokeCircle(screen, cx, cy, pointRadius+1, 1, colornames.Lightgrey, true)

	if !o.ShowStatus {
		return
	}
	status := fmt.Sprintf("scale: %g\ncursor: (%g, %g)\npoints: %d\ntriangles: %d\nrebuilds: %d",
		scale, snapped.X, snapped.Y, points, triangles, w.PhysicsWorld().Replacements())
	if failed {
		status += "\nrebuild failed, add a point"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 10)
}

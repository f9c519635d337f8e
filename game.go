package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritecollider/assets"
	"github.com/milk9111/spritecollider/config"
	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/entity"
	"github.com/milk9111/spritecollider/ecs/system"
	"github.com/milk9111/spritecollider/shape"
)

type Game struct {
	world    *ecs.World
	input    *system.EbitenInput
	collider *system.ColliderSystem
	watcher  *assets.Watcher
}

// NewGame loads the image named by cfg and builds the authoring world. seed
// is appended to the outline as if it had been clicked.
func NewGame(cfg config.Config, seed []shape.Point) (*Game, error) {
	path, err := assets.Resolve(cfg.Image)
	if err != nil {
		return nil, err
	}
	img, err := assets.LoadImage(path)
	if err != nil {
		return nil, err
	}
	policy, err := system.ParseFailurePolicy(cfg.OnFailure)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld(cfg.Physics.Iterations)
	pw.Debug = cfg.Debug
	w.SetPhysicsWorld(pw)

	if _, err := entity.NewView(w, cfg.Scale); err != nil {
		return nil, err
	}
	image, err := entity.NewMainImage(w, entity.MainImageOptions{
		Path:      path,
		Image:     img,
		Scale:     cfg.Scale,
		Sensor:    cfg.Sensor,
		Authoring: true,
	})
	if err != nil {
		return nil, err
	}
	if len(seed) > 0 {
		if err := system.AppendPoints(w, image, seed); err != nil {
			return nil, fmt.Errorf("game: seed points: %w", err)
		}
	}

	g := &Game{
		world:    w,
		input:    system.NewEbitenInput(),
		collider: system.NewColliderSystem(pw, nil, policy),
	}

	points := system.NewPointSystem()
	points.Debug = cfg.Debug
	overlay := system.NewOverlaySystem()
	overlay.ShowStatus = cfg.Status

	w.AddSystem(system.NewInputSystem(g.input))
	w.AddSystem(system.NewZoomSystem())
	w.AddSystem(system.NewCursorSystem())
	w.AddSystem(points)
	w.AddSystem(g.collider)
	w.AddSystem(system.NewPhysicsSystem(cfg.Physics.TPS))

	if cfg.Watch {
		watcher, err := assets.NewWatcher(path)
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
			w.AddSystem(system.NewAssetReloadSystem(watcher.Events, assets.LoadImage))
		}
	}

	w.AddSystem(system.NewRenderSystem())
	w.AddSystem(system.NewPhysicsDebugSystem(cfg.Debug))
	w.AddSystem(overlay)

	return g, nil
}

func (g *Game) Update() error {
	g.world.Update()
	if err := g.collider.Err(); err != nil {
		return err
	}

	if g.watcher != nil {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watch: %v", err)
			}
		default:
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.input.SetWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

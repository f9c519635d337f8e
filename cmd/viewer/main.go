package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritecollider/assets"
	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/entity"
	"github.com/milk9111/spritecollider/ecs/system"
)

// viewer shows an image with number-key zoom and nothing else.
type viewer struct {
	world   *ecs.World
	input   *system.EbitenInput
	watcher *assets.Watcher
}

func newViewer(path string, scale float64, watch bool) (*viewer, error) {
	resolved, err := assets.Resolve(path)
	if err != nil {
		return nil, err
	}
	img, err := assets.LoadImage(resolved)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := entity.NewView(w, scale); err != nil {
		return nil, err
	}
	if _, err := entity.NewMainImage(w, entity.MainImageOptions{Path: resolved, Image: img, Scale: scale}); err != nil {
		return nil, err
	}

	v := &viewer{world: w, input: system.NewEbitenInput()}
	w.AddSystem(system.NewInputSystem(v.input))
	w.AddSystem(system.NewZoomSystem())
	if watch {
		if watcher, err := assets.NewWatcher(resolved); err != nil {
			log.Printf("viewer: hot reload disabled: %v", err)
		} else {
			v.watcher = watcher
			w.AddSystem(system.NewAssetReloadSystem(watcher.Events, assets.LoadImage))
		}
	}
	w.AddSystem(system.NewRenderSystem())
	return v, nil
}

func (v *viewer) Update() error {
	v.world.Update()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.world.Draw(screen)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.input.SetWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	scale := flag.Float64("scale", 1, "initial display scale")
	noWatch := flag.Bool("nowatch", false, "do not reload the image when it changes on disk")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("provide path to image file")
	}

	v, err := newViewer(flag.Arg(0), *scale, !*noWatch)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("spritecollider viewer")

	err = ebiten.RunGame(v)
	_ = v.watcher.Close()
	if err != nil {
		log.Fatal(err)
	}
}

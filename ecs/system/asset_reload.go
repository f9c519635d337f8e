package system

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
)

// ImageLoader decodes the image at path.
type ImageLoader func(path string) (*ebiten.Image, error)

// AssetReloadSystem swaps sprite images whose files changed on disk. Changed
// paths arrive on a channel fed by a file watcher and are drained without
// blocking the frame.
type AssetReloadSystem struct {
	changes <-chan string
	load    ImageLoader
}

func NewAssetReloadSystem(changes <-chan string, load ImageLoader) *AssetReloadSystem {
	return &AssetReloadSystem{changes: changes, load: load}
}

func (a *AssetReloadSystem) Update(w *ecs.World) {
	if a == nil || w == nil || a.changes == nil || a.load == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.changes:
			if !ok {
				a.changes = nil
				return
			}
			a.reload(w, path)
		default:
			return
		}
	}
}

func (a *AssetReloadSystem) reload(w *ecs.World, changed string) {
	ecs.ForEach(w, component.SpriteComponent, func(e ecs.Entity, sprite component.Sprite) {
		if sprite.Path == "" || !samePath(sprite.Path, changed) {
			return
		}
		img, err := a.load(sprite.Path)
		if err != nil {
			log.Printf("AssetReloadSystem: reload %s: %v", sprite.Path, err)
			return
		}
		sprite.Image = img
		_ = ecs.Add(w, e, component.SpriteComponent, sprite)
		log.Printf("AssetReloadSystem: reloaded %s", sprite.Path)
	})
}

func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

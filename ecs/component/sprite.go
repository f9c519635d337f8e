package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is an image drawn centered on its transform. Path is the file it was
// loaded from and is used to match hot-reload events.
type Sprite struct {
	Image *ebiten.Image
	Path  string
}

var SpriteComponent = NewComponent[Sprite]()

package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = [10][2]ebiten.Key{
	{ebiten.KeyDigit0, ebiten.KeyNumpad0},
	{ebiten.KeyDigit1, ebiten.KeyNumpad1},
	{ebiten.KeyDigit2, ebiten.KeyNumpad2},
	{ebiten.KeyDigit3, ebiten.KeyNumpad3},
	{ebiten.KeyDigit4, ebiten.KeyNumpad4},
	{ebiten.KeyDigit5, ebiten.KeyNumpad5},
	{ebiten.KeyDigit6, ebiten.KeyNumpad6},
	{ebiten.KeyDigit7, ebiten.KeyNumpad7},
	{ebiten.KeyDigit8, ebiten.KeyNumpad8},
	{ebiten.KeyDigit9, ebiten.KeyNumpad9},
}

// EbitenInput reads the live ebiten input state. The window size comes from
// the game's Layout, which ebiten calls before the first Update.
type EbitenInput struct {
	width  int
	height int
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// SetWindowSize records the outside size passed to Layout.
func (e *EbitenInput) SetWindowSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *EbitenInput) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (e *EbitenInput) WindowSize() (float64, float64, bool) {
	if e.width <= 0 || e.height <= 0 {
		return 0, 0, false
	}
	return float64(e.width), float64(e.height), true
}

func (e *EbitenInput) PrimaryDown() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (e *EbitenInput) ZoomKeys() (int, bool, bool) {
	digit := -1
	for d, keys := range digitKeys {
		if inpututil.IsKeyJustPressed(keys[0]) || inpututil.IsKeyJustPressed(keys[1]) {
			digit = d
			break
		}
	}
	in := inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd)
	out := inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract)
	return digit, in, out
}

func (e *EbitenInput) Commands() (bool, bool) {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1), inpututil.IsKeyJustPressed(ebiten.KeyP)
}

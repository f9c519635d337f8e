package system

import (
	"log"

	"github.com/milk9111/spritecollider/ecs"
	"github.com/milk9111/spritecollider/ecs/component"
)

// InputSource reports the raw window, pointer and keyboard state for one
// frame. The host implements it on top of ebiten; tests use a fake.
type InputSource interface {
	CursorPosition() (x, y float64)
	// WindowSize is not available until the host has laid out the window.
	WindowSize() (width, height float64, ok bool)
	PrimaryDown() bool
	// ZoomKeys returns the number key pressed this frame (-1 for none) and
	// whether the zoom in and zoom out keys were pressed.
	ZoomKeys() (digit int, in, out bool)
	// Commands reports the debug overlay toggle and point dump keys pressed
	// this frame.
	Commands() (toggleDebug, dumpPoints bool)
}

// InputSystem samples an InputSource once per frame. It turns the primary
// button level into a one-frame press edge and publishes pointer movement as
// CursorMoved events.
type InputSystem struct {
	source InputSource

	prevDown bool
	lastX    float64
	lastY    float64
	reported bool
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}

	width, height, known := i.source.WindowSize()

	x, y := i.source.CursorPosition()
	if known && (!i.reported || x != i.lastX || y != i.lastY) {
		w.Events().Push(ecs.Event{Type: ecs.EventCursorMoved, Data: ecs.CursorMoved{X: x, Y: y}})
		i.lastX, i.lastY = x, y
		i.reported = true
	}

	down := i.source.PrimaryDown()
	pressed := down && !i.prevDown
	i.prevDown = down

	digit, zoomIn, zoomOut := i.source.ZoomKeys()
	toggleDebug, dumpPoints := i.source.Commands()

	for _, e := range w.Query(component.InputComponent.Kind()) {
		input, _ := ecs.Get(w, e, component.InputComponent)
		input.CursorX = x
		input.CursorY = y
		input.WindowKnown = known
		if known {
			input.WindowW = width
			input.WindowH = height
		}
		input.PrimaryDown = down
		input.PrimaryPressed = pressed
		input.ZoomDigit = digit
		input.ZoomIn = zoomIn
		input.ZoomOut = zoomOut
		input.ToggleDebug = toggleDebug
		input.DumpPoints = dumpPoints
		if err := ecs.Add(w, e, component.InputComponent, input); err != nil {
			log.Printf("InputSystem: update input on %v: %v", e, err)
		}
	}
}

package component

// Input stores the per-frame pointer, button and zoom key state.
type Input struct {
	CursorX     float64
	CursorY     float64
	WindowW     float64
	WindowH     float64
	WindowKnown bool

	PrimaryDown    bool
	PrimaryPressed bool

	// ZoomDigit is the number key pressed this frame, or -1.
	ZoomDigit int
	ZoomIn    bool
	ZoomOut   bool

	ToggleDebug bool
	DumpPoints  bool
}

var InputComponent = NewComponent[Input]()

package shape

import "math"

const (
	// MinScale is the smallest display scale ZoomOut will produce.
	MinScale = 0.0625

	zoomInThreshold  = 0.9
	zoomOutThreshold = 1.1
)

// ScaleForDigit maps a number key to a display scale. Keys 1-9 select their
// own value and 0 selects 10. ok is false for anything else.
func ScaleForDigit(digit int) (scale float64, ok bool) {
	switch {
	case digit == 0:
		return 10, true
	case digit >= 1 && digit <= 9:
		return float64(digit), true
	}
	return 0, false
}

// ZoomIn steps the scale up: doubling while below 1 and adding 1 above it.
func ZoomIn(scale float64) float64 {
	if scale < zoomInThreshold {
		return scale * 2
	}
	return scale + 1
}

// ZoomOut steps the scale down: subtracting 1 while above 1 and halving below
// it, never going under MinScale.
func ZoomOut(scale float64) float64 {
	if scale > zoomOutThreshold {
		return scale - 1
	}
	return math.Max(scale/2, MinScale)
}

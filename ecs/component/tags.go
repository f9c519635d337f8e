package component

// ViewTag marks the single entity that owns the Display and Input state.
type ViewTag struct{}

var ViewTagComponent = NewComponent[ViewTag]()

// MainImageTag marks the image being outlined.
type MainImageTag struct{}

var MainImageTagComponent = NewComponent[MainImageTag]()

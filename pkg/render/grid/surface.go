package grid

// Surface is the measurable rendering capability: it reports the natural
// height of text rendered at a given width, in whatever unit the surface
// uses (terminal lines, pixels). The sync pass only ever needs this one
// operation, so tests can supply fixed measurements.
type Surface interface {
	MeasureHeight(text string, width int) int
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(text string, width int) int

func (f SurfaceFunc) MeasureHeight(text string, width int) int {
	return f(text, width)
}

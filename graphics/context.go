package graphics

import "github.com/gogpu/gg"

// Device is a rendering backend a surface draws through.
type Device interface {
	Name() string
	// NewRenderer returns a renderer for a width x height target. The
	// caller destroys it before the device is torn down.
	NewRenderer(width, height int) (Renderer, error)
	// Finish blocks until all work submitted so far has completed.
	Finish() error
}

// Renderer rasterizes fills and strokes into a surface's pixmap.
type Renderer interface {
	gg.Renderer
	SetAntiAlias(on bool)
	Destroy()
}

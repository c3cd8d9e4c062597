package vulkan

import "github.com/richinsley/gocanvas/graphics"

var _ graphics.Device = (*Vulkan)(nil)

func (v *Vulkan) Name() string { return "vulkan" }

// NewRenderer returns a CPU rasterizer. Nothing is submitted to the graphics
// queue; Finish only waits for it to go idle before readback.
func (v *Vulkan) NewRenderer(width, height int) (graphics.Renderer, error) {
	return graphics.NewSoftware(width, height), nil
}

// Finish drains the graphics queue.
func (v *Vulkan) Finish() error {
	return v.WaitIdle()
}

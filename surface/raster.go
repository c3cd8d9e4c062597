package surface

import (
	"image"

	"github.com/richinsley/gocanvas/graphics"
)

// Raster is a surface rendered on the CPU.
type Raster struct {
	*contextSurface
}

var (
	_ Surface = (*Raster)(nil)
	_ Peeker  = (*Raster)(nil)
)

func NewRaster(width, height int) (*Raster, error) {
	s, err := newContextSurface(graphics.CPU{}, width, height)
	if err != nil {
		return nil, err
	}
	return &Raster{s}, nil
}

// PeekPixels aliases the pixmap.
func (s *Raster) PeekPixels() (*image.RGBA, bool) {
	pm := s.ctx.ResizeTarget()
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: 4 * pm.Width(),
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}, true
}

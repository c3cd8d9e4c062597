// Package surface provides the pixel targets the programs draw on: a CPU
// raster, a device-backed GPU surface and recorded pictures replayed onto
// either.
package surface

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/richinsley/gocanvas/canvas"
	"github.com/richinsley/gocanvas/graphics"
)

var ErrSize = errors.New("invalid surface size")

// Surface owns pixel storage and the canvas that draws into it.
type Surface interface {
	Width() int
	Height() int
	Canvas() canvas.Canvas
	// Flush waits for every submitted draw to land in the pixels.
	Flush() error
	// ReadPixels returns a copy of the pixels after flushing.
	ReadPixels() (*image.RGBA, error)
	Close() error
}

// Peeker is implemented by surfaces whose pixels live in CPU memory.
type Peeker interface {
	// PeekPixels returns the live pixels without copying. ok is false when
	// they are not directly addressable.
	PeekPixels() (img *image.RGBA, ok bool)
}

// contextSurface is a surface drawn through a gg context and a renderer
// created by a graphics device.
type contextSurface struct {
	dev      graphics.Device
	renderer graphics.Renderer
	ctx      *gg.Context
	canvas   *canvas.Context
}

func newContextSurface(dev graphics.Device, width, height int) (*contextSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	r, err := dev.NewRenderer(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s renderer: %w", dev.Name(), err)
	}
	ctx := gg.NewContext(width, height, gg.WithRenderer(r))
	return &contextSurface{
		dev:      dev,
		renderer: r,
		ctx:      ctx,
		canvas:   canvas.NewContext(ctx, r),
	}, nil
}

func (s *contextSurface) Width() int            { return s.ctx.Width() }
func (s *contextSurface) Height() int           { return s.ctx.Height() }
func (s *contextSurface) Canvas() canvas.Canvas { return s.canvas }

// Context returns the gg context pictures are played back into.
func (s *contextSurface) Context() *gg.Context { return s.ctx }

func (s *contextSurface) Flush() error {
	return s.dev.Finish()
}

func (s *contextSurface) ReadPixels() (*image.RGBA, error) {
	if err := s.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush %s surface: %w", s.dev.Name(), err)
	}
	return s.ctx.ResizeTarget().ToImage(), nil
}

// Close destroys the renderer, then the context.
func (s *contextSurface) Close() error {
	s.renderer.Destroy()
	return s.ctx.Close()
}

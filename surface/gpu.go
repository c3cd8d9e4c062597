package surface

import (
	"fmt"
	"image"

	"github.com/richinsley/gocanvas/graphics"
	xdraw "golang.org/x/image/draw"
)

// GPU is a surface rendered by a graphics device. Its pixels are not
// directly addressable: output goes through ReadPixels.
type GPU struct {
	*contextSurface
}

var _ Surface = (*GPU)(nil)

func NewGPU(dev graphics.Device, width, height int) (*GPU, error) {
	s, err := newContextSurface(dev, width, height)
	if err != nil {
		return nil, err
	}
	return &GPU{s}, nil
}

// Upload converts img into a private RGBA copy on the CPU and then waits for
// dev to go idle. The copy stays in host memory; no device buffer is
// allocated.
func Upload(dev graphics.Device, img image.Image) (*image.RGBA, error) {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	if err := dev.Finish(); err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	return dst, nil
}

package canvas

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Backend streams every operation straight into a recording backend, without
// an intermediate recording. The caller owns Begin and End.
type Backend struct {
	b             recording.Backend
	width, height int
	brush         recording.SolidBrush
}

var _ Canvas = (*Backend)(nil)

func NewBackend(b recording.Backend, width, height int) *Backend {
	return &Backend{b: b, width: width, height: height, brush: recording.NewSolidBrush(gg.Black)}
}

func (c *Backend) Clear(col color.Color) {
	rect := recording.NewRect(0, 0, float64(c.width), float64(c.height))
	c.b.FillRect(rect, recording.NewSolidBrush(gg.FromColor(col)))
}

func (c *Backend) SetColor(col color.Color) {
	c.brush = recording.NewSolidBrush(gg.FromColor(col))
}

// SetAntiAlias is a no-op: vector output is resolution independent.
func (c *Backend) SetAntiAlias(bool) {}

func (c *Backend) DrawCircle(x, y, r float64) error {
	c.b.FillPath(circlePath(x, y, r), c.brush, recording.FillRuleNonZero)
	return nil
}

func (c *Backend) DrawImage(img image.Image, x, y int) error {
	if img == nil {
		return errors.New("nil image")
	}
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	src := recording.NewRect(0, 0, w, h)
	dst := recording.NewRect(float64(x), float64(y), w, h)
	c.b.DrawImage(img, src, dst, recording.DefaultImageOptions())
	return nil
}

// Package canvas is the drawing interface the scene is written against, with
// adapters for every kind of target gg offers.
package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Canvas draws onto a surface, a recording or a vector stream.
type Canvas interface {
	// Clear fills the whole target with c. The current fill color is kept.
	Clear(c color.Color)
	SetColor(c color.Color)
	SetAntiAlias(on bool)
	DrawCircle(x, y, r float64) error
	// DrawImage draws img unscaled with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y int) error
}

func circlePath(x, y, r float64) *gg.Path {
	p := gg.NewPath()
	p.Circle(x, y, r)
	return p
}

// Package scene is the fixed picture every program draws.
package scene

import (
	"image"
	"image/color"

	"github.com/richinsley/gocanvas/canvas"
)

// Size is the default target width and height.
const Size = 300

// Radius of the circle, in pixels.
const Radius = 30

var (
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Fill       = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// Draw clears c and fills an anti-aliased circle centered on a width x
// height target. The center is rounded down to whole pixels.
func Draw(c canvas.Canvas, width, height int) error {
	c.Clear(Background)
	c.SetAntiAlias(true)
	c.SetColor(Fill)
	return c.DrawCircle(float64(width/2), float64(height/2), Radius)
}

// Clear only clears c to the background color.
func Clear(c canvas.Canvas) {
	c.Clear(Background)
}

// DrawImage clears c and draws img at the origin.
func DrawImage(c canvas.Canvas, img image.Image) error {
	c.Clear(Background)
	return c.DrawImage(img, 0, 0)
}

// Drawable is self-contained drawing content with known bounds.
type Drawable interface {
	Bounds() image.Rectangle
	Draw(c canvas.Canvas) error
}

// Circle is the scene as a Drawable.
type Circle struct {
	Width, Height int
}

func (d Circle) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width, d.Height)
}

func (d Circle) Draw(c canvas.Canvas) error {
	return Draw(c, d.Width, d.Height)
}

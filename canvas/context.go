package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/richinsley/gocanvas/graphics"
)

// Context draws through a gg context. Anti-aliasing is a property of the
// renderer the context was created with, so it is toggled there.
type Context struct {
	ctx      *gg.Context
	renderer graphics.Renderer
}

var _ Canvas = (*Context)(nil)

// NewContext wraps ctx. renderer may be nil when ctx uses gg's default
// renderer, in which case SetAntiAlias has no effect.
func NewContext(ctx *gg.Context, renderer graphics.Renderer) *Context {
	return &Context{ctx: ctx, renderer: renderer}
}

func (c *Context) Clear(col color.Color) {
	c.ctx.ClearWithColor(gg.FromColor(col))
}

func (c *Context) SetColor(col color.Color) {
	c.ctx.SetColor(col)
}

func (c *Context) SetAntiAlias(on bool) {
	if c.renderer != nil {
		c.renderer.SetAntiAlias(on)
	}
}

func (c *Context) DrawCircle(x, y, r float64) error {
	c.ctx.DrawCircle(x, y, r)
	return c.ctx.Fill()
}

func (c *Context) DrawImage(img image.Image, x, y int) error {
	c.ctx.DrawImage(gg.ImageBufFromImage(img), float64(x), float64(y))
	return nil
}

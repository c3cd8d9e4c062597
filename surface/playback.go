package surface

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
)

// playback draws recorded commands into an existing gg context. Recorded
// geometry is already in device space, so paths are drawn untransformed.
type playback struct {
	ctx *gg.Context
	err error
}

var _ recording.Backend = (*playback)(nil)

func (b *playback) Begin(width, height int) error { return nil }

// End reports the first failed draw.
func (b *playback) End() error { return b.err }

func (b *playback) Save()    { b.ctx.Push() }
func (b *playback) Restore() { b.ctx.Pop() }

func (b *playback) SetTransform(recording.Matrix) {}

func (b *playback) SetClip(path *gg.Path, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.setPath(path)
	b.ctx.SetFillRule(fillRule(rule))
	b.ctx.Clip()
}

func (b *playback) ClearClip() { b.ctx.ResetClip() }

func (b *playback) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.ctx.SetFillBrush(ggBrush(brush))
	b.ctx.SetFillRule(fillRule(rule))
	b.setPath(path)
	b.check(b.ctx.Fill())
}

func (b *playback) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if path == nil {
		return
	}
	b.ctx.SetStrokeBrush(ggBrush(brush))
	b.ctx.SetLineWidth(stroke.Width)
	b.setPath(path)
	b.check(b.ctx.Stroke())
}

func (b *playback) FillRect(rect recording.Rect, brush recording.Brush) {
	b.ctx.SetFillBrush(ggBrush(brush))
	b.ctx.Identity()
	b.ctx.DrawRectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height())
	b.check(b.ctx.Fill())
}

// DrawImage draws the src part of img into dst, scaling when the sizes
// differ.
func (b *playback) DrawImage(img image.Image, src, dst recording.Rect, _ recording.ImageOptions) {
	if img == nil {
		return
	}
	sr := image.Rect(int(src.MinX), int(src.MinY), int(src.MaxX), int(src.MaxY))
	if sr.Empty() {
		sr = img.Bounds()
	}
	w, h := int(dst.Width()), int(dst.Height())
	if w <= 0 || h <= 0 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	if sr.Dx() == w && sr.Dy() == h {
		xdraw.Draw(scaled, scaled.Bounds(), img, sr.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, sr, xdraw.Src, nil)
	}
	b.ctx.Identity()
	b.ctx.DrawImage(gg.ImageBufFromImage(scaled), dst.MinX, dst.MinY)
}

// DrawText is not supported: recordings carry no font faces.
func (b *playback) DrawText(string, float64, float64, text.Face, recording.Brush) {}

func (b *playback) setPath(path *gg.Path) {
	b.ctx.Identity()
	b.ctx.ClearPath()
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			b.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			b.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			b.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			b.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			b.ctx.ClosePath()
		}
	}
}

func (b *playback) check(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

func fillRule(rule recording.FillRule) gg.FillRule {
	if rule == recording.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

// ggBrush converts solid and linear gradient brushes. Anything else paints
// black.
func ggBrush(brush recording.Brush) gg.Brush {
	switch br := brush.(type) {
	case recording.SolidBrush:
		return gg.Solid(br.Color)
	case *recording.LinearGradientBrush:
		grad := gg.NewLinearGradientBrush(br.Start.X, br.Start.Y, br.End.X, br.End.Y)
		for _, stop := range br.Stops {
			grad.AddColorStop(stop.Offset, stop.Color)
		}
		return grad
	}
	return gg.Solid(gg.Black)
}

package vector

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dkit"
	xdraw "golang.org/x/image/draw"
)

// gcBackend replays recording commands onto a draw2d graphic context. The
// SVG and PDF backends embed it and own Begin and End.
type gcBackend struct {
	gc draw2d.GraphicContext
}

func (b *gcBackend) Save()    { b.gc.Save() }
func (b *gcBackend) Restore() { b.gc.Restore() }

// SetTransform is ignored: recorded geometry is already in device space.
func (b *gcBackend) SetTransform(recording.Matrix) {}

// draw2d has no clip support.
func (b *gcBackend) SetClip(*gg.Path, recording.FillRule) {}
func (b *gcBackend) ClearClip()                           {}

func (b *gcBackend) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.gc.SetFillColor(brushColor(brush))
	if rule == recording.FillRuleEvenOdd {
		b.gc.SetFillRule(draw2d.FillRuleEvenOdd)
	} else {
		b.gc.SetFillRule(draw2d.FillRuleWinding)
	}
	b.setPath(path)
	b.gc.Fill()
}

func (b *gcBackend) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if path == nil {
		return
	}
	b.gc.SetStrokeColor(brushColor(brush))
	b.gc.SetLineWidth(stroke.Width)
	if len(stroke.DashPattern) > 0 {
		b.gc.SetLineDash(stroke.DashPattern, stroke.DashOffset)
	} else {
		b.gc.SetLineDash(nil, 0)
	}
	b.setPath(path)
	b.gc.Stroke()
}

func (b *gcBackend) FillRect(rect recording.Rect, brush recording.Brush) {
	b.gc.SetFillColor(brushColor(brush))
	b.gc.SetFillRule(draw2d.FillRuleWinding)
	b.gc.BeginPath()
	draw2dkit.Rectangle(b.gc, rect.MinX, rect.MinY, rect.MaxX, rect.MaxY)
	b.gc.Fill()
}

func (b *gcBackend) DrawImage(img image.Image, src, dst recording.Rect, _ recording.ImageOptions) {
	if img == nil {
		return
	}
	sr := image.Rect(int(src.MinX), int(src.MinY), int(src.MaxX), int(src.MaxY))
	if sr.Empty() {
		sr = img.Bounds()
	}
	crop := image.NewRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
	xdraw.Draw(crop, crop.Bounds(), img, sr.Min, xdraw.Src)

	b.gc.Save()
	defer b.gc.Restore()
	b.gc.SetMatrixTransform(draw2d.NewTranslationMatrix(dst.MinX, dst.MinY))
	if sx, sy := dst.Width()/float64(sr.Dx()), dst.Height()/float64(sr.Dy()); sx != 1 || sy != 1 {
		b.gc.ComposeMatrixTransform(draw2d.NewScaleMatrix(sx, sy))
	}
	b.gc.DrawImage(crop)
}

// DrawText is not supported: recordings carry no font faces.
func (b *gcBackend) DrawText(string, float64, float64, text.Face, recording.Brush) {}

func (b *gcBackend) setPath(path *gg.Path) {
	b.gc.BeginPath()
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			b.gc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			b.gc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			b.gc.QuadCurveTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			b.gc.CubicCurveTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			b.gc.Close()
		}
	}
}

// brushColor flattens brush to one color. Gradients use their first stop.
func brushColor(brush recording.Brush) color.Color {
	switch br := brush.(type) {
	case recording.SolidBrush:
		return br.Color.Color()
	case *recording.LinearGradientBrush:
		if len(br.Stops) > 0 {
			return br.Stops[0].Color.Color()
		}
	case *recording.RadialGradientBrush:
		if len(br.Stops) > 0 {
			return br.Stops[0].Color.Color()
		}
	}
	return color.Black
}

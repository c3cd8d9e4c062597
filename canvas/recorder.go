package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Recorder records into a gg recording. Coverage is decided at playback, so
// SetAntiAlias is only remembered.
type Recorder struct {
	rec   *recording.Recorder
	color gg.RGBA
	aa    bool
}

var _ Canvas = (*Recorder)(nil)

func NewRecorder(rec *recording.Recorder) *Recorder {
	return &Recorder{rec: rec, color: gg.Black, aa: true}
}

func (r *Recorder) Clear(col color.Color) {
	r.rec.SetColor(gg.FromColor(col))
	r.rec.FillRectangle(0, 0, float64(r.rec.Width()), float64(r.rec.Height()))
	r.rec.SetColor(r.color)
}

func (r *Recorder) SetColor(col color.Color) {
	r.color = gg.FromColor(col)
	r.rec.SetColor(r.color)
}

func (r *Recorder) SetAntiAlias(on bool) { r.aa = on }

func (r *Recorder) DrawCircle(x, y, radius float64) error {
	r.rec.DrawCircle(x, y, radius)
	r.rec.Fill()
	return nil
}

func (r *Recorder) DrawImage(img image.Image, x, y int) error {
	r.rec.DrawImage(img, x, y)
	return nil
}

package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
	"github.com/richinsley/gocanvas/graphics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	blue  = color.RGBA{0x00, 0x00, 0xff, 0xff}
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestContextCircle(t *testing.T) {
	r := graphics.NewSoftware(64, 64)
	ctx := gg.NewContext(64, 64, gg.WithRenderer(r))
	defer ctx.Close()
	c := NewContext(ctx, r)

	c.Clear(white)
	c.SetColor(red)
	require.NoError(t, c.DrawCircle(32, 32, 10))

	img := ctx.Image()
	assert.Equal(t, white, rgbaAt(img, 0, 0))
	assert.Equal(t, red, rgbaAt(img, 32, 32))
}

func TestContextAntiAliasReachesRenderer(t *testing.T) {
	r := graphics.NewSoftware(8, 8)
	ctx := gg.NewContext(8, 8, gg.WithRenderer(r))
	defer ctx.Close()
	c := NewContext(ctx, r)

	c.SetAntiAlias(false)
	assert.False(t, r.AntiAlias())
	c.SetAntiAlias(true)
	assert.True(t, r.AntiAlias())

	// No renderer: nothing to toggle, nothing to panic on.
	NewContext(ctx, nil).SetAntiAlias(false)
}

func TestContextDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, blue)
		}
	}
	ctx := gg.NewContext(16, 16)
	defer ctx.Close()
	c := NewContext(ctx, nil)
	c.Clear(white)
	require.NoError(t, c.DrawImage(src, 2, 2))

	img := ctx.Image()
	assert.Equal(t, white, rgbaAt(img, 0, 0))
	assert.Equal(t, blue, rgbaAt(img, 3, 3))
	assert.Equal(t, white, rgbaAt(img, 10, 10))
}

func TestRecorderCommands(t *testing.T) {
	rec := recording.NewRecorder(300, 300)
	c := NewRecorder(rec)
	c.Clear(white)
	c.SetAntiAlias(true)
	c.SetColor(red)
	require.NoError(t, c.DrawCircle(150, 150, 30))

	var rects, fills int
	for _, cmd := range rec.FinishRecording().Commands() {
		switch cmd := cmd.(type) {
		case recording.FillRectCommand:
			rects++
			assert.Equal(t, recording.NewRect(0, 0, 300, 300), cmd.Rect)
		case recording.FillPathCommand:
			fills++
		}
	}
	assert.Equal(t, 1, rects)
	assert.Equal(t, 1, fills)
}

// callLog is a recording.Backend that remembers what it was asked to do.
type callLog struct {
	calls  []string
	brush  recording.Brush
	rect   recording.Rect
	dst    recording.Rect
	circle gg.DetectedShape
}

func (l *callLog) Begin(int, int) error                                          { return nil }
func (l *callLog) End() error                                                    { return nil }
func (l *callLog) Save()                                                         {}
func (l *callLog) Restore()                                                      {}
func (l *callLog) SetTransform(recording.Matrix)                                 {}
func (l *callLog) SetClip(*gg.Path, recording.FillRule)                          {}
func (l *callLog) ClearClip()                                                    {}
func (l *callLog) StrokePath(*gg.Path, recording.Brush, recording.Stroke)        {}
func (l *callLog) DrawText(string, float64, float64, text.Face, recording.Brush) {}

func (l *callLog) FillPath(p *gg.Path, b recording.Brush, _ recording.FillRule) {
	l.calls = append(l.calls, "fill")
	l.brush = b
	l.circle = gg.DetectShape(p)
}

func (l *callLog) FillRect(r recording.Rect, b recording.Brush) {
	l.calls = append(l.calls, "rect")
	l.rect = r
}

func (l *callLog) DrawImage(_ image.Image, _, dst recording.Rect, _ recording.ImageOptions) {
	l.calls = append(l.calls, "image")
	l.dst = dst
}

func TestBackendStreamsOperations(t *testing.T) {
	l := &callLog{}
	c := NewBackend(l, 300, 200)
	c.Clear(white)
	c.SetColor(red)
	require.NoError(t, c.DrawCircle(150, 100, 30))
	require.NoError(t, c.DrawImage(image.NewRGBA(image.Rect(0, 0, 10, 5)), 4, 6))

	assert.Equal(t, []string{"rect", "fill", "image"}, l.calls)
	assert.Equal(t, recording.NewRect(0, 0, 300, 200), l.rect)
	assert.Equal(t, recording.NewSolidBrush(gg.FromColor(red)), l.brush)
	assert.Equal(t, gg.ShapeCircle, l.circle.Kind)
	assert.InDelta(t, 30, l.circle.RadiusX, 1e-9)
	assert.Equal(t, recording.NewRect(4, 6, 10, 5), l.dst)

	assert.Error(t, c.DrawImage(nil, 0, 0))
}

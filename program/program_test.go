package program

import (
	"errors"
	"image"
	"image/color"
	"os"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/richinsley/gocanvas/graphics"
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/output"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	red   = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	green = color.NRGBA{0x00, 0xff, 0x00, 0xff}
)

func quiet() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// inTempDir runs the test from an empty working directory, where the
// programs write their fixed output names.
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func assertScenePNG(t *testing.T) {
	t.Helper()
	img, err := output.LoadImage(output.PNGFile)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 300, 300), img.Bounds())
	assert.Equal(t, white, nrgbaAt(img, 0, 0))
	assert.Equal(t, red, nrgbaAt(img, 150, 150))
}

type scripted struct {
	initErr, drawErr error
	calls            []string
}

func (s *scripted) Init() error    { s.calls = append(s.calls, "init"); return s.initErr }
func (s *scripted) Draw() error    { s.calls = append(s.calls, "draw"); return s.drawErr }
func (s *scripted) Cleanup() error { s.calls = append(s.calls, "cleanup"); return nil }

func TestRunSequence(t *testing.T) {
	s := &scripted{}
	require.NoError(t, Run(s))
	assert.Equal(t, []string{"init", "draw", "cleanup"}, s.calls)

	boom := errors.New("boom")
	s = &scripted{initErr: boom}
	assert.ErrorIs(t, Run(s), boom)
	assert.Equal(t, []string{"init", "cleanup"}, s.calls)

	s = &scripted{drawErr: boom}
	assert.ErrorIs(t, Run(s), boom)
	assert.Equal(t, []string{"init", "draw", "cleanup"}, s.calls)
}

func TestCanvasRaster(t *testing.T) {
	inTempDir(t)
	p := NewCanvasRaster(options.Default(), quiet())
	require.NoError(t, Run(p))
	assertScenePNG(t)
	assert.Equal(t, []string{"surface"}, p.Released())
}

func TestDrawable(t *testing.T) {
	inTempDir(t)
	p := NewDrawable(options.Default(), quiet())
	require.NoError(t, Run(p))
	assertScenePNG(t)
	assert.Equal(t, []string{"drawable", "surface"}, p.Released())
}

func TestCanvasPicture(t *testing.T) {
	inTempDir(t)
	p := NewCanvasPicture(options.Default(), quiet())
	require.NoError(t, Run(p))
	assertScenePNG(t)
	assert.Equal(t, []string{"picture", "surface"}, p.Released())
}

func TestRasterProgramsAgree(t *testing.T) {
	read := func(p Test) []byte {
		inTempDir(t)
		require.NoError(t, Run(p))
		img, err := output.LoadImage(output.PNGFile)
		require.NoError(t, err)
		return imaging.Clone(img).Pix
	}
	raster := read(NewCanvasRaster(options.Default(), quiet()))
	assert.Equal(t, raster, read(NewCanvasRaster(options.Default(), quiet())))
	assert.Equal(t, raster, read(NewDrawable(options.Default(), quiet())))
}

func writeInput(t *testing.T, w, h int) string {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetNRGBA(x, y, green)
		}
	}
	path := "input.png"
	require.NoError(t, imaging.Save(src, path))
	return path
}

func TestImageRaster(t *testing.T) {
	inTempDir(t)
	p := NewImageRaster(writeInput(t, 40, 20), quiet())
	require.NoError(t, Run(p))

	img, err := output.LoadImage(output.PNGFile)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	assert.Equal(t, green, nrgbaAt(img, 20, 10))
	assert.Equal(t, []string{"surface", "image"}, p.Released())
}

func TestImageRasterMissingInput(t *testing.T) {
	inTempDir(t)
	p := NewImageRaster("missing.png", quiet())
	assert.ErrorIs(t, Run(p), output.ErrLoad)
	assert.Empty(t, p.Released())
	_, err := os.Stat(output.PNGFile)
	assert.True(t, os.IsNotExist(err))
}

func TestCanvasNullWritesNothing(t *testing.T) {
	inTempDir(t)
	p := NewCanvasNull(options.Default(), quiet())
	require.NoError(t, Run(p))
	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, []string{"canvas"}, p.Released())
}

func TestCanvasSVG(t *testing.T) {
	inTempDir(t)
	p := NewCanvasSVG(options.Default(), quiet())
	require.NoError(t, Run(p))
	data, err := os.ReadFile(output.SVGFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="300" height="300" viewBox="0 0 300 300"`)
	assert.Equal(t, []string{"canvas", "writer"}, p.Released())
}

func TestCanvasPDF(t *testing.T) {
	inTempDir(t)
	p := NewCanvasPDF(options.Default(), quiet())
	require.NoError(t, Run(p))
	data, err := os.ReadFile(output.PDFFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Equal(t, []string{"document", "writer"}, p.Released())
}

// fakeDevice is a CPU device standing in for a GPU.
type fakeDevice struct {
	graphics.CPU
	finishes int
	released bool
}

func (d *fakeDevice) Name() string { return "fake" }

func (d *fakeDevice) Finish() error {
	d.finishes++
	return nil
}

func (d *fakeDevice) open(options.Options, logrus.FieldLogger) (graphics.Device, func() error, error) {
	return d, func() error { d.released = true; return nil }, nil
}

func TestCanvasGPU(t *testing.T) {
	inTempDir(t)
	dev := &fakeDevice{}
	p := NewCanvasGPU(options.Default(), dev.open, quiet())
	require.NoError(t, Run(p))
	assertScenePNG(t)
	assert.GreaterOrEqual(t, dev.finishes, 2, "flush before dump and readback")
	assert.True(t, dev.released)
	assert.Equal(t, []string{"surface", "fake"}, p.Released())
}

func TestCanvasGPUOpenFailure(t *testing.T) {
	inTempDir(t)
	boom := errors.New("no device")
	open := func(options.Options, logrus.FieldLogger) (graphics.Device, func() error, error) {
		return nil, nil, boom
	}
	p := NewCanvasGPU(options.Default(), open, quiet())
	assert.ErrorIs(t, Run(p), boom)
	assert.Empty(t, p.Released())
}

func TestImageGPU(t *testing.T) {
	for _, upload := range []bool{true, false} {
		inTempDir(t)
		dev := &fakeDevice{}
		o := options.Default()
		o.Upload = upload
		p := NewImageGPU(writeInput(t, 16, 8), o, dev.open, quiet())
		require.NoError(t, Run(p))

		img, err := output.LoadImage(output.PNGFile)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
		assert.Equal(t, green, nrgbaAt(img, 8, 4))
		assert.Equal(t, []string{"surface", "image", "fake"}, p.Released())
	}
}

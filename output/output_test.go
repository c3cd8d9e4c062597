package output

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/richinsley/gocanvas/graphics"
	"github.com/richinsley/gocanvas/scene"
	"github.com/richinsley/gocanvas/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	red   = color.NRGBA{0xff, 0x00, 0x00, 0xff}
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestDumpRasterSurface(t *testing.T) {
	s, err := surface.NewRaster(scene.Size, scene.Size)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, scene.Draw(s.Canvas(), s.Width(), s.Height()))

	path := filepath.Join(t.TempDir(), PNGFile)
	require.NoError(t, DumpSurface(s, path))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, scene.Size, scene.Size), img.Bounds())
	assert.Equal(t, white, nrgbaAt(img, 0, 0))
	assert.Equal(t, red, nrgbaAt(img, 150, 150))
}

// readbackDevice fails the test if the surface is peeked instead of read.
type readbackDevice struct {
	graphics.CPU
	finished bool
}

func (d *readbackDevice) Finish() error {
	d.finished = true
	return nil
}

func TestDumpGPUSurfaceReadsBack(t *testing.T) {
	dev := &readbackDevice{}
	s, err := surface.NewGPU(dev, scene.Size, scene.Size)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, scene.Draw(s.Canvas(), s.Width(), s.Height()))

	path := filepath.Join(t.TempDir(), PNGFile)
	require.NoError(t, DumpSurface(s, path))
	assert.True(t, dev.finished)

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, red, nrgbaAt(img, 150, 150))
}

func TestDumpIsIdempotent(t *testing.T) {
	dump := func(name string) []byte {
		s, err := surface.NewRaster(scene.Size, scene.Size)
		require.NoError(t, err)
		defer s.Close()
		require.NoError(t, scene.Draw(s.Canvas(), s.Width(), s.Height()))
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, DumpSurface(s, path))
		img, err := LoadImage(path)
		require.NoError(t, err)
		return imaging.Clone(img).Pix
	}
	assert.Equal(t, dump("a.png"), dump("b.png"))
}

func TestDumpCreateFails(t *testing.T) {
	s, err := surface.NewRaster(4, 4)
	require.NoError(t, err)
	defer s.Close()
	err = DumpSurface(s, filepath.Join(t.TempDir(), "missing", PNGFile))
	assert.ErrorIs(t, err, ErrCreate)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, ErrLoad)
}

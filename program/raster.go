package program

import (
	"image"

	"github.com/richinsley/gocanvas/canvas"
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/output"
	"github.com/richinsley/gocanvas/scene"
	"github.com/richinsley/gocanvas/surface"
	"github.com/sirupsen/logrus"
)

// CanvasRaster draws the scene on a CPU raster surface and writes rt.png.
type CanvasRaster struct {
	base
	surf *surface.Raster
}

func NewCanvasRaster(o options.Options, log logrus.FieldLogger) *CanvasRaster {
	return &CanvasRaster{base: base{opts: o, log: log}}
}

func (t *CanvasRaster) Init() error {
	s, err := surface.NewRaster(t.opts.Width, t.opts.Height)
	if err != nil {
		return err
	}
	t.surf = s
	t.teardown.Push("surface", s.Close)
	return nil
}

func (t *CanvasRaster) Draw() error {
	if err := scene.Draw(t.surf.Canvas(), t.opts.Width, t.opts.Height); err != nil {
		return err
	}
	return output.DumpSurface(t.surf, output.PNGFile)
}

// Drawable draws the scene through a Drawable onto a raster surface.
type Drawable struct {
	base
	surf     *surface.Raster
	drawable scene.Drawable
}

func NewDrawable(o options.Options, log logrus.FieldLogger) *Drawable {
	return &Drawable{base: base{opts: o, log: log}}
}

func (t *Drawable) Init() error {
	s, err := surface.NewRaster(t.opts.Width, t.opts.Height)
	if err != nil {
		return err
	}
	t.surf = s
	t.teardown.Push("surface", s.Close)
	t.drawable = scene.Circle{Width: t.opts.Width, Height: t.opts.Height}
	t.teardown.PushFunc("drawable", func() { t.drawable = nil })
	return nil
}

func (t *Drawable) Draw() error {
	if err := t.drawable.Draw(t.surf.Canvas()); err != nil {
		return err
	}
	return output.DumpSurface(t.surf, output.PNGFile)
}

// CanvasPicture records the scene and plays it back onto a raster surface.
type CanvasPicture struct {
	base
	surf *surface.Raster
	pic  *surface.Picture
}

func NewCanvasPicture(o options.Options, log logrus.FieldLogger) *CanvasPicture {
	return &CanvasPicture{base: base{opts: o, log: log}}
}

func (t *CanvasPicture) Init() error {
	s, err := surface.NewRaster(t.opts.Width, t.opts.Height)
	if err != nil {
		return err
	}
	t.surf = s
	t.teardown.Push("surface", s.Close)

	w, h := t.opts.Width, t.opts.Height
	pic, err := surface.Record(w, h, func(c canvas.Canvas) error {
		return scene.Draw(c, w, h)
	})
	if err != nil {
		return err
	}
	t.pic = pic
	t.teardown.PushFunc("picture", func() { t.pic = nil })
	t.log.WithField("commands", pic.Len()).Debug("picture recorded")
	return nil
}

func (t *CanvasPicture) Draw() error {
	if err := t.pic.Playback(t.surf); err != nil {
		return err
	}
	return output.DumpSurface(t.surf, output.PNGFile)
}

// ImageRaster draws an input image on a raster surface of the same size.
type ImageRaster struct {
	base
	path string
	img  image.Image
	surf *surface.Raster
}

func NewImageRaster(path string, log logrus.FieldLogger) *ImageRaster {
	return &ImageRaster{base: base{log: log}, path: path}
}

func (t *ImageRaster) Init() error {
	img, err := output.LoadImage(t.path)
	if err != nil {
		return err
	}
	t.img = img
	t.teardown.PushFunc("image", func() { t.img = nil })

	b := img.Bounds()
	s, err := surface.NewRaster(b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	t.surf = s
	t.teardown.Push("surface", s.Close)
	return nil
}

func (t *ImageRaster) Draw() error {
	if err := scene.DrawImage(t.surf.Canvas(), t.img); err != nil {
		return err
	}
	return output.DumpSurface(t.surf, output.PNGFile)
}

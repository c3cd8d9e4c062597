package program

import (
	"fmt"
	"os"

	"github.com/gogpu/gg/recording"
	"github.com/richinsley/gocanvas/canvas"
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/output"
	"github.com/richinsley/gocanvas/scene"
	"github.com/richinsley/gocanvas/vector"
	"github.com/sirupsen/logrus"
)

// CanvasNull clears a canvas that draws nowhere.
type CanvasNull struct {
	base
	canvas canvas.Canvas
}

func NewCanvasNull(o options.Options, log logrus.FieldLogger) *CanvasNull {
	return &CanvasNull{base: base{opts: o, log: log}}
}

func (t *CanvasNull) Init() error {
	b, err := recording.NewBackend(vector.NameNull)
	if err != nil {
		return err
	}
	if err := b.Begin(t.opts.Width, t.opts.Height); err != nil {
		return err
	}
	t.canvas = canvas.NewBackend(b, t.opts.Width, t.opts.Height)
	t.teardown.Push("canvas", b.End)
	return nil
}

func (t *CanvasNull) Draw() error {
	scene.Clear(t.canvas)
	return nil
}

// CanvasSVG streams the scene into rt.svg. The document is written when the
// canvas is released, before the file is closed.
type CanvasSVG struct {
	base
	svg    *vector.SVG
	canvas canvas.Canvas
}

func NewCanvasSVG(o options.Options, log logrus.FieldLogger) *CanvasSVG {
	return &CanvasSVG{base: base{opts: o, log: log}}
}

func (t *CanvasSVG) Init() error {
	f, err := output.Create(output.SVGFile)
	if err != nil {
		return err
	}
	t.teardown.Push("writer", f.Close)

	b, err := recording.NewBackend(vector.NameSVG)
	if err != nil {
		return err
	}
	t.svg = b.(*vector.SVG)
	if err := t.svg.Begin(t.opts.Width, t.opts.Height); err != nil {
		return err
	}
	t.canvas = canvas.NewBackend(t.svg, t.opts.Width, t.opts.Height)
	t.teardown.Push("canvas", func() error { return t.finish(f) })
	return nil
}

func (t *CanvasSVG) finish(f *os.File) error {
	if err := t.svg.End(); err != nil {
		return err
	}
	if _, err := t.svg.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", output.SVGFile, err)
	}
	return nil
}

func (t *CanvasSVG) Draw() error {
	return scene.Draw(t.canvas, t.opts.Width, t.opts.Height)
}

// CanvasPDF draws the scene on the single page of rt.pdf.
type CanvasPDF struct {
	base
	doc *vector.Document
}

func NewCanvasPDF(o options.Options, log logrus.FieldLogger) *CanvasPDF {
	return &CanvasPDF{base: base{opts: o, log: log}}
}

func (t *CanvasPDF) Init() error {
	f, err := output.Create(output.PDFFile)
	if err != nil {
		return err
	}
	t.teardown.Push("writer", f.Close)
	t.doc = vector.NewDocument(f)
	t.teardown.PushFunc("document", func() { t.doc = nil })
	return nil
}

func (t *CanvasPDF) Draw() error {
	c, err := t.doc.BeginPage(t.opts.Width, t.opts.Height)
	if err != nil {
		return err
	}
	if err := scene.Draw(c, t.opts.Width, t.opts.Height); err != nil {
		return err
	}
	if err := t.doc.EndPage(); err != nil {
		return err
	}
	return t.doc.Close()
}

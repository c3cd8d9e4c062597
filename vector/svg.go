package vector

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/gg/recording"
	"github.com/llgcode/draw2d/draw2dsvg"
)

// SVG writes an SVG document.
type SVG struct {
	gcBackend
	svg           *draw2dsvg.Svg
	width, height int
}

var (
	_ recording.WriterBackend = (*SVG)(nil)
	_ recording.FileBackend   = (*SVG)(nil)
)

func NewSVG() *SVG {
	return &SVG{}
}

func (s *SVG) Begin(width, height int) error {
	s.width, s.height = width, height
	s.svg = draw2dsvg.NewSvg()
	s.svg.Width = strconv.Itoa(width)
	s.svg.Height = strconv.Itoa(height)
	s.svg.ViewBox = fmt.Sprintf("0 0 %d %d", width, height)
	s.gc = draw2dsvg.NewGraphicContext(s.svg)
	return nil
}

func (s *SVG) End() error {
	if s.svg == nil {
		return ErrNotStarted
	}
	return nil
}

// SaveToFile writes the document to path.
func (s *SVG) SaveToFile(path string) error {
	if s.svg == nil {
		return ErrNotStarted
	}
	return draw2dsvg.SaveToSvgFile(path, s.svg)
}

// WriteTo encodes the document the way SaveToFile does.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	if s.svg == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := draw2dsvg.WriteSvg(cw, s.svg)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

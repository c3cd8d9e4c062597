package vector

import (
	"fmt"
	"io"
	"time"

	"github.com/gogpu/gg/recording"
	"github.com/jung-kurt/gofpdf"
	"github.com/llgcode/draw2d/draw2dpdf"
	"github.com/richinsley/gocanvas/canvas"
)

// Producer is written into the document information dictionary.
const Producer = "gocanvas"

// PDF writes a paginated document. Every Begin opens a page of the given
// size in points; End closes it.
type PDF struct {
	gcBackend
	pdf *gofpdf.Fpdf
}

var (
	_ recording.WriterBackend = (*PDF)(nil)
	_ recording.FileBackend   = (*PDF)(nil)
)

func NewPDF() *PDF {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt"})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer(Producer, false)
	return &PDF{pdf: pdf}
}

// SetDate fixes the creation and modification dates, for reproducible output.
func (p *PDF) SetDate(t time.Time) {
	p.pdf.SetCreationDate(t)
	p.pdf.SetModificationDate(t)
}

func (p *PDF) Begin(width, height int) error {
	p.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: float64(width), Ht: float64(height)})
	if p.gc == nil {
		p.gc = draw2dpdf.NewGraphicContext(p.pdf)
	}
	return p.pdf.Error()
}

func (p *PDF) End() error {
	if p.gc == nil {
		return ErrNotStarted
	}
	return p.pdf.Error()
}

// Pages is the number of pages begun so far.
func (p *PDF) Pages() int { return p.pdf.PageCount() }

func (p *PDF) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := p.pdf.Output(cw)
	return cw.n, err
}

func (p *PDF) SaveToFile(path string) error {
	return p.pdf.OutputFileAndClose(path)
}

// Document is a page-at-a-time PDF stream: pages are drawn through a canvas
// and the finished document is written to w on Close.
type Document struct {
	pdf    *PDF
	w      io.Writer
	page   bool
	closed bool
}

func NewDocument(w io.Writer) *Document {
	return &Document{pdf: NewPDF(), w: w}
}

// PDF exposes the underlying backend.
func (d *Document) PDF() *PDF { return d.pdf }

// BeginPage opens a width x height page and returns its canvas.
func (d *Document) BeginPage(width, height int) (canvas.Canvas, error) {
	switch {
	case d.closed:
		return nil, ErrClosed
	case d.page:
		return nil, ErrPageOpen
	}
	if err := d.pdf.Begin(width, height); err != nil {
		return nil, fmt.Errorf("failed to begin page: %w", err)
	}
	d.page = true
	return canvas.NewBackend(d.pdf, width, height), nil
}

func (d *Document) EndPage() error {
	if !d.page {
		return ErrNoPage
	}
	d.page = false
	return d.pdf.End()
}

// Close ends an open page and writes the document. gofpdf adds one blank
// page to a document that has none.
func (d *Document) Close() error {
	if d.closed {
		return ErrClosed
	}
	if d.page {
		if err := d.EndPage(); err != nil {
			return err
		}
	}
	d.closed = true
	if _, err := d.pdf.WriteTo(d.w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

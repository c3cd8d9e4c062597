// Package output persists what the programs draw.
package output

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/richinsley/gocanvas/surface"
)

// Output file names, relative to the working directory.
const (
	PNGFile = "rt.png"
	SVGFile = "rt.svg"
	PDFFile = "rt.pdf"
)

var (
	ErrCreate = errors.New("failed to create")
	ErrEncode = errors.New("failed to encode pixmap")
	ErrLoad   = errors.New("failed to load")
)

// Create opens path for writing, truncating it.
func Create(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreate, path, err)
	}
	return f, nil
}

// DumpSurface encodes the pixels of s to path as PNG. The file is created
// before any pixels are read.
func DumpSurface(s surface.Surface, path string) error {
	f, err := Create(path)
	if err != nil {
		return err
	}
	if err := WriteSurface(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteSurface encodes the pixels of s to w as PNG. Pixels are peeked in
// place when the surface allows it, otherwise flushed and read back.
func WriteSurface(w io.Writer, s surface.Surface) error {
	img, err := pixels(s)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

func pixels(s surface.Surface) (*image.RGBA, error) {
	if p, ok := s.(surface.Peeker); ok {
		if img, ok := p.PeekPixels(); ok {
			return img, nil
		}
	}
	return s.ReadPixels()
}

// LoadImage decodes the image at path.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, path, err)
	}
	return img, nil
}

package graphics

import "github.com/gogpu/gg"

// Software renders on the CPU with gg's scanline rasterizer.
type Software struct {
	sw *gg.SoftwareRenderer
	aa bool
}

// NewSoftware returns an anti-aliasing software renderer.
func NewSoftware(width, height int) *Software {
	return &Software{sw: gg.NewSoftwareRenderer(width, height), aa: true}
}

func (s *Software) Fill(pixmap *gg.Pixmap, path *gg.Path, paint *gg.Paint) error {
	if s.aa {
		return s.sw.Fill(pixmap, path, paint)
	}
	return s.sw.FillNoAA(pixmap, path, paint)
}

func (s *Software) Stroke(pixmap *gg.Pixmap, path *gg.Path, paint *gg.Paint) error {
	return s.sw.Stroke(pixmap, path, paint)
}

func (s *Software) SetAntiAlias(on bool) { s.aa = on }

// AntiAlias reports whether fills are anti-aliased.
func (s *Software) AntiAlias() bool { return s.aa }

func (s *Software) Destroy() {}

// CPU is the Device behind raster surfaces. Work completes synchronously.
type CPU struct{}

func (CPU) Name() string { return "raster" }

func (CPU) NewRenderer(width, height int) (Renderer, error) {
	return NewSoftware(width, height), nil
}

func (CPU) Finish() error { return nil }

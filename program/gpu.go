package program

import (
	"errors"
	"image"

	"github.com/richinsley/gocanvas/gles"
	"github.com/richinsley/gocanvas/graphics"
	"github.com/richinsley/gocanvas/headless"
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/output"
	"github.com/richinsley/gocanvas/scene"
	"github.com/richinsley/gocanvas/surface"
	"github.com/richinsley/gocanvas/vulkan"
	"github.com/sirupsen/logrus"
)

// DeviceFunc brings up a graphics device and returns the step that tears it
// down. GPU programs must run on a locked OS thread.
type DeviceFunc func(o options.Options, log logrus.FieldLogger) (graphics.Device, func() error, error)

// OpenGLES brings up a headless EGL display and a GLES device on it.
func OpenGLES(o options.Options, log logrus.FieldLogger) (graphics.Device, func() error, error) {
	h, err := headless.NewHeadless(o.EGLLibrary, log)
	if err != nil {
		return nil, nil, err
	}
	dev, err := gles.NewDevice(h, log)
	if err != nil {
		return nil, nil, errors.Join(err, h.Shutdown())
	}
	return dev, h.Shutdown, nil
}

// OpenVulkan brings up a Vulkan instance, device and graphics queue.
func OpenVulkan(o options.Options, log logrus.FieldLogger) (graphics.Device, func() error, error) {
	v, err := vulkan.Open(o.VulkanLibrary, log)
	if err != nil {
		return nil, nil, err
	}
	return v, v.Shutdown, nil
}

// CanvasGPU draws the scene on a device surface, flushes it and writes
// rt.png through pixel readback.
type CanvasGPU struct {
	base
	open DeviceFunc
	dev  graphics.Device
	surf *surface.GPU
}

func NewCanvasGPU(o options.Options, open DeviceFunc, log logrus.FieldLogger) *CanvasGPU {
	return &CanvasGPU{base: base{opts: o, log: log}, open: open}
}

func (t *CanvasGPU) Init() error {
	dev, release, err := t.open(t.opts, t.log)
	if err != nil {
		return err
	}
	t.dev = dev
	t.teardown.Push(dev.Name(), release)

	s, err := surface.NewGPU(dev, t.opts.Width, t.opts.Height)
	if err != nil {
		return err
	}
	t.surf = s
	t.teardown.Push("surface", s.Close)
	return nil
}

func (t *CanvasGPU) Draw() error {
	if err := scene.Draw(t.surf.Canvas(), t.opts.Width, t.opts.Height); err != nil {
		return err
	}
	if err := t.surf.Flush(); err != nil {
		return err
	}
	return output.DumpSurface(t.surf, output.PNGFile)
}

// ImageGPU draws an input image on a device surface of the same size. With
// Upload set the image is first converted to a private RGBA copy.
type ImageGPU struct {
	base
	path string
	open DeviceFunc
	dev  graphics.Device
	img  image.Image
	surf *surface.GPU
}

func NewImageGPU(path string, o options.Options, open DeviceFunc, log logrus.FieldLogger) *ImageGPU {
	return &ImageGPU{base: base{opts: o, log: log}, path: path, open: open}
}

func (t *ImageGPU) Init() error {
	dev, release, err := t.open(t.opts, t.log)
	if err != nil {
		return err
	}
	t.dev = dev
	t.teardown.Push(dev.Name(), release)

	img, err := output.LoadImage(t.path)
	if err != nil {
		return err
	}
	if t.opts.Upload {
		up, err := surface.Upload(dev, img)
		if err != nil {
			return err
		}
		img = up
	}
	t.img = img
	t.teardown.PushFunc("image", func() { t.img = nil })

	b := img.Bounds()
	s, err := surface.NewGPU(dev, b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	t.surf = s
	t.teardown.Push("surface", s.Close)
	return nil
}

func (t *ImageGPU) Draw() error {
	if err := scene.DrawImage(t.surf.Canvas(), t.img); err != nil {
		return err
	}
	if err := t.surf.Flush(); err != nil {
		return err
	}
	return output.DumpSurface(t.surf, output.PNGFile)
}

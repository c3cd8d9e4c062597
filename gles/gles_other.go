//go:build !linux

package gles

import (
	"fmt"

	"github.com/richinsley/gocanvas/dynlib"
	"github.com/richinsley/gocanvas/graphics"
	"github.com/richinsley/gocanvas/headless"
	"github.com/sirupsen/logrus"
)

// Device is unavailable off linux.
type Device struct{}

func NewDevice(h *headless.Headless, log logrus.FieldLogger) (*Device, error) {
	return nil, fmt.Errorf("gles: %w", dynlib.ErrUnsupported)
}

func (d *Device) Name() string { return "gles" }

func (d *Device) Finish() error { return dynlib.ErrUnsupported }

func (d *Device) NewRenderer(w, h int) (graphics.Renderer, error) {
	return nil, dynlib.ErrUnsupported
}

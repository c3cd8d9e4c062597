//go:build linux

package headless

import (
	"fmt"
	"unsafe"

	"github.com/richinsley/gocanvas/dynlib"
	"github.com/sirupsen/logrus"
)

// NewHeadless loads libName, usually libEGL.so.1, and brings up a current
// GLES context on the first render-node device. Every other entry point is
// resolved through eglGetProcAddress.
func NewHeadless(libName string, log logrus.FieldLogger) (*Headless, error) {
	lib, err := dynlib.Open(libName, "eglGetProcAddress")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", libName, err)
	}

	var getProcAddress func(name string) unsafe.Pointer
	if err := lib.Binder().Bind("eglGetProcAddress", &getProcAddress); err != nil {
		_ = lib.Close()
		return nil, fmt.Errorf("failed to find eglGetProcAddress: %w", err)
	}
	b := dynlib.ProcAddrBinder(func(name string) uintptr {
		return uintptr(getProcAddress(name))
	})

	h, err := newHeadless(b, getProcAddress, lib, log)
	if err != nil {
		return nil, err
	}
	log.WithField("device", h.device.Index).Info("EGL device display ready")
	return h, nil
}

//go:build !linux

package headless

import (
	"fmt"

	"github.com/richinsley/gocanvas/dynlib"
	"github.com/sirupsen/logrus"
)

func NewHeadless(libName string, _ logrus.FieldLogger) (*Headless, error) {
	return nil, fmt.Errorf("egl headless rendering is not supported on this platform: %w", dynlib.ErrUnsupported)
}

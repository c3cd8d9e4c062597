//go:build !(darwin || freebsd || linux)

package vulkan

import (
	"fmt"

	"github.com/richinsley/gocanvas/dynlib"
	"github.com/sirupsen/logrus"
)

func OpenLoader(libName string) (Loader, error) {
	return nil, fmt.Errorf("failed to load %s: %w", libName, dynlib.ErrUnsupported)
}

func Open(libName string, _ logrus.FieldLogger) (*Vulkan, error) {
	_, err := OpenLoader(libName)
	return nil, err
}

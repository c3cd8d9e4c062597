//go:build darwin || freebsd || linux

package vulkan

import (
	"fmt"

	"github.com/richinsley/gocanvas/dynlib"
	"github.com/sirupsen/logrus"
)

// libLoader resolves commands through vkGetInstanceProcAddr and
// vkGetDeviceProcAddr exported by the loader library.
type libLoader struct {
	lib                 *dynlib.Library
	getInstanceProcAddr func(instance uintptr, name string) uintptr
	getDeviceProcAddr   func(device uintptr, name string) uintptr
}

// OpenLoader loads the Vulkan loader library, usually libvulkan.so.1.
func OpenLoader(libName string) (Loader, error) {
	lib, err := dynlib.Open(libName, "vkGetInstanceProcAddr")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", libName, err)
	}
	l := &libLoader{lib: lib}
	if err := lib.Binder().Bind("vkGetInstanceProcAddr", &l.getInstanceProcAddr); err != nil {
		_ = lib.Close()
		return nil, fmt.Errorf("failed to find vkGetInstanceProcAddr: %w", err)
	}
	if err := lib.Binder().Bind("vkGetDeviceProcAddr", &l.getDeviceProcAddr); err != nil {
		_ = lib.Close()
		return nil, fmt.Errorf("failed to find vkGetDeviceProcAddr: %w", err)
	}
	return l, nil
}

func (l *libLoader) Binder(instance, device uintptr) dynlib.Binder {
	return dynlib.ProcAddrBinder(func(name string) uintptr {
		return getProc(l, name, instance, device)
	})
}

func (l *libLoader) InstanceProcAddr(instance uintptr, name string) uintptr {
	return l.getInstanceProcAddr(instance, name)
}

func (l *libLoader) DeviceProcAddr(device uintptr, name string) uintptr {
	return l.getDeviceProcAddr(device, name)
}

func (l *libLoader) Close() error {
	return l.lib.Close()
}

// Open loads libName and brings up an instance, device and graphics queue
// on the first physical device.
func Open(libName string, log logrus.FieldLogger) (*Vulkan, error) {
	l, err := OpenLoader(libName)
	if err != nil {
		return nil, err
	}
	v, err := New(l, FirstDevice, log)
	if err != nil {
		return nil, err
	}
	log.WithField("queueFamily", v.QueueFamily()).Info("vulkan device ready")
	return v, nil
}

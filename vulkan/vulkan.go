// Package vulkan brings up a Vulkan 1.3 instance, a logical device and one
// graphics queue on a dynamically loaded Vulkan loader.
package vulkan

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"unsafe"

	"github.com/richinsley/gocanvas/dynlib"
	"github.com/richinsley/gocanvas/teardown"
	"github.com/sirupsen/logrus"
)

var (
	ErrCreateInstance   = errors.New("failed to create instance")
	ErrEnumerate        = errors.New("failed to enumerate physical devices")
	ErrNoPhysicalDevice = errors.New("no physical device")
	ErrNoGraphicsQueue  = errors.New("queue family 0 does not support graphics")
	ErrCreateDevice     = errors.New("failed to create device")
	ErrWaitIdle         = errors.New("failed to wait for queue")
)

// Loader resolves Vulkan commands for each dispatch level.
type Loader interface {
	// Binder binds commands dispatched on device when it is non-zero, on
	// instance otherwise. Both zero selects the global commands.
	Binder(instance, device uintptr) dynlib.Binder
	InstanceProcAddr(instance uintptr, name string) uintptr
	DeviceProcAddr(device uintptr, name string) uintptr
}

type globalProcs struct {
	EnumerateInstanceVersion func(version *uint32) Result                                                   `proc:"vkEnumerateInstanceVersion"`
	CreateInstance           func(info *instanceCreateInfo, alloc unsafe.Pointer, instance *uintptr) Result `proc:"vkCreateInstance"`
}

type instanceProcs struct {
	DestroyInstance                         func(instance uintptr, alloc unsafe.Pointer)                                                 `proc:"vkDestroyInstance"`
	EnumeratePhysicalDevices                func(instance uintptr, count *uint32, devices *uintptr) Result                               `proc:"vkEnumeratePhysicalDevices"`
	GetPhysicalDeviceFeatures2              func(physical uintptr, features unsafe.Pointer)                                              `proc:"vkGetPhysicalDeviceFeatures2"`
	GetPhysicalDeviceQueueFamilyProperties2 func(physical uintptr, count *uint32, props *queueFamilyProperties2)                         `proc:"vkGetPhysicalDeviceQueueFamilyProperties2"`
	CreateDevice                            func(physical uintptr, info *deviceCreateInfo, alloc unsafe.Pointer, device *uintptr) Result `proc:"vkCreateDevice"`
}

type deviceProcs struct {
	DestroyDevice  func(device uintptr, alloc unsafe.Pointer)                 `proc:"vkDestroyDevice"`
	GetDeviceQueue func(device uintptr, family, index uint32, queue *uintptr) `proc:"vkGetDeviceQueue"`
	QueueWaitIdle  func(queue uintptr) Result                                 `proc:"vkQueueWaitIdle"`
}

// DeviceSelector picks one of the enumerated physical devices.
type DeviceSelector func(devices []uintptr) (uintptr, error)

// FirstDevice takes the first physical device. It is a placeholder policy:
// nothing about the device is inspected.
func FirstDevice(devices []uintptr) (uintptr, error) {
	if len(devices) == 0 {
		return 0, ErrNoPhysicalDevice
	}
	return devices[0], nil
}

// Vulkan is an initialized instance, device and graphics queue.
type Vulkan struct {
	loader   Loader
	log      logrus.FieldLogger
	teardown teardown.Stack

	global   globalProcs
	inst     instanceProcs
	dev      deviceProcs
	features *FeatureChain

	instanceVersion uint32
	apiVersion      uint32
	instance        uintptr
	physical        uintptr
	device          uintptr
	queue           uintptr
	queueFamily     uint32
}

// New runs the bring-up sequence on loader. When loader is an io.Closer it
// is owned by the result and closed last. A nil selector means FirstDevice.
func New(loader Loader, selector DeviceSelector, log logrus.FieldLogger) (*Vulkan, error) {
	if selector == nil {
		selector = FirstDevice
	}
	v := &Vulkan{loader: loader, log: log, apiVersion: APIVersion13}
	if c, ok := loader.(io.Closer); ok {
		v.teardown.Push("dlclose", c.Close)
	}
	if err := v.init(selector); err != nil {
		_ = v.teardown.Release()
		return nil, err
	}
	return v, nil
}

func (v *Vulkan) init(selector DeviceSelector) error {
	if err := dynlib.Bind(v.loader.Binder(0, 0), &v.global); err != nil {
		return fmt.Errorf("failed to load global commands: %w", err)
	}
	if err := v.initInstance(); err != nil {
		return err
	}
	if err := v.initPhysicalDevice(selector); err != nil {
		return err
	}
	return v.initDevice()
}

func (v *Vulkan) initInstance() error {
	if r := v.global.EnumerateInstanceVersion(&v.instanceVersion); r != Success {
		return fmt.Errorf("failed to query instance version: %d", r)
	}
	v.log.WithField("version", VersionString(v.instanceVersion)).Debug("vulkan loader")

	app := applicationInfo{
		SType:      StructureTypeApplicationInfo,
		APIVersion: v.apiVersion,
	}
	info := instanceCreateInfo{
		SType:            StructureTypeInstanceCreateInfo,
		PApplicationInfo: &app,
	}
	var pin runtime.Pinner
	pin.Pin(&app)
	r := v.global.CreateInstance(&info, nil, &v.instance)
	pin.Unpin()
	if r != Success {
		return fmt.Errorf("%w: %d", ErrCreateInstance, r)
	}

	if err := dynlib.Bind(v.loader.Binder(v.instance, 0), &v.inst); err != nil {
		// vkDestroyInstance is the first entry; without it the instance leaks.
		if v.inst.DestroyInstance != nil {
			v.inst.DestroyInstance(v.instance, nil)
		}
		return fmt.Errorf("failed to load instance commands: %w", err)
	}
	v.teardown.PushFunc("vkDestroyInstance", func() { v.inst.DestroyInstance(v.instance, nil) })
	return nil
}

func (v *Vulkan) initPhysicalDevice(selector DeviceSelector) error {
	var count uint32
	if r := v.inst.EnumeratePhysicalDevices(v.instance, &count, nil); r < Success {
		return fmt.Errorf("%w: %d", ErrEnumerate, r)
	}
	devices := make([]uintptr, count)
	if count > 0 {
		if r := v.inst.EnumeratePhysicalDevices(v.instance, &count, &devices[0]); r < Success {
			return fmt.Errorf("%w: %d", ErrEnumerate, r)
		}
		devices = devices[:count]
	}
	v.log.WithField("count", len(devices)).Debug("physical devices")

	physical, err := selector(devices)
	if err != nil {
		return err
	}
	v.physical = physical

	v.features = DefaultFeatureChain()
	v.features.With(func(root unsafe.Pointer) {
		v.inst.GetPhysicalDeviceFeatures2(v.physical, root)
	})
	return nil
}

func (v *Vulkan) initDevice() error {
	props := queueFamilyProperties2{SType: StructureTypeQueueFamilyProperties2}
	count := uint32(1)
	v.inst.GetPhysicalDeviceQueueFamilyProperties2(v.physical, &count, &props)
	if count == 0 || props.QueueFlags&queueGraphicsBit == 0 {
		return ErrNoGraphicsQueue
	}
	v.queueFamily = 0

	priority := float32(1)
	queueInfo := deviceQueueCreateInfo{
		SType:            StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: v.queueFamily,
		QueueCount:       1,
		PQueuePriorities: &priority,
	}
	var r Result
	v.features.With(func(root unsafe.Pointer) {
		info := deviceCreateInfo{
			SType:                StructureTypeDeviceCreateInfo,
			PNext:                root,
			QueueCreateInfoCount: 1,
			PQueueCreateInfos:    &queueInfo,
		}
		var pin runtime.Pinner
		pin.Pin(&queueInfo)
		pin.Pin(&priority)
		r = v.inst.CreateDevice(v.physical, &info, nil, &v.device)
		pin.Unpin()
	})
	if r != Success {
		return fmt.Errorf("%w: %d", ErrCreateDevice, r)
	}

	if err := dynlib.Bind(v.loader.Binder(v.instance, v.device), &v.dev); err != nil {
		// vkDestroyDevice is the first entry; without it the device leaks.
		if v.dev.DestroyDevice != nil {
			v.dev.DestroyDevice(v.device, nil)
		}
		return fmt.Errorf("failed to load device commands: %w", err)
	}
	v.teardown.PushFunc("vkDestroyDevice", func() { v.dev.DestroyDevice(v.device, nil) })

	v.dev.GetDeviceQueue(v.device, v.queueFamily, 0, &v.queue)
	v.log.WithFields(logrus.Fields{
		"api":      VersionString(v.apiVersion),
		"vulkan13": v.features.Supported(StructureTypeVulkan13Features),
	}).Debug("vulkan device ready")
	return nil
}

// GetProc resolves name for the native calls of a client library. Device
// commands are resolved when device is non-zero, instance commands otherwise.
func (v *Vulkan) GetProc(name string, instance, device uintptr) uintptr {
	return getProc(v.loader, name, instance, device)
}

func getProc(l Loader, name string, instance, device uintptr) uintptr {
	if device != 0 {
		return l.DeviceProcAddr(device, name)
	}
	return l.InstanceProcAddr(instance, name)
}

// WaitIdle blocks until the graphics queue has drained.
func (v *Vulkan) WaitIdle() error {
	if r := v.dev.QueueWaitIdle(v.queue); r != Success {
		return fmt.Errorf("%w: %d", ErrWaitIdle, r)
	}
	return nil
}

func (v *Vulkan) Instance() uintptr       { return v.instance }
func (v *Vulkan) PhysicalDevice() uintptr { return v.physical }
func (v *Vulkan) Device() uintptr         { return v.device }
func (v *Vulkan) Queue() uintptr          { return v.queue }
func (v *Vulkan) QueueFamily() uint32     { return v.queueFamily }
func (v *Vulkan) APIVersion() uint32      { return v.apiVersion }

// Features returns the feature chain queried from the physical device.
func (v *Vulkan) Features() *FeatureChain { return v.features }

// Shutdown destroys the device, then the instance, then closes the loader.
func (v *Vulkan) Shutdown() error {
	return v.teardown.Release()
}

// Released lists the teardown steps run by Shutdown, in order.
func (v *Vulkan) Released() []string {
	return v.teardown.Released()
}

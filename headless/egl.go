// Package headless brings up a surfaceless OpenGL ES context on an EGL
// platform device. No window system is involved: the context renders only
// into framebuffer objects.
package headless

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unsafe"

	"github.com/richinsley/gocanvas/dynlib"
	"github.com/richinsley/gocanvas/teardown"
	"github.com/sirupsen/logrus"
)

const (
	eglExtensions          = 0x3055
	eglPlatformDeviceEXT   = 0x313F
	eglOpenGLESAPI         = 0x30A0
	eglContextMajorVersion = 0x3098
	eglContextMinorVersion = 0x30FB
	eglNone                = 0x3038

	eglNoDisplay   = 0
	eglNoContext   = 0
	eglNoSurface   = 0
	eglNoConfigKHR = 0
)

// MaxDevices bounds device enumeration.
const MaxDevices = 16

// GLES version requested for the context.
const (
	ContextMajor = 3
	ContextMinor = 2
)

var clientExtensions = []string{
	"EGL_EXT_device_enumeration",
	"EGL_EXT_device_query",
	"EGL_EXT_platform_device",
}

var (
	ErrNoPlatformDevice = errors.New("no EGL platform device support")
	ErrQueryDevices     = errors.New("failed to query devices")
	ErrNoDevices        = errors.New("no EGL devices")
	ErrNoRenderNode     = errors.New("failed to find a hw rendernode device")
	ErrNoDisplay        = errors.New("failed to get platform display")
	ErrInitialize       = errors.New("failed to initialize display")
	ErrVersion          = errors.New("EGL 1.5 is required")
	ErrNoConfigContext  = errors.New("missing EGL_KHR_no_config_context")
	ErrWrongAPI         = errors.New("current api is not GLES")
	ErrContext          = errors.New("failed to create a context")
	ErrMakeCurrent      = errors.New("failed to make context current")
)

// eglProcs is the EGL function table. Handles are passed as uintptr and
// EGLint out-parameters as *int32.
type eglProcs struct {
	QueryString          func(dpy uintptr, name int32) string                            `proc:"eglQueryString"`
	QueryDevicesEXT      func(max int32, devices *uintptr, count *int32) bool            `proc:"eglQueryDevicesEXT"`
	QueryDeviceStringEXT func(dev uintptr, name int32) string                            `proc:"eglQueryDeviceStringEXT"`
	GetPlatformDisplay   func(platform uint32, native uintptr, attribs *uintptr) uintptr `proc:"eglGetPlatformDisplay"`
	Initialize           func(dpy uintptr, major, minor *int32) bool                     `proc:"eglInitialize"`
	QueryAPI             func() uint32                                                   `proc:"eglQueryAPI"`
	CreateContext        func(dpy, config, share uintptr, attribs *int32) uintptr        `proc:"eglCreateContext"`
	MakeCurrent          func(dpy, draw, read, ctx uintptr) bool                         `proc:"eglMakeCurrent"`
	DestroyContext       func(dpy, ctx uintptr) bool                                     `proc:"eglDestroyContext"`
	Terminate            func(dpy uintptr) bool                                          `proc:"eglTerminate"`
	ReleaseThread        func() bool                                                     `proc:"eglReleaseThread"`
}

// DeviceInfo describes the EGL device the display was created on.
type DeviceInfo struct {
	Index      int
	Handle     uintptr
	Extensions string
	// Software is set when the device advertises a software rasterizer.
	// Selection does not act on it yet; see selectDevice.
	Software bool
}

// Headless is a current, surfaceless GLES context on an EGL device display.
type Headless struct {
	procs    eglProcs
	getProc  func(name string) unsafe.Pointer
	log      logrus.FieldLogger
	teardown teardown.Stack

	device  DeviceInfo
	display uintptr
	context uintptr
	major   int32
	minor   int32
}

// NewWithBinder brings up a context from a function table supplied by b.
// getProc may be nil when no client API will be loaded.
func NewWithBinder(b dynlib.Binder, getProc func(string) unsafe.Pointer, log logrus.FieldLogger) (*Headless, error) {
	return newHeadless(b, getProc, nil, log)
}

// newHeadless takes ownership of lib, which is closed last.
func newHeadless(b dynlib.Binder, getProc func(string) unsafe.Pointer, lib io.Closer, log logrus.FieldLogger) (*Headless, error) {
	h := &Headless{getProc: getProc, log: log}
	if lib != nil {
		h.teardown.Push("dlclose", lib.Close)
	}
	if err := h.init(b); err != nil {
		_ = h.teardown.Release()
		return nil, err
	}
	return h, nil
}

func (h *Headless) init(b dynlib.Binder) error {
	if err := dynlib.Bind(b, &h.procs); err != nil {
		return fmt.Errorf("failed to load EGL: %w", err)
	}
	h.teardown.PushFunc("eglReleaseThread", func() { h.procs.ReleaseThread() })

	if err := h.initDisplay(); err != nil {
		return err
	}
	return h.initContext()
}

func (h *Headless) initDisplay() error {
	exts := h.procs.QueryString(eglNoDisplay, eglExtensions)
	for _, want := range clientExtensions {
		if !hasExtension(exts, want) {
			return fmt.Errorf("%w: missing %s", ErrNoPlatformDevice, want)
		}
	}

	var devs [MaxDevices]uintptr
	var count int32
	if !h.procs.QueryDevicesEXT(MaxDevices, &devs[0], &count) {
		return ErrQueryDevices
	}
	if count <= 0 {
		return ErrNoDevices
	}
	if count > MaxDevices {
		count = MaxDevices
	}

	infos := make([]DeviceInfo, 0, count)
	for i, dev := range devs[:count] {
		e := h.procs.QueryDeviceStringEXT(dev, eglExtensions)
		infos = append(infos, DeviceInfo{
			Index:      i,
			Handle:     dev,
			Extensions: e,
			Software:   strings.Contains(e, "software"),
		})
	}
	dev, err := selectDevice(infos)
	if err != nil {
		return err
	}
	if dev.Software {
		h.log.WithField("device", dev.Index).Warn("selected EGL device is a software rasterizer")
	}
	h.device = dev

	h.display = h.procs.GetPlatformDisplay(eglPlatformDeviceEXT, dev.Handle, nil)
	if h.display == eglNoDisplay {
		return ErrNoDisplay
	}
	if !h.procs.Initialize(h.display, &h.major, &h.minor) {
		return ErrInitialize
	}
	h.teardown.PushFunc("eglTerminate", func() { h.procs.Terminate(h.display) })

	h.log.WithField("version", fmt.Sprintf("%d.%d", h.major, h.minor)).Debug("EGL initialized")
	if h.major != 1 || h.minor < 5 {
		return fmt.Errorf("%w: have %d.%d", ErrVersion, h.major, h.minor)
	}
	if !hasExtension(h.procs.QueryString(h.display, eglExtensions), "EGL_KHR_no_config_context") {
		return ErrNoConfigContext
	}
	return nil
}

// selectDevice returns the first device with a DRM render node. The software
// flag is computed but a software device is still accepted, matching the
// long-standing behavior; callers log it so the choice is visible.
func selectDevice(devs []DeviceInfo) (DeviceInfo, error) {
	for _, d := range devs {
		if !hasExtension(d.Extensions, "EGL_EXT_device_drm_render_node") {
			continue
		}
		// TODO: decide whether software devices should be skipped when a
		// hardware render node exists. Until then they are only logged.
		return d, nil
	}
	return DeviceInfo{}, ErrNoRenderNode
}

func (h *Headless) initContext() error {
	if api := h.procs.QueryAPI(); api != eglOpenGLESAPI {
		return fmt.Errorf("%w: 0x%x", ErrWrongAPI, api)
	}

	attrs := []int32{
		eglContextMajorVersion, ContextMajor,
		eglContextMinorVersion, ContextMinor,
		eglNone,
	}
	h.context = h.procs.CreateContext(h.display, eglNoConfigKHR, eglNoContext, &attrs[0])
	if h.context == eglNoContext {
		return ErrContext
	}
	h.teardown.PushFunc("eglDestroyContext", func() { h.procs.DestroyContext(h.display, h.context) })

	if !h.procs.MakeCurrent(h.display, eglNoSurface, eglNoSurface, h.context) {
		return ErrMakeCurrent
	}
	h.teardown.PushFunc("eglMakeCurrent", func() {
		h.procs.MakeCurrent(h.display, eglNoSurface, eglNoSurface, eglNoContext)
	})
	return nil
}

// Device returns the device the display was created on.
func (h *Headless) Device() DeviceInfo {
	return h.device
}

// Version returns the EGL version reported by eglInitialize.
func (h *Headless) Version() (major, minor int) {
	return int(h.major), int(h.minor)
}

// ProcAddress resolves a client API entry point for loaders such as go-gl.
func (h *Headless) ProcAddress(name string) unsafe.Pointer {
	if h.getProc == nil {
		return nil
	}
	return h.getProc(name)
}

// Shutdown releases everything created by NewHeadless in reverse order.
// It must be called once, on the thread that owns the context.
func (h *Headless) Shutdown() error {
	return h.teardown.Release()
}

// Released lists the teardown steps run by Shutdown, in order.
func (h *Headless) Released() []string {
	return h.teardown.Released()
}

func hasExtension(list, name string) bool {
	for _, e := range strings.Fields(list) {
		if e == name {
			return true
		}
	}
	return false
}

//go:build darwin || freebsd || linux

package dynlib

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Library is a shared library opened with dlopen. It stays loaded until
// Close.
type Library struct {
	name   string
	handle uintptr
}

// Open loads the named library with local, lazy binding and checks that
// every required symbol resolves. On any failure the library is closed
// again and nothing is returned.
func Open(name string, required ...string) (*Library, error) {
	handle, err := purego.Dlopen(name, purego.RTLD_LOCAL|purego.RTLD_LAZY)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, name, err)
	}
	lib := &Library{name: name, handle: handle}
	for _, sym := range required {
		if _, err := lib.Symbol(sym); err != nil {
			_ = lib.Close()
			return nil, err
		}
	}
	return lib, nil
}

// Name returns the name the library was opened with.
func (l *Library) Name() string {
	return l.name
}

// Symbol returns the address of an exported symbol.
func (l *Library) Symbol(name string) (uintptr, error) {
	if l.handle == 0 {
		return 0, fmt.Errorf("dynlib: %s is closed", l.name)
	}
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil || addr == 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, name, l.name)
	}
	return addr, nil
}

// Binder binds function table entries straight from the library's symbol
// table.
func (l *Library) Binder() Binder {
	return symbolBinder{lib: l}
}

// Close unloads the library. Closing twice is a no-op.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("dynlib: close %s: %w", l.name, err)
	}
	return nil
}

type symbolBinder struct {
	lib *Library
}

func (b symbolBinder) Bind(name string, fptr any) error {
	addr, err := b.lib.Symbol(name)
	if err != nil {
		return err
	}
	return registerFunc(fptr, addr)
}

func registerFunc(fptr any, addr uintptr) (err error) {
	// purego panics on func signatures it cannot marshal.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dynlib: cannot bind %T: %v", fptr, r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}

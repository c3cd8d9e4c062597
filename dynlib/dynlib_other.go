//go:build !(darwin || freebsd || linux)

package dynlib

import "fmt"

// Library is unavailable on this platform.
type Library struct {
	name string
}

// Open always fails with ErrUnsupported.
func Open(name string, _ ...string) (*Library, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
}

// Name returns the name the library was opened with.
func (l *Library) Name() string { return l.name }

// Symbol always fails with ErrUnsupported.
func (l *Library) Symbol(name string) (uintptr, error) {
	return 0, fmt.Errorf("%w: %s", ErrUnsupported, name)
}

// Binder returns a Binder that always fails.
func (l *Library) Binder() Binder {
	return ProcAddrBinder(func(string) uintptr { return 0 })
}

// Close is a no-op.
func (l *Library) Close() error { return nil }

func registerFunc(fptr any, _ uintptr) error {
	return fmt.Errorf("%w: %T", ErrUnsupported, fptr)
}

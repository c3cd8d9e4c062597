// Package dynlib opens platform shared libraries at run time and binds their
// entry points to typed Go function values.
//
// Entry points are looked up by operation name through a Binder. A function
// table is a struct whose func fields carry a `proc:"name"` tag:
//
//	type procs struct {
//		Terminate func(dpy uintptr) bool `proc:"eglTerminate"`
//	}
//
//	var p procs
//	err := dynlib.Bind(lib.Binder(), &p)
//
// Binding stops at the first missing operation. There is no degraded mode: a
// table is either complete or unusable.
package dynlib

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrLibraryNotFound is returned when a shared library cannot be opened.
	ErrLibraryNotFound = errors.New("dynlib: library not found")

	// ErrSymbolNotFound is returned when a required entry point is missing.
	ErrSymbolNotFound = errors.New("dynlib: symbol not found")

	// ErrUnsupported is returned on platforms without a dynamic loader.
	ErrUnsupported = errors.New("dynlib: dynamic loading is not supported on this platform")
)

// Binder binds the operation called name to fptr, which must point to a
// variable of func type.
type Binder interface {
	Bind(name string, fptr any) error
}

// Bind fills every `proc`-tagged func field of the struct table points to.
func Bind(b Binder, table any) error {
	v := reflect.ValueOf(table)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dynlib: Bind needs a pointer to a struct, got %T", table)
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, ok := field.Tag.Lookup("proc")
		if !ok {
			continue
		}
		if field.Type.Kind() != reflect.Func || !field.IsExported() {
			return fmt.Errorf("dynlib: field %s for %s must be an exported func", field.Name, name)
		}
		if err := b.Bind(name, v.Field(i).Addr().Interface()); err != nil {
			return err
		}
	}
	return nil
}

// ProcAddrBinder binds entry points handed out by a resolver function such
// as eglGetProcAddress. A zero address means the operation is unavailable.
type ProcAddrBinder func(name string) uintptr

// Bind implements Binder.
func (r ProcAddrBinder) Bind(name string, fptr any) error {
	addr := r(name)
	if addr == 0 {
		return fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return registerFunc(fptr, addr)
}

// FuncMap is a Binder backed by Go functions keyed by operation name. It
// lets callers supply a function table without any native library, which is
// how the GPU bring-up sequences are driven in tests.
type FuncMap map[string]any

// Bind implements Binder.
func (m FuncMap) Bind(name string, fptr any) error {
	dst := reflect.ValueOf(fptr)
	if dst.Kind() != reflect.Pointer || dst.Elem().Kind() != reflect.Func {
		return fmt.Errorf("dynlib: %s: destination %T is not a func pointer", name, fptr)
	}
	fn, ok := m[name]
	if !ok || fn == nil {
		return fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	src := reflect.ValueOf(fn)
	if !src.Type().AssignableTo(dst.Elem().Type()) {
		return fmt.Errorf("dynlib: %s has type %s, want %s", name, src.Type(), dst.Elem().Type())
	}
	dst.Elem().Set(src)
	return nil
}

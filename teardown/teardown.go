// Package teardown releases resources in the exact reverse of the order in
// which they were created.
package teardown

import (
	"errors"
	"fmt"
)

type step struct {
	name    string
	release func() error
}

// Stack is a LIFO of release steps. A step is pushed only after the
// resource it releases was created successfully, so a partially initialised
// owner can always call Release.
type Stack struct {
	steps    []step
	released []string
}

// Push records a release step for a resource that now exists.
func (s *Stack) Push(name string, release func() error) {
	s.steps = append(s.steps, step{name: name, release: release})
}

// PushFunc is Push for release functions that cannot fail.
func (s *Stack) PushFunc(name string, release func()) {
	s.Push(name, func() error {
		release()
		return nil
	})
}

// Len returns the number of pending release steps.
func (s *Stack) Len() int {
	return len(s.steps)
}

// Release runs every pending step, newest first, and empties the stack.
// All steps run even when one fails; the failures are joined.
func (s *Stack) Release() error {
	var errs []error
	for i := len(s.steps) - 1; i >= 0; i-- {
		st := s.steps[i]
		s.released = append(s.released, st.name)
		if err := st.release(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", st.name, err))
		}
	}
	s.steps = nil
	return errors.Join(errs...)
}

// Released returns the names of the steps run so far, in the order they ran.
func (s *Stack) Released() []string {
	return append([]string(nil), s.released...)
}

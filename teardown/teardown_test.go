package teardown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseReversesCreationOrder(t *testing.T) {
	var s Stack
	var ran []string
	for _, name := range []string{"library", "display", "context", "current"} {
		name := name
		s.PushFunc(name, func() { ran = append(ran, name) })
	}

	require.NoError(t, s.Release())
	assert.Equal(t, []string{"current", "context", "display", "library"}, ran)
	assert.Equal(t, ran, s.Released())
	assert.Zero(t, s.Len())
}

func TestReleaseRunsEveryStepAndJoinsErrors(t *testing.T) {
	var s Stack
	errDevice := errors.New("device busy")
	instanceReleased := false
	s.PushFunc("instance", func() { instanceReleased = true })
	s.Push("device", func() error { return errDevice })

	err := s.Release()
	require.Error(t, err)
	assert.ErrorIs(t, err, errDevice)
	assert.Contains(t, err.Error(), "device")
	assert.True(t, instanceReleased)
}

func TestReleaseIsOneShot(t *testing.T) {
	var s Stack
	count := 0
	s.PushFunc("surface", func() { count++ })

	require.NoError(t, s.Release())
	require.NoError(t, s.Release())
	assert.Equal(t, 1, count)
}

func TestEmptyStack(t *testing.T) {
	var s Stack
	assert.NoError(t, s.Release())
	assert.Empty(t, s.Released())
}

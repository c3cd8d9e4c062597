// Package program implements the smoke programs. Each one initializes a
// backend, draws the scene, persists or discards the result and tears down
// everything it created in reverse order.
package program

import (
	"errors"

	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/teardown"
	"github.com/sirupsen/logrus"
)

// Test is one program.
type Test interface {
	Init() error
	Draw() error
	// Cleanup releases whatever Init created, including after a failed Init.
	Cleanup() error
}

// Run runs t to completion. Cleanup always runs once Init was attempted.
func Run(t Test) error {
	if err := t.Init(); err != nil {
		return errors.Join(err, t.Cleanup())
	}
	if err := t.Draw(); err != nil {
		return errors.Join(err, t.Cleanup())
	}
	return t.Cleanup()
}

// base carries what every program shares.
type base struct {
	opts     options.Options
	log      logrus.FieldLogger
	teardown teardown.Stack
}

func (b *base) Cleanup() error {
	return b.teardown.Release()
}

// Released lists the teardown steps run so far, in order.
func (b *base) Released() []string {
	return b.teardown.Released()
}

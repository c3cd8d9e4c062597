package main

import (
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/program"
	"github.com/sirupsen/logrus"
)

func main() {
	program.Main(program.Command("canvas-null", "Clear a canvas that draws nowhere", 0, true,
		func(_ []string, o options.Options, log logrus.FieldLogger) program.Test {
			return program.NewCanvasNull(o, log)
		}))
}

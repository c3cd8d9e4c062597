package main

import (
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/program"
	"github.com/sirupsen/logrus"
)

func main() {
	program.Main(program.Command("canvas-svg", "Stream the scene into rt.svg", 0, true,
		func(_ []string, o options.Options, log logrus.FieldLogger) program.Test {
			return program.NewCanvasSVG(o, log)
		}))
}

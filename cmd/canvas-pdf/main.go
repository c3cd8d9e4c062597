package main

import (
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/program"
	"github.com/sirupsen/logrus"
)

func main() {
	program.Main(program.Command("canvas-pdf", "Draw the scene on a one page rt.pdf", 0, true,
		func(_ []string, o options.Options, log logrus.FieldLogger) program.Test {
			return program.NewCanvasPDF(o, log)
		}))
}

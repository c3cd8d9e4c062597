package main

import (
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/program"
	"github.com/sirupsen/logrus"
)

func main() {
	program.Main(program.Command("canvas-picture", "Record the scene and play it back onto a raster surface", 0, true,
		func(_ []string, o options.Options, log logrus.FieldLogger) program.Test {
			return program.NewCanvasPicture(o, log)
		}))
}

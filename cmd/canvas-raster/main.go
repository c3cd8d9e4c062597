package main

import (
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/program"
	"github.com/sirupsen/logrus"
)

func main() {
	program.Main(program.Command("canvas-raster", "Draw the scene on a raster surface and write rt.png", 0, true,
		func(_ []string, o options.Options, log logrus.FieldLogger) program.Test {
			return program.NewCanvasRaster(o, log)
		}))
}

package main

import (
	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/program"
	"github.com/sirupsen/logrus"
)

func main() {
	program.Main(program.Command("image-raster <png-file>", "Draw a PNG on a raster surface of its size and write rt.png", 1, false,
		func(args []string, _ options.Options, log logrus.FieldLogger) program.Test {
			return program.NewImageRaster(args[0], log)
		}))
}

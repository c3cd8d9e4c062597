package main

import (
	"runtime"

	"github.com/richinsley/gocanvas/options"
	"github.com/richinsley/gocanvas/program"
	"github.com/sirupsen/logrus"
)

// The device context belongs to the thread that created it.
func init() {
	runtime.LockOSThread()
}

func main() {
	program.Main(program.Command("canvas-gl", "Draw the scene with GLES on a headless EGL device and write rt.png", 0, true,
		func(_ []string, o options.Options, log logrus.FieldLogger) program.Test {
			return program.NewCanvasGPU(o, program.OpenGLES, log)
		}))
}

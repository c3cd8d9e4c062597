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
	program.Main(program.Command("canvas-vk", "Draw the scene on a Vulkan device and write rt.png", 0, true,
		func(_ []string, o options.Options, log logrus.FieldLogger) program.Test {
			return program.NewCanvasGPU(o, program.OpenVulkan, log)
		}))
}

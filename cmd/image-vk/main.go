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
	program.Main(program.Command("image-vk <png-file>", "Draw a PNG on a Vulkan surface of its size and write rt.png", 1, false,
		func(args []string, o options.Options, log logrus.FieldLogger) program.Test {
			return program.NewImageGPU(args[0], o, program.OpenVulkan, log)
		}))
}

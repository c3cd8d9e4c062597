package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment overrides, e.g. GOCANVAS_EGL_LIBRARY.
const EnvPrefix = "GOCANVAS"

const (
	DefaultSize          = 300
	DefaultEGLLibrary    = "libEGL.so.1"
	DefaultVulkanLibrary = "libvulkan.so.1"
)

// Options are shared by every program. Output file names are fixed and are
// not part of the options.
type Options struct {
	Width         int
	Height        int
	EGLLibrary    string
	VulkanLibrary string
	LogLevel      string
	Upload        bool // image-vk: draw from a converted RGBA copy of the input
}

func Default() Options {
	return Options{
		Width:         DefaultSize,
		Height:        DefaultSize,
		EGLLibrary:    DefaultEGLLibrary,
		VulkanLibrary: DefaultVulkanLibrary,
		LogLevel:      "info",
		Upload:        true,
	}
}

// AddFlags registers the flags a program understands on cmd. Size flags are
// skipped for programs whose target is sized by their input.
func (o *Options) AddFlags(cmd *cobra.Command, sized bool) {
	d := Default()
	f := cmd.Flags()
	if sized {
		f.IntVar(&o.Width, "width", d.Width, "Target width in pixels")
		f.IntVar(&o.Height, "height", d.Height, "Target height in pixels")
	}
	f.StringVar(&o.EGLLibrary, "egl-library", d.EGLLibrary, "EGL shared library name")
	f.StringVar(&o.VulkanLibrary, "vulkan-library", d.VulkanLibrary, "Vulkan loader shared library name")
	f.StringVar(&o.LogLevel, "log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	f.BoolVar(&o.Upload, "upload", d.Upload, "Convert the input image to an RGBA copy and sync the device before drawing it")
}

// Load resolves o from cmd's flags and GOCANVAS_* environment variables.
// A flag given on the command line wins over the environment.
func (o *Options) Load(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if v.IsSet("width") {
		o.Width = v.GetInt("width")
	}
	if v.IsSet("height") {
		o.Height = v.GetInt("height")
	}
	o.EGLLibrary = v.GetString("egl-library")
	o.VulkanLibrary = v.GetString("vulkan-library")
	o.LogLevel = v.GetString("log-level")
	o.Upload = v.GetBool("upload")
	return o.Validate()
}

// Validate rejects sizes no surface can be created with.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid target size %dx%d", o.Width, o.Height)
	}
	if o.EGLLibrary == "" || o.VulkanLibrary == "" {
		return fmt.Errorf("library names must not be empty")
	}
	return nil
}

//go:build linux

// Package gles draws on the GLES context of a headless EGL display. Solid
// circle fills run as a signed distance shader into a framebuffer object;
// every other path is rasterized in software.
package gles

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/gogpu/gg"
	"github.com/richinsley/gocanvas/graphics"
	"github.com/richinsley/gocanvas/headless"
	"github.com/sirupsen/logrus"
)

// Device is a GLES graphics device on a current headless context.
type Device struct {
	h   *headless.Headless
	log logrus.FieldLogger
}

// NewDevice loads the GLES entry points through h. The context must be
// current on the calling thread.
func NewDevice(h *headless.Headless, log logrus.FieldLogger) (*Device, error) {
	if err := gl.InitWithProcAddrFunc(h.ProcAddress); err != nil {
		return nil, fmt.Errorf("failed to load GLES: %w", err)
	}
	log.WithFields(logrus.Fields{
		"version":  gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer": gl.GoStr(gl.GetString(gl.RENDERER)),
	}).Debug("GLES ready")
	return &Device{h: h, log: log}, nil
}

func (d *Device) Name() string { return "gles" }

// Finish blocks until the context has executed every queued command.
func (d *Device) Finish() error {
	gl.Finish()
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", e)
	}
	return nil
}

// NewRenderer creates a renderer with a w x h render target.
func (d *Device) NewRenderer(w, h int) (graphics.Renderer, error) {
	r := &Renderer{Software: graphics.NewSoftware(w, h), width: w, height: h}
	if err := r.init(); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

// Renderer fills solid circles on the GPU and falls back to its embedded
// software renderer for everything else.
type Renderer struct {
	*graphics.Software

	width, height int
	program       uint32
	vao           uint32
	fbo           uint32
	texture       uint32

	uCircle int32
	uColor  int32
	uAA     int32
}

func (r *Renderer) init() error {
	program, err := newProgram(vertexShader, circleFragmentShader)
	if err != nil {
		return err
	}
	r.program = program
	r.uCircle = gl.GetUniformLocation(program, gl.Str("u_circle\x00"))
	r.uColor = gl.GetUniformLocation(program, gl.Str("u_color\x00"))
	r.uAA = gl.GetUniformLocation(program, gl.Str("u_aa\x00"))

	gl.GenVertexArrays(1, &r.vao)

	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(r.width), int32(r.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &r.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.texture, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return nil
}

// Fill draws path into pixmap.
func (r *Renderer) Fill(pixmap *gg.Pixmap, path *gg.Path, paint *gg.Paint) error {
	c, ok := solidCircle(path, paint)
	if !ok || pixmap.Width() != r.width || pixmap.Height() != r.height {
		return r.Software.Fill(pixmap, path, paint)
	}
	r.fillCircle(pixmap, c)
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("circle fill: gl error 0x%x", e)
	}
	return nil
}

// fillCircle uploads pixmap, blends the circle over it and reads it back.
func (r *Renderer) fillCircle(pixmap *gg.Pixmap, c circle) {
	w, h := int32(r.width), int32(r.height)
	data := pixmap.Data()

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)

	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.Viewport(0, 0, w, h)
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.program)
	gl.Uniform3f(r.uCircle, float32(c.cx), float32(c.cy), float32(c.r))
	gl.Uniform4f(r.uColor, float32(c.color.R), float32(c.color.G), float32(c.color.B), float32(c.color.A))
	aa := float32(0)
	if r.AntiAlias() {
		aa = 1
	}
	gl.Uniform1f(r.uAA, aa)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.Disable(gl.BLEND)

	gl.ReadPixels(0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Destroy releases the GL objects. The context must still be current.
func (r *Renderer) Destroy() {
	if r.fbo != 0 {
		gl.DeleteFramebuffers(1, &r.fbo)
		r.fbo = 0
	}
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
		r.texture = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	r.Software.Destroy()
}

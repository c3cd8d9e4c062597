package gles

import "github.com/gogpu/gg"

// circle is a solid filled circle the shader can draw.
type circle struct {
	cx, cy, r float64
	color     gg.RGBA
}

// solidCircle reports whether path and paint describe a circle filled with a
// single color. Anything else goes to the software renderer.
func solidCircle(path *gg.Path, paint *gg.Paint) (circle, bool) {
	shape := gg.DetectShape(path)
	if shape.Kind != gg.ShapeCircle {
		return circle{}, false
	}
	brush, ok := paint.GetBrush().(gg.SolidBrush)
	if !ok {
		return circle{}, false
	}
	return circle{cx: shape.CenterX, cy: shape.CenterY, r: shape.RadiusX, color: brush.Color}, true
}

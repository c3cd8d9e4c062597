package graphics

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillCircle(t *testing.T, r Renderer) *gg.Pixmap {
	t.Helper()
	pm := gg.NewPixmap(64, 64)
	pm.Clear(gg.White)

	p := gg.NewPath()
	p.Circle(32, 32, 10)
	paint := gg.NewPaint()
	paint.SetBrush(gg.Solid(gg.Red))
	require.NoError(t, r.Fill(pm, p, paint))
	return pm
}

// partial counts pixels that are neither pure white nor pure red.
func partial(pm *gg.Pixmap) int {
	n := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			c := pm.GetPixel(x, y)
			if c != gg.White && c != gg.Red {
				n++
			}
		}
	}
	return n
}

func TestSoftwareAntiAliasToggle(t *testing.T) {
	r := NewSoftware(64, 64)
	assert.True(t, r.AntiAlias())
	smooth := fillCircle(t, r)
	assert.Equal(t, gg.Red, smooth.GetPixel(32, 32))
	assert.Equal(t, gg.White, smooth.GetPixel(0, 0))
	assert.Positive(t, partial(smooth))

	r.SetAntiAlias(false)
	hard := fillCircle(t, r)
	assert.Equal(t, gg.Red, hard.GetPixel(32, 32))
	assert.Zero(t, partial(hard))
}

func TestCPUDevice(t *testing.T) {
	var d Device = CPU{}
	r, err := d.NewRenderer(8, 8)
	require.NoError(t, err)
	defer r.Destroy()
	assert.Equal(t, "raster", d.Name())
	assert.NoError(t, d.Finish())
}

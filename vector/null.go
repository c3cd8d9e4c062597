package vector

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// Null accepts every command and produces nothing. It only counts draws.
type Null struct {
	draws int
	open  bool
}

var _ recording.Backend = (*Null)(nil)

func NewNull() *Null { return &Null{} }

func (n *Null) Begin(int, int) error {
	n.open = true
	return nil
}

func (n *Null) End() error {
	if !n.open {
		return ErrNotStarted
	}
	n.open = false
	return nil
}

// Draws is the number of drawing commands received.
func (n *Null) Draws() int { return n.draws }

func (n *Null) Save()                                {}
func (n *Null) Restore()                             {}
func (n *Null) SetTransform(recording.Matrix)        {}
func (n *Null) SetClip(*gg.Path, recording.FillRule) {}
func (n *Null) ClearClip()                           {}

func (n *Null) FillPath(*gg.Path, recording.Brush, recording.FillRule) { n.draws++ }
func (n *Null) StrokePath(*gg.Path, recording.Brush, recording.Stroke) { n.draws++ }
func (n *Null) FillRect(recording.Rect, recording.Brush)               { n.draws++ }
func (n *Null) DrawImage(image.Image, recording.Rect, recording.Rect, recording.ImageOptions) {
	n.draws++
}
func (n *Null) DrawText(string, float64, float64, text.Face, recording.Brush) { n.draws++ }

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/richinsley/gocanvas/canvas"
)

var ErrNoContext = errors.New("surface cannot play back pictures")

// Picture is an immutable recording of canvas operations.
type Picture struct {
	rec *recording.Recording
}

// Record runs draw against a recording canvas of the given size.
func Record(width, height int, draw func(c canvas.Canvas) error) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	r := recording.NewRecorder(width, height)
	if err := draw(canvas.NewRecorder(r)); err != nil {
		return nil, err
	}
	return &Picture{rec: r.FinishRecording()}, nil
}

func (p *Picture) Width() int  { return p.rec.Width() }
func (p *Picture) Height() int { return p.rec.Height() }

// Len is the number of recorded commands.
func (p *Picture) Len() int { return len(p.rec.Commands()) }

// Playback replays the picture onto s.
func (p *Picture) Playback(s Surface) error {
	cs, ok := s.(interface{ Context() *gg.Context })
	if !ok {
		return ErrNoContext
	}
	return p.rec.Playback(&playback{ctx: cs.Context()})
}

// Package vector implements recording backends that write resolution
// independent output: SVG, PDF, and a null backend that writes nothing.
// Each is registered in gg's recording backend registry.
package vector

import (
	"errors"

	"github.com/gogpu/gg/recording"
)

const (
	NameSVG  = "svg"
	NamePDF  = "pdf"
	NameNull = "null"
)

var (
	ErrNotStarted = errors.New("backend not started")
	ErrPageOpen   = errors.New("page already open")
	ErrNoPage     = errors.New("no page open")
	ErrClosed     = errors.New("document closed")
)

func init() {
	recording.Register(NameSVG, func() recording.Backend { return NewSVG() })
	recording.Register(NamePDF, func() recording.Backend { return NewPDF() })
	recording.Register(NameNull, func() recording.Backend { return NewNull() })
}

package console

import (
	"bytes"

	"github.com/muesli/termenv"
)

// Capture is the token handed to a capture scope.
// Setting Flush asks for the buffered output to be written to the parent
// console when the scope exits.
type Capture struct {
	Flush bool
}

// Capture runs fn with a console that buffers everything written to it.
//
// When passthrough is true, fn receives c itself and Flush has no effect.
// Otherwise the buffer is written to c exactly once on exit if Flush is set.
// An error returned from fn or a panic inside fn forces Flush, so the trace
// leading up to a failure is never discarded. The error is returned and the
// panic re-raised after the flush.
func (c *Console) Capture(passthrough bool, fn func(out *Console, capture *Capture) error) (err error) {
	capture := &Capture{}
	if passthrough {
		return fn(c, capture)
	}

	var buf bytes.Buffer
	inner := c.buffered(&buf)

	defer func() {
		r := recover()
		if r != nil || err != nil {
			capture.Flush = true
		}
		if capture.Flush && buf.Len() > 0 {
			_, _ = c.w.Write(buf.Bytes())
		}
		if r != nil {
			panic(r)
		}
	}()

	return fn(inner, capture)
}

// buffered builds a console over buf that renders colour as if it were a
// live terminal, unless colour was disabled on c.
func (c *Console) buffered(buf *bytes.Buffer) *Console {
	opts := []Option{WithLogLevel(c.level)}
	if c.noColor {
		opts = append(opts, WithNoColor())
	} else {
		profile := c.renderer.ColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI
		}
		opts = append(opts, WithProfile(profile))
	}
	return New(buf, opts...)
}

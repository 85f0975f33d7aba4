package clipboard

import (
	"fmt"
	"io"
	"os"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

// OSC52 asks the terminal emulator to set the clipboard with an escape sequence.
// It works over SSH but only when the output really is a terminal, which is
// what Secure reports.
type OSC52 struct {
	Out    io.Writer
	Getenv func(string) string
}

// NewOSC52 creates an OSC52 backend writing to out, or stdout when out is nil
func NewOSC52(out io.Writer) *OSC52 {
	if out == nil {
		out = os.Stdout
	}
	return &OSC52{Out: out, Getenv: os.Getenv}
}

func (o *OSC52) Available() bool {
	return o.Out != nil
}

// Secure is true when Out is a terminal that is not a dumb one
func (o *OSC52) Secure() bool {
	if o.Getenv != nil && o.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(o.Out)
}

// WriteText sends the sequence; an empty text sends the clear sequence
func (o *OSC52) WriteText(text string) error {
	seq := o.wrap(osc52.New(text))
	if text == "" {
		seq = seq.Clear()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("osc52 write: %w", err)
	}
	return nil
}

// wrap picks the passthrough mode for multiplexers
func (o *OSC52) wrap(seq osc52.Sequence) osc52.Sequence {
	if o.Getenv == nil {
		return seq
	}
	switch {
	case o.Getenv("TMUX") != "":
		return seq.Tmux()
	case o.Getenv("STY") != "":
		return seq.Screen()
	}
	return seq
}

// IsTerminal reports whether w is a terminal file
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

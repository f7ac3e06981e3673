package terminal

import (
	"os"

	"golang.org/x/term"
)

// Terminal describes the process's stdin/stdout pair.
type Terminal struct {
	in  *os.File
	out *os.File
}

func NewTerminal(in, out *os.File) *Terminal {
	return &Terminal{in: in, out: out}
}

// Interactive reports whether both ends are attached to a terminal. Color
// and animation only make sense when they are.
func (t *Terminal) Interactive() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// Size returns the output dimensions, falling back to 80x24.
func (t *Terminal) Size() (width int, height int) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

func (t *Terminal) In() *os.File  { return t.in }
func (t *Terminal) Out() *os.File { return t.out }

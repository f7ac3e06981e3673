package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/iamasit07/4gewinnt/internal/domain"
)

type line struct {
	text string
	err  error
}

// LineReader reads one line per move. The underlying reads happen on a
// single background goroutine so a pending move can be abandoned through
// the context; lines are still consumed strictly in order.
type LineReader struct {
	src   *bufio.Reader
	once  sync.Once
	lines chan line
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{
		src:   bufio.NewReader(in),
		lines: make(chan line),
	}
}

func (lr *LineReader) start() {
	go func() {
		defer close(lr.lines)
		for {
			text, err := lr.src.ReadString('\n')
			if err != nil {
				// a final line without newline still counts
				if errors.Is(err, io.EOF) && text != "" {
					lr.lines <- line{text: strings.TrimRight(text, "\r\n")}
				}
				lr.lines <- line{err: err}
				return
			}
			lr.lines <- line{text: strings.TrimRight(text, "\r\n")}
		}
	}()
}

// RequestMove blocks until a line is available, input ends or ctx is done.
func (lr *LineReader) RequestMove(ctx context.Context, _ domain.PlayerID) (string, error) {
	lr.once.Do(lr.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-lr.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/4gewinnt/internal/domain"
)

const (
	coinSymbol = "o"

	colorReset   = "\x1b[0m"
	colorPlayer1 = "\x1b[94m"
	colorPlayer2 = "\x1b[91m"

	clearLine   = "\x1b[2K"
	clearBelow  = "\x1b[J"
	clearScreen = "\x1b[2J"
)

// screen layout: column numbers, the grid, then the footer
const (
	headerLine = 0
	footerLine = domain.Rows + 1
)

// boardWidth counts the pipes between and around the cells.
const boardWidth = 2*domain.Columns + 1

type Options struct {
	Color      bool
	DropDelay  time.Duration
	SlideDelay time.Duration
	WinPause   time.Duration
}

// Renderer paints the game with ANSI escape sequences. Coordinates are
// 0-based; the first write error is kept and later writes are skipped.
type Renderer struct {
	out   io.Writer
	opts  Options
	sleep func(time.Duration)
	err   error
}

func NewRenderer(out io.Writer, opts Options) *Renderer {
	return &Renderer{out: out, opts: opts, sleep: time.Sleep}
}

// Err returns the first write error, if any.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.out, s)
}

func (r *Renderer) moveTo(x, y int) {
	r.write(fmt.Sprintf("\x1b[%d;%dH", y+1, x+1))
}

func (r *Renderer) pause(d time.Duration) {
	if d > 0 {
		r.sleep(d)
	}
}

func (r *Renderer) coin(player domain.PlayerID) string {
	if !r.opts.Color {
		return coinSymbol
	}
	switch player {
	case domain.Player1:
		return colorPlayer1 + coinSymbol + colorReset
	case domain.Player2:
		return colorPlayer2 + coinSymbol + colorReset
	}
	return coinSymbol
}

func (r *Renderer) cell(player domain.PlayerID) string {
	if player == domain.Empty {
		return " "
	}
	return r.coin(player)
}

// PresentBoard clears the screen and draws header, grid and footer.
func (r *Renderer) PresentBoard(board *domain.Board, offsets domain.FallOffsets) {
	r.write(clearScreen)
	r.moveTo(0, headerLine)

	var header strings.Builder
	header.WriteString(" ")
	for i := 1; i <= domain.Columns; i++ {
		header.WriteString(strconv.Itoa(i))
		header.WriteString(" ")
	}
	r.write(header.String())

	r.printBoard(0, board, &offsets)
	r.printFooter()
}

// PresentDrop animates the token falling from above the grid to row.
func (r *Renderer) PresentDrop(_ *domain.Board, column, row int, player domain.PlayerID) {
	x := 2*column + 1
	if r.opts.DropDelay > 0 {
		for line := 1; line <= row; line++ {
			r.moveTo(x, line)
			r.write(r.coin(player))
			r.pause(r.opts.DropDelay)
			r.moveTo(x, line)
			r.write(" ")
		}
	}
	r.moveTo(x, row+1)
	r.write(r.coin(player))
}

// PresentMessage replaces the contents of line with text. The cursor is
// left right after the text so it can double as a prompt.
func (r *Renderer) PresentMessage(text string, line int) {
	r.moveTo(0, line)
	r.write(clearLine)
	r.write(text)
}

// Finish resets colors and parks the cursor on line.
func (r *Renderer) Finish(line int) {
	r.moveTo(0, line)
	r.write(colorReset + "\n")
}

func (r *Renderer) printFooter() {
	r.moveTo(0, footerLine)
	r.write(strings.Repeat("-", boardWidth))
}

// printBoard draws the grid with its left edge at column x. Tokens of a
// column are shifted down by that column's fall offset; the pipes stay put.
func (r *Renderer) printBoard(x int, board *domain.Board, offsets *domain.FallOffsets) {
	for i := 0; i < domain.Rows; i++ {
		r.moveTo(x, i+1)
		r.write("|")
		for j := 0; j < domain.Columns; j++ {
			if offsets[j] < domain.HiddenFall {
				r.moveTo((j+1)*2-1+x, i+1+offsets[j])
				r.write(r.cell(board.Cell(j, i)))
			}
			r.moveTo((j+1)*2+x, i+1)
			r.write("|")
		}
	}
}

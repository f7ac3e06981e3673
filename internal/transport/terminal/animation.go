package terminal

import (
	"strings"

	"github.com/iamasit07/4gewinnt/internal/domain"
)

// frames the tokens keep falling once the board reached the right edge
const fallFrames = 19

// PresentEndOfGame slides the board to the right while the tokens drop out
// of it column by column, then slides the emptied board back and prints the
// result again.
func (r *Renderer) PresentEndOfGame(board *domain.Board, result domain.GameResult) {
	r.pause(r.opts.WinPause)

	if r.opts.SlideDelay > 0 {
		var fall domain.FallOffsets

		for x := 0; x <= boardWidth; x++ {
			r.frame(x, x+1, board, &fall)
		}
		for i := 0; i < fallFrames; i++ {
			r.frame(boardWidth, boardWidth+1, board, &fall)
		}

		empty := domain.NewBoard()
		for x := boardWidth; x >= 0; x-- {
			r.frame(x, x+1, empty, &fall)
		}

		r.moveTo(0, footerLine+1)
		r.write(clearBelow)
		r.printFooter()
	}

	r.PresentMessage(result.String(), footerLine+2)
}

// frame redraws the board at x after advancing the fall offsets to fallX.
func (r *Renderer) frame(x, fallX int, board *domain.Board, fall *domain.FallOffsets) {
	for i := 0; i < domain.Rows; i++ {
		r.moveTo(0, i+1)
		r.write(clearLine)
	}
	r.moveTo(0, footerLine)
	r.write(clearBelow)
	r.write(strings.Repeat("-", boardWidth))

	fall.Advance(fallX)
	r.printBoard(x, board, fall)
	r.pause(r.opts.SlideDelay)
}

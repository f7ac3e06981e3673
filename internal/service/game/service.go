package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamasit07/4gewinnt/internal/domain"
	"github.com/rs/zerolog"
)

// screen lines used for the prompt and for error text
const (
	PromptLine = 9
	StatusLine = 10
)

const promptFormat = "Player %s, please enter your move : "

var (
	msgColumnFilled = "This column is already filled!! Enter a different move:"
	msgInvalidMove  = fmt.Sprintf("Invalid move. Please enter a number between 1 and %d.", domain.Columns)
)

// Renderer draws the game. Calls are fire-and-forget; the loop never waits on
// a result from them.
type Renderer interface {
	PresentBoard(board *domain.Board, offsets domain.FallOffsets)
	PresentDrop(board *domain.Board, column, row int, player domain.PlayerID)
	PresentMessage(text string, line int)
	PresentEndOfGame(board *domain.Board, result domain.GameResult)
}

// InputSource yields one line of user input per call.
type InputSource interface {
	RequestMove(ctx context.Context, player domain.PlayerID) (string, error)
}

type state int

const (
	stateAwaitingMove state = iota
	stateEvaluating
	stateFinished
)

type Service struct {
	renderer Renderer
	input    InputSource
	logger   zerolog.Logger
}

func NewService(renderer Renderer, input InputSource, logger zerolog.Logger) *Service {
	return &Service{
		renderer: renderer,
		input:    input,
		logger:   logger.With().Str("component", "game").Logger(),
	}
}

// Play runs g until someone wins or the board fills up. An error means the
// game was abandoned: input ran out or ctx was cancelled.
func (s *Service) Play(ctx context.Context, g *domain.Game) (domain.GameResult, error) {
	logger := s.logger.With().Str("game_id", g.ID).Logger()
	logger.Info().Msg("game started")

	s.renderer.PresentBoard(g.Board.Clone(), domain.FallOffsets{})

	st := stateAwaitingMove
	if g.IsFinished() {
		st = stateFinished
	}

	for {
		switch st {
		case stateAwaitingMove:
			if err := ctx.Err(); err != nil {
				return g.Result, s.abandon(logger, g, err)
			}

			player := g.CurrentPlayer
			s.renderer.PresentMessage(fmt.Sprintf(promptFormat, player), PromptLine)

			text, err := s.input.RequestMove(ctx, player)
			if err != nil {
				return g.Result, s.abandon(logger, g, err)
			}

			column, err := domain.ParseMove(text)
			if err != nil {
				logger.Debug().Stringer("player", player).Str("input", text).Msg("rejected input")
				s.renderer.PresentMessage(msgInvalidMove, StatusLine)
				continue
			}
			s.renderer.PresentMessage("", StatusLine)

			row, err := g.Drop(column)
			if errors.Is(err, domain.ErrColumnFull) {
				logger.Debug().
					Stringer("player", player).
					Int("column", column+1).
					Ints("open_columns", g.Board.ValidMoves()).
					Msg("column full")
				s.renderer.PresentMessage(msgColumnFilled, StatusLine)
				continue
			}
			if err != nil {
				return g.Result, fmt.Errorf("game %s: drop into column %d: %w", g.ID, column+1, err)
			}

			logger.Debug().
				Stringer("player", player).
				Int("column", column+1).
				Int("row", row).
				Int("move", g.MoveCount).
				Msg("token dropped")
			s.renderer.PresentDrop(g.Board.Clone(), column, row, player)
			st = stateEvaluating

		case stateEvaluating:
			if g.Evaluate().Finished() {
				st = stateFinished
			} else {
				st = stateAwaitingMove
			}

		case stateFinished:
			logger.Info().
				Str("status", string(g.Result.Status)).
				Stringer("winner", g.Result.Winner).
				Int("moves", g.MoveCount).
				Msg("game finished")
			s.renderer.PresentMessage(g.Result.String(), PromptLine)
			s.renderer.PresentEndOfGame(g.Board.Clone(), g.Result)
			return g.Result, nil
		}
	}
}

func (s *Service) abandon(logger zerolog.Logger, g *domain.Game, cause error) error {
	logger.Warn().Err(cause).Int("moves", g.MoveCount).Stringer("player", g.CurrentPlayer).Msg("game abandoned")
	return fmt.Errorf("game %s abandoned after %d moves: %w", g.ID, g.MoveCount, cause)
}

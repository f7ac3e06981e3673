package domain

import "strconv"

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Other returns the opponent of p. Empty has no opponent.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

func (p PlayerID) String() string {
	if p == Empty {
		return "empty"
	}
	return strconv.Itoa(int(p))
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusDraw       GameStatus = "draw"
)

// GameResult is what the board evaluates to after a move.
// Winner is only set when Status is StatusWon.
type GameResult struct {
	Status GameStatus
	Winner PlayerID
}

var InProgress = GameResult{Status: StatusInProgress}

func Win(player PlayerID) GameResult {
	return GameResult{Status: StatusWon, Winner: player}
}

func Draw() GameResult {
	return GameResult{Status: StatusDraw}
}

func (r GameResult) Finished() bool {
	return r.Status == StatusWon || r.Status == StatusDraw
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove       Error = "invalid move"
	ErrColumnFull        Error = "column is full"
	ErrGameOver          Error = "game is already over"
	ErrEvaluationPending Error = "previous move has not been evaluated"
)

func (r GameResult) String() string {
	switch r.Status {
	case StatusWon:
		return "Player " + r.Winner.String() + " won the game!!"
	case StatusDraw:
		return "The game ended in a draw!"
	}
	return "Game in progress"
}

package domain

type Game struct {
	ID            string
	Board         *Board
	CurrentPlayer PlayerID
	Result        GameResult
	MoveCount     int

	// set between Drop and Evaluate
	pending bool
}

func NewGame(id string) *Game {
	return &Game{
		ID:            id,
		Board:         NewBoard(),
		CurrentPlayer: Player1,
		Result:        InProgress,
	}
}

// Drop places the current player's token. The turn does not change until
// Evaluate is called.
func (g *Game) Drop(column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}
	if g.pending {
		return -1, ErrEvaluationPending
	}

	row, err := g.Board.DropToken(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.pending = true
	return row, nil
}

// Evaluate checks the board after a drop and either finishes the game or
// hands the turn to the other player.
func (g *Game) Evaluate() GameResult {
	if g.IsFinished() || !g.pending {
		return g.Result
	}
	g.pending = false

	if result := g.Board.CheckWin(); result.Finished() {
		g.Result = result
		return g.Result
	}

	if g.Board.IsFull() {
		g.Result = Draw()
		return g.Result
	}

	g.CurrentPlayer = g.CurrentPlayer.Other()
	return g.Result
}

func (g *Game) MakeMove(column int) (int, error) {
	row, err := g.Drop(column)
	if err != nil {
		return -1, err
	}
	g.Evaluate()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Result.Finished()
}

package game

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/iamasit07/4gewinnt/internal/domain"
	"github.com/rs/zerolog"
)

type recordedDrop struct {
	column, row int
	player      domain.PlayerID
}

type fakeRenderer struct {
	boards   int
	drops    []recordedDrop
	messages []string
	endings  []domain.GameResult
}

func (f *fakeRenderer) PresentBoard(*domain.Board, domain.FallOffsets) { f.boards++ }

func (f *fakeRenderer) PresentDrop(_ *domain.Board, column, row int, player domain.PlayerID) {
	f.drops = append(f.drops, recordedDrop{column, row, player})
}

func (f *fakeRenderer) PresentMessage(text string, line int) {
	if line == StatusLine && text != "" {
		f.messages = append(f.messages, text)
	}
}

func (f *fakeRenderer) PresentEndOfGame(_ *domain.Board, result domain.GameResult) {
	f.endings = append(f.endings, result)
}

type scriptedInput struct {
	lines   []string
	players []domain.PlayerID
}

func (s *scriptedInput) RequestMove(_ context.Context, player domain.PlayerID) (string, error) {
	s.players = append(s.players, player)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func play(t *testing.T, lines ...string) (domain.GameResult, *domain.Game, *fakeRenderer, *scriptedInput, error) {
	t.Helper()
	r := &fakeRenderer{}
	in := &scriptedInput{lines: lines}
	g := domain.NewGame("test")
	res, err := NewService(r, in, zerolog.Nop()).Play(context.Background(), g)
	return res, g, r, in, err
}

func TestPlayHorizontalWin(t *testing.T) {
	res, g, r, _, err := play(t, "1", "1", "2", "2", "3", "3", "4")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res != domain.Win(domain.Player1) {
		t.Fatalf("expected player 1 to win, got %+v", res)
	}
	if g.MoveCount != 7 {
		t.Fatalf("expected 7 moves, got %d", g.MoveCount)
	}
	if r.boards != 1 {
		t.Fatalf("expected the board to be drawn once, got %d", r.boards)
	}
	if len(r.endings) != 1 || r.endings[0] != res {
		t.Fatalf("unexpected end of game calls %+v", r.endings)
	}
	last := r.drops[len(r.drops)-1]
	if last != (recordedDrop{column: 3, row: domain.Rows - 1, player: domain.Player1}) {
		t.Fatalf("unexpected final drop %+v", last)
	}
}

func TestPlayRejectedInputKeepsPlayer(t *testing.T) {
	res, _, r, in, err := play(t,
		"1", "x", "0", "8", "10", "2", // player 2 retries four times
		"1", "2", "1", "2", "1",
	)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res != domain.Win(domain.Player1) {
		t.Fatalf("expected player 1 to win, got %+v", res)
	}
	if len(r.messages) != 4 {
		t.Fatalf("expected 4 error messages, got %v", r.messages)
	}
	for _, m := range r.messages {
		if m != msgInvalidMove {
			t.Fatalf("unexpected message %q", m)
		}
	}

	want := []domain.PlayerID{
		domain.Player1,
		domain.Player2, domain.Player2, domain.Player2, domain.Player2, domain.Player2,
		domain.Player1, domain.Player2, domain.Player1, domain.Player2, domain.Player1,
	}
	if len(in.players) != len(want) {
		t.Fatalf("expected %d prompts, got %d", len(want), len(in.players))
	}
	for i := range want {
		if in.players[i] != want[i] {
			t.Fatalf("prompt %d went to player %v, want %v", i, in.players[i], want[i])
		}
	}
}

func TestPlayColumnFilledKeepsPlayer(t *testing.T) {
	// fill column 1 without a winner: 1 2 1 2 1 2 alternate players
	lines := []string{"1", "1", "1", "1", "1", "1", "1", "2"}
	_, g, r, in, err := play(t, lines...)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected the game to be abandoned on EOF, got %v", err)
	}
	if len(r.messages) != 1 || r.messages[0] != msgColumnFilled {
		t.Fatalf("unexpected messages %v", r.messages)
	}
	// the 7th prompt (player 1) was rejected so the 8th is player 1 again
	if in.players[6] != domain.Player1 || in.players[7] != domain.Player1 {
		t.Fatalf("full column consumed a turn: %v", in.players)
	}
	if g.MoveCount != 7 {
		t.Fatalf("expected 7 moves, got %d", g.MoveCount)
	}
	if g.CurrentPlayer != domain.Player2 {
		t.Fatalf("expected player 2 to be next, got %v", g.CurrentPlayer)
	}
}

func TestPlayAbandonedOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &fakeRenderer{}
	in := &scriptedInput{lines: []string{"1"}}
	res, err := NewService(r, in, zerolog.Nop()).Play(ctx, domain.NewGame("test"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Finished() {
		t.Fatalf("abandoned game reported as finished: %+v", res)
	}
	if len(in.players) != 0 {
		t.Fatal("cancelled game still asked for input")
	}
	if len(r.endings) != 0 {
		t.Fatal("cancelled game played the end sequence")
	}
}

// drawSequence fills the board without ever lining up four tokens.
const drawSequence = "643426421252361677317153414534371522655677"

func TestPlayDraw(t *testing.T) {
	lines := make([]string, 0, len(drawSequence))
	for _, c := range drawSequence {
		lines = append(lines, string(c))
	}

	res, g, r, _, err := play(t, lines...)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if g.MoveCount != domain.Rows*domain.Columns {
		t.Fatalf("expected a full board, got %d moves", g.MoveCount)
	}
	if res != domain.Draw() {
		t.Fatalf("expected a draw, got %+v", res)
	}
	if len(r.endings) != 1 {
		t.Fatal("draw did not play the end sequence")
	}
}

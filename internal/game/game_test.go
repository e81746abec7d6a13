package game

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/QuartoGo/internal/board"
	"github.com/frankkopp/QuartoGo/internal/piece"
	"github.com/frankkopp/QuartoGo/internal/search"
)

func TestNewGameFromSquaresPrefillsBoard(t *testing.T) {
	p0 := NewAIPlayer(0, "Alpha", search.NewEngine())
	p1 := NewAIPlayer(1, "Beta", search.NewEngine())

	pieces := map[board.Square]string{
		board.SquareAt(0, 0): "rfsl",
		board.SquareAt(0, 1): "rfsd",
	}
	g, err := NewGameFromSquares(p0, p1, pieces)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 2, g.Board().NumUsedPieces())
	assert.False(t, g.Board().IsEmpty(board.SquareAt(0, 0)))
}

func TestNewGameFromSquaresRejectsBadDescriptor(t *testing.T) {
	p0 := NewAIPlayer(0, "", search.NewEngine())
	p1 := NewAIPlayer(1, "", search.NewEngine())

	_, err := NewGameFromSquares(p0, p1, map[board.Square]string{board.SquareAt(0, 0): "xxxx"})
	if err != piece.ErrInvalidDescriptor {
		t.Fatalf("expected ErrInvalidDescriptor, got %v", err)
	}
}

func TestAIPlayerDefaultName(t *testing.T) {
	p := NewAIPlayer(0, "", search.NewEngine())
	assert.Equal(t, "Player 1", p.Name)
	assert.True(t, p.IsAI())
}

// TestRunAIVsAIReachesGameOver plays a full AI-vs-AI game from an empty
// board to completion: win or tie, it must terminate and IsOver() must
// hold afterward.
func TestRunAIVsAIReachesGameOver(t *testing.T) {
	p0 := NewAIPlayer(0, "Alpha", search.NewEngine())
	p1 := NewAIPlayer(1, "Beta", search.NewEngine())
	g := NewGame(p0, p1)

	g.Run(message.NewPrinter(language.English))

	if !g.IsOver() {
		t.Fatal("expected the game to be over after Run returns")
	}
}

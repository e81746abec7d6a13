package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/QuartoGo/internal/piece"
)

func mustParse(t *testing.T, desc string) piece.Piece {
	t.Helper()
	p, err := piece.Parse(desc)
	if err != nil {
		t.Fatalf("parse %q: %v", desc, err)
	}
	return p
}

func TestEmptyBoard(t *testing.T) {
	b := New()
	assert.True(t, b.IsEmpty(SquareAt(0, 0)))
	assert.False(t, b.IsWin())
	assert.False(t, b.IsGameOver())
	assert.Equal(t, 0, b.NumUsedPieces())
	assert.Equal(t, 0, b.GetCurrentPlacePlayerIndex())
	assert.Equal(t, 1, b.GetCurrentGivePlayerIndex())
}

func TestPlacePieceOccupies(t *testing.T) {
	b := New()
	p := mustParse(t, "rfsl")
	b2 := b.PlacePiece(SquareAt(0, 0), p)

	assert.True(t, b.IsEmpty(SquareAt(0, 0)), "original board must stay unchanged")
	assert.False(t, b2.IsEmpty(SquareAt(0, 0)))
	assert.True(t, b2.GetPiece(SquareAt(0, 0)).Equal(p))
	assert.False(t, b2.IsUnused(p))
	assert.Equal(t, 1, b2.NumUsedPieces())
}

func TestRowWinSharedAttribute(t *testing.T) {
	b := New()
	// all four pieces round (r***): share the shape attribute.
	pieces := []string{"rfsl", "rfsd", "rftl", "rhsl"}
	for i, desc := range pieces {
		b = b.PlacePiece(SquareAt(0, i), mustParse(t, desc))
	}
	assert.True(t, b.IsWin())
	for col := 0; col < NumCols; col++ {
		assert.NotZero(t, b.WinMask()&SquareAt(0, col).Bb())
	}
}

func TestNoWinWithoutSharedAttribute(t *testing.T) {
	b := New()
	// chosen so no single attribute is constant across the row.
	pieces := []string{"rfsl", "qhtd", "rhsd", "qftl"}
	for i, desc := range pieces {
		b = b.PlacePiece(SquareAt(0, i), mustParse(t, desc))
	}
	assert.False(t, b.IsWin())
}

func TestNearWinCount(t *testing.T) {
	b := New()
	pieces := []string{"rfsl", "rfsd", "rftl"}
	for i, desc := range pieces {
		b = b.PlacePiece(SquareAt(0, i), mustParse(t, desc))
	}
	assert.Equal(t, 1, b.CountNearWins())
}

func TestAdvancedBlockWin(t *testing.T) {
	b := NewAdvanced()
	pieces := []string{"rfsl", "rfsd", "rftl", "rhsl"}
	squares := []Square{SquareAt(0, 0), SquareAt(0, 1), SquareAt(1, 0), SquareAt(1, 1)}
	for i, desc := range pieces {
		b = b.PlacePiece(squares[i], mustParse(t, desc))
	}
	assert.True(t, b.IsWin())
}

func TestBlockWinIgnoredUnderStandardRules(t *testing.T) {
	b := New()
	pieces := []string{"rfsl", "rfsd", "rftl", "rhsl"}
	squares := []Square{SquareAt(0, 0), SquareAt(0, 1), SquareAt(1, 0), SquareAt(1, 1)}
	for i, desc := range pieces {
		b = b.PlacePiece(squares[i], mustParse(t, desc))
	}
	assert.False(t, b.IsWin())
}

func TestPlayerIndexAlternates(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.GetCurrentPlacePlayerIndex())
	b = b.PlacePiece(SquareAt(0, 0), mustParse(t, "rfsl"))
	assert.Equal(t, 1, b.GetCurrentPlacePlayerIndex())
	assert.Equal(t, 0, b.GetCurrentGivePlayerIndex())
}

func TestGameOverWhenBoardFull(t *testing.T) {
	// Constructed directly rather than via PlacePiece: a sequential
	// code-to-square assignment is almost certain to complete a winning
	// line before all 16 squares fill, which PlacePiece's precondition
	// forbids. IsGameOver only cares about the used-piece count here.
	b := Board{numUsedPieces: NumSquares}
	assert.True(t, b.IsGameOver())
}

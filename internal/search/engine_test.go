package search

import (
	"testing"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/QuartoGo/internal/board"
	"github.com/frankkopp/QuartoGo/internal/piece"
	"github.com/frankkopp/QuartoGo/internal/rng"
)

func newTestEngine(seed int64) *Engine {
	return &Engine{rng: rng.New(seed), thinking: semaphore.NewWeighted(1)}
}

func mustPiece(t *testing.T, code piece.Code) piece.Piece {
	t.Helper()
	return piece.New(code)
}

// TestChoosePieceDeterministic covers scenario 1: an empty board, give
// phase, with a fixed RNG seed the result is reproducible and the board
// itself is left untouched.
func TestChoosePieceDeterministic(t *testing.T) {
	b := board.New()
	meIndex := b.GetCurrentGivePlayerIndex()

	e1 := newTestEngine(7)
	p1, r1 := e1.ChoosePiece(b, meIndex)

	e2 := newTestEngine(7)
	p2, r2 := e2.ChoosePiece(b, meIndex)

	if !p1.Equal(p2) {
		t.Fatalf("same seed produced different pieces: %s vs %s", p1, p2)
	}
	if r1.Score != r2.Score {
		t.Fatalf("same seed produced different scores: %d vs %d", r1.Score, r2.Score)
	}
	if b.NumUsedPieces() != 0 {
		t.Fatalf("ChoosePiece must not mutate the board, got NumUsedPieces=%d", b.NumUsedPieces())
	}
}

// TestChooseSquareImmediateWin covers scenario 2: three squares of a row
// share an attribute and an unused piece also carries it - placing it on
// the fourth square wins at once, short-circuiting the search.
func TestChooseSquareImmediateWin(t *testing.T) {
	b := board.New()
	b = b.PlacePiece(board.SquareAt(0, 0), mustPiece(t, 8))  // 1000
	b = b.PlacePiece(board.SquareAt(0, 1), mustPiece(t, 9))  // 1001
	b = b.PlacePiece(board.SquareAt(0, 2), mustPiece(t, 10)) // 1010

	meIndex := b.GetCurrentPlacePlayerIndex()
	given := mustPiece(t, 11) // 1011, shares the high bit with 8/9/10

	e := newTestEngine(3)
	square, returnedPiece := e.ChooseSquareAndPiece(b, meIndex, given)

	if square != board.SquareAt(0, 3) {
		t.Fatalf("expected the winning square %d, got %d", board.SquareAt(0, 3), square)
	}
	if !returnedPiece.Equal(given) {
		t.Fatalf("expected the given piece echoed back, got %s", returnedPiece)
	}
}

// TestGiveForcedLossAvoidance covers scenario 3: giving a piece that lets
// the opponent complete a line is a forced loss; giving a piece that
// does not is not.
func TestGiveForcedLossAvoidance(t *testing.T) {
	b := board.New()
	b = b.PlacePiece(board.SquareAt(0, 0), mustPiece(t, 8))  // 1000
	b = b.PlacePiece(board.SquareAt(0, 1), mustPiece(t, 9))  // 1001
	b = b.PlacePiece(board.SquareAt(0, 2), mustPiece(t, 10)) // 1010

	meIndex := b.GetCurrentGivePlayerIndex()
	e := newTestEngine(11)

	dangerous := mustPiece(t, 11) // 1011: completes the row's shared high bit
	danger := e.searchFromPlacePhase(b, meIndex, 1, 1, dangerous)
	if !danger.IsForcedLoss() {
		t.Fatalf("expected giving piece %s to be a forced loss, got %+v", dangerous, danger)
	}

	safe := mustPiece(t, 7) // 0111: breaks both the AND and OR conditions
	result := e.searchFromPlacePhase(b, meIndex, 1, 1, safe)
	if result.IsForcedLoss() {
		t.Fatalf("giving piece %s should not be a forced loss, got %+v", safe, result)
	}
}

// TestTieDetection covers scenario 5: a scripted sequence filling the
// board with no line ever sharing an attribute reaches a tie. The
// placement grid below is derived from a pair of orthogonal order-4
// Latin squares (over GF(4)), which guarantees every row, column and
// diagonal is a full permutation of the four 2-bit sub-codes - so no
// line can ever share a 1-bit (AND) or a 0-bit (OR) with its neighbors.
func TestTieDetection(t *testing.T) {
	grid := [16]piece.Code{
		0, 5, 10, 15,
		11, 14, 1, 4,
		13, 8, 7, 2,
		6, 3, 12, 9,
	}

	b := board.New()
	for s := 0; s < 15; s++ {
		b = b.PlacePiece(board.Square(s), piece.New(grid[s]))
	}
	if b.IsWin() {
		t.Fatalf("constructed board unexpectedly won before the last placement")
	}

	meIndex := b.GetCurrentPlacePlayerIndex()
	e := newTestEngine(1)

	acc := e.searchFromPlacePhase(b, meIndex, 2, 2, piece.New(grid[15]))
	if !acc.IsForcedTie() {
		t.Fatalf("expected a forced tie, got %+v", acc)
	}
	if acc.Win != 0 || acc.Lose != 0 {
		t.Fatalf("a tie must carry no win or loss, got %+v", acc)
	}
}

/*
 * QuartoGo - a Quarto playing engine in GO, written to study minimax search
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"github.com/frankkopp/QuartoGo/internal/board"
	"github.com/frankkopp/QuartoGo/internal/config"
	"github.com/frankkopp/QuartoGo/internal/piece"
)

// Result is the scored outcome of exploring one candidate move. It
// composes an Accumulator (embedded, so its merge semantics and
// classification predicates are promoted and usable directly) with the
// two fields a bare accumulator does not need: the near-win count of the
// resulting position and a precomputed scalar score. The original
// implementation derives SearchResult from SearchAccumulator by
// inheritance; there is no "is-a" relationship here worth modeling, only
// a result that happens to carry an accumulator plus a bit more.
type Result struct {
	Accumulator

	// Square and Piece identify the candidate this result scores. Square
	// is meaningless for a give-phase candidate, Piece for a pure
	// placement re-scoring; callers know which is which from context.
	Square board.Square
	Piece  piece.Piece

	// NearWinCount is the number of near-win lines in the position this
	// candidate leads to.
	NearWinCount int

	// Score is the precomputed win_score, set by ComputeWinScore.
	Score int
}

// ComputeWinScore precomputes Score as 2*Win + AccidentalWin +
// NearWinCount*K from the accumulator and whatever NearWinCount already
// holds (zero unless ComputeWinScoreFromBoard set it). Giving a piece has
// no single resulting board to take a near-win count from, so
// ChoosePiece's candidates call this form directly.
func (r *Result) ComputeWinScore() {
	k := config.Settings.Search.NearWinWeight
	r.Score = 2*r.Win + r.AccidentalWin + r.NearWinCount*k
}

// ComputeWinScoreFromBoard sets NearWinCount from b, the position this
// candidate leads to, then precomputes Score. Used by
// ChooseSquareAndPiece, where each candidate does have a resulting board.
func (r *Result) ComputeWinScoreFromBoard(b board.Board) {
	r.NearWinCount = b.CountNearWins()
	r.ComputeWinScore()
}

// WinRatio returns Score/Lose, the win_score()/lose_count() ratio the
// original implementation ranks mixed candidates by. Using Score rather
// than a bare Win count folds AccidentalWin and the near-win weighting
// back into the tie-break. Zero if Lose is zero.
func (r Result) WinRatio() float64 {
	if r.Lose == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Lose)
}

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

// Package search implements the two-phase minimax-style search that picks
// the piece to give and the square/piece to place, and the accumulator and
// ranking machinery that support it.
package search

// Accumulator tallies the outcomes seen while exploring one candidate
// move, from the point of view of the searching player (meIndex), whoever
// is to move at a given node. A win counted here means that player
// eventually wins the game along some continuation; an accidental win is
// a win for that player which the opponent's own choice hands over,
// rather than one forced by that player's choices.
//
// The original accumulator also piggybacks aux_square/aux_piece fields
// so a witness move can be set deep inside the give-phase recursion and
// read back by the top-level caller - a consequence of SearchResult
// inheriting from SearchAccumulator there. Without that inheritance
// there is no need to carry the witness on the accumulator itself:
// searchGivePhaseSavePiece returns its chosen piece as an explicit second
// result instead.
type Accumulator struct {
	Win           int
	AccidentalWin int
	Lose          int
	Tie           int
}

// Add merges other into a, the same additive semantics as the original
// accumulator's operator+=.
func (a *Accumulator) Add(other Accumulator) {
	a.Win += other.Win
	a.AccidentalWin += other.AccidentalWin
	a.Lose += other.Lose
	a.Tie += other.Tie
}

// IsForcedWin reports whether win_count is nonzero and no loss or tie was
// seen. Note this does not exclude AccidentalWin: every forced win is
// also, trivially, an accidental win, since inc_win always raises both
// counters together.
func (a Accumulator) IsForcedWin() bool {
	return a.Win != 0 && a.Lose == 0 && a.Tie == 0
}

// IsForcedLoss reports whether lose_count is nonzero and no win or tie
// was seen.
func (a Accumulator) IsForcedLoss() bool {
	return a.Lose != 0 && a.Win == 0 && a.Tie == 0
}

// IsForcedTie reports whether tie_count is nonzero and no win or loss was
// seen.
func (a Accumulator) IsForcedTie() bool {
	return a.Tie != 0 && a.Win == 0 && a.Lose == 0
}

// IsAccidentalWin reports whether accidental_win_count is nonzero and no
// loss or tie was seen. A forced win satisfies this too.
func (a Accumulator) IsAccidentalWin() bool {
	return a.AccidentalWin != 0 && a.Lose == 0 && a.Tie == 0
}

// IsNotLoss reports whether no explored continuation was a loss.
func (a Accumulator) IsNotLoss() bool {
	return a.Lose == 0
}

// IsMixed reports whether the candidate has seen both wins and losses -
// the case that wins and losses are ranked by ratio rather than forced
// classification.
func (a Accumulator) IsMixed() bool {
	return a.Win > 0 && a.Lose > 0
}

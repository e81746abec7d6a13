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
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/QuartoGo/internal/assert"
	"github.com/frankkopp/QuartoGo/internal/board"
	"github.com/frankkopp/QuartoGo/internal/config"
	"github.com/frankkopp/QuartoGo/internal/logging"
	"github.com/frankkopp/QuartoGo/internal/piece"
	"github.com/frankkopp/QuartoGo/internal/rng"
)

// Engine runs the AI decision search against a supplied board. It owns
// the pseudorandom source used for candidate shuffling and bounded-depth
// sampling; an Engine must not be shared between goroutines running
// concurrent searches, since the RNG is not safe for concurrent use.
type Engine struct {
	rng *rng.Source

	// thinking guards against a caller re-entering the engine from a
	// second goroutine while a search is in flight. The core itself is
	// synchronous and never suspends, so this is a correctness guard
	// against misuse, not a scheduling primitive.
	thinking *semaphore.Weighted
}

// NewEngine returns an Engine whose RNG is seeded from
// config.Settings.Game.RandomSeed. A seed of zero means "unset" and picks a
// fresh seed from wall-clock time, so two engines built without an explicit
// seed get independent sequences; a nonzero seed is used verbatim and makes
// the engine's choices reproducible, the property
// TestChoosePieceDeterministic relies on by constructing its Engine values
// directly rather than through NewEngine.
func NewEngine() *Engine {
	seed := config.Settings.Game.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		rng:      rng.New(seed),
		thinking: semaphore.NewWeighted(1),
	}
}

func (e *Engine) enter() {
	if !e.thinking.TryAcquire(1) {
		assert.Assert(false, "search: engine re-entered while already thinking")
	}
}

func (e *Engine) leave() {
	e.thinking.Release(1)
}

var log = logging.GetSearchLog()

// ChoosePiece picks the piece meIndex should hand to the opponent from
// board b. It enumerates every unused piece, runs a bounded search of the
// resulting place-phase for each, and ranks the candidates.
func (e *Engine) ChoosePiece(b board.Board, meIndex int) (piece.Piece, Result) {
	assert.Assert(!b.IsGameOver(), "search: ChoosePiece called on a finished game")
	assert.Assert(meIndex == b.GetCurrentGivePlayerIndex(), "search: ChoosePiece called out of turn")

	e.enter()
	defer e.leave()

	limits := depthFor(board.NumSquares - b.NumUsedPieces() + 1)
	if config.Settings.Search.ShowSearchLog {
		log.Debugf("choose_piece: max_me=%d max_all=%d", limits.maxMeLevels, limits.maxSearchLevels)
	}

	candidates := b.UnusedPieces()
	results := make([]Result, len(candidates))
	for i, p := range candidates {
		acc := e.searchFromPlacePhase(b, meIndex, limits.maxMeLevels, limits.maxSearchLevels, p)
		results[i] = Result{Accumulator: acc, Piece: p}
		results[i].ComputeWinScore()
	}

	e.rng.Shuffle(len(results), func(i, j int) { results[i], results[j] = results[j], results[i] })
	best := chooseFromResultList(results)
	return best.Piece, best
}

// ChooseSquareAndPiece picks the square on which meIndex should place
// given, and the piece meIndex will then hand back to the opponent. If
// any empty square immediately wins the game, that square is returned at
// once with no further search.
func (e *Engine) ChooseSquareAndPiece(b board.Board, meIndex int, given piece.Piece) (board.Square, piece.Piece) {
	assert.Assert(!b.IsGameOver(), "search: ChooseSquareAndPiece called on a finished game")
	assert.Assert(meIndex == b.GetCurrentPlacePlayerIndex(), "search: ChooseSquareAndPiece called out of turn")

	e.enter()
	defer e.leave()

	squares := b.EmptySquares()
	assert.Assert(len(squares) > 0, "search: ChooseSquareAndPiece found no empty square")

	shuffled := make([]board.Square, len(squares))
	copy(shuffled, squares)
	e.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	nextBoards := make(map[board.Square]board.Board, len(shuffled))
	for _, s := range shuffled {
		next := b.PlacePiece(s, given)
		if next.IsWin() {
			if config.Settings.Search.ShowSearchLog {
				log.Debugf("choose_square_and_piece: immediate win at square %d", s)
			}
			return s, given
		}
		nextBoards[s] = next
	}

	limits := depthFor(board.NumSquares - b.NumUsedPieces())
	results := make([]Result, 0, len(shuffled))
	for _, s := range shuffled {
		next := nextBoards[s]
		acc, givePiece := e.searchGivePhaseSavePiece(next, meIndex, limits.maxMeLevels-1, limits.maxSearchLevels-1)
		r := Result{Accumulator: acc, Square: s, Piece: givePiece}
		r.ComputeWinScoreFromBoard(next)
		results = append(results, r)
	}

	best := chooseFromResultList(results)
	if config.Settings.Search.ShowSearchLog {
		log.Debugf("choose_square_and_piece: chose square %d, piece %s", best.Square, best.Piece)
	}
	return best.Square, best.Piece
}

// searchFromGivePhase explores every unused piece as a candidate give,
// recursing into the following place phase for each, and merges the
// survivors under phase pruning. Corresponds to the original
// implementation's search_wins overload that enumerates pieces.
func (e *Engine) searchFromGivePhase(b board.Board, meIndex, maxMe, maxAll int) Accumulator {
	if maxAll <= 0 {
		return Accumulator{}
	}
	assert.Assert(!b.IsWin(), "search: searchFromGivePhase reached an already-won board")
	if b.IsGameOver() {
		return Accumulator{Tie: 1}
	}

	myTurn := meIndex == b.GetCurrentGivePlayerIndex()
	candidates := b.UnusedPieces()
	if myTurn && maxMe <= 0 {
		candidates = candidates[e.rng.Intn(len(candidates)):][:1]
	}

	var acc, forced Accumulator
	gotAny := false
	for _, p := range candidates {
		child := e.searchFromPlacePhase(b, meIndex, maxMe, maxAll, p)

		if myTurn && child.IsForcedLoss() {
			forced.Add(child)
			continue
		}
		if !myTurn && child.IsForcedWin() {
			acc.AccidentalWin += child.AccidentalWin
			forced.Add(child)
			continue
		}
		acc.Add(child)
		gotAny = true
	}
	if !gotAny {
		acc.Add(forced)
	}
	return acc
}

// searchGivePhaseSavePiece is the variant used exactly once per candidate
// in ChooseSquareAndPiece: rather than enumerating every unused piece, it
// asks ChoosePiece to pick the best one to give next, explores the
// resulting place phase for that piece only, and returns both the
// resulting accumulator and the chosen piece.
func (e *Engine) searchGivePhaseSavePiece(b board.Board, meIndex, maxMe, maxAll int) (Accumulator, piece.Piece) {
	if maxAll <= 0 {
		return Accumulator{}, piece.Piece{}
	}
	assert.Assert(!b.IsWin(), "search: searchGivePhaseSavePiece reached an already-won board")
	if b.IsGameOver() {
		return Accumulator{Tie: 1}, piece.Piece{}
	}

	givePiece, _ := e.choosePieceInner(b, meIndex)
	child := e.searchFromPlacePhase(b, meIndex, maxMe, maxAll, givePiece)
	return child, givePiece
}

// choosePieceInner is ChoosePiece's search body without the re-entrancy
// guard and turn assertions, so searchGivePhaseSavePiece can call it from
// inside an already-running search.
func (e *Engine) choosePieceInner(b board.Board, meIndex int) (piece.Piece, Result) {
	limits := depthFor(board.NumSquares - b.NumUsedPieces() + 1)
	candidates := b.UnusedPieces()
	results := make([]Result, len(candidates))
	for i, p := range candidates {
		acc := e.searchFromPlacePhase(b, meIndex, limits.maxMeLevels, limits.maxSearchLevels, p)
		results[i] = Result{Accumulator: acc, Piece: p}
		results[i].ComputeWinScore()
	}
	e.rng.Shuffle(len(results), func(i, j int) { results[i], results[j] = results[j], results[i] })
	best := chooseFromResultList(results)
	return best.Piece, best
}

// searchFromPlacePhase explores every empty square as a candidate
// placement of given. An immediate win on any candidate square ends the
// search at this node at once: win_count or lose_count is incremented
// depending on whose turn it is, and no other square is examined.
// Otherwise each non-winning placement recurses into the following give
// phase, survivors are merged under phase pruning, and the merged sum is
// promoted into the returned accumulator by its own classification.
func (e *Engine) searchFromPlacePhase(b board.Board, meIndex, maxMe, maxAll int, given piece.Piece) Accumulator {
	if maxAll <= 0 {
		return Accumulator{}
	}
	assert.Assert(!b.IsWin(), "search: searchFromPlacePhase reached an already-won board")
	if b.IsGameOver() {
		return Accumulator{Tie: 1}
	}

	myTurn := meIndex == b.GetCurrentPlacePlayerIndex()
	squares := b.EmptySquares()
	if myTurn && maxMe <= 0 {
		s := squares[e.rng.Intn(len(squares))]
		squares = []board.Square{s}
	}

	nextBoards := make([]board.Board, 0, len(squares))
	for _, s := range squares {
		next := b.PlacePiece(s, given)
		if next.IsWin() {
			if myTurn {
				return Accumulator{Win: 1, AccidentalWin: 1}
			}
			return Accumulator{Lose: 1}
		}
		nextBoards = append(nextBoards, next)
	}

	var sum, forced Accumulator
	gotAny := false
	for _, next := range nextBoards {
		child := e.searchFromGivePhase(next, meIndex, maxMe-1, maxAll-1)

		if myTurn && child.IsForcedLoss() {
			forced.Add(child)
			continue
		}
		if !myTurn && child.IsForcedWin() {
			sum.AccidentalWin += child.AccidentalWin
			forced.Add(child)
			continue
		}
		sum.Add(child)
		gotAny = true
	}
	if !gotAny {
		sum.Add(forced)
	}

	var acc Accumulator
	switch {
	case sum.IsForcedWin():
		acc.Win += sum.Win
		acc.AccidentalWin += sum.AccidentalWin
	case sum.IsForcedLoss():
		acc.Lose += sum.Lose
		acc.AccidentalWin += sum.AccidentalWin
	case sum.IsForcedTie():
		acc.Tie += sum.Tie
		acc.AccidentalWin += sum.AccidentalWin
	case sum.IsAccidentalWin():
		acc.AccidentalWin += sum.AccidentalWin
	default:
		acc.Add(sum)
	}
	return acc
}

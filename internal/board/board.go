//
// QuartoGo - a Quarto playing engine in GO, written to study minimax search
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package board implements the Quarto board: an immutable position
// snapshot, its win/near-win evaluator, and the placement operation that
// derives the next snapshot.
package board

import (
	"strconv"
	"strings"

	"github.com/frankkopp/QuartoGo/internal/assert"
	"github.com/frankkopp/QuartoGo/internal/piece"
)

// NumPlayers is the number of players in a game of Quarto.
const NumPlayers = 2

// Mask is a bitmask over squares, one bit per board position.
type Mask uint16

// Board is an immutable snapshot of a Quarto position. Every placement
// returns a fresh Board; an existing Board is never mutated. The zero
// value is not a valid Board - use New() or NewAdvanced().
type Board struct {
	contents      [NumSquares]piece.Code
	occupied      Mask
	usedPieces    piece.Mask
	numUsedPieces int
	advanced      bool
	winMask       Mask
}

// New returns an empty board using the standard rule set.
func New() Board {
	return Board{}
}

// NewAdvanced returns an empty board with the 2x2-block winning condition
// enabled.
func NewAdvanced() Board {
	return Board{advanced: true}
}

// Advanced reports whether 2x2 blocks count as winning lines on this board.
func (b Board) Advanced() bool {
	return b.advanced
}

// IsEmpty reports whether the given square holds no piece.
func (b Board) IsEmpty(s Square) bool {
	return b.occupied&s.Bb() == 0
}

// GetPiece returns the piece at the given square. It is an error to call
// this when the square is empty.
func (b Board) GetPiece(s Square) piece.Piece {
	assert.Assert(!b.IsEmpty(s), "board: GetPiece called on empty square %d", s)
	return piece.New(b.contents[s])
}

// IsUnused reports whether the given piece has not yet been placed.
func (b Board) IsUnused(p piece.Piece) bool {
	return b.usedPieces&p.Bit() == 0
}

// Occupied returns the occupancy bitmask.
func (b Board) Occupied() Mask {
	return b.occupied
}

// EmptySquares returns every square with no piece on it.
func (b Board) EmptySquares() []Square {
	squares := make([]Square, 0, NumSquares-b.numUsedPieces)
	for s := Square(0); s < NumSquares; s++ {
		if b.IsEmpty(s) {
			squares = append(squares, s)
		}
	}
	return squares
}

// UnusedPieces returns every piece not yet placed on the board.
func (b Board) UnusedPieces() []piece.Piece {
	pieces := make([]piece.Piece, 0, piece.NumPieces-b.numUsedPieces)
	for code := piece.Code(0); code < piece.NumPieces; code++ {
		p := piece.New(code)
		if b.IsUnused(p) {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// NumUsedPieces returns the number of pieces placed on the board so far.
func (b Board) NumUsedPieces() int {
	return b.numUsedPieces
}

// PlacePiece returns a new Board with p placed at square s. Preconditions:
// s must be empty, p must be unused, and the board must not already be a
// win - all three are fatal assertions, not recoverable errors, since a
// caller violating them is a programming error (spec: placement
// preconditions).
func (b Board) PlacePiece(s Square, p piece.Piece) Board {
	assert.Assert(b.IsEmpty(s), "board: PlacePiece on occupied square %d", s)
	assert.Assert(b.IsUnused(p), "board: PlacePiece with already-used piece %s", p)
	assert.Assert(!b.IsWin(), "board: PlacePiece called on a board that is already won")

	next := b
	next.contents[s] = p.Code()
	next.occupied |= s.Bb()
	next.usedPieces |= p.Bit()
	next.numUsedPieces++
	next.calcWin()
	return next
}

// IsWin reports whether some line of four occupied squares shares an
// attribute value.
func (b Board) IsWin() bool {
	return b.winMask != 0
}

// WinMask returns the union of all squares belonging to any completed
// winning line, or zero if there is no win.
func (b Board) WinMask() Mask {
	return b.winMask
}

// IsGameOver reports whether the game has ended, either by a win or
// because every piece has been placed.
func (b Board) IsGameOver() bool {
	return b.winMask != 0 || b.numUsedPieces >= piece.NumPieces
}

// GetCurrentGivePlayerIndex returns the index of the player whose turn it
// is to hand over a piece - the player who placed the last piece.
func (b Board) GetCurrentGivePlayerIndex() int {
	pi := b.GetCurrentPlacePlayerIndex()
	return (pi + NumPlayers - 1) % NumPlayers
}

// GetCurrentPlacePlayerIndex returns the index of the player whose turn it
// is to place the next piece.
func (b Board) GetCurrentPlacePlayerIndex() int {
	return b.numUsedPieces % NumPlayers
}

// GetWinningPlayerIndex returns the index of the player who won the game.
// It is an error to call this unless IsWin() is true.
func (b Board) GetWinningPlayerIndex() int {
	assert.Assert(b.IsWin(), "board: GetWinningPlayerIndex called on a non-won board")
	return b.GetCurrentGivePlayerIndex()
}

// calcWin recomputes winMask from scratch over every line in play.
func (b *Board) calcWin() {
	b.winMask = 0
	forEachLine(b.advanced, func(l line) {
		b.calcLineWin(l)
	})
}

func (b *Board) calcLineWin(l line) {
	for _, s := range l {
		if b.IsEmpty(s) {
			return
		}
	}
	var and piece.Code = piece.AllAttribs
	var or piece.Code = 0
	var mask Mask
	for _, s := range l {
		c := b.contents[s]
		and &= c
		or |= c
		mask |= s.Bb()
	}
	if and != 0 || or != piece.AllAttribs {
		b.winMask |= mask
	}
}

// CountNearWins returns the number of lines with exactly one empty square
// whose three filled pieces share at least one attribute value.
func (b Board) CountNearWins() int {
	count := 0
	forEachLine(b.advanced, func(l line) {
		count += b.countLineNearWins(l)
	})
	return count
}

func (b Board) countLineNearWins(l line) int {
	emptyIdx := -1
	emptyCount := 0
	for i, s := range l {
		if b.IsEmpty(s) {
			emptyCount++
			emptyIdx = i
		}
	}
	if emptyCount != 1 {
		return 0
	}
	var and piece.Code = piece.AllAttribs
	var or piece.Code = 0
	for i, s := range l {
		if i == emptyIdx {
			continue
		}
		c := b.contents[s]
		and &= c
		or |= c
	}
	if and != 0 || or != piece.AllAttribs {
		return 1
	}
	return 0
}

// String renders the board as a grid of four rows, then a list of unused
// pieces, the same rendering spec.md's external interface describes: an
// empty cell prints its 1-based square number padded with dashes to the
// descriptor width ("--1-", "-16-"); winning cells are bracketed "[piece]".
func (b Board) String() string {
	var out strings.Builder
	for row := 0; row < NumRows; row++ {
		for col := 0; col < NumCols; col++ {
			s := SquareAt(row, col)
			winning := b.winMask&s.Bb() != 0
			if winning {
				out.WriteByte('[')
			} else {
				out.WriteByte(' ')
			}
			if b.IsEmpty(s) {
				out.WriteString(padSquareNumber(int(s) + 1))
			} else {
				out.WriteString(b.GetPiece(s).String())
			}
			if winning {
				out.WriteByte(']')
			} else {
				out.WriteByte(' ')
			}
			out.WriteByte(' ')
		}
		out.WriteByte('\n')
	}
	for code := piece.Code(0); code < piece.NumPieces; code++ {
		p := piece.New(code)
		if b.IsUnused(p) {
			out.WriteString("  ")
			out.WriteString(strconv.Itoa(int(code) + 1))
			out.WriteString(". ")
			out.WriteString(p.String())
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// padSquareNumber formats the 1-based square number zero-padded with
// dashes to the piece-descriptor width (4 characters), e.g. "--1-".
func padSquareNumber(n int) string {
	digits := strconv.Itoa(n)
	pad := piece.NumAttribs - 1 - len(digits)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("-", pad) + digits + "-"
}

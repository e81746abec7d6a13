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

package game

import (
	"golang.org/x/text/message"

	"github.com/frankkopp/QuartoGo/internal/assert"
	"github.com/frankkopp/QuartoGo/internal/board"
	"github.com/frankkopp/QuartoGo/internal/config"
	"github.com/frankkopp/QuartoGo/internal/piece"
)

// Game tracks the current board and the two seats that alternate the
// give/place roles across it. It never decides a move itself; it only asks
// whichever Player holds the current role and applies the result, the same
// "thin orchestration" spec.md §2 describes for the driver.
type Game struct {
	b       board.Board
	players [2]Player
}

// NewGame starts a new game from an empty board, using
// config.Settings.Game.Advanced to decide the rule set.
func NewGame(p0, p1 Player) *Game {
	b := board.New()
	if config.Settings.Game.Advanced {
		b = board.NewAdvanced()
	}
	return &Game{b: b, players: [2]Player{p0, p1}}
}

// NewGameFromSquares starts a game from a partially-filled board, one of
// the supplemented features: original_source/c/Quarto.cpp's new_game()
// commented-out block pre-fills specific squares to study a position.
// pieces maps a square to its four-character descriptor; squares not
// present stay empty. Returns piece.ErrInvalidDescriptor if any descriptor
// is malformed.
func NewGameFromSquares(p0, p1 Player, pieces map[board.Square]string) (*Game, error) {
	b := board.New()
	if config.Settings.Game.Advanced {
		b = board.NewAdvanced()
	}
	for s, desc := range pieces {
		p, err := piece.Parse(desc)
		if err != nil {
			return nil, err
		}
		b = b.PlacePiece(s, p)
	}
	return &Game{b: b, players: [2]Player{p0, p1}}, nil
}

// Board returns the current position.
func (g *Game) Board() board.Board {
	return g.b
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.b.IsGameOver()
}

// Winner returns the seat that won the game. It is an error to call this
// unless IsOver() is true and the game ended in a win, not a tie.
func (g *Game) Winner() Player {
	return g.players[g.b.GetWinningPlayerIndex()]
}

// Run drives the match to completion, printing the board after every
// placement through out. If the board this Game started from already has
// pieces on it (NewGameFromSquares), play resumes from whoever's turn it
// naturally is.
func (g *Game) Run(out *message.Printer) {
	giver := g.players[g.b.GetCurrentGivePlayerIndex()]
	given := g.choosePiece(giver)

	for {
		placer := g.players[g.b.GetCurrentPlacePlayerIndex()]
		square, next := g.placeAndChooseNext(placer, given)

		g.b = g.b.PlacePiece(square, given)
		out.Println(g.b)

		if g.b.IsGameOver() {
			g.announce(out)
			return
		}
		given = next
	}
}

// choosePiece asks p to hand over a piece from the current board, with no
// placement decision attached - used once, at the very start of the game.
func (g *Game) choosePiece(p Player) piece.Piece {
	if p.IsAI() {
		chosen, _ := p.Engine.ChoosePiece(g.b, p.Index)
		return chosen
	}
	return p.Human.ChoosePiece(g.b)
}

// placeAndChooseNext asks p, who just received given, where to place it and
// which piece to hand to the opponent next. An AI seat searches both
// decisions jointly via ChooseSquareAndPiece; a human seat is prompted for
// the square, then - on the board that results from that placement - for
// the next piece to give, since a human cannot search the give phase ahead
// of actually seeing the updated board.
func (g *Game) placeAndChooseNext(p Player, given piece.Piece) (board.Square, piece.Piece) {
	if p.IsAI() {
		return p.Engine.ChooseSquareAndPiece(g.b, p.Index, given)
	}

	square := p.Human.ChooseSquare(g.b, given)
	after := g.b.PlacePiece(square, given)
	var next piece.Piece
	if !after.IsGameOver() {
		next = p.Human.ChoosePiece(after)
	}
	return square, next
}

func (g *Game) announce(out *message.Printer) {
	assert.Assert(g.b.IsGameOver(), "game: announce called before the game ended")
	if g.b.IsWin() {
		out.Printf("%s wins!\n", g.Winner().Name)
		return
	}
	out.Println("the game is a tie.")
}

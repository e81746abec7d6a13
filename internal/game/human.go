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
	"bufio"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/QuartoGo/internal/board"
	"github.com/frankkopp/QuartoGo/internal/piece"
)

// Human is the text-driver collaborator spec.md §6 names
// human_choose_piece/human_choose_square: it prompts by 1-based number and
// re-prompts on invalid or already-taken input. In and Out are exported, the
// same shape as the teacher's UciHandler.InIo/OutIo, so a test can swap in
// an in-memory scanner/writer instead of the real terminal.
type Human struct {
	In  *bufio.Scanner
	Out *message.Printer
}

// NewHuman returns a Human wired to the real terminal.
func NewHuman() *Human {
	return &Human{
		In:  bufio.NewScanner(os.Stdin),
		Out: message.NewPrinter(language.English),
	}
}

// ChoosePiece prompts for the 1-based number of an unused piece, re-prompting
// until a valid, currently-unused piece is entered.
func (h *Human) ChoosePiece(b board.Board) piece.Piece {
	for {
		h.Out.Printf("%s\nchoose a piece to give (1-%d): ", b, piece.NumPieces)
		if !h.In.Scan() {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(h.In.Text()))
		if err != nil || n < 1 || n > piece.NumPieces {
			h.Out.Println("invalid piece number")
			continue
		}
		p := piece.New(piece.Code(n - 1))
		if !b.IsUnused(p) {
			h.Out.Println("that piece is already on the board")
			continue
		}
		return p
	}
}

// ChooseSquare prompts for the 1-based number of an empty square to place
// given on, re-prompting until a valid, currently-empty square is entered.
func (h *Human) ChooseSquare(b board.Board, given piece.Piece) board.Square {
	for {
		h.Out.Printf("%s\nplace %s on square (1-%d): ", b, given, board.NumSquares)
		if !h.In.Scan() {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(h.In.Text()))
		if err != nil || n < 1 || n > board.NumSquares {
			h.Out.Println("invalid square number")
			continue
		}
		s := board.Square(n - 1)
		if !b.IsEmpty(s) {
			h.Out.Println("that square is already occupied")
			continue
		}
		return s
	}
}

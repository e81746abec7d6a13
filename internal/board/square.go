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

package board

// NumRows and NumCols are the board's dimensions.
const (
	NumRows     = 4
	NumCols     = 4
	NumSquares  = NumRows * NumCols
	squareShift = 1
)

// Square identifies one of the 16 board positions.
type Square uint8

// Row returns the 0-based row of the square.
func (s Square) Row() int {
	return int(s) / NumCols
}

// Col returns the 0-based column of the square.
func (s Square) Col() int {
	return int(s) % NumCols
}

// Bb returns the single-bit Mask identifying this square.
func (s Square) Bb() Mask {
	return Mask(squareShift) << uint(s)
}

// SquareAt returns the Square at the given row and column.
func SquareAt(row, col int) Square {
	return Square(row*NumCols + col)
}

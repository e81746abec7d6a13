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

// A line is four squares that can win the game: a row, a column, a
// diagonal, or (under advanced rules) a 2x2 block.
type line [4]Square

// standardLines are the 10 rows, columns and diagonals that can win under
// both rule sets.
var standardLines = [10]line{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{8, 9, 10, 11},
	{12, 13, 14, 15},
	{0, 4, 8, 12},
	{1, 5, 9, 13},
	{2, 6, 10, 14},
	{3, 7, 11, 15},
	{0, 5, 10, 15},
	{3, 6, 9, 12},
}

// blockLines are the 9 overlapping 2x2 blocks that additionally win under
// the advanced rule set.
var blockLines = [9]line{
	{0, 1, 4, 5},
	{1, 2, 5, 6},
	{2, 3, 6, 7},
	{4, 5, 8, 9},
	{5, 6, 9, 10},
	{6, 7, 10, 11},
	{8, 9, 12, 13},
	{9, 10, 13, 14},
	{10, 11, 14, 15},
}

// forEachLine calls fn once for every line that is in play - the 10
// standard lines always, plus the 9 2x2 blocks when advanced is true. The
// order of the calls is not significant to any caller: the win-mask and
// near-win count are both invariant under permutation of the line list.
func forEachLine(advanced bool, fn func(l line)) {
	for _, l := range standardLines {
		fn(l)
	}
	if advanced {
		for _, l := range blockLines {
			fn(l)
		}
	}
}

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

package config

// DepthThreshold is one row of the search depth controller's table: a
// position with fewer than EmptySquares empty squares gets fully explored
// to MaxMeLevels/MaxSearchLevels. Rows are tried in the order given, so a
// config file overriding DepthTable must list them ascending by
// EmptySquares, same as the built-in default below.
type DepthThreshold struct {
	EmptySquares    int
	MaxMeLevels     int
	MaxSearchLevels int
}

// searchConfiguration is a data structure to hold the configuration of the
// minimax search core.
type searchConfiguration struct {
	// NearWinWeight is the per-near-win-line weight (K) added to win_score.
	NearWinWeight int

	// ShowSearchLog enables search tracing to the search logger (ground
	// truth: the show_log flag threaded through
	// search_wins/choose_from_result_list in the original implementation).
	// Only the entry points log: ChoosePiece's depth limits, an immediate
	// win found by ChooseSquareAndPiece, and its final choice; nodes inside
	// the recursion are not logged.
	ShowSearchLog bool

	// DepthTable is the depth controller's threshold table, checked in
	// order; the first row whose EmptySquares exceeds the position's empty
	// square count wins.
	DepthTable []DepthThreshold

	// DefaultMaxMeLevels and DefaultMaxSearchLevels apply once emptySquares
	// is at or above every DepthTable row's EmptySquares.
	DefaultMaxMeLevels     int
	DefaultMaxSearchLevels int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.NearWinWeight = 20
	Settings.Search.ShowSearchLog = false
	Settings.Search.DepthTable = []DepthThreshold{
		{EmptySquares: 8, MaxMeLevels: 8, MaxSearchLevels: 8},
		{EmptySquares: 10, MaxMeLevels: 5, MaxSearchLevels: 7},
		{EmptySquares: 11, MaxMeLevels: 4, MaxSearchLevels: 6},
		{EmptySquares: 13, MaxMeLevels: 3, MaxSearchLevels: 4},
		{EmptySquares: 14, MaxMeLevels: 3, MaxSearchLevels: 3},
		{EmptySquares: 15, MaxMeLevels: 2, MaxSearchLevels: 3},
	}
	Settings.Search.DefaultMaxMeLevels = 2
	Settings.Search.DefaultMaxSearchLevels = 2
}

// set defaults for configuration here in case the config file did not
// provide them.
func setupSearch() {
}

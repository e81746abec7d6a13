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
	"github.com/frankkopp/QuartoGo/internal/config"
	"github.com/frankkopp/QuartoGo/internal/util"
)

// depthLimits bounds how deep the search looks as the board empties out:
// maxMeLevels caps how many of the mover's own choices get fully explored
// before falling back to a single random sample, and maxSearchLevels caps
// the total recursion depth regardless of whose turn it is.
type depthLimits struct {
	maxMeLevels     int
	maxSearchLevels int
}

// depthFor returns the search depth limits for a position with the given
// number of empty squares remaining, read from
// config.Settings.Search.DepthTable. The thresholds grow the search window
// as fewer squares remain so the endgame is explored exhaustively while the
// midgame stays within a practical node budget. maxMeLevels is clamped to
// maxSearchLevels so a config file overriding the table cannot violate the
// invariant that the mover's own exploration never outruns total recursion
// depth.
func depthFor(emptySquares int) depthLimits {
	maxMe, maxAll := config.Settings.Search.DefaultMaxMeLevels, config.Settings.Search.DefaultMaxSearchLevels
	for _, t := range config.Settings.Search.DepthTable {
		if emptySquares < t.EmptySquares {
			maxMe, maxAll = t.MaxMeLevels, t.MaxSearchLevels
			break
		}
	}
	return depthLimits{maxMeLevels: util.Min(maxMe, maxAll), maxSearchLevels: maxAll}
}

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

// chooseFromResultList picks one Result from results according to the
// fixed priority order: forced win first, then best not-loss by score,
// then best mixed by ratio, then (if every candidate is a forced loss)
// best loss by score, finally the first candidate. results must already
// be in the caller's randomized order - ties resolve to the first
// candidate encountered at a given priority, not an arbitrary one.
//
// The precedence of not-loss ahead of mixed is deliberate: a not-loss
// candidate beats a mixed one even with a lower raw ratio, since mixed
// branches may still hide forced losses that a not-loss branch cannot.
func chooseFromResultList(results []Result) Result {
	for _, r := range results {
		if r.IsForcedWin() {
			return r
		}
	}

	bestNotLoss, haveNotLoss := -1, false
	for i, r := range results {
		if !r.IsNotLoss() {
			continue
		}
		if !haveNotLoss || r.Score > results[bestNotLoss].Score {
			bestNotLoss, haveNotLoss = i, true
		}
	}
	if haveNotLoss {
		return results[bestNotLoss]
	}

	bestMixed, haveMixed := -1, false
	for i, r := range results {
		if !r.IsMixed() {
			continue
		}
		if !haveMixed || r.WinRatio() > results[bestMixed].WinRatio() {
			bestMixed, haveMixed = i, true
		}
	}
	if haveMixed {
		return results[bestMixed]
	}

	bestLoss, haveLoss := -1, false
	for i, r := range results {
		if !r.IsForcedLoss() {
			continue
		}
		if !haveLoss || r.Score > results[bestLoss].Score {
			bestLoss, haveLoss = i, true
		}
	}
	if haveLoss {
		return results[bestLoss]
	}

	return results[0]
}

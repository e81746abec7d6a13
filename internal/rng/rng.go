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

// Package rng provides the single pseudorandom source used for candidate
// shuffling and fallback random sampling inside bounded-depth search
// cutoffs. The original implementation used a process-wide global
// generator (std::minstd_rand); this re-architects it as an explicit
// handle so a deterministic seed can be set per Engine instance instead of
// leaking mutable global state into every test. If a caller ever wants to
// run more than one search concurrently, each must own its own Source,
// seeded deterministically from a master seed - there is no requirement
// for cross-source ordering.
package rng

import "math/rand"

// Source is a seedable pseudorandom source.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically with seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a pseudorandom number in [0, n).
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Shuffle pseudorandomly permutes n elements via the given swap function,
// the same semantics as math/rand.Shuffle.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

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

// Package piece implements the 16 Quarto pieces and their four-character
// text descriptor codec.
package piece

import (
	"errors"
	"strings"
)

// NumAttribs is the number of independent binary attributes per piece.
const NumAttribs = 4

// NumPieces is the number of distinct pieces, one per attribute combination.
const NumPieces = 1 << NumAttribs

// AllAttribs is a mask with all attribute bits set.
const AllAttribs Code = (1 << NumAttribs) - 1

// ErrInvalidDescriptor is returned by Parse when the given text does not
// decode to a valid piece.
var ErrInvalidDescriptor = errors.New("piece: invalid descriptor")

// Code identifies a piece by its four attribute bits, in [0, NumPieces).
type Code uint

// Mask is a bitmask over piece codes, one bit per piece (used-piece set).
type Mask uint

// Piece is an immutable value wrapping a Code. Pieces are cheap to copy and
// own no resources.
type Piece struct {
	code Code
}

// New wraps the given code as a Piece. The caller is responsible for the
// code being in [0, NumPieces).
func New(code Code) Piece {
	return Piece{code: code}
}

// Code returns the piece's attribute code.
func (p Piece) Code() Code {
	return p.code
}

// Bit returns the single-bit Mask identifying this piece within a
// used-pieces bitmask.
func (p Piece) Bit() Mask {
	return Mask(1) << p.code
}

// Equal reports whether two pieces carry the same code.
func (p Piece) Equal(other Piece) bool {
	return p.code == other.code
}

// String formats the piece as its four-character descriptor: shape
// (r=round/q=square), fill (f=flat/h=hollow), height (s=short/t=tall),
// color (l=light/d=dark), each bit high-to-low.
func (p Piece) String() string {
	return Format(p.code)
}

// Format renders a Code as its four-character descriptor.
func Format(code Code) string {
	var b strings.Builder
	if code&0x8 != 0 {
		b.WriteByte('r')
	} else {
		b.WriteByte('q')
	}
	if code&0x4 != 0 {
		b.WriteByte('f')
	} else {
		b.WriteByte('h')
	}
	if code&0x2 != 0 {
		b.WriteByte('s')
	} else {
		b.WriteByte('t')
	}
	if code&0x1 != 0 {
		b.WriteByte('l')
	} else {
		b.WriteByte('d')
	}
	return b.String()
}

// Parse decodes a four-character descriptor into a Piece. Case insensitive.
// Returns ErrInvalidDescriptor for any other input.
func Parse(desc string) (Piece, error) {
	code, err := ParseCode(desc)
	if err != nil {
		return Piece{}, err
	}
	return Piece{code: code}, nil
}

// ParseCode is the Code-returning half of Parse.
func ParseCode(desc string) (Code, error) {
	if len(desc) != NumAttribs {
		return 0, ErrInvalidDescriptor
	}
	lower := strings.ToLower(desc)
	var code Code

	switch lower[0] {
	case 'r':
		code |= 0x8
	case 'q':
		// clear
	default:
		return 0, ErrInvalidDescriptor
	}

	switch lower[1] {
	case 'f':
		code |= 0x4
	case 'h':
		// clear
	default:
		return 0, ErrInvalidDescriptor
	}

	switch lower[2] {
	case 's':
		code |= 0x2
	case 't':
		// clear
	default:
		return 0, ErrInvalidDescriptor
	}

	switch lower[3] {
	case 'l':
		code |= 0x1
	case 'd':
		// clear
	default:
		return 0, ErrInvalidDescriptor
	}

	return code, nil
}

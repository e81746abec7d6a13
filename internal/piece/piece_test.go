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

package piece

import "testing"

// TestDescriptorBijection covers scenario 4: every code in [0, NumPieces)
// must format to a four-character descriptor that parses back to the same
// code, and distinct codes must format to distinct descriptors.
func TestDescriptorBijection(t *testing.T) {
	seen := make(map[string]Code, NumPieces)
	for code := Code(0); code < NumPieces; code++ {
		desc := Format(code)
		if other, dup := seen[desc]; dup {
			t.Fatalf("codes %d and %d both format to %q", other, code, desc)
		}
		seen[desc] = code

		got, err := ParseCode(desc)
		if err != nil {
			t.Fatalf("ParseCode(%q) returned error %v for code %d", desc, err, code)
		}
		if got != code {
			t.Errorf("round trip broke: code %d -> %q -> %d", code, desc, got)
		}
	}
}

func TestParseRejectsInvalidDescriptors(t *testing.T) {
	cases := []string{"", "rfs", "rfslx", "xfsl", "rxsl", "rfxl", "rfsx"}
	for _, desc := range cases {
		if _, err := Parse(desc); err != ErrInvalidDescriptor {
			t.Errorf("Parse(%q) = %v, want ErrInvalidDescriptor", desc, err)
		}
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	p, err := Parse("RFSL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := Parse("rfsl")
	if !p.Equal(want) {
		t.Errorf("Parse(\"RFSL\") = %v, want %v", p, want)
	}
}

package search

import "testing"

func TestDepthMonotonicity(t *testing.T) {
	for remaining := 0; remaining <= 20; remaining++ {
		limits := depthFor(remaining)
		if limits.maxMeLevels > limits.maxSearchLevels {
			t.Fatalf("remaining=%d: max_me=%d > max_all=%d", remaining, limits.maxMeLevels, limits.maxSearchLevels)
		}
	}
}

func TestDepthTableBoundaries(t *testing.T) {
	cases := []struct {
		remaining       int
		maxMe, maxAll int
	}{
		{0, 8, 8},
		{7, 8, 8},
		{8, 5, 7},
		{9, 5, 7},
		{10, 4, 6},
		{12, 3, 4},
		{13, 3, 3},
		{14, 2, 3},
		{15, 2, 2},
		{16, 2, 2},
	}
	for _, c := range cases {
		got := depthFor(c.remaining)
		if got.maxMeLevels != c.maxMe || got.maxSearchLevels != c.maxAll {
			t.Errorf("depthFor(%d) = (%d,%d), want (%d,%d)", c.remaining, got.maxMeLevels, got.maxSearchLevels, c.maxMe, c.maxAll)
		}
	}
}

package search

import "testing"

func TestChooseFromResultListForcedWinFirst(t *testing.T) {
	results := []Result{
		{Accumulator: Accumulator{Lose: 1}},
		{Accumulator: Accumulator{Win: 2, AccidentalWin: 2}, Score: 999},
		{Accumulator: Accumulator{Win: 1, AccidentalWin: 1}, Score: 1},
	}
	got := chooseFromResultList(results)
	if !got.IsForcedWin() {
		t.Fatalf("expected a forced win to be chosen, got %+v", got)
	}
	if got.Score != 999 {
		t.Errorf("expected the first forced win in order (score 999), got score %d", got.Score)
	}
}

func TestChooseFromResultListNotLossBeatsMixed(t *testing.T) {
	notLoss := Result{Accumulator: Accumulator{Tie: 1}, Score: 5}
	mixed := Result{Accumulator: Accumulator{Win: 10, Lose: 1}, Score: 1000}
	got := chooseFromResultList([]Result{mixed, notLoss})
	if got.Score != 5 {
		t.Errorf("not-loss candidate must win even with a lower score; got %+v", got)
	}
}

func TestChooseFromResultListMixedByRatio(t *testing.T) {
	worse := Result{Accumulator: Accumulator{Win: 1, Lose: 9}, Score: 2}
	better := Result{Accumulator: Accumulator{Win: 9, Lose: 1}, Score: 18}
	got := chooseFromResultList([]Result{worse, better})
	if got.WinRatio() != better.WinRatio() {
		t.Errorf("expected the higher win-ratio candidate, got ratio %v", got.WinRatio())
	}
}

// TestChooseFromResultListMixedByRatioUsesScore covers two mixed candidates
// with identical Win/Lose counts but different near-win potential folded
// into Score - the ratio must come from Score/Lose, not a bare Win/Lose
// fraction, or the near-win heuristic is silently ignored whenever raw
// win/lose counts tie.
func TestChooseFromResultListMixedByRatioUsesScore(t *testing.T) {
	worse := Result{Accumulator: Accumulator{Win: 5, Lose: 5}, Score: 1}
	better := Result{Accumulator: Accumulator{Win: 5, Lose: 5}, Score: 20}
	got := chooseFromResultList([]Result{worse, better})
	if got.Score != better.Score {
		t.Errorf("expected the higher Score/Lose candidate (score %d), got %+v", better.Score, got)
	}
}

func TestChooseFromResultListBestLossWhenAllForcedLoss(t *testing.T) {
	worse := Result{Accumulator: Accumulator{Lose: 5}, Score: -5}
	better := Result{Accumulator: Accumulator{Lose: 1}, Score: -1}
	got := chooseFromResultList([]Result{worse, better})
	if got.Score != -1 {
		t.Errorf("expected the least-bad forced loss, got score %d", got.Score)
	}
}

func TestChooseFromResultListFallsBackToFirst(t *testing.T) {
	only := Result{Accumulator: Accumulator{Lose: 1, Tie: 1}, Score: -1}
	got := chooseFromResultList([]Result{only})
	if got.Score != -1 {
		t.Errorf("expected the sole candidate, got %+v", got)
	}
}

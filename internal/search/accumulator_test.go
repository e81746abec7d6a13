package search

import "testing"

func TestAccumulatorClassification(t *testing.T) {
	forcedWin := Accumulator{Win: 3, AccidentalWin: 3}
	if !forcedWin.IsForcedWin() {
		t.Error("expected forced win")
	}
	if !forcedWin.IsAccidentalWin() {
		t.Error("a forced win must also satisfy is_accidental_win")
	}

	forcedLoss := Accumulator{Lose: 2}
	if !forcedLoss.IsForcedLoss() {
		t.Error("expected forced loss")
	}
	if forcedLoss.IsNotLoss() {
		t.Error("forced loss must not be not_loss")
	}

	forcedTie := Accumulator{Tie: 1}
	if !forcedTie.IsForcedTie() {
		t.Error("expected forced tie")
	}

	pureAccidental := Accumulator{AccidentalWin: 2}
	if pureAccidental.IsForcedWin() {
		t.Error("accidental win alone is not a forced win")
	}
	if !pureAccidental.IsAccidentalWin() {
		t.Error("expected accidental win")
	}

	mixed := Accumulator{Win: 1, Lose: 1}
	if !mixed.IsMixed() {
		t.Error("expected mixed")
	}
	if mixed.IsForcedWin() || mixed.IsForcedLoss() {
		t.Error("mixed must not classify as forced win or forced loss")
	}
}

func TestAccumulatorAdd(t *testing.T) {
	a := Accumulator{Win: 1, AccidentalWin: 1}
	b := Accumulator{Lose: 2, Tie: 3}
	a.Add(b)
	want := Accumulator{Win: 1, AccidentalWin: 1, Lose: 2, Tie: 3}
	if a != want {
		t.Errorf("got %+v, want %+v", a, want)
	}
}

func TestAddIsCommutative(t *testing.T) {
	a := Accumulator{Win: 2, Lose: 1, Tie: 1, AccidentalWin: 2}
	b := Accumulator{Win: 1, Lose: 3, AccidentalWin: 1}

	ab := a
	ab.Add(b)
	ba := b
	ba.Add(a)

	if ab != ba {
		t.Errorf("merge not commutative: %+v vs %+v", ab, ba)
	}
}

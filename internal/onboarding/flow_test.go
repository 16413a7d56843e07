package onboarding

import "testing"

func TestAdvanceWalksStepsThenCompletes(t *testing.T) {
	f := New(DefaultSteps())
	if f.Len() != 3 || f.Index() != 0 {
		t.Fatalf("unexpected initial flow: len=%d index=%d", f.Len(), f.Index())
	}
	for want := 1; want <= 2; want++ {
		if f.Advance() {
			t.Fatalf("completion signalled early at index %d", f.Index())
		}
		if f.Index() != want {
			t.Fatalf("expected index %d, got %d", want, f.Index())
		}
	}
	if !f.IsLast() {
		t.Fatal("expected last step")
	}
	if !f.Advance() {
		t.Fatal("expected completion on third advance")
	}
	if f.Index() != 2 || !f.Done() {
		t.Fatalf("unexpected state after completion: index=%d done=%v", f.Index(), f.Done())
	}
	if !f.Advance() || f.Index() != 2 {
		t.Fatal("advance after completion should keep signalling without moving")
	}
}

func TestAdvanceTwiceThenSkip(t *testing.T) {
	f := New(DefaultSteps())
	if f.Advance() || f.Advance() {
		t.Fatal("no completion expected before the final step")
	}
	if !f.Skip() {
		t.Fatal("expected skip to complete")
	}
	if !f.Done() {
		t.Fatal("expected done")
	}
}

func TestSkipFromFirstStep(t *testing.T) {
	f := New(DefaultSteps())
	if !f.Skip() || f.Index() != 0 {
		t.Fatalf("unexpected skip result, index=%d", f.Index())
	}
}

func TestSingleStepFlow(t *testing.T) {
	f := New([]Step{{Title: "Only"}})
	if f.Current().Title != "Only" {
		t.Fatalf("unexpected step: %+v", f.Current())
	}
	if !f.Advance() {
		t.Fatal("single-step flow should complete on first advance")
	}
}

func TestNewRejectsEmptySteps(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(nil)
}

package analytics

import "testing"

func TestTracker_Empty(t *testing.T) {
	s := NewTracker().Stats()
	if s.Shots != 0 || s.Hits != 0 || s.Accuracy != 0 || s.AvgReaction != 0 || s.HitsPerSec != 0 {
		t.Errorf("empty tracker stats = %+v, want zero", s)
	}
}

func TestTracker_HitsAndMisses(t *testing.T) {
	tr := NewTracker()
	if ms := tr.Hit(1.0, 1.25); ms != 250 {
		t.Errorf("Hit() reaction = %d, want 250", ms)
	}
	tr.Hit(2.0, 2.75)
	tr.Miss()
	tr.Miss()
	tr.Observe(5)
	tr.Observe(-1)

	s := tr.Stats()
	if s.Shots != 4 {
		t.Errorf("Shots = %d, want 4", s.Shots)
	}
	if s.Hits != 2 {
		t.Errorf("Hits = %d, want 2", s.Hits)
	}
	if s.Accuracy != 50 {
		t.Errorf("Accuracy = %v, want 50", s.Accuracy)
	}
	if s.AvgReaction != 500 {
		t.Errorf("AvgReaction = %v, want 500", s.AvgReaction)
	}
	if s.BestReaction != 250 {
		t.Errorf("BestReaction = %d, want 250", s.BestReaction)
	}
	if s.HitsPerSec != 0.4 {
		t.Errorf("HitsPerSec = %v, want 0.4", s.HitsPerSec)
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.Hit(0, 1)
	tr.Observe(3)
	tr.Reset()
	if s := tr.Stats(); s.Hits != 0 || s.Duration != 0 {
		t.Errorf("stats after Reset() = %+v, want zero", s)
	}
}

func TestReactionMs(t *testing.T) {
	if got := ReactionMs(3.0, 3.4567); got != 457 {
		t.Errorf("ReactionMs = %d, want 457", got)
	}
	if got := ReactionMs(3.0, 2.0); got != 0 {
		t.Errorf("ReactionMs with negative delta = %d, want 0", got)
	}
}

package analytics

import (
	"math"
)

// Stats summarises one round of shooting.
type Stats struct {
	Shots        int
	Hits         int
	Accuracy     float64 // percentage of shots that hit
	AvgReaction  float64 // ms from spawn to hit
	BestReaction int     // ms
	HitsPerSec   float64
	Duration     float64 // seconds of round clock observed
}

// Tracker accumulates shots for the round in progress.
type Tracker struct {
	shots         int
	hits          int
	reactionTotal int
	bestReaction  int
	duration      float64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Miss records a shot that hit nothing.
func (t *Tracker) Miss() {
	t.shots++
}

// Hit records a hit and returns its reaction time in ms.
func (t *Tracker) Hit(spawnedAt, hitAt float64) int {
	t.shots++
	t.hits++
	ms := ReactionMs(spawnedAt, hitAt)
	t.reactionTotal += ms
	if t.hits == 1 || ms < t.bestReaction {
		t.bestReaction = ms
	}
	return ms
}

// Observe extends the round duration the stats are measured over.
func (t *Tracker) Observe(elapsed float64) {
	if elapsed > 0 {
		t.duration += elapsed
	}
}

func (t *Tracker) Stats() Stats {
	s := Stats{
		Shots:        t.shots,
		Hits:         t.hits,
		BestReaction: t.bestReaction,
		Duration:     t.duration,
	}
	if t.shots > 0 {
		s.Accuracy = float64(t.hits) / float64(t.shots) * 100
	}
	if t.hits > 0 {
		s.AvgReaction = float64(t.reactionTotal) / float64(t.hits)
	}
	if t.duration > 0 {
		s.HitsPerSec = float64(t.hits) / t.duration
	}
	return s
}

// ReactionMs converts a spawn/hit pair on the round clock to whole ms.
func ReactionMs(spawnedAt, hitAt float64) int {
	d := hitAt - spawnedAt
	if d < 0 {
		return 0
	}
	return int(math.Round(d * 1000))
}

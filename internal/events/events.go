package events

import "time"

type Kind string

const (
	KindRoundStarted = Kind("round_started")
	KindShot         = Kind("shot")
	KindRoundEnded   = Kind("round_ended")
)

// Event is an immutable record of something that happened in a round.
// Fields that do not apply to a Kind are left zero.
type Event struct {
	Kind     Kind
	RoundID  string
	At       time.Time
	Score    int
	TimeLeft float64

	// shot
	Hit        bool
	X, Y       float64
	TargetID   int
	ReactionMs int

	// round_started / round_ended
	DurationMs int
	Aborted    bool
}

type Bus struct {
	C       chan Event
	dropped int
}

func NewBus() *Bus {
	return &Bus{
		C: make(chan Event, 64),
	}
}

// Publish never blocks; when the buffer is full the event is dropped.
func (b *Bus) Publish(ev Event) bool {
	select {
	case b.C <- ev:
		return true
	default:
		b.dropped++
		return false
	}
}

// Close ends the stream. Publish must not be called afterwards.
func (b *Bus) Close() {
	close(b.C)
}

// Dropped returns how many events Publish has discarded. It must be called
// from the publishing goroutine.
func (b *Bus) Dropped() int {
	return b.dropped
}

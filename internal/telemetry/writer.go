// Package telemetry persists round and shot events to a Sink in batches.
package telemetry

import (
	"aimlab/internal/db"
	"aimlab/internal/events"
	"context"
	"log"
	"math"
	"time"
)

const (
	BatchSize     = 50
	FlushInterval = 500 * time.Millisecond
)

// Sink is the storage the writer records into; *db.DB satisfies it.
type Sink interface {
	CreateRound(id string, startedAt time.Time, roundDurationMs int) error
	EndRound(id string, endedAt time.Time, playedMs int, aborted bool) error
	BatchRecordShots(shots []db.Shot) error
}

type Writer struct {
	sink     Sink
	interval time.Duration
	batch    []db.Shot
}

func NewWriter(sink Sink) *Writer {
	return &Writer{
		sink:     sink,
		interval: FlushInterval,
		batch:    make([]db.Shot, 0, BatchSize),
	}
}

// Run consumes events until ctx is done or in is closed, then flushes what
// is left. Round rows are written immediately; shots are batched.
func (w *Writer) Run(ctx context.Context, in <-chan events.Event) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer w.flush()

	for {
		select {
		case <-ctx.Done():
			w.drain(in)
			return
		case ev, ok := <-in:
			if !ok {
				return
			}
			w.handle(ev)
		case <-ticker.C:
			w.flush()
		}
	}
}

// drain takes whatever is already buffered so a shutdown does not lose the
// final round_ended event.
func (w *Writer) drain(in <-chan events.Event) {
	for {
		select {
		case ev, ok := <-in:
			if !ok {
				return
			}
			w.handle(ev)
		default:
			return
		}
	}
}

func (w *Writer) handle(ev events.Event) {
	switch ev.Kind {
	case events.KindRoundStarted:
		if err := w.sink.CreateRound(ev.RoundID, ev.At, ev.DurationMs); err != nil {
			log.Printf("[Telemetry] CreateRound error: %v\n", err)
		}
	case events.KindShot:
		w.batch = append(w.batch, shotFrom(ev))
		if len(w.batch) >= BatchSize {
			w.flush()
		}
	case events.KindRoundEnded:
		// Shots reference the round, so they go first.
		w.flush()
		if err := w.sink.EndRound(ev.RoundID, ev.At, ev.DurationMs, ev.Aborted); err != nil {
			log.Printf("[Telemetry] EndRound error: %v\n", err)
		}
	}
}

func (w *Writer) flush() {
	if len(w.batch) == 0 {
		return
	}
	if err := w.sink.BatchRecordShots(w.batch); err != nil {
		log.Printf("[Telemetry] BatchRecordShots error: %v\n", err)
	}
	w.batch = make([]db.Shot, 0, BatchSize)
}

func shotFrom(ev events.Event) db.Shot {
	return db.Shot{
		RoundID:    ev.RoundID,
		Hit:        ev.Hit,
		TargetID:   ev.TargetID,
		X:          ev.X,
		Y:          ev.Y,
		ReactionMs: ev.ReactionMs,
		TimeLeftMs: int(math.Round(ev.TimeLeft * 1000)),
		ShotAt:     ev.At,
	}
}

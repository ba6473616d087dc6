package telemetry

import (
	"aimlab/internal/db"
	"aimlab/internal/events"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSink struct {
	mu      sync.Mutex
	calls   []string
	batches [][]db.Shot
	failing bool
}

func (f *fakeSink) CreateRound(id string, startedAt time.Time, roundDurationMs int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "create:"+id)
	return nil
}

func (f *fakeSink) EndRound(id string, endedAt time.Time, playedMs int, aborted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "end:"+id)
	return nil
}

func (f *fakeSink) BatchRecordShots(shots []db.Shot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "shots")
	f.batches = append(f.batches, shots)
	if f.failing {
		return errors.New("db down")
	}
	return nil
}

func (f *fakeSink) snapshot() ([]string, [][]db.Shot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...), append([][]db.Shot(nil), f.batches...)
}

func runWriter(t *testing.T, sink Sink, evs ...events.Event) {
	t.Helper()
	in := make(chan events.Event, len(evs))
	for _, ev := range evs {
		in <- ev
	}
	close(in)

	done := make(chan struct{})
	go func() {
		NewWriter(sink).Run(context.Background(), in)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("writer did not stop after input closed")
	}
}

func TestWriter_RoundLifecycle(t *testing.T) {
	sink := &fakeSink{}
	runWriter(t, sink,
		events.Event{Kind: events.KindRoundStarted, RoundID: "r1", DurationMs: 30000},
		events.Event{Kind: events.KindShot, RoundID: "r1", Hit: true, TargetID: 2, X: 10, Y: 20, ReactionMs: 300, TimeLeft: 12.5},
		events.Event{Kind: events.KindShot, RoundID: "r1", X: 1, Y: 1},
		events.Event{Kind: events.KindRoundEnded, RoundID: "r1", DurationMs: 30000},
	)

	calls, batches := sink.snapshot()
	want := []string{"create:r1", "shots", "end:r1"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
	if len(batches[0]) != 2 {
		t.Fatalf("batch size = %d, want 2", len(batches[0]))
	}
	hit := batches[0][0]
	if !hit.Hit || hit.TargetID != 2 || hit.ReactionMs != 300 || hit.TimeLeftMs != 12500 {
		t.Errorf("hit shot = %+v", hit)
	}
}

func TestWriter_FlushesFullBatch(t *testing.T) {
	sink := &fakeSink{}
	evs := make([]events.Event, 0, BatchSize+1)
	for i := 0; i < BatchSize+1; i++ {
		evs = append(evs, events.Event{Kind: events.KindShot, RoundID: "r1"})
	}
	runWriter(t, sink, evs...)

	_, batches := sink.snapshot()
	if len(batches) != 2 {
		t.Fatalf("batches = %d, want 2", len(batches))
	}
	if len(batches[0]) != BatchSize || len(batches[1]) != 1 {
		t.Errorf("batch sizes = %d, %d; want %d, 1", len(batches[0]), len(batches[1]), BatchSize)
	}
}

func TestWriter_FlushesOnTicker(t *testing.T) {
	sink := &fakeSink{}
	in := make(chan events.Event, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWriter(sink)
	w.interval = 10 * time.Millisecond
	go w.Run(ctx, in)

	in <- events.Event{Kind: events.KindShot, RoundID: "r1"}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, batches := sink.snapshot(); len(batches) == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("ticker did not flush the pending shot")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWriter_DrainsOnCancel(t *testing.T) {
	sink := &fakeSink{}
	in := make(chan events.Event, 2)
	in <- events.Event{Kind: events.KindShot, RoundID: "r1"}
	in <- events.Event{Kind: events.KindRoundEnded, RoundID: "r1"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	NewWriter(sink).Run(ctx, in)

	calls, _ := sink.snapshot()
	if len(calls) != 2 || calls[0] != "shots" || calls[1] != "end:r1" {
		t.Errorf("calls = %v, want [shots end:r1]", calls)
	}
}

func TestWriter_SinkErrorsDoNotStop(t *testing.T) {
	sink := &fakeSink{failing: true}
	runWriter(t, sink,
		events.Event{Kind: events.KindShot, RoundID: "r1"},
		events.Event{Kind: events.KindRoundEnded, RoundID: "r1"},
		events.Event{Kind: events.KindShot, RoundID: "r2"},
	)

	_, batches := sink.snapshot()
	if len(batches) != 2 {
		t.Errorf("batches = %d, want 2", len(batches))
	}
}

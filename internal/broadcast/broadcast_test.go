package broadcast

import (
	"aimlab/internal/events"
	"testing"
	"time"
)

func TestNewBroadcaster(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)
	if b == nil {
		t.Fatal("NewBroadcaster() returned nil")
	}
}

func TestBroadcaster_SubscribeUnsubscribe(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)

	ch := b.Subscribe()
	if ch == nil {
		t.Fatal("Subscribe() returned nil")
	}

	b.Mu.Lock()
	if len(b.Clients) != 1 {
		t.Errorf("clients count = %d, want 1", len(b.Clients))
	}
	b.Mu.Unlock()

	b.Unsubscribe(ch)

	b.Mu.Lock()
	if len(b.Clients) != 0 {
		t.Errorf("clients count after unsubscribe = %d, want 0", len(b.Clients))
	}
	b.Mu.Unlock()

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after unsubscribe")
	}

	// A second unsubscribe must not panic on the closed channel.
	b.Unsubscribe(ch)
}

func TestBroadcaster_Broadcast(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)

	ch1 := b.Subscribe()
	ch2 := b.Subscribe()

	b.Broadcast(events.Event{Kind: events.KindShot, TargetID: 4})

	for i, ch := range []chan events.Event{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.Kind != events.KindShot || ev.TargetID != 4 {
				t.Errorf("ch%d got %+v", i+1, ev)
			}
		case <-time.After(1 * time.Second):
			t.Fatalf("ch%d timed out", i+1)
		}
	}

	b.Unsubscribe(ch1)
	b.Unsubscribe(ch2)
}

func TestBroadcaster_SkipsFullChannels(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)

	ch := b.Subscribe()

	for i := 0; i < subscriberBuffer; i++ {
		b.Broadcast(events.Event{Kind: events.KindShot})
	}

	done := make(chan bool)
	go func() {
		b.Broadcast(events.Event{Kind: events.KindRoundEnded})
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Broadcast blocked on full channel")
	}

	b.Unsubscribe(ch)
}

func TestBroadcaster_BusForwarding(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)

	ch := b.Subscribe()

	bus.Publish(events.Event{Kind: events.KindRoundStarted, RoundID: "r1"})

	select {
	case ev := <-ch:
		if ev.Kind != events.KindRoundStarted || ev.RoundID != "r1" {
			t.Errorf("got %+v, want round_started for r1", ev)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for forwarded event")
	}

	b.Unsubscribe(ch)
}

func TestBroadcaster_ClosesSubscribersWhenBusCloses(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus)

	ch := b.Subscribe()
	bus.Publish(events.Event{Kind: events.KindRoundEnded, RoundID: "last"})
	bus.Close()

	select {
	case <-b.Done():
	case <-time.After(1 * time.Second):
		t.Fatal("broadcaster did not finish after bus closed")
	}

	ev, ok := <-ch
	if !ok || ev.RoundID != "last" {
		t.Fatalf("got %+v (ok=%v), want the final event before close", ev, ok)
	}
	if _, ok := <-ch; ok {
		t.Error("subscriber channel should be closed")
	}

	// Unsubscribing after shutdown is a no-op.
	b.Unsubscribe(ch)
}

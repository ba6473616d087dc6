package events

import (
	"testing"
	"time"
)

func TestNewBus(t *testing.T) {
	bus := NewBus()
	if bus == nil {
		t.Fatal("NewBus() returned nil")
	}
	if bus.C == nil {
		t.Fatal("event channel is nil")
	}
}

func TestBus_PublishReceive(t *testing.T) {
	bus := NewBus()
	ev := Event{Kind: KindShot, Hit: true, TargetID: 3}

	if !bus.Publish(ev) {
		t.Fatal("Publish() on an empty bus should succeed")
	}

	select {
	case received := <-bus.C:
		if received.Kind != KindShot || !received.Hit || received.TargetID != 3 {
			t.Errorf("received %+v, want %+v", received, ev)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := NewBus()

	for i := 0; i < cap(bus.C); i++ {
		if !bus.Publish(Event{Kind: KindShot}) {
			t.Fatalf("Publish() #%d should fit in the buffer", i)
		}
	}

	done := make(chan bool)
	go func() {
		done <- bus.Publish(Event{Kind: KindRoundEnded})
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("Publish() on a full bus should report a drop")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Publish() blocked on a full bus")
	}

	if bus.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", bus.Dropped())
	}
}

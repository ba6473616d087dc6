package broadcast

import (
	"aimlab/internal/events"
	"sync"
)

const subscriberBuffer = 64

// Broadcaster drains a bus and fans every event out to its subscribers.
type Broadcaster struct {
	Mu      sync.Mutex
	Clients map[chan events.Event]bool
	done    chan struct{}
}

func NewBroadcaster(bus *events.Bus) *Broadcaster {
	b := &Broadcaster{
		Clients: make(map[chan events.Event]bool),
		done:    make(chan struct{}),
	}
	go func() {
		for ev := range bus.C {
			b.Broadcast(ev)
		}
		b.closeAll()
	}()
	return b
}

// Done is closed once the bus has been closed and every subscriber channel
// has been closed after receiving the remaining events.
func (b *Broadcaster) Done() <-chan struct{} {
	return b.done
}

func (b *Broadcaster) closeAll() {
	b.Mu.Lock()
	for ch := range b.Clients {
		delete(b.Clients, ch)
		close(ch)
	}
	b.Mu.Unlock()
	close(b.done)
}

func (b *Broadcaster) Subscribe() chan events.Event {
	ch := make(chan events.Event, subscriberBuffer)
	b.Mu.Lock()
	b.Clients[ch] = true
	b.Mu.Unlock()
	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan events.Event) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	if b.Clients[ch] {
		delete(b.Clients, ch)
		close(ch)
	}
}

func (b *Broadcaster) Broadcast(ev events.Event) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		select {
		case ch <- ev:
		default:
			// skip subscribers with full channels
		}
	}
}

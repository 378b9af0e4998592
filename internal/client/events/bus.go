// Package events carries session-relevant signals from the HTTP layer to the
// session controller.
package events

import "sync"

type Kind int

const (
	// KindUnauthorized: the backend answered 401 or 403 to an authenticated call.
	KindUnauthorized Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind   Kind
	Status int
	Method string
	Path   string
}

// Bus fans events out to subscribers. Publish calls every subscriber
// synchronously, in subscription order, on the publishing goroutine.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
	order  []int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; !ok {
			return
		}
		delete(b.subs, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.order))
	for _, id := range b.order {
		fns = append(fns, b.subs[id])
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}

package extsync

import (
	"sync"

	"github.com/google/uuid"
)

type subscription struct {
	ch chan Message
}

// Hub fans sync messages out to a user's subscribers. A slow subscriber only ever sees the
// most recent message; older undelivered ones are replaced.
type Hub struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[*subscription]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]map[*subscription]struct{}),
	}
}

// Subscribe registers a subscriber for uid. The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe(uid uuid.UUID) (<-chan Message, func()) {
	s := &subscription{ch: make(chan Message, 1)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(s.ch)
		return s.ch, func() {}
	}
	if h.subs[uid] == nil {
		h.subs[uid] = make(map[*subscription]struct{})
	}
	h.subs[uid][s] = struct{}{}
	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[uid][s]; !ok {
				return
			}
			delete(h.subs[uid], s)
			if len(h.subs[uid]) == 0 {
				delete(h.subs, uid)
			}
			close(s.ch)
		})
	}
}

// Publish never blocks.
func (h *Hub) Publish(uid uuid.UUID, msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[uid] {
		select {
		case s.ch <- msg:
			continue
		default:
		}
		// drop the stale message
		select {
		case <-s.ch:
		default:
		}
		select {
		case s.ch <- msg:
		default:
		}
	}
}

func (h *Hub) Subscribers(uid uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[uid])
}

// Close ends every subscription. Later subscriptions are closed immediately.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for uid, subs := range h.subs {
		for s := range subs {
			close(s.ch)
		}
		delete(h.subs, uid)
	}
	return nil
}

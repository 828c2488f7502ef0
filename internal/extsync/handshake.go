package extsync

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type HandshakeState string

const (
	StateReady   HandshakeState = "ready"
	StateTimeout HandshakeState = "timeout"
)

type handshake struct {
	ready   chan struct{}
	once    sync.Once
	waiters int
}

// Handshakes detects extension presence. The extension announces itself once with Ready;
// a waiter gets either ready or timeout, never an open-ended poll.
type Handshakes struct {
	mu      sync.Mutex
	timeout time.Duration
	byUser  map[uuid.UUID]*handshake
}

func NewHandshakes(timeout time.Duration) *Handshakes {
	return &Handshakes{
		timeout: timeout,
		byUser:  make(map[uuid.UUID]*handshake),
	}
}

func (h *Handshakes) get(uid uuid.UUID) *handshake {
	h.mu.Lock()
	defer h.mu.Unlock()
	hs, ok := h.byUser[uid]
	if !ok {
		hs = &handshake{ready: make(chan struct{})}
		h.byUser[uid] = hs
	}
	return hs
}

func (h *Handshakes) acquire(uid uuid.UUID) *handshake {
	h.mu.Lock()
	defer h.mu.Unlock()
	hs, ok := h.byUser[uid]
	if !ok {
		hs = &handshake{ready: make(chan struct{})}
		h.byUser[uid] = hs
	}
	hs.waiters++
	return hs
}

// release drops the entry once its last waiter is done, so a Ready sent after
// the wait ended cannot satisfy the next session.
func (h *Handshakes) release(uid uuid.UUID, hs *handshake) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hs.waiters--
	if hs.waiters == 0 && h.byUser[uid] == hs {
		delete(h.byUser, uid)
	}
}

// Ready marks the user's extension as present. Repeated calls are no-ops.
func (h *Handshakes) Ready(uid uuid.UUID) {
	hs := h.get(uid)
	hs.once.Do(func() {
		close(hs.ready)
	})
}

// Await blocks until the extension is ready, the timeout passes, or ctx ends.
// The handshake is consumed by whichever outcome the last waiter sees.
func (h *Handshakes) Await(ctx context.Context, uid uuid.UUID) HandshakeState {
	hs := h.acquire(uid)
	defer h.release(uid, hs)
	timer := time.NewTimer(h.timeout)
	defer timer.Stop()
	select {
	case <-hs.ready:
		return StateReady
	case <-timer.C:
		return StateTimeout
	case <-ctx.Done():
		return StateTimeout
	}
}


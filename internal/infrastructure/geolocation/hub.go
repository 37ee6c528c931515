package geolocation

import "sync"

// Hub owns one Relay per session.
type Hub struct {
	mu     sync.Mutex
	relays map[string]*Relay
}

func NewHub() *Hub {
	return &Hub{relays: make(map[string]*Relay)}
}

func (h *Hub) Relay(sessionID string) *Relay {
	h.mu.Lock()
	defer h.mu.Unlock()

	relay, ok := h.relays[sessionID]
	if !ok {
		relay = NewRelay()
		h.relays[sessionID] = relay
	}
	return relay
}

func (h *Hub) Remove(sessionID string) {
	h.mu.Lock()
	relay, ok := h.relays[sessionID]
	delete(h.relays, sessionID)
	h.mu.Unlock()

	if ok {
		relay.Close()
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.relays)
}

package gateway

import "sync"

type hub struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Change)
}

func newHub() *hub {
	return &hub{subs: make(map[int]func(Change))}
}

func (h *hub) subscribe(fn func(Change)) func() {
	if fn == nil {
		return func() {}
	}

	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

func (h *hub) publish(change Change) {
	h.mu.Lock()
	targets := make([]func(Change), 0, len(h.subs))
	for _, fn := range h.subs {
		targets = append(targets, fn)
	}
	h.mu.Unlock()

	for _, fn := range targets {
		go fn(change)
	}
}

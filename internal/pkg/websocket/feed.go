package websocket

import (
	"github.com/yigit/studentforce/internal/app/store"
)

// EventFromChange converts a store change into a feed event
func EventFromChange(change store.Change) *Event {
	return &Event{
		Type:     "change",
		Entity:   change.Entity,
		Action:   string(change.Action),
		ID:       change.ID,
		Cascaded: change.Cascaded,
	}
}

// Attach publishes every change of s to the hub until the returned function
// is called. Publishing never blocks the store.
func (h *Hub) Attach(s *store.Store) (detach func()) {
	return s.Subscribe(func(change store.Change) {
		h.Publish(EventFromChange(change))
	})
}

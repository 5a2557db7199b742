package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/models"
)

// broadcastBuffer bounds how many events may wait for the hub loop
const broadcastBuffer = 256

// Hub maintains the set of active clients and broadcasts change events to them
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Channel for events to fan out
	broadcast chan *Event

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done     chan struct{}
	stopOnce sync.Once

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// Event describes one published snapshot change
type Event struct {
	// Type of event: "change" or "welcome"
	Type string `json:"type"`

	// Collection that changed
	Entity models.EntityKind `json:"entity,omitempty"`

	// What happened: created, updated, deleted, reset, cleared, replaced
	Action string `json:"action,omitempty"`

	// Id of the affected record, empty for whole-snapshot changes
	ID string `json:"id,omitempty"`

	// Dependent records removed by a cascading delete
	Cascaded map[models.EntityKind][]string `json:"cascaded,omitempty"`

	// Timestamp when the change was published
	Timestamp time.Time `json:"timestamp"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Event, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts until ctx is cancelled,
// then closes every client
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("addr", client.remoteAddr()).
		Int("clientCount", len(h.clients)).
		Msg("Client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Str("addr", client.remoteAddr()).
			Int("clientCount", len(h.clients)).
			Msg("Client unregistered")
	}
}

func (h *Hub) closeAll() {
	h.stopOnce.Do(func() { close(h.done) })

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
	h.logger.Info().Msg("Hub stopped")
}

// broadcastEvent sends an event to every client subscribed to its entity.
// Clients whose send buffer is full are dropped.
func (h *Hub) broadcastEvent(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("entity", string(event.Entity)).
			Msg("Failed to marshal event for broadcast")
		return
	}

	var slow []*Client
	h.mu.RLock()
	for client := range h.clients {
		if !client.wants(event.Entity) {
			continue
		}
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	count := len(h.clients)
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn().Str("addr", client.remoteAddr()).Msg("Dropping slow client")
		h.unregisterClient(client)
	}

	h.logger.Debug().
		Str("entity", string(event.Entity)).
		Str("action", event.Action).
		Int("clientCount", count).
		Msg("Event broadcasted")
}

// join hands a client to the hub loop; false once the hub has stopped
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave hands a client back to the hub loop unless the hub has stopped
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish queues an event without blocking. When the queue is full the event
// is dropped and false is returned.
func (h *Hub) Publish(event *Event) bool {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	select {
	case h.broadcast <- event:
		return true
	default:
		h.logger.Warn().
			Str("entity", string(event.Entity)).
			Str("action", event.Action).
			Msg("Broadcast queue full, event dropped")
		return false
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

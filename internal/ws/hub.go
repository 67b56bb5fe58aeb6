package ws

import (
	"context"
	"encoding/json"
	"sync"

	"franchise-dispatch/internal/service/orders"
)

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EventOrderUpdate is the event type pushed when an order changes.
const EventOrderUpdate = "order_update"

// franchiseEvent is an internal struct for routing events to franchise rooms
type franchiseEvent struct {
	Franchise string
	Event     Event
}

// Hub maintains the set of active dashboard clients per franchise and
// broadcasts order updates to them.
type Hub struct {
	// Registered clients by franchise
	rooms map[string]map[*Client]bool

	// Inbound messages from clients (register/unregister)
	register   chan *Client
	unregister chan *Client

	// Outbound messages to broadcast
	broadcast chan *franchiseEvent

	// Mutex for thread-safe room access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *franchiseEvent, 256),
	}
}

// Run starts the hub's main loop and blocks until ctx is cancelled.
// This should be called as a goroutine: go hub.Run(ctx)
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.franchise] == nil {
				h.rooms[client.franchise] = make(map[*Client]bool)
			}
			h.rooms[client.franchise][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.franchise]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.franchise)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			clients := h.rooms[event.Franchise]

			message, err := json.Marshal(event.Event)
			if err != nil {
				h.mu.Unlock()
				continue
			}

			for client := range clients {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, close and unregister
					close(client.send)
					delete(h.rooms[event.Franchise], client)
					if len(h.rooms[event.Franchise]) == 0 {
						delete(h.rooms, event.Franchise)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToFranchise sends an event to all clients of one franchise.
func (h *Hub) BroadcastToFranchise(franchise string, event Event) {
	h.broadcast <- &franchiseEvent{
		Franchise: franchise,
		Event:     event,
	}
}

// OrderFeed adapts the hub to the worker's Broadcaster port for one
// franchise.
type OrderFeed struct {
	hub       *Hub
	franchise string
}

// NewOrderFeed creates an OrderFeed bound to a franchise room.
func NewOrderFeed(hub *Hub, franchise string) *OrderFeed {
	return &OrderFeed{hub: hub, franchise: franchise}
}

// Broadcast pushes one order event into the franchise room. Marshal errors
// cannot happen for orders.Event, so the event is dropped silently on one.
func (f *OrderFeed) Broadcast(e orders.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		return
	}
	f.hub.BroadcastToFranchise(f.franchise, Event{
		Type:    EventOrderUpdate,
		Payload: payload,
	})
}

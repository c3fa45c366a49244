package websocket

import (
	"sync"
	"time"

	"github.com/TheIanM/ucanduit/logger"
	"github.com/TheIanM/ucanduit/types"
)

// Hub interface defines the methods for managing event feed connections
type Hub interface {
	Run()
	BroadcastScan(eventType, directory string, count int)
	RegisterClient(client *Client)
	UnregisterClient(client *Client)
}

// hub maintains the set of connected shell clients and fans scan events out
// to them. There is a single room: every client sees every event.
type hub struct {
	clients map[*Client]bool

	broadcast  chan types.ScanEvent
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new event hub
func NewHub() Hub {
	return &hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan types.ScanEvent, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main event loop
func (h *hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logger.L().Debug("event feed client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logger.L().Debug("event feed client disconnected")

		case event := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					// Slow client; drop it rather than block the feed.
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastScan sends a scan event to every connected client. Events are
// dropped rather than queued when nobody is draining the channel.
func (h *hub) BroadcastScan(eventType, directory string, count int) {
	event := types.ScanEvent{
		Type:      eventType,
		Directory: directory,
		Count:     count,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- event:
	default:
		logger.L().Debug("event feed broadcast channel full, dropping event")
	}
}

// RegisterClient registers a new client with the hub
func (h *hub) RegisterClient(client *Client) {
	h.register <- client
}

// UnregisterClient unregisters a client from the hub
func (h *hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

package websocket

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"lsaudio/types"
)

// AllJobs subscribes a client to every event regardless of job ID.
const AllJobs = "all"

// Hub interface defines the methods for managing WebSocket connections.
type Hub interface {
	Run()
	BroadcastEvent(jobID, eventType, status, path, message string, files int)
	RegisterClient(client *Client)
	UnregisterClient(client *Client)
}

// hub maintains the set of active clients and broadcasts scan events to
// them.
type hub struct {
	// Registered clients mapped by job ID.
	clients map[string]map[*Client]bool

	broadcast  chan types.ScanEvent
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new WebSocket hub.
func NewHub() Hub {
	return &hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan types.ScanEvent, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main event loop.
func (h *hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.jobID] == nil {
				h.clients[client.jobID] = make(map[*Client]bool)
			}
			h.clients[client.jobID][client] = true
			h.mu.Unlock()
			log.Debug("websocket client connected", "job", client.jobID)

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.jobID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.jobID)
					}
				}
			}
			h.mu.Unlock()
			log.Debug("websocket client disconnected", "job", client.jobID)

		case event := <-h.broadcast:
			h.mu.Lock()
			h.send(h.clients[event.JobID], event)
			if event.JobID != AllJobs {
				h.send(h.clients[AllJobs], event)
			}
			h.mu.Unlock()
		}
	}
}

// send delivers an event to every client of one subscription, dropping
// clients whose buffers are full.
func (h *hub) send(clients map[*Client]bool, event types.ScanEvent) {
	for client := range clients {
		select {
		case client.send <- event:
		default:
			close(client.send)
			delete(clients, client)
		}
	}
}

// BroadcastEvent sends a scan event to all clients subscribed to a job.
func (h *hub) BroadcastEvent(jobID, eventType, status, path, message string, files int) {
	event := types.ScanEvent{
		JobID:     jobID,
		Type:      eventType,
		Status:    status,
		Path:      path,
		Files:     files,
		Message:   message,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- event:
	default:
		log.Warn("websocket broadcast channel full, dropping event", "job", jobID)
	}
}

// RegisterClient registers a new client with the hub.
func (h *hub) RegisterClient(client *Client) {
	h.register <- client
}

// UnregisterClient unregisters a client from the hub.
func (h *hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// Package live runs the in-game assistant over WebSocket: it recomputes
// recommendations as the game context changes and counts down summoner spell
// and objective timers for each connected session.
package live

import (
	"context"
	"log"
	"sync"

	"github.com/dom/rift-companion/internal/config"
	"github.com/dom/rift-companion/internal/service"
)

// Advisor is the part of the advisor service the live assistant needs
type Advisor interface {
	RecommendBuild(ctx context.Context, req service.BuildRequest) (*service.BuildResult, error)
}

type Hub struct {
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	stop        chan struct{}
	done        chan struct{} // closed when Run() exits
	stopped     bool
	stopOnce    sync.Once
	advisor     Advisor
	updateRate  float64
	updateBurst int
	mu          sync.RWMutex
}

func NewHub(advisor Advisor, cfg *config.Config) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		advisor:     advisor,
		updateRate:  cfg.LiveUpdateRate,
		updateBurst: cfg.LiveUpdateBurst,
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.stopped {
				client.Close()
			} else {
				h.clients[client] = true
				log.Printf("[live] session %s connected (%d active)", client.sessionID, len(h.clients))
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
				log.Printf("[live] session %s disconnected (%d active)", client.sessionID, len(h.clients))
			}
			h.mu.Unlock()
		}
	}
}

// Stop closes every session and blocks until Run has exited
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
	<-h.done
}

// Register hands a client to the hub. It returns false if the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister safely unregisters a client, handling the case where the hub may be stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount returns the number of connected sessions
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

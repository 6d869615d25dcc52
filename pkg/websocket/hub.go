// Package websocket fans out showroom events to connected staff dashboards.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"vyronex/pkg/logger"
)

var ErrHubClosed = errors.New("websocket hub is not running")

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	count      atomic.Int64
	options    Options
	logger     *logger.Logger
}

type Message struct {
	Type      string                 `json:"type"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func NewHub(options Options, log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		options:    options.withDefaults(),
		logger:     log,
	}
}

// Run owns the client set until ctx is cancelled, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for client := range h.clients {
			h.drop(client)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clients[client] = true
			h.count.Add(1)
			h.logger.WithField("subscriber", client.Subscriber).Info("Staff feed client connected")

		case client := <-h.unregister:
			if h.clients[client] {
				h.drop(client)
				h.logger.WithField("subscriber", client.Subscriber).Info("Staff feed client disconnected")
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.count.Add(-1)
}

// Broadcast queues a message for every connected client.
func (h *Hub) Broadcast(ctx context.Context, messageType string, data map[string]interface{}) error {
	payload, err := json.Marshal(Message{
		Type:      messageType,
		Timestamp: time.Now().Unix(),
		Data:      data,
	})
	if err != nil {
		return err
	}

	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}

	select {
	case h.broadcast <- payload:
		return nil
	case <-h.done:
		return ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ClientCount is the number of connected clients.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

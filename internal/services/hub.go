package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ChangeEvent notifies subscribers that the value at a persisted key was
// rewritten. Consumers re-read through the store on receipt.
type ChangeEvent struct {
	Type      string `json:"type"`
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}

// Hub fans store change notifications out to WebSocket subscribers. Every
// mutated key is broadcast, not just the cart.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates a new hub with no subscribers.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

// Register adds a subscriber connection.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = struct{}{}
	log.Info().Int("subscribers", len(h.conns)).Msg("Change-feed subscriber registered")
}

// Unregister removes and closes a subscriber connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[conn]; ok {
		conn.Close()
		delete(h.conns, conn)
		log.Info().Int("subscribers", len(h.conns)).Msg("Change-feed subscriber unregistered")
	}
}

// Broadcast sends a change event for key to every subscriber. Connections
// that fail to take the write are dropped.
func (h *Hub) Broadcast(key string) {
	event := ChangeEvent{
		Type:      "store_changed",
		Key:       key,
		Timestamp: time.Now().UnixMilli(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to marshal change event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Warn().Err(err).Msg("Dropping change-feed subscriber")
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package events broadcasts committed launchpad events to websocket
// subscribers.
package events

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/luxfi/launchpad/pkg/launchpad"
	"github.com/luxfi/launchpad/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans committed events out to connected subscribers. Implements
// launchpad.EventSink. Subscribers that fail a write are dropped.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	log   log.Logger
}

// NewHub creates an empty hub.
func NewHub(logger log.Logger) *Hub {
	if logger == nil {
		logger = log.NoOp()
	}
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		log:   logger,
	}
}

// Publish sends the event to every subscriber.
func (h *Hub) Publish(ev launchpad.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteJSON(ev); err != nil {
			h.log.Debug("dropping subscriber", "error", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// ServeHTTP upgrades the request and registers the connection. The read
// loop exists only to observe the close.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.conns, conn)
				h.mu.Unlock()
				conn.Close()
				return
			}
		}
	}()
}

// SubscriberCount returns the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

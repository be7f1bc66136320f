package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	PingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
	sendBuffer   = 16
)

// ChangeEvent tells a dashboard which collection to refetch.
type ChangeEvent struct {
	Kind       string `json:"kind"`
	Collection string `json:"collection"`
	Date       string `json:"date,omitempty"`
}

// WSClient is one open socket. Only its writer goroutine writes to Conn.
type WSClient struct {
	UserID string
	Conn   *websocket.Conn

	send chan []byte
	done chan struct{}
	once sync.Once
}

func NewWSClient(userID string, conn *websocket.Conn) *WSClient {
	return &WSClient{
		UserID: userID,
		Conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
}

// enqueue never blocks; it reports false when the client is gone or its
// buffer is full.
func (c *WSClient) enqueue(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *WSClient) write(messageType int, data []byte) error {
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(messageType, data)
}

func (c *WSClient) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.Conn.Close()
	})
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
	log     logrus.FieldLogger
}

func NewRealtimeHub(logger logrus.FieldLogger) *RealtimeHub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{}), log: logger}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	c.close()
}

// Connected returns how many sockets userID has open.
func (h *RealtimeHub) Connected(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *RealtimeHub) Notify(userID, collection, date string) {
	h.Broadcast(userID, ChangeEvent{Kind: "record.changed", Collection: collection, Date: date})
}

// Broadcast queues payload for every socket of userID without waiting on the
// network. A client whose queue is full is dropped.
func (h *RealtimeHub) Broadcast(userID string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		h.log.WithError(err).Warn("realtime payload not encodable")
		return
	}

	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if !c.enqueue(msg) {
			h.log.WithField("user_id", userID).Debug("realtime client lagging, dropped")
			h.Unregister(c)
		}
	}
}

func (h *RealtimeHub) writePump(c *WSClient) {
	t := time.NewTicker(PingInterval)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.write(websocket.TextMessage, msg); err != nil {
				h.log.WithError(err).WithField("user_id", c.UserID).Debug("realtime write failed")
				h.Unregister(c)
				return
			}
		case <-t.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				h.Unregister(c)
				return
			}
		}
	}
}

// Serve registers c, starts its writer and blocks until the peer goes away.
func (h *RealtimeHub) Serve(c *WSClient) {
	h.Register(c)
	go h.writePump(c)

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			h.Unregister(c)
			return
		}
	}
}

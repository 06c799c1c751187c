package services

import (
	"encoding/json"
	"sync"

	"github.com/sudokulive/sudoku-backend/utils/logger"
)

// outEvent is the outbound wire envelope. Event names mirror the ones
// clients already handle (PlayerJoined, ReceiveMembersUpdate, ...).
type outEvent struct {
	Event string        `json:"event"`
	Args  []interface{} `json:"args"`
}

// Hub tracks connected clients and their room groups and implements
// game.Messenger on top of them. Each coordinator gets its own Hub so
// the two modes keep independent groups even when pins collide.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	groups  map[string]map[string]*Client // pin -> connID -> client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		groups:  make(map[string]map[string]*Client),
	}
}

// addClient registers the connection and starts its pumps.
func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	if old, ok := h.clients[c.id]; ok {
		old.Close()
	}
	h.clients[c.id] = c
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()
}

// unregister drops the connection from the client table and every
// group. The coordinator's disconnect hook handles game state.
func (h *Hub) unregister(connID string) {
	h.mu.Lock()
	client, ok := h.clients[connID]
	if ok {
		delete(h.clients, connID)
	}
	for _, group := range h.groups {
		delete(group, connID)
	}
	h.mu.Unlock()

	if ok {
		client.Close()
	}
}

func (h *Hub) AddToGroup(connID, pin string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	client, ok := h.clients[connID]
	if !ok {
		return
	}
	group, ok := h.groups[pin]
	if !ok {
		group = make(map[string]*Client)
		h.groups[pin] = group
	}
	group[connID] = client
}

func (h *Hub) RemoveFromGroup(connID, pin string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group, ok := h.groups[pin]
	if !ok {
		return
	}
	delete(group, connID)
	if len(group) == 0 {
		delete(h.groups, pin)
	}
}

func (h *Hub) SendToCaller(connID, event string, args ...interface{}) {
	h.mu.RLock()
	client, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	h.deliver(client, marshalEvent(event, args))
}

func (h *Hub) SendToGroup(pin, event string, args ...interface{}) {
	b := marshalEvent(event, args)

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.groups[pin]))
	for _, c := range h.groups[pin] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.deliver(c, b)
	}
}

// deliver hands the frame to the client's pump, dropping it when the
// buffer is full or the channel already closed. Fire and forget.
func (h *Hub) deliver(c *Client, b []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf("[hub] dropped frame to closed client %s", c.id)
		}
	}()
	select {
	case c.send <- b:
	default:
		logger.Warnf("[hub] dropping frame to slow client %s", c.id)
	}
}

func marshalEvent(event string, args []interface{}) []byte {
	if args == nil {
		args = []interface{}{}
	}
	b, err := json.Marshal(outEvent{Event: event, Args: args})
	if err != nil {
		logger.Errorf("[hub] marshal %s: %v", event, err)
		return nil
	}
	return b
}

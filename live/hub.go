// Package live pushes device state to open websocket views.
package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/utils"
)

const (
	EventState          = "state"
	EventError          = "error"
	EventSessionEnded   = "session_ended"
	EventLoggedOut      = "logged_out"
	EventOrderSubmitted = "order_submitted"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub holds every open view, keyed by connection, with the device it belongs to.
// Writes go through the hub lock so a connection never has two writers.
type Hub struct {
	clients map[Conn]string
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[Conn]string)}
}

func (h *Hub) Register(conn Conn, deviceID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = deviceID
}

func (h *Hub) Unregister(conn Conn) {
	h.mutex.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mutex.Unlock()
	if ok {
		conn.Close()
	}
}

// Clients counts the open views of a device.
func (h *Hub) Clients(deviceID string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	n := 0
	for _, id := range h.clients {
		if id == deviceID {
			n++
		}
	}
	return n
}

// Send writes msg to a single view.
func (h *Hub) Send(conn Conn, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[conn]; !ok {
		return nil
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

// Broadcast writes msg to every open view of a device.
func (h *Hub) Broadcast(deviceID string, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("could not encode live message")
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn, id := range h.clients {
		if id != deviceID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.InfoLogger.WithError(err).WithField("device", id).Debug("live write failed")
		}
	}
}

package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

// Event is one master-data change notification pushed to admin clients so
// open screens can refresh without polling.
type Event struct {
	Type   string      `json:"type"`
	Entity string      `json:"entity"`
	Action string      `json:"action"`
	Actor  string      `json:"actor,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

// BroadcastEvent marshals and queues a change event without blocking the
// request path.
func (h *Hub) BroadcastEvent(entity, action, actor string, data interface{}) {
	payload, err := json.Marshal(Event{
		Type:   "masterdata_update",
		Entity: entity,
		Action: action,
		Actor:  actor,
		Data:   data,
	})
	if err != nil {
		logrus.WithError(err).Warn("Failed to marshal ws event")
		return
	}
	go func() {
		h.Broadcast <- payload
	}()
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			logrus.Debug("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

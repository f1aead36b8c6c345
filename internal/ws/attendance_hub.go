package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// ActivityPayload is pushed to attendance dashboards whenever the gate
// accepts a new event.
type ActivityPayload struct {
	ID          uint      `json:"id"`
	ReferenceID string    `json:"ReferenceID"`
	Email       string    `json:"Email"`
	Type        string    `json:"Type"`
	Status      string    `json:"Status"`
	Location    string    `json:"Location,omitempty"`
	DateCreated time.Time `json:"date_created"`
}

type activityMessage struct {
	referenceID string
	payload     []byte
}

// AttendanceHub handles websocket clients who listen for accepted
// attendance events. Admin/HR clients see everything; staff clients see
// only their own ReferenceID.
type AttendanceHub struct {
	register   chan *attendanceClient
	unregister chan *attendanceClient
	broadcast  chan activityMessage
	clients    map[*attendanceClient]struct{}
}

func NewAttendanceHub() *AttendanceHub {
	return &AttendanceHub{
		register:   make(chan *attendanceClient),
		unregister: make(chan *attendanceClient),
		broadcast:  make(chan activityMessage, 256),
		clients:    make(map[*attendanceClient]struct{}),
	}
}

func (h *AttendanceHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				client.conn.Close()
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				if !client.allowAll && client.referenceID != msg.referenceID {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					delete(h.clients, client)
					close(client.send)
					client.conn.Close()
				}
			}
		}
	}
}

// Broadcast pushes payload to all relevant clients.
func (h *AttendanceHub) Broadcast(payload ActivityPayload) {
	if h == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws: failed to marshal payload: %v", err)
		return
	}
	h.broadcast <- activityMessage{
		referenceID: payload.ReferenceID,
		payload:     data,
	}
}

type attendanceClient struct {
	hub         *AttendanceHub
	conn        *websocket.Conn
	send        chan []byte
	referenceID string
	allowAll    bool
}

func newAttendanceClient(hub *AttendanceHub, conn *websocket.Conn, referenceID string, allowAll bool) *attendanceClient {
	return &attendanceClient{
		hub:         hub,
		conn:        conn,
		send:        make(chan []byte, sendBufferSize),
		referenceID: referenceID,
		allowAll:    allowAll,
	}
}

func (c *attendanceClient) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *attendanceClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

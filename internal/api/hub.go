/*
Package api
File: hub.go
Description:
    The WebSocket Hub pushes game state to every connected client.

    It maintains a registry of active clients and a broadcast channel.
    The session publishes a Snapshot after every transition (including
    countdown ticks); the hub wraps it in a Message envelope and writes
    it to every socket. Clients are read-only: anything they send is
    discarded.

    Architecture:
    - Hub: The manager, one per server.
    - Client: Represents one browser connection.
    - ServeWs: The HTTP handler that upgrades a GET request to a WebSocket.
*/

package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/everforgeworks/umami-lab/internal/game"
	"github.com/everforgeworks/umami-lab/internal/metrics"
)

// MessageTypeState is the only message type the server sends.
const MessageTypeState = "state"

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 64
)

// Message is the JSON envelope for all real-time communication.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// frame is one encoded snapshot and the version it was taken at.
type frame struct {
	version uint64
	data    []byte
}

// Client represents a single connected browser tab.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active clients and broadcasts snapshots to them.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan frame
	register   chan *Client
	unregister chan *Client

	// latest is replayed to clients as they connect.
	latest frame
	done   chan struct{}
	log    *slog.Logger
}

// NewHub creates a Hub. Call Run in a goroutine before serving sockets.
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan frame, sendBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log,
	}
}

// PublishSnapshot encodes a snapshot and queues it for every client.
// It never blocks the publisher; if the queue is full the frame is dropped
// and a later snapshot supersedes it.
func (h *Hub) PublishSnapshot(snap game.Snapshot) {
	data, err := json.Marshal(Message{Type: MessageTypeState, Payload: snap})
	if err != nil {
		h.log.Error("Failed to encode snapshot", "error", err)
		return
	}
	select {
	case h.broadcast <- frame{version: snap.Version, data: data}:
	default:
		h.log.Warn("Snapshot dropped, broadcast queue full", "version", snap.Version)
	}
}

// Run is the main event loop for the Hub. It returns when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			metrics.WebsocketClients.Inc()
			h.log.Debug("WS: client registered", "clients", len(h.clients))
			if h.latest.data != nil {
				client.send <- h.latest.data
			}

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}

		case f := <-h.broadcast:
			// Snapshots can be published from two goroutines; never go backwards.
			if f.version < h.latest.version {
				continue
			}
			h.latest = f
			for client := range h.clients {
				select {
				case client.send <- f.data:
				default:
					// Send buffer full: assume the client hung.
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	metrics.WebsocketClients.Dec()
}

// upgrader configures the WebSocket handshake.
// CheckOrigin allows any host, matching the permissive CORS policy.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades the request and attaches the connection to the hub.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Warn("WS upgrade failed", "error", err)
		return
	}

	client := &Client{hub: hub, conn: conn, send: make(chan []byte, sendBufferSize)}
	select {
	case hub.register <- client:
	case <-hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so close frames are noticed.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("WS read error", "error", err)
			}
			return
		}
	}
}

// writePump writes queued frames until the hub closes c.send.
func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

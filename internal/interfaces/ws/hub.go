// Package ws expone el changefeed por websocket para que el dashboard reciba
// los cambios de filas en vivo (empresas y suscripciones).
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/invorya/backoffice-api/internal/infrastructure/changefeed"
	"github.com/invorya/backoffice-api/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	clientBuffer   = 64
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// dashboard interno detrás del mismo proxy
		return true
	},
}

// Message sobre que viaja al cliente.
type Message struct {
	Type string      `json:"type"` // change | ping
	Data interface{} `json:"data,omitempty"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub mantiene los clientes conectados y les reenvía los eventos del
// changefeed. Un cliente con el buffer lleno se desconecta: el dashboard
// recupera vía polling.
type Hub struct {
	feed *changefeed.Feed
	log  *logger.Logger

	mu         sync.RWMutex
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
}

// NewHub crea el hub.
func NewHub(feed *changefeed.Feed, log *logger.Logger) *Hub {
	return &Hub{
		feed:       feed,
		log:        log,
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run bucle principal: consume el changefeed y reparte a los clientes.
// Retorna cuando ctx se cancela.
func (h *Hub) Run(ctx context.Context) {
	sub := h.feed.Subscribe(changefeed.Filter{})
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			h.log.Debug().Str("client", c.id).Msg("cliente websocket conectado")

		case c := <-h.unregister:
			h.drop(c)

		case e, ok := <-sub.C():
			if !ok {
				h.closeAll()
				return
			}
			data, err := json.Marshal(Message{Type: "change", Data: e})
			if err != nil {
				continue
			}
			h.fanOut(data)

		case data := <-h.broadcast:
			h.fanOut(data)
		}
	}
}

// Broadcast envía un mensaje arbitrario a todos los clientes.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.log.Warn().Msg("ws: cola de broadcast llena, mensaje descartado")
	}
}

// ClientCount cantidad de clientes conectados.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) fanOut(data []byte) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		select {
		case c.send <- data:
		default:
			h.log.Warn().Str("client", c.id).Msg("ws: cliente lento, se desconecta")
			h.drop(c)
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// HandleWebSocket hace el upgrade HTTP→websocket y arranca las bombas de
// lectura/escritura del cliente.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("ws: upgrade falló")
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, clientBuffer),
	}
	h.register <- c

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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

// readPump descarta lo que envíe el cliente; solo mantiene vivo el pong.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
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

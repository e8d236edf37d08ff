package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"xetasuite/internal/models"
)

const (
	wsReadLimit     = 1 << 20
	wsReadDeadline  = 120 * time.Second
	wsWriteDeadline = 5 * time.Second
	wsPingInterval  = 15 * time.Second
)

type wsClient struct {
	userID int
	conn   *websocket.Conn
}

// Hub fans stock alerts out to connected consoles. All access to clients
// happens on the Run goroutine.
type Hub struct {
	infoLog    *log.Logger
	clients    map[*websocket.Conn]int
	broadcast  chan models.StockAlert
	register   chan wsClient
	unregister chan *websocket.Conn
}

func NewHub(infoLog *log.Logger) *Hub {
	return &Hub{
		infoLog:    infoLog,
		clients:    make(map[*websocket.Conn]int),
		broadcast:  make(chan models.StockAlert),
		register:   make(chan wsClient),
		unregister: make(chan *websocket.Conn),
	}
}

// BroadcastStockAlert satisfies handlers.Notifier.
func (h *Hub) BroadcastStockAlert(alert models.StockAlert) {
	h.broadcast <- alert
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.conn] = client.userID
			h.infoLog.Printf("WS register user=%d", client.userID)

		case conn := <-h.unregister:
			if userID, ok := h.clients[conn]; ok {
				conn.Close()
				delete(h.clients, conn)
				h.infoLog.Printf("WS unregister user=%d", userID)
			}

		case alert := <-h.broadcast:
			for conn, userID := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(alert); err != nil {
					h.infoLog.Printf("WS broadcast error to=%d: %v", userID, err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WebSocketHandler upgrades a console connection. Authentication is by a
// short-lived ticket in the query string so the upgrade request does not
// carry the session cookie.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	ticket := r.URL.Query().Get("ticket")
	userID, err := app.authService.ParseWSTicket(ticket)
	if err != nil {
		unauthorized(w)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn.SetReadLimit(wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
		return nil
	})

	app.hub.register <- wsClient{userID: userID, conn: conn}

	go app.pingLoop(conn)
	go app.readLoop(conn)
}

func (app *application) pingLoop(conn *websocket.Conn) {
	t := time.NewTicker(wsPingInterval)
	defer t.Stop()
	for range t.C {
		conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			app.hub.unregister <- conn
			return
		}
	}
}

// readLoop drains the connection. Consoles only listen; the read loop exists
// to notice disconnects and answer pings.
func (app *application) readLoop(conn *websocket.Conn) {
	defer func() {
		app.hub.unregister <- conn
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

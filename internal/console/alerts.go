package console

import (
	"context"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"xetasuite/internal/models"
)

// AlertStream receives stock alerts pushed by the server.
type AlertStream struct {
	conn *websocket.Conn
}

// SubscribeAlerts opens the websocket alert stream using a fresh ticket.
func SubscribeAlerts(ctx context.Context, client *Client, auth *Auth) (*AlertStream, error) {
	ticket, err := auth.WSTicket(ctx)
	if err != nil {
		return nil, err
	}

	wsURL := strings.Replace(client.BaseURL(), "http", "ws", 1)
	u := wsURL + "/ws?ticket=" + url.QueryEscape(ticket)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return nil, err
	}
	return &AlertStream{conn: conn}, nil
}

// Next blocks until the next alert arrives or the stream closes.
func (s *AlertStream) Next() (models.StockAlert, error) {
	var alert models.StockAlert
	err := s.conn.ReadJSON(&alert)
	return alert, err
}

func (s *AlertStream) Close() error {
	return s.conn.Close()
}

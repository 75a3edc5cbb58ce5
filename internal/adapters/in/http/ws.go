package http

import (
	"encoding/json"
	"log/slog"

	"orderdesk/internal/adapters/out/notify"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"
)

// Dashboard handles GET /api/admin/ws - upgrades to WebSocket, joins the
// dashboard broadcast group, and streams events as JSON frames until the
// connection closes.
func (s *Server) Dashboard(ctx echo.Context) error {
	handler := websocket.Handler(func(conn *websocket.Conn) {
		s.streamEvents(conn)
	})
	handler.ServeHTTP(ctx.Response(), ctx.Request())
	return nil
}

func (s *Server) streamEvents(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	sub := s.hub.Join(notify.DashboardGroup)
	defer s.hub.Leave(sub)

	// Drain inbound frames so we notice when the client goes away. The
	// dashboard protocol is one-directional; anything the client sends is
	// discarded.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		var discard string
		for {
			if err := websocket.Message.Receive(conn, &discard); err != nil {
				return
			}
		}
	}()

	encoder := json.NewEncoder(conn)
	for {
		select {
		case event, ok := <-sub.C():
			if !ok {
				return
			}
			if err := encoder.Encode(event); err != nil {
				slog.Debug("dashboard stream closed", "error", err)
				return
			}
		case <-closed:
			return
		}
	}
}

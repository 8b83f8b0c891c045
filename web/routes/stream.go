package routes

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
)

// StreamHandle upgrades the connection and registers it with the hub. The
// client only listens; inbound messages are drained until the peer goes away.
func (s *ServerHandler) StreamHandle(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		slog.Error("Failed to accept websocket", "error", err)

		return
	}

	s.Hub.Add(conn)
	slog.Debug("Editor page connected to stream")

	go func(c *websocket.Conn) {
		defer s.Hub.Remove(c)
		defer c.Close(websocket.StatusNormalClosure, "")

		for {
			if _, _, err := c.Read(context.Background()); err != nil {
				return
			}
		}
	}(conn)
}

package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/a-h/templ"
	"github.com/dasdy/multitile/db"
	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/web/ws"
)

// ServerHandler holds the grid being edited plus the handlers' collaborators.
// The grid is owned by whichever request currently holds mu; handlers are
// the callers that serialize access.
type ServerHandler struct {
	mu      sync.Mutex
	grid    *grid.Grid
	Storage db.Storage
	Hub     *ws.Hub
}

func NewServerHandler(g *grid.Grid, storage db.Storage, hub *ws.Hub) *ServerHandler {
	return &ServerHandler{grid: g, Storage: storage, Hub: hub}
}

// layoutChanged is the websocket notification sent after every mutation.
type layoutChanged struct {
	Type string `json:"type"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
}

// notifyLocked broadcasts the current dimensions to connected pages.
// Callers must hold mu.
func (s *ServerHandler) notifyLocked() {
	if s.Hub == nil {
		return
	}

	msg, err := json.Marshal(layoutChanged{Type: "LayoutChanged", Rows: s.grid.Rows(), Cols: s.grid.Cols()})
	if err != nil {
		slog.Error("Failed to marshal layout notification", "error", err)

		return
	}

	s.Hub.Broadcast(msg)
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

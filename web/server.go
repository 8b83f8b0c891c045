// Package web serves the browser-based grid editor.
package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dasdy/multitile/db"
	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/logging"
	"github.com/dasdy/multitile/web/routes"
	"github.com/dasdy/multitile/web/ws"
)

// withRequestContext tags each request's context so slog records carry the
// method and path.
func withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.AppendCtx(r.Context(), slog.String("method", r.Method))
		ctx = logging.AppendCtx(ctx, slog.String("path", r.URL.Path))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BuildServer wires the editor routes around the given grid and library.
func BuildServer(g *grid.Grid, storage db.Storage) *http.ServeMux {
	hub := ws.NewHub()
	handler := routes.NewServerHandler(g, storage, hub)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /cell", handler.CellHandle)
	mux.HandleFunc("POST /pattern", handler.PatternHandle)
	mux.HandleFunc("POST /resize", handler.ResizeHandle)
	mux.HandleFunc("POST /save", handler.SaveHandle)
	mux.HandleFunc("POST /load", handler.LoadHandle)
	mux.HandleFunc("GET /layout.scad", handler.LayoutHandle)
	mux.HandleFunc("GET /stream", handler.StreamHandle)
	mux.HandleFunc("/", handler.EditorHandle)

	return mux
}

// StartServer runs the editor until the listener fails.
func StartServer(port int, g *grid.Grid, storage db.Storage) error {
	slog.Info("Running editor interface", "port", port)

	err := http.ListenAndServe(
		fmt.Sprintf(":%d", port),
		withRequestContext(BuildServer(g, storage)))
	if err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}

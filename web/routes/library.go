package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dasdy/multitile/db"
)

// SaveHandle stores the current grid under a name in the layout library.
func (s *ServerHandler) SaveHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling save request")

	if s.Storage == nil {
		http.Error(w, "no layout library configured", http.StatusNotImplemented)

		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		http.Error(w, "layout name must not be empty", http.StatusBadRequest)

		return
	}

	s.mu.Lock()
	err := s.Storage.Save(name, s.grid)
	s.mu.Unlock()

	if err != nil {
		slog.Error("Failed to save layout", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	slog.Debug("Saved layout", "name", name)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LoadHandle replaces the current grid with a layout from the library.
func (s *ServerHandler) LoadHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling load request")

	if s.Storage == nil {
		http.Error(w, "no layout library configured", http.StatusNotImplemented)

		return
	}

	name := strings.TrimSpace(r.FormValue("name"))

	loaded, err := s.Storage.Load(name)
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)

		return
	}

	if err != nil {
		slog.Error("Failed to load layout", "name", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	s.mu.Lock()
	s.grid = loaded
	s.notifyLocked()
	s.mu.Unlock()

	slog.Debug("Loaded layout", "name", name)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

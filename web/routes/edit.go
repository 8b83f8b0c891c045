package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/model"
)

// MaxGridSize bounds rows/cols accepted over HTTP, matching the editor's
// spinbox range. The grid itself imposes no upper bound.
const MaxGridSize = 50

func parseCell(value string) (row, col int, err error) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("cell value %q must look like row,col", value)
	}

	row, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("could not parse cell row: %w", err)
	}

	col, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("could not parse cell col: %w", err)
	}

	return row, col, nil
}

// CellHandle applies the selected palette style to one cell.
func (s *ServerHandler) CellHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling cell edit request")

	row, col, err := parseCell(r.FormValue("cell"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	tok, err := model.ParseAbbrev(r.FormValue("style"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.mu.Lock()
	err = s.grid.Set(row, col, tok)
	if err == nil {
		s.notifyLocked()
	}
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	slog.Debug("Applied style to cell", "row", row, "col", col, "style", tok.String())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// PatternHandle applies a named border preset to the whole grid.
func (s *ServerHandler) PatternHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling pattern request")

	name := r.FormValue("preset")

	pattern, err := model.Preset(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.mu.Lock()
	grid.ApplyPattern(s.grid, &pattern)
	s.notifyLocked()
	s.mu.Unlock()

	slog.Debug("Applied border preset", "preset", name)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseDimension(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("could not parse dimension %q: %w", value, err)
	}

	if n < 1 || n > MaxGridSize {
		return 0, fmt.Errorf("dimension %d outside 1..%d", n, MaxGridSize)
	}

	return n, nil
}

// ResizeHandle changes the grid dimensions, keeping the overlap.
func (s *ServerHandler) ResizeHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling resize request")

	rows, err := parseDimension(r.FormValue("rows"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	cols, err := parseDimension(r.FormValue("cols"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.mu.Lock()
	err = s.grid.Resize(rows, cols)
	if err == nil {
		s.notifyLocked()
	}
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	slog.Debug("Resized grid", "rows", rows, "cols", cols)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

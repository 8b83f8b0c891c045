package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/multitile/model"
	"github.com/dasdy/multitile/scad"
	cs "github.com/dasdy/multitile/web/components"
)

// BuildEditorRenderContext snapshots the grid into the editor page's
// render context.
func (s *ServerHandler) BuildEditorRenderContext() cs.RenderContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	cells := make([][]cs.Cell, 0, s.grid.Rows())

	rowIx := 0
	for row := range s.grid.RowTokens() {
		line := make([]cs.Cell, len(row))
		for j, tok := range row {
			line[j] = cs.Cell{Row: rowIx, Col: j, Abbrev: tok.Abbrev(), Name: tok.String()}
		}

		cells = append(cells, line)
		rowIx++
	}

	styles := make([]cs.StyleOption, len(model.Tokens))
	for i, tok := range model.Tokens {
		styles[i] = cs.StyleOption{Abbrev: tok.Abbrev(), Name: tok.String(), Selected: tok == model.Normal}
	}

	saved := make([]string, 0)

	if s.Storage != nil {
		infos, err := s.Storage.List()
		if err != nil {
			slog.Error("Failed to list saved layouts", "error", err)
		}

		for _, info := range infos {
			saved = append(saved, info.Name)
		}
	}

	return cs.RenderContext{
		Rows:        s.grid.Rows(),
		Cols:        s.grid.Cols(),
		Cells:       cells,
		Styles:      styles,
		Presets:     model.PresetNames(),
		Saved:       saved,
		LayoutBlock: scad.FormatLayout(s.grid),
	}
}

// EditorHandle serves the grid editor page.
func (s *ServerHandler) EditorHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling editor page request")

	rc := s.BuildEditorRenderContext()

	if err := SafeRenderTemplate(cs.EditorPage(&rc), w); err != nil {
		slog.Error("Failed to render editor page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// LayoutHandle serves the serialized LAYOUT block as a download.
func (s *ServerHandler) LayoutHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling layout download request")

	s.mu.Lock()
	block := "LAYOUT = " + scad.FormatLayout(s.grid) + ";\n"
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")

	if _, err := w.Write([]byte(block)); err != nil {
		slog.Error("Failed to write layout block", "error", err)
	}
}

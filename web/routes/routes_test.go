package routes_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dasdy/multitile/db"
	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/model"
	"github.com/dasdy/multitile/web/routes"
	"github.com/dasdy/multitile/web/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, rows, cols int) *routes.ServerHandler {
	t.Helper()

	g, err := grid.New(rows, cols)
	require.NoError(t, err)

	storage, err := db.ConnectDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(storage.Close)

	return routes.NewServerHandler(g, storage, ws.NewHub())
}

func postForm(t *testing.T, handle http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handle(rec, req)

	return rec
}

func cellAt(t *testing.T, s *routes.ServerHandler, row, col int) string {
	t.Helper()

	rc := s.BuildEditorRenderContext()
	require.Greater(t, len(rc.Cells), row)
	require.Greater(t, len(rc.Cells[row]), col)

	return rc.Cells[row][col].Abbrev
}

func TestEditorHandle(t *testing.T) {
	t.Run("renders palette, presets and grid", func(t *testing.T) {
		handler := newHandler(t, 3, 3)

		rec := httptest.NewRecorder()
		handler.EditorHandle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `action="/cell"`)
		assert.Contains(t, body, `name="preset" value="ALL"`)
		assert.Contains(t, body, "LAYOUT")
	})
}

func TestCellHandle(t *testing.T) {
	t.Run("applies style to cell", func(t *testing.T) {
		handler := newHandler(t, 3, 3)

		rec := postForm(t, handler.CellHandle, "/cell", url.Values{"cell": {"1,2"}, "style": {"TL"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "TL", cellAt(t, handler, 1, 2))
	})

	t.Run("rejects malformed cell", func(t *testing.T) {
		handler := newHandler(t, 3, 3)

		rec := postForm(t, handler.CellHandle, "/cell", url.Values{"cell": {"nope"}, "style": {"O"}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects out-of-range cell", func(t *testing.T) {
		handler := newHandler(t, 3, 3)

		rec := postForm(t, handler.CellHandle, "/cell", url.Values{"cell": {"5,5"}, "style": {"O"}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects unknown style", func(t *testing.T) {
		handler := newHandler(t, 3, 3)

		rec := postForm(t, handler.CellHandle, "/cell", url.Values{"cell": {"0,0"}, "style": {"QQ"}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPatternHandle(t *testing.T) {
	t.Run("applies preset to whole grid", func(t *testing.T) {
		handler := newHandler(t, 3, 3)

		rec := postForm(t, handler.PatternHandle, "/pattern", url.Values{"preset": {"BT"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, model.TopEdge.Abbrev(), cellAt(t, handler, 0, 1))
		assert.Equal(t, model.Normal.Abbrev(), cellAt(t, handler, 1, 0))
		assert.Equal(t, model.BottomEdge.Abbrev(), cellAt(t, handler, 2, 1))
	})

	t.Run("rejects unknown preset", func(t *testing.T) {
		handler := newHandler(t, 3, 3)

		rec := postForm(t, handler.PatternHandle, "/pattern", url.Values{"preset": {"WAT"}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestResizeHandle(t *testing.T) {
	t.Run("resizes the grid", func(t *testing.T) {
		handler := newHandler(t, 3, 3)

		rec := postForm(t, handler.ResizeHandle, "/resize", url.Values{"rows": {"2"}, "cols": {"5"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)

		rc := handler.BuildEditorRenderContext()
		assert.Equal(t, 2, rc.Rows)
		assert.Equal(t, 5, rc.Cols)
	})

	t.Run("rejects dimensions outside the editor bounds", func(t *testing.T) {
		handler := newHandler(t, 3, 3)

		for _, form := range []url.Values{
			{"rows": {"0"}, "cols": {"3"}},
			{"rows": {"3"}, "cols": {"51"}},
			{"rows": {"x"}, "cols": {"3"}},
		} {
			rec := postForm(t, handler.ResizeHandle, "/resize", form)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
	})
}

func TestLayoutHandle(t *testing.T) {
	handler := newHandler(t, 2, 2)

	require.Equal(t, http.StatusSeeOther,
		postForm(t, handler.PatternHandle, "/pattern", url.Values{"preset": {"ALL"}}).Code)

	rec := httptest.NewRecorder()
	handler.LayoutHandle(rec, httptest.NewRequest(http.MethodGet, "/layout.scad", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "LAYOUT = [\n    [ TL, TR ],\n    [ BL, BR ]\n];\n", rec.Body.String())
}

func TestSaveAndLoadHandles(t *testing.T) {
	t.Run("roundtrips through the library", func(t *testing.T) {
		handler := newHandler(t, 2, 2)

		require.Equal(t, http.StatusSeeOther,
			postForm(t, handler.PatternHandle, "/pattern", url.Values{"preset": {"LR"}}).Code)
		require.Equal(t, http.StatusSeeOther,
			postForm(t, handler.SaveHandle, "/save", url.Values{"name": {"shelf"}}).Code)

		// Wipe the grid, then restore it from the library.
		require.Equal(t, http.StatusSeeOther,
			postForm(t, handler.PatternHandle, "/pattern", url.Values{"preset": {"NONE"}}).Code)
		require.Equal(t, model.Normal.Abbrev(), cellAt(t, handler, 0, 0))

		rec := postForm(t, handler.LoadHandle, "/load", url.Values{"name": {"shelf"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, model.LeftEdge.Abbrev(), cellAt(t, handler, 0, 0))
		assert.Equal(t, model.RightEdge.Abbrev(), cellAt(t, handler, 0, 1))
	})

	t.Run("save rejects empty name", func(t *testing.T) {
		handler := newHandler(t, 2, 2)

		rec := postForm(t, handler.SaveHandle, "/save", url.Values{"name": {"  "}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("load of missing layout is 404", func(t *testing.T) {
		handler := newHandler(t, 2, 2)

		rec := postForm(t, handler.LoadHandle, "/load", url.Values{"name": {"ghost"}})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("saved layouts show up on the editor page", func(t *testing.T) {
		handler := newHandler(t, 2, 2)

		require.Equal(t, http.StatusSeeOther,
			postForm(t, handler.SaveHandle, "/save", url.Values{"name": {"desk"}}).Code)

		rc := handler.BuildEditorRenderContext()

		assert.Contains(t, rc.Saved, "desk")
	})
}

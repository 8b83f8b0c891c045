package grid_test

import (
	"testing"

	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates normal-filled grid", func(t *testing.T) {
		g, err := grid.New(3, 4)

		require.NoError(t, err)
		assert.Equal(t, 3, g.Rows())
		assert.Equal(t, 4, g.Cols())

		for row := range g.RowTokens() {
			for _, tok := range row {
				assert.Equal(t, model.Normal, tok)
			}
		}
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {0, 0}} {
			_, err := grid.New(dims[0], dims[1])

			assert.Error(t, err)
		}
	})
}

func TestGetSet(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	t.Run("roundtrips a token", func(t *testing.T) {
		require.NoError(t, g.Set(1, 0, model.BottomLeftCorner))

		tok, err := g.Get(1, 0)

		require.NoError(t, err)
		assert.Equal(t, model.BottomLeftCorner, tok)
	})

	t.Run("rejects out-of-range indices", func(t *testing.T) {
		for _, ix := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
			_, err := g.Get(ix[0], ix[1])
			assert.ErrorIs(t, err, grid.ErrOutOfRange)

			err = g.Set(ix[0], ix[1], model.Skip)
			assert.ErrorIs(t, err, grid.ErrOutOfRange)
		}
	})
}

func TestResize(t *testing.T) {
	t.Run("keeps overlap and fills new cells with normal", func(t *testing.T) {
		g, err := grid.New(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.Set(0, 0, model.TopLeftCorner))
		require.NoError(t, g.Set(1, 1, model.Skip))
		require.NoError(t, g.Set(2, 2, model.BottomRightCorner))

		require.NoError(t, g.Resize(2, 5))

		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 5, g.Cols())

		tok, err := g.Get(0, 0)
		require.NoError(t, err)
		assert.Equal(t, model.TopLeftCorner, tok)

		tok, err = g.Get(1, 1)
		require.NoError(t, err)
		assert.Equal(t, model.Skip, tok)

		for _, ix := range [][2]int{{0, 3}, {0, 4}, {1, 3}, {1, 4}} {
			tok, err = g.Get(ix[0], ix[1])
			require.NoError(t, err)
			assert.Equal(t, model.Normal, tok)
		}
	})

	t.Run("trimmed cells are forgotten on regrow", func(t *testing.T) {
		g, err := grid.New(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.Set(2, 2, model.BottomRightCorner))

		require.NoError(t, g.Resize(2, 5))
		require.NoError(t, g.Resize(3, 3))

		tok, err := g.Get(2, 2)

		require.NoError(t, err)
		assert.Equal(t, model.Normal, tok)
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		g, err := grid.New(2, 2)
		require.NoError(t, err)

		assert.Error(t, g.Resize(0, 2))
		assert.Error(t, g.Resize(2, 0))
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 2, g.Cols())
	})
}

func TestRowTokens(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, model.TopEdge))

	t.Run("is restartable", func(t *testing.T) {
		for range 2 {
			rows := make([][]model.StyleToken, 0, 2)
			for row := range g.RowTokens() {
				rows = append(rows, row)
			}

			require.Len(t, rows, 2)
			assert.Equal(t, []model.StyleToken{model.Normal, model.TopEdge, model.Normal}, rows[0])
			assert.Equal(t, []model.StyleToken{model.Normal, model.Normal, model.Normal}, rows[1])
		}
	})

	t.Run("mutating a yielded row does not touch the grid", func(t *testing.T) {
		for row := range g.RowTokens() {
			row[0] = model.Skip
		}

		tok, err := g.Get(0, 0)

		require.NoError(t, err)
		assert.Equal(t, model.Normal, tok)
	})
}

func TestClone(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 0, model.Skip))

	clone := g.Clone()
	require.NoError(t, clone.Set(0, 0, model.TopEdge))

	tok, err := g.Get(0, 0)

	require.NoError(t, err)
	assert.Equal(t, model.Skip, tok)
}

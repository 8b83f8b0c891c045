package db_test

import (
	"testing"

	"github.com/dasdy/multitile/db"
	"github.com/dasdy/multitile/grid"
	"github.com/dasdy/multitile/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryStorage(t *testing.T) db.Storage {
	t.Helper()

	storage, err := db.ConnectDB(":memory:")

	require.NoError(t, err)
	t.Cleanup(storage.Close)

	return storage
}

func borderedGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()

	g, err := grid.New(rows, cols)
	require.NoError(t, err)

	grid.ApplyPattern(g, &model.BorderPattern{Top: true, Bottom: true, Left: true, Right: true})

	return g
}

func TestSaveAndLoad(t *testing.T) {
	t.Run("roundtrips a layout", func(t *testing.T) {
		storage := memoryStorage(t)

		g := borderedGrid(t, 3, 4)
		require.NoError(t, storage.Save("shelf", g))

		loaded, err := storage.Load("shelf")

		require.NoError(t, err)
		assert.Equal(t, 3, loaded.Rows())
		assert.Equal(t, 4, loaded.Cols())

		for i := range 3 {
			for j := range 4 {
				want, err := g.Get(i, j)
				require.NoError(t, err)

				got, err := loaded.Get(i, j)
				require.NoError(t, err)

				assert.Equal(t, want, got)
			}
		}
	})

	t.Run("save overwrites an existing name", func(t *testing.T) {
		storage := memoryStorage(t)

		require.NoError(t, storage.Save("shelf", borderedGrid(t, 3, 3)))
		require.NoError(t, storage.Save("shelf", borderedGrid(t, 2, 5)))

		loaded, err := storage.Load("shelf")

		require.NoError(t, err)
		assert.Equal(t, 2, loaded.Rows())
		assert.Equal(t, 5, loaded.Cols())
	})

	t.Run("missing layout is ErrNotFound", func(t *testing.T) {
		storage := memoryStorage(t)

		_, err := storage.Load("nope")

		assert.ErrorIs(t, err, db.ErrNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("empty library lists nothing", func(t *testing.T) {
		storage := memoryStorage(t)

		infos, err := storage.List()

		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run("lists layouts sorted by name", func(t *testing.T) {
		storage := memoryStorage(t)

		require.NoError(t, storage.Save("wall", borderedGrid(t, 9, 9)))
		require.NoError(t, storage.Save("desk", borderedGrid(t, 2, 6)))

		infos, err := storage.List()

		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "desk", infos[0].Name)
		assert.Equal(t, 2, infos[0].Rows)
		assert.Equal(t, 6, infos[0].Cols)
		assert.Equal(t, "wall", infos[1].Name)
		assert.NotEmpty(t, infos[0].Updated)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes a layout", func(t *testing.T) {
		storage := memoryStorage(t)

		require.NoError(t, storage.Save("shelf", borderedGrid(t, 3, 3)))
		require.NoError(t, storage.Delete("shelf"))

		_, err := storage.Load("shelf")

		assert.ErrorIs(t, err, db.ErrNotFound)
	})

	t.Run("missing layout is ErrNotFound", func(t *testing.T) {
		storage := memoryStorage(t)

		assert.ErrorIs(t, storage.Delete("nope"), db.ErrNotFound)
	})
}

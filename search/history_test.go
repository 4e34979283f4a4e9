package search

import (
	"testing"

	"github.com/poiesic/bayesearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Record(t *testing.T) {
	h := NewHistory(3)

	t.Run("records in insertion order", func(t *testing.T) {
		added, err := h.Record(2, []core.Coord{{3, 4}, {1, 1}, {0, 9}})
		require.NoError(t, err)
		assert.Equal(t, 3, added)

		searched, err := h.Searched(2)
		require.NoError(t, err)
		assert.Equal(t, []core.Coord{{3, 4}, {1, 1}, {0, 9}}, searched)
	})

	t.Run("ignores coordinates already present", func(t *testing.T) {
		added, err := h.Record(2, []core.Coord{{1, 1}, {5, 5}})
		require.NoError(t, err)
		assert.Equal(t, 1, added)

		count, err := h.Count(2)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("ignores duplicates within a batch", func(t *testing.T) {
		added, err := h.Record(1, []core.Coord{{7, 7}, {7, 7}, {7, 7}})
		require.NoError(t, err)
		assert.Equal(t, 1, added)
	})

	t.Run("areas are independent", func(t *testing.T) {
		ok, err := h.AlreadySearched(3, core.Coord{X: 3, Y: 4})
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = h.AlreadySearched(2, core.Coord{X: 3, Y: 4})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("total spans all areas", func(t *testing.T) {
		assert.Equal(t, 5, h.Total())
	})
}

func TestHistory_SearchedReturnsCopy(t *testing.T) {
	h := NewHistory(1)
	_, err := h.Record(1, []core.Coord{{0, 0}})
	require.NoError(t, err)

	searched, err := h.Searched(1)
	require.NoError(t, err)
	searched[0] = core.Coord{X: 99, Y: 99}

	ok, err := h.AlreadySearched(1, core.Coord{X: 0, Y: 0})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHistory_Reset(t *testing.T) {
	h := NewHistory(2)
	_, err := h.Record(1, []core.Coord{{0, 0}, {1, 0}})
	require.NoError(t, err)
	_, err = h.Record(2, []core.Coord{{2, 2}})
	require.NoError(t, err)

	h.Reset()

	assert.Equal(t, 0, h.Total())
	for _, area := range []core.AreaID{1, 2} {
		searched, err := h.Searched(area)
		require.NoError(t, err)
		assert.Empty(t, searched)
	}
	assert.Equal(t, 2, h.NumAreas())
}

func TestHistory_InvalidArea(t *testing.T) {
	h := NewHistory(3)

	_, err := h.Record(4, []core.Coord{{0, 0}})
	assert.ErrorIs(t, err, core.ErrInvalidArea)

	_, err = h.AlreadySearched(0, core.Coord{})
	assert.ErrorIs(t, err, core.ErrInvalidArea)

	_, err = h.Searched(-1)
	assert.ErrorIs(t, err, core.ErrInvalidArea)

	_, err = h.Count(9)
	assert.ErrorIs(t, err, core.ErrInvalidArea)
}

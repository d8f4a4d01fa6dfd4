package library

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tussle/tiler/grid"
	"github.com/tussle/tiler/palette"
)

func newStore(t *testing.T) Storage {
	s, err := Open("sqlite3", filepath.Join(t.TempDir(), "maps.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestSaveLoad(t *testing.T) {
	s := newStore(t)

	g := grid.New(10, 40, palette.Flat)
	g.Set(3, 7, palette.Bridge)
	require.NoError(t, s.Save(&Map{Name: "level1", Variant: "orthogonal", Grid: g}))

	m, err := s.Load("level1")
	require.NoError(t, err)
	assert.Equal(t, "level1", m.Name)
	assert.Equal(t, "orthogonal", m.Variant)
	assert.True(t, g.Equal(m.Grid))

	_, err = s.Load("level2")
	assert.Equal(t, ErrNotFound, err)
}

func TestSaveReplaces(t *testing.T) {
	s := newStore(t)

	g := grid.New(2, 2, palette.Flat)
	require.NoError(t, s.Save(&Map{Name: "a", Variant: "isometric", Grid: g}))
	require.NoError(t, s.Save(&Map{Name: "a", Variant: "isometric", Grid: g}))

	g = grid.New(3, 1, palette.Water)
	require.NoError(t, s.Save(&Map{Name: "a", Variant: "isometric", Grid: g}))

	m, err := s.Load("a")
	require.NoError(t, err)
	assert.True(t, g.Equal(m.Grid))

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Width)
	assert.Equal(t, 1, list[0].Height)
	assert.Len(t, list[0].SHA1, 40)
}

func TestList(t *testing.T) {
	s := newStore(t)

	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, s.Save(&Map{Name: name, Variant: "orthogonal", Grid: grid.New(1, 1, palette.Flat)}))
	}

	list, err := s.List()
	require.NoError(t, err)
	var names []string
	for _, sum := range list {
		names = append(names, sum.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestDelete(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(&Map{Name: "a", Variant: "orthogonal", Grid: grid.New(1, 1, palette.Flat)}))
	require.NoError(t, s.Delete("a"))
	assert.Equal(t, ErrNotFound, s.Delete("a"))

	_, err := s.Load("a")
	assert.Equal(t, ErrNotFound, err)
}

func TestSaveNoName(t *testing.T) {
	s := newStore(t)
	assert.Error(t, s.Save(&Map{Grid: grid.New(1, 1, palette.Flat)}))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "")
	assert.Error(t, err)
}

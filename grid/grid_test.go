package grid

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tussle/tiler/palette"
)

func TestNew(t *testing.T) {
	tables := []struct {
		width, height int
	}{
		{1, 1},
		{25, 25},
		{10, 40},
	}

	for _, table := range tables {
		g := New(table.width, table.height, palette.DefaultTile)
		assert.Equal(t, table.width, g.Width())
		assert.Equal(t, table.height, g.Height())

		rows := g.Rows()
		require.Len(t, rows, table.height)
		for _, row := range rows {
			require.Len(t, row, table.width)
			for _, id := range row {
				assert.Equal(t, palette.DefaultTile, id)
			}
		}
	}
}

func TestNewEmpty(t *testing.T) {
	for _, g := range []*Grid{New(0, 5, 1), New(5, 0, 1), New(-1, -1, 1)} {
		assert.Equal(t, 0, g.Width())
		assert.Equal(t, 0, g.Height())
		assert.False(t, g.Set(0, 0, 2))
	}
}

func TestSetOutOfBounds(t *testing.T) {
	g := New(3, 2, 1)
	before := g.Clone()

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}} {
		assert.False(t, g.Set(p.X, p.Y, 7))
		_, ok := g.At(p.X, p.Y)
		assert.False(t, ok)
	}
	assert.True(t, g.Equal(before))

	assert.True(t, g.Set(2, 1, 7))
	id, ok := g.At(2, 1)
	require.True(t, ok)
	assert.Equal(t, 7, id)
	assert.False(t, g.Equal(before))
}

func TestResize(t *testing.T) {
	g := New(4, 4, palette.Flat)
	g.Set(1, 1, palette.Water)

	r := g.Resize(6, 2)
	assert.Equal(t, 6, r.Width())
	assert.Equal(t, 2, r.Height())
	assert.True(t, r.Equal(New(6, 2, palette.Flat)))

	// The original is untouched
	id, _ := g.At(1, 1)
	assert.Equal(t, palette.Water, id)
}

func TestEach(t *testing.T) {
	g := New(2, 2, 0)
	g.Set(1, 0, 1)
	g.Set(0, 1, 2)
	g.Set(1, 1, 3)

	var got []int
	g.Each(func(col, row, id int) {
		assert.Equal(t, row*2+col, id)
		got = append(got, id)
	})
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestFromImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	m.Set(10, 10, color.RGBA{0xff, 0x00, 0xff, 0xff})
	m.Set(11, 10, color.RGBA{165, 193, 245, 0xff})
	m.Set(12, 10, color.RGBA{0xcc, 0x00, 0x00, 0xff})
	m.Set(10, 11, color.RGBA{0x46, 0xbd, 0xc6, 0xff})
	m.Set(11, 11, color.RGBA{0x7d, 0x70, 0x60, 0xff})
	m.Set(12, 11, color.RGBA{0xd9, 0xea, 0xd3, 0xff})

	g := FromImage(m, palette.Default)
	assert.Equal(t, [][]int{
		{palette.Spawn, palette.Water, palette.YesEnemy},
		{palette.Bridge, palette.Higher, palette.Flat},
	}, g.Rows())
}

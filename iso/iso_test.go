package iso

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mappers = []Mapper{
	{Width: 1, Height: 1, CellSize: 30},
	{Width: 25, Height: 25, CellSize: 30},
	{Width: 10, Height: 40, CellSize: 10},
	{Width: 40, Height: 10, CellSize: 31},
	{Width: 7, Height: 3, CellSize: 2},
	{Width: 12, Height: 12, CellSize: 15},
}

func TestCenter(t *testing.T) {
	m := Mapper{Width: 25, Height: 25, CellSize: 30}
	assert.Equal(t, image.Pt(390, 15), m.Origin())
	assert.Equal(t, image.Pt(390, 30), m.Center(0, 0))
	assert.Equal(t, image.Pt(405, 45), m.Center(1, 0))
	assert.Equal(t, image.Pt(375, 45), m.Center(0, 1))
	assert.Equal(t, image.Pt(390, 60), m.Center(1, 1))
}

func TestForwardInverse(t *testing.T) {
	for _, m := range mappers {
		for r := 0; r < m.Height; r++ {
			for c := 0; c < m.Width; c++ {
				col, row, ok := m.Cell(m.Center(c, r))
				require.True(t, ok, "%+v (%d, %d)", m, c, r)
				require.Equal(t, c, col, "%+v (%d, %d)", m, c, r)
				require.Equal(t, r, row, "%+v (%d, %d)", m, c, r)
			}
		}
	}
}

func TestCellNeighbours(t *testing.T) {
	m := Mapper{Width: 25, Height: 25, CellSize: 30}
	c := m.Center(5, 5)

	tables := []struct {
		p        image.Point
		col, row int
	}{
		// Just inside each corner of the diamond
		{c.Add(image.Pt(0, -13)), 5, 5},
		{c.Add(image.Pt(0, 13)), 5, 5},
		{c.Add(image.Pt(-13, 0)), 5, 5},
		{c.Add(image.Pt(13, 0)), 5, 5},
		// Just across each edge
		{c.Add(image.Pt(6, -10)), 5, 4},
		{c.Add(image.Pt(-6, -10)), 4, 5},
		{c.Add(image.Pt(6, 10)), 6, 5},
		{c.Add(image.Pt(-6, 10)), 5, 6},
	}

	for _, table := range tables {
		col, row, ok := m.Cell(table.p)
		require.True(t, ok, table.p)
		assert.Equal(t, table.col, col, table.p)
		assert.Equal(t, table.row, row, table.p)
	}
}

func TestCellOutside(t *testing.T) {
	for _, m := range mappers {
		outside := []image.Point{
			m.Center(-1, 0),
			m.Center(0, -1),
			m.Center(m.Width, 0),
			m.Center(0, m.Height),
			m.Center(m.Width, m.Height),
			m.Center(-1, -1),
		}
		for _, p := range outside {
			_, _, ok := m.Cell(p)
			assert.False(t, ok, "%+v %v", m, p)
		}
	}

	m := Mapper{Width: 25, Height: 25, CellSize: 30}
	_, _, ok := m.Cell(image.Pt(0, 0))
	assert.False(t, ok)
	_, _, ok = m.Cell(image.Pt(-100, 5000))
	assert.False(t, ok)
}

func TestCellOrigin(t *testing.T) {
	m := Mapper{Width: 3, Height: 3, CellSize: 20}
	col, row, ok := m.Cell(m.Origin())
	assert.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	_, _, ok = Mapper{Width: 3, Height: 3}.Cell(image.Pt(1, 1))
	assert.False(t, ok)
}

func TestLayout(t *testing.T) {
	for _, m := range mappers {
		n := 0
		m.Layout(func(col, row int, center image.Point) {
			assert.Equal(t, n%m.Width, col)
			assert.Equal(t, n/m.Width, row)
			assert.Equal(t, m.Center(col, row), center, "%+v (%d, %d)", m, col, row)
			n++
		})
		assert.Equal(t, m.Width*m.Height, n)
	}
}

func TestBounds(t *testing.T) {
	m := Mapper{Width: 2, Height: 3, CellSize: 10}
	assert.Equal(t, image.Rect(0, 5, 25, 30), m.Bounds())

	for _, m := range mappers {
		b := m.Bounds()
		m.Layout(func(col, row int, center image.Point) {
			assert.True(t, center.In(b), "%+v (%d, %d)", m, col, row)
		})
	}

	assert.True(t, Mapper{}.Bounds().Empty())
}

func TestDiamond(t *testing.T) {
	m := Mapper{Width: 4, Height: 4, CellSize: 20}
	assert.True(t, m.Diamond(2, 1, m.Center(2, 1)))
	assert.False(t, m.Diamond(2, 1, m.Center(1, 2)))
}

func TestCellBelowMinCellSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		m := Mapper{Width: 9, Height: 13, CellSize: size}
		for r := 0; r < m.Height; r++ {
			for c := 0; c < m.Width; c++ {
				_, _, ok := m.Cell(m.Center(c, r))
				require.False(t, ok, "cell size %d (%d, %d)", size, c, r)
			}
		}
	}

	m := Mapper{Width: 9, Height: 13, CellSize: MinCellSize}
	m.Layout(func(col, row int, center image.Point) {
		c, r, ok := m.Cell(center)
		require.True(t, ok)
		assert.Equal(t, col, c)
		assert.Equal(t, row, r)
	})
}

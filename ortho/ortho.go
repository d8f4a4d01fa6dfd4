// Package ortho maps between screen pixels and cells of a square grid.
package ortho

import "image"

const (
	baseCellSize = 30
	baseCells    = 25
	minCellSize  = 10
)

// FitCellSize returns the cell size used for a grid of the given dimensions
// so that it roughly fills the space of a 25 by 25 grid of 30 pixel cells.
func FitCellSize(width, height int) int {
	n := width
	if height > n {
		n = height
	}
	if n < 1 {
		return baseCellSize
	}
	size := int(baseCellSize / (float64(n) / baseCells))
	if size < minCellSize {
		return minCellSize
	}
	return size
}

// Mapper converts between screen and cell coordinates for a grid of Width by
// Height cells, each CellSize pixels square.
type Mapper struct {
	Width    int
	Height   int
	CellSize int
}

// Contains reports whether (col, row) is within the grid
func (m Mapper) Contains(col, row int) bool {
	return col >= 0 && col < m.Width && row >= 0 && row < m.Height
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Cell returns the cell under screen position p. If p lies outside the grid
// ok is false.
func (m Mapper) Cell(p image.Point) (col, row int, ok bool) {
	if m.CellSize <= 0 {
		return 0, 0, false
	}
	col, row = floorDiv(p.X, m.CellSize), floorDiv(p.Y, m.CellSize)
	return col, row, m.Contains(col, row)
}

// Origin returns the top-left corner of cell (col, row)
func (m Mapper) Origin(col, row int) image.Point {
	return image.Pt(col*m.CellSize, row*m.CellSize)
}

// Center returns the centre of cell (col, row)
func (m Mapper) Center(col, row int) image.Point {
	return m.Origin(col, row).Add(image.Pt(m.CellSize/2, m.CellSize/2))
}

// Rect returns the screen rectangle covered by cell (col, row)
func (m Mapper) Rect(col, row int) image.Rectangle {
	o := m.Origin(col, row)
	return image.Rectangle{o, o.Add(image.Pt(m.CellSize, m.CellSize))}
}

// Layout calls fn with the top-left corner of every cell in row-major order
func (m Mapper) Layout(fn func(col, row int, origin image.Point)) {
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			fn(col, row, m.Origin(col, row))
		}
	}
}

// Bounds returns the rectangle covering every cell
func (m Mapper) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width*m.CellSize, m.Height*m.CellSize)
}

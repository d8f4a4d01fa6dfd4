/*
Package iso maps between screen pixels and cells of an isometric, or
diamond, grid.

Cell (c, r) is drawn as a diamond centred on

	x = ox + c*h - r*h
	y = oy + c*h + r*h + h

where h is half the cell size and (ox, oy) = (width*h + h, h) is the grid
origin. Going the other way the offset from the origin is rotated by -45
degrees, which turns the diamond lattice into an axis-aligned square lattice
with a side of h*sqrt(2), so the cell falls out of a floored division.
*/
package iso

import (
	"image"
	"math"
)

// Rotation applied to screen offsets, clockwise in screen coordinates
const theta = -math.Pi / 4

// MinCellSize is the smallest cell size Cell accepts. Below it a centre
// rounded to whole pixels can land in a neighbouring diamond.
const MinCellSize = 2

// Mapper converts between screen and cell coordinates for a grid of Width by
// Height cells, each CellSize pixels across.
type Mapper struct {
	Width    int
	Height   int
	CellSize int
}

func (m Mapper) half() float64 {
	return float64(m.CellSize) / 2
}

func (m Mapper) origin() (float64, float64) {
	h := m.half()
	return float64(m.Width)*h + h, h
}

// Origin returns the grid origin in screen coordinates
func (m Mapper) Origin() image.Point {
	x, y := m.origin()
	return image.Pt(round(x), round(y))
}

func round(f float64) int {
	return int(math.Floor(f + 0.5))
}

// Contains reports whether (col, row) is within the grid
func (m Mapper) Contains(col, row int) bool {
	return col >= 0 && col < m.Width && row >= 0 && row < m.Height
}

// Center returns the screen position of the centre of cell (col, row)
func (m Mapper) Center(col, row int) image.Point {
	h := m.half()
	ox, oy := m.origin()
	c, r := float64(col), float64(row)
	return image.Pt(round(ox+c*h-r*h), round(oy+c*h+r*h+h))
}

// Cell returns the cell under screen position p. If p lies outside the grid,
// or the cell size is below MinCellSize, ok is false.
func (m Mapper) Cell(p image.Point) (col, row int, ok bool) {
	if m.CellSize < MinCellSize {
		return 0, 0, false
	}

	ox, oy := m.origin()
	x, y := float64(p.X)-ox, float64(p.Y)-oy

	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0, m.Contains(0, 0)
	}
	x, y = x/l, y/l

	sin, cos := math.Sincos(theta)
	x, y = x*cos-y*sin, x*sin+y*cos
	x, y = x*l, y*l

	side := m.half() * math.Sqrt2
	col, row = int(math.Floor(x/side)), int(math.Floor(y/side))

	return col, row, m.Contains(col, row)
}

// Layout calls fn with the centre of every cell in row-major order. Each
// position is derived from its neighbour rather than from the origin.
func (m Mapper) Layout(fn func(col, row int, center image.Point)) {
	h := m.half()
	ox, oy := m.origin()

	rx, ry := ox, oy+h
	for row := 0; row < m.Height; row++ {
		x, y := rx, ry
		for col := 0; col < m.Width; col++ {
			fn(col, row, image.Pt(round(x), round(y)))
			x += h
			y += h
		}
		rx -= h
		ry += h
	}
}

// Bounds returns the smallest rectangle covering every cell
func (m Mapper) Bounds() image.Rectangle {
	if m.Width < 1 || m.Height < 1 {
		return image.Rectangle{}
	}
	h := m.half()
	ox, oy := m.origin()
	w, ht := float64(m.Width), float64(m.Height)

	// Left corner of the last row, right corner of the last column and
	// bottom corner of the last cell
	minX := ox - ht*h
	maxX := ox + w*h
	maxY := oy + (w+ht)*h

	return image.Rect(int(math.Floor(minX)), int(math.Floor(oy)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// Diamond reports whether screen position p lies inside the diamond drawn
// for cell (col, row).
func (m Mapper) Diamond(col, row int, p image.Point) bool {
	c, r, ok := m.Cell(p)
	return ok && c == col && r == row
}

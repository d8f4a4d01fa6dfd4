/*
Package grid implements the mutable two-dimensional array of tile ids that
makes up a map.
*/
package grid

import (
	"image"

	"github.com/tussle/tiler/palette"
)

// Grid is a width by height array of tile ids stored in row-major order
type Grid struct {
	width, height int
	def           int
	cells         []int
}

// New returns a grid of the given dimensions with every cell set to def.
// Non-positive dimensions produce an empty grid.
func New(width, height, def int) *Grid {
	if width < 1 || height < 1 {
		width, height = 0, 0
	}
	g := &Grid{
		width:  width,
		height: height,
		def:    def,
		cells:  make([]int, width*height),
	}
	for i := range g.cells {
		g.cells[i] = def
	}
	return g
}

// FromImage returns a grid with one cell per pixel of m, each pixel
// classified independently against p. The grid default is p.Default().
func FromImage(m image.Image, p *palette.Palette) *Grid {
	b := m.Bounds()
	g := New(b.Dx(), b.Dy(), p.Default())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x-b.Min.X, y-b.Min.Y, p.ClassifyColor(m.At(x, y)).ID)
		}
	}
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Default returns the tile id the grid was created with
func (g *Grid) Default() int {
	return g.def
}

// Contains reports whether (col, row) is within the grid
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// At returns the tile id at (col, row)
func (g *Grid) At(col, row int) (int, bool) {
	if !g.Contains(col, row) {
		return 0, false
	}
	return g.cells[row*g.width+col], true
}

// Set stores id at (col, row). Writes outside the grid are ignored and
// reported by returning false.
func (g *Grid) Set(col, row, id int) bool {
	if !g.Contains(col, row) {
		return false
	}
	g.cells[row*g.width+col] = id
	return true
}

// Resize returns a new grid of the given dimensions filled with the default
// tile id. The contents of g are not carried over.
func (g *Grid) Resize(width, height int) *Grid {
	return New(width, height, g.def)
}

// Row returns a copy of a single row
func (g *Grid) Row(row int) []int {
	if row < 0 || row >= g.height {
		return nil
	}
	return append([]int(nil), g.cells[row*g.width:(row+1)*g.width]...)
}

// Rows returns a copy of the grid as a slice of rows
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return rows
}

// Clone returns a deep copy of g
func (g *Grid) Clone() *Grid {
	dup := *g
	dup.cells = append([]int(nil), g.cells...)
	return &dup
}

// Equal reports whether both grids have the same dimensions and contents
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(col, row, id int)) {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			fn(c, r, g.cells[r*g.width+c])
		}
	}
}

/*
Package render draws tile grids as paletted images for export.

Orthogonal grids are drawn as squares of the tile color, isometric grids as
diamonds on a transparent background. Tile ids without a palette entry are
drawn with the default tile.
*/
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/tussle/tiler/grid"
	"github.com/tussle/tiler/iso"
	"github.com/tussle/tiler/palette"
	"golang.org/x/image/draw"
)

func index(p *palette.Palette, id int) uint8 {
	if !p.Contains(id) || id > 0xff {
		return uint8(p.Default())
	}
	return uint8(id)
}

// Orthogonal returns g drawn as square cells of cellSize pixels
func Orthogonal(g *grid.Grid, p *palette.Palette, cellSize int) *image.Paletted {
	cp := p.ColorPalette()

	small := image.NewPaletted(image.Rect(0, 0, g.Width(), g.Height()), cp)
	g.Each(func(col, row, id int) {
		small.SetColorIndex(col, row, index(p, id))
	})

	if cellSize <= 1 {
		return small
	}

	dst := image.NewPaletted(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize), cp)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)

	return dst
}

// Isometric returns g drawn as diamonds positioned by m
func Isometric(g *grid.Grid, p *palette.Palette, m iso.Mapper) *image.Paletted {
	cp := append(p.ColorPalette(), color.Transparent)
	background := uint8(len(cp) - 1)

	b := m.Bounds()
	dst := image.NewPaletted(b, cp)
	for i := range dst.Pix {
		dst.Pix[i] = background
	}

	r := m.CellSize/2 + 1
	m.Layout(func(col, row int, center image.Point) {
		id, ok := g.At(col, row)
		if !ok {
			return
		}
		ci := index(p, id)
		for y := center.Y - r; y <= center.Y+r; y++ {
			for x := center.X - r; x <= center.X+r; x++ {
				pt := image.Pt(x, y)
				if pt.In(b) && m.Diamond(col, row, pt) {
					dst.SetColorIndex(x, y, ci)
				}
			}
		}
	})

	return dst
}

// Encode writes m to w as a PNG
func Encode(w io.Writer, m image.Image) error {
	return png.Encode(w, m)
}

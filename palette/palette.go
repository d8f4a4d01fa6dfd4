/*
Package palette implements the fixed set of tile types a map is painted with.

Each tile has a dense, zero-based id and a unique RGB color. Arbitrary pixels
are classified to the tile whose color is nearest by squared Euclidean
distance in RGB space. Ties are resolved in favour of the tile that appears
first in the palette, so palette order is part of the contract.
*/
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	errEmpty     = errors.New("palette: no tiles")
	errBadHex    = errors.New("palette: invalid hex color")
	errSparseIDs = errors.New("palette: tile ids must be dense and zero-based")
)

// Tile is a single palette entry
type Tile struct {
	ID    int
	Name  string
	Color color.RGBA
}

// Hex returns the color of the tile formatted as #RRGGBB
func (t Tile) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", t.Color.R, t.Color.G, t.Color.B)
}

func (t Tile) String() string {
	return fmt.Sprintf("%d %s %s", t.ID, t.Hex(), t.Name)
}

type rgb struct {
	r, g, b uint8
}

func key(c color.RGBA) rgb {
	return rgb{c.R, c.G, c.B}
}

// Palette is an immutable ordered list of tiles with a reverse lookup from
// color to tile id.
type Palette struct {
	tiles []Tile
	ids   map[rgb]int
}

// New returns a palette of the given tiles in the order given. Tile ids must
// match their position and colors must be unique.
func New(tiles ...Tile) (*Palette, error) {
	if len(tiles) == 0 {
		return nil, errEmpty
	}

	p := &Palette{
		tiles: make([]Tile, len(tiles)),
		ids:   make(map[rgb]int, len(tiles)),
	}
	for i, t := range tiles {
		if t.ID != i {
			return nil, errSparseIDs
		}
		k := key(t.Color)
		if j, ok := p.ids[k]; ok {
			return nil, fmt.Errorf("palette: tiles %d and %d share color %s", j, i, t.Hex())
		}
		t.Color.A = 0xff
		p.tiles[i] = t
		p.ids[k] = i
	}

	return p, nil
}

// MustNew is like New but panics on error
func MustNew(tiles ...Tile) *Palette {
	p, err := New(tiles...)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseHex parses a color in #RRGGBB form, the leading # is optional
func ParseHex(s string) (color.RGBA, error) {
	var c color.RGBA
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return c, errBadHex
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, errBadHex
	}
	c.A = 0xff
	return c, nil
}

// Len returns the number of tiles
func (p *Palette) Len() int {
	return len(p.tiles)
}

// Tiles returns a copy of the tiles in palette order
func (p *Palette) Tiles() []Tile {
	return append([]Tile(nil), p.tiles...)
}

// Contains reports whether id is a valid tile id
func (p *Palette) Contains(id int) bool {
	return id >= 0 && id < len(p.tiles)
}

// Default returns the id new cells are filled with and unknown ids fall
// back to; DefaultTile when the palette has it, otherwise the first tile.
func (p *Palette) Default() int {
	if p.Contains(DefaultTile) {
		return DefaultTile
	}
	return 0
}

// Lookup returns the tile with the given id
func (p *Palette) Lookup(id int) (Tile, bool) {
	if !p.Contains(id) {
		return Tile{}, false
	}
	return p.tiles[id], true
}

// IDOf returns the id of the tile with exactly the given color
func (p *Palette) IDOf(c color.Color) (int, bool) {
	id, ok := p.ids[key(toRGBA(c))]
	return id, ok
}

func toRGBA(c color.Color) color.RGBA {
	// Straight RGB, alpha is dropped
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{n.R, n.G, n.B, 0xff}
}

func sqDiff(x, y uint8) int {
	d := int(x) - int(y)
	return d * d
}

// Classify returns the tile nearest to the given color
func (p *Palette) Classify(r, g, b uint8) Tile {
	best, bestDist := 0, -1
	for i, t := range p.tiles {
		dist := sqDiff(r, t.Color.R) + sqDiff(g, t.Color.G) + sqDiff(b, t.Color.B)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
			if dist == 0 {
				break
			}
		}
	}
	return p.tiles[best]
}

// ClassifyColor is like Classify but accepts any color.Color. Transparency
// is ignored.
func (p *Palette) ClassifyColor(c color.Color) Tile {
	rgba := toRGBA(c)
	return p.Classify(rgba.R, rgba.G, rgba.B)
}

// Convert implements color.Model by snapping c to the nearest tile color
func (p *Palette) Convert(c color.Color) color.Color {
	return p.ClassifyColor(c).Color
}

// ColorPalette returns the tile colors indexed by tile id, suitable for an
// image.Paletted.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, len(p.tiles))
	for i, t := range p.tiles {
		cp[i] = t.Color
	}
	return cp
}

/*
Package tiler is a library for painting tile maps.

An Editor owns a grid of tile ids and maps pointer positions to cells for
either an orthogonal or an isometric projection. Grids move in and out as
CSV, and orthogonal grids can also be built from an image by classifying
every pixel against the palette.

An Editor is driven synchronously by its caller and is not safe for
concurrent use.
*/
package tiler

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tussle/tiler/csvmap"
	"github.com/tussle/tiler/grid"
	"github.com/tussle/tiler/iso"
	"github.com/tussle/tiler/ortho"
	"github.com/tussle/tiler/palette"
	"github.com/tussle/tiler/render"
)

// Defaults for a new Editor
const (
	DefaultWidth    = 25
	DefaultHeight   = 25
	DefaultCellSize = 30
)

var (
	errBadCellSize = errors.New("tiler: cell size too small")
	errBadTile     = errors.New("tiler: tile not in palette")
	errIsometric   = errors.New("tiler: image import needs an orthogonal grid")
)

// Variant selects the grid projection
type Variant int

// Supported variants
const (
	Orthogonal Variant = iota
	Isometric
)

func (v Variant) String() string {
	switch v {
	case Orthogonal:
		return "orthogonal"
	case Isometric:
		return "isometric"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant returns the Variant named by s
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "orthogonal", "ortho":
		return Orthogonal, nil
	case "isometric", "iso":
		return Isometric, nil
	default:
		return 0, fmt.Errorf("tiler: unknown variant %q", s)
	}
}

// Editor holds the grid being painted
type Editor struct {
	variant  Variant
	palette  *palette.Palette
	grid     *grid.Grid
	cellSize int
	selected int
	logger   logrus.FieldLogger
}

// New returns an Editor with a 25 by 25 grid of the default tile, which is
// also selected for painting.
func New(variant Variant, p *palette.Palette, logger logrus.FieldLogger) *Editor {
	def := p.Default()
	return &Editor{
		variant:  variant,
		palette:  p,
		grid:     grid.New(DefaultWidth, DefaultHeight, def),
		cellSize: DefaultCellSize,
		selected: def,
		logger:   logger.WithField("variant", variant.String()),
	}
}

// Variant returns the grid projection
func (e *Editor) Variant() Variant {
	return e.variant
}

// Palette returns the palette tiles are selected from
func (e *Editor) Palette() *palette.Palette {
	return e.palette
}

// Grid returns the current grid. It is replaced, not resized, by
// SetGridSize and the import methods.
func (e *Editor) Grid() *grid.Grid {
	return e.grid
}

// CellSize returns the current cell size in pixels
func (e *Editor) CellSize() int {
	return e.cellSize
}

// Select sets the tile used by Paint
func (e *Editor) Select(id int) error {
	tile, ok := e.palette.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %d", errBadTile, id)
	}
	e.selected = id
	e.logger.WithField("tile", tile.Name).Debug("Selected tile")
	return nil
}

// Selected returns the tile used by Paint
func (e *Editor) Selected() palette.Tile {
	tile, _ := e.palette.Lookup(e.selected)
	return tile
}

func (e *Editor) orthoMapper() ortho.Mapper {
	return ortho.Mapper{Width: e.grid.Width(), Height: e.grid.Height(), CellSize: e.cellSize}
}

func (e *Editor) isoMapper() iso.Mapper {
	return iso.Mapper{Width: e.grid.Width(), Height: e.grid.Height(), CellSize: e.cellSize}
}

// Cell returns the cell under screen position p
func (e *Editor) Cell(p image.Point) (col, row int, ok bool) {
	if e.variant == Isometric {
		return e.isoMapper().Cell(p)
	}
	return e.orthoMapper().Cell(p)
}

// Position returns where cell (col, row) is drawn; the top-left corner for
// orthogonal grids and the centre for isometric ones.
func (e *Editor) Position(col, row int) image.Point {
	if e.variant == Isometric {
		return e.isoMapper().Center(col, row)
	}
	return e.orthoMapper().Origin(col, row)
}

// Paint sets the cell under screen position p to the selected tile and
// returns where the cell is drawn. Positions outside the grid are ignored.
func (e *Editor) Paint(p image.Point) (image.Point, bool) {
	col, row, ok := e.Cell(p)
	if !ok {
		return image.Point{}, false
	}
	e.grid.Set(col, row, e.selected)
	e.logger.WithFields(logrus.Fields{
		"col":  col,
		"row":  row,
		"tile": e.selected,
	}).Debug("Painted cell")
	return e.Position(col, row), true
}

// SetGridSize replaces the grid with one of the given dimensions filled with
// the default tile. Orthogonal grids also get a cell size to suit.
func (e *Editor) SetGridSize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", errBadSize, width, height)
	}
	e.replace(e.grid.Resize(width, height))
	return nil
}

func (e *Editor) replace(g *grid.Grid) {
	e.grid = g
	if e.variant == Orthogonal {
		e.cellSize = ortho.FitCellSize(g.Width(), g.Height())
	}
	e.logger.WithFields(logrus.Fields{
		"width":     g.Width(),
		"height":    g.Height(),
		"cell_size": e.cellSize,
	}).Info("Grid replaced")
}

// ResizeFromInput is SetGridSize for user supplied text. Invalid input is
// logged and leaves the grid unchanged.
func (e *Editor) ResizeFromInput(width, height string) error {
	w, h, err := ParseGridSize(width, height)
	if err != nil {
		e.logger.Warn(err)
		return err
	}
	return e.SetGridSize(w, h)
}

// Zoom changes the cell size without touching the grid. Isometric grids
// need a cell size of at least iso.MinCellSize.
func (e *Editor) Zoom(cellSize int) error {
	smallest := 1
	if e.variant == Isometric {
		smallest = iso.MinCellSize
	}
	if cellSize < smallest {
		return fmt.Errorf("%w: %d", errBadCellSize, cellSize)
	}
	e.cellSize = cellSize
	e.logger.WithField("cell_size", cellSize).Debug("Zoomed")
	return nil
}

// Layout calls fn for every cell in row-major order with its tile id and
// the position returned by Position.
func (e *Editor) Layout(fn func(col, row, id int, p image.Point)) {
	at := func(col, row int, p image.Point) {
		id, _ := e.grid.At(col, row)
		fn(col, row, id, p)
	}
	if e.variant == Isometric {
		e.isoMapper().Layout(at)
		return
	}
	e.orthoMapper().Layout(at)
}

// ExportCSV writes the grid to w
func (e *Editor) ExportCSV(w io.Writer) error {
	if err := csvmap.Encode(w, e.grid); err != nil {
		return err
	}
	e.logger.WithFields(logrus.Fields{
		"width":  e.grid.Width(),
		"height": e.grid.Height(),
	}).Info("Exported grid")
	return nil
}

func (e *Editor) decoder() csvmap.Decoder {
	return csvmap.Decoder{
		NumTiles: e.palette.Len(),
		Fallback: e.grid.Default(),
		Strict:   e.variant == Isometric,
	}
}

// ImportCSV replaces the grid with one read from r. Orthogonal grids replace
// unknown tile ids with the default tile, isometric grids reject them. The
// grid is left alone on error.
func (e *Editor) ImportCSV(r io.Reader) error {
	g, err := e.decoder().Decode(r)
	if err != nil {
		return err
	}
	e.replace(g)
	return nil
}

// Render returns the grid drawn at the current cell size
func (e *Editor) Render() *image.Paletted {
	if e.variant == Isometric {
		return render.Isometric(e.grid, e.palette, e.isoMapper())
	}
	return render.Orthogonal(e.grid, e.palette, e.cellSize)
}

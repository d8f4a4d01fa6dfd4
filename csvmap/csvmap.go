/*
Package csvmap implements the CSV encoding of a tile grid.

The first record is a header made of an empty cell followed by X1 to Xn, one
per column. Every following record starts with Y1 to Ym and holds one tile id
per column:

	,X1,X2,X3
	Y1,1,1,4
	Y2,1,0,4
*/
package csvmap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tussle/tiler/grid"
)

var (
	errNoRows  = errors.New("csvmap: no rows")
	errNoCols  = errors.New("csvmap: no columns")
	errBadTile = errors.New("csvmap: invalid tile id")
)

// Encode writes g to w in CSV form
func Encode(w io.Writer, g *grid.Grid) error {
	cw := csv.NewWriter(w)

	header := make([]string, g.Width()+1)
	for x := 1; x <= g.Width(); x++ {
		header[x] = fmt.Sprintf("X%d", x)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, g.Width()+1)
	for y, row := range g.Rows() {
		record[0] = fmt.Sprintf("Y%d", y+1)
		for x, id := range row {
			record[x+1] = strconv.Itoa(id)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Decoder reads grids in CSV form. The zero value accepts any integer tile
// id.
type Decoder struct {
	// NumTiles bounds valid tile ids to [0, NumTiles) when non-zero
	NumTiles int
	// Fallback replaces invalid tile ids unless Strict is set
	Fallback int
	// Strict rejects the whole input on the first invalid tile id
	Strict bool
}

func (d Decoder) tile(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err == nil && (d.NumTiles == 0 || (id >= 0 && id < d.NumTiles)) {
		return id, nil
	}
	if d.Strict {
		return 0, errBadTile
	}
	return d.Fallback, nil
}

// Decode reads a grid from r. The grid dimensions are taken from the number
// of records and the width of the first one. Nothing is returned unless the
// whole input is valid.
func (d Decoder) Decode(r io.Reader) (*grid.Grid, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	// Skip the header, it also fixes the expected record width
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, errNoRows
		}
		return nil, err
	}

	var rows [][]int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 2 {
			return nil, errNoCols
		}

		row := make([]int, len(record)-1)
		for i, s := range record[1:] {
			if row[i], err = d.tile(s); err != nil {
				return nil, fmt.Errorf("%w %q at X%d Y%d", err, s, i+1, len(rows)+1)
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errNoRows
	}

	g := grid.New(len(rows[0]), len(rows), d.Fallback)
	for y, row := range rows {
		for x, id := range row {
			g.Set(x, y, id)
		}
	}

	return g, nil
}

// Decode reads a grid from r accepting any integer tile id
func Decode(r io.Reader) (*grid.Grid, error) {
	return Decoder{Strict: true}.Decode(r)
}

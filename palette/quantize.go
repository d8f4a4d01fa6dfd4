package palette

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

var errTooFewColors = errors.New("palette: need at least one color")

// FromImage suggests a palette of at most n tiles for m using median cut
// quantization. Tiles are named after their position.
func FromImage(m image.Image, n int) (*Palette, error) {
	if n < 1 {
		return nil, errTooFewColors
	}

	q := quantize.MedianCutQuantizer{}
	cp := q.Quantize(make(color.Palette, 0, n), m)

	tiles := make([]Tile, 0, len(cp))
	seen := make(map[rgb]struct{}, len(cp))
	for _, c := range cp {
		rgba := toRGBA(c)
		// The quantizer can produce duplicates for images with few colors
		if _, ok := seen[key(rgba)]; ok {
			continue
		}
		seen[key(rgba)] = struct{}{}
		tiles = append(tiles, Tile{
			ID:    len(tiles),
			Name:  fmt.Sprintf("Tile %d", len(tiles)),
			Color: rgba,
		})
	}

	return New(tiles...)
}

package tiler

import (
	"errors"
	"image"
	_ "image/gif"  // GIF support
	_ "image/jpeg" // JPEG support
	_ "image/png"  // PNG support
	"io"

	_ "github.com/go-forks/gopnm" // PBM, PGM and PPM support
	"github.com/sirupsen/logrus"
	"github.com/tussle/tiler/grid"
	_ "golang.org/x/image/bmp" // BMP support
)

var errEmptyImage = errors.New("tiler: image has no pixels")

// ImportImage replaces the grid with one cell per pixel of the image read
// from r, each classified to the nearest palette tile. Only orthogonal grids
// support this.
func (e *Editor) ImportImage(r io.Reader) error {
	if e.variant != Orthogonal {
		return errIsometric
	}

	m, format, err := image.Decode(r)
	if err != nil {
		return err
	}
	if m.Bounds().Empty() {
		return errEmptyImage
	}

	e.logger.WithFields(logrus.Fields{
		"format": format,
		"width":  m.Bounds().Dx(),
		"height": m.Bounds().Dy(),
	}).Debug("Decoded image")

	e.replace(grid.FromImage(m, e.palette))
	return nil
}

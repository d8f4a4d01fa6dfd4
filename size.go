package tiler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errBadSize = errors.New("tiler: invalid grid size")

// ParseGridSize parses the width and height of a grid as entered by a user.
// Both must be positive integers.
func ParseGridSize(width, height string) (int, int, error) {
	w, err := strconv.Atoi(strings.TrimSpace(width))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q", errBadSize, width)
	}
	h, err := strconv.Atoi(strings.TrimSpace(height))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q", errBadSize, height)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d", errBadSize, w, h)
	}
	return w, h, nil
}

package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExact(t *testing.T) {
	for _, tile := range Default.Tiles() {
		got := Default.Classify(tile.Color.R, tile.Color.G, tile.Color.B)
		assert.Equal(t, tile.ID, got.ID, tile.Name)
	}
}

func TestClassifyNearest(t *testing.T) {
	tables := []struct {
		r, g, b uint8
		id      int
	}{
		{165, 193, 245, Water},
		{0xfe, 0x01, 0xfe, Spawn},
		{0xcd, 0x00, 0x01, YesEnemy},
		{0x3c, 0x78, 0xd0, Lower},
		{255, 255, 255, Flat},
	}

	for _, table := range tables {
		assert.Equal(t, table.id, Default.Classify(table.r, table.g, table.b).ID)
	}
}

func TestClassifyTieGoesToFirst(t *testing.T) {
	p := MustNew(
		Tile{0, "black", color.RGBA{0, 0, 0, 0xff}},
		Tile{1, "grey", color.RGBA{20, 20, 20, 0xff}},
	)
	assert.Equal(t, 0, p.Classify(10, 10, 10).ID)

	p = MustNew(
		Tile{0, "grey", color.RGBA{20, 20, 20, 0xff}},
		Tile{1, "black", color.RGBA{0, 0, 0, 0xff}},
	)
	assert.Equal(t, 0, p.Classify(10, 10, 10).ID)
}

func TestClassifyColor(t *testing.T) {
	assert.Equal(t, Water, Default.ClassifyColor(color.NRGBA{165, 193, 245, 0x80}).ID)
	assert.Equal(t, Flat, Default.ClassifyColor(color.Gray{0xe0}).ID)
	assert.Equal(t, color.RGBA{0xcc, 0x00, 0x00, 0xff}, Default.Convert(color.RGBA{0xc0, 0x10, 0x10, 0xff}))
}

func TestNew(t *testing.T) {
	_, err := New()
	assert.Error(t, err)

	_, err = New(Tile{ID: 1, Color: color.RGBA{1, 2, 3, 0xff}})
	assert.Error(t, err)

	_, err = New(
		Tile{ID: 0, Color: color.RGBA{1, 2, 3, 0xff}},
		Tile{ID: 1, Color: color.RGBA{1, 2, 3, 0xff}},
	)
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	assert.Equal(t, 13, Default.Len())

	tile, ok := Default.Lookup(Water)
	require.True(t, ok)
	assert.Equal(t, "#A4C2F4", tile.Hex())
	assert.Equal(t, "Water", tile.Name)

	_, ok = Default.Lookup(13)
	assert.False(t, ok)
	_, ok = Default.Lookup(-1)
	assert.False(t, ok)

	for _, tile := range Default.Tiles() {
		id, ok := Default.IDOf(tile.Color)
		require.True(t, ok)
		assert.Equal(t, tile.ID, id)
	}
	_, ok = Default.IDOf(color.RGBA{1, 2, 3, 0xff})
	assert.False(t, ok)

	assert.Len(t, Default.ColorPalette(), 13)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#D9EAD3")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xd9, 0xea, 0xd3, 0xff}, c)

	c, err = ParseHex("46bdc6")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x46, 0xbd, 0xc6, 0xff}, c)

	for _, s := range []string{"", "#FFF", "#GGGGGG", "#1234567"} {
		_, err = ParseHex(s)
		assert.Error(t, err, s)
	}
}

func TestFromImage(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if x < 8 {
				m.Set(x, y, color.RGBA{0xff, 0, 0, 0xff})
			} else {
				m.Set(x, y, color.RGBA{0, 0, 0xff, 0xff})
			}
		}
	}

	p, err := FromImage(m, 4)
	require.NoError(t, err)
	assert.True(t, p.Len() >= 1 && p.Len() <= 4)
	for i, tile := range p.Tiles() {
		assert.Equal(t, i, tile.ID)
	}

	_, err = FromImage(m, 0)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, Flat, Default.Default())

	p := MustNew(Tile{0, "only", color.RGBA{1, 2, 3, 0xff}})
	assert.Equal(t, 0, p.Default())
}

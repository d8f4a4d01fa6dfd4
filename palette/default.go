package palette

import "image/color"

// Tile ids of the default palette
const (
	Spawn = iota
	Flat
	Ground
	GroundInt
	Water
	Lower
	Higher
	Obstacle
	Standard
	MaybeEnemy
	YesEnemy
	Random
	Bridge
)

// DefaultTile is the tile new grids are filled with and that unknown tile
// ids fall back to.
const DefaultTile = Flat

// Default is the standard thirteen tile palette
var Default = MustNew(
	Tile{Spawn, "Spawn", color.RGBA{0xff, 0x00, 0xff, 0xff}},
	Tile{Flat, "Flat", color.RGBA{0xd9, 0xea, 0xd3, 0xff}},
	Tile{Ground, "Ground", color.RGBA{0xd2, 0xc8, 0x7c, 0xff}},
	Tile{GroundInt, "Ground + Int", color.RGBA{0x93, 0xc4, 0x7d, 0xff}},
	Tile{Water, "Water", color.RGBA{0xa4, 0xc2, 0xf4, 0xff}},
	Tile{Lower, "Lower", color.RGBA{0x3c, 0x78, 0xd8, 0xff}},
	Tile{Higher, "Higher", color.RGBA{0x7d, 0x70, 0x60, 0xff}},
	Tile{Obstacle, "Obstacle", color.RGBA{0xb3, 0xa8, 0x9b, 0xff}},
	Tile{Standard, "Standard", color.RGBA{0xb7, 0xe1, 0xcd, 0xff}},
	Tile{MaybeEnemy, "Maybe Enemy", color.RGBA{0xea, 0x99, 0x99, 0xff}},
	Tile{YesEnemy, "Yes Enemy", color.RGBA{0xcc, 0x00, 0x00, 0xff}},
	Tile{Random, "Random", color.RGBA{0xe6, 0x91, 0x38, 0xff}},
	Tile{Bridge, "Bridge", color.RGBA{0x46, 0xbd, 0xc6, 0xff}},
)

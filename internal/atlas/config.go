// Package atlas bakes the block-texture sprite atlas: a fixed grid of
// procedurally painted tiles, generated deterministically from integer
// hashes so the artifact is reproducible byte-for-byte on every run.
package atlas

// Atlas geometry (in pixels). The renderer's index-to-UV lookup assumes
// exactly this layout, so the grid is compile-time fixed rather than
// configurable.
const (
	Tile = 16
	Cols = 8
	Rows = 8

	Width  = Cols * Tile
	Height = Rows * Tile
)

// Tile index layout. Indices 29-31 are left transparent here but are
// reserved by the renderer for tall grass, flower and torch cutouts;
// 42-63 are free for extension.
const (
	TileAir          = 0
	TileGrassSide    = 1
	TileGrassTop     = 2
	TileDirt         = 3
	TileStone        = 4
	TileSand         = 5
	TileWater        = 6
	TileOakBark      = 7
	TileOakTop       = 8
	TileOakLeaves    = 9
	TileCoalOre      = 10
	TileCopperOre    = 11
	TileIronOre      = 12
	TileGoldOre      = 13
	TileDiamondOre   = 14
	TileEmeraldOre   = 15
	TileGravel       = 16
	TileClay         = 17
	TileSnow         = 18
	TileIce          = 19
	TileSpruceBark   = 20
	TileSpruceTop    = 21
	TileSpruceLeaves = 22
	TileBirchBark    = 23
	TileBirchTop     = 24
	TileBirchLeaves  = 25
	TileCactusSide   = 26
	TileCactusTop    = 27
	TileSandstone    = 28
	TileTallGrass    = 29
	TileFlower       = 30
	TileTorch        = 31

	TileCrack0  = 32 // first of CrackStages consecutive damage overlays
	CrackStages = 10
)

// Per-material hash seeds. Ore tiles seed from their own tile index; the
// base materials keep the historical seeds the art was tuned against.
const (
	dirtSeed  = 31
	stoneSeed = 41
)

package atlas

import "fmt"

// entry binds a logical material to its painter and reserved tile index.
type entry struct {
	name  string
	index int
	paint Painter
}

// table is the complete atlas: one declarative row per material, executed
// top to bottom by Generate. Indices must stay stable because the block
// registry and saved worlds depend on this exact layout.
var table = buildTable()

func buildTable() []entry {
	t := []entry{
		{"air", TileAir, Solid(RGBA{})},
		{"grass_side", TileGrassSide, GrassSide()},
		{"grass_top", TileGrassTop, GrassTop()},
		{"dirt", TileDirt, Dirt(dirtSeed)},
		{"stone", TileStone, Stone(stoneSeed)},
		{"sand", TileSand, Sand()},
		{"water", TileWater, Water()},
		{"oak_bark", TileOakBark, Bark(BarkConfig{
			Light: RGBA{140, 108, 72, 255},
			Dark:  RGBA{104, 78, 50, 255},
			Knot:  RGBA{162, 126, 86, 255},
		})},
		{"oak_top", TileOakTop, LogTop(LogTopConfig{
			Outer: RGBA{176, 138, 94, 255},
			Inner: RGBA{154, 118, 80, 255},
			Ring:  RGBA{188, 152, 108, 255},
		})},
		{"oak_leaves", TileOakLeaves, Leaves(LeavesConfig{
			C0:   RGBA{64, 132, 62, 255},
			C1:   RGBA{86, 156, 80, 255},
			C2:   RGBA{44, 108, 44, 255},
			Seed: TileOakLeaves,
		})},

		{"coal_ore", TileCoalOre, Ore(OreConfig{
			A:    RGBA{58, 58, 58, 255},
			B:    RGBA{36, 36, 36, 255},
			C:    RGBA{82, 82, 82, 255},
			Seed: TileCoalOre,
		})},
		{"copper_ore", TileCopperOre, Ore(OreConfig{
			A:    RGBA{194, 116, 63, 255},
			B:    RGBA{228, 148, 83, 255},
			C:    RGBA{139, 81, 49, 255},
			Seed: TileCopperOre,
		})},
		{"iron_ore", TileIronOre, Ore(OreConfig{
			A:    RGBA{170, 138, 104, 255},
			B:    RGBA{202, 168, 128, 255},
			C:    RGBA{126, 98, 71, 255},
			Seed: TileIronOre,
		})},
		{"gold_ore", TileGoldOre, Ore(OreConfig{
			A:    RGBA{212, 171, 61, 255},
			B:    RGBA{247, 210, 100, 255},
			C:    RGBA{150, 116, 39, 255},
			Seed: TileGoldOre,
		})},
		{"diamond_ore", TileDiamondOre, Ore(OreConfig{
			A:    RGBA{94, 217, 244, 255},
			B:    RGBA{146, 242, 255, 255},
			C:    RGBA{61, 160, 190, 255},
			Seed: TileDiamondOre,
		})},
		{"emerald_ore", TileEmeraldOre, Ore(OreConfig{
			A:    RGBA{66, 195, 82, 255},
			B:    RGBA{103, 233, 121, 255},
			C:    RGBA{43, 140, 56, 255},
			Seed: TileEmeraldOre,
		})},

		{"gravel", TileGravel, Noise(NoiseConfig{
			Base: RGBA{123, 123, 126, 255},
			A:    RGBA{112, 112, 114, 255},
			B:    RGBA{137, 137, 140, 255},
		})},
		{"clay", TileClay, Noise(NoiseConfig{
			Base: RGBA{138, 158, 168, 255},
			A:    RGBA{130, 148, 157, 255},
			B:    RGBA{151, 171, 181, 255},
		})},
		{"snow", TileSnow, Noise(NoiseConfig{
			Base: RGBA{238, 242, 248, 255},
			A:    RGBA{248, 251, 255, 255},
			B:    RGBA{220, 228, 238, 255},
		})},
		{"ice", TileIce, Ice()},
		{"spruce_bark", TileSpruceBark, Bark(BarkConfig{
			Light: RGBA{96, 74, 50, 255},
			Dark:  RGBA{68, 52, 34, 255},
			Knot:  RGBA{118, 92, 62, 255},
		})},
		{"spruce_top", TileSpruceTop, LogTop(LogTopConfig{
			Outer: RGBA{126, 102, 70, 255},
			Inner: RGBA{102, 80, 56, 255},
			Ring:  RGBA{146, 122, 86, 255},
		})},
		{"spruce_leaves", TileSpruceLeaves, Leaves(LeavesConfig{
			C0:   RGBA{42, 88, 50, 255},
			C1:   RGBA{62, 118, 70, 255},
			C2:   RGBA{30, 64, 36, 255},
			Seed: TileSpruceLeaves,
		})},
		{"birch_bark", TileBirchBark, BirchBark()},
		{"birch_top", TileBirchTop, LogTop(LogTopConfig{
			Outer: RGBA{204, 184, 146, 255},
			Inner: RGBA{182, 162, 126, 255},
			Ring:  RGBA{222, 204, 164, 255},
		})},
		{"birch_leaves", TileBirchLeaves, Leaves(LeavesConfig{
			C0:   RGBA{78, 134, 64, 255},
			C1:   RGBA{108, 168, 86, 255},
			C2:   RGBA{60, 106, 48, 255},
			Seed: TileBirchLeaves,
		})},
		{"cactus_side", TileCactusSide, CactusSide()},
		{"cactus_top", TileCactusTop, CactusTop()},
		{"sandstone", TileSandstone, Noise(NoiseConfig{
			Base: RGBA{220, 198, 144, 255},
			A:    RGBA{206, 184, 130, 255},
			B:    RGBA{190, 166, 114, 255},
		})},
	}

	for s := 0; s < CrackStages; s++ {
		t = append(t, entry{
			name:  fmt.Sprintf("crack_%d", s),
			index: TileCrack0 + s,
			paint: Crack(s),
		})
	}
	return t
}

// Generate paints every material into a fresh canvas. The job is a
// bounded synchronous batch; each entry writes only its own tile
// rectangle, so a defective painter can corrupt at most its own tile.
func Generate() *Canvas {
	c := NewCanvas()
	for _, e := range table {
		e.paint(c.Tile(e.index), e.index)
	}
	return c
}

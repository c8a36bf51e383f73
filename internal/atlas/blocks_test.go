package atlas

import "testing"

func TestBlockTilesInRange(t *testing.T) {
	for id, def := range Blocks {
		for _, tile := range []int{def.SideTile, def.TopTile, def.BottomTile} {
			if tile < 0 || tile >= Cols*Rows {
				t.Errorf("block %d references tile %d outside the atlas", id, tile)
			}
		}
	}
}

func TestGrassFaces(t *testing.T) {
	def := Blocks[BlockGrass]
	if def.SideTile != TileGrassSide || def.TopTile != TileGrassTop || def.BottomTile != TileDirt {
		t.Fatalf("grass faces = %d/%d/%d, want %d/%d/%d",
			def.SideTile, def.TopTile, def.BottomTile,
			TileGrassSide, TileGrassTop, TileDirt)
	}
}

func TestBlockFlags(t *testing.T) {
	if Blocks[BlockAir].Solid {
		t.Error("air must not be solid")
	}
	if !Blocks[BlockAir].Transparent {
		t.Error("air must be transparent")
	}
	for _, id := range []BlockID{BlockWater, BlockLeaves, BlockSpruceLeaves, BlockBirchLeaves, BlockTallGrass, BlockFlower, BlockTorch} {
		if !Blocks[id].Transparent {
			t.Errorf("block %d must be transparent", id)
		}
	}
	for _, id := range []BlockID{BlockStone, BlockDirt, BlockIce, BlockSandstone} {
		if Blocks[id].Transparent {
			t.Errorf("block %d must be opaque", id)
		}
	}
}

// The cross-shaped sprites sample the reserved tiles the generator
// leaves blank.
func TestCrossBlocksUseReservedTiles(t *testing.T) {
	cases := map[BlockID]int{
		BlockTallGrass: TileTallGrass,
		BlockFlower:    TileFlower,
		BlockTorch:     TileTorch,
	}
	for id, tile := range cases {
		def := Blocks[id]
		if def.SideTile != tile || def.TopTile != tile || def.BottomTile != tile {
			t.Errorf("block %d faces = %d/%d/%d, want all %d",
				id, def.SideTile, def.TopTile, def.BottomTile, tile)
		}
	}
}

// Material painters and the registry share one package; a block entry
// must resolve to the same tile its painter fills.
func TestBlockStoneMatchesStonePainter(t *testing.T) {
	def := Blocks[BlockStone]
	if def.SideTile != TileStone {
		t.Fatalf("stone block samples tile %d, want %d", def.SideTile, TileStone)
	}
	c := paintTile(Stone(stoneSeed), def.SideTile)
	g := Generate()
	for y := 0; y < Tile; y++ {
		for x := 0; x < Tile; x++ {
			if got, want := tilePixel(g, def.SideTile, x, y), tilePixel(c, def.SideTile, x, y); got != want {
				t.Fatalf("atlas stone pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

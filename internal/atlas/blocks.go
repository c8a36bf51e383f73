package atlas

// BlockID identifies a logical block type in the game.
type BlockID uint16

const (
	BlockAir BlockID = iota
	BlockGrass
	BlockDirt
	BlockStone
	BlockSand
	BlockWater
	BlockWood
	BlockLeaves
	BlockCoalOre
	BlockCopperOre
	BlockIronOre
	BlockGoldOre
	BlockDiamondOre
	BlockEmeraldOre
	BlockGravel
	BlockClay
	BlockSnow
	BlockIce
	BlockSpruceWood
	BlockSpruceLeaves
	BlockBirchWood
	BlockBirchLeaves
	BlockCactus
	BlockSandstone
	BlockTallGrass
	BlockFlower
	BlockTorch
)

// BlockDef tells the renderer how to draw one block: which atlas tile
// each face samples, and whether the block occludes its neighbours.
type BlockDef struct {
	Solid       bool
	Transparent bool
	SideTile    int
	TopTile     int
	BottomTile  int
}

// Blocks is the block registry keyed by BlockID. Grass is the only
// block with three distinct faces; most reuse one tile all around.
var Blocks = map[BlockID]BlockDef{
	BlockAir:          {Solid: false, Transparent: true},
	BlockGrass:        {Solid: true, SideTile: TileGrassSide, TopTile: TileGrassTop, BottomTile: TileDirt},
	BlockDirt:         {Solid: true, SideTile: TileDirt, TopTile: TileDirt, BottomTile: TileDirt},
	BlockStone:        {Solid: true, SideTile: TileStone, TopTile: TileStone, BottomTile: TileStone},
	BlockSand:         {Solid: true, SideTile: TileSand, TopTile: TileSand, BottomTile: TileSand},
	BlockWater:        {Solid: true, Transparent: true, SideTile: TileWater, TopTile: TileWater, BottomTile: TileWater},
	BlockWood:         {Solid: true, SideTile: TileOakBark, TopTile: TileOakTop, BottomTile: TileOakTop},
	BlockLeaves:       {Solid: true, Transparent: true, SideTile: TileOakLeaves, TopTile: TileOakLeaves, BottomTile: TileOakLeaves},
	BlockCoalOre:      {Solid: true, SideTile: TileCoalOre, TopTile: TileCoalOre, BottomTile: TileCoalOre},
	BlockCopperOre:    {Solid: true, SideTile: TileCopperOre, TopTile: TileCopperOre, BottomTile: TileCopperOre},
	BlockIronOre:      {Solid: true, SideTile: TileIronOre, TopTile: TileIronOre, BottomTile: TileIronOre},
	BlockGoldOre:      {Solid: true, SideTile: TileGoldOre, TopTile: TileGoldOre, BottomTile: TileGoldOre},
	BlockDiamondOre:   {Solid: true, SideTile: TileDiamondOre, TopTile: TileDiamondOre, BottomTile: TileDiamondOre},
	BlockEmeraldOre:   {Solid: true, SideTile: TileEmeraldOre, TopTile: TileEmeraldOre, BottomTile: TileEmeraldOre},
	BlockGravel:       {Solid: true, SideTile: TileGravel, TopTile: TileGravel, BottomTile: TileGravel},
	BlockClay:         {Solid: true, SideTile: TileClay, TopTile: TileClay, BottomTile: TileClay},
	BlockSnow:         {Solid: true, SideTile: TileSnow, TopTile: TileSnow, BottomTile: TileSnow},
	BlockIce:          {Solid: true, SideTile: TileIce, TopTile: TileIce, BottomTile: TileIce},
	BlockSpruceWood:   {Solid: true, SideTile: TileSpruceBark, TopTile: TileSpruceTop, BottomTile: TileSpruceTop},
	BlockSpruceLeaves: {Solid: true, Transparent: true, SideTile: TileSpruceLeaves, TopTile: TileSpruceLeaves, BottomTile: TileSpruceLeaves},
	BlockBirchWood:    {Solid: true, SideTile: TileBirchBark, TopTile: TileBirchTop, BottomTile: TileBirchTop},
	BlockBirchLeaves:  {Solid: true, Transparent: true, SideTile: TileBirchLeaves, TopTile: TileBirchLeaves, BottomTile: TileBirchLeaves},
	BlockCactus:       {Solid: true, SideTile: TileCactusSide, TopTile: TileCactusTop, BottomTile: TileCactusTop},
	BlockSandstone:    {Solid: true, SideTile: TileSandstone, TopTile: TileSandstone, BottomTile: TileSandstone},
	BlockTallGrass:    {Solid: true, Transparent: true, SideTile: TileTallGrass, TopTile: TileTallGrass, BottomTile: TileTallGrass},
	BlockFlower:       {Solid: true, Transparent: true, SideTile: TileFlower, TopTile: TileFlower, BottomTile: TileFlower},
	BlockTorch:        {Solid: true, Transparent: true, SideTile: TileTorch, TopTile: TileTorch, BottomTile: TileTorch},
}

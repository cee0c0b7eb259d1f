// internal/defs/blocks.go
package defs

import (
	"fmt"
	"strings"
)

// BlockType is the material of a fortress cell.
type BlockType int

const (
	BlockEmpty BlockType = iota
	BlockStone
	BlockIron
	BlockGold
	BlockSilver
	BlockDiamond
	BlockWindow
	BlockRoof
	BlockTreasureChest
)

var blockTypeNames = [...]string{
	BlockEmpty:         "empty",
	BlockStone:         "stone",
	BlockIron:          "iron",
	BlockGold:          "gold",
	BlockSilver:        "silver",
	BlockDiamond:       "diamond",
	BlockWindow:        "window",
	BlockRoof:          "roof",
	BlockTreasureChest: "treasurechest",
}

// Layout glyphs, one per block type.
var blockGlyphs = [...]byte{
	BlockEmpty:         '.',
	BlockStone:         'S',
	BlockIron:          'I',
	BlockGold:          'G',
	BlockSilver:        'V',
	BlockDiamond:       'D',
	BlockWindow:        'W',
	BlockRoof:          'R',
	BlockTreasureChest: 'T',
}

func (t BlockType) String() string {
	if t < 0 || int(t) >= len(blockTypeNames) {
		return fmt.Sprintf("BlockType(%d)", int(t))
	}
	return blockTypeNames[t]
}

// Glyph returns the layout character for t.
func (t BlockType) Glyph() byte {
	if t < 0 || int(t) >= len(blockGlyphs) {
		return '?'
	}
	return blockGlyphs[t]
}

func (t BlockType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(blockTypeNames) {
		return nil, fmt.Errorf("unknown block type %d", int(t))
	}
	return []byte(blockTypeNames[t]), nil
}

func (t *BlockType) UnmarshalText(b []byte) error {
	parsed, err := ParseBlockType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseBlockType accepts the lower-case name, case-insensitively.
func ParseBlockType(name string) (BlockType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range blockTypeNames {
		if n == name {
			return BlockType(i), nil
		}
	}
	return BlockEmpty, fmt.Errorf("unknown block type %q", name)
}

// BlockTypeFromGlyph maps a layout character to its block type.
func BlockTypeFromGlyph(g byte) (BlockType, bool) {
	for i, c := range blockGlyphs {
		if c == g {
			return BlockType(i), true
		}
	}
	return BlockEmpty, false
}

// BlockDefinition holds the static stats of one block type.
type BlockDefinition struct {
	Type     BlockType `json:"type"`
	MaxHP    int       `json:"max_hp"`
	CoinDrop int       `json:"coin_drop"`
}

// BlockLibrary maps every placeable block type to its stats.
type BlockLibrary map[BlockType]BlockDefinition

// DefaultBlocks returns the built-in block stats.
func DefaultBlocks() BlockLibrary {
	return BlockLibrary{
		BlockStone:         {Type: BlockStone, MaxHP: 2, CoinDrop: 0},
		BlockIron:          {Type: BlockIron, MaxHP: 4, CoinDrop: 3},
		BlockGold:          {Type: BlockGold, MaxHP: 3, CoinDrop: 5},
		BlockSilver:        {Type: BlockSilver, MaxHP: 3, CoinDrop: 4},
		BlockDiamond:       {Type: BlockDiamond, MaxHP: 6, CoinDrop: 8},
		BlockWindow:        {Type: BlockWindow, MaxHP: 1, CoinDrop: 0},
		BlockRoof:          {Type: BlockRoof, MaxHP: 2, CoinDrop: 0},
		BlockTreasureChest: {Type: BlockTreasureChest, MaxHP: 4, CoinDrop: 20},
	}
}

// Lookup returns the definition for t. Types missing from the library fall
// back to the built-in stats.
func (l BlockLibrary) Lookup(t BlockType) (BlockDefinition, bool) {
	if def, ok := l[t]; ok {
		return def, true
	}
	def, ok := DefaultBlocks()[t]
	return def, ok
}

// Validate checks the invariants of a single definition.
func (d BlockDefinition) Validate() error {
	if d.Type == BlockEmpty {
		return fmt.Errorf("block definition for %s: empty cells have no stats", d.Type)
	}
	if d.MaxHP <= 0 {
		return fmt.Errorf("block definition for %s: max_hp must be positive, got %d", d.Type, d.MaxHP)
	}
	if d.CoinDrop < 0 {
		return fmt.Errorf("block definition for %s: coin_drop must not be negative, got %d", d.Type, d.CoinDrop)
	}
	return nil
}

// internal/component/block.go
package component

import (
	"go-siege/internal/defs"
	"go-siege/internal/types"
)

// Block is one destructible fortress cell. Blocks never move, so the
// position lives on the component.
type Block struct {
	ID        types.EntityID
	Type      defs.BlockType
	MaxHP     int
	CurrentHP int
	CoinDrop  int
	Position  Position // cell centre
	Cell      [2]int   // layout coordinates
	Destroyed bool
}

// DamagePercent is 0 for an intact block and 1 for a destroyed one.
func (b *Block) DamagePercent() float64 {
	if b.MaxHP <= 0 {
		return 1
	}
	p := 1 - float64(b.CurrentHP)/float64(b.MaxHP)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// internal/system/fortress.go
package system

import (
	"log"

	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/defs"
	"go-siege/internal/entity"
	"go-siege/pkg/utils"
)

// FortressSystem turns a layout into block entities.
type FortressSystem struct {
	ecs    *entity.ECS
	blocks defs.BlockLibrary
}

func NewFortressSystem(ecs *entity.ECS, blocks defs.BlockLibrary) *FortressSystem {
	if blocks == nil {
		blocks = defs.DefaultBlocks()
	}
	return &FortressSystem{ecs: ecs, blocks: blocks}
}

// Teardown removes every block without destruction side effects.
func (s *FortressSystem) Teardown() {
	s.ecs.ClearBlocks()
}

// Build instantiates layout so that its lower-right cell is centred on spawn.
// Empty cells are skipped. It returns the number of blocks created.
func (s *FortressSystem) Build(layout defs.FortressLayout, spawn utils.Vec2) int {
	created := 0
	w := layout.Width()
	for y := 0; y < layout.Height(); y++ {
		for x := 0; x < w; x++ {
			t := layout.Cell(x, y)
			if t == defs.BlockEmpty {
				continue
			}
			def, ok := s.blocks.Lookup(t)
			if !ok {
				log.Printf("FortressSystem: no stats for %s at (%d,%d), skipping", t, x, y)
				continue
			}
			s.ecs.AddBlock(component.Block{
				Type:      t,
				MaxHP:     def.MaxHP,
				CurrentHP: def.MaxHP,
				CoinDrop:  def.CoinDrop,
				Position:  CellCentre(spawn, w, x, y),
				Cell:      [2]int{x, y},
			})
			created++
		}
	}
	return created
}

// CellCentre returns the world centre of layout cell (x,y) for a fortress of
// the given width anchored at spawn.
func CellCentre(spawn utils.Vec2, width, x, y int) utils.Vec2 {
	return utils.Vec2{
		X: spawn.X + float64(x-(width-1))*config.CellSize,
		Y: spawn.Y + float64(y)*config.CellSize,
	}
}

// BlockBounds returns the axis-aligned box of a block centred at pos.
func BlockBounds(pos utils.Vec2) (min, max utils.Vec2) {
	h := config.CellSize / 2
	return utils.Vec2{X: pos.X - h, Y: pos.Y - h}, utils.Vec2{X: pos.X + h, Y: pos.Y + h}
}

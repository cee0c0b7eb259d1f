// pkg/render/fortress_renderer.go
package render

import (
	"image/color"
	"math"

	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/defs"
	"go-siege/internal/entity"
	"go-siege/internal/interfaces"
	"go-siege/internal/types"
	iutils "go-siege/internal/utils"
	"go-siege/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FortressRenderer draws the battlefield. It also listens for damage
// signals so that hit blocks flash briefly.
type FortressRenderer struct {
	interfaces.NopSink

	colors     *SceneColors
	background *ebiten.Image // sky and ground, rendered once
	flashes    map[types.EntityID]*component.DamageFlash

	barrel    float64 // drawn barrel angle, eased toward the aim
	barrelSet bool
}

const barrelEase = 0.35

func NewFortressRenderer(colors *SceneColors) *FortressRenderer {
	return &FortressRenderer{
		colors:  colors,
		flashes: make(map[types.EntityID]*component.DamageFlash),
	}
}

func (r *FortressRenderer) OnDamage(block component.Block, _ float64) {
	r.flashes[block.ID] = &component.DamageFlash{Duration: config.DamageFlashDuration}
}

func (r *FortressRenderer) OnBlockDestroyed(block component.Block) {
	delete(r.flashes, block.ID)
}

// Update advances the hit flashes.
func (r *FortressRenderer) Update(deltaTime float64) {
	for id, f := range r.flashes {
		f.Timer += deltaTime
		if f.Done() {
			delete(r.flashes, id)
		}
	}
}

// Flashing reports whether the block is currently drawn in the hit colour.
func (r *FortressRenderer) Flashing(id types.EntityID) bool {
	_, ok := r.flashes[id]
	return ok
}

func (r *FortressRenderer) renderBackground() {
	r.background = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	r.background.Fill(r.colors.Sky)
	vector.DrawFilledRect(r.background, 0, config.GroundScreenY, config.ScreenWidth,
		config.ScreenHeight-config.GroundScreenY, r.colors.Ground, false)
}

// Draw renders the scene. aim is the cannon's aim direction.
func (r *FortressRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, coins []component.CoinPickup, aim utils.Vec2) {
	if r.background == nil {
		r.renderBackground()
	}
	screen.DrawImage(r.background, nil)

	r.drawBlocks(screen, ecs)
	r.drawTurrets(screen, ecs)
	r.drawCannon(screen, ecs, aim)
	r.drawProjectiles(screen, ecs)
	for _, c := range coins {
		x, y := WorldToScreen(c.Position)
		vector.DrawFilledCircle(screen, x, y, Units(0.18), r.colors.Coin, true)
	}
}

func (r *FortressRenderer) drawBlocks(screen *ebiten.Image, ecs *entity.ECS) {
	size := Units(config.CellSize)
	for _, id := range ecs.BlockIDs() {
		b := ecs.Blocks[id]
		x, y := WorldToScreen(b.Position)
		x, y = x-size/2, y-size/2

		fill := DamagedColor(BlockColors[b.Type], b.DamagePercent())
		if f, ok := r.flashes[id]; ok {
			fill = MixColor(r.colors.Flash, fill, f.Timer/f.Duration)
		}
		vector.DrawFilledRect(screen, x, y, size, size, fill, false)

		stroke := DarkenColor(fill, 0.6)
		if b.Type == defs.BlockTreasureChest {
			stroke = r.colors.Coin
		}
		vector.StrokeRect(screen, x, y, size, size, r.colors.StrokeWidth, stroke, false)
	}
}

func (r *FortressRenderer) drawTurrets(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.TurretIDs() {
		x, y := WorldToScreen(ecs.Turrets[id].Position)
		vector.DrawFilledCircle(screen, x, y, Units(0.35), r.colors.Turret, true)
		vector.StrokeCircle(screen, x, y, Units(0.35), r.colors.StrokeWidth, r.colors.HostileShot, true)
	}
}

func (r *FortressRenderer) drawCannon(screen *ebiten.Image, ecs *entity.ECS, aim utils.Vec2) {
	c := ecs.Cannon
	x, y := WorldToScreen(c.Position)
	tip := c.Position.Add(r.barrelDirection(aim).Scale(config.MuzzleLength))
	tx, ty := WorldToScreen(tip)
	vector.StrokeLine(screen, x, y, tx, ty, Units(0.25), r.colors.Cannon, true)
	vector.DrawFilledCircle(screen, x, y, Units(0.45), r.colors.Cannon, true)

	eco := ecs.Economy
	if eco.ShieldUnlocked && eco.ShieldCurrentHP > 0 {
		vector.StrokeCircle(screen, x, y, Units(config.CannonHitRadius), r.colors.StrokeWidth, config.ShieldColor, true)
	}
}

// barrelDirection eases the drawn barrel toward aim along the shorter arc.
func (r *FortressRenderer) barrelDirection(aim utils.Vec2) utils.Vec2 {
	if aim.Len() > 0 {
		target := aim.Angle()
		if !r.barrelSet {
			r.barrel, r.barrelSet = target, true
		} else {
			r.barrel = iutils.LerpAngle(r.barrel, target, barrelEase)
		}
	}
	return utils.Vec2{X: math.Cos(r.barrel), Y: math.Sin(r.barrel)}
}

func (r *FortressRenderer) drawProjectiles(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.ProjectileIDs() {
		p := ecs.Projectiles[id]
		x, y := WorldToScreen(*ecs.Positions[id])
		var clr color.RGBA
		radius := config.ProjectileRadius
		switch {
		case p.Hostile:
			clr = r.colors.HostileShot
		case p.Weak:
			clr = config.ProjectileColors[defs.TierStandard]
			radius *= 0.6
		default:
			clr = config.ProjectileColors[p.Tier]
		}
		vector.DrawFilledCircle(screen, x, y, Units(radius), clr, true)
	}
}

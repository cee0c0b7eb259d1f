// internal/system/projectile.go
package system

import (
	"go-siege/internal/component"
	"go-siege/internal/config"
	"go-siege/internal/defs"
	"go-siege/internal/entity"
	"go-siege/internal/event"
	"go-siege/internal/types"
	"go-siege/pkg/utils"
)

// ProjectileSystem fires, moves and resolves cannonballs.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	damageSystem    *DamageSystem
	ledger          *Ledger
	tiers           defs.TierTable
	gravity         float64
	wind            float64
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, damageSystem *DamageSystem, ledger *Ledger, tiers defs.TierTable) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		damageSystem:    damageSystem,
		ledger:          ledger,
		tiers:           tiers,
		gravity:         config.Gravity,
	}
}

// SetEnvironment applies the level's gravity toggle and horizontal wind.
func (s *ProjectileSystem) SetEnvironment(hasGravity bool, wind float64) {
	s.gravity = 0
	if hasGravity {
		s.gravity = config.Gravity
	}
	s.wind = wind
}

// Fire launches a player shot from origin. It is a no-op outside the Active
// phase, while the relevant cooldown runs, or for a zero direction. The
// requested tier is clamped to the unlocked one. Without ammo a weak shot is
// fired instead.
func (s *ProjectileSystem) Fire(origin, direction utils.Vec2, requested defs.Tier) bool {
	if s.ecs.Session.Phase != component.PhaseActive {
		return false
	}
	dir := direction.Normalize()
	if dir.Len() == 0 {
		return false
	}

	cannon := s.ecs.Cannon
	now := s.ecs.GameTime
	cannon.Angle = dir.Angle()

	if s.ecs.Economy.AmmoCurrent <= 0 {
		if now < cannon.LastWeakFire+config.WeakShotCooldown {
			return false
		}
		cannon.LastWeakFire = now
		def := s.tiers.Get(defs.TierStandard)
		s.spawn(origin, dir.Scale(def.Speed), component.Projectile{
			Damage:       config.WeakShotDamage,
			Tier:         defs.TierStandard,
			GravityScale: def.GravityScale,
			Weak:         true,
		})
		s.shotFired(origin, dir, defs.TierStandard, true)
		return true
	}

	if now < cannon.LastFireTime+s.ledger.FireCooldown() {
		return false
	}
	if !s.ledger.ConsumeAmmo() {
		return false
	}
	cannon.LastFireTime = now

	tier := min(max(requested, defs.TierStandard), s.ledger.AmmoTier())
	def := s.tiers.Get(tier)
	proj := component.Projectile{
		Damage:       s.ledger.Damage() * def.DamageMultiplier,
		Tier:         tier,
		GravityScale: def.GravityScale,
	}
	if def.SplashRadius > 0 {
		proj.SplashRadius = def.SplashRadius
		proj.SplashFraction = config.SplashFraction
	}

	if s.ledger.DoubleBarrel() {
		s.spawn(origin, dir.Rotate(config.DoubleBarrelSpread).Scale(def.Speed), proj)
		s.spawn(origin, dir.Rotate(-config.DoubleBarrelSpread).Scale(def.Speed), proj)
	} else {
		s.spawn(origin, dir.Scale(def.Speed), proj)
	}
	s.shotFired(origin, dir, tier, false)
	return true
}

// SpawnHostile fires a straight shot from origin at the cannon.
func (s *ProjectileSystem) SpawnHostile(origin utils.Vec2, damage int) types.EntityID {
	dir := s.ecs.Cannon.Position.Sub(origin).Normalize()
	return s.spawn(origin, dir.Scale(config.HostileProjectileSpeed), component.Projectile{
		Damage:  damage,
		Hostile: true,
	})
}

func (s *ProjectileSystem) spawn(origin utils.Vec2, vel utils.Vec2, proj component.Projectile) types.EntityID {
	proj.RemainingLifetime = config.ProjectileLifetime
	return s.ecs.AddProjectile(proj, origin, vel)
}

func (s *ProjectileSystem) shotFired(origin, dir utils.Vec2, tier defs.Tier, weak bool) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotData{Origin: origin, Direction: dir, Tier: tier, Weak: weak},
	})
}

// Clear removes every live projectile.
func (s *ProjectileSystem) Clear() {
	s.ecs.ClearProjectiles()
}

// Update advances projectiles in ascending ID order and resolves at most one
// collision per projectile.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		pos, vel := s.ecs.Positions[id], s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			s.ecs.RemoveProjectile(id)
			continue
		}

		vel.Y -= s.gravity * proj.GravityScale * deltaTime
		if !proj.Hostile {
			vel.X += s.wind * deltaTime
		}
		from := *pos
		to := from.Add(vel.Scale(deltaTime))
		*pos = to
		// Only the part of the step the projectile is still alive for can hit.
		reach := to
		if life := proj.RemainingLifetime; life < deltaTime {
			reach = from.Add(vel.Scale(max(0, life)))
		}
		proj.RemainingLifetime -= deltaTime

		if proj.Hostile {
			s.updateHostile(id, proj, from, reach)
			continue
		}

		if hitID, t, hit := s.sweep(from, reach); hit {
			point := from.Add(reach.Sub(from).Scale(t))
			*pos = point
			s.impact(id, proj, hitID, point)
			continue
		}

		if to.Y < config.GroundY || proj.RemainingLifetime <= 0 {
			s.ecs.RemoveProjectile(id)
		}
	}
}

// sweep finds the block whose box the segment enters first. Ties go to the
// lower ID.
func (s *ProjectileSystem) sweep(from, to utils.Vec2) (types.EntityID, float64, bool) {
	var (
		bestID types.EntityID
		bestT  float64
		found  bool
	)
	for _, id := range s.ecs.BlockIDs() {
		block := s.ecs.Blocks[id]
		lo, hi := BlockBounds(block.Position)
		t, ok := utils.SegmentAABB(from, to, lo, hi)
		if !ok {
			continue
		}
		if !found || t < bestT {
			bestID, bestT, found = id, t, true
		}
	}
	return bestID, bestT, found
}

func (s *ProjectileSystem) impact(id types.EntityID, proj *component.Projectile, hitID types.EntityID, point utils.Vec2) {
	s.ecs.RemoveProjectile(id)
	s.damageSystem.ApplyDamage(hitID, proj.Damage)
	if proj.SplashRadius > 0 {
		s.damageSystem.ApplySplash(point, proj.SplashRadius, proj.Damage, proj.SplashFraction, hitID)
	}
}

func (s *ProjectileSystem) updateHostile(id types.EntityID, proj *component.Projectile, from, to utils.Vec2) {
	if utils.SegmentPointDist(from, to, s.ecs.Cannon.Position) <= config.CannonHitRadius {
		s.ecs.RemoveProjectile(id)
		s.ledger.AbsorbHit(proj.Damage)
		return
	}
	if to.Y < config.GroundY || proj.RemainingLifetime <= 0 {
		s.ecs.RemoveProjectile(id)
	}
}

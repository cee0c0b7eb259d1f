// internal/component/projectile.go
package component

import "go-siege/internal/defs"

// Projectile is a live cannonball. Position and velocity are stored in the
// ECS movement maps.
type Projectile struct {
	Damage            int
	Tier              defs.Tier
	RemainingLifetime float64
	GravityScale      float64
	SplashRadius      float64 // zero disables splash
	SplashFraction    float64
	Weak              bool // out-of-ammo fallback shot
	Hostile           bool // fired by a turret, collides with the cannon only
}

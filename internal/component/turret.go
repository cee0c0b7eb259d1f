// internal/component/turret.go
package component

// Cannon is the player's gun. Fire times are compared against ECS.GameTime.
type Cannon struct {
	Position     Position
	Angle        float64 // radians, for presentation
	LastFireTime float64
	LastWeakFire float64
}

// HostileTurret shoots straight at the cannon while a level is active.
type HostileTurret struct {
	Position     Position
	FireInterval float64
	Damage       int
	Timer        float64 // time since the last shot
}

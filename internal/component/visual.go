// internal/component/visual.go
package component

// DamageFlash marks an entity to be drawn in the hit colour.
type DamageFlash struct {
	Timer    float64
	Duration float64
}

// Done reports whether the flash has run its course.
func (f *DamageFlash) Done() bool { return f.Timer >= f.Duration }

// CoinPickup is a tossed coin waiting to be collected.
type CoinPickup struct {
	Position Position
	Velocity Velocity
	Age      float64
	Resting  bool
}

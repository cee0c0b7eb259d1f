// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1200
	ScreenHeight  = 900
	MaxDeltaTime  = 0.06
	ClickCooldown = 300 // ms

	// World is measured in fortress cells, y up.
	CellSize      = 1.0
	PixelsPerUnit = 32.0
	GroundY       = 0.0
	GroundScreenY = ScreenHeight - 120

	Gravity            = 9.81
	ProjectileLifetime = 5.0
	ProjectileRadius   = 0.15 // world units, visual only
	SplashFraction     = 0.5

	CannonX         = 3.0
	CannonY         = 0.75
	CannonHitRadius = 0.8
	MuzzleLength    = 1.0

	BaseDamage         = 1
	BaseFireCooldown   = 0.5
	WeakShotDamage     = 1
	WeakShotCooldown   = 1.0
	DoubleBarrelSpread = 0.06 // radians each side
	BaseAmmoMax        = 10
	BaseHullHP         = 3

	HostileProjectileSpeed = 8.0

	LaunchDelay        = 0.15
	CountdownThreshold = 5
	CoinSpawnInterval  = 0.1
	GatheringDuration  = 5.0

	// Coin pickups (presentation).
	CoinTossMinX       = -2.0
	CoinTossMaxX       = 2.0
	CoinTossMinY       = 4.0
	CoinTossMaxY       = 7.0
	CoinBounce         = 0.4
	CoinAutoCollectAge = 1.5
	CoinCollectRadius  = 0.6

	DamageFlashDuration = 0.15

	TextCharWidth = 7
	TextOffsetY   = 4
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	SkyColor         = color.RGBA{38, 52, 78, 255}
	GroundColor      = color.RGBA{62, 84, 48, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	CannonColor      = color.RGBA{90, 90, 100, 255}
	CoinColor        = color.RGBA{255, 215, 0, 255}
	ShieldColor      = color.RGBA{80, 170, 255, 255}
	HullColor        = color.RGBA{220, 60, 60, 255}
	HostileShotColor = color.RGBA{255, 90, 40, 255}
	TurretColor      = color.RGBA{130, 40, 40, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonDisabled   = color.RGBA{80, 80, 90, 200}
	StrokeWidth      = 2.0

	// Indexed by component.Phase.
	PhaseColors = []color.RGBA{
		{120, 120, 140, 220}, // MainMenu
		{70, 130, 180, 220},  // Preparing
		{50, 180, 80, 220},   // Active
		{255, 215, 0, 220},   // Resolving
		{220, 60, 60, 220},   // Failed
	}

	// Indexed by defs.Tier.
	ProjectileColors = []color.RGBA{
		{230, 230, 230, 255}, // Standard
		{160, 160, 190, 255}, // Heavy
		{255, 120, 40, 255},  // Explosive
	}
)

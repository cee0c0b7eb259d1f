// internal/defs/levels.go
package defs

import (
	"errors"
	"fmt"

	"go-siege/pkg/utils"
)

// ErrLevelNotFound is returned when no configuration exists for a level index.
var ErrLevelNotFound = errors.New("level configuration not found")

// EnemySpawn places a hostile turret next to the fortress.
type EnemySpawn struct {
	Position     utils.Vec2 `json:"position"`
	FireInterval float64    `json:"fire_interval"` // seconds between shots
	Damage       int        `json:"damage"`
}

// LevelConfig holds everything needed to start one level.
type LevelConfig struct {
	Number        int            `json:"number"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Layout        FortressLayout `json:"layout"`
	SpawnPosition utils.Vec2     `json:"spawn_position"` // centre of the lower-right cell
	ObjectiveType BlockType      `json:"objective_type"`
	HasTimeLimit  bool           `json:"has_time_limit"`
	TimeLimit     float64        `json:"time_limit"`
	RewardCoins   int            `json:"reward_coins"`
	PerfectBonus  int            `json:"perfect_bonus"`
	NoGravity     bool           `json:"no_gravity,omitempty"`
	Wind          float64        `json:"wind,omitempty"`
	EnemySpawns   []EnemySpawn   `json:"enemy_spawns,omitempty"`
}

// Validate checks the configuration invariants.
func (c LevelConfig) Validate() error {
	if c.ObjectiveType == BlockEmpty {
		return fmt.Errorf("level %q: objective type must not be empty", c.Name)
	}
	if c.Layout.Count(c.ObjectiveType) == 0 {
		return fmt.Errorf("level %q: layout has no %s block", c.Name, c.ObjectiveType)
	}
	if c.HasTimeLimit && c.TimeLimit <= 0 {
		return fmt.Errorf("level %q: time limit must be positive, got %v", c.Name, c.TimeLimit)
	}
	if c.RewardCoins < 0 || c.PerfectBonus < 0 {
		return fmt.Errorf("level %q: rewards must not be negative", c.Name)
	}
	for i, e := range c.EnemySpawns {
		if e.FireInterval <= 0 {
			return fmt.Errorf("level %q: enemy spawn %d needs a positive fire interval", c.Name, i)
		}
	}
	return nil
}

// LevelLibrary is the ordered level sequence. By default indexes past the
// end loop back to the first level; Strict disables that.
type LevelLibrary struct {
	Levels []LevelConfig
	Strict bool
}

// Level returns the configuration for index.
func (l *LevelLibrary) Level(index int) (LevelConfig, error) {
	if index < 0 || len(l.Levels) == 0 {
		return LevelConfig{}, fmt.Errorf("level %d: %w", index, ErrLevelNotFound)
	}
	if index >= len(l.Levels) {
		if l.Strict {
			return LevelConfig{}, fmt.Errorf("level %d: %w", index, ErrLevelNotFound)
		}
		index %= len(l.Levels)
	}
	return l.Levels[index], nil
}

// Len returns the number of distinct levels.
func (l *LevelLibrary) Len() int { return len(l.Levels) }

// DefaultLevels returns the built-in level sequence.
func DefaultLevels() *LevelLibrary {
	return &LevelLibrary{Levels: []LevelConfig{
		{
			Number:      1,
			Name:        "Outpost",
			Description: "Destroy the treasure chest to win!",
			Layout: MustParseLayout(
				".RR.",
				"SWWS",
				"STSS",
			),
			SpawnPosition: utils.Vec2{X: 30, Y: 0.5},
			ObjectiveType: BlockTreasureChest,
			RewardCoins:   50,
			PerfectBonus:  25,
		},
		{
			Number:      2,
			Name:        "Fortified Castle",
			Description: "Iron walls guard the gold. Mind the clock.",
			Layout: MustParseLayout(
				"R....R",
				"SR..RS",
				"SIWWIS",
				"SGITIS",
				"SSIISS",
			),
			SpawnPosition: utils.Vec2{X: 31, Y: 0.5},
			ObjectiveType: BlockTreasureChest,
			HasTimeLimit:  true,
			TimeLimit:     60,
			RewardCoins:   75,
			PerfectBonus:  30,
			Wind:          -0.5,
		},
		{
			Number:      3,
			Name:        "Dragon's Keep",
			Description: "Turrets on the ramparts. Shields up.",
			Layout: MustParseLayout(
				"..RRRR..",
				".RSWWSR.",
				"SSDVVDSS",
				"SIGTTGIS",
				"SIIDDIIS",
				"SSSSSSSS",
			),
			SpawnPosition: utils.Vec2{X: 32, Y: 0.5},
			ObjectiveType: BlockTreasureChest,
			HasTimeLimit:  true,
			TimeLimit:     90,
			RewardCoins:   120,
			PerfectBonus:  50,
			Wind:          0.8,
			EnemySpawns: []EnemySpawn{
				{Position: utils.Vec2{X: 22, Y: 1}, FireInterval: 3, Damage: 1},
				{Position: utils.Vec2{X: 33.5, Y: 7}, FireInterval: 4, Damage: 1},
			},
		},
	}}
}

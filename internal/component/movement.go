// internal/component/movement.go
package component

import "go-siege/pkg/utils"

// Position is a world position in fortress cells, y up.
type Position = utils.Vec2

// Velocity is measured in cells per second.
type Velocity = utils.Vec2

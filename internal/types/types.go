// internal/types/types.go
package types

// EntityID identifies an entity inside the ECS store. Zero is never issued.
type EntityID uint64

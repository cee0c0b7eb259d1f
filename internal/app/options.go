// internal/app/options.go
package app

import (
	"fmt"

	"go-siege/internal/defs"
)

// LoadDefinitions fills opts from JSON definition files. Empty paths keep
// the built-in definitions.
func LoadDefinitions(opts *Options, levelsPath, blocksPath string) error {
	if levelsPath != "" {
		levels, err := defs.LoadLevels(levelsPath)
		if err != nil {
			return fmt.Errorf("failed to load levels: %w", err)
		}
		opts.Levels = levels
	}
	if blocksPath != "" {
		blocks, err := defs.LoadBlockDefinitions(blocksPath)
		if err != nil {
			return fmt.Errorf("failed to load blocks: %w", err)
		}
		opts.Blocks = blocks
	}
	return nil
}

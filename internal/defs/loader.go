// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadLevels reads a JSON array of level configurations. Missing objective
// types default to the treasure chest and missing numbers to the position in
// the file.
func LoadLevels(path string) (*LevelLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level definitions file: %w", err)
	}

	var levels []LevelConfig
	if err := json.Unmarshal(file, &levels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}

	for i := range levels {
		if levels[i].ObjectiveType == BlockEmpty {
			levels[i].ObjectiveType = BlockTreasureChest
		}
		if levels[i].Number == 0 {
			levels[i].Number = i + 1
		}
		if err := levels[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid level %d in %s: %w", i, path, err)
		}
	}

	log.Printf("Loaded %d level definitions", len(levels))
	return &LevelLibrary{Levels: levels}, nil
}

// LoadBlockDefinitions reads a JSON array of block stats. Entries override the
// built-in stats; types the file does not mention keep their defaults.
func LoadBlockDefinitions(path string) (BlockLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read block definitions file: %w", err)
	}

	var blockDefs []BlockDefinition
	if err := json.Unmarshal(file, &blockDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal block definitions: %w", err)
	}

	library := DefaultBlocks()
	for _, def := range blockDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		library[def.Type] = def
	}

	log.Printf("Loaded %d block definitions", len(blockDefs))
	return library, nil
}

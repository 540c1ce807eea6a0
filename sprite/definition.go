package sprite

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/calctools/serseg/errs"
)

// SpriteFile wraps the definition so the TOML document has no root-level
// fields.
type SpriteFile struct {
	Sprite Definition `toml:"sprite"`
}

// Definition describes one sprite asset.
type Definition struct {
	// Source is the path to the sprite's PNG, relative to the definition
	// file, without the ".png" extension.
	Source string `toml:"source"`
}

// LoadDefinition reads and decodes the sprite definition at path.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read sprite definition: %w", err)
	}

	var file SpriteFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return Definition{}, fmt.Errorf("parse sprite definition %s: %w", path, err)
	}

	if file.Sprite.Source == "" {
		return Definition{}, fmt.Errorf("%w: %s names no source image", errs.ErrInvalidDefinition, path)
	}

	return file.Sprite, nil
}

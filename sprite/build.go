package sprite

import (
	"fmt"
	"math"

	"github.com/calctools/serseg"
	"github.com/calctools/serseg/errs"
	"github.com/calctools/serseg/internal/assetpath"
	"github.com/calctools/serseg/sink"
)

// sectorID keys the sectors of the sprite binary.
type sectorID uint8

const (
	sectorHeader sectorID = iota
	sectorPixels
)

// BuildBinary loads the sprite definition at path and produces the binary
// asset: width and height as single bytes, then width times height RGB332
// pixel bytes in row-major order. Both dimensions must fit in a byte.
func BuildBinary(path string) ([]byte, error) {
	def, err := LoadDefinition(path)
	if err != nil {
		return nil, err
	}

	img, err := Load(assetpath.Sibling(path, def.Source, ".png"))
	if err != nil {
		return nil, err
	}

	width, height, pixels := img.RGB24()
	if width > math.MaxUint8 || height > math.MaxUint8 {
		return nil, fmt.Errorf("%w: sprite is %dx%d", errs.ErrImageTooLarge, width, height)
	}

	packed := make([]byte, 0, len(pixels))
	for _, p := range pixels {
		packed = append(packed, p.RGB332())
	}

	b := serseg.New[sectorID]()
	b.Sector(sectorHeader).U8(uint8(width)).U8(uint8(height))
	b.Sector(sectorPixels).Bytes(packed)

	buf := sink.NewBuffer(nil)
	if err := b.Build(buf); err != nil {
		return nil, fmt.Errorf("assemble sprite: %w", err)
	}

	return buf.Bytes(), nil
}

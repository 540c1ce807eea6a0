package fontpack

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/calctools/serseg/errs"
	"github.com/calctools/serseg/internal/assetpath"
	"github.com/calctools/serseg/sprite"
)

// Glyph is one renderable glyph: its advance width and row-packed bitmap.
type Glyph struct {
	Width  uint8
	Bitmap []byte
}

// GlyphSet collects the glyphs of one font and tracks the index range they
// span. The built font allocates one table slot per index in
// [First, Last], so a sparse set still costs table space for the gaps.
type GlyphSet struct {
	glyphs map[uint8]Glyph
	first  uint8
	last   uint8
}

// NewGlyphSet creates an empty set.
func NewGlyphSet() *GlyphSet {
	return &GlyphSet{
		glyphs: make(map[uint8]Glyph),
		first:  math.MaxUint8,
		last:   0,
	}
}

// Insert adds a glyph at index. Inserting the same index twice keeps the
// newest glyph and logs a warning.
func (s *GlyphSet) Insert(index uint8, width uint8, bitmap []byte) {
	if index < s.first {
		s.first = index
	}
	if index > s.last {
		s.last = index
	}

	if _, dup := s.glyphs[index]; dup {
		Logger().Warn("glyph index defined more than once, keeping the last definition",
			zap.Uint8("index", index))
	}
	s.glyphs[index] = Glyph{Width: width, Bitmap: bitmap}
}

// Lookup returns the glyph at index, if one was inserted.
func (s *GlyphSet) Lookup(index uint8) (Glyph, bool) {
	g, ok := s.glyphs[index]

	return g, ok
}

// Len returns the number of defined glyphs.
func (s *GlyphSet) Len() int {
	return len(s.glyphs)
}

// First returns the lowest defined index. An empty set reports 255.
func (s *GlyphSet) First() uint8 {
	return s.first
}

// Last returns the highest defined index. An empty set reports 0.
func (s *GlyphSet) Last() uint8 {
	return s.last
}

// Count returns the number of table slots the font spans. A full 0..255
// set would need 256 slots, which does not fit the count byte, so the
// result saturates at 255.
func (s *GlyphSet) Count() uint8 {
	if len(s.glyphs) == 0 {
		return 0
	}

	count := int(s.last) - int(s.first) + 1
	if count > math.MaxUint8 {
		return math.MaxUint8
	}

	return uint8(count)
}

// PackBitmap packs a row-major monochrome pixel stream into the fontlibc
// bitmap layout: each row becomes a run of bytes holding 8 pixels apiece,
// most significant bit first, with the last byte of a row zero-padded.
// Trailing pixels that do not fill a whole row are dropped.
func PackBitmap(width uint8, pixels []bool) []byte {
	if width == 0 {
		return nil
	}

	w := int(width)
	rowBytes := (w + 7) / 8
	rows := len(pixels) / w
	packed := make([]byte, 0, rows*rowBytes)

	for row := 0; row < rows; row++ {
		line := pixels[row*w : (row+1)*w]
		for len(line) > 0 {
			n := len(line)
			if n > 8 {
				n = 8
			}

			var b byte
			for i := 0; i < n; i++ {
				if line[i] {
					b |= 1 << (7 - i)
				}
			}
			packed = append(packed, b)
			line = line[n:]
		}
	}

	return packed
}

// LoadGlyphs renders each glyph source named by defs into a packed set.
// fontPath is the font definition the glyph sources are resolved against.
func LoadGlyphs(fontPath string, defs []GlyphDef) (*GlyphSet, error) {
	set := NewGlyphSet()
	for _, def := range defs {
		path := assetpath.Sibling(fontPath, def.Source, ".png")
		img, err := sprite.Load(path)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", uint8(def.Index), err)
		}

		width, _, pixels := img.Monochrome()
		if width > math.MaxUint8 {
			return nil, fmt.Errorf("%w: glyph %d is %d pixels wide",
				errs.ErrImageTooLarge, uint8(def.Index), width)
		}

		set.Insert(uint8(def.Index), uint8(width), PackBitmap(uint8(width), pixels))
	}

	return set, nil
}

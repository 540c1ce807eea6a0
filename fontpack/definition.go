// Package fontpack builds fontlibc font packs from TOML definitions and
// glyph images, laying the FONTPACK binary out through the sector builder.
//
// Field documentation follows the fontlibc format description from the
// CE-Toolchain project.
package fontpack

import (
	"fmt"
	"math"
	"os"
	"unicode"

	"github.com/BurntSushi/toml"

	"github.com/calctools/serseg/errs"
)

// defaultCodePage is assumed when a pack's metadata does not pick one.
const defaultCodePage = "ASCII"

// PackFile wraps the definition so the TOML document has no root-level
// fields.
type PackFile struct {
	Pack PackDefinition `toml:"pack"`
}

// PackDefinition is the root of a font pack definition file.
type PackDefinition struct {
	Metadata PackMetadata `toml:"metadata"`
	// Fonts are the paths to each font definition, relative to the pack
	// definition, without the ".toml" extension.
	Fonts []string `toml:"fonts"`
}

// PackMetadata carries the descriptive strings of a pack. Empty strings are
// omitted from the built asset; their slot is written as a null pointer.
type PackMetadata struct {
	// FamilyName is a short, human-readable typeface name, such as "Times".
	FamilyName string `toml:"family_name"`
	// Author is a short string naming the typeface designer.
	Author string `toml:"author"`
	// Pseudocopyright is a short copyright claim.
	Pseudocopyright string `toml:"pseudocopyright"`
	// Description is a brief description of the font.
	Description string `toml:"description"`
	// Version is free-form: "1.0.0.0" is typical, but any short string
	// works.
	Version string `toml:"version"`
	// CodePage suggests the glyph mapping. Suggested values: "ASCII",
	// "TIOS", "ISO-8859-1", "Windows 1252", "Calculator 1252".
	CodePage string `toml:"code_page"`
}

// Strings returns the metadata fields in their on-disk slot order.
func (m PackMetadata) Strings() [6]string {
	return [6]string{
		m.FamilyName,
		m.Author,
		m.Pseudocopyright,
		m.Description,
		m.Version,
		m.CodePage,
	}
}

// FontFile wraps the definition so the TOML document has no root-level
// fields.
type FontFile struct {
	Font FontDefinition `toml:"font"`
}

// FontDefinition describes one font of a pack.
type FontDefinition struct {
	// Version of the font format. Currently only zero is accepted by
	// fontlibc.
	Version uint8 `toml:"version"`
	// Height in pixels, not including space above/below.
	Height uint8 `toml:"height"`
	// ItalicSpaceAdjust specifies how much to move the cursor left after
	// each glyph. Total movement is width minus this overhang.
	ItalicSpaceAdjust uint8 `toml:"italic_space_adjust"`
	// SpaceAbove suggests adding blank space above each line of text.
	SpaceAbove uint8 `toml:"space_above"`
	// SpaceBelow suggests adding blank space below each line of text.
	SpaceBelow uint8 `toml:"space_below"`
	// Weight specifies the boldness of the font. Zero means unspecified.
	Weight FontWeight `toml:"weight"`
	// Style holds the style flags of the font.
	Style FontStyle `toml:"style"`
	// CapHeight aligns text of differing fonts vertically. It counts
	// pixels going down, so 0 means the top of the glyph.
	CapHeight uint8 `toml:"cap_height"`
	// XHeight aligns text of differing fonts vertically. It counts pixels
	// going down, so 0 means the top of the glyph.
	XHeight uint8 `toml:"x_height"`
	// BaselineHeight aligns text of differing fonts vertically. It counts
	// pixels going down, so 0 means the top of the glyph.
	BaselineHeight uint8 `toml:"baseline_height"`
	// Glyphs maps code page indices to their source images.
	Glyphs []GlyphDef `toml:"glyphs"`
}

// FontWeight is the fontlibc boldness scale. The zero value marks an
// unspecified weight and is written to the asset as 0x00.
type FontWeight uint8

const (
	WeightThin       FontWeight = 0x20
	WeightExtraLight FontWeight = 0x30
	WeightLight      FontWeight = 0x40
	WeightSemilight  FontWeight = 0x60
	WeightNormal     FontWeight = 0x80
	WeightMedium     FontWeight = 0x90
	WeightSemibold   FontWeight = 0xA0
	WeightBold       FontWeight = 0xC0
	WeightExtraBold  FontWeight = 0xE0
	WeightBlack      FontWeight = 0xF0
)

var weightNames = map[string]FontWeight{
	"thin":        WeightThin,
	"extra_light": WeightExtraLight,
	"light":       WeightLight,
	"semilight":   WeightSemilight,
	"normal":      WeightNormal,
	"medium":      WeightMedium,
	"semibold":    WeightSemibold,
	"bold":        WeightBold,
	"extra_bold":  WeightExtraBold,
	"black":       WeightBlack,
}

// UnmarshalText decodes a snake_case weight name such as "extra_bold".
func (w *FontWeight) UnmarshalText(text []byte) error {
	weight, ok := weightNames[string(text)]
	if !ok {
		return fmt.Errorf("%w: unknown font weight %q", errs.ErrInvalidDefinition, text)
	}
	*w = weight

	return nil
}

func (w FontWeight) String() string {
	switch w {
	case WeightThin:
		return "thin"
	case WeightExtraLight:
		return "extra_light"
	case WeightLight:
		return "light"
	case WeightSemilight:
		return "semilight"
	case WeightNormal:
		return "normal"
	case WeightMedium:
		return "medium"
	case WeightSemibold:
		return "semibold"
	case WeightBold:
		return "bold"
	case WeightExtraBold:
		return "extra_bold"
	case WeightBlack:
		return "black"
	default:
		return "unspecified"
	}
}

// FontStyle holds the style flags of a font, packed into the low four bits
// of the style byte.
type FontStyle struct {
	// Serif. Clear means a sans-serif font.
	Serif bool `toml:"serif"`
	// Oblique is slanted like italic text but keeps upright letterforms.
	Oblique bool `toml:"oblique"`
	// Italic. If both italic and oblique are set, assume there is no
	// difference between the two styles.
	Italic bool `toml:"italic"`
	// Monospaced is not enforced; a variable-width font can claim it.
	Monospaced bool `toml:"monospaced"`
}

// Byte packs the flags into their bit positions.
func (s FontStyle) Byte() uint8 {
	var b uint8
	if s.Serif {
		b |= 0b0000_0001
	}
	if s.Oblique {
		b |= 0b0000_0010
	}
	if s.Italic {
		b |= 0b0000_0100
	}
	if s.Monospaced {
		b |= 0b0000_1000
	}

	return b
}

// GlyphDef maps one glyph index to its source image.
type GlyphDef struct {
	Index GlyphIndex `toml:"index"`
	// Source is the path to the glyph's PNG, relative to the font
	// definition, without the ".png" extension.
	Source string `toml:"source"`
}

// GlyphIndex is where a glyph is mapped in the code page. In TOML it is
// written either as an integer in 0..255 or as a one-character ASCII
// string.
type GlyphIndex uint8

// UnmarshalTOML accepts the two index spellings.
func (g *GlyphIndex) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case int64:
		if v < 0 || v > math.MaxUint8 {
			return fmt.Errorf("%w: %d is not in 0..255", errs.ErrInvalidGlyphIndex, v)
		}
		*g = GlyphIndex(v)

		return nil
	case string:
		if len(v) != 1 || v[0] > unicode.MaxASCII {
			return fmt.Errorf("%w: %q is not a single ASCII character", errs.ErrInvalidGlyphIndex, v)
		}
		*g = GlyphIndex(v[0])

		return nil
	default:
		return fmt.Errorf("%w: unsupported value %v", errs.ErrInvalidGlyphIndex, value)
	}
}

// LoadPack reads and decodes the pack definition at path. A missing
// code_page keeps the "ASCII" default; an explicitly empty one stays
// empty.
func LoadPack(path string) (PackDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PackDefinition{}, fmt.Errorf("read pack definition: %w", err)
	}

	file := PackFile{
		Pack: PackDefinition{Metadata: PackMetadata{CodePage: defaultCodePage}},
	}
	if _, err := toml.Decode(string(data), &file); err != nil {
		return PackDefinition{}, fmt.Errorf("parse pack definition %s: %w", path, err)
	}

	return file.Pack, nil
}

// LoadFont reads and decodes the font definition at path.
func LoadFont(path string) (FontDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FontDefinition{}, fmt.Errorf("read font definition: %w", err)
	}

	var file FontFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return FontDefinition{}, fmt.Errorf("parse font definition %s: %w", path, err)
	}

	return file.Font, nil
}

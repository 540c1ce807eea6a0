package fontpack

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/calctools/serseg"
	"github.com/calctools/serseg/errs"
	"github.com/calctools/serseg/internal/assetpath"
	"github.com/calctools/serseg/sink"
)

// packMagic opens every font pack asset.
var packMagic = []byte("FONTPACK")

// maxFonts is the largest number of fonts one pack can carry. The font
// count byte is read as signed by some consumers, so the limit is 127
// rather than 255.
const maxFonts = 127

// sectorKind enumerates the sector roles of the FONTPACK layout.
type sectorKind uint8

const (
	kindHeader sectorKind = iota
	kindMetadata
	kindMetadataEnd
	kindMetadataStrings
	kindFontHeader
	kindFontWidths
	kindFontBitmapTable
	kindFontBitmap
)

// sectorID keys every sector of the pack layout. font and glyph
// disambiguate the per-font and per-glyph kinds; the singleton kinds leave
// them zero.
type sectorID struct {
	kind  sectorKind
	font  int
	glyph uint8
}

var (
	idHeader          = sectorID{kind: kindHeader}
	idMetadata        = sectorID{kind: kindMetadata}
	idMetadataEnd     = sectorID{kind: kindMetadataEnd}
	idMetadataStrings = sectorID{kind: kindMetadataStrings}
)

func fontHeaderID(font int) sectorID {
	return sectorID{kind: kindFontHeader, font: font}
}

func fontWidthsID(font int) sectorID {
	return sectorID{kind: kindFontWidths, font: font}
}

func fontBitmapTableID(font int) sectorID {
	return sectorID{kind: kindFontBitmapTable, font: font}
}

func glyphBitmapID(font int, glyph uint8) sectorID {
	return sectorID{kind: kindFontBitmap, font: font, glyph: glyph}
}

// Font pairs a parsed font definition with its rendered glyphs.
type Font struct {
	Definition FontDefinition
	Glyphs     *GlyphSet
}

// Load reads the pack definition at path and loads every font it names,
// rendering and packing their glyph images along the way.
func Load(path string) (PackDefinition, []Font, error) {
	pack, err := LoadPack(path)
	if err != nil {
		return PackDefinition{}, nil, err
	}

	fonts := make([]Font, 0, len(pack.Fonts))
	for _, rel := range pack.Fonts {
		fontPath := assetpath.Sibling(path, rel, ".toml")

		def, err := LoadFont(fontPath)
		if err != nil {
			return PackDefinition{}, nil, err
		}

		glyphs, err := LoadGlyphs(fontPath, def.Glyphs)
		if err != nil {
			return PackDefinition{}, nil, fmt.Errorf("font %s: %w", fontPath, err)
		}

		Logger().Debug("font loaded",
			zap.String("path", fontPath),
			zap.Int("glyphs", glyphs.Len()),
		)
		fonts = append(fonts, Font{Definition: def, Glyphs: glyphs})
	}

	return pack, fonts, nil
}

// BuildBinary loads the pack definition at path and renders the FONTPACK
// asset bytes.
func BuildBinary(path string) ([]byte, error) {
	pack, fonts, err := Load(path)
	if err != nil {
		return nil, err
	}

	return Binary(pack, fonts)
}

// Binary renders an already-loaded pack into FONTPACK asset bytes.
func Binary(pack PackDefinition, fonts []Font) ([]byte, error) {
	b, err := assemble(pack, fonts)
	if err != nil {
		return nil, err
	}

	buf := sink.NewBuffer(nil)
	if err := b.Build(buf); err != nil {
		return nil, fmt.Errorf("build font pack: %w", err)
	}

	return buf.Bytes(), nil
}

// fontsLength clamps the font count to [1, maxFonts].
func fontsLength(n int) (uint8, error) {
	switch {
	case n == 0:
		return 0, fmt.Errorf("%w: a pack needs at least one font", errs.ErrInvalidDefinition)
	case n > maxFonts:
		return 0, fmt.Errorf("%w: a pack cannot carry more than %d fonts (got %d)",
			errs.ErrInvalidDefinition, maxFonts, n)
	default:
		return uint8(n), nil
	}
}

// assemble declares the full sector graph of a pack. All header pointers
// are 24-bit offsets from the start of the asset; the per-font pointers
// are 16-bit offsets from that font's own header, keeping each font
// relocatable as a unit.
func assemble(pack PackDefinition, fonts []Font) (*serseg.Builder[sectorID], error) {
	count, err := fontsLength(len(fonts))
	if err != nil {
		return nil, err
	}

	b := serseg.New[sectorID]()

	// Pack header: magic, metadata pointer, font count, one pointer per
	// font header.
	header := b.Sector(idHeader)
	header.Bytes(packMagic).
		DynamicU24(idHeader, idMetadata, 0).
		U8(count)
	for i := range fonts {
		header.DynamicU24(idHeader, fontHeaderID(i), 0)
	}

	// Metadata: first its own length, measured as the distance from the
	// sector to its empty end marker, then one slot per metadata string.
	// An empty string becomes a null slot with no stored text.
	meta := b.Sector(idMetadata)
	meta.DynamicU24(idMetadata, idMetadataEnd, 0)

	metaStrings := serseg.NewSector[sectorID]()
	next := 0
	for _, text := range pack.Metadata.Strings() {
		if text == "" {
			meta.Null24()

			continue
		}
		meta.DynamicU24(idHeader, idMetadataStrings, next)
		metaStrings.String(text)
		next++
	}
	b.Insert(idMetadataEnd, nil)
	b.Insert(idMetadataStrings, metaStrings)

	for i, font := range fonts {
		addFontSectors(b, font, i)
	}

	return b, nil
}

// addFontSectors lays out one font: a fixed-size header, the width table,
// the bitmap pointer table, then the bitmap of every defined glyph. Unset
// slots inside [First, Last] get a zero width and a null bitmap pointer.
func addFontSectors(b *serseg.Builder[sectorID], font Font, index int) {
	def := font.Definition
	glyphs := font.Glyphs

	widths := serseg.NewSector[sectorID]()
	table := serseg.NewSector[sectorID]()

	type pendingBitmap struct {
		glyph  uint8
		bitmap []byte
	}
	var bitmaps []pendingBitmap

	for slot := int(glyphs.First()); slot <= int(glyphs.Last()); slot++ {
		g, ok := glyphs.Lookup(uint8(slot))
		if !ok {
			Logger().Debug("glyph slot left empty",
				zap.Int("font", index),
				zap.Int("slot", slot),
			)
			widths.U8(0)
			table.Null16()

			continue
		}

		widths.U8(g.Width)
		table.DynamicU16(fontHeaderID(index), glyphBitmapID(index, uint8(slot)), 0)
		bitmaps = append(bitmaps, pendingBitmap{glyph: uint8(slot), bitmap: g.Bitmap})
	}

	b.Sector(fontHeaderID(index)).
		U8(def.Version).
		U8(def.Height).
		U8(glyphs.Count()).
		U8(glyphs.First()).
		DynamicU16(fontHeaderID(index), fontWidthsID(index), 0).
		DynamicU16(fontHeaderID(index), fontBitmapTableID(index), 0).
		U8(def.ItalicSpaceAdjust).
		U8(def.SpaceAbove).
		U8(def.SpaceBelow).
		U8(uint8(def.Weight)).
		U8(def.Style.Byte()).
		U8(def.CapHeight).
		U8(def.XHeight).
		U8(def.BaselineHeight)
	b.Insert(fontWidthsID(index), widths)
	b.Insert(fontBitmapTableID(index), table)

	for _, pb := range bitmaps {
		b.Sector(glyphBitmapID(index, pb.glyph)).Bytes(pb.bitmap)
	}
}

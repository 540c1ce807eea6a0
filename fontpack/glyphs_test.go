package fontpack

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/calctools/serseg/errs"
)

func TestGlyphSet(t *testing.T) {
	require := require.New(t)

	set := NewGlyphSet()
	set.Insert('a', 6, []byte{1, 2, 3})
	set.Insert('b', 7, []byte{0, 0, 0})
	set.Insert('d', 8, []byte{255, 255, 255})

	require.Equal(uint8('a'), set.First())
	require.Equal(uint8('d'), set.Last())
	require.Equal(uint8(4), set.Count())
	require.Equal(3, set.Len())

	g, ok := set.Lookup('a')
	require.True(ok)
	require.Equal(Glyph{Width: 6, Bitmap: []byte{1, 2, 3}}, g)

	_, ok = set.Lookup('c')
	require.False(ok)
}

func TestGlyphSet_Empty(t *testing.T) {
	set := NewGlyphSet()
	require.Equal(t, uint8(255), set.First())
	require.Equal(t, uint8(0), set.Last())
	require.Equal(t, uint8(0), set.Count())
}

func TestGlyphSet_CountSaturates(t *testing.T) {
	set := NewGlyphSet()
	set.Insert(0, 1, []byte{0x80})
	set.Insert(255, 1, []byte{0x80})

	// 256 slots would overflow the count byte.
	require.Equal(t, uint8(255), set.Count())
}

func TestGlyphSet_DuplicateKeepsLastAndWarns(t *testing.T) {
	require := require.New(t)

	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	set := NewGlyphSet()
	set.Insert('x', 4, []byte{0xF0})
	set.Insert('x', 5, []byte{0x0F})

	g, ok := set.Lookup('x')
	require.True(ok)
	require.Equal(Glyph{Width: 5, Bitmap: []byte{0x0F}}, g)
	require.Equal(1, set.Len())

	require.Equal(1, logs.Len())
	require.Contains(logs.All()[0].Message, "defined more than once")
}

func TestPackBitmap_Width6(t *testing.T) {
	bitmap := PackBitmap(6, []bool{
		true, false, true, false, true, false, // Row 1
		false, true, false, true, false, true, // Row 2
		false, false, false, true, true, true, // Row 3
	})

	require.Equal(t, []byte{0b1010_1000, 0b0101_0100, 0b0001_1100}, bitmap)
}

func TestPackBitmap_Width9(t *testing.T) {
	bitmap := PackBitmap(9, []bool{
		true, false, true, false, true, false, true, false, true, // Row 1
		false, true, false, true, false, true, false, true, false, // Row 2
		false, false, false, true, true, true, true, true, false, // Row 3
	})

	require.Equal(t, []byte{
		0b1010_1010, 0b1000_0000, // Row 1
		0b0101_0101, 0b0000_0000, // Row 2
		0b0001_1111, 0b0000_0000, // Row 3
	}, bitmap)
}

func TestPackBitmap_DropsPartialRow(t *testing.T) {
	bitmap := PackBitmap(4, []bool{
		true, true, false, false,
		true, false, // trailing pixels short of a full row
	})

	require.Equal(t, []byte{0b1100_0000}, bitmap)
}

func TestPackBitmap_ZeroWidth(t *testing.T) {
	require.Nil(t, PackBitmap(0, []bool{true, true}))
}

func TestLoadGlyphs(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	fontPath := filepath.Join(dir, "main.toml")

	// 2x2 glyph with the top-left and bottom-right pixels set.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 128, A: 1})
	writeGlyphPNG(t, filepath.Join(dir, "dot.png"), img)

	set, err := LoadGlyphs(fontPath, []GlyphDef{{Index: 'a', Source: "dot"}})
	require.NoError(err)
	require.Equal(1, set.Len())

	g, ok := set.Lookup('a')
	require.True(ok)
	require.Equal(Glyph{Width: 2, Bitmap: []byte{0b1000_0000, 0b0100_0000}}, g)
}

func TestLoadGlyphs_MissingImage(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "main.toml")

	_, err := LoadGlyphs(fontPath, []GlyphDef{{Index: 'a', Source: "ghost"}})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadGlyphs_OversizedImage(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "main.toml")
	writeGlyphPNG(t, filepath.Join(dir, "wide.png"), image.NewNRGBA(image.Rect(0, 0, 300, 1)))

	_, err := LoadGlyphs(fontPath, []GlyphDef{{Index: 'a', Source: "wide"}})
	require.ErrorIs(t, err, errs.ErrImageTooLarge)
}

func writeGlyphPNG(t *testing.T, path string, img image.Image) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

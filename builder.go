package serseg

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// SectorBuilder accumulates the ordered fields of a single sector.
//
// All methods append one field and return the receiver, so declarations
// chain naturally:
//
//	b.Sector(KeyHeader).
//		Bytes([]byte("FONTPACK")).
//		DynamicU24(KeyHeader, KeyMeta, 0)
//
// Field order is emission order and defines the indices that dynamic
// pointers address. A SectorBuilder is append-only; nothing validates until
// Build runs.
type SectorBuilder[S comparable] struct {
	fields []Field[S]
}

// NewSector creates an empty sector builder, for callers that assemble
// sectors before attaching them with Builder.Insert.
func NewSector[S comparable]() *SectorBuilder[S] {
	return &SectorBuilder[S]{}
}

// Len returns the number of fields declared so far.
func (s *SectorBuilder[S]) Len() int {
	return len(s.fields)
}

// U8 appends a one-byte unsigned integer.
func (s *SectorBuilder[S]) U8(v uint8) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldU8[S]{value: v})

	return s
}

// U16 appends a two-byte little-endian unsigned integer.
func (s *SectorBuilder[S]) U16(v uint16) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldU16[S]{value: v})

	return s
}

// U24 appends a three-byte little-endian unsigned integer. Values above
// 0xFFFFFF fail the build during layout.
func (s *SectorBuilder[S]) U24(v uint32) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldU24[S]{value: v})

	return s
}

// U32 appends a four-byte little-endian unsigned integer.
func (s *SectorBuilder[S]) U32(v uint32) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldU32[S]{value: v})

	return s
}

// U64 appends an eight-byte little-endian unsigned integer.
func (s *SectorBuilder[S]) U64(v uint64) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldU64[S]{value: v})

	return s
}

// I8 appends a one-byte signed integer, reinterpreted as its two's-complement
// unsigned bit pattern. There is no I24; three-byte fields are unsigned only.
func (s *SectorBuilder[S]) I8(v int8) *SectorBuilder[S] {
	return s.U8(uint8(v))
}

// I16 appends a two-byte signed integer as its unsigned bit pattern.
func (s *SectorBuilder[S]) I16(v int16) *SectorBuilder[S] {
	return s.U16(uint16(v))
}

// I32 appends a four-byte signed integer as its unsigned bit pattern.
func (s *SectorBuilder[S]) I32(v int32) *SectorBuilder[S] {
	return s.U32(uint32(v))
}

// I64 appends an eight-byte signed integer as its unsigned bit pattern.
func (s *SectorBuilder[S]) I64(v int64) *SectorBuilder[S] {
	return s.U64(uint64(v))
}

// Null8 appends a one-byte zero.
func (s *SectorBuilder[S]) Null8() *SectorBuilder[S] {
	return s.U8(0)
}

// Null16 appends a two-byte zero.
func (s *SectorBuilder[S]) Null16() *SectorBuilder[S] {
	return s.U16(0)
}

// Null24 appends a three-byte zero.
func (s *SectorBuilder[S]) Null24() *SectorBuilder[S] {
	return s.U24(0)
}

// Null32 appends a four-byte zero.
func (s *SectorBuilder[S]) Null32() *SectorBuilder[S] {
	return s.U32(0)
}

// Null64 appends an eight-byte zero.
func (s *SectorBuilder[S]) Null64() *SectorBuilder[S] {
	return s.U64(0)
}

// String appends the UTF-8 bytes of text followed by a single 0x00
// terminator. There is no length prefix.
func (s *SectorBuilder[S]) String(text string) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldString[S]{text: text})

	return s
}

// Bytes appends raw bytes verbatim. The slice is retained, not copied; the
// caller must not mutate it before Build.
func (s *SectorBuilder[S]) Bytes(data []byte) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldBytes[S]{data: data})

	return s
}

// DynamicU8 appends a one-byte pointer to field index of the target sector,
// measured from origin's start, unscaled.
func (s *SectorBuilder[S]) DynamicU8(origin S, sector S, index int) *SectorBuilder[S] {
	return s.DynamicU8Chunk(origin, sector, index, Scale(1))
}

// DynamicU16 appends a two-byte little-endian pointer, unscaled.
func (s *SectorBuilder[S]) DynamicU16(origin S, sector S, index int) *SectorBuilder[S] {
	return s.DynamicU16Chunk(origin, sector, index, Scale(1))
}

// DynamicU24 appends a three-byte little-endian pointer, unscaled.
func (s *SectorBuilder[S]) DynamicU24(origin S, sector S, index int) *SectorBuilder[S] {
	return s.DynamicU24Chunk(origin, sector, index, Scale(1))
}

// DynamicU32 appends a four-byte little-endian pointer, unscaled.
func (s *SectorBuilder[S]) DynamicU32(origin S, sector S, index int) *SectorBuilder[S] {
	return s.DynamicU32Chunk(origin, sector, index, Scale(1))
}

// DynamicU8Chunk appends a one-byte pointer whose resolved offset is divided
// by the given scale before narrowing. Formats that store pointers in 2-byte
// words or larger chunks declare the divisor here:
//
//	s.DynamicU16Chunk(KeyHeader, KeyData, 0, serseg.Scale(2))
//	s.DynamicU16Chunk(KeyHeader, KeyData, 0, serseg.Scale(16).Round(serseg.RoundCeiling))
func (s *SectorBuilder[S]) DynamicU8Chunk(origin S, sector S, index int, spec ScaleSpec) *SectorBuilder[S] {
	return s.dynamic(origin, sector, index, spec, 1)
}

// DynamicU16Chunk appends a two-byte scaled pointer.
func (s *SectorBuilder[S]) DynamicU16Chunk(origin S, sector S, index int, spec ScaleSpec) *SectorBuilder[S] {
	return s.dynamic(origin, sector, index, spec, 2)
}

// DynamicU24Chunk appends a three-byte scaled pointer.
func (s *SectorBuilder[S]) DynamicU24Chunk(origin S, sector S, index int, spec ScaleSpec) *SectorBuilder[S] {
	return s.dynamic(origin, sector, index, spec, 3)
}

// DynamicU32Chunk appends a four-byte scaled pointer.
func (s *SectorBuilder[S]) DynamicU32Chunk(origin S, sector S, index int, spec ScaleSpec) *SectorBuilder[S] {
	return s.dynamic(origin, sector, index, spec, 4)
}

func (s *SectorBuilder[S]) dynamic(origin S, sector S, index int, spec ScaleSpec, width int) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldDynamic[S]{
		origin: origin,
		sector: sector,
		index:  index,
		spec:   spec,
		width:  width,
	})

	return s
}

// Fill appends zero padding from the current write position out to offset
// fill measured from origin's start. The build fails if that position has
// already been passed; reaching it exactly emits nothing.
func (s *SectorBuilder[S]) Fill(origin S, fill int) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldFill[S]{origin: origin, fill: fill})

	return s
}

// External appends the contents of the file at path, declared to be size
// bytes. Layout trusts the declaration; the file is read at emit time and a
// size mismatch fails the build.
func (s *SectorBuilder[S]) External(path string, size int) *SectorBuilder[S] {
	s.fields = append(s.fields, fieldExternal[S]{path: path, declared: size})

	return s
}

type sectorEntry[S comparable] struct {
	key    S
	sector *SectorBuilder[S]
}

// Builder is an insertion-ordered mapping of sector key to sector. Insertion
// order is layout order: the first sector inserted starts at offset 0, each
// subsequent sector starts where the previous one ended.
type Builder[S comparable] struct {
	index   map[S]int
	entries []sectorEntry[S]
}

// New creates an empty builder over the caller's sector key type.
func New[S comparable]() *Builder[S] {
	return &Builder[S]{index: make(map[S]int)}
}

// Sector registers a fresh empty sector under key and returns it for
// chaining. Reusing a key replaces the prior sector's fields but keeps its
// original position in the layout order.
func (b *Builder[S]) Sector(key S) *SectorBuilder[S] {
	sector := NewSector[S]()
	b.Insert(key, sector)

	return sector
}

// Insert attaches a pre-built sector under key, replacing any prior sector
// with that key while keeping its position. A nil sector registers as empty,
// which is how end-marker sectors are declared.
func (b *Builder[S]) Insert(key S, sector *SectorBuilder[S]) {
	if sector == nil {
		sector = NewSector[S]()
	}

	if i, ok := b.index[key]; ok {
		b.entries[i].sector = sector

		return
	}

	b.index[key] = len(b.entries)
	b.entries = append(b.entries, sectorEntry[S]{key: key, sector: sector})
}

// Len returns the number of sectors declared.
func (b *Builder[S]) Len() int {
	return len(b.entries)
}

func (b *Builder[S]) lookup(key S) (*SectorBuilder[S], bool) {
	i, ok := b.index[key]
	if !ok {
		return nil, false
	}

	return b.entries[i].sector, true
}

// flusher is implemented by sinks with buffered output.
type flusher interface {
	Flush() error
}

// Build lays out all sectors and emits them to w in insertion order.
//
// The layout pass runs first and fails before any byte is written. The emit
// pass then writes each field at its computed offset; on error the sink is
// left partially written, so callers needing atomicity should build into a
// temporary destination and move it into place on success.
//
// Fill padding advances the cursor by seeking rather than writing, which on
// file sinks produces sparse runs; Build extends the output to the full
// tracked size before returning, so the readable length always equals the
// sum of all field sizes. If w implements Flush, it is flushed last.
func (b *Builder[S]) Build(w io.WriteSeeker) error {
	tr, err := NewTracker(b)
	if err != nil {
		return err
	}

	// Offsets are relative to wherever the sink cursor stands now, so a
	// build can be embedded inside a larger file.
	base, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("query sink position: %w", err)
	}

	Logger().Debug("building asset",
		zap.Int("sectors", b.Len()),
		zap.Int("totalBytes", tr.Total()),
		zap.Int64("base", base),
	)

	offset := 0
	for _, e := range b.entries {
		for i, f := range e.sector.fields {
			n, err := f.size(offset, tr)
			if err != nil {
				return fmt.Errorf("sector %v field %d: %w", e.key, i, err)
			}
			if err := f.emit(w, offset, tr); err != nil {
				return fmt.Errorf("sector %v field %d: %w", e.key, i, err)
			}
			offset += n
		}
		Logger().Debug("built sector", zap.Any("sector", e.key))
	}

	if err := extendToTotal(w, base, tr.Total()); err != nil {
		return err
	}

	if fl, ok := w.(flusher); ok {
		if err := fl.Flush(); err != nil {
			return fmt.Errorf("flush sink: %w", err)
		}
	}

	return nil
}

// extendToTotal makes sure the sink's length covers the full tracked size.
// A build ending in fill padding only seeks past the final bytes; writing a
// single zero at the last position materializes them.
func extendToTotal(w io.WriteSeeker, base int64, total int) error {
	if total == 0 {
		return nil
	}

	end, err := w.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("query sink length: %w", err)
	}

	if end >= base+int64(total) {
		return nil
	}

	if _, err := w.Seek(base+int64(total)-1, io.SeekStart); err != nil {
		return fmt.Errorf("extend sink: %w", err)
	}
	if _, err := w.Write([]byte{0x00}); err != nil {
		return fmt.Errorf("extend sink: %w", err)
	}

	return nil
}

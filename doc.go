// Package serseg assembles structured binary blobs from named sectors of
// typed fields, resolving cross-sector pointers in a single deterministic
// two-pass layout.
//
// The problem it solves: asset formats for constrained targets are flat byte
// blobs full of internal pointers. A pointer field must be written with the
// final byte offset of its referent, but that offset depends on the sizes of
// everything emitted before the referent, including other pointers. serseg
// sidesteps relocation entirely by requiring every field's size to be known
// from its declaration alone, which makes the whole layout computable before
// a single byte is written.
//
// # Overview
//
// Three layers cooperate in a build:
//
//  1. Fields: the atomic units (integers, strings, raw bytes, pointers,
//     padding, external file contents), each knowing its own size and how to
//     emit itself.
//  2. Tracker: a precomputed map from sector key to absolute start offset,
//     built by a size-only walk over all sectors in insertion order.
//  3. Builder: an insertion-ordered map of sector key to sector, driving the
//     two passes and emitting to any io.WriteSeeker.
//
// # Blob Structure
//
// A built blob is the plain concatenation of its sectors, in insertion order,
// with no framing added by the library:
//
//	┌──────────────────────────────────────────────────────┐
//	│ Sector "header"        (starts at offset 0)          │
//	│  - field 0, field 1, ...                             │
//	├──────────────────────────────────────────────────────┤
//	│ Sector "table"         (starts at Σ sizes above)     │
//	│  - pointer fields resolve to offsets of other        │
//	│    sectors' fields, scaled and narrowed as declared  │
//	├──────────────────────────────────────────────────────┤
//	│ Sector "payload"                                     │
//	│  - strings, raw bytes, external file contents        │
//	├──────────────────────────────────────────────────────┤
//	│ ...                                                  │
//	└──────────────────────────────────────────────────────┘
//
// Every integer is emitted little-endian. Strings are raw UTF-8 bytes
// followed by a single 0x00 terminator, with no length prefix.
//
// # Basic Usage
//
// Sector keys are any comparable type; a small named constant set reads best:
//
//	type Part int
//
//	const (
//		PartHeader Part = iota
//		PartTable
//		PartData
//	)
//
//	b := serseg.New[Part]()
//	b.Sector(PartHeader).Bytes([]byte("DEMO")).U8(1)
//	b.Sector(PartTable).
//		DynamicU24(PartHeader, PartData, 0).
//		DynamicU24(PartHeader, PartData, 1)
//	b.Sector(PartData).String("first").String("second")
//
//	buf := sink.NewBuffer(nil)
//	if err := b.Build(buf); err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("out.bin", buf.Bytes(), 0o644)
//
// # Pointer Resolution
//
// A dynamic field declares an origin sector, a target sector, and a field
// index inside the target. Its emitted value is
//
//	offset(target) - offset(origin) + Σ size(target.fields[0..index])
//
// optionally divided by a scale with a rounding policy (see Scale and
// Rounding), then narrowed to the declared width of 1, 2, 3 or 4 bytes.
// Values that do not fit the declared width fail the build.
//
// # Determinism
//
// Sector insertion order is layout order. Field declaration order is emission
// order. Two builds of the same declarations produce identical bytes.
package serseg

package serseg

import (
	"fmt"
	"io"
	"os"

	"github.com/calctools/serseg/endian"
	"github.com/calctools/serseg/errs"
)

// engine is the byte order used for every integer the serializer emits.
var engine = endian.GetLittleEndianEngine()

// Field is one atomic element of a sector: an integer literal, a string, raw
// bytes, a dynamic pointer, padding, or the contents of an external file.
//
// Fields are created through the SectorBuilder methods. The interface is
// closed: every field kind must report its size from the declaration alone,
// which is what makes the single-pass layout computation possible.
type Field[S comparable] interface {
	// size returns the number of bytes the field occupies when placed at the
	// given absolute offset. The tracker may be partially populated during
	// layout; only fill fields consult it, and only for origins that were
	// laid out earlier.
	size(offset int, tr *Tracker[S]) (int, error)

	// emit writes the field's bytes to w. The offset is the absolute position
	// the driver has accounted for; w's cursor is already there.
	emit(w io.WriteSeeker, offset int, tr *Tracker[S]) error
}

// ----------------------------------------------------------------------------
// Fixed-width integers
// ----------------------------------------------------------------------------

type fieldU8[S comparable] struct {
	value uint8
}

func (f fieldU8[S]) size(int, *Tracker[S]) (int, error) {
	return 1, nil
}

func (f fieldU8[S]) emit(w io.WriteSeeker, _ int, _ *Tracker[S]) error {
	_, err := w.Write([]byte{f.value})

	return err
}

type fieldU16[S comparable] struct {
	value uint16
}

func (f fieldU16[S]) size(int, *Tracker[S]) (int, error) {
	return 2, nil
}

func (f fieldU16[S]) emit(w io.WriteSeeker, _ int, _ *Tracker[S]) error {
	var b [2]byte
	engine.PutUint16(b[:], f.value)
	_, err := w.Write(b[:])

	return err
}

type fieldU24[S comparable] struct {
	value uint32
}

func (f fieldU24[S]) size(int, *Tracker[S]) (int, error) {
	// Validated here so an oversized literal aborts the build before any
	// bytes are written.
	if f.value > endian.MaxUint24 {
		return 0, fmt.Errorf("%w: %#x does not fit in 3 bytes", errs.ErrValueOutOfRange, f.value)
	}

	return 3, nil
}

func (f fieldU24[S]) emit(w io.WriteSeeker, _ int, _ *Tracker[S]) error {
	var b [3]byte
	endian.PutUint24(engine, b[:], f.value)
	_, err := w.Write(b[:])

	return err
}

type fieldU32[S comparable] struct {
	value uint32
}

func (f fieldU32[S]) size(int, *Tracker[S]) (int, error) {
	return 4, nil
}

func (f fieldU32[S]) emit(w io.WriteSeeker, _ int, _ *Tracker[S]) error {
	var b [4]byte
	engine.PutUint32(b[:], f.value)
	_, err := w.Write(b[:])

	return err
}

type fieldU64[S comparable] struct {
	value uint64
}

func (f fieldU64[S]) size(int, *Tracker[S]) (int, error) {
	return 8, nil
}

func (f fieldU64[S]) emit(w io.WriteSeeker, _ int, _ *Tracker[S]) error {
	var b [8]byte
	engine.PutUint64(b[:], f.value)
	_, err := w.Write(b[:])

	return err
}

// ----------------------------------------------------------------------------
// Strings and raw bytes
// ----------------------------------------------------------------------------

type fieldString[S comparable] struct {
	text string
}

func (f fieldString[S]) size(int, *Tracker[S]) (int, error) {
	return len(f.text) + 1, nil
}

func (f fieldString[S]) emit(w io.WriteSeeker, _ int, _ *Tracker[S]) error {
	buf := make([]byte, 0, len(f.text)+1)
	buf = append(buf, f.text...)
	buf = append(buf, 0x00)
	_, err := w.Write(buf)

	return err
}

type fieldBytes[S comparable] struct {
	data []byte
}

func (f fieldBytes[S]) size(int, *Tracker[S]) (int, error) {
	return len(f.data), nil
}

func (f fieldBytes[S]) emit(w io.WriteSeeker, _ int, _ *Tracker[S]) error {
	_, err := w.Write(f.data)

	return err
}

// ----------------------------------------------------------------------------
// Dynamic pointers
// ----------------------------------------------------------------------------

type fieldDynamic[S comparable] struct {
	origin S
	sector S
	index  int
	spec   ScaleSpec
	width  int
}

func (f fieldDynamic[S]) size(int, *Tracker[S]) (int, error) {
	if f.width < 1 || f.width > 4 {
		return 0, fmt.Errorf("%w: %d bytes", errs.ErrUnsupportedWidth, f.width)
	}

	return f.width, nil
}

func (f fieldDynamic[S]) emit(w io.WriteSeeker, _ int, tr *Tracker[S]) error {
	raw, err := tr.FieldOffset(f.origin, f.sector, f.index)
	if err != nil {
		return err
	}

	scaled := f.spec.apply(raw)
	if scaled > pointerLimit(f.width) {
		return fmt.Errorf("%w: pointer value %d exceeds %d-bit limit",
			errs.ErrLayoutOverflow, scaled, f.width*8)
	}

	var b [4]byte
	switch f.width {
	case 1:
		b[0] = byte(scaled)
	case 2:
		engine.PutUint16(b[:2], uint16(scaled))
	case 3:
		endian.PutUint24(engine, b[:3], uint32(scaled))
	case 4:
		engine.PutUint32(b[:4], uint32(scaled))
	default:
		return fmt.Errorf("%w: %d bytes", errs.ErrUnsupportedWidth, f.width)
	}

	_, err = w.Write(b[:f.width])

	return err
}

// pointerLimit returns the largest value a pointer of the given byte width
// can hold. Widths are validated to 1..4 before this is reached.
func pointerLimit(width int) int {
	return 1<<(8*width) - 1
}

// ----------------------------------------------------------------------------
// External file contents
// ----------------------------------------------------------------------------

type fieldExternal[S comparable] struct {
	path     string
	declared int
}

func (f fieldExternal[S]) size(int, *Tracker[S]) (int, error) {
	// The declared size is trusted for layout; the real file is read and
	// checked only at emit time.
	return f.declared, nil
}

func (f fieldExternal[S]) emit(w io.WriteSeeker, _ int, _ *Tracker[S]) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("read external file: %w", err)
	}

	if len(data) != f.declared {
		return fmt.Errorf("%w: %s is %d bytes, declared %d",
			errs.ErrExternalSizeMismatch, f.path, len(data), f.declared)
	}

	_, err = w.Write(data)

	return err
}

// ----------------------------------------------------------------------------
// Fill padding
// ----------------------------------------------------------------------------

type fieldFill[S comparable] struct {
	origin S
	fill   int
}

func (f fieldFill[S]) size(offset int, tr *Tracker[S]) (int, error) {
	start, err := tr.SectorOffset(f.origin)
	if err != nil {
		return 0, err
	}

	if offset < start {
		return 0, fmt.Errorf("%w: fill at offset %d precedes origin %v at %d",
			errs.ErrLayoutUnderflow, offset, f.origin, start)
	}

	n := f.fill - (offset - start)
	if n < 0 {
		return 0, fmt.Errorf("%w: fill target %d from %v already passed at offset %d",
			errs.ErrLayoutOverflow, f.fill, f.origin, offset)
	}

	return n, nil
}

func (f fieldFill[S]) emit(w io.WriteSeeker, offset int, tr *Tracker[S]) error {
	n, err := f.size(offset, tr)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	// Advance instead of writing zeros: on files this produces a sparse run,
	// and the build driver guarantees the output is extended to full length.
	if _, err := w.Seek(int64(n), io.SeekCurrent); err != nil {
		return fmt.Errorf("advance past fill: %w", err)
	}

	return nil
}

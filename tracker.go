package serseg

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/calctools/serseg/errs"
)

// Tracker caches the absolute start offset of every sector in a builder.
//
// It is created on entry to Build by a single size-only walk over all sectors
// in insertion order, and discarded when the build finishes. Offsets are
// monotonic nondecreasing in insertion order: each sector starts where the
// previous one ended.
//
// During the walk the tracker is only partially populated. Fill fields that
// size themselves against it can therefore only reference origins declared at
// or before their own sector, which is the intended restriction.
type Tracker[S comparable] struct {
	builder *Builder[S]
	offsets map[S]int
	total   int
}

// NewTracker lays out every sector of b and records its start offset.
//
// Returns an error if a sector key is tracked twice, or if any field fails to
// size itself (a fill that underflows or overflows its target, an oversized
// integer literal, an unsupported pointer width).
func NewTracker[S comparable](b *Builder[S]) (*Tracker[S], error) {
	tr := &Tracker[S]{
		builder: b,
		offsets: make(map[S]int, len(b.entries)),
	}

	offset := 0
	for _, e := range b.entries {
		if _, dup := tr.offsets[e.key]; dup {
			return nil, fmt.Errorf("%w: %v", errs.ErrDuplicateSector, e.key)
		}
		tr.offsets[e.key] = offset

		for i, f := range e.sector.fields {
			n, err := f.size(offset, tr)
			if err != nil {
				return nil, fmt.Errorf("sector %v field %d: %w", e.key, i, err)
			}
			offset += n
		}
	}
	tr.total = offset

	Logger().Debug("tracked all sectors",
		zap.Int("sectors", len(b.entries)),
		zap.Int("totalBytes", tr.total),
	)

	return tr, nil
}

// SectorOffset returns the absolute byte offset at which the sector keyed by
// key starts. During layout this only succeeds for sectors that have already
// been placed.
func (tr *Tracker[S]) SectorOffset(key S) (int, error) {
	off, ok := tr.offsets[key]
	if !ok {
		return 0, fmt.Errorf("%w: %v", errs.ErrMissingSector, key)
	}

	return off, nil
}

// Total returns the size in bytes of the fully laid out output.
func (tr *Tracker[S]) Total() int {
	return tr.total
}

// FieldOffset returns the byte distance from the start of sector from to the
// start of field index inside sector to. This is the value a dynamic pointer
// resolves to before scaling.
//
// The target sector must not start before the origin sector; reverse pointers
// are rejected. The index must be strictly less than the target's field count,
// except that index 0 is always accepted: it addresses the start of the
// sector itself, which lets an empty sector serve as an end marker.
func (tr *Tracker[S]) FieldOffset(from S, to S, index int) (int, error) {
	fromOff, err := tr.SectorOffset(from)
	if err != nil {
		return 0, err
	}
	toOff, err := tr.SectorOffset(to)
	if err != nil {
		return 0, err
	}

	if fromOff > toOff {
		return 0, fmt.Errorf("%w: %v at %d, %v at %d",
			errs.ErrOrderingViolation, from, fromOff, to, toOff)
	}

	sector, ok := tr.builder.lookup(to)
	if !ok {
		return 0, fmt.Errorf("%w: %v", errs.ErrMissingSector, to)
	}

	fields := sector.fields
	if index < 0 || (index != 0 && index >= len(fields)) {
		return 0, fmt.Errorf("%w: field %d of sector %v with %d fields",
			errs.ErrIndexOutOfRange, index, to, len(fields))
	}

	offset := toOff - fromOff
	for _, f := range fields[:index] {
		n, err := f.size(offset, tr)
		if err != nil {
			return 0, err
		}
		offset += n
	}

	return offset, nil
}

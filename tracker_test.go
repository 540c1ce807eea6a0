package serseg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calctools/serseg/errs"
)

// part is the sector key type used throughout the package tests.
type part int

const (
	partHeader part = iota
	partTable
	partData
	partEnd
)

func TestTracker_Offsets(t *testing.T) {
	require := require.New(t)

	b := New[part]()
	b.Sector(partHeader).U8(0xFF)
	b.Sector(partTable).DynamicU24(partTable, partData, 0).DynamicU24(partTable, partData, 1)
	b.Sector(partData).String("first string").String("second string")

	tr, err := NewTracker(b)
	require.NoError(err)

	// Each sector starts where the previous one ended
	off, err := tr.SectorOffset(partHeader)
	require.NoError(err)
	require.Equal(0, off)

	off, err = tr.SectorOffset(partTable)
	require.NoError(err)
	require.Equal(1, off)

	off, err = tr.SectorOffset(partData)
	require.NoError(err)
	require.Equal(7, off)

	require.Equal(7+13+14, tr.Total())
}

func TestTracker_SectorOffsetMissing(t *testing.T) {
	b := New[part]()
	b.Sector(partHeader).U8(1)

	tr, err := NewTracker(b)
	require.NoError(t, err)

	_, err = tr.SectorOffset(partData)
	require.ErrorIs(t, err, errs.ErrMissingSector)
}

func TestTracker_FieldOffset(t *testing.T) {
	require := require.New(t)

	b := New[part]()
	b.Sector(partHeader).U8(0xFF)
	b.Sector(partData).String("first string").String("second string")

	tr, err := NewTracker(b)
	require.NoError(err)

	t.Run("index zero is the sector start", func(_ *testing.T) {
		off, err := tr.FieldOffset(partHeader, partData, 0)
		require.NoError(err)
		require.Equal(1, off)
	})

	t.Run("later indices accumulate preceding sizes", func(_ *testing.T) {
		off, err := tr.FieldOffset(partHeader, partData, 1)
		require.NoError(err)
		require.Equal(1+13, off)
	})

	t.Run("same sector origin measures from its own start", func(_ *testing.T) {
		off, err := tr.FieldOffset(partData, partData, 1)
		require.NoError(err)
		require.Equal(13, off)
	})
}

func TestTracker_FieldOffsetEmptySector(t *testing.T) {
	require := require.New(t)

	// An empty trailing sector acts as an end marker: index 0 addresses the
	// position one past the last payload byte.
	b := New[part]()
	b.Sector(partHeader).U8(1).U8(2)
	b.Sector(partEnd)

	tr, err := NewTracker(b)
	require.NoError(err)

	off, err := tr.FieldOffset(partHeader, partEnd, 0)
	require.NoError(err)
	require.Equal(2, off)

	// Any other index into an empty sector is rejected
	_, err = tr.FieldOffset(partHeader, partEnd, 1)
	require.ErrorIs(err, errs.ErrIndexOutOfRange)
}

func TestTracker_FieldOffsetIndexOutOfRange(t *testing.T) {
	b := New[part]()
	b.Sector(partData).U8(1).U8(2)

	tr, err := NewTracker(b)
	require.NoError(t, err)

	_, err = tr.FieldOffset(partData, partData, 2)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	_, err = tr.FieldOffset(partData, partData, -1)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestTracker_FieldOffsetOrderingViolation(t *testing.T) {
	b := New[part]()
	b.Sector(partHeader).U8(1)
	b.Sector(partData).U8(2)

	tr, err := NewTracker(b)
	require.NoError(t, err)

	// The target must not start before the origin
	_, err = tr.FieldOffset(partData, partHeader, 0)
	require.ErrorIs(t, err, errs.ErrOrderingViolation)
}

func TestTracker_FieldOffsetMissingKeys(t *testing.T) {
	b := New[part]()
	b.Sector(partHeader).U8(1)

	tr, err := NewTracker(b)
	require.NoError(t, err)

	_, err = tr.FieldOffset(partTable, partHeader, 0)
	require.ErrorIs(t, err, errs.ErrMissingSector)

	_, err = tr.FieldOffset(partHeader, partTable, 0)
	require.ErrorIs(t, err, errs.ErrMissingSector)
}

func TestTracker_FieldOffsetWalksRelative(t *testing.T) {
	require := require.New(t)

	// The partial walk inside FieldOffset runs on offsets relative to the
	// origin sector, not absolute ones. A fill inside the target sector
	// sizes itself against that relative position: measured from a sector at
	// absolute zero the two coincide and the walk succeeds, but measured
	// from the fill's own sector the walk restarts at zero and underflows.
	// Documented behavior, not a defect.
	b := New[part]()
	b.Sector(partHeader).U8(1).U8(2).U8(3)
	b.Sector(partTable).Fill(partTable, 2).U8(0xAA)

	tr, err := NewTracker(b)
	require.NoError(err)

	off, err := tr.FieldOffset(partHeader, partTable, 1)
	require.NoError(err)
	require.Equal(5, off)

	_, err = tr.FieldOffset(partTable, partTable, 1)
	require.ErrorIs(err, errs.ErrLayoutUnderflow)
}

func TestTracker_FillForwardOriginFailsLayout(t *testing.T) {
	// A fill can only reference an origin laid out at or before its own
	// sector; a later origin is unknown during the layout walk.
	b := New[part]()
	b.Sector(partHeader).Fill(partData, 4)
	b.Sector(partData).U8(1)

	_, err := NewTracker(b)
	require.ErrorIs(t, err, errs.ErrMissingSector)
}

func TestTracker_DuplicateKeyFatal(t *testing.T) {
	// The builder deduplicates on insert, so force a duplicate entry to
	// exercise the tracker's own guard.
	b := New[part]()
	b.Sector(partHeader).U8(1)
	b.entries = append(b.entries, sectorEntry[part]{key: partHeader, sector: NewSector[part]()})

	_, err := NewTracker(b)
	require.ErrorIs(t, err, errs.ErrDuplicateSector)
}

func TestTracker_SizePhaseErrorNamesSector(t *testing.T) {
	b := New[part]()
	b.Sector(partHeader).U8(1)
	b.Sector(partTable).String("Test").Fill(partHeader, 2)

	_, err := NewTracker(b)
	require.ErrorIs(t, err, errs.ErrLayoutOverflow)
	require.ErrorContains(t, err, "field 1")
}

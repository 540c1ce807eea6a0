// Package sink provides in-memory emission targets for the serializer.
//
// The serializer writes through the io.WriteSeeker interface so callers can
// emit straight to an os.File. Buffer is the in-memory alternative: it backs
// the interface with a byte slice, which lets a build be assembled and
// verified fully before anything touches the filesystem.
package sink

import (
	"io"
	"io/fs"
)

// Buffer is an [io.ReadWriteSeeker] and [io.ReaderAt] backed by a byte slice.
//
// Unlike bytes.Buffer it supports seeking, and unlike a file it never fails.
// Seeking beyond the end of the data is allowed; the gap is zero-filled when
// the next write lands past it.
type Buffer struct {
	buf []byte
	pos int
}

var _ io.WriteSeeker = (*Buffer)(nil)
var _ io.ReaderAt = (*Buffer)(nil)

// NewBuffer creates a Buffer over b. A nil slice is a valid empty buffer.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// Bytes returns the underlying slice. The slice is aliased, not copied.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes held by the buffer.
func (b *Buffer) Len() int {
	return len(b.buf)
}

func (b *Buffer) Read(v []byte) (int, error) {
	if b.pos >= len(b.buf) {
		return 0, io.EOF
	}
	n := copy(v, b.buf[b.pos:])
	b.pos += n

	return n, nil
}

func (b *Buffer) ReadAt(v []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(b.buf)) {
		return 0, fs.ErrInvalid
	}

	return copy(v, b.buf[off:]), nil
}

func (b *Buffer) Write(v []byte) (int, error) {
	if len(b.buf) < b.pos+len(v) {
		b.buf = append(b.buf, make([]byte, b.pos+len(v)-len(b.buf))...)
	}
	copy(b.buf[b.pos:], v)
	b.pos += len(v)

	return len(v), nil
}

// Seek sets the position for the next Read or Write. Positions beyond the
// current end are valid; the intervening bytes read as zero once written over.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		// Ok
	case io.SeekCurrent:
		offset += int64(b.pos)
	case io.SeekEnd:
		offset += int64(len(b.buf))
	default:
		return 0, fs.ErrInvalid
	}

	if offset < 0 {
		return 0, fs.ErrInvalid
	}

	b.pos = int(offset)

	return int64(b.pos), nil
}

// Reset discards the buffered data and rewinds the position to zero.
// The underlying capacity is retained for reuse.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.pos = 0
}

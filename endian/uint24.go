package endian

// MaxUint24 is the largest value representable in an unsigned 24-bit integer.
const MaxUint24 = 1<<24 - 1

// Uint24 decodes a 24-bit unsigned integer from the first three bytes of b
// using the byte order of the given engine. It panics if len(b) < 3.
func Uint24(engine EndianEngine, b []byte) uint32 {
	_ = b[2] // bounds check hint to compiler
	if engine == GetBigEndianEngine() {
		return uint32(b[2]) | uint32(b[1])<<8 | uint32(b[0])<<16
	}

	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// PutUint24 encodes the low 24 bits of v into the first three bytes of b
// using the byte order of the given engine. It panics if len(b) < 3.
// Bits above the 24th are discarded, callers that care must range-check
// against MaxUint24 first.
func PutUint24(engine EndianEngine, b []byte, v uint32) {
	_ = b[2] // early bounds check to guarantee safety of writes below
	if engine == GetBigEndianEngine() {
		b[0] = byte(v >> 16)
		b[1] = byte(v >> 8)
		b[2] = byte(v)

		return
	}

	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

// AppendUint24 appends the low 24 bits of v to b using the byte order of the
// given engine and returns the extended slice.
func AppendUint24(engine EndianEngine, b []byte, v uint32) []byte {
	if engine == GetBigEndianEngine() {
		return append(b, byte(v>>16), byte(v>>8), byte(v))
	}

	return append(b, byte(v), byte(v>>8), byte(v>>16))
}

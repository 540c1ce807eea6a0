// Package render turns built asset bytes into source-code form, for projects
// that compile assets into the program image instead of loading files.
package render

import (
	"fmt"
	"strings"
)

const (
	cBytesPerLine   = 12
	asmBytesPerLine = 16
)

// Identifier sanitizes name into a symbol usable in C and assembly: ASCII
// letters, digits and underscores survive, everything else becomes an
// underscore, and a leading digit is prefixed with one.
func Identifier(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}

	return b.String()
}

// CArray renders data as a C compilation unit declaring one constant byte
// array plus its length, in the style of xxd -i.
func CArray(name string, data []byte) string {
	ident := Identifier(name)

	var b strings.Builder
	fmt.Fprintf(&b, "static const unsigned char %s[] = {\n", ident)
	for i, v := range data {
		switch {
		case i%cBytesPerLine == 0:
			b.WriteString("    ")
		default:
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0x%02x", v)
		if i != len(data)-1 {
			b.WriteByte(',')
		}
		if i%cBytesPerLine == cBytesPerLine-1 || i == len(data)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString("};\n")
	fmt.Fprintf(&b, "static const unsigned int %s_len = %d;\n", ident, len(data))

	return b.String()
}

// Assembly renders data as fasmg db directives under a label, with the
// asset length bound to a dotted local symbol.
func Assembly(name string, data []byte) string {
	ident := Identifier(name)

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", ident)
	for i, v := range data {
		switch {
		case i%asmBytesPerLine == 0:
			b.WriteString("\tdb\t")
		default:
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "$%02X", v)
		if i%asmBytesPerLine == asmBytesPerLine-1 || i == len(data)-1 {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, ".len := %d\n", len(data))

	return b.String()
}

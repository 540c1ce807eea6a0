// Package format enumerates the renderings an asset build can produce.
package format

import "fmt"

type Output uint8

const (
	OutputBinary   Output = 0x1 // OutputBinary represents the raw asset bytes with no wrapper.
	OutputC        Output = 0x2 // OutputC represents a C header carrying the asset as a byte array.
	OutputAssembly Output = 0x3 // OutputAssembly represents a fasmg-compatible assembly rendering.
)

func (o Output) String() string {
	switch o {
	case OutputBinary:
		return "bin"
	case OutputC:
		return "c"
	case OutputAssembly:
		return "asm"
	default:
		return "unknown"
	}
}

// Extension returns the conventional file extension for the format,
// including the leading dot.
func (o Output) Extension() string {
	switch o {
	case OutputC:
		return ".h"
	case OutputAssembly:
		return ".asm"
	default:
		return ".bin"
	}
}

// ParseOutput maps a user-supplied name to its Output value. Accepted names
// are "bin", "c", and "asm".
func ParseOutput(s string) (Output, error) {
	switch s {
	case "bin":
		return OutputBinary, nil
	case "c":
		return OutputC, nil
	case "asm":
		return OutputAssembly, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want bin, c, or asm)", s)
	}
}

package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "fontpack", want: "fontpack"},
		{name: "filename", in: "my-pack.bin", want: "my_pack_bin"},
		{name: "leading digit", in: "8x8tiles", want: "_8x8tiles"},
		{name: "empty", in: "", want: "_"},
		{name: "unicode squashed", in: "héllo", want: "h_llo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Identifier(tt.in))
		})
	}
}

func TestCArray(t *testing.T) {
	got := CArray("demo", []byte{0x46, 0x4F, 0x00})

	want := "static const unsigned char demo[] = {\n" +
		"    0x46, 0x4f, 0x00\n" +
		"};\n" +
		"static const unsigned int demo_len = 3;\n"
	require.Equal(t, want, got)
}

func TestCArrayWraps(t *testing.T) {
	require := require.New(t)

	got := CArray("demo", make([]byte, 13))
	want := "static const unsigned char demo[] = {\n" +
		"    0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,\n" +
		"    0x00\n" +
		"};\n" +
		"static const unsigned int demo_len = 13;\n"
	require.Equal(want, got)
}

func TestAssembly(t *testing.T) {
	got := Assembly("demo", []byte{0xAB, 0x01})

	want := "demo:\n" +
		"\tdb\t$AB,$01\n" +
		".len := 2\n"
	require.Equal(t, want, got)
}

func TestAssemblyWraps(t *testing.T) {
	got := Assembly("demo", make([]byte, 17))

	want := "demo:\n" +
		"\tdb\t$00,$00,$00,$00,$00,$00,$00,$00,$00,$00,$00,$00,$00,$00,$00,$00\n" +
		"\tdb\t$00\n" +
		".len := 17\n"
	require.Equal(t, want, got)
}

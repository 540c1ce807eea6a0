// Package sprite loads PNG art and renders it into the flat pixel formats
// calculator programs consume: full RGB triples, the palette-free single
// byte RGB332 encoding, and set/unset monochrome pixels.
package sprite

// RGB24 is one fully decoded pixel.
type RGB24 struct {
	R uint8
	G uint8
	B uint8
}

// RGB332 packs the pixel into a single byte: bits 7-5 carry red, bits 4-3
// carry blue, bits 2-0 carry green. Green keeps three bits because the eye
// resolves it best; blue is squeezed to two.
func (c RGB24) RGB332() uint8 {
	red := (c.R / 32) << 5
	green := c.G / 32
	blue := (c.B / 64) << 3

	return red | green | blue
}

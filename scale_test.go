package serseg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRounding_Apply(t *testing.T) {
	tests := []struct {
		name     string
		rounding Rounding
		value    int
		scale    int
		want     int
	}{
		{name: "floor 11/3", rounding: RoundFloor, value: 11, scale: 3, want: 3},
		{name: "floor 10/10", rounding: RoundFloor, value: 10, scale: 10, want: 1},
		{name: "floor 26/5", rounding: RoundFloor, value: 26, scale: 5, want: 5},
		{name: "ceiling 11/3", rounding: RoundCeiling, value: 11, scale: 3, want: 4},
		{name: "ceiling 10/10", rounding: RoundCeiling, value: 10, scale: 10, want: 1},
		{name: "ceiling 26/5", rounding: RoundCeiling, value: 26, scale: 5, want: 6},
		{name: "nearest 11/3", rounding: RoundNearest, value: 11, scale: 3, want: 4},
		{name: "nearest 10/10", rounding: RoundNearest, value: 10, scale: 10, want: 1},
		{name: "nearest 26/5", rounding: RoundNearest, value: 26, scale: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.rounding.Apply(tt.value, tt.scale))
		})
	}
}

func TestRounding_NearestIsLiteral(t *testing.T) {
	require := require.New(t)

	// The nearest rule is parity-driven: even values divide down, odd values
	// are bumped by one first. It is not round-half-to-even.
	require.Equal(2, RoundNearest.Apply(4, 2))
	require.Equal(3, RoundNearest.Apply(5, 2))
	require.Equal(3, RoundNearest.Apply(6, 2))
	require.Equal(4, RoundNearest.Apply(7, 2))
}

func TestRounding_String(t *testing.T) {
	require.Equal(t, "floor", RoundFloor.String())
	require.Equal(t, "ceiling", RoundCeiling.String())
	require.Equal(t, "nearest", RoundNearest.String())
	require.Equal(t, "unknown", Rounding(200).String())
}

func TestScaleSpec(t *testing.T) {
	require := require.New(t)

	// Scale defaults to floor rounding
	require.Equal(3, Scale(3).apply(11))
	require.Equal(4, Scale(3).Round(RoundCeiling).apply(11))
	require.Equal(4, Scale(3).Round(RoundNearest).apply(11))

	// The zero value behaves as unscaled
	var spec ScaleSpec
	require.Equal(42, spec.apply(42))
}

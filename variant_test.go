package draughts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeVariantAliases(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"standard", Standard},
		{"From Position", Standard},
		{"american", English},
		{"ENGLISH", English},
		{"frysk", Frysk},
		{"frysk!", Frysk},
		{"turkish", Turkish},
	}
	for _, tc := range tests {
		got, err := NormalizeVariant(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalizeVariantUnknown(t *testing.T) {
	_, err := NormalizeVariant("chess")
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestStartingSquareCounts(t *testing.T) {
	tests := []struct {
		v               Variant
		white, black    int
		totalSquares    int
	}{
		{Standard, 20, 20, 50},
		{English, 12, 12, 32},
		{Italian, 12, 12, 32},
		{Russian, 12, 12, 32},
		{Brazilian, 12, 12, 32},
		{Turkish, 16, 16, 64},
		{Frisian, 20, 20, 50},
		{Frysk, 5, 5, 50},
		{Antidraughts, 20, 20, 50},
		{Breakthrough, 20, 20, 50},
	}
	for _, tc := range tests {
		white, black := tc.v.startingSquares()
		require.Len(t, white, tc.white, tc.v)
		require.Len(t, black, tc.black, tc.v)
		require.Equal(t, tc.totalSquares, tc.v.Traits().TotalSquares, tc.v)
	}
}

package units

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPricePerBase(t *testing.T) {
	val, base, err := PricePerBase(1199, 0.75, Liter)
	require.NoError(t, err)
	require.Equal(t, BaseLiter, base)
	require.InDelta(t, 15.9867, val, 0.0001)

	val, base, err = PricePerBase(249, 500, Gram)
	require.NoError(t, err)
	require.Equal(t, BaseKilogram, base)
	require.InDelta(t, 4.98, val, 0.0001)

	val, base, err = PricePerBase(329, 10, Piece)
	require.NoError(t, err)
	require.Equal(t, BasePiece, base)
	require.InDelta(t, 0.329, val, 0.0001)
}

func TestPricePerBaseRejectsBadPackaging(t *testing.T) {
	_, _, err := PricePerBase(100, 0, Liter)
	require.ErrorIs(t, err, ErrInvalidPackaging)

	_, _, err = PricePerBase(100, -1, Kilogram)
	require.ErrorIs(t, err, ErrInvalidPackaging)

	_, _, err = PricePerBase(100, 1, Unit("gal"))
	require.ErrorIs(t, err, ErrInvalidPackaging)
}

func TestParse(t *testing.T) {
	u, err := Parse(" KG ")
	require.NoError(t, err)
	require.Equal(t, Kilogram, u)

	u, err = Parse("kos")
	require.NoError(t, err)
	require.Equal(t, Piece, u)

	_, err = Parse("oz")
	require.ErrorIs(t, err, ErrInvalidPackaging)
}

func TestCompatible(t *testing.T) {
	require.True(t, Compatible(Liter, Milliliter))
	require.True(t, Compatible(Gram, Kilogram))
	require.False(t, Compatible(Liter, Kilogram))
	require.False(t, Compatible(Piece, Gram))
	require.False(t, Compatible(Unit("gal"), Liter))
}

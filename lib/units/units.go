package units

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is a packaging unit as stored on a canonical item.
type Unit string

const (
	Liter      Unit = "l"
	Milliliter Unit = "ml"
	Kilogram   Unit = "kg"
	Gram       Unit = "g"
	Piece      Unit = "pcs"
)

// Base is the unit prices get normalized to: liter for volume,
// kilogram for mass, a single piece for count.
type Base string

const (
	BaseLiter    Base = "l"
	BaseKilogram Base = "kg"
	BasePiece    Base = "pcs"
)

var ErrInvalidPackaging = errors.New("invalid packaging")

// toBase maps a unit to its base unit and the factor that converts a
// size in that unit into the base unit.
var toBase = map[Unit]struct {
	base   Base
	factor float64
}{
	Liter:      {BaseLiter, 1},
	Milliliter: {BaseLiter, 1.0 / 1000},
	Kilogram:   {BaseKilogram, 1},
	Gram:       {BaseKilogram, 1.0 / 1000},
	Piece:      {BasePiece, 1},
}

// Parse normalizes a user-supplied unit string. "kos" is accepted as an
// alias for pieces since the store pages label count packs that way.
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l":
		return Liter, nil
	case "ml":
		return Milliliter, nil
	case "kg":
		return Kilogram, nil
	case "g":
		return Gram, nil
	case "pcs", "kos":
		return Piece, nil
	}
	return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidPackaging, s)
}

// BaseOf returns the base unit a packaging unit normalizes to.
func BaseOf(u Unit) (Base, error) {
	b, ok := toBase[u]
	if !ok {
		return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidPackaging, u)
	}
	return b.base, nil
}

// Compatible reports whether prices of two packaging units can be
// meaningfully compared, i.e. they normalize to the same base unit.
// Unknown units are never compatible.
func Compatible(a, b Unit) bool {
	ab, aok := toBase[a]
	bb, bok := toBase[b]
	return aok && bok && ab.base == bb.base
}

// SizeInBase converts a pack size to its base unit, e.g. 750 ml
// becomes 0.75 l.
func SizeInBase(size float64, u Unit) (float64, Base, error) {
	if size <= 0 {
		return 0, "", fmt.Errorf("%w: size must be > 0, got %g", ErrInvalidPackaging, size)
	}
	b, ok := toBase[u]
	if !ok {
		return 0, "", fmt.Errorf("%w: unknown unit %q", ErrInvalidPackaging, u)
	}
	return size * b.factor, b.base, nil
}

// PricePerBase reduces a pack price to euros per base unit:
// (priceCents/100) / sizeInBaseUnit.
func PricePerBase(priceCents int64, size float64, u Unit) (float64, Base, error) {
	if size <= 0 {
		return 0, "", fmt.Errorf("%w: size must be > 0, got %g", ErrInvalidPackaging, size)
	}
	b, ok := toBase[u]
	if !ok {
		return 0, "", fmt.Errorf("%w: unknown unit %q", ErrInvalidPackaging, u)
	}
	return (float64(priceCents) / 100.0) / (size * b.factor), b.base, nil
}

package capacity

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is the denomination an amount is expressed in.
type Unit string

const (
	// UnitShannon is the smallest, indivisible denomination.
	UnitShannon Unit = "shannon"
	// UnitCKB is the display denomination, 1 ckb = 10^8 shannons.
	UnitCKB Unit = "ckb"

	// Decimals is the number of decimal places of the display unit.
	Decimals = 8
)

var (
	// ShannonsPerCKB is the denomination factor between the two units.
	ShannonsPerCKB = FromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil))

	// ErrUnknownUnit is returned for unit strings other than shannon or ckb.
	ErrUnknownUnit = errors.New("unit must be either shannon or ckb")
	// ErrFractionalShannons is returned when an amount can not be expressed
	// as a whole number of shannons.
	ErrFractionalShannons = errors.New("amount has more precision than 1 shannon")
)

// ParseUnit returns the Unit for the given label. An empty label resolves to
// the given fallback.
func ParseUnit(label string, fallback Unit) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(label))) {
	case "":
		return fallback, nil
	case UnitShannon:
		return UnitShannon, nil
	case UnitCKB:
		return UnitCKB, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, label)
	}
}

// FromUnit normalizes an amount expressed in the given unit into shannons.
// Amounts in shannon must be integers, amounts in ckb may carry up to 8
// decimal places.
func FromUnit(amount string, unit Unit) (Capacity, error) {
	switch unit {
	case UnitShannon:
		return Parse(amount)
	case UnitCKB:
		d, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return Capacity{}, fmt.Errorf("%w: %q", ErrInvalidCapacity, amount)
		}
		shannons := d.Shift(Decimals)
		if !shannons.Equal(shannons.Truncate(0)) {
			return Capacity{}, fmt.Errorf("%w: %q", ErrFractionalShannons, amount)
		}
		return FromBigInt(shannons.BigInt()), nil
	default:
		return Capacity{}, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
}

// ToCKB formats a shannon amount in the display unit, without trailing
// zeros.
func ToCKB(c Capacity) string {
	return decimal.NewFromBigInt(c.int(), -Decimals).String()
}

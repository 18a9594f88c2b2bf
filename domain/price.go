package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToSmallestUnit converts a display price to the chain's smallest unit.
// The price must be positive and carry at most decimals fractional digits.
func ToSmallestUnit(price decimal.Decimal, decimals int32) (*big.Int, error) {
	if !price.IsPositive() {
		return nil, NewValidationError("Price must be positive", nil)
	}
	scaled := price.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, NewValidationError("Price has more decimals than the chain supports", nil)
	}
	return scaled.BigInt(), nil
}

// FromSmallestUnit is the inverse of ToSmallestUnit
func FromSmallestUnit(amount *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(amount, -decimals)
}

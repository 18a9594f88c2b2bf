package domain

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToSmallestUnit(t *testing.T) {
	req := require.New(t)

	v, err := ToSmallestUnit(decimal.RequireFromString("1.5"), 6)
	req.NoError(err)
	req.Equal("1500000", v.String())

	v, err = ToSmallestUnit(decimal.RequireFromString("0.01"), 18)
	req.NoError(err)
	req.Equal("10000000000000000", v.String())

	_, err = ToSmallestUnit(decimal.RequireFromString("0.0000001"), 6)
	req.ErrorIs(err, ErrValidation)

	_, err = ToSmallestUnit(decimal.Zero, 6)
	req.ErrorIs(err, ErrValidation)

	_, err = ToSmallestUnit(decimal.RequireFromString("-1"), 6)
	req.ErrorIs(err, ErrValidation)

	req.Equal("1.5", FromSmallestUnit(big.NewInt(1500000), 6).String())
}

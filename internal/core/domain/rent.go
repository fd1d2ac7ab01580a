package domain

import (
	"fmt"
	"math/bits"

	"github.com/shopspring/decimal"

	"github.com/nem2-wallet/walletcore/pkg/mathutil"
)

// Rent is the rental fee paid to register a namespace or a mosaic for a
// given duration.
type Rent struct {
	// Absolute is expressed in the currency's smallest unit.
	Absolute           uint64
	Relative           decimal.Decimal
	RelativeWithTicker string
}

// RentFromDurationInBlocks returns the rental fee of duration blocks, priced
// at the currency's dynamic fee multiplier per block. Fees not fitting an
// on-chain amount are rejected with ErrRentOverflow.
func RentFromDurationInBlocks(duration uint64, currency NetworkCurrency) (*Rent, error) {
	hi, absolute := bits.Mul64(duration, currency.DynamicFeeMultiplier)
	if hi != 0 {
		return nil, fmt.Errorf(
			"%w: %d blocks at multiplier %d", ErrRentOverflow,
			duration, currency.DynamicFeeMultiplier,
		)
	}

	relative := mathutil.AbsoluteToRelative(absolute, currency.Divisibility)
	return &Rent{
		Absolute:           absolute,
		Relative:           relative,
		RelativeWithTicker: fmt.Sprintf("%s %s", mathutil.FormatDecimal(relative), currency.Ticker),
	}, nil
}

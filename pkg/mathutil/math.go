package mathutil

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeAmount ...
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrAmountTooPrecise ...
	ErrAmountTooPrecise = errors.New("amount has more decimals than divisibility")
	// ErrAmountOverflow ...
	ErrAmountOverflow = errors.New("amount overflows 64 bits")
)

var maxUint64 = decimal.RequireFromString("18446744073709551615")

// AbsoluteToRelative converts an on-chain integer amount to its relative
// (human) value for an asset of the given divisibility, ie. amount/10^div.
func AbsoluteToRelative(amount uint64, divisibility uint8) decimal.Decimal {
	return decimal.NewFromBigInt(
		new(big.Int).SetUint64(amount), -int32(divisibility),
	)
}

// RelativeToAbsolute converts a relative amount back to on-chain units.
// Amounts with more decimals than divisibility are rejected rather than
// rounded.
func RelativeToAbsolute(amount decimal.Decimal, divisibility uint8) (uint64, error) {
	if amount.IsNegative() {
		return 0, ErrNegativeAmount
	}
	absolute := amount.Shift(int32(divisibility))
	if !absolute.Equal(absolute.Truncate(0)) {
		return 0, fmt.Errorf(
			"%w: %s with divisibility %d", ErrAmountTooPrecise, amount, divisibility,
		)
	}
	if absolute.GreaterThan(maxUint64) {
		return 0, ErrAmountOverflow
	}
	return absolute.BigInt().Uint64(), nil
}

// FormatNumber groups thousands and keeps the natural decimal digits of n,
// ie. 123456.789 -> "123,456.789", 123456 -> "123,456", 0.123456 -> "0.123456".
func FormatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Sprint(n)
	}
	return humanize.Commaf(n)
}

// FormatDecimal is FormatNumber for exact decimal values.
func FormatDecimal(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	intPart := humanize.BigComma(d.Truncate(0).BigInt())
	str := d.String()
	if i := strings.IndexByte(str, '.'); i >= 0 {
		return sign + intPart + str[i:]
	}
	return sign + intPart
}

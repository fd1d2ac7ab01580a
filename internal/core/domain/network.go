package domain

import (
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

const (
	// DefaultEpochAdjustment is the Symbol network epoch, in seconds since the
	// unix epoch.
	DefaultEpochAdjustment int64 = 1615853185
	// DefaultDynamicFeeMultiplier is used when no node reported the median
	// fee multiplier.
	DefaultDynamicFeeMultiplier uint64 = 10
	// MaxDivisibility is the max number of decimals of a mosaic.
	MaxDivisibility uint8 = 6
)

// NetworkCurrency is the mosaic used to pay fees and rental fees.
type NetworkCurrency struct {
	MosaicID             string
	NamespaceID          string
	Ticker               string
	Divisibility         uint8
	DynamicFeeMultiplier uint64
}

func (c NetworkCurrency) Validate() error {
	if len(c.Ticker) <= 0 {
		return ErrNullTicker
	}
	if c.Divisibility > MaxDivisibility {
		return ErrInvalidDivisibility
	}
	return nil
}

// IsCurrency tells whether the given mosaic, or mosaic alias, id refers to
// the network currency.
func (c NetworkCurrency) IsCurrency(id string) bool {
	return len(id) > 0 && (id == c.MosaicID || id == c.NamespaceID)
}

// NetworkProperties are the properties of a network instance needed to
// present its transactions.
type NetworkProperties struct {
	GenerationHash  string
	EpochAdjustment int64
	NetworkType     wallet.NetworkType
	Currency        NetworkCurrency
}

func (p NetworkProperties) Validate() error {
	if len(p.GenerationHash) <= 0 {
		return ErrNullGenerationHash
	}
	if p.EpochAdjustment <= 0 {
		return ErrInvalidEpochAdjustment
	}
	if !p.NetworkType.IsValid() {
		return wallet.ErrInvalidNetworkType
	}
	return p.Currency.Validate()
}

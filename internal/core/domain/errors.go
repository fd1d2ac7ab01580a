package domain

import "errors"

var (
	// ErrUnknownTransactionType ...
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	// ErrNullTicker is returned when a network currency has no ticker.
	ErrNullTicker = errors.New("currency ticker must not be empty")
	// ErrInvalidDivisibility is returned when a network currency has more
	// decimals than the protocol allows.
	ErrInvalidDivisibility = errors.New("currency divisibility must be in range [0, 6]")
	// ErrNullGenerationHash ...
	ErrNullGenerationHash = errors.New("generation hash must not be empty")
	// ErrInvalidEpochAdjustment ...
	ErrInvalidEpochAdjustment = errors.New("epoch adjustment must be positive")
	// ErrRentOverflow is returned when a rental fee does not fit 64 bits.
	ErrRentOverflow = errors.New("rental fee overflows 64 bits")
)

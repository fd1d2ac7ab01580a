package application

import "errors"

var (
	// ErrNullAccountName ...
	ErrNullAccountName = errors.New("account name must not be empty")
	// ErrProfileAlreadyExists ...
	ErrProfileAlreadyExists = errors.New("profile already exists")
	// ErrProfileNotFound ...
	ErrProfileNotFound = errors.New("profile not found")
	// ErrWalletNotFound ...
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrInvalidPassphrase is returned when the passphrase does not unlock the
	// profile.
	ErrInvalidPassphrase = errors.New("passphrase is not valid")
	// ErrMaxSeedWalletsReached is returned when every seed index of a profile
	// is already in use.
	ErrMaxSeedWalletsReached = errors.New("max number of seed wallets reached")
	// ErrNotSeedWallet is returned when deriving remote accounts of a wallet
	// that was not derived from the profile mnemonic.
	ErrNotSeedWallet = errors.New("wallet is not a seed wallet")
	// ErrNetworkNotFound is returned when no properties are cached for the
	// requested network.
	ErrNetworkNotFound = errors.New("network properties not found")
	// ErrNetworkMismatch is returned when the node belongs to a network
	// different from the configured one.
	ErrNetworkMismatch = errors.New("node network type does not match")
)

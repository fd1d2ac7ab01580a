package application

import (
	"github.com/nem2-wallet/walletcore/internal/core/domain"
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

const (
	WalletTypeSeed    = "SEED"
	WalletTypePrivate = "PRIVATE_KEY"

	defaultLanguage = "en-US"
	seedWalletName  = "Seed Account %d"
)

type CreateProfileRequest struct {
	AccountName string
	Passphrase  string
	Hint        string
	// Mnemonic is generated if empty.
	Mnemonic       string
	NetworkType    wallet.NetworkType
	GenerationHash string
	// DefaultFee is the max fee, in absolute units, preset for the profile's
	// transactions.
	DefaultFee uint64
}

func (r CreateProfileRequest) validate() error {
	if len(r.AccountName) <= 0 {
		return ErrNullAccountName
	}
	if len(r.Passphrase) <= 0 {
		return wallet.ErrNullPassphrase
	}
	if !r.NetworkType.IsValid() {
		return wallet.ErrInvalidNetworkType
	}
	return nil
}

// Profile is returned on creation only, as it carries the mnemonic in plain
// text for backup.
type Profile struct {
	AccountName string
	Mnemonic    string
	Wallet      WalletInfo
}

// WalletInfo is the public view of a stored wallet.
type WalletInfo struct {
	ID          string
	AccountName string
	Name        string
	Type        string
	Address     string
	PublicKey   string
	Path        string
	IsMultisig  bool
}

// NetworkCache is what is cached for every network the wallet connected to.
type NetworkCache struct {
	Properties  domain.NetworkProperties
	NodeURL     string
	ChainHeight uint64
}

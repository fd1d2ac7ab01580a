package wallet

import (
	"crypto/ed25519"
	"encoding/hex"
	"strings"
)

// Account is an ed25519 key pair derived at some path of a mnemonic.
type Account struct {
	PrivateKey ed25519.PrivateKey
	PublicKey  ed25519.PublicKey
	Address    Address
	Path       string
}

// PublicKeyHex returns the upper case hex encoded public key.
func (a *Account) PublicKeyHex() string {
	return strings.ToUpper(hex.EncodeToString(a.PublicKey))
}

// PrivateKeyHex returns the upper case hex encoded 32 bytes private key seed.
func (a *Account) PrivateKeyHex() string {
	return strings.ToUpper(hex.EncodeToString(a.PrivateKey.Seed()))
}

// CreateAccount deterministically derives the account at the default path
// m/44'/43'/0'/0'/0' from the given mnemonic.
func CreateAccount(mnemonic string, networkType NetworkType) (*Account, error) {
	return CreateAccountAtPath(mnemonic, DefaultDerivationPath.String(), networkType)
}

// CreateSubWalletByPathNumber derives the seed wallet account at the given
// seed index.
func CreateSubWalletByPathNumber(
	mnemonic string, index int, networkType NetworkType,
) (*Account, error) {
	path, err := DerivationPathFromSeedIndex(index)
	if err != nil {
		return nil, err
	}
	return CreateAccountAtPath(mnemonic, path, networkType)
}

// CreateAccountAtPath derives the account at an arbitrary hardened path.
func CreateAccountAtPath(
	mnemonic, path string, networkType NetworkType,
) (*Account, error) {
	if len(strings.TrimSpace(mnemonic)) <= 0 {
		return nil, ErrNullMnemonic
	}
	words := strings.Fields(mnemonic)
	if !isMnemonicValid(words) {
		return nil, ErrInvalidMnemonic
	}
	if !networkType.IsValid() {
		return nil, ErrInvalidNetworkType
	}

	derivationPath, err := ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	seed := generateSeedFromMnemonic(words)
	node, err := deriveKeyFromSeed(seed, derivationPath)
	if err != nil {
		return nil, err
	}

	prvkey := ed25519.NewKeyFromSeed(node.key)
	pubkey := prvkey.Public().(ed25519.PublicKey)
	address, err := NewAddressFromPublicKey(pubkey, networkType)
	if err != nil {
		return nil, err
	}

	return &Account{
		PrivateKey: prvkey,
		PublicKey:  pubkey,
		Address:    address,
		Path:       derivationPath.String(),
	}, nil
}

package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic must not be null")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrNullPlainText ...
	ErrNullPlainText = errors.New("text to encrypt must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cypher to decrypt must not be null")
	// ErrNullDerivationPath ...
	ErrNullDerivationPath = errors.New("derivation path must not be null")
	// ErrNullSeedIndex ...
	ErrNullSeedIndex = errors.New("seed index must not be null")
	// ErrNullPublicKey ...
	ErrNullPublicKey = errors.New("public key must not be null")

	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = errors.New(
		"entropy size must be a multiple of 32 in the range [128,256]",
	)
	// ErrInvalidCypherText ...
	ErrInvalidCypherText = errors.New("cypher and iv must be hex encoded")
	// ErrInvalidPassphraseVerifier ...
	ErrInvalidPassphraseVerifier = errors.New("passphrase verifier is malformed")
	// ErrInvalidDerivationPath ...
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	// ErrInvalidSeedIndex ...
	ErrInvalidSeedIndex = errors.New("seed index is out of range")
	// ErrInvalidRemoteIndex ...
	ErrInvalidRemoteIndex = errors.New("remote index is out of range")
	// ErrInvalidDerivationPathLevel ...
	ErrInvalidDerivationPathLevel = errors.New("invalid derivation path level")
	// ErrInvalidNetworkType ...
	ErrInvalidNetworkType = errors.New("network type is not supported")
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New("address is invalid")
	// ErrInvalidPublicKey ...
	ErrInvalidPublicKey = errors.New("public key must be a 32 byte array")

	// ErrReservedRemoteIndex ...
	ErrReservedRemoteIndex = errors.New(
		"remote index 0 is reserved to the seed wallet",
	)
	// ErrMalformedDerivationPath ...
	ErrMalformedDerivationPath = errors.New(
		"path must not start or end with a '/' and " +
			"can optionally start with 'm/' for absolute paths",
	)
	// ErrMalformedSeedWalletPath ...
	ErrMalformedSeedWalletPath = errors.New(
		"seed wallet path must be in the form m/44'/43'/N'/M'/0'",
	)
	// ErrHardenedOnly ...
	ErrHardenedOnly = errors.New("ed25519 keys support hardened derivation only")
)

// NetworkType is the network identifier byte that prefixes addresses.
type NetworkType uint8

const (
	MainNet   NetworkType = 0x68
	TestNet   NetworkType = 0x98
	Mijin     NetworkType = 0x60
	MijinTest NetworkType = 0x90
)

var networkTypeNames = map[NetworkType]string{
	MainNet:   "MAIN_NET",
	TestNet:   "TEST_NET",
	Mijin:     "MIJIN",
	MijinTest: "MIJIN_TEST",
}

func (n NetworkType) String() string {
	if name, ok := networkTypeNames[n]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(n))
}

// IsValid returns whether n is one of the supported network types.
func (n NetworkType) IsValid() bool {
	_, ok := networkTypeNames[n]
	return ok
}

// NetworkTypeFromString parses names like "MIJIN_TEST".
func NetworkTypeFromString(name string) (NetworkType, error) {
	for nt, n := range networkTypeNames {
		if n == name {
			return nt, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidNetworkType, name)
}

package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/vulpemventures/go-bip39"
)

// curveSeed is the SLIP-10 HMAC key for the ed25519 curve.
var curveSeed = []byte("ed25519 seed")

func generateMnemonic(entropySize int) ([]string, error) {
	entropy, err := bip39.NewEntropy(entropySize)
	if err != nil {
		return nil, err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, err
	}
	return strings.Split(mnemonic, " "), nil
}

func generateSeedFromMnemonic(mnemonic []string) []byte {
	m := strings.Join(mnemonic, " ")
	return bip39.NewSeed(m, "")
}

func isMnemonicValid(mnemonic []string) bool {
	if len(mnemonic) <= 0 {
		return false
	}
	m := strings.Join(mnemonic, " ")
	return bip39.IsMnemonicValid(m)
}

// extendedKey is a SLIP-10 ed25519 node: a 32 byte private key and its chain
// code.
type extendedKey struct {
	key       []byte
	chainCode []byte
}

func newMasterKey(seed []byte) *extendedKey {
	mac := hmac.New(sha512.New, curveSeed)
	mac.Write(seed)
	sum := mac.Sum(nil)
	return &extendedKey{key: sum[:32], chainCode: sum[32:]}
}

func (k *extendedKey) derive(index uint32) (*extendedKey, error) {
	if index < hdkeychain.HardenedKeyStart {
		return nil, ErrHardenedOnly
	}

	data := make([]byte, 0, 37)
	data = append(data, 0x00)
	data = append(data, k.key...)
	var ser [4]byte
	binary.BigEndian.PutUint32(ser[:], index)
	data = append(data, ser[:]...)

	mac := hmac.New(sha512.New, k.chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)
	return &extendedKey{key: sum[:32], chainCode: sum[32:]}, nil
}

func deriveKeyFromSeed(seed []byte, path DerivationPath) (*extendedKey, error) {
	node := newMasterKey(seed)
	for _, step := range path {
		var err error
		node, err = node.derive(step)
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

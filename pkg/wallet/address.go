package wallet

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"

	//nolint:staticcheck
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

const (
	addressDecodedSize  = 25
	addressEncodedSize  = 40
	addressChecksumSize = 4
	prettyGroupSize     = 6
)

// Address is a network bound account identifier in its plain base32 form.
type Address struct {
	plain       string
	networkType NetworkType
}

// NewAddressFromPublicKey builds the address of the given ed25519 public key
// for the network.
func NewAddressFromPublicKey(
	publicKey []byte, networkType NetworkType,
) (Address, error) {
	if len(publicKey) <= 0 {
		return Address{}, ErrNullPublicKey
	}
	if len(publicKey) != 32 {
		return Address{}, ErrInvalidPublicKey
	}
	if !networkType.IsValid() {
		return Address{}, ErrInvalidNetworkType
	}

	sha := sha3.Sum256(publicKey)
	ripe := ripemd160.New()
	ripe.Write(sha[:])

	decoded := make([]byte, 0, addressDecodedSize)
	decoded = append(decoded, byte(networkType))
	decoded = ripe.Sum(decoded)
	checksum := sha3.Sum256(decoded)
	decoded = append(decoded, checksum[:addressChecksumSize]...)

	return Address{
		plain:       base32.StdEncoding.EncodeToString(decoded),
		networkType: networkType,
	}, nil
}

// NewAddressFromRaw parses a plain or pretty address, checking its checksum.
func NewAddressFromRaw(raw string) (Address, error) {
	plain := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", ""))
	if len(plain) != addressEncodedSize {
		return Address{}, fmt.Errorf(
			"%w: expected %d chars, got %d",
			ErrInvalidAddress, addressEncodedSize, len(plain),
		)
	}
	decoded, err := base32.StdEncoding.DecodeString(plain)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}

	body := decoded[:addressDecodedSize-addressChecksumSize]
	checksum := sha3.Sum256(body)
	if !bytes.Equal(checksum[:addressChecksumSize], decoded[len(body):]) {
		return Address{}, fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}

	networkType := NetworkType(decoded[0])
	if !networkType.IsValid() {
		return Address{}, ErrInvalidNetworkType
	}
	return Address{plain: plain, networkType: networkType}, nil
}

// Plain returns the 40 chars base32 form.
func (a Address) Plain() string {
	return a.plain
}

// Pretty returns the plain form split in groups of 6 chars joined by '-'.
func (a Address) Pretty() string {
	var b strings.Builder
	for i := 0; i < len(a.plain); i += prettyGroupSize {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + prettyGroupSize
		if end > len(a.plain) {
			end = len(a.plain)
		}
		b.WriteString(a.plain[i:end])
	}
	return b.String()
}

func (a Address) NetworkType() NetworkType {
	return a.networkType
}

// Equals compares plain forms.
func (a Address) Equals(other Address) bool {
	return a.plain == other.plain
}

func (a Address) IsZero() bool {
	return a.plain == ""
}

func (a Address) String() string {
	return a.plain
}

// PublicKeyFromHex decodes a hex encoded 32 bytes public key.
func PublicKeyFromHex(publicKey string) ([]byte, error) {
	if len(publicKey) <= 0 {
		return nil, ErrNullPublicKey
	}
	buf, err := hex.DecodeString(publicKey)
	if err != nil || len(buf) != 32 {
		return nil, ErrInvalidPublicKey
	}
	return buf, nil
}

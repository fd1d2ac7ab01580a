package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// SaltSize is the size of the scrypt salt prefixed to encrypted data.
const SaltSize = 32

// ScryptN is the CPU/memory cost of the scrypt key derivation.
// 2^20 = 1048576 is the recommended length for key-stretching, see
// https://godoc.org/golang.org/x/crypto/scrypt
var ScryptN = 1 << 20

// EncryptedData is a secret sealed with AES-256-GCM. Data is the upper case
// hex of salt|cypher and Iv the hex of the GCM nonce, the way wallets store
// them in their encPrivate and encIv columns.
type EncryptedData struct {
	Data string
	Iv   string
}

// String joins iv and data for storage in a single column.
func (e EncryptedData) String() string {
	return e.Iv + ":" + e.Data
}

// ParseEncryptedData reverts EncryptedData.String.
func ParseEncryptedData(str string) (EncryptedData, error) {
	if len(str) <= 0 {
		return EncryptedData{}, ErrNullCypherText
	}
	parts := strings.Split(str, ":")
	if len(parts) != 2 {
		return EncryptedData{}, ErrInvalidCypherText
	}
	e := EncryptedData{Iv: parts[0], Data: parts[1]}
	if _, _, err := e.decode(); err != nil {
		return EncryptedData{}, err
	}
	return e, nil
}

func (e EncryptedData) decode() (data, iv []byte, err error) {
	if len(e.Data) <= 0 {
		return nil, nil, ErrNullCypherText
	}
	data, err = hex.DecodeString(e.Data)
	if err != nil || len(data) <= SaltSize {
		return nil, nil, ErrInvalidCypherText
	}
	iv, err = hex.DecodeString(e.Iv)
	if err != nil || len(iv) <= 0 {
		return nil, nil, ErrInvalidCypherText
	}
	return data, iv, nil
}

// EncryptOpts is the struct given to Encrypt method
type EncryptOpts struct {
	PlainText  string
	Passphrase string
}

func (o EncryptOpts) validate() error {
	if len(o.PlainText) <= 0 {
		return ErrNullPlainText
	}
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Encrypt seals a mnemonic or a hex private key with a key stretched from
// the passphrase.
func Encrypt(opts EncryptOpts) (*EncryptedData, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	key, salt, err := DeriveKey([]byte(opts.Passphrase), nil)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}
	sealed := gcm.Seal(salt, iv, []byte(opts.PlainText), nil)

	return &EncryptedData{
		Data: strings.ToUpper(hex.EncodeToString(sealed)),
		Iv:   strings.ToUpper(hex.EncodeToString(iv)),
	}, nil
}

// DecryptOpts is the struct given to Decrypt method
type DecryptOpts struct {
	Encrypted  EncryptedData
	Passphrase string
}

func (o DecryptOpts) validate() error {
	if _, _, err := o.Encrypted.decode(); err != nil {
		return err
	}
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Decrypt reverts Encrypt. A wrong passphrase makes the GCM authentication
// fail.
func Decrypt(opts DecryptOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	data, iv, _ := opts.Encrypted.decode()
	salt, sealed := data[:SaltSize], data[SaltSize:]

	key, _, err := DeriveKey([]byte(opts.Passphrase), salt)
	if err != nil {
		return "", err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(iv) != gcm.NonceSize() {
		return "", ErrInvalidCypherText
	}

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// NewPassphraseVerifier returns hex(salt|key), key being the scrypt
// derivation of the passphrase. It lets a profile check a passphrase without
// decrypting its mnemonic.
func NewPassphraseVerifier(passphrase string) (string, error) {
	if len(passphrase) <= 0 {
		return "", ErrNullPassphrase
	}
	key, salt, err := DeriveKey([]byte(passphrase), nil)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(append(salt, key...)), nil
}

// VerifyPassphrase compares passphrase against a NewPassphraseVerifier
// output in constant time.
func VerifyPassphrase(passphrase, verifier string) (bool, error) {
	raw, err := hex.DecodeString(verifier)
	if err != nil || len(raw) <= SaltSize {
		return false, ErrInvalidPassphraseVerifier
	}
	salt, expected := raw[:SaltSize], raw[SaltSize:]
	key, _, err := DeriveKey([]byte(passphrase), salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

// DeriveKey derives a 32 byte array key from a custom passhprase
func DeriveKey(passphrase, salt []byte) ([]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, SaltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, err
		}
	}
	key, err := scrypt.Key(passphrase, salt, ScryptN, 8, 1, 32)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(blockCipher)
}

package wallet

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const defaultEntropySize = 256

var (
	shuffleSrc   = rand.New(rand.NewSource(time.Now().UnixNano()))
	shuffleSrcMu sync.Mutex
)

type NewMnemonicOpts struct {
	EntropySize int
}

func (o NewMnemonicOpts) validate() error {
	if o.EntropySize > 0 {
		if o.EntropySize < 128 || o.EntropySize > 256 || o.EntropySize%32 != 0 {
			return ErrInvalidEntropySize
		}
	}
	if o.EntropySize < 0 {
		return ErrInvalidEntropySize
	}
	return nil
}

// NewMnemonic returns a new mnemonic as a list of words. Entropy defaults to
// 256 bits, ie. 24 words.
func NewMnemonic(opts NewMnemonicOpts) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.EntropySize == 0 {
		opts.EntropySize = defaultEntropySize
	}

	return generateMnemonic(opts.EntropySize)
}

// CreateMnemonic returns a fresh 24 words mnemonic joined by spaces.
func CreateMnemonic() (string, error) {
	words, err := NewMnemonic(NewMnemonicOpts{})
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// IsMnemonicValid checks word count, wordlist membership and checksum.
func IsMnemonicValid(mnemonic string) bool {
	return isMnemonicValid(strings.Fields(mnemonic))
}

// RandomizeMnemonicWordArray returns the given words in random order. Words
// are drawn one at a time from a shrinking pool, so any word may end up in
// its original position. The input slice is left untouched.
func RandomizeMnemonicWordArray(words []string) []string {
	pool := make([]string, len(words))
	copy(pool, words)

	shuffleSrcMu.Lock()
	defer shuffleSrcMu.Unlock()

	randomized := make([]string, 0, len(words))
	for len(pool) > 0 {
		i := shuffleSrc.Intn(len(pool))
		randomized = append(randomized, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return randomized
}

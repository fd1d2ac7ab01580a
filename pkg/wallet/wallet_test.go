package wallet

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon art"

func TestCreateMnemonic(t *testing.T) {
	for i := 0; i < 10; i++ {
		mnemonic, err := CreateMnemonic()
		require.NoError(t, err)
		assert.Len(t, strings.Split(mnemonic, " "), 24)
		assert.True(t, IsMnemonicValid(mnemonic))
	}

	m1, _ := CreateMnemonic()
	m2, _ := CreateMnemonic()
	assert.NotEqual(t, m1, m2)
}

func TestNewMnemonic(t *testing.T) {
	tests := []struct {
		entropySize int
		numOfWords  int
	}{
		{0, 24},
		{128, 12},
		{160, 15},
		{256, 24},
	}
	for _, tt := range tests {
		words, err := NewMnemonic(NewMnemonicOpts{EntropySize: tt.entropySize})
		require.NoError(t, err)
		assert.Len(t, words, tt.numOfWords)
	}
}

func TestFailingNewMnemonic(t *testing.T) {
	tests := []int{-1, 127, 257, 130}
	for _, tt := range tests {
		opts := NewMnemonicOpts{
			EntropySize: tt,
		}
		_, err := NewMnemonic(opts)
		assert.Equal(t, ErrInvalidEntropySize, err)
	}
}

func TestRandomizeMnemonicWordArray(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	original := append([]string{}, words...)

	randomized := RandomizeMnemonicWordArray(words)
	require.Len(t, randomized, len(words))
	assert.Equal(t, original, words)

	leftover := append([]string{}, randomized...)
	for _, w := range words {
		for i, r := range leftover {
			if r == w {
				leftover = append(leftover[:i], leftover[i+1:]...)
				break
			}
		}
	}
	assert.Empty(t, leftover)

	duplicates := []string{"zoo", "zoo", "art", "abandon"}
	got := RandomizeMnemonicWordArray(duplicates)
	sort.Strings(got)
	assert.Equal(t, []string{"abandon", "art", "zoo", "zoo"}, got)

	assert.Empty(t, RandomizeMnemonicWordArray(nil))
}

func TestCreateAccount(t *testing.T) {
	account, err := CreateAccount(testMnemonic, MijinTest)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/43'/0'/0'/0'", account.Path)
	assert.Len(t, account.PublicKey, 32)
	assert.Len(t, account.Address.Plain(), 40)
	assert.True(t, strings.HasPrefix(account.Address.Plain(), "S"))
	assert.Len(t, account.PublicKeyHex(), 64)
	assert.Len(t, account.PrivateKeyHex(), 64)

	again, err := CreateAccount(testMnemonic, MijinTest)
	require.NoError(t, err)
	assert.Equal(t, account.Address, again.Address)
	assert.Equal(t, account.PrivateKey, again.PrivateKey)

	seedWallet, err := CreateSubWalletByPathNumber(testMnemonic, 0, MijinTest)
	require.NoError(t, err)
	assert.Equal(t, account.Address, seedWallet.Address)
}

func TestCreateSubWalletByPathNumber(t *testing.T) {
	first, err := CreateSubWalletByPathNumber(testMnemonic, 0, MijinTest)
	require.NoError(t, err)
	second, err := CreateSubWalletByPathNumber(testMnemonic, 1, MijinTest)
	require.NoError(t, err)

	assert.NotEqual(t, first.Address.Plain(), second.Address.Plain())
	assert.Equal(t, "m/44'/43'/1'/0'/0'", second.Path)

	secondAgain, err := CreateSubWalletByPathNumber(testMnemonic, 1, MijinTest)
	require.NoError(t, err)
	assert.Equal(t, second.Address.Plain(), secondAgain.Address.Plain())

	remotePath, err := RemoteAccountPath(second.Path, 1)
	require.NoError(t, err)
	remote, err := CreateAccountAtPath(testMnemonic, remotePath, MijinTest)
	require.NoError(t, err)
	assert.NotEqual(t, second.Address.Plain(), remote.Address.Plain())
}

func TestCreateAccountKnownVectors(t *testing.T) {
	tests := []struct {
		path        string
		networkType NetworkType
		privateKey  string
		publicKey   string
		address     string
	}{
		{
			"m/44'/43'/0'/0'/0'", MijinTest,
			"A4A7D64BA184D7909599F49A326FBD7C6005799FFAB4D9A156DD00C448E05A4A",
			"E09717A2BCCED5BBAA157E5E791C0471CD09C31197F636DCFC37C071A8BD997D",
			"SBCJ6HCER2BAXKFIQSGKDUES7YHGMCZWU6GTDFF3",
		},
		{
			"m/44'/43'/0'/0'/0'", MainNet,
			"A4A7D64BA184D7909599F49A326FBD7C6005799FFAB4D9A156DD00C448E05A4A",
			"E09717A2BCCED5BBAA157E5E791C0471CD09C31197F636DCFC37C071A8BD997D",
			"NBCJ6HCER2BAXKFIQSGKDUES7YHGMCZWU7T66BJC",
		},
		{
			"m/44'/43'/1'/0'/0'", MijinTest,
			"F1C80D6DE920ED26405362BB02BA292179F04C0997878DC5D9CE479D506C9591",
			"752E332DE692B552E724BFB2A1FDB8B51633236BE27BAA7E1F15F6638C82EAFB",
			"SCZQECUQCNWWBKUKW2VOAPGL5JVSG5235HH4L7YQ",
		},
		{
			"m/44'/43'/1'/0'/0'", TestNet,
			"F1C80D6DE920ED26405362BB02BA292179F04C0997878DC5D9CE479D506C9591",
			"752E332DE692B552E724BFB2A1FDB8B51633236BE27BAA7E1F15F6638C82EAFB",
			"TCZQECUQCNWWBKUKW2VOAPGL5JVSG5235GAQSYUH",
		},
		{
			"m/44'/43'/1'/1'/0'", MijinTest,
			"7EDFF9EA631452E539EC1E1EC869AB5EC81CD0A7688225349BFB0F8D2DD36778",
			"9C86545542AC0FA983091F88AAF4956DA75F70DC099519B7D338CDDD674EC48B",
			"SANRIUYFUCXQPBVJAFNAJZYVZQG2VS24DQ2CQNZC",
		},
	}

	for _, tt := range tests {
		account, err := CreateAccountAtPath(testMnemonic, tt.path, tt.networkType)
		require.NoError(t, err)
		assert.Equal(t, tt.privateKey, account.PrivateKeyHex(), tt.path)
		assert.Equal(t, tt.publicKey, account.PublicKeyHex(), tt.path)
		assert.Equal(t, tt.address, account.Address.Plain(), tt.path)
	}
}

func TestFailingCreateAccount(t *testing.T) {
	tests := []struct {
		mnemonic    string
		path        string
		networkType NetworkType
		err         error
	}{
		{"", DefaultDerivationPath.String(), MijinTest, ErrNullMnemonic},
		{
			"legal winner thank year wave sausage worth useful legal winner thank yellow yellow",
			DefaultDerivationPath.String(), MijinTest, ErrInvalidMnemonic,
		},
		{testMnemonic, DefaultDerivationPath.String(), NetworkType(1), ErrInvalidNetworkType},
		{testMnemonic, "m/44'/43'/0'/0'/0", MijinTest, ErrHardenedOnly},
		{testMnemonic, "", MijinTest, ErrNullDerivationPath},
	}
	for _, tt := range tests {
		_, err := CreateAccountAtPath(tt.mnemonic, tt.path, tt.networkType)
		assert.Equal(t, tt.err, err)
	}

	_, err := CreateSubWalletByPathNumber(testMnemonic, MaxSeedWalletsNumber, MijinTest)
	assert.ErrorIs(t, err, ErrInvalidSeedIndex)
}

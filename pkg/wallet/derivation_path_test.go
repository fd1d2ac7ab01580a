package wallet

import (
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const h = hdkeychain.HardenedKeyStart

func TestParseDerivationPath(t *testing.T) {
	tests := []struct {
		input  string
		output DerivationPath
		err    error
	}{
		// Plain absolute derivation paths
		{"m/44'/43'/0'/0'/0'", DerivationPath{h + 44, h + 43, h, h, h}, nil},
		{"m/44'/43'/9'/3'/0'", DerivationPath{h + 44, h + 43, h + 9, h + 3, h}, nil},
		{"m/44'/43'/0'/0", DerivationPath{h + 44, h + 43, h, 0}, nil},
		{"m/2147483692/2147483691/2147483648", DerivationPath{h + 44, h + 43, h}, nil},

		// Wallet paths not usable for ed25519 keys still parse
		{"m/44'/43'/1'/2'/0", DerivationPath{h + 44, h + 43, h + 1, h + 2, 0}, nil},
		{"m/44/43/0/0/0", DerivationPath{44, 43, 0, 0, 0}, nil},
		{"m/44'/4343'/0'/0'/0'", DerivationPath{h + 44, h + 4343, h, h, h}, nil},

		// Hexadecimal absolute derivation paths
		{"m/0x2c'/0x2b'/0x00'", DerivationPath{h + 44, h + 43, h}, nil},

		// Weird inputs just to ensure they work
		{"	m  /   44			'\n/\n   43	\n\n\t'   /\n0 ' ", DerivationPath{h + 44, h + 43, h}, nil},

		// Relative derivation paths
		{"0'/0'", DerivationPath{h, h}, nil},

		// Invalid derivation paths
		{"", nil, ErrNullDerivationPath},
		{"m", nil, ErrMalformedDerivationPath},
		{"m/", nil, ErrMalformedDerivationPath},
		{"/44'/43'/0'", nil, ErrMalformedDerivationPath},
		{"m/2147483648'", nil, nil},
		{"m/-1'", nil, nil},
		{"0", nil, ErrMalformedDerivationPath},
	}
	for _, tt := range tests {
		path, err := ParseDerivationPath(tt.input)
		if err != nil {
			if tt.err != nil {
				assert.Equal(t, tt.err, err)
			}
		}
		assert.Equal(t, tt.output, path)
	}
}

func TestParsedWalletPathRejection(t *testing.T) {
	tests := []struct {
		path string
		err  error
	}{
		{"m/44'/43'/1'/2'/0", ErrMalformedSeedWalletPath},
		{"m/44/43/0/0/0", ErrMalformedSeedWalletPath},
		{"m/44'/4343'/0'/0'/0'", ErrMalformedSeedWalletPath},
		{"m/44'/43'/0'/0'", ErrMalformedSeedWalletPath},
	}
	for _, tt := range tests {
		path, err := ParseDerivationPath(tt.path)
		require.NoError(t, err)
		assert.ErrorIs(t, validateWalletPath(path), tt.err, tt.path)

		_, err = IncrementPathLevel(tt.path, LevelAccount, 1)
		assert.ErrorIs(t, err, tt.err, tt.path)
	}

	_, err := CreateAccountAtPath(testMnemonic, "m/44'/43'/1'/2'/0", MijinTest)
	assert.Equal(t, ErrHardenedOnly, err)
	_, err = CreateAccountAtPath(testMnemonic, "m/44/43/0/0/0", MijinTest)
	assert.Equal(t, ErrHardenedOnly, err)
}

func TestDerivationPathString(t *testing.T) {
	assert.Equal(t, "m/44'/43'/0'/0'/0'", DefaultDerivationPath.String())
	assert.Equal(t, "m/0/1'", DerivationPath{0, h + 1}.String())
	assert.Equal(t, "", DerivationPath{}.String())
}

func TestDerivationPathFromSeedIndex(t *testing.T) {
	for i := 0; i < MaxSeedWalletsNumber; i++ {
		path, err := DerivationPathFromSeedIndex(i)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("m/44'/43'/%d'/0'/0'", i), path)
		assert.Len(t, path, 18)
	}
}

func TestFailingDerivationPathFromSeedIndex(t *testing.T) {
	tests := []int{-1, MaxSeedWalletsNumber, 100}
	for _, tt := range tests {
		_, err := DerivationPathFromSeedIndex(tt)
		assert.ErrorIs(t, err, ErrInvalidSeedIndex)
	}

	_, err := DerivationPathFromSeedIndexPtr(nil)
	assert.Equal(t, ErrNullSeedIndex, err)

	index := 3
	path, err := DerivationPathFromSeedIndexPtr(&index)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/43'/3'/0'/0'", path)
}

func TestRemoteAccountPath(t *testing.T) {
	for seedIndex := 0; seedIndex < MaxSeedWalletsNumber; seedIndex++ {
		seedPath, err := DerivationPathFromSeedIndex(seedIndex)
		require.NoError(t, err)

		for remoteIndex := 1; remoteIndex < MaxRemoteAccountChecks; remoteIndex++ {
			remotePath, err := RemoteAccountPath(seedPath, remoteIndex)
			require.NoError(t, err)
			assert.Equal(
				t,
				fmt.Sprintf("m/44'/43'/%d'/%d'/0'", seedIndex, remoteIndex),
				remotePath,
			)

			gotSeedIndex, err := SeedIndexFromPath(remotePath)
			require.NoError(t, err)
			assert.Equal(t, seedIndex, gotSeedIndex)
		}
	}
}

func TestFailingRemoteAccountPath(t *testing.T) {
	tests := []struct {
		path        string
		remoteIndex int
		err         error
	}{
		{"m/44'/43'/0'/0'/0'", 0, ErrReservedRemoteIndex},
		{"m/44'/43'/0'/0'/0'", -1, ErrInvalidRemoteIndex},
		{"m/44'/43'/0'/0'/0'", MaxRemoteAccountChecks, ErrInvalidRemoteIndex},
		{"m/44'/43'/10'/0'/0'", 1, ErrMalformedSeedWalletPath},
		{"m/44'/43'/0'/0'/0", 1, ErrMalformedSeedWalletPath},
		{"m/44'/4'/0'/0'/0'/", 1, ErrMalformedSeedWalletPath},
		{"m/44'/44'/0'/0'/0'", 1, ErrMalformedSeedWalletPath},
		{"m/44'/43'/0'/00'/0'", 1, ErrMalformedSeedWalletPath},
		{"", 1, ErrMalformedSeedWalletPath},
	}
	for _, tt := range tests {
		_, err := RemoteAccountPath(tt.path, tt.remoteIndex)
		assert.ErrorIs(t, err, tt.err, tt.path)
	}
}

func TestIncrementDecrementPathLevel(t *testing.T) {
	path, err := IncrementPathLevel("m/44'/43'/0'/0'/0'", LevelAccount, 1)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/43'/1'/0'/0'", path)

	path, err = IncrementPathLevel(path, LevelRemote, 2)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/43'/1'/2'/0'", path)

	path, err = DecrementPathLevel(path, LevelAccount, 1)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/43'/0'/2'/0'", path)

	_, err = DecrementPathLevel(path, LevelAccount, 1)
	assert.ErrorIs(t, err, ErrInvalidSeedIndex)

	_, err = IncrementPathLevel("m/44'/43'/9'/0'/0'", LevelAccount, 1)
	assert.ErrorIs(t, err, ErrInvalidSeedIndex)

	_, err = IncrementPathLevel("m/44'/43'/0'/0'/0'", LevelCoinType, 1)
	assert.ErrorIs(t, err, ErrInvalidDerivationPathLevel)
}

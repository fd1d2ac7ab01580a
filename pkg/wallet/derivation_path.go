package wallet

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

const (
	// Purpose is the BIP44 purpose level.
	Purpose = 44
	// CoinType is the SLIP-44 registered coin type for NEM/Symbol.
	CoinType = 43

	// MaxSeedWalletsNumber bounds the account level of seed wallet paths.
	// The seed index is encoded as a single character of the path, so this
	// must never exceed 10.
	MaxSeedWalletsNumber = 10
	// MaxRemoteAccountChecks bounds the remote level of derivation paths.
	MaxRemoteAccountChecks = 10

	// seedWalletPathLength is the length of "m/44'/43'/N'/M'/0'" with single
	// digit indexes.
	seedWalletPathLength = 18
	// seedIndexOffset is the position of the seed index in a seed wallet path.
	seedIndexOffset = 10

	pathTemplate = "m/%d'/%d'/%d'/%d'/0'"
)

// DerivationPathLevel identifies one of the levels of a wallet path.
type DerivationPathLevel int

const (
	LevelPurpose DerivationPathLevel = iota
	LevelCoinType
	LevelAccount
	LevelRemote
	LevelAddress
)

var levelNames = map[DerivationPathLevel]string{
	LevelPurpose:  "purpose",
	LevelCoinType: "coin type",
	LevelAccount:  "account",
	LevelRemote:   "remote",
	LevelAddress:  "address",
}

func (l DerivationPathLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// DerivationPath is the internal representation of a hierarchical
// deterministic wallet account
type DerivationPath []uint32

var (
	// DefaultDerivationPath m/44'/43'/0'/0'/0'
	DefaultDerivationPath = DerivationPath{
		hdkeychain.HardenedKeyStart + Purpose,
		hdkeychain.HardenedKeyStart + CoinType,
		hdkeychain.HardenedKeyStart + 0,
		hdkeychain.HardenedKeyStart + 0,
		hdkeychain.HardenedKeyStart + 0,
	}
)

// DerivationPathFromSeedIndex returns the path of the seed wallet at the
// given index, ie. m/44'/43'/{seedIndex}'/0'/0'.
func DerivationPathFromSeedIndex(seedIndex int) (string, error) {
	return derivationPathFromIndexes(seedIndex, 0)
}

// DerivationPathFromSeedIndexPtr is like DerivationPathFromSeedIndex but
// rejects a nil index.
func DerivationPathFromSeedIndexPtr(seedIndex *int) (string, error) {
	if seedIndex == nil {
		return "", ErrNullSeedIndex
	}
	return DerivationPathFromSeedIndex(*seedIndex)
}

// RemoteAccountPath returns the path of the remote (delegated harvesting)
// account at remoteIndex for the seed wallet identified by seedWalletPath.
// The remote index 0 is reserved to the seed wallet itself.
func RemoteAccountPath(seedWalletPath string, remoteIndex int) (string, error) {
	if err := validateSeedWalletPath(seedWalletPath); err != nil {
		return "", err
	}
	if remoteIndex == 0 {
		return "", ErrReservedRemoteIndex
	}

	seedIndex, err := SeedIndexFromPath(seedWalletPath)
	if err != nil {
		return "", err
	}
	return derivationPathFromIndexes(seedIndex, remoteIndex)
}

// SeedIndexFromPath extracts the seed index embedded in a seed wallet path.
func SeedIndexFromPath(path string) (int, error) {
	if err := validateSeedWalletPath(path); err != nil {
		return -1, err
	}
	return int(path[seedIndexOffset] - '0'), nil
}

// IncrementPathLevel returns path with the given level increased by step.
func IncrementPathLevel(
	path string, level DerivationPathLevel, step int,
) (string, error) {
	return shiftPathLevel(path, level, step)
}

// DecrementPathLevel returns path with the given level decreased by step.
func DecrementPathLevel(
	path string, level DerivationPathLevel, step int,
) (string, error) {
	return shiftPathLevel(path, level, -step)
}

func shiftPathLevel(
	path string, level DerivationPathLevel, delta int,
) (string, error) {
	if level != LevelAccount && level != LevelRemote {
		return "", fmt.Errorf(
			"%w: %s level can't be changed", ErrInvalidDerivationPathLevel, level,
		)
	}
	parsed, err := ParseDerivationPath(path)
	if err != nil {
		return "", err
	}
	if err := validateWalletPath(parsed); err != nil {
		return "", err
	}

	seedIndex := int(parsed[LevelAccount] - hdkeychain.HardenedKeyStart)
	remoteIndex := int(parsed[LevelRemote] - hdkeychain.HardenedKeyStart)
	if level == LevelAccount {
		seedIndex += delta
	} else {
		remoteIndex += delta
	}
	return derivationPathFromIndexes(seedIndex, remoteIndex)
}

func derivationPathFromIndexes(seedIndex, remoteIndex int) (string, error) {
	if seedIndex < 0 || seedIndex >= MaxSeedWalletsNumber {
		return "", fmt.Errorf(
			"%w: %d not in range [0, %d)",
			ErrInvalidSeedIndex, seedIndex, MaxSeedWalletsNumber,
		)
	}
	if remoteIndex < 0 || remoteIndex >= MaxRemoteAccountChecks {
		return "", fmt.Errorf(
			"%w: %d not in range [0, %d)",
			ErrInvalidRemoteIndex, remoteIndex, MaxRemoteAccountChecks,
		)
	}
	return fmt.Sprintf(pathTemplate, Purpose, CoinType, seedIndex, remoteIndex), nil
}

func validateSeedWalletPath(path string) error {
	if len(path) != seedWalletPathLength {
		return fmt.Errorf(
			"%w: expected %d chars, got %d",
			ErrMalformedSeedWalletPath, seedWalletPathLength, len(path),
		)
	}
	parsed, err := ParseDerivationPath(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedSeedWalletPath, err)
	}
	if err := validateWalletPath(parsed); err != nil {
		return err
	}
	if parsed.String() != path {
		return ErrMalformedSeedWalletPath
	}
	return nil
}

func validateWalletPath(path DerivationPath) error {
	if len(path) != 5 {
		return fmt.Errorf(
			"%w: expected 5 levels, got %d", ErrMalformedSeedWalletPath, len(path),
		)
	}
	for i, step := range path {
		if step < hdkeychain.HardenedKeyStart {
			return fmt.Errorf(
				"%w: %s level must be hardened",
				ErrMalformedSeedWalletPath, DerivationPathLevel(i),
			)
		}
	}
	if path[LevelPurpose] != hdkeychain.HardenedKeyStart+Purpose ||
		path[LevelCoinType] != hdkeychain.HardenedKeyStart+CoinType {
		return fmt.Errorf(
			"%w: path must start with m/%d'/%d'",
			ErrMalformedSeedWalletPath, Purpose, CoinType,
		)
	}
	return nil
}

// ParseDerivationPath converts a derivation path string to the
// internal binary representation
func ParseDerivationPath(strPath string) (DerivationPath, error) {
	var path DerivationPath

	elems := strings.Split(strPath, "/")
	switch {
	case strPath == "":
		return nil, ErrNullDerivationPath

	case containsEmptyString(elems):
		return nil, ErrMalformedDerivationPath
	case len(elems) < 2:
		return nil, ErrMalformedDerivationPath

	case len(elems) > 1:
		if strings.TrimSpace(elems[0]) == "m" {
			elems = elems[1:]
		}

	default:
		return nil, ErrInvalidDerivationPath
	}

	for _, elem := range elems {
		elem = strings.TrimSpace(elem)
		var value uint32

		if strings.HasSuffix(elem, "'") {
			value = hdkeychain.HardenedKeyStart
			elem = strings.TrimSpace(strings.TrimSuffix(elem, "'"))
		}

		bigval, ok := new(big.Int).SetString(elem, 0)
		if !ok {
			return nil, fmt.Errorf("invalid elem '%s' in path", elem)
		}

		max := math.MaxUint32 - value
		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(int64(max))) > 0 {
			if value == 0 {
				return nil, fmt.Errorf("elem %v must be in range [0, %d]", bigval, max)
			}
			return nil, fmt.Errorf("elem %v must be in hardened range [0, %d]", bigval, max)
		}
		value += uint32(bigval.Uint64())

		path = append(path, value)
	}

	return path, nil
}

// String converts a binary derivation path to its canonical representation
func (path DerivationPath) String() string {
	if len(path) <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("m")
	for _, component := range path {
		hardened := component >= hdkeychain.HardenedKeyStart
		if hardened {
			component -= hdkeychain.HardenedKeyStart
		}
		b.WriteString("/")
		b.WriteString(strconv.FormatUint(uint64(component), 10))
		if hardened {
			b.WriteString("'")
		}
	}
	return b.String()
}

func containsEmptyString(composedPath []string) bool {
	for _, s := range composedPath {
		if s == "" {
			return true
		}
	}
	return false
}

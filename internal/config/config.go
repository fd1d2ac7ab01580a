package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/nem2-wallet/walletcore/internal/core/domain"
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

const (
	// DatadirKey is the local data directory to store the wallet database
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// NodeURLKey is the url of the REST gateway of the node to connect to
	NodeURLKey = "NODE_URL"
	// NodeRequestsPerSecondKey caps the rate of requests sent to the node
	NodeRequestsPerSecondKey = "NODE_REQUESTS_PER_SECOND"
	// NetworkTypeKey is the network the wallet runs on, ie. MAIN_NET or TEST_NET
	NetworkTypeKey = "NETWORK_TYPE"
	// CurrencyTickerKey is the ticker of the network currency
	CurrencyTickerKey = "CURRENCY_TICKER"
	// CurrencyDivisibilityKey is the number of decimals of the network currency
	CurrencyDivisibilityKey = "CURRENCY_DIVISIBILITY"
	// CurrencyNamespaceIDKey is the id of the namespace aliasing the network
	// currency
	CurrencyNamespaceIDKey = "CURRENCY_NAMESPACE_ID"
	// DynamicFeeMultiplierKey is the fee multiplier used until a node reports
	// the actual one
	DynamicFeeMultiplierKey = "DYNAMIC_FEE_MULTIPLIER"

	DbLocation = "db"

	DBBadger   = "badger"
	DBBolt     = "bolt"
	DBInMemory = "inmemory"
)

var (
	vip            *viper.Viper
	defaultDatadir = btcutil.AppDataDir("nem2-wallet", false)
	supportedDBs   = map[string]bool{
		DBBadger:   true,
		DBBolt:     true,
		DBInMemory: true,
	}
)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("NEMWALLET")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, int(log.InfoLevel))
	vip.SetDefault(DBTypeKey, DBBadger)
	vip.SetDefault(NodeURLKey, "http://localhost:3000")
	vip.SetDefault(NodeRequestsPerSecondKey, 10)
	vip.SetDefault(NetworkTypeKey, wallet.TestNet.String())
	vip.SetDefault(CurrencyTickerKey, "XYM")
	vip.SetDefault(CurrencyDivisibilityKey, 6)
	vip.SetDefault(CurrencyNamespaceIDKey, "E74B99BA41F4AFEE")
	vip.SetDefault(DynamicFeeMultiplierKey, domain.DefaultDynamicFeeMultiplier)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	log.SetLevel(log.Level(GetInt(LogLevelKey)))
	return nil
}

// Set overrides the value of a key, typically from a command line flag.
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

func GetNetworkType() wallet.NetworkType {
	nt, _ := wallet.NetworkTypeFromString(GetString(NetworkTypeKey))
	return nt
}

// GetNetworkCurrency returns the network currency as configured, before
// being completed with the values fetched from a node.
func GetNetworkCurrency() domain.NetworkCurrency {
	return domain.NetworkCurrency{
		NamespaceID:          strings.ToUpper(GetString(CurrencyNamespaceIDKey)),
		Ticker:               strings.TrimSpace(GetString(CurrencyTickerKey)),
		Divisibility:         uint8(GetInt(CurrencyDivisibilityKey)),
		DynamicFeeMultiplier: GetUint64(DynamicFeeMultiplierKey),
	}
}

// Validate checks the config after keys have been overridden with Set.
func Validate() error {
	if err := validate(); err != nil {
		return err
	}
	return initDatadir()
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	level := GetInt(LogLevelKey)
	if level < int(log.PanicLevel) || level > int(log.TraceLevel) {
		return fmt.Errorf("%s must be in range [0, 6]", LogLevelKey)
	}

	dbType := GetString(DBTypeKey)
	if !supportedDBs[dbType] {
		return fmt.Errorf("%s %s is not supported", DBTypeKey, dbType)
	}

	if _, err := wallet.NetworkTypeFromString(GetString(NetworkTypeKey)); err != nil {
		return fmt.Errorf("%s: %s", NetworkTypeKey, err)
	}

	if d := GetInt(CurrencyDivisibilityKey); d < 0 || d > int(domain.MaxDivisibility) {
		return fmt.Errorf(
			"%s must be in range [0, %d]", CurrencyDivisibilityKey,
			domain.MaxDivisibility,
		)
	}
	if err := GetNetworkCurrency().Validate(); err != nil {
		return err
	}

	if GetInt(NodeRequestsPerSecondKey) <= 0 {
		return fmt.Errorf("%s must be greater than 0", NodeRequestsPerSecondKey)
	}

	return nil
}

func initDatadir() error {
	if GetString(DBTypeKey) == DBInMemory {
		return nil
	}
	return makeDirectoryIfNotExists(GetDbDir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/nem2-wallet/walletcore/internal/config"
	"github.com/nem2-wallet/walletcore/internal/core/ports"
	"github.com/nem2-wallet/walletcore/internal/database"
	badgerkv "github.com/nem2-wallet/walletcore/internal/infrastructure/storage/kv/badger"
	boltkv "github.com/nem2-wallet/walletcore/internal/infrastructure/storage/kv/bolt"
	"github.com/nem2-wallet/walletcore/internal/infrastructure/storage/kv/inmemory"
)

const boltFilename = "wallet.db"

var (
	datadirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "data directory of the wallet",
	}
	dbTypeFlag = cli.StringFlag{
		Name:  "db",
		Usage: "database backend: badger, bolt or inmemory",
	}
	nodeFlag = cli.StringFlag{
		Name:  "node",
		Usage: "url of the node REST gateway",
	}
	networkFlag = cli.StringFlag{
		Name:  "network",
		Usage: "network type: MAIN_NET, TEST_NET, MIJIN or MIJIN_TEST",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "walletcli"
	app.Usage = "Command line interface for NEM2/Symbol HD wallets"
	app.Flags = []cli.Flag{&datadirFlag, &dbTypeFlag, &nodeFlag, &networkFlag}
	app.Before = initConfig
	app.Commands = append(
		app.Commands,
		&mnemonic,
		&path,
		&account,
		&rent,
		&profile,
		&network,
	)
	return app
}

func initConfig(ctx *cli.Context) error {
	if err := config.InitConfig(); err != nil {
		return err
	}
	overrides := map[string]string{
		config.DatadirKey:     ctx.String(datadirFlag.Name),
		config.DBTypeKey:      ctx.String(dbTypeFlag.Name),
		config.NodeURLKey:     ctx.String(nodeFlag.Name),
		config.NetworkTypeKey: ctx.String(networkFlag.Name),
	}
	changed := false
	for key, value := range overrides {
		if len(value) > 0 {
			config.Set(key, value)
			changed = true
		}
	}
	if changed {
		return config.Validate()
	}
	return nil
}

// openStore opens the KV store selected by config, to be closed by the
// caller.
func openStore() (ports.KVStore, error) {
	switch dbType := config.GetString(config.DBTypeKey); dbType {
	case config.DBInMemory:
		return inmemory.NewStore(), nil
	case config.DBBolt:
		return boltkv.NewStore(config.GetDbDir(), boltFilename)
	case config.DBBadger:
		return badgerkv.NewStore(config.GetDbDir(), log.StandardLogger())
	default:
		return nil, fmt.Errorf("unsupported db type %s", dbType)
	}
}

func openDatabase() (*database.Database, ports.KVStore, func(), error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("closing store")
		}
	}
	return database.NewDatabase(store, database.Tables()...), store, cleanup, nil
}

func printJSON(resp interface{}) {
	jsonBytes, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}
	fmt.Println(string(jsonBytes))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

// checkNoArgs rejects positional arguments, all inputs being flags.
func checkNoArgs(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}
	return nil
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[walletcli] %v\n", err)
	}
	os.Exit(1)
}

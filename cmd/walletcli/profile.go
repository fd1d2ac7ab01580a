package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/nem2-wallet/walletcore/internal/config"
	"github.com/nem2-wallet/walletcore/internal/core/application"
	"github.com/nem2-wallet/walletcore/internal/database"
	"github.com/nem2-wallet/walletcore/pkg/mathutil"
)

var (
	accountNameFlag = cli.StringFlag{
		Name:     "name",
		Usage:    "name of the profile",
		Required: true,
	}
	passwordFlag = cli.StringFlag{
		Name:     "password",
		Usage:    "password to encrypt/decrypt the profile mnemonic",
		Required: true,
	}
	walletFlag = cli.StringFlag{
		Name:     "wallet",
		Usage:    "id of the wallet",
		Required: true,
	}
)

var profile = cli.Command{
	Name:  "profile",
	Usage: "manage profiles and their seed wallets",
	Subcommands: []*cli.Command{
		{
			Name:   "create",
			Usage:  "create a new profile, generating a mnemonic if not given",
			Action: profileCreateAction,
			Flags: []cli.Flag{
				&accountNameFlag,
				&passwordFlag,
				&cli.StringFlag{
					Name:  "hint",
					Usage: "password hint",
				},
				&cli.StringFlag{
					Name:  "mnemonic",
					Usage: "mnemonic to restore",
				},
				&cli.StringFlag{
					Name:  "generation-hash",
					Usage: "generation hash of the network, defaults to the legacy one",
				},
				&cli.StringFlag{
					Name:  "default-fee",
					Usage: "default max fee of transactions, in units of the network currency",
					Value: "0",
				},
			},
		},
		{
			Name:   "add",
			Usage:  "add the next seed wallet to a profile",
			Action: profileAddAction,
			Flags:  []cli.Flag{&accountNameFlag, &passwordFlag},
		},
		{
			Name:   "remote",
			Usage:  "derive the remote account of a seed wallet",
			Action: profileRemoteAction,
			Flags: []cli.Flag{
				&passwordFlag,
				&walletFlag,
				&cli.IntFlag{
					Name:  "index",
					Usage: "remote account index in range [1, 9]",
					Value: 1,
				},
			},
		},
		{
			Name:   "export",
			Usage:  "print the private key of a wallet",
			Action: profileExportAction,
			Flags: []cli.Flag{
				&passwordFlag,
				&walletFlag,
			},
		},
		{
			Name:   "list",
			Usage:  "list the wallets of a profile",
			Action: profileListAction,
			Flags:  []cli.Flag{&accountNameFlag},
		},
	},
}

func getAccountService() (application.AccountService, func(), error) {
	db, _, cleanup, err := openDatabase()
	if err != nil {
		return nil, nil, err
	}
	return application.NewAccountService(db), cleanup, nil
}

func profileCreateAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	generationHash := ctx.String("generation-hash")
	if len(generationHash) <= 0 {
		generationHash = database.LegacyGenerationHash
	}

	fee, err := decimal.NewFromString(ctx.String("default-fee"))
	if err != nil {
		return fmt.Errorf("invalid default fee: %w", err)
	}
	defaultFee, err := mathutil.RelativeToAbsolute(
		fee, config.GetNetworkCurrency().Divisibility,
	)
	if err != nil {
		return err
	}

	p, err := svc.CreateProfile(ctx.Context, application.CreateProfileRequest{
		AccountName:    ctx.String(accountNameFlag.Name),
		Passphrase:     ctx.String(passwordFlag.Name),
		Hint:           ctx.String("hint"),
		Mnemonic:       ctx.String("mnemonic"),
		NetworkType:    config.GetNetworkType(),
		GenerationHash: generationHash,
		DefaultFee:     defaultFee,
	})
	if err != nil {
		return err
	}

	printJSON(p)
	return nil
}

func profileAddAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	w, err := svc.AddSeedWallet(
		ctx.Context, ctx.String(accountNameFlag.Name), ctx.String(passwordFlag.Name),
	)
	if err != nil {
		return err
	}

	printJSON(w)
	return nil
}

func profileRemoteAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	acc, err := svc.DeriveRemoteAccount(
		ctx.Context, ctx.String(walletFlag.Name), ctx.String(passwordFlag.Name),
		ctx.Int("index"),
	)
	if err != nil {
		return err
	}

	printJSON(map[string]string{
		"path":       acc.Path,
		"public_key": acc.PublicKeyHex(),
		"address":    acc.Address.Pretty(),
	})
	return nil
}

func profileExportAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	privateKey, err := svc.ExportPrivateKey(
		ctx.Context, ctx.String(walletFlag.Name), ctx.String(passwordFlag.Name),
	)
	if err != nil {
		return err
	}

	printJSON(map[string]string{"private_key": privateKey})
	return nil
}

func profileListAction(ctx *cli.Context) error {
	svc, cleanup, err := getAccountService()
	if err != nil {
		return err
	}
	defer cleanup()

	wallets, err := svc.ListWallets(ctx.Context, ctx.String(accountNameFlag.Name))
	if err != nil {
		return err
	}

	printJSON(wallets)
	return nil
}

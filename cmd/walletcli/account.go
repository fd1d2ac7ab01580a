package main

import (
	"github.com/urfave/cli/v2"

	"github.com/nem2-wallet/walletcore/internal/config"
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

var account = cli.Command{
	Name:   "account",
	Usage:  "derive the account of a mnemonic at a given path",
	Action: accountAction,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "mnemonic",
			Usage:    "space separated mnemonic words",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "path",
			Usage: "derivation path",
			Value: wallet.DefaultDerivationPath.String(),
		},
		&cli.BoolFlag{
			Name:  "private",
			Usage: "print also the private key",
		},
	},
}

func accountAction(ctx *cli.Context) error {
	if err := checkNoArgs(ctx); err != nil {
		return err
	}

	acc, err := wallet.CreateAccountAtPath(
		ctx.String("mnemonic"), ctx.String("path"), config.GetNetworkType(),
	)
	if err != nil {
		return err
	}

	resp := map[string]string{
		"path":       acc.Path,
		"public_key": acc.PublicKeyHex(),
		"address":    acc.Address.Pretty(),
	}
	if ctx.Bool("private") {
		resp["private_key"] = acc.PrivateKeyHex()
	}
	printJSON(resp)
	return nil
}

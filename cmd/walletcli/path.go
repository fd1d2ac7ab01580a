package main

import (
	"github.com/urfave/cli/v2"

	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

var path = cli.Command{
	Name:  "path",
	Usage: "build derivation paths of seed wallets and remote accounts",
	Subcommands: []*cli.Command{
		{
			Name:   "seed",
			Usage:  "print the path of the seed wallet at <index>",
			Action: seedPathAction,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "index",
					Usage:    "seed wallet index in range [0, 9]",
					Required: true,
				},
			},
		},
		{
			Name:   "remote",
			Usage:  "print the path of the remote account of a seed wallet",
			Action: remotePathAction,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "path",
					Usage:    "path of the seed wallet",
					Required: true,
				},
				&cli.IntFlag{
					Name:  "index",
					Usage: "remote account index in range [1, 9]",
					Value: 1,
				},
			},
		},
	},
}

func seedPathAction(ctx *cli.Context) error {
	path, err := wallet.DerivationPathFromSeedIndex(ctx.Int("index"))
	if err != nil {
		return err
	}
	printJSON(map[string]string{"path": path})
	return nil
}

func remotePathAction(ctx *cli.Context) error {
	path, err := wallet.RemoteAccountPath(ctx.String("path"), ctx.Int("index"))
	if err != nil {
		return err
	}
	printJSON(map[string]string{"path": path})
	return nil
}

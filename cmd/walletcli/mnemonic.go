package main

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

var mnemonic = cli.Command{
	Name:   "mnemonic",
	Usage:  "generate a new random mnemonic",
	Action: mnemonicAction,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "entropy",
			Usage: "entropy size in bits, multiple of 32 in range [128, 256]",
			Value: 256,
		},
		&cli.BoolFlag{
			Name:  "shuffle",
			Usage: "print also the words in random order, for backup checks",
		},
	},
}

func mnemonicAction(ctx *cli.Context) error {
	if err := checkNoArgs(ctx); err != nil {
		return err
	}

	words, err := wallet.NewMnemonic(wallet.NewMnemonicOpts{
		EntropySize: ctx.Int("entropy"),
	})
	if err != nil {
		return err
	}

	resp := map[string]interface{}{
		"mnemonic": strings.Join(words, " "),
	}
	if ctx.Bool("shuffle") {
		resp["shuffled"] = wallet.RandomizeMnemonicWordArray(words)
	}
	printJSON(resp)
	return nil
}

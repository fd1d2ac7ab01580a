package main

import (
	"github.com/urfave/cli/v2"

	"github.com/nem2-wallet/walletcore/internal/config"
	"github.com/nem2-wallet/walletcore/internal/core/domain"
)

var rent = cli.Command{
	Name:   "rent",
	Usage:  "estimate the rental fee of a namespace or mosaic",
	Action: rentAction,
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:     "duration",
			Usage:    "duration in blocks",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "multiplier",
			Usage: "dynamic fee multiplier, defaults to the configured one",
		},
	},
}

func rentAction(ctx *cli.Context) error {
	if err := checkNoArgs(ctx); err != nil {
		return err
	}

	currency := config.GetNetworkCurrency()
	if multiplier := ctx.Uint64("multiplier"); multiplier > 0 {
		currency.DynamicFeeMultiplier = multiplier
	}

	r, err := domain.RentFromDurationInBlocks(ctx.Uint64("duration"), currency)
	if err != nil {
		return err
	}
	printJSON(map[string]interface{}{
		"absolute": r.Absolute,
		"relative": r.Relative.String(),
		"rent":     r.RelativeWithTicker,
	})
	return nil
}

package main

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nem2-wallet/walletcore/internal/config"
	"github.com/nem2-wallet/walletcore/internal/core/application"
	"github.com/nem2-wallet/walletcore/internal/core/ports"
	"github.com/nem2-wallet/walletcore/internal/infrastructure/node"
	"github.com/nem2-wallet/walletcore/internal/storage"
)

var network = cli.Command{
	Name:  "network",
	Usage: "fetch and show the cached properties of networks",
	Subcommands: []*cli.Command{
		{
			Name:   "refresh",
			Usage:  "fetch the properties of the network of the configured node",
			Action: networkRefreshAction,
		},
		{
			Name:   "show",
			Usage:  "show the cached properties of a network, the latest if not given",
			Action: networkShowAction,
			Flags: []cli.Flag{
				&generationHashFlag,
			},
		},
		{
			Name:   "forget",
			Usage:  "drop the cached properties of a network, of all if not given",
			Action: networkForgetAction,
			Flags: []cli.Flag{
				&generationHashFlag,
			},
		},
	},
}

var generationHashFlag = cli.StringFlag{
	Name:  "generation-hash",
	Usage: "generation hash of the network",
}

func getNetworkService(ctx *cli.Context) (application.NetworkService, func(), error) {
	db, store, cleanup, err := openDatabase()
	if err != nil {
		return nil, nil, err
	}

	nodeURL, err := selectNode(store, ctx.String(nodeFlag.Name))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	nodeSvc, err := node.NewService(
		nodeURL, config.GetInt(config.NodeRequestsPerSecondKey),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	svc, err := application.NewNetworkService(
		nodeSvc, nodeURL, config.GetNetworkType(),
		config.GetNetworkCurrency(), store, db,
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func networkRefreshAction(ctx *cli.Context) error {
	svc, cleanup, err := getNetworkService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := svc.Refresh(ctx.Context)
	if err != nil {
		return err
	}

	printNetwork(c)
	return nil
}

func networkShowAction(ctx *cli.Context) error {
	svc, cleanup, err := getNetworkService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var c *application.NetworkCache
	if hash := ctx.String(generationHashFlag.Name); len(hash) > 0 {
		c, err = svc.ForNetwork(ctx.Context, hash)
	} else {
		c, err = svc.Latest(ctx.Context)
	}
	if err != nil {
		return err
	}

	printNetwork(c)
	return nil
}

func networkForgetAction(ctx *cli.Context) error {
	svc, cleanup, err := getNetworkService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return svc.Forget(ctx.Context, ctx.String(generationHashFlag.Name))
}

// selectNode persists the node given with the --node flag and falls back to
// the last persisted one, then to config.
func selectNode(store ports.KVStore, flagURL string) (string, error) {
	selection, err := storage.NewSimpleObjectStorage[string](
		store, storage.KeyNodeSelection,
	)
	if err != nil {
		return "", err
	}

	if len(flagURL) > 0 {
		return flagURL, selection.Set(flagURL)
	}

	nodeURL, ok, err := selection.Get()
	if err != nil {
		return "", err
	}
	if !ok {
		nodeURL = config.GetString(config.NodeURLKey)
	}
	return nodeURL, nil
}

func printNetwork(c *application.NetworkCache) {
	props := c.Properties
	printJSON(map[string]interface{}{
		"node_url":               c.NodeURL,
		"chain_height":           c.ChainHeight,
		"generation_hash":        props.GenerationHash,
		"network_type":           props.NetworkType.String(),
		"epoch_adjustment":       props.EpochAdjustment,
		"nemesis_time":           time.Unix(props.EpochAdjustment, 0).UTC().Format(time.RFC3339),
		"currency_mosaic_id":     props.Currency.MosaicID,
		"currency_ticker":        props.Currency.Ticker,
		"currency_divisibility":  props.Currency.Divisibility,
		"dynamic_fee_multiplier": props.Currency.DynamicFeeMultiplier,
	})
}

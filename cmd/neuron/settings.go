package main

import (
	"strconv"

	"github.com/hulin115/neuron/internal/config"
	"github.com/urfave/cli/v2"
)

var (
	settings = cli.Command{
		Name:  "settings",
		Usage: "show or update the wallet preferences",
		Subcommands: []*cli.Command{
			settingsShowCmd, settingsSkipDataAndTypeCmd,
		},
	}

	settingsShowCmd = &cli.Command{
		Name:   "show",
		Usage:  "show the current settings",
		Action: showSettingsAction,
	}
	settingsSkipDataAndTypeCmd = &cli.Command{
		Name:      "skip-data-and-type",
		Usage:     "exclude cells with data or type script from balance and spending",
		ArgsUsage: "<true|false>",
		Action:    skipDataAndTypeAction,
	}
)

func showSettingsAction(ctx *cli.Context) error {
	printRespJSON(map[string]interface{}{
		"datadir":            config.GetDatadir(),
		"network":            config.GetNetwork(),
		"node_rpc_endpoint":  config.GetString(config.NodeRPCEndpointKey),
		"skip_data_and_type": config.GetSettings().SkipDataAndType(),
		"fee":                config.GetFee().String(),
		"min_cell_capacity":  config.GetMinCellCapacity().String(),
		"denomination_unit":  config.GetDenominationUnit(),
	})
	return nil
}

func skipDataAndTypeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}
	skip, err := strconv.ParseBool(ctx.Args().First())
	if err != nil {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	if err := config.SetSkipDataAndType(skip); err != nil {
		return err
	}
	printRespJSON(map[string]bool{"skip_data_and_type": skip})
	return nil
}

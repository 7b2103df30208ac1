package main

import (
	"fmt"

	"github.com/hulin115/neuron/internal/core/application"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/urfave/cli/v2"
)

var send = cli.Command{
	Name:  "send",
	Usage: "send capacity to one or more addresses",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:     "to",
			Usage:    "the receiving address, repeat the flag for many outputs",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:     "amount",
			Usage:    "the amount sent to the receiving address of the same position",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "unit",
			Usage: "the unit of the amounts, either shannon or ckb",
		},
		&cli.StringFlag{
			Name:  "fee",
			Usage: "the fee in shannons, defaults to the configured one",
		},
		walletFlag,
		passwordFlag,
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "print the unsigned transaction without sending it",
		},
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
	addresses := ctx.StringSlice("to")
	amounts := ctx.StringSlice("amount")
	if len(addresses) != len(amounts) {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	s, err := getServices()
	if err != nil {
		return err
	}

	unit := capacity.Unit(ctx.String("unit"))
	targets := make([]domain.TargetOutput, 0, len(addresses))
	for i, addr := range addresses {
		targets = append(targets, domain.TargetOutput{
			Address: addr,
			Amount:  amounts[i],
			Unit:    unit,
		})
	}

	walletID := ctx.String(walletFlag.Name)
	fee := ctx.String("fee")

	if ctx.Bool("dry-run") {
		tx, err := s.transferSvc.GenerateTransaction(ctx.Context, walletID, targets, fee)
		if err != nil {
			return err
		}
		printRespJSON(tx)
		return nil
	}

	txHash, err := s.transferSvc.SendCapacity(ctx.Context, application.SendCapacityRequest{
		WalletID: walletID,
		Targets:  targets,
		Password: ctx.String(passwordFlag.Name),
		Fee:      fee,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, txHash)
	return nil
}

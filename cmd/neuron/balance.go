package main

import (
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/urfave/cli/v2"
)

var balance = cli.Command{
	Name:   "balance",
	Usage:  "get the live and sent balance of a wallet",
	Flags:  []cli.Flag{walletFlag},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	b, err := s.balanceSvc.GetWalletBalance(ctx.Context, ctx.String(walletFlag.Name))
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"wallet_id": b.WalletID,
		"live": map[string]string{
			"shannon": b.Live.String(),
			"ckb":     capacity.ToCKB(b.Live),
		},
		"sent": map[string]string{
			"shannon": b.Sent.String(),
			"ckb":     capacity.ToCKB(b.Sent),
		},
	})
	return nil
}

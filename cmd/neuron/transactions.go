package main

import (
	"github.com/urfave/cli/v2"
)

var (
	transactions = cli.Command{
		Name:  "transactions",
		Usage: "browse the transactions sent by the wallets",
		Subcommands: []*cli.Command{
			transactionsListCmd, transactionsGetCmd,
		},
	}

	transactionsListCmd = &cli.Command{
		Name:  "list",
		Usage: "list the transactions of a wallet, newest first",
		Flags: []cli.Flag{
			walletFlag,
			&cli.StringSliceFlag{
				Name:  "lock-hash",
				Usage: "only list the transactions of this lock hash of the wallet",
			},
		},
		Action: listTransactionsAction,
	}
	transactionsGetCmd = &cli.Command{
		Name:      "get",
		Usage:     "show a sent transaction",
		ArgsUsage: "<tx hash>",
		Action:    getTransactionAction,
	}
)

func listTransactionsAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	records, err := s.txSvc.ListTransactions(
		ctx.Context, ctx.String(walletFlag.Name), ctx.StringSlice("lock-hash"),
	)
	if err != nil {
		return err
	}
	printRespJSON(records)
	return nil
}

func getTransactionAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}
	s, err := getServices()
	if err != nil {
		return err
	}

	record, err := s.txSvc.GetTransaction(ctx.Context, ctx.Args().First())
	if err != nil {
		return err
	}
	printRespJSON(record)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hulin115/neuron/internal/core/application"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var (
	wallet = cli.Command{
		Name:  "wallet",
		Usage: "manage the wallets spending from this node",
		Subcommands: []*cli.Command{
			walletImportCmd, walletListCmd, walletUseCmd,
			walletRenameCmd, walletDeleteCmd, walletValidateCmd,
		},
	}

	walletImportCmd = &cli.Command{
		Name:  "import",
		Usage: "import a wallet from its addresses and private key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Usage:    "the name of the wallet",
				Required: true,
			},
			&cli.StringFlag{
				Name: "addresses",
				Usage: "path of the json file listing the receiving and change " +
					"addresses of the wallet",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "privkey",
				Usage:    "the hex encoded private key of the wallet",
				Required: true,
			},
			passwordFlag,
		},
		Action: importWalletAction,
	}
	walletListCmd = &cli.Command{
		Name:   "list",
		Usage:  "list all wallets",
		Action: listWalletsAction,
	}
	walletUseCmd = &cli.Command{
		Name:      "use",
		Usage:     "set the current wallet",
		ArgsUsage: "<wallet id>",
		Action:    useWalletAction,
	}
	walletRenameCmd = &cli.Command{
		Name:  "rename",
		Usage: "change the name of a wallet",
		Flags: []cli.Flag{
			walletFlag,
			&cli.StringFlag{
				Name:     "name",
				Usage:    "the new name of the wallet",
				Required: true,
			},
		},
		Action: renameWalletAction,
	}
	walletDeleteCmd = &cli.Command{
		Name:      "delete",
		Usage:     "delete a wallet",
		ArgsUsage: "<wallet id>",
		Action:    deleteWalletAction,
	}
	walletValidateCmd = &cli.Command{
		Name:   "validate",
		Usage:  "check the password of a wallet",
		Flags:  []cli.Flag{walletFlag, passwordFlag},
		Action: validatePasswordAction,
	}
)

type walletInfo struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Current   bool             `json:"current"`
	Addresses domain.Addresses `json:"addresses"`
}

func importWalletAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(ctx.String("addresses"))
	if err != nil {
		return fmt.Errorf("reading addresses: %w", err)
	}
	var addresses domain.Addresses
	if err := json.Unmarshal(buf, &addresses); err != nil {
		return fmt.Errorf("decoding addresses: %w", err)
	}

	w, err := s.walletSvc.ImportWallet(ctx.Context, application.ImportWalletRequest{
		Name:       ctx.String("name"),
		Addresses:  addresses,
		PrivateKey: ctx.String("privkey"),
		Password:   ctx.String(passwordFlag.Name),
	})
	if err != nil {
		return err
	}

	printRespJSON(map[string]string{"id": w.ID, "name": w.Name})
	return nil
}

func listWalletsAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	wallets, err := s.walletSvc.ListWallets(ctx.Context)
	if err != nil {
		return err
	}
	var currentID string
	if current, err := s.walletSvc.GetCurrentWallet(ctx.Context); err == nil {
		currentID = current.ID
	}

	infos := make([]walletInfo, 0, len(wallets))
	for _, w := range wallets {
		infos = append(infos, walletInfo{
			ID:        w.ID,
			Name:      w.Name,
			Current:   w.ID == currentID,
			Addresses: w.Addresses,
		})
	}
	printRespJSON(infos)
	return nil
}

func useWalletAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}
	s, err := getServices()
	if err != nil {
		return err
	}

	if err := s.walletSvc.SetCurrentWallet(ctx.Context, ctx.Args().First()); err != nil {
		return err
	}
	fmt.Fprintln(out, "current wallet updated")
	return nil
}

func renameWalletAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	w, err := s.walletSvc.UpdateWallet(
		ctx.Context, ctx.String(walletFlag.Name), ctx.String("name"),
	)
	if err != nil {
		return err
	}
	printRespJSON(map[string]string{"id": w.ID, "name": w.Name})
	return nil
}

func deleteWalletAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}
	s, err := getServices()
	if err != nil {
		return err
	}

	if err := s.walletSvc.DeleteWallet(ctx.Context, ctx.Args().First()); err != nil {
		return err
	}
	fmt.Fprintln(out, "wallet deleted")
	return nil
}

func validatePasswordAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	if err := s.walletSvc.ValidatePassword(
		ctx.Context, ctx.String(walletFlag.Name), ctx.String(passwordFlag.Name),
	); err != nil {
		return err
	}
	fmt.Fprintln(out, "password is valid")
	return nil
}

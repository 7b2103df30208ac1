package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/urfave/cli/v2"
)

var (
	cells = cli.Command{
		Name:  "cells",
		Usage: "import or list the cells of the wallets",
		Subcommands: []*cli.Command{
			cellsImportCmd, cellsListCmd, cellsBlake160sCmd,
		},
	}

	cellsImportCmd = &cli.Command{
		Name:  "import",
		Usage: "import the cells found by an indexer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "path of the json file listing the cells",
				Required: true,
			},
		},
		Action: importCellsAction,
	}
	cellsListCmd = &cli.Command{
		Name:  "list",
		Usage: "list the cells of a wallet",
		Flags: []cli.Flag{
			walletFlag,
			&cli.StringFlag{
				Name:  "status",
				Usage: "the status of the cells, one of live, sent, pending or dead",
				Value: string(domain.CellStatusLive),
			},
		},
		Action: listCellsAction,
	}
	cellsBlake160sCmd = &cli.Command{
		Name:   "blake160s",
		Usage:  "list the lock args of all stored cells",
		Action: listBlake160sAction,
	}
)

func importCellsAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(ctx.String("file"))
	if err != nil {
		return fmt.Errorf("reading cells: %w", err)
	}
	var list []domain.Cell
	if err := json.Unmarshal(buf, &list); err != nil {
		return fmt.Errorf("decoding cells: %w", err)
	}

	if err := s.cellSvc.ImportCells(ctx.Context, list); err != nil {
		return err
	}
	fmt.Fprintf(out, "imported %d cells\n", len(list))
	return nil
}

func listCellsAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	list, err := s.cellSvc.ListCells(
		ctx.Context, ctx.String(walletFlag.Name),
		domain.CellStatus(ctx.String("status")),
	)
	if err != nil {
		return err
	}
	printRespJSON(list)
	return nil
}

func listBlake160sAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	blake160s, err := s.cellSvc.AllBlake160s(ctx.Context)
	if err != nil {
		return err
	}
	printRespJSON(blake160s)
	return nil
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hulin115/neuron/internal/config"
	"github.com/hulin115/neuron/internal/core/application"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	lang    = "en"

	out io.Writer = os.Stdout

	langFlag = &cli.StringFlag{
		Name:  "lang",
		Usage: "language of the error messages, en or zh",
		Value: "en",
	}
	walletFlag = &cli.StringFlag{
		Name:  "wallet",
		Usage: "the id of the wallet, defaults to the current one",
	}
	passwordFlag = &cli.StringFlag{
		Name:  "password",
		Usage: "the password of the wallet keystore",
	}
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fatal(app, err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = version
	app.Name = "neuron"
	app.Usage = "Command line wallet for the CKB network"
	app.Flags = []cli.Flag{langFlag}
	app.Commands = append(
		app.Commands,
		&wallet,
		&cells,
		&balance,
		&send,
		&transactions,
		&settings,
		&webhook,
		&status,
	)
	app.Before = setup
	app.After = teardown
	return app
}

func setup(ctx *cli.Context) error {
	lang = ctx.String(langFlag.Name)
	if err := config.InitConfig(); err != nil {
		return err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
	return nil
}

func teardown(ctx *cli.Context) error {
	if svc != nil {
		svc.close()
		svc = nil
	}
	return nil
}

func printRespJSON(resp interface{}) {
	jsonStr, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Fprintln(out, "unable to decode response: ", err)
		return
	}

	fmt.Fprintln(out, string(jsonStr))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(app *cli.App, err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
		os.Exit(1)
	}

	if kind := application.ErrorKindOf(err); kind != application.ErrorKindUnknown {
		_, _ = fmt.Fprintf(
			os.Stderr, "[%s] %s: %v\n", app.Name, application.LocalizeError(err, lang), err,
		)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[%s] %v\n", app.Name, err)
	}
	os.Exit(1)
}

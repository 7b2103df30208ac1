package main

import (
	"fmt"

	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/urfave/cli/v2"
)

var (
	webhook = cli.Command{
		Name:  "webhook",
		Usage: "add, remove or list webhooks",
		Subcommands: []*cli.Command{
			webhookAddCmd, webhookRemoveCmd, webhookListCmd,
		},
	}

	eventFlag = &cli.StringFlag{
		Name: "event",
		Usage: "the target event, one of TRANSACTION_SENT, TRANSACTION_FAILED " +
			"or * for any event",
		Value: ports.AnyTopic,
	}

	webhookAddCmd = &cli.Command{
		Name:  "add",
		Usage: "add a (secured) webhook endpoint called whenever a target event occurs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "endpoint",
				Usage:    "the webhook endpoint to be called whenever the target event occurs",
				Required: true,
			},
			&cli.StringFlag{
				Name: "secret",
				Usage: "the eventual secret to use to generate an OAuth token for " +
					"authenticating requests to the webhook endpoint",
			},
			eventFlag,
		},
		Action: addWebhookAction,
	}
	webhookRemoveCmd = &cli.Command{
		Name:      "remove",
		Usage:     "remove some webhook",
		ArgsUsage: "<webhook id>",
		Action:    removeWebhookAction,
	}
	webhookListCmd = &cli.Command{
		Name:   "list",
		Usage:  "list all webhooks, optionally filtered by target event",
		Flags:  []cli.Flag{eventFlag},
		Action: listWebhooksAction,
	}
)

type webhookInfo struct {
	ID        string `json:"id"`
	Event     string `json:"event"`
	Endpoint  string `json:"endpoint"`
	IsSecured bool   `json:"is_secured"`
}

func addWebhookAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	id, err := s.pubsub.SubscribeWebhook(
		ctx.String(eventFlag.Name), ctx.String("endpoint"), ctx.String("secret"),
	)
	if err != nil {
		return err
	}
	printRespJSON(map[string]string{"id": id})
	return nil
}

func removeWebhookAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}
	s, err := getServices()
	if err != nil {
		return err
	}

	if err := s.pubsub.Unsubscribe("", ctx.Args().First()); err != nil {
		return err
	}
	fmt.Fprintln(out, "webhook removed")
	return nil
}

func listWebhooksAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	subs := s.pubsub.ListSubscriptionsForTopic(ctx.String(eventFlag.Name))
	infos := make([]webhookInfo, 0, len(subs))
	for _, sub := range subs {
		// in-process handlers have no endpoint.
		if len(sub.NotifyAt()) <= 0 {
			continue
		}
		infos = append(infos, webhookInfo{
			ID:        sub.Id(),
			Event:     sub.Topic(),
			Endpoint:  sub.NotifyAt(),
			IsSecured: sub.IsSecured(),
		})
	}
	printRespJSON(infos)
	return nil
}

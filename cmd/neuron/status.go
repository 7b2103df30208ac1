package main

import (
	"github.com/hulin115/neuron/internal/config"
	"github.com/urfave/cli/v2"
)

var status = cli.Command{
	Name:   "status",
	Usage:  "returns info about the status of the node",
	Action: getStatusAction,
}

func getStatusAction(ctx *cli.Context) error {
	s, err := getServices()
	if err != nil {
		return err
	}

	tip, err := s.node.GetTipBlockNumber(ctx.Context)
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"node_rpc_endpoint": config.GetString(config.NodeRPCEndpointKey),
		"network":           config.GetNetwork(),
		"tip_block_number":  tip,
	})
	return nil
}

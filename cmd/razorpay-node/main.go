// Package main provides the razorpay-node development CLI.
package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/razorpay/razorpay-workflow-node/pkg/log"
)

func main() {
	logger := log.WithModule("cli")

	cmd := &cli.Command{
		Name:                  "razorpay-node",
		Usage:                 "Inspect and execute the Razorpay workflow node",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			operationsCommand(),
			describeCommand(),
			executeCommand(),
			testCredentialsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
